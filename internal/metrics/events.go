package metrics

import (
	"context"

	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.AssetLaunched,
		event.QualityActionComplete,
		event.QualityLevelUp,
		event.SkillLevelUp,
		event.IncomePaid,
		event.TimedEventStarted,
		event.TimedEventEnded,
		event.UpgradePurchased,
		event.CourseCompleted,
		event.DayEnded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.AssetLaunched:
		p, err := event.DecodePayload[event.AssetLaunchedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AssetsLaunched.WithLabelValues(p.AssetID).Inc()
		MoneySpent.Add(p.Cost)

	case event.QualityActionComplete:
		p, err := event.DecodePayload[event.QualityActionPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		QualityActions.WithLabelValues(p.AssetID, p.ActionID).Inc()

	case event.QualityLevelUp:
		p, err := event.DecodePayload[event.QualityLevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		QualityLevelUps.WithLabelValues(p.AssetID).Inc()

	case event.SkillLevelUp:
		p, err := event.DecodePayload[event.SkillLevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		SkillLevelUps.WithLabelValues(p.Skill).Inc()

	case event.IncomePaid:
		p, err := event.DecodePayload[event.IncomePaidPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Payouts.WithLabelValues(p.AssetID).Inc()
		IncomePaid.Add(float64(p.Amount))

	case event.TimedEventStarted:
		p, err := event.DecodePayload[event.TimedEventPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		TimedEventsStarted.WithLabelValues(p.TemplateID).Inc()

	case event.TimedEventEnded:
		p, err := event.DecodePayload[event.TimedEventPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		TimedEventsEnded.WithLabelValues(p.TemplateID).Inc()

	case event.UpgradePurchased:
		p, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
		MoneySpent.Add(p.Cost)

	case event.CourseCompleted:
		p, err := event.DecodePayload[event.CourseCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CoursesCompleted.WithLabelValues(p.CourseID).Inc()

	case event.DayEnded:
		p, err := event.DecodePayload[event.DayEndedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CurrentDay.Set(float64(p.Day + 1))
	}
	return nil
}
