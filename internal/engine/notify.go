package engine

import (
	"context"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/quality"
	"github.com/osse101/incomeengine/internal/skills"
)

// busNotifier forwards executor and lifecycle callbacks to the event bus
type busNotifier struct {
	bus event.Bus
}

func (n *busNotifier) publish(eventType event.Type, payload interface{}) {
	if n.bus == nil {
		return
	}
	ctx := context.Background()
	if err := n.bus.Publish(ctx, event.New(eventType, payload)); err != nil {
		logger.FromContext(ctx).Warn("Event handler failed", "type", eventType, "error", err)
	}
}

func (n *busNotifier) ActionCompleted(c quality.Completion) {
	n.publish(event.QualityActionComplete, event.QualityActionPayloadV1{
		InstanceID: c.Instance.ID,
		AssetID:    c.Asset.ID,
		ActionID:   c.Action.ID,
		Progress:   c.Progress,
		UsesToday:  c.Instance.UsesToday(c.Action.ID, c.Day),
		Day:        c.Day,
	})
}

func (n *busNotifier) LevelUp(up quality.LevelUp) {
	n.publish(event.QualityLevelUp, event.QualityLevelUpPayloadV1{
		InstanceID: up.Instance.ID,
		AssetID:    up.Asset.ID,
		OldLevel:   up.From,
		NewLevel:   up.To,
		LevelName:  up.Level.Name,
	})
}

func (n *busNotifier) SkillLevelUp(up skills.LevelUp) {
	n.publish(event.SkillLevelUp, event.SkillLevelUpPayloadV1{
		Skill:    up.Skill,
		OldLevel: up.OldLevel,
		NewLevel: up.NewLevel,
	})
}

func (n *busNotifier) EventStarted(evt *domain.Event) {
	n.publish(event.TimedEventStarted, timedEventPayload(evt))
}

func (n *busNotifier) EventEnded(evt *domain.Event) {
	n.publish(event.TimedEventEnded, timedEventPayload(evt))
}

func timedEventPayload(evt *domain.Event) event.TimedEventPayloadV1 {
	target := evt.Target.InstanceID
	if evt.Target.Kind == domain.EventTargetNiche {
		target = evt.Target.NicheID
	}
	return event.TimedEventPayloadV1{
		EventID:    evt.ID,
		TemplateID: evt.TemplateID,
		Label:      evt.Label,
		TargetKind: string(evt.Target.Kind),
		TargetID:   target,
		Percent:    evt.CurrentPercent,
		Positive:   evt.Tone == domain.EventTonePositive,
	}
}
