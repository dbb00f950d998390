package lifecycle

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
)

// Catalog is the authored data the manager reads
type Catalog interface {
	Asset(id string) (*domain.AssetDefinition, bool)
	Niche(id string) (domain.NicheDefinition, bool)
	Niches() []domain.NicheDefinition
	Template(id string) (*domain.EventTemplate, bool)
	Templates(kind domain.EventTargetKind) []*domain.EventTemplate
}

// LogSink records player-facing messages
type LogSink interface {
	Record(message, category string)
}

// Observer is told when events start and end
type Observer interface {
	EventStarted(evt *domain.Event)
	EventEnded(evt *domain.Event)
}

// Manager creates, decays and expires timed events
type Manager struct {
	store    Store
	catalog  Catalog
	log      LogSink
	observer Observer
	rnd      func() float64
	newID    func() string
}

// NewManager creates an event lifecycle manager. observer may be nil.
func NewManager(store Store, catalog Catalog, log LogSink, observer Observer) *Manager {
	return &Manager{
		store:    store,
		catalog:  catalog,
		log:      log,
		observer: observer,
		rnd:      utils.RandomFloat,
		newID:    uuid.NewString,
	}
}

// SetRandom replaces the roll source
func (m *Manager) SetRandom(rnd func() float64) {
	m.rnd = rnd
}

// SetIDSource replaces the event id generator
func (m *Manager) SetIDSource(newID func() string) {
	m.newID = newID
}

// Store returns the backing event store
func (m *Manager) Store() Store {
	return m.store
}

// IsActive reports whether an event still modifies its stat
func IsActive(evt *domain.Event) bool {
	return evt != nil && evt.RemainingDays > 0 && math.Abs(evt.CurrentPercent) >= Epsilon
}

// Create rolls a new event from a template. day is the first day the event
// is in effect; it first decays when that day is processed.
func (m *Manager) Create(tmpl *domain.EventTemplate, target domain.EventTarget, day int) *domain.Event {
	percent := clampPercent(utils.RandomBetween(tmpl.PercentMin, tmpl.PercentMax, m.rnd))
	days := utils.RandomIntBetween(tmpl.DaysMin, tmpl.DaysMax, m.rnd)
	if days < 1 {
		days = 1
	}

	change := -percent / float64(days)
	if tmpl.DailyChange != nil {
		change = *tmpl.DailyChange
	}

	evt := &domain.Event{
		ID:                 m.newID(),
		TemplateID:         tmpl.ID,
		Label:              tmpl.Label,
		Tone:               tmpl.Tone,
		Target:             target,
		Stat:               domain.EventStatIncome,
		ModifierType:       domain.EventModifierPercent,
		CurrentPercent:     percent,
		DailyPercentChange: domain.Finite(change),
		TotalDays:          days,
		RemainingDays:      days,
		CreatedOnDay:       day,
		LastProcessedDay:   day - 1,
	}
	m.store.Add(evt)
	m.announce(evt, true)
	if m.observer != nil {
		m.observer.EventStarted(evt)
	}
	return evt
}

// SpawnForInstance creates an instance-scoped event from a template, taking
// effect today
func (m *Manager) SpawnForInstance(st *state.State, templateID string, def *domain.AssetDefinition, inst *domain.AssetInstance) (*domain.Event, error) {
	tmpl, ok := m.catalog.Template(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templateID)
	}
	if tmpl.TargetKind != domain.EventTargetAsset {
		return nil, fmt.Errorf("%w: template %s targets %s", domain.ErrInvalidInput, templateID, tmpl.TargetKind)
	}
	target := domain.EventTarget{Kind: domain.EventTargetAsset, AssetID: def.ID, InstanceID: inst.ID}
	return m.Create(tmpl, target, st.Day), nil
}

// ProcessDay removes orphaned events, then decays every event not yet
// processed for day. Events that run out of days or decay below Epsilon are
// removed. Returns the events that ended.
func (m *Manager) ProcessDay(ctx context.Context, st *state.State, day int) []*domain.Event {
	log := logger.FromContext(ctx)

	for _, evt := range m.store.All() {
		if evt.Target.Kind != domain.EventTargetAsset {
			continue
		}
		if !st.HasInstance(evt.Target.AssetID, evt.Target.InstanceID) {
			m.store.Remove(evt.ID)
			log.Debug("Removed orphaned event", "eventID", evt.ID, "instanceID", evt.Target.InstanceID)
		}
	}

	var ended []*domain.Event
	for _, evt := range m.store.All() {
		if evt.LastProcessedDay >= day {
			continue
		}
		if evt.RemainingDays > 0 {
			evt.RemainingDays--
		}
		evt.CurrentPercent = clampPercent(evt.CurrentPercent + evt.DailyPercentChange)
		evt.LastProcessedDay = day

		if IsActive(evt) {
			m.store.Update(evt)
			continue
		}
		m.store.Remove(evt.ID)
		ended = append(ended, evt)
		m.announce(evt, false)
		if m.observer != nil {
			m.observer.EventEnded(evt)
		}
	}
	return ended
}

// ActiveFor returns the active income events affecting an instance, either
// directly or through its niche, in store order
func (m *Manager) ActiveFor(inst *domain.AssetInstance) []*domain.Event {
	if inst == nil {
		return nil
	}
	var out []*domain.Event
	for _, evt := range m.store.All() {
		if !IsActive(evt) || evt.Stat != domain.EventStatIncome || evt.ModifierType != domain.EventModifierPercent {
			continue
		}
		switch evt.Target.Kind {
		case domain.EventTargetAsset:
			if evt.Target.InstanceID == inst.ID && evt.Target.AssetID == inst.AssetID {
				out = append(out, evt)
			}
		case domain.EventTargetNiche:
			if inst.NicheID != "" && evt.Target.NicheID == inst.NicheID {
				out = append(out, evt)
			}
		}
	}
	return out
}

// Events returns every stored event
func (m *Manager) Events() []*domain.Event {
	return m.store.All()
}

func (m *Manager) announce(evt *domain.Event, started bool) {
	if m.log == nil {
		return
	}
	var msg string
	switch evt.Target.Kind {
	case domain.EventTargetAsset:
		name := evt.Target.AssetID
		if def, ok := m.catalog.Asset(evt.Target.AssetID); ok {
			name = def.DisplayName()
		}
		msg = fmt.Sprintf(MsgAssetEventEnded, evt.Label, name)
		if started {
			msg = fmt.Sprintf(MsgAssetEventStarted, evt.Label, name, evt.CurrentPercent*100)
		}
	case domain.EventTargetNiche:
		name := evt.Target.NicheID
		if def, ok := m.catalog.Niche(evt.Target.NicheID); ok {
			name = def.Name
		}
		msg = fmt.Sprintf(MsgNicheEventEnded, evt.Label, name)
		if started {
			msg = fmt.Sprintf(MsgNicheEventStarted, evt.Label, name, evt.CurrentPercent*100)
		}
	default:
		return
	}
	m.log.Record(msg, domain.LogCategoryEvent)
}

func clampPercent(p float64) float64 {
	return utils.Clamp(domain.Finite(p), MinPercent, MaxPercent)
}
