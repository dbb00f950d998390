package engine

import (
	"context"
	"sync"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/niche"
	"github.com/osse101/incomeengine/internal/quality"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
)

// Synchronized wraps a Service so the HTTP layer and the day ticker can share
// it. Every call holds one mutex, and values pointing into the owned state
// are copied before the lock is released.
func Synchronized(next Service) Service {
	return &lockedService{next: next}
}

type lockedService struct {
	mu   sync.Mutex
	next Service
}

func (l *lockedService) Launch(ctx context.Context, assetID, nicheID string) (*domain.AssetInstance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	inst, err := l.next.Launch(ctx, assetID, nicheID)
	if err != nil {
		return nil, err
	}
	return inst.Clone(), nil
}

func (l *lockedService) AssignNiche(ctx context.Context, instanceID, nicheID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.AssignNiche(ctx, instanceID, nicheID)
}

func (l *lockedService) PerformQualityAction(ctx context.Context, instanceID, actionID string) quality.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := l.next.PerformQualityAction(ctx, instanceID, actionID)
	res.Events = copyEvents(res.Events)
	return res
}

func (l *lockedService) Actions(instanceID string) ([]ActionStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Actions(instanceID)
}

func (l *lockedService) Income(instanceID string) (*domain.IncomeBreakdown, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Income(instanceID)
}

func (l *lockedService) Multipliers(instanceID string) (map[domain.EffectKey]upgrade.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Multipliers(instanceID)
}

func (l *lockedService) EndDay(ctx context.Context) DayReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	report := l.next.EndDay(ctx)
	report.Ended = copyEvents(report.Ended)
	report.Spawned = copyEvents(report.Spawned)
	return report
}

func (l *lockedService) PurchaseUpgrade(ctx context.Context, upgradeID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.PurchaseUpgrade(ctx, upgradeID)
}

func (l *lockedService) CompleteCourse(ctx context.Context, courseID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.CompleteCourse(ctx, courseID)
}

func (l *lockedService) Slots() upgrade.SlotLedger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Slots()
}

func (l *lockedService) Snapshot() state.View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Snapshot()
}

func (l *lockedService) Events() []*domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyEvents(l.next.Events())
}

func (l *lockedService) Niches() []niche.Popularity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Niches()
}

func (l *lockedService) Log(sinceSeq int) []activity.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Log(sinceSeq)
}

// Catalog is immutable after load and needs no lock
func (l *lockedService) Catalog() *catalog.Catalog {
	return l.next.Catalog()
}

func copyEvents(in []*domain.Event) []*domain.Event {
	if in == nil {
		return nil
	}
	out := make([]*domain.Event, len(in))
	for i, ev := range in {
		cp := *ev
		out[i] = &cp
	}
	return out
}
