package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/niche"
	"github.com/osse101/incomeengine/internal/quality"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
)

// mockEngine mocks engine.Service
type mockEngine struct {
	mock.Mock
}

var _ engine.Service = (*mockEngine)(nil)

func (m *mockEngine) Launch(ctx context.Context, assetID, nicheID string) (*domain.AssetInstance, error) {
	args := m.Called(ctx, assetID, nicheID)
	inst, _ := args.Get(0).(*domain.AssetInstance)
	return inst, args.Error(1)
}

func (m *mockEngine) AssignNiche(ctx context.Context, instanceID, nicheID string) error {
	return m.Called(ctx, instanceID, nicheID).Error(0)
}

func (m *mockEngine) PerformQualityAction(ctx context.Context, instanceID, actionID string) quality.Result {
	return m.Called(ctx, instanceID, actionID).Get(0).(quality.Result)
}

func (m *mockEngine) Actions(instanceID string) ([]engine.ActionStatus, error) {
	args := m.Called(instanceID)
	actions, _ := args.Get(0).([]engine.ActionStatus)
	return actions, args.Error(1)
}

func (m *mockEngine) Income(instanceID string) (*domain.IncomeBreakdown, error) {
	args := m.Called(instanceID)
	b, _ := args.Get(0).(*domain.IncomeBreakdown)
	return b, args.Error(1)
}

func (m *mockEngine) Multipliers(instanceID string) (map[domain.EffectKey]upgrade.Result, error) {
	args := m.Called(instanceID)
	mults, _ := args.Get(0).(map[domain.EffectKey]upgrade.Result)
	return mults, args.Error(1)
}

func (m *mockEngine) EndDay(ctx context.Context) engine.DayReport {
	return m.Called(ctx).Get(0).(engine.DayReport)
}

func (m *mockEngine) PurchaseUpgrade(ctx context.Context, upgradeID string) error {
	return m.Called(ctx, upgradeID).Error(0)
}

func (m *mockEngine) CompleteCourse(ctx context.Context, courseID string) error {
	return m.Called(ctx, courseID).Error(0)
}

func (m *mockEngine) Slots() upgrade.SlotLedger {
	return m.Called().Get(0).(upgrade.SlotLedger)
}

func (m *mockEngine) Snapshot() state.View {
	return m.Called().Get(0).(state.View)
}

func (m *mockEngine) Events() []*domain.Event {
	events, _ := m.Called().Get(0).([]*domain.Event)
	return events
}

func (m *mockEngine) Niches() []niche.Popularity {
	niches, _ := m.Called().Get(0).([]niche.Popularity)
	return niches
}

func (m *mockEngine) Log(sinceSeq int) []activity.Entry {
	entries, _ := m.Called(sinceSeq).Get(0).([]activity.Entry)
	return entries
}

func (m *mockEngine) Catalog() *catalog.Catalog {
	cat, _ := m.Called().Get(0).(*catalog.Catalog)
	return cat
}
