package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
)

type busRecorder struct {
	events map[event.Type][]event.Event
}

func newBusRecorder(bus event.Bus, types ...event.Type) *busRecorder {
	r := &busRecorder{events: make(map[event.Type][]event.Event)}
	for _, typ := range types {
		bus.Subscribe(typ, func(_ context.Context, evt event.Event) error {
			r.events[evt.Type] = append(r.events[evt.Type], evt)
			return nil
		})
	}
	return r
}

type fixture struct {
	svc *service
	st  *state.State
	bus *event.MemoryBus
}

func newFixture(t *testing.T, money float64) *fixture {
	t.Helper()
	cat, err := catalog.Load("../../configs/catalog.yaml")
	require.NoError(t, err)

	st := state.New(money, 8)
	bus := event.NewMemoryBus()
	svc := NewService(cat, st, activity.NewLog(100), bus, Options{
		Random: func() float64 { return 0.99 },
	}).(*service)

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("inst-%d", seq)
	}
	return &fixture{svc: svc, st: st, bus: bus}
}

func (f *fixture) launchActive(t *testing.T, assetID string) *domain.AssetInstance {
	t.Helper()
	inst, err := f.svc.Launch(context.Background(), assetID, "")
	require.NoError(t, err)
	inst.Status = domain.AssetStatusActive
	inst.SetupDaysRemaining = 0
	return inst
}

func TestLaunch(t *testing.T) {
	t.Run("pays setup cost and starts in setup", func(t *testing.T) {
		f := newFixture(t, 1000)
		rec := newBusRecorder(f.bus, event.AssetLaunched)

		inst, err := f.svc.Launch(context.Background(), "blog", "tech")

		require.NoError(t, err)
		assert.Equal(t, "inst-1", inst.ID)
		assert.Equal(t, domain.AssetStatusSetup, inst.Status)
		assert.Equal(t, 3, inst.SetupDaysRemaining)
		assert.Equal(t, "tech", inst.NicheID)
		assert.Equal(t, 1, inst.LaunchedOnDay)
		assert.Equal(t, 975.0, f.st.Money)
		require.Len(t, f.st.Daily.Contributions, 1)
		assert.Equal(t, domain.ContributionSetupCost, f.st.Daily.Contributions[0].Category)
		assert.Len(t, rec.events[event.AssetLaunched], 1)
	})

	errorCases := []struct {
		name    string
		money   float64
		assetID string
		nicheID string
		wantErr error
	}{
		{"unknown asset", 1000, "podcast", "", domain.ErrAssetNotFound},
		{"unknown niche", 1000, "blog", "gardening", domain.ErrNicheNotFound},
		{"cannot afford", 10, "blog", "", domain.ErrInsufficientFunds},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.money)

			inst, err := f.svc.Launch(context.Background(), tc.assetID, tc.nicheID)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, inst)
			assert.Equal(t, tc.money, f.st.Money)
			assert.Empty(t, f.st.Instances())
		})
	}
}

func TestEndDay_SetupThenPayout(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()
	inst, err := f.svc.Launch(ctx, "blog", "")
	require.NoError(t, err)

	for day := 1; day <= 2; day++ {
		report := f.svc.EndDay(ctx)
		assert.Equal(t, day, report.Day)
		assert.Empty(t, report.Payouts)
		assert.Empty(t, report.Activated)
	}

	report := f.svc.EndDay(ctx)
	assert.Equal(t, []string{inst.ID}, report.Activated)
	assert.Empty(t, report.Payouts, "activation day does not pay")
	assert.Equal(t, domain.AssetStatusActive, inst.Status)

	money := f.st.Money
	report = f.svc.EndDay(ctx)

	// Level 0 band 1..3 with a 0.99 roll
	require.Len(t, report.Payouts, 1)
	assert.Equal(t, 3, report.Payouts[0].Breakdown.Total)
	assert.Equal(t, report.Payouts[0].Breakdown.Total, report.Payouts[0].Breakdown.Sum())
	assert.Equal(t, 3.0, report.Earned)
	assert.Equal(t, money+3, f.st.Money)
	assert.Equal(t, 3, inst.TotalIncome)
	assert.Equal(t, 1, inst.DaysActive)
	assert.Equal(t, 5, f.st.Day)
}

func TestPerformQualityAction_DailyLimitAndRollover(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()
	inst := f.launchActive(t, "blog")
	rec := newBusRecorder(f.bus, event.QualityActionComplete)

	first := f.svc.PerformQualityAction(ctx, inst.ID, "writePost")
	second := f.svc.PerformQualityAction(ctx, inst.ID, "writePost")
	third := f.svc.PerformQualityAction(ctx, inst.ID, "writePost")

	assert.True(t, first.OK)
	assert.True(t, second.OK)
	assert.False(t, third.OK)
	assert.Equal(t, domain.ReasonExhausted, third.Reason)
	assert.Equal(t, 2.0, inst.Quality.Progress["posts"])
	assert.Equal(t, 2.0, f.st.TimeLeft)
	assert.Len(t, rec.events[event.QualityActionComplete], 2)

	f.svc.EndDay(ctx)

	assert.Equal(t, 0, inst.UsesToday("writePost", f.st.Day))
	assert.Equal(t, 8.0, f.st.TimeLeft)
	assert.True(t, f.svc.PerformQualityAction(ctx, inst.ID, "writePost").OK)
}

func TestPerformQualityAction_LevelUpPublished(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()
	inst := f.launchActive(t, "blog")
	rec := newBusRecorder(f.bus, event.QualityLevelUp)
	f.st.DailyHours = 24
	f.st.TimeLeft = 24

	f.svc.PerformQualityAction(ctx, inst.ID, "writePost")
	f.svc.PerformQualityAction(ctx, inst.ID, "writePost")
	f.svc.EndDay(ctx)
	res := f.svc.PerformQualityAction(ctx, inst.ID, "writePost")

	assert.True(t, res.LeveledUp)
	assert.Equal(t, 1, inst.Quality.Level)
	require.Len(t, rec.events[event.QualityLevelUp], 1)
	payload := rec.events[event.QualityLevelUp][0].Payload.(event.QualityLevelUpPayloadV1)
	assert.Equal(t, "Steady Posts", payload.LevelName)
}

func TestActions(t *testing.T) {
	f := newFixture(t, 1000)
	inst := f.launchActive(t, "blog")

	actions, err := f.svc.Actions(inst.ID)

	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "writePost", actions[0].ID)
	assert.True(t, actions[0].Available.Unlocked)
	assert.False(t, actions[1].Available.Unlocked)
	assert.False(t, actions[2].Available.Unlocked)
	assert.Equal(t, "course_networking", actions[2].Available.MissingUpgrade)
	assert.Contains(t, actions[2].Available.Reason, "Networking Course")

	_, err = f.svc.Actions("missing")
	assert.ErrorIs(t, err, domain.ErrInstanceNotFound)
}

func TestPurchaseUpgrade(t *testing.T) {
	t.Run("slot provider unlocks consumer", func(t *testing.T) {
		f := newFixture(t, 1000)
		ctx := context.Background()
		rec := newBusRecorder(f.bus, event.UpgradePurchased)

		require.ErrorIs(t, f.svc.PurchaseUpgrade(ctx, "camera"), domain.ErrSlotCapacity)
		require.NoError(t, f.svc.PurchaseUpgrade(ctx, "studio"))
		require.NoError(t, f.svc.PurchaseUpgrade(ctx, "camera"))

		assert.Equal(t, 500.0, f.st.Money)
		slots := f.svc.Slots()
		assert.Equal(t, 1, slots.Available("studio"))
		assert.Len(t, rec.events[event.UpgradePurchased], 2)
		assert.ErrorIs(t, f.svc.PurchaseUpgrade(ctx, "camera"), domain.ErrUpgradeOwned)
	})

	errorCases := []struct {
		name    string
		money   float64
		owned   []string
		buy     string
		wantErr error
	}{
		{"unknown", 1000, nil, "jetpack", domain.ErrUpgradeNotFound},
		{"missing prerequisite", 1000, nil, "analytics_suite", domain.ErrUpgradeLocked},
		{"exclusive group", 1000, []string{"dual_monitor_rig"}, "standing_desk", domain.ErrUpgradeConflict},
		{"cannot afford", 100, nil, "studio", domain.ErrInsufficientFunds},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.money)
			for _, id := range tc.owned {
				require.NoError(t, f.svc.PurchaseUpgrade(context.Background(), id))
			}
			money := f.st.Money

			err := f.svc.PurchaseUpgrade(context.Background(), tc.buy)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, money, f.st.Money)
		})
	}
}

func TestMultipliers(t *testing.T) {
	f := newFixture(t, 1000)
	inst := f.launchActive(t, "vlog")
	require.NoError(t, f.svc.PurchaseUpgrade(context.Background(), "studio"))

	mults, err := f.svc.Multipliers(inst.ID)

	require.NoError(t, err)
	assert.InDelta(t, 1.15, mults[domain.EffectPayout].Multiplier, 1e-9)
	assert.InDelta(t, 1.0, mults[domain.EffectSetupTime].Multiplier, 1e-9)
	assert.Len(t, mults, 4)
}

func TestCompleteCourse(t *testing.T) {
	f := newFixture(t, 1000)
	rec := newBusRecorder(f.bus, event.CourseCompleted)

	require.NoError(t, f.svc.CompleteCourse(context.Background(), "content_mastery"))
	assert.ErrorIs(t, f.svc.CompleteCourse(context.Background(), "basket_weaving"), domain.ErrInvalidInput)

	assert.Equal(t, []string{"content_mastery"}, f.svc.Snapshot().CompletedCourses)
	assert.Len(t, rec.events[event.CourseCompleted], 1)
}

func TestIncome(t *testing.T) {
	f := newFixture(t, 1000)
	inst := f.launchActive(t, "blog")

	before, err := f.svc.Income(inst.ID)
	require.NoError(t, err)
	assert.Empty(t, before.Entries)

	f.svc.EndDay(context.Background())

	after, err := f.svc.Income(inst.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Day)
	assert.Equal(t, after.Total, after.Sum())
	after.Entries[0].Amount = 999
	assert.NotEqual(t, 999, inst.LastIncomeBreakdown.Entries[0].Amount)

	_, err = f.svc.Income("missing")
	assert.ErrorIs(t, err, domain.ErrInstanceNotFound)
}

func TestEndDay_PublishesAndLogs(t *testing.T) {
	f := newFixture(t, 1000)
	f.launchActive(t, "blog")
	rec := newBusRecorder(f.bus, event.IncomePaid, event.DayEnded)

	report := f.svc.EndDay(context.Background())

	assert.Len(t, rec.events[event.IncomePaid], 1)
	require.Len(t, rec.events[event.DayEnded], 1)
	assert.Equal(t, 1, rec.events[event.DayEnded][0].Payload.(event.DayEndedPayloadV1).Day)
	assert.Equal(t, 1, report.Metrics.Day)

	var messages []string
	for _, e := range f.svc.Log(0) {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "Your Blog earned $3.00 today.")
	assert.Contains(t, messages, "Day 1 closed: earned $3.00, spent $25.00.")
}

func TestEndDay_SpawnsNicheEventsForTomorrow(t *testing.T) {
	f := newFixture(t, 1000)
	f.svc.opts.SpawnChance = 1
	f.svc.events.SetRandom(func() float64 { return 0 })

	report := f.svc.EndDay(context.Background())

	assert.Len(t, report.Spawned, 4)
	for _, evt := range report.Spawned {
		assert.Equal(t, 2, evt.CreatedOnDay)
		assert.Equal(t, domain.EventTargetNiche, evt.Target.Kind)
	}
	assert.Len(t, f.svc.Events(), 4)
}

func TestNewService_SeededIDsRepeat(t *testing.T) {
	cat, err := catalog.Load("../../configs/catalog.yaml")
	require.NoError(t, err)

	run := func() (string, []string) {
		svc := NewService(cat, state.New(1000, 8), activity.NewLog(100), event.NewMemoryBus(), Options{
			SpawnChance: 1,
			Random:      utils.SeededRandom(5),
			NewID:       utils.SeededIDs(5),
		})
		inst, err := svc.Launch(context.Background(), "blog", "")
		require.NoError(t, err)
		report := svc.EndDay(context.Background())
		ids := make([]string, 0, len(report.Spawned))
		for _, evt := range report.Spawned {
			ids = append(ids, evt.ID)
		}
		return inst.ID, ids
	}

	firstInst, firstEvents := run()
	secondInst, secondEvents := run()

	assert.Equal(t, firstInst, secondInst)
	assert.Equal(t, firstEvents, secondEvents)
	assert.NotContains(t, firstEvents, firstInst)
}

func TestAssignNiche(t *testing.T) {
	f := newFixture(t, 1000)
	inst := f.launchActive(t, "blog")

	require.NoError(t, f.svc.AssignNiche(context.Background(), inst.ID, "finance"))
	assert.Equal(t, "finance", inst.NicheID)
	assert.ErrorIs(t, f.svc.AssignNiche(context.Background(), inst.ID, "nope"), domain.ErrNicheNotFound)
	assert.Len(t, f.svc.Niches(), 4)
}
