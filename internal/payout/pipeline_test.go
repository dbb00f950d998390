package payout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/education"
	"github.com/osse101/incomeengine/internal/niche"
	"github.com/osse101/incomeengine/internal/quality"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
)

type staticEvents []*domain.Event

func (s staticEvents) ActiveFor(*domain.AssetInstance) []*domain.Event { return s }

type modifierFunc func(domain.IncomeModifierInput, domain.IncomeRecorder) domain.IncomeModifierResult

func (f modifierFunc) ModifyIncome(in domain.IncomeModifierInput, rec domain.IncomeRecorder) domain.IncomeModifierResult {
	return f(in, rec)
}

type fixture struct {
	cat      *catalog.Catalog
	st       *state.State
	inst     *domain.AssetInstance
	pipeline *Pipeline
}

func newFixture(t *testing.T, base float64, events staticEvents) *fixture {
	t.Helper()
	cat := catalog.New()
	cat.PutAsset(&domain.AssetDefinition{
		ID:         "blog",
		Name:       "Blogs",
		BaseIncome: domain.IncomeRange{Min: base, Max: base},
	})
	cat.PutNiche(domain.NicheDefinition{ID: "tech", Name: "Tech", BaseScore: 70})
	cat.PutNiche(domain.NicheDefinition{ID: "calm", Name: "Calm", BaseScore: 50})

	st := state.New(0, 8)
	inst := &domain.AssetInstance{ID: "b1", AssetID: "blog", Status: domain.AssetStatusActive}
	st.AddInstance(inst)

	p := NewPipeline(
		cat,
		quality.NewLedger(cat),
		niche.NewOracle(cat),
		events,
		education.NewProvider(cat),
		upgrade.NewResolver(cat),
	)
	p.SetRandom(func() float64 { return 0.5 })
	return &fixture{cat: cat, st: st, inst: inst, pipeline: p}
}

func (f *fixture) compute(t *testing.T) Result {
	t.Helper()
	res, ok := f.pipeline.Compute(context.Background(), f.st, f.inst)
	require.True(t, ok)
	assert.Equal(t, res.Breakdown.Total, res.Breakdown.Sum())
	assert.GreaterOrEqual(t, res.Breakdown.Total, 0)
	return res
}

func ids(entries []domain.IncomeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func amounts(entries []domain.IncomeEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Amount
	}
	return out
}

func TestCompute_BaseOnly(t *testing.T) {
	f := newFixture(t, 10, nil)

	res := f.compute(t)

	assert.Equal(t, 10, res.Breakdown.Total)
	assert.Equal(t, []string{EntryIDBase}, ids(res.Breakdown.Entries))
	assert.Equal(t, 10, f.inst.LastIncome)
	require.NotNil(t, f.inst.LastIncomeBreakdown)
	assert.Equal(t, f.st.Day, f.inst.LastIncomeBreakdown.Day)
	assert.Nil(t, f.inst.EducationTrace)
}

func TestCompute_BaseRollUsesBand(t *testing.T) {
	f := newFixture(t, 0, nil)
	f.cat.PutAsset(&domain.AssetDefinition{ID: "blog", Name: "Blogs", BaseIncome: domain.IncomeRange{Min: 10, Max: 20}})
	f.pipeline.SetRandom(func() float64 { return 0.26 })

	res := f.compute(t)

	assert.Equal(t, 13, res.Breakdown.Total)
}

func TestCompute_FullStackOrdering(t *testing.T) {
	f := newFixture(t, 100, staticEvents{
		{ID: "e1", Label: "Viral post", CurrentPercent: 0.25},
	})
	f.inst.NicheID = "tech"
	f.cat.PutCourse(domain.CourseDefinition{
		ID:      "seo",
		Name:    "SEO Basics",
		Bonuses: []domain.CourseBonus{{AssetID: "blog", Percent: 0.1, Type: domain.EducationBonusPercent}},
	})
	f.st.CompletedCourses["seo"] = true
	camera := &domain.UpgradeDefinition{ID: "camera", Name: "Camera", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 1.5}}
	f.cat.PutUpgrade(camera)
	f.st.GrantUpgrade(camera)

	res := f.compute(t)

	// 100 -> niche 120 -> event 150 -> course 165 -> upgrades 247.5
	assert.Equal(t, 248, res.Breakdown.Total)
	assert.Equal(t, []string{"base", "niche:tech", "event:e1", "education:seo", "upgrade:camera"}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{100, 20, 30, 15, 83}, amounts(res.Breakdown.Entries))
	assert.Equal(t, "Tech demand (Trending)", res.Breakdown.Entries[1].Label)
	assert.InDelta(t, 0.2, res.Breakdown.Entries[1].Percent, 1e-9)
	assert.InDelta(t, 1.5, res.Upgrades.Multiplier, 1e-9)

	require.Len(t, f.inst.EducationTrace, 1)
	assert.InDelta(t, 15, f.inst.EducationTrace[0].Extra, 1e-9)
}

func TestCompute_RoundingRemainderGoesToLastEntry(t *testing.T) {
	f := newFixture(t, 10, staticEvents{
		{ID: "a", Label: "A", CurrentPercent: 0.15},
		{ID: "b", Label: "B", CurrentPercent: 0.15},
	})

	res := f.compute(t)

	// 10 -> 11.5 -> 13.225, entries round to 10+2+2 and the last absorbs -1
	assert.Equal(t, 13, res.Breakdown.Total)
	assert.Equal(t, []int{10, 2, 1}, amounts(res.Breakdown.Entries))
}

func TestCompute_ImmaterialNicheSkipped(t *testing.T) {
	f := newFixture(t, 40, nil)
	f.inst.NicheID = "calm"

	res := f.compute(t)

	assert.Equal(t, []string{EntryIDBase}, ids(res.Breakdown.Entries))
}

func TestCompute_NegativeRunningAmountFloored(t *testing.T) {
	f := newFixture(t, 100, staticEvents{{ID: "boost", Label: "Boost", CurrentPercent: 0.5}})
	def, _ := f.cat.Asset("blog")
	def.IncomeModifier = modifierFunc(func(in domain.IncomeModifierInput, _ domain.IncomeRecorder) domain.IncomeModifierResult {
		return domain.IncomeModifierResult{Entries: []domain.IncomeContribution{{ID: "penalty", Label: "Penalty", Amount: -250}}}
	})

	res := f.compute(t)

	assert.Equal(t, 0, res.Breakdown.Total)
	assert.Equal(t, []string{"base", "modifier:penalty", "event:boost"}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{100, -100, 0}, amounts(res.Breakdown.Entries))
}

func TestCompute_ReplacementTotalWithRecordedParts(t *testing.T) {
	f := newFixture(t, 10, nil)
	def, _ := f.cat.Asset("blog")
	def.IncomeModifier = modifierFunc(func(in domain.IncomeModifierInput, rec domain.IncomeRecorder) domain.IncomeModifierResult {
		rec.Record("level", "Level bonus", 5)
		total := in.Base + 8
		return domain.IncomeModifierResult{Total: &total}
	})

	res := f.compute(t)

	assert.Equal(t, 18, res.Breakdown.Total)
	assert.Equal(t, []string{"base", "modifier:level", EntryIDAdjustment}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{10, 5, 3}, amounts(res.Breakdown.Entries))
}

func TestCompute_ReplacementTotalWithoutParts(t *testing.T) {
	f := newFixture(t, 10, nil)
	def, _ := f.cat.Asset("blog")
	def.IncomeModifier = modifierFunc(func(in domain.IncomeModifierInput, _ domain.IncomeRecorder) domain.IncomeModifierResult {
		total := in.Base * 3
		return domain.IncomeModifierResult{Total: &total}
	})

	res := f.compute(t)

	assert.Equal(t, []string{"base", EntryIDModifier}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{10, 20}, amounts(res.Breakdown.Entries))
}

func TestCompute_ClampedAwaySourceGetsNoEntry(t *testing.T) {
	f := newFixture(t, 100, nil)
	f.cat.SetEffectBounds(domain.EffectPayout, domain.Bounds{Min: 0, Max: 2})
	a := &domain.UpgradeDefinition{ID: "a", Name: "A", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 2}}
	b := &domain.UpgradeDefinition{ID: "b", Name: "B", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 1.5}}
	f.cat.PutUpgrade(a)
	f.cat.PutUpgrade(b)
	f.st.GrantUpgrade(a)
	f.st.GrantUpgrade(b)

	res := f.compute(t)

	assert.Equal(t, 200, res.Breakdown.Total)
	assert.True(t, res.Upgrades.Clamped)
	assert.Equal(t, []string{"base", "upgrade:a"}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{100, 100}, amounts(res.Breakdown.Entries))
}

func TestCompute_ClampedUpgradesSplitAcrossAppliedSources(t *testing.T) {
	f := newFixture(t, 100, nil)
	f.cat.SetEffectBounds(domain.EffectPayout, domain.Bounds{Min: 0, Max: 4})
	a := &domain.UpgradeDefinition{ID: "a", Name: "A", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 2}}
	b := &domain.UpgradeDefinition{ID: "b", Name: "B", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 3}}
	f.cat.PutUpgrade(a)
	f.cat.PutUpgrade(b)
	f.st.GrantUpgrade(a)
	f.st.GrantUpgrade(b)

	res := f.compute(t)

	// raw deltas 100 and 400 scaled onto the clamped delta of 300
	assert.Equal(t, 400, res.Breakdown.Total)
	assert.Equal(t, []string{"base", "upgrade:a", "upgrade:b"}, ids(res.Breakdown.Entries))
	assert.Equal(t, []int{100, 60, 240}, amounts(res.Breakdown.Entries))
}

func TestCompute_BoundsOnlyChangeAbsorbedByLastEntry(t *testing.T) {
	t.Run("no upgrades owned", func(t *testing.T) {
		f := newFixture(t, 100, nil)
		f.cat.SetEffectBounds(domain.EffectPayout, domain.Bounds{Min: 1.1, Max: 5})

		res := f.compute(t)

		assert.Equal(t, 110, res.Breakdown.Total)
		assert.Equal(t, []string{"base"}, ids(res.Breakdown.Entries))
		assert.Equal(t, []int{110}, amounts(res.Breakdown.Entries))
	})

	t.Run("owned upgrade held under the floor", func(t *testing.T) {
		f := newFixture(t, 100, nil)
		f.cat.SetEffectBounds(domain.EffectPayout, domain.Bounds{Min: 1.1, Max: 5})
		a := &domain.UpgradeDefinition{ID: "a", Name: "A", Effects: map[domain.EffectKey]float64{domain.EffectPayout: 1.05}}
		f.cat.PutUpgrade(a)
		f.st.GrantUpgrade(a)

		res := f.compute(t)

		assert.Equal(t, 110, res.Breakdown.Total)
		assert.Equal(t, []string{"base"}, ids(res.Breakdown.Entries))
		assert.Equal(t, []int{110}, amounts(res.Breakdown.Entries))
	})
}

func TestCompute_Skipped(t *testing.T) {
	t.Run("setup instance", func(t *testing.T) {
		f := newFixture(t, 10, nil)
		f.inst.Status = domain.AssetStatusSetup

		_, ok := f.pipeline.Compute(context.Background(), f.st, f.inst)

		assert.False(t, ok)
		assert.Nil(t, f.inst.LastIncomeBreakdown)
	})

	t.Run("unknown asset", func(t *testing.T) {
		f := newFixture(t, 10, nil)
		f.inst.AssetID = "missing"

		_, ok := f.pipeline.Compute(context.Background(), f.st, f.inst)

		assert.False(t, ok)
	})
}

func TestCompute_ClearsStaleEducationTrace(t *testing.T) {
	f := newFixture(t, 10, nil)
	f.inst.EducationTrace = []domain.EducationBonus{{ID: "old"}}

	f.compute(t)

	assert.Nil(t, f.inst.EducationTrace)
}
