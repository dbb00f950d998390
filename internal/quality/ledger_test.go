package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
)

func TestEligibleLevel(t *testing.T) {
	tests := []struct {
		name     string
		levels   []domain.QualityLevelDefinition
		progress map[string]float64
		want     int
	}{
		{
			name: "prefix rule blocks skipping",
			levels: []domain.QualityLevelDefinition{
				{Level: 1, Requirements: map[string]float64{"a": 5}},
				{Level: 2, Requirements: map[string]float64{"a": 3}},
			},
			progress: map[string]float64{"a": 4},
			want:     0,
		},
		{
			name: "all met",
			levels: []domain.QualityLevelDefinition{
				{Level: 0},
				{Level: 1, Requirements: map[string]float64{"a": 3}},
				{Level: 2, Requirements: map[string]float64{"a": 6, "b": 1}},
			},
			progress: map[string]float64{"a": 6, "b": 1},
			want:     2,
		},
		{
			name: "one track short",
			levels: []domain.QualityLevelDefinition{
				{Level: 0},
				{Level: 1, Requirements: map[string]float64{"a": 3}},
				{Level: 2, Requirements: map[string]float64{"a": 6, "b": 1}},
			},
			progress: map[string]float64{"a": 9},
			want:     1,
		},
		{
			name: "zero thresholds are ignored",
			levels: []domain.QualityLevelDefinition{
				{Level: 1, Requirements: map[string]float64{"a": 0, "b": -2}},
			},
			progress: nil,
			want:     1,
		},
		{
			name:     "no levels",
			progress: map[string]float64{"a": 100},
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EligibleLevel(tt.levels, tt.progress))
		})
	}
}

func TestEnsureQuality(t *testing.T) {
	inst := &domain.AssetInstance{Quality: domain.QualityState{Level: -3, Progress: map[string]float64{"a": -1, "b": 2}}}
	EnsureQuality(inst)
	EnsureQuality(inst)

	assert.Equal(t, 0, inst.Quality.Level)
	assert.Equal(t, 0.0, inst.Quality.Progress["a"])
	assert.Equal(t, 2.0, inst.Quality.Progress["b"])
	assert.NotNil(t, inst.DailyUsage)

	empty := &domain.AssetInstance{}
	EnsureQuality(empty)
	assert.NotNil(t, empty.Quality.Progress)
	EnsureQuality(nil)
}

func TestLedger_Advance(t *testing.T) {
	cat := catalog.New()
	def := &domain.AssetDefinition{ID: "blog", Levels: []domain.QualityLevelDefinition{
		{Level: 0, Name: "Rough"},
		{Level: 1, Name: "Steady", Requirements: map[string]float64{"posts": 3}},
		{Level: 2, Name: "Known", Requirements: map[string]float64{"posts": 6}},
	}}
	cat.PutAsset(def)
	ledger := NewLedger(cat)

	inst := &domain.AssetInstance{Quality: domain.QualityState{Progress: map[string]float64{"posts": 7}}}
	up, ok := ledger.Advance(def, inst)
	require.True(t, ok)
	assert.Equal(t, 0, up.From)
	assert.Equal(t, 2, up.To)
	assert.Equal(t, "Known", up.Level.Name)
	assert.Equal(t, 2, inst.Quality.Level)

	// Never lowers
	inst.Quality.Progress["posts"] = 0
	_, ok = ledger.Advance(def, inst)
	assert.False(t, ok)
	assert.Equal(t, 2, inst.Quality.Level)
}

func TestLedger_IncomeRange(t *testing.T) {
	cat := catalog.New()
	def := &domain.AssetDefinition{
		ID:         "store",
		BaseIncome: domain.IncomeRange{Min: 1, Max: 2},
		Levels: []domain.QualityLevelDefinition{
			{Level: 0},
			{Level: 1, Income: domain.IncomeRange{Min: 10, Max: 20}},
		},
	}
	cat.PutAsset(def)
	ledger := NewLedger(cat)

	assert.Equal(t, domain.IncomeRange{Min: 1, Max: 2}, ledger.IncomeRange(def, &domain.AssetInstance{}))
	assert.Equal(t, domain.IncomeRange{Min: 10, Max: 20}, ledger.IncomeRange(def, &domain.AssetInstance{Quality: domain.QualityState{Level: 3}}))
}
