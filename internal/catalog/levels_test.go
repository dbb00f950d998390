package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/domain"
)

func TestLevelCache_SortsAndCaches(t *testing.T) {
	cache := NewLevelCache(4)
	def := &domain.AssetDefinition{
		ID: "blog",
		Levels: []domain.QualityLevelDefinition{
			{Level: 2, Name: "two"},
			{Level: 0, Name: "zero"},
			{Level: 1, Name: "one"},
		},
	}

	levels := cache.Sorted(def)
	require.Len(t, levels, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{levels[0].Level, levels[1].Level, levels[2].Level})
	assert.Equal(t, 2, def.Levels[0].Level, "authored slice must not be reordered")
	assert.Equal(t, 1, cache.Len())

	// Cached until invalidated
	def.Levels = append(def.Levels, domain.QualityLevelDefinition{Level: 3})
	assert.Len(t, cache.Sorted(def), 3)

	cache.Invalidate("blog")
	assert.Len(t, cache.Sorted(def), 4)
}

func TestLevelCache_NilDefinition(t *testing.T) {
	cache := NewLevelCache(0)
	assert.Nil(t, cache.Sorted(nil))
	assert.Equal(t, 0, cache.Len())
}

func TestCatalog_PutAssetInvalidatesLevels(t *testing.T) {
	cat := New()
	cat.PutAsset(&domain.AssetDefinition{ID: "blog", Levels: []domain.QualityLevelDefinition{{Level: 0}, {Level: 1}}})
	first, _ := cat.Asset("blog")
	assert.Equal(t, 1, cat.MaxLevel(first))

	cat.PutAsset(&domain.AssetDefinition{ID: "blog", Levels: []domain.QualityLevelDefinition{{Level: 0}, {Level: 4}}})
	second, _ := cat.Asset("blog")
	assert.Equal(t, 4, cat.MaxLevel(second))
	assert.Len(t, cat.Assets(), 1)
}

func TestCatalog_LevelFor(t *testing.T) {
	cat := New()
	def := &domain.AssetDefinition{ID: "store", Levels: []domain.QualityLevelDefinition{
		{Level: 0, Name: "zero"},
		{Level: 2, Name: "two"},
	}}
	cat.PutAsset(def)

	tests := []struct {
		name     string
		level    int
		wantName string
		wantOK   bool
	}{
		{"exact", 2, "two", true},
		{"gap falls back to lower", 1, "zero", true},
		{"above max", 7, "two", true},
		{"below min", -1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.LevelFor(def, tt.level)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}
