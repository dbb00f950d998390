package catalog

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/incomeengine/internal/domain"
)

// LevelCache keeps each asset type's quality levels sorted ascending, keyed by
// asset type id. Entries are rebuilt on demand after invalidation.
type LevelCache struct {
	lru *lru.Cache[string, []domain.QualityLevelDefinition]
}

// NewLevelCache creates a cache holding up to size asset types
func NewLevelCache(size int) *LevelCache {
	if size <= 0 {
		size = DefaultLevelCacheSize
	}
	cache, _ := lru.New[string, []domain.QualityLevelDefinition](size)
	return &LevelCache{lru: cache}
}

// Sorted returns the asset type's levels in ascending order. The returned
// slice is shared and must not be modified.
func (c *LevelCache) Sorted(def *domain.AssetDefinition) []domain.QualityLevelDefinition {
	if def == nil {
		return nil
	}
	if levels, ok := c.lru.Get(def.ID); ok {
		return levels
	}
	levels := SortLevels(def.Levels)
	c.lru.Add(def.ID, levels)
	return levels
}

// Invalidate drops the cached levels of one asset type
func (c *LevelCache) Invalidate(assetID string) {
	c.lru.Remove(assetID)
}

// Len returns the number of cached asset types
func (c *LevelCache) Len() int {
	return c.lru.Len()
}

// SortLevels returns a copy of levels ordered by level number
func SortLevels(levels []domain.QualityLevelDefinition) []domain.QualityLevelDefinition {
	sorted := append([]domain.QualityLevelDefinition(nil), levels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})
	return sorted
}
