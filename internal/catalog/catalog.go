package catalog

import (
	"github.com/osse101/incomeengine/internal/domain"
)

// Catalog is the read-only registry of authored content. Slices keep
// authoring order so iteration is deterministic.
type Catalog struct {
	Version string

	assets     []*domain.AssetDefinition
	assetIndex map[string]*domain.AssetDefinition

	upgrades     []*domain.UpgradeDefinition
	upgradeIndex map[string]*domain.UpgradeDefinition

	niches     []domain.NicheDefinition
	nicheIndex map[string]int

	templates     []*domain.EventTemplate
	templateIndex map[string]*domain.EventTemplate

	courses []domain.CourseDefinition

	bounds map[domain.EffectKey]domain.Bounds
	levels *LevelCache
}

// New builds an empty catalog. Populate it with the Put helpers or use Parse.
func New() *Catalog {
	return &Catalog{
		assetIndex:    make(map[string]*domain.AssetDefinition),
		upgradeIndex:  make(map[string]*domain.UpgradeDefinition),
		nicheIndex:    make(map[string]int),
		templateIndex: make(map[string]*domain.EventTemplate),
		bounds:        make(map[domain.EffectKey]domain.Bounds),
		levels:        NewLevelCache(DefaultLevelCacheSize),
	}
}

// PutAsset adds or replaces an asset type and invalidates its cached levels
func (c *Catalog) PutAsset(def *domain.AssetDefinition) {
	if existing, ok := c.assetIndex[def.ID]; ok {
		for i := range c.assets {
			if c.assets[i] == existing {
				c.assets[i] = def
			}
		}
	} else {
		c.assets = append(c.assets, def)
	}
	c.assetIndex[def.ID] = def
	c.levels.Invalidate(def.ID)
}

// PutUpgrade adds or replaces an upgrade, keeping authoring order
func (c *Catalog) PutUpgrade(def *domain.UpgradeDefinition) {
	if existing, ok := c.upgradeIndex[def.ID]; ok {
		for i := range c.upgrades {
			if c.upgrades[i] == existing {
				c.upgrades[i] = def
			}
		}
	} else {
		c.upgrades = append(c.upgrades, def)
	}
	c.upgradeIndex[def.ID] = def
}

// PutNiche adds or replaces a niche
func (c *Catalog) PutNiche(def domain.NicheDefinition) {
	if idx, ok := c.nicheIndex[def.ID]; ok {
		c.niches[idx] = def
		return
	}
	c.nicheIndex[def.ID] = len(c.niches)
	c.niches = append(c.niches, def)
}

// PutTemplate adds or replaces an event template
func (c *Catalog) PutTemplate(def *domain.EventTemplate) {
	if _, ok := c.templateIndex[def.ID]; !ok {
		c.templates = append(c.templates, def)
	} else {
		for i := range c.templates {
			if c.templates[i].ID == def.ID {
				c.templates[i] = def
			}
		}
	}
	c.templateIndex[def.ID] = def
}

// PutCourse appends an education course
func (c *Catalog) PutCourse(def domain.CourseDefinition) {
	c.courses = append(c.courses, def)
}

// SetEffectBounds sets the clamp band of an effect key
func (c *Catalog) SetEffectBounds(key domain.EffectKey, b domain.Bounds) {
	c.bounds[key] = b
}

// Asset looks up an asset type
func (c *Catalog) Asset(id string) (*domain.AssetDefinition, bool) {
	def, ok := c.assetIndex[id]
	return def, ok
}

// Assets returns asset types in authoring order
func (c *Catalog) Assets() []*domain.AssetDefinition {
	return c.assets
}

// Upgrade looks up an upgrade
func (c *Catalog) Upgrade(id string) (*domain.UpgradeDefinition, bool) {
	def, ok := c.upgradeIndex[id]
	return def, ok
}

// Upgrades returns upgrades in authoring order
func (c *Catalog) Upgrades() []*domain.UpgradeDefinition {
	return c.upgrades
}

// Niche looks up a niche
func (c *Catalog) Niche(id string) (domain.NicheDefinition, bool) {
	idx, ok := c.nicheIndex[id]
	if !ok {
		return domain.NicheDefinition{}, false
	}
	return c.niches[idx], true
}

// Niches returns niches in authoring order
func (c *Catalog) Niches() []domain.NicheDefinition {
	return c.niches
}

// Template looks up an event template
func (c *Catalog) Template(id string) (*domain.EventTemplate, bool) {
	def, ok := c.templateIndex[id]
	return def, ok
}

// Templates returns event templates in authoring order, optionally filtered by target kind
func (c *Catalog) Templates(kind domain.EventTargetKind) []*domain.EventTemplate {
	if kind == "" {
		return c.templates
	}
	var out []*domain.EventTemplate
	for _, t := range c.templates {
		if t.TargetKind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Courses returns education courses in authoring order
func (c *Catalog) Courses() []domain.CourseDefinition {
	return c.courses
}

// EffectBounds returns the clamp band of an effect key
func (c *Catalog) EffectBounds(key domain.EffectKey) domain.Bounds {
	if b, ok := c.bounds[key]; ok {
		return b
	}
	return DefaultEffectBounds
}

// SortedLevels returns an asset type's quality levels in ascending order
func (c *Catalog) SortedLevels(def *domain.AssetDefinition) []domain.QualityLevelDefinition {
	return c.levels.Sorted(def)
}

// MaxLevel returns the highest authored quality level of an asset type
func (c *Catalog) MaxLevel(def *domain.AssetDefinition) int {
	levels := c.SortedLevels(def)
	if len(levels) == 0 {
		return 0
	}
	return levels[len(levels)-1].Level
}

// LevelFor returns the definition of the given level, or the closest lower one
func (c *Catalog) LevelFor(def *domain.AssetDefinition, level int) (domain.QualityLevelDefinition, bool) {
	levels := c.SortedLevels(def)
	var found domain.QualityLevelDefinition
	ok := false
	for _, l := range levels {
		if l.Level > level {
			break
		}
		found = l
		ok = true
	}
	return found, ok
}
