package catalog

// File is the YAML layout of an authored catalog
type File struct {
	Version        string                `yaml:"version" validate:"required"`
	EffectBounds   map[string]BoundsSpec `yaml:"effect_bounds" validate:"dive"`
	Assets         []AssetSpec           `yaml:"assets" validate:"required,min=1,dive"`
	Upgrades       []UpgradeSpec         `yaml:"upgrades" validate:"dive"`
	Niches         []NicheSpec           `yaml:"niches" validate:"dive"`
	EventTemplates []EventTemplateSpec   `yaml:"event_templates" validate:"dive"`
	Education      []CourseSpec          `yaml:"education" validate:"dive"`
}

// BoundsSpec is an authored [min,max] band
type BoundsSpec struct {
	Min float64 `yaml:"min" validate:"gte=0"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// RangeSpec is an authored numeric range
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// IntRangeSpec is an authored integer range
type IntRangeSpec struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// AssetSpec describes one asset type
type AssetSpec struct {
	ID             string        `yaml:"id" validate:"required"`
	Name           string        `yaml:"name" validate:"required"`
	Singular       string        `yaml:"singular"`
	Tags           []string      `yaml:"tags"`
	Family         string        `yaml:"family"`
	Category       string        `yaml:"category"`
	SetupDays      int           `yaml:"setup_days" validate:"gte=0"`
	SetupCost      float64       `yaml:"setup_cost" validate:"gte=0"`
	BaseIncome     RangeSpec     `yaml:"base_income"`
	Skills         []SkillSpec   `yaml:"skills" validate:"dive"`
	IncomeModifier *StrategySpec `yaml:"income_modifier"`
	Levels         []LevelSpec   `yaml:"levels" validate:"dive"`
	Actions        []ActionSpec  `yaml:"actions" validate:"dive"`
}

// SkillSpec weights a skill award
type SkillSpec struct {
	ID     string  `yaml:"id" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// LevelSpec is one quality tier
type LevelSpec struct {
	Level        int                `yaml:"level" validate:"gte=0"`
	Name         string             `yaml:"name" validate:"required"`
	Description  string             `yaml:"description"`
	Requirements map[string]float64 `yaml:"requirements"`
	Income       RangeSpec          `yaml:"income"`
}

// ActionSpec is one quality action
type ActionSpec struct {
	ID               string        `yaml:"id" validate:"required"`
	Label            string        `yaml:"label" validate:"required"`
	TimeHours        float64       `yaml:"time_hours" validate:"gte=0"`
	Cost             float64       `yaml:"cost" validate:"gte=0"`
	DailyLimit       int           `yaml:"daily_limit" validate:"gte=0"`
	ProgressKey      string        `yaml:"progress_key"`
	Progress         *StrategySpec `yaml:"progress"`
	RequiresUpgrades []string      `yaml:"requires_upgrades"`
	Lock             *StrategySpec `yaml:"lock"`
	LockMessage      string        `yaml:"lock_message"`
	Skills           []SkillSpec   `yaml:"skills" validate:"dive"`
	EventTriggers    []TriggerSpec `yaml:"event_triggers" validate:"dive"`
	OnComplete       *StrategySpec `yaml:"on_complete"`
	LogMessage       string        `yaml:"log_message"`
}

// TriggerSpec attaches an event template roll to an action
type TriggerSpec struct {
	Template string  `yaml:"template" validate:"required"`
	Chance   float64 `yaml:"chance" validate:"gte=0,lte=1"`
}

// StrategySpec selects an authored strategy variant. Unused fields are ignored
// by variants that do not read them.
type StrategySpec struct {
	Type     string  `yaml:"type" validate:"required"`
	Level    int     `yaml:"level"`
	Days     int     `yaml:"days"`
	Amount   float64 `yaml:"amount"`
	PerLevel float64 `yaml:"per_level"`
	Track    string  `yaml:"track"`
	Percent  float64 `yaml:"percent"`
	Cap      float64 `yaml:"cap"`
	Label    string  `yaml:"label"`
}

// ScopeSpec is an upgrade's affects block
type ScopeSpec struct {
	Kind        string   `yaml:"kind" validate:"omitempty,oneof=asset hustle"`
	IDs         []string `yaml:"ids"`
	Tags        []string `yaml:"tags"`
	Families    []string `yaml:"families"`
	Categories  []string `yaml:"categories"`
	ActionTypes []string `yaml:"action_types"`
}

// ModifierSpec is a formula-driven effect adjustment
type ModifierSpec struct {
	Property string    `yaml:"property" validate:"required"`
	Type     string    `yaml:"type" validate:"required,oneof=multiplicative additive fixed"`
	Amount   float64   `yaml:"amount"`
	Target   ScopeSpec `yaml:"target"`
	Min      *float64  `yaml:"min"`
	Max      *float64  `yaml:"max"`
}

// UpgradeSpec describes one purchasable upgrade
type UpgradeSpec struct {
	ID               string             `yaml:"id" validate:"required"`
	Name             string             `yaml:"name" validate:"required"`
	Category         string             `yaml:"category"`
	Family           string             `yaml:"family"`
	Tags             []string           `yaml:"tags"`
	Cost             float64            `yaml:"cost" validate:"gte=0"`
	Repeatable       bool               `yaml:"repeatable"`
	Effects          map[string]float64 `yaml:"effects"`
	Affects          ScopeSpec          `yaml:"affects"`
	Modifiers        []ModifierSpec     `yaml:"modifiers" validate:"dive"`
	Provides         map[string]int     `yaml:"provides"`
	Consumes         map[string]int     `yaml:"consumes"`
	ExclusivityGroup string             `yaml:"exclusivity_group"`
	Requires         []string           `yaml:"requires"`
}

// NicheSpec describes one niche
type NicheSpec struct {
	ID         string  `yaml:"id" validate:"required"`
	Name       string  `yaml:"name" validate:"required"`
	BaseScore  float64 `yaml:"base_score" validate:"gte=0,lte=100"`
	Volatility float64 `yaml:"volatility" validate:"gte=0"`
}

// EventTemplateSpec describes one event template
type EventTemplateSpec struct {
	ID          string       `yaml:"id" validate:"required"`
	Label       string       `yaml:"label" validate:"required"`
	Tone        string       `yaml:"tone" validate:"required,oneof=positive negative"`
	Target      string       `yaml:"target" validate:"required,oneof=asset niche"`
	Percent     RangeSpec    `yaml:"percent"`
	Days        IntRangeSpec `yaml:"days"`
	DailyChange *float64     `yaml:"daily_change"`
	Chance      float64      `yaml:"chance" validate:"gte=0,lte=1"`
}

// CourseSpec describes an education course
type CourseSpec struct {
	ID      string            `yaml:"id" validate:"required"`
	Name    string            `yaml:"name" validate:"required"`
	Bonuses []CourseBonusSpec `yaml:"bonuses" validate:"dive"`
}

// CourseBonusSpec is one bonus granted by a course
type CourseBonusSpec struct {
	Asset   string  `yaml:"asset" validate:"required"`
	Percent float64 `yaml:"percent"`
	Flat    float64 `yaml:"flat"`
	Type    string  `yaml:"type" validate:"required,oneof=percent flat"`
}
