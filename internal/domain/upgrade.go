package domain

// EffectKey names an upgrade effect multiplier
type EffectKey string

const (
	EffectPayout          EffectKey = "payout_mult"
	EffectSetupTime       EffectKey = "setup_time_mult"
	EffectMaintenanceTime EffectKey = "maint_time_mult"
	EffectQualityProgress EffectKey = "quality_progress_mult"
)

// Action types used by upgrade scopes
const (
	ActionTypePayout  = "payout"
	ActionTypeQuality = "quality"
	ActionTypeSetup   = "setup"
)

// Bounds is an inclusive clamp band
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Clamp limits v to the band
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Scope restricts what an upgrade affects. Empty lists match everything.
type Scope struct {
	Kind        SubjectKind
	IDs         []string
	Tags        []string
	Families    []string
	Categories  []string
	ActionTypes []string
}

// ModifierType defines how a formula modifier transforms a running value
type ModifierType string

const (
	// ModifierTypeMultiplicative: value * (1 + amount)
	ModifierTypeMultiplicative ModifierType = "multiplicative"
	// ModifierTypeAdditive: value + amount
	ModifierTypeAdditive ModifierType = "additive"
	// ModifierTypeFixed: amount, ignoring the input value
	ModifierTypeFixed ModifierType = "fixed"
)

// EffectModifier is an authored formula adjustment for one effect property
type EffectModifier struct {
	Property EffectKey
	Type     ModifierType
	Amount   float64
	Target   Scope
	Min      *float64
	Max      *float64
}

// UpgradeDefinition is an authored purchasable upgrade
type UpgradeDefinition struct {
	ID               string
	Name             string
	Category         string
	Family           string
	Tags             []string
	Cost             float64
	Repeatable       bool
	Effects          map[EffectKey]float64
	Affects          Scope
	Modifiers        []EffectModifier
	Provides         map[string]int
	Consumes         map[string]int
	ExclusivityGroup string
	Requires         []string
}

// UpgradeOwnership tracks purchases of one upgrade
type UpgradeOwnership struct {
	Purchased bool `json:"purchased"`
	Count     int  `json:"count"`
}

// DescriptorKind separates flat multipliers from formula adjustments
type DescriptorKind string

const (
	DescriptorFlat    DescriptorKind = "flat"
	DescriptorFormula DescriptorKind = "formula"
)

// EffectDescriptor is one owned upgrade unit's contribution to a multiplier
// stack. It only lives for the duration of one resolver call.
type EffectDescriptor struct {
	SourceID    string
	SourceLabel string
	Target      EffectKey
	Kind        DescriptorKind
	Multiplier  float64
	Modifier    *EffectModifier
}
