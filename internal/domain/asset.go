package domain

// AssetStatus is the lifecycle phase of an asset instance
type AssetStatus string

const (
	AssetStatusSetup  AssetStatus = "setup"
	AssetStatusActive AssetStatus = "active"
)

// AssetInstance is one running copy of an asset type. The game state owns
// exactly one record per instance; every engine component mutates it through
// the same pointer.
type AssetInstance struct {
	ID                  string           `json:"id"`
	AssetID             string           `json:"asset_id"`
	Status              AssetStatus      `json:"status"`
	NicheID             string           `json:"niche_id,omitempty"`
	Quality             QualityState     `json:"quality"`
	DailyUsage          map[string]int   `json:"daily_usage"`
	UsageDay            int              `json:"usage_day"`
	SetupDaysRemaining  int              `json:"setup_days_remaining"`
	LaunchedOnDay       int              `json:"launched_on_day"`
	DaysActive          int              `json:"days_active"`
	LastIncome          int              `json:"last_income"`
	TotalIncome         int              `json:"total_income"`
	LastIncomeBreakdown *IncomeBreakdown `json:"last_income_breakdown,omitempty"`
	EducationTrace      []EducationBonus `json:"education_trace,omitempty"`
}

// QualityState holds the quality level and per-track progress of an instance
type QualityState struct {
	Level    int                `json:"level"`
	Progress map[string]float64 `json:"progress"`
}

// IsActive reports whether the instance is producing income
func (i *AssetInstance) IsActive() bool {
	return i != nil && i.Status == AssetStatusActive
}

// UsesToday returns how many times an action ran on the given day.
// Counters stamped with an older day count as zero.
func (i *AssetInstance) UsesToday(actionID string, day int) int {
	if i.UsageDay != day || i.DailyUsage == nil {
		return 0
	}
	return i.DailyUsage[actionID]
}

// ResetDailyUsage clears usage counters and stamps them with day
func (i *AssetInstance) ResetDailyUsage(day int) {
	i.DailyUsage = make(map[string]int)
	i.UsageDay = day
}

// Clone returns a deep copy suitable for read-only views
func (i *AssetInstance) Clone() *AssetInstance {
	if i == nil {
		return nil
	}
	out := *i
	out.Quality.Progress = make(map[string]float64, len(i.Quality.Progress))
	for k, v := range i.Quality.Progress {
		out.Quality.Progress[k] = v
	}
	out.DailyUsage = make(map[string]int, len(i.DailyUsage))
	for k, v := range i.DailyUsage {
		out.DailyUsage[k] = v
	}
	if i.LastIncomeBreakdown != nil {
		b := *i.LastIncomeBreakdown
		b.Entries = append([]IncomeEntry(nil), i.LastIncomeBreakdown.Entries...)
		out.LastIncomeBreakdown = &b
	}
	out.EducationTrace = append([]EducationBonus(nil), i.EducationTrace...)
	return &out
}

// AssetDefinition is the authored description of an asset type
type AssetDefinition struct {
	ID             string
	Name           string
	Singular       string
	Tags           []string
	Family         string
	Category       string
	SetupDays      int
	SetupCost      float64
	BaseIncome     IncomeRange
	Levels         []QualityLevelDefinition
	Actions        []QualityActionDefinition
	IncomeModifier IncomeModifier
	Skills         []SkillWeight
}

// Action looks up a quality action by id
func (a *AssetDefinition) Action(id string) (*QualityActionDefinition, bool) {
	for i := range a.Actions {
		if a.Actions[i].ID == id {
			return &a.Actions[i], true
		}
	}
	return nil, false
}

// Subject describes the asset type for upgrade scope matching
func (a *AssetDefinition) Subject() Subject {
	return Subject{
		Kind:     SubjectKindAsset,
		ID:       a.ID,
		Tags:     a.Tags,
		Family:   a.Family,
		Category: a.Category,
	}
}

// DisplayName returns the singular label, falling back to the type name
func (a *AssetDefinition) DisplayName() string {
	if a.Singular != "" {
		return a.Singular
	}
	return a.Name
}

// SubjectKind separates assets from hustles in upgrade scopes
type SubjectKind string

const (
	SubjectKindAsset  SubjectKind = "asset"
	SubjectKindHustle SubjectKind = "hustle"
)

// Subject is anything an upgrade can target
type Subject struct {
	Kind     SubjectKind
	ID       string
	Tags     []string
	Family   string
	Category string
}

// SkillWeight splits awarded skill progress between skills
type SkillWeight struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}
