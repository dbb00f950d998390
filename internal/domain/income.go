package domain

// EntryType classifies a payout contribution
type EntryType string

const (
	EntryTypeBase      EntryType = "base"
	EntryTypeModifier  EntryType = "modifier"
	EntryTypeNiche     EntryType = "niche"
	EntryTypeEvent     EntryType = "event"
	EntryTypeEducation EntryType = "education"
	EntryTypeUpgrade   EntryType = "upgrade"
)

// IncomeRange is a payout band in whole currency units
type IncomeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IncomeEntry is one line of a payout breakdown
type IncomeEntry struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Amount  int       `json:"amount"`
	Type    EntryType `json:"type"`
	Percent float64   `json:"percent,omitempty"`
}

// IncomeBreakdown is the stored result of one payout roll. Entries always sum
// to Total.
type IncomeBreakdown struct {
	Day     int           `json:"day"`
	Total   int           `json:"total"`
	Entries []IncomeEntry `json:"entries"`
}

// Sum adds the entry amounts
func (b IncomeBreakdown) Sum() int {
	sum := 0
	for _, e := range b.Entries {
		sum += e.Amount
	}
	return sum
}

// IncomeContribution is an unrounded sub-contribution reported by a custom modifier
type IncomeContribution struct {
	ID     string
	Label  string
	Amount float64
}

// IncomeRecorder collects named sub-contributions from a custom modifier
type IncomeRecorder interface {
	Record(id, label string, amount float64)
}

// IncomeModifierInput is passed to an asset type's custom income modifier
type IncomeModifierInput struct {
	Asset    *AssetDefinition
	Instance *AssetInstance
	Base     float64
	Day      int
}

// IncomeModifierResult carries either a replacement total or a structured
// breakdown. Total takes precedence when set.
type IncomeModifierResult struct {
	Total   *float64
	Entries []IncomeContribution
}

// IncomeModifier is an asset type's custom payout hook
type IncomeModifier interface {
	ModifyIncome(in IncomeModifierInput, rec IncomeRecorder) IncomeModifierResult
}

// EducationBonus is one applied education bonus
type EducationBonus struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Extra float64 `json:"extra"`
	Type  string  `json:"type"`
}

// EducationResult is what the education provider returns for one payout
type EducationResult struct {
	Amount  float64
	Applied []EducationBonus
}
