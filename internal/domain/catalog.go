package domain

// NicheDefinition is an authored audience-demand category
type NicheDefinition struct {
	ID         string
	Name       string
	BaseScore  float64
	Volatility float64
}

// CourseBonus is one education bonus granted by a completed course
type CourseBonus struct {
	AssetID string
	Percent float64
	Flat    float64
	Type    string
}

// CourseDefinition is an authored education course
type CourseDefinition struct {
	ID      string
	Name    string
	Bonuses []CourseBonus
}

// Education bonus types
const (
	EducationBonusPercent = "percent"
	EducationBonusFlat    = "flat"
)
