package niche

// Score bounds
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Summary band thresholds
const (
	BoomingScore  = 75.0
	TrendingScore = 55.0
	SteadyScore   = 40.0
	CoolingScore  = 20.0
)

// Summary labels
const (
	SummaryBooming  = "Booming"
	SummaryTrending = "Trending"
	SummarySteady   = "Steady"
	SummaryCooling  = "Cooling"
	SummaryDormant  = "Dormant"
)
