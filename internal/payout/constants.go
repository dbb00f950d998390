package payout

// NicheMateriality is the smallest niche delta worth recording
const NicheMateriality = 0.01

// Entry ids and labels
const (
	EntryIDBase        = "base"
	EntryIDModifier    = "modifier"
	EntryIDAdjustment  = "modifier:adjustment"
	EntryPrefixNiche   = "niche:"
	EntryPrefixEvent   = "event:"
	EntryPrefixCourse  = "education:"
	EntryPrefixUpgrade = "upgrade:"

	LabelBase       = "Base income"
	LabelModifier   = "Asset bonus"
	LabelAdjustment = "Other adjustments"
)
