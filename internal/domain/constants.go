package domain

// Log sink categories
const (
	LogCategoryQuality = "quality"
	LogCategoryPassive = "passive"
	LogCategoryEvent   = "event"
	LogCategoryNiche   = "niche"
	LogCategoryFunds   = "funds"
	LogCategoryInfo    = "info"
	LogCategoryWarning = "warning"
)

// FailureReason explains why a quality action did not run
type FailureReason string

const (
	ReasonNone              FailureReason = ""
	ReasonUnknownInstance   FailureReason = "unknown_instance"
	ReasonUnknownAsset      FailureReason = "unknown_asset"
	ReasonUnknownAction     FailureReason = "unknown_action"
	ReasonNotActive         FailureReason = "not_active"
	ReasonLocked            FailureReason = "locked"
	ReasonExhausted         FailureReason = "exhausted"
	ReasonInsufficientTime  FailureReason = "insufficient_time"
	ReasonInsufficientMoney FailureReason = "insufficient_money"
)

// Funds contribution categories recorded for daily reporting
const (
	ContributionQualityCost = "quality_cost"
	ContributionQualityTime = "quality_time"
	ContributionSetupCost   = "setup_cost"
	ContributionUpgradeCost = "upgrade_cost"
	ContributionPassive     = "passive"
)
