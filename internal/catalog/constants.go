package catalog

import "github.com/osse101/incomeengine/internal/domain"

// DefaultLevelCacheSize bounds the number of asset types with cached sorted levels
const DefaultLevelCacheSize = 256

// DefaultEffectBounds applies to effect keys without an authored clamp band
var DefaultEffectBounds = domain.Bounds{Min: 0, Max: 1000}

// Strategy variant names accepted in authored data
const (
	LockMinLevel      = "min_level"
	LockMinDaysActive = "min_days_active"
	LockRequiresNiche = "requires_niche"

	ProgressConstant = "constant"
	ProgressPerLevel = "per_level"

	CompletionBonusProgress = "bonus_progress"

	IncomeLevelBonus = "level_bonus"
	IncomeTrackBonus = "track_bonus"
)

// Message placeholders substituted by authored message templates
const (
	PlaceholderAsset   = "{asset}"
	PlaceholderAction  = "{action}"
	PlaceholderUpgrade = "{upgrade}"
	PlaceholderLevel   = "{level}"
)

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
)
