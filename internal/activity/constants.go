package activity

import "github.com/osse101/incomeengine/internal/domain"

// DefaultHistory is the number of entries kept when no limit is configured
const DefaultHistory = 500

// CategoryInfo is used for entries recorded without a category
const CategoryInfo = domain.LogCategoryInfo
