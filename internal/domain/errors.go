package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgAssetNotFound     = "asset type not found"
	ErrMsgInstanceNotFound  = "asset instance not found"
	ErrMsgActionNotFound    = "quality action not found"
	ErrMsgUpgradeNotFound   = "upgrade not found"
	ErrMsgNicheNotFound     = "niche not found"
	ErrMsgTemplateNotFound  = "event template not found"
	ErrMsgInvalidCatalog    = "invalid catalog"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUpgradeOwned      = "upgrade already owned"
	ErrMsgUpgradeLocked     = "upgrade prerequisites missing"
	ErrMsgUpgradeConflict   = "upgrade conflicts with an owned upgrade"
	ErrMsgSlotCapacity      = "not enough slot capacity"
	ErrMsgInvalidInput      = "invalid input"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context.
var (
	ErrAssetNotFound     = errors.New(ErrMsgAssetNotFound)
	ErrInstanceNotFound  = errors.New(ErrMsgInstanceNotFound)
	ErrActionNotFound    = errors.New(ErrMsgActionNotFound)
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)
	ErrNicheNotFound     = errors.New(ErrMsgNicheNotFound)
	ErrTemplateNotFound  = errors.New(ErrMsgTemplateNotFound)
	ErrInvalidCatalog    = errors.New(ErrMsgInvalidCatalog)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUpgradeOwned      = errors.New(ErrMsgUpgradeOwned)
	ErrUpgradeLocked     = errors.New(ErrMsgUpgradeLocked)
	ErrUpgradeConflict   = errors.New(ErrMsgUpgradeConflict)
	ErrSlotCapacity      = errors.New(ErrMsgSlotCapacity)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
)
