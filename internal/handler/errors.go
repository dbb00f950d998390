package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages for engine errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgAssetNotFoundError    = "Asset type not found"
	ErrMsgInstanceNotFoundError = "Asset not found"
	ErrMsgActionNotFoundError   = "Action not found"
	ErrMsgUpgradeNotFoundError  = "Upgrade not found"
	ErrMsgNicheNotFoundError    = "Niche not found"
	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgUpgradeOwnedError     = "You already own that upgrade"
	ErrMsgUpgradeLockedError    = "That upgrade needs another upgrade first"
	ErrMsgUpgradeConflictError  = "That upgrade conflicts with one you own"
	ErrMsgSlotCapacityError     = "Not enough free slots for that upgrade"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgNicheAssigned     = "Niche assigned"
	MsgUpgradePurchased  = "Upgrade purchased"
	MsgCourseCompleted   = "Course completed"
	HealthStatusOK       = "ok"
	HealthStatusNotReady = "unavailable"
)
