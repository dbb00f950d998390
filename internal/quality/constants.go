package quality

// Player-facing failure copy
const (
	MsgNotActive         = "%s is still being set up."
	MsgLocked            = "%s is locked."
	MsgRequiresUpgrade   = "%s requires %s."
	MsgExhausted         = "You've already run %s %d times today on your %s."
	MsgInsufficientTime  = "%s needs %s but only %s is left today."
	MsgInsufficientMoney = "%s costs %s but you only have %s."
	MsgCompleted         = "You finished %s on your %s."
	MsgLevelUp           = "Your %s reached quality %d: %s!"
)
