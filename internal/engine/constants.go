package engine

// Player-facing log copy
const (
	MsgLaunched         = "You launched a new %s. It needs %d day(s) of setup."
	MsgLaunchedReady    = "You launched a new %s. It is earning from today."
	MsgActivated        = "Your %s finished setup and starts earning tomorrow."
	MsgPayout           = "Your %s earned %s today."
	MsgUpgradePurchased = "You bought %s for %s."
	MsgCourseCompleted  = "You completed %s."
	MsgDayEnded         = "Day %d closed: earned %s, spent %s."
	MsgNicheAssigned    = "Your %s now targets the %s niche."
)

// Labels used on daily contributions
const (
	LabelLaunchFormat  = "Launch %s"
	LabelPayoutFormat  = "%s payout"
	LabelUpgradeFormat = "Upgrade: %s"
)
