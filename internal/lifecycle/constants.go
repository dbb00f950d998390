package lifecycle

const (
	// Epsilon is the magnitude below which an event counts as decayed away
	Epsilon = 1e-4

	// MinPercent and MaxPercent clamp an event's current percent
	MinPercent = -0.95
	MaxPercent = 5.0
)

// Player-facing copy
const (
	MsgAssetEventStarted = "%s hit your %s (%+.0f%% income)."
	MsgNicheEventStarted = "%s in %s (%+.0f%% income)."
	MsgAssetEventEnded   = "%s on your %s has run its course."
	MsgNicheEventEnded   = "%s in %s has faded."
)
