package skills

// XP formula constants
const (
	// BaseXP is the base XP value used in level calculations
	BaseXP = 100.0

	// LevelExponent is the exponent used in the XP formula: XP = BaseXP * (Level ^ LevelExponent)
	LevelExponent = 1.5

	// MaxIterationLevel is the maximum level to iterate to when calculating levels
	MaxIterationLevel = 100
)

// Award conversion rates
const (
	// XPPerHour is awarded for every hour spent
	XPPerHour = 10.0

	// MoneyPerXP is how much spent money earns one XP
	MoneyPerXP = 25.0
)
