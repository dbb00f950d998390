package upgrade

import (
	"math"

	"github.com/osse101/incomeengine/internal/domain"
)

// ApplyModifier transforms value according to a formula modifier and its
// optional bounds
func ApplyModifier(modifier *domain.EffectModifier, value float64) float64 {
	if modifier == nil {
		return value
	}

	var result float64

	switch modifier.Type {
	case domain.ModifierTypeMultiplicative:
		// value * (1 + amount)
		// Example: 1.2 * (1 + 0.25) = 1.5
		result = value * (1 + modifier.Amount)

	case domain.ModifierTypeAdditive:
		// value + amount
		// Example: 1.2 + 0.3 = 1.5
		result = value + modifier.Amount

	case domain.ModifierTypeFixed:
		// Ignores the running value
		result = modifier.Amount

	default:
		return value
	}

	if modifier.Max != nil {
		result = math.Min(result, *modifier.Max)
	}
	if modifier.Min != nil {
		result = math.Max(result, *modifier.Min)
	}

	return domain.Finite(result)
}
