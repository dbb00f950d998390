package domain

import "math"

// Finite coerces NaN and infinities to zero
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative coerces non-finite and negative values to zero
func NonNegative(v float64) float64 {
	v = Finite(v)
	if v < 0 {
		return 0
	}
	return v
}
