package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededRandom returns a deterministic float source. A zero seed falls back
// to the shared global source.
func SeededRandom(seed int64) func() float64 {
	if seed == 0 {
		return RandomFloat
	}
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return r.Float64
}

// RandomBetween maps a roll in [0,1) onto [min,max]
func RandomBetween(min, max float64, rnd func() float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*rnd()
}

// RandomIntBetween maps a roll in [0,1) onto the integers [min,max]
func RandomIntBetween(min, max int, rnd func() float64) int {
	if max <= min {
		return min
	}
	n := min + int(math.Floor(rnd()*float64(max-min+1)))
	if n > max {
		n = max
	}
	return n
}

// Clamp limits v to [min,max]
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
