package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// SeededIDs returns a UUID source that repeats for the same seed, so seeded
// runs report identical ids. A zero seed falls back to random UUIDs.
func SeededIDs(seed int64) func() string {
	if seed == 0 {
		return uuid.NewString
	}
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Reproducible ids, not security critical
	return func() string {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}
}
