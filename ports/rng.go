package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic batches.
// Generation must never reach for an implicit global source: every draw in a
// run comes from one stream obtained here, so a recorded seed reproduces the
// run exactly.
type RNGPort interface {
	// Stream creates a deterministic random number generator for a named
	// operation (e.g. one batch run)
	Stream(name string, seed int64) (*rand.Rand, error)
}
