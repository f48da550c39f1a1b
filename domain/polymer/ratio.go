package polymer

import (
	"fmt"

	"polygen/domain/core"
)

// GLRatio returns the ratio of G monomers to L monomers.
//
// A polymer with zero L monomers (including the empty polymer) is outside the
// ratio's definition domain, so the error is surfaced explicitly rather than
// coerced to +Inf. Callers needing robustness must pre-check or handle it.
func GLRatio(p Polymer) (float64, error) {
	numL := p.CountL()
	if numL == 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrDivisionByZero, truncateForError(p))
	}
	return float64(p.CountG()) / float64(numL), nil
}

// truncateForError keeps error messages readable for long sequences
func truncateForError(p Polymer) string {
	const max = 16
	if len(p) <= max {
		return string(p)
	}
	return string(p[:max]) + "..."
}
