package polymer

import (
	"fmt"
	"strings"

	"polygen/domain/core"
)

// Symbol constants for the two-letter polymer alphabet
const (
	SymbolG = 'G'
	SymbolL = 'L'
)

// Polymer is an ordered sequence of monomers over the alphabet {G, L}.
// Immutable once generated.
type Polymer string

// Len returns the number of monomers in the polymer
func (p Polymer) Len() int {
	return len(p)
}

// String returns the raw sequence
func (p Polymer) String() string {
	return string(p)
}

// CountG returns the number of G monomers
func (p Polymer) CountG() int {
	return strings.Count(string(p), string(SymbolG))
}

// CountL returns the number of L monomers
func (p Polymer) CountL() int {
	return strings.Count(string(p), string(SymbolL))
}

// Validate checks that every symbol belongs to the {G, L} alphabet.
// The empty polymer is valid.
func (p Polymer) Validate() error {
	for i := 0; i < len(p); i++ {
		if p[i] != SymbolG && p[i] != SymbolL {
			return fmt.Errorf("%w: %q at position %d", core.ErrInvalidAlphabet, p[i], i)
		}
	}
	return nil
}
