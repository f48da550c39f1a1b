package polymer

// PairCounts holds the four adjacent-pair category counts for one polymer.
// INVARIANTS:
// - Every count is non-negative
// - GG+LL+GL+LG == Len()-1 for any valid polymer of length >= 1
// - Order matters: GL counts G followed by L, LG the reverse
type PairCounts struct {
	GG int `json:"gg"`
	LL int `json:"ll"`
	GL int `json:"gl"`
	LG int `json:"lg"`
}

// Total returns the number of classified adjacent pairs
func (c PairCounts) Total() int {
	return c.GG + c.LL + c.GL + c.LG
}

// CountPairs scans every adjacent index pair (i, i+1) exactly once and
// classifies it into one of the four mutually exclusive categories. Pairs
// touching an out-of-alphabet byte are not counted; run Validate first when
// the input did not come from Generate. Polymers of length <= 1 have no
// pairs, so all counts stay zero.
// Pure function: no randomness, no side effects, O(n) time, O(1) space.
func CountPairs(p Polymer) PairCounts {
	var counts PairCounts
	for i := 0; i+1 < len(p); i++ {
		switch {
		case p[i] == SymbolG && p[i+1] == SymbolG:
			counts.GG++
		case p[i] == SymbolL && p[i+1] == SymbolL:
			counts.LL++
		case p[i] == SymbolG && p[i+1] == SymbolL:
			counts.GL++
		case p[i] == SymbolL && p[i+1] == SymbolG:
			counts.LG++
		}
	}
	return counts
}
