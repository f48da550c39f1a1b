package polymer

import (
	"math/rand"
	"strings"

	"polygen/domain/core"
)

// GenerationConfig parameterizes one polymer generation. Constructed per call,
// no persisted identity.
type GenerationConfig struct {
	Length       int     `json:"length"`        // Requested length in monomers
	GProbability float64 `json:"g_probability"` // Probability (or exact fraction, when fixed) of G
	FixedCount   bool    `json:"fixed_count"`   // Exact floor(units * p) G-units vs per-unit Bernoulli
	DimerMode    bool    `json:"dimer_mode"`    // Each unit expands to two identical symbols
}

// DefaultGenerationConfig mirrors the reference batch parameters
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Length:       100,
		GProbability: 0.25,
		FixedCount:   true,
		DimerMode:    false,
	}
}

// Validate rejects invalid configuration before any generation happens
func (c GenerationConfig) Validate() error {
	if c.GProbability < 0 || c.GProbability > 1 {
		return core.NewProbabilityError(c.GProbability)
	}
	if c.Length < 0 {
		return core.NewLengthError(c.Length)
	}
	return nil
}

// Units returns the number of independent random choices the config implies.
// In dimer mode each unit emits two symbols, so only floor(Length/2) choices
// are made and an odd requested length loses its last position.
func (c GenerationConfig) Units() int {
	if c.DimerMode {
		return c.Length / 2
	}
	return c.Length
}

// Generate produces one random polymer under cfg, drawing from rng.
//
// Fixed mode chooses exactly floor(units * GProbability) distinct unit
// positions via a uniform permutation prefix, so the realized G count is
// deterministic for every run. Non-fixed mode runs an independent Bernoulli
// trial per unit. Output follows unit-position order; no shuffling after
// assignment. The rng must be supplied by the caller so tests can pin a seed.
func Generate(rng *rand.Rand, cfg GenerationConfig) (Polymer, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	units := cfg.Units()
	if units == 0 {
		return "", nil
	}

	isG := make([]bool, units)
	if cfg.FixedCount {
		gCount := int(float64(units) * cfg.GProbability)
		for _, idx := range rng.Perm(units)[:gCount] {
			isG[idx] = true
		}
	} else {
		for i := range isG {
			isG[i] = rng.Float64() < cfg.GProbability
		}
	}

	var sb strings.Builder
	if cfg.DimerMode {
		sb.Grow(units * 2)
	} else {
		sb.Grow(units)
	}
	for i := 0; i < units; i++ {
		symbol := byte(SymbolL)
		if isG[i] {
			symbol = SymbolG
		}
		sb.WriteByte(symbol)
		if cfg.DimerMode {
			// A unit never emits a mixed pair
			sb.WriteByte(symbol)
		}
	}

	return Polymer(sb.String()), nil
}
