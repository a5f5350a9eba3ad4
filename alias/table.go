// SPDX-License-Identifier: MIT

package alias

import "math/rand"

// Table is an alias-method sampler over n outcomes.
// The arrays are read-only after New; Sample mutates the RNG, so a Table
// must not be sampled from several goroutines at once.
type Table struct {
	probs   []float64
	aliases []int
	rng     *rand.Rand
}

// New builds a sampler for weights (normalized internally).
//
// Errors:
//   - ErrEmptyTable if len(weights) == 0.
//   - ErrNegativeWeight, ErrInvalidWeight from Setup.
func New(weights []float64, opts ...Option) (*Table, error) {
	if len(weights) == 0 {
		return nil, aliasErrorf(opNew, ErrEmptyTable)
	}
	probs := make([]float64, len(weights))
	aliases := make([]int, len(weights))
	if err := setupInto(weights, probs, aliases); err != nil {
		return nil, aliasErrorf(opNew, err)
	}
	cfg := newTableConfig(opts...)

	return &Table{probs: probs, aliases: aliases, rng: cfg.rng}, nil
}

// Len returns the number of outcomes.
func (t *Table) Len() int { return len(t.probs) }

// Probs returns a copy of the acceptance probabilities.
func (t *Table) Probs() []float64 {
	out := make([]float64, len(t.probs))
	copy(out, t.probs)

	return out
}

// Aliases returns a copy of the fallback indices.
func (t *Table) Aliases() []int {
	out := make([]int, len(t.aliases))
	copy(out, t.aliases)

	return out
}

// Sample draws one outcome index: a uniform bucket, then a biased coin.
func (t *Table) Sample() int {
	i := t.rng.Intn(len(t.probs))
	if t.rng.Float64() < t.probs[i] {
		return i
	}

	return t.aliases[i]
}
