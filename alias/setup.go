// SPDX-License-Identifier: MIT

package alias

import (
	"fmt"
	"math"
)

const (
	opSetup     = "Setup"
	opSetupInto = "SetupInto"
	opNew       = "New"
)

// worklist is an array-backed stack of bucket indices.
type worklist []int

func (w *worklist) push(i int) { *w = append(*w, i) }

func (w *worklist) pop() int {
	l := len(*w) - 1
	i := (*w)[l]
	*w = (*w)[:l]

	return i
}

// Setup builds the alias arrays for oldProbs.
// See SetupInto for the contract; Setup allocates the outputs.
func Setup(oldProbs []float64) (newProbs []float64, aliases []int, err error) {
	newProbs = make([]float64, len(oldProbs))
	aliases = make([]int, len(oldProbs))
	if err = setupInto(oldProbs, newProbs, aliases); err != nil {
		return nil, nil, aliasErrorf(opSetup, err)
	}

	return newProbs, aliases, nil
}

// SetupInto writes the alias arrays for oldProbs into caller-owned slices.
//
// Behavior:
//   - Weights are normalized by their sum, so they need not sum to 1.
//   - All-zero weights produce the uniform table (every Probs[i] = 1).
//   - Buckets finalized with probability 1 alias themselves, so every entry
//     of aliases is a valid index.
//   - len(oldProbs) == 0 is a no-op.
//
// Errors:
//   - ErrLengthMismatch if newProbs or aliases differ in length from oldProbs.
//   - ErrNegativeWeight, ErrInvalidWeight on bad weights (outputs untouched).
func SetupInto(oldProbs, newProbs []float64, aliases []int) error {
	n := len(oldProbs)
	if len(newProbs) != n || len(aliases) != n {
		return aliasErrorf(opSetupInto, fmt.Errorf("%w: in=%d probs=%d aliases=%d",
			ErrLengthMismatch, n, len(newProbs), len(aliases)))
	}
	if err := setupInto(oldProbs, newProbs, aliases); err != nil {
		return aliasErrorf(opSetupInto, err)
	}

	return nil
}

// setupInto assumes equal lengths.
func setupInto(oldProbs, newProbs []float64, aliases []int) error {
	n := len(oldProbs)
	if n == 0 {
		return nil
	}

	// Stage 1 (Validate): finite, non-negative; track the largest weight.
	var peak float64
	for i, p := range oldProbs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: index %d", ErrInvalidWeight, i)
		}
		if p < 0 {
			return fmt.Errorf("%w: index %d (%g)", ErrNegativeWeight, i, p)
		}
		if p > peak {
			peak = p
		}
	}

	// Stage 2 (Degenerate): zero mass means nothing to prefer.
	if peak == 0 {
		for i := range newProbs {
			newProbs[i] = 1
			aliases[i] = i
		}

		return nil
	}

	// Stage 3 (Scale): weights relative to the peak lie in [0,1], so their
	// sum lies in [1,n] and neither the sum nor the quotient can overflow.
	// newProbs doubles as the scaled-mass buffer.
	var total float64
	for i, p := range oldProbs {
		newProbs[i] = p / peak
		total += newProbs[i]
	}
	fn := float64(n)
	small := make(worklist, 0, n)
	large := make(worklist, 0, n)
	for i := range newProbs {
		newProbs[i] = newProbs[i] / total * fn
		aliases[i] = i
		if newProbs[i] < 1 {
			small.push(i)
		} else {
			large.push(i)
		}
	}

	// Stage 4 (Pair): each pass finalizes exactly one small index.
	for len(small) > 0 && len(large) > 0 {
		s := small.pop()
		l := large.pop()
		aliases[s] = l // newProbs[s] already holds its scaled mass

		newProbs[l] = (newProbs[l] + newProbs[s]) - 1
		if newProbs[l] < 1 {
			small.push(l)
		} else {
			large.push(l)
		}
	}

	// Stage 5 (Residue): leftovers on either list are ~1 up to rounding.
	for len(large) > 0 {
		newProbs[large.pop()] = 1
	}
	for len(small) > 0 {
		newProbs[small.pop()] = 1
	}

	return nil
}
