// SPDX-License-Identifier: MIT

package seq

import (
	"cmp"
	"fmt"
	"sort"
)

// byFirst sorts keys and permutes vals in lockstep.
type byFirst[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

func (p byFirst[K, V]) Len() int           { return len(p.keys) }
func (p byFirst[K, V]) Less(i, j int) bool { return cmp.Less(p.keys[i], p.keys[j]) }
func (p byFirst[K, V]) Swap(i, j int) {
	p.keys[i], p.keys[j] = p.keys[j], p.keys[i]
	p.vals[i], p.vals[j] = p.vals[j], p.vals[i]
}

// SortByFirst reorders keys ascending and applies the same permutation to
// vals, in place. The sort is not stable: pairs with equal keys may change
// relative order. NaN keys sort first.
//
// Errors:
//   - ErrLengthMismatch if len(keys) != len(vals); both slices are left untouched.
//
// Complexity: O(n log n) time, O(1) extra space.
func SortByFirst[K cmp.Ordered, V any](keys []K, vals []V) error {
	if len(keys) != len(vals) {
		return fmt.Errorf("SortByFirst: %w: %d vs %d", ErrLengthMismatch, len(keys), len(vals))
	}
	sort.Sort(byFirst[K, V]{keys: keys, vals: vals})

	return nil
}

// Free resets *p to the zero value of T, dropping every reference it held.
// A nil p is a no-op.
func Free[T any](p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
}
