// Package alias builds Vose alias tables for O(1) sampling from a discrete
// distribution, as used to pick excitations proportional to their weight.
//
// 🚀 What is an alias table?
//
//	Two parallel arrays of length n, Probs and Aliases. To sample: draw a
//	bucket i uniformly from [0,n), then keep i with probability Probs[i],
//	otherwise return Aliases[i]. The mixture reproduces the input
//	distribution exactly (up to rounding).
//
// ✨ Construction (Vose):
//  1. Divide the weights by their maximum, then by their sum, and scale by
//     n (mean mass 1). Extreme finite weights never overflow the sum.
//  2. Split indices into small (< 1) and large (≥ 1) worklists.
//  3. Pop one small s and one large l: Probs[s] = scaled[s], Aliases[s] = l,
//     and l donates 1 - scaled[s]; push l back to whichever list it now fits.
//  4. Whatever remains when either list empties is rounding residue and is
//     finalized with Probs = 1.
//
// Each pairing finalizes one index, so step 3 runs at most n times.
// Time O(n), extra space O(n).
//
// ⚙️ Usage:
//
//	probs, aliases, err := alias.Setup([]float64{0.5, 0.25, 0.25})
//
//	tbl, err := alias.New(weights, alias.WithSeed(7))
//	i := tbl.Sample()
package alias
