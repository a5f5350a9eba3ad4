// Package dot computes inner products of equal-length vectors with a
// fork-join reduction over contiguous chunks.
//
// 🚀 Three overloads:
//
//	Real        — []float64   · []float64    → float64
//	RealComplex — []float64   · []complex128 → complex128
//	Complex     — []complex128 · []complex128 → complex128 (no conjugation)
//
// ✨ Execution model:
//   - The index range is cut into at most Workers contiguous chunks of at
//     least MinChunk elements each; short inputs run serially.
//   - Every worker owns one slot of a partials slice; nothing shared is
//     mutated concurrently.
//   - After the join, partials are summed in chunk order, so a fixed worker
//     count gives bit-identical results run to run. Different worker counts
//     agree with the serial sum within accumulated rounding error.
//
// ⚙️ Usage:
//
//	e, err := dot.Real(coefs, hc, dot.WithWorkers(8))
//	if errors.Is(err, dot.ErrLengthMismatch) { ... }
//
// Complexity: O(n) work, O(workers) extra space.
package dot
