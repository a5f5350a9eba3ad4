// Package stats computes the summary statistics the solvers report across
// repeated stochastic runs: the arithmetic mean and the population standard
// deviation (divisor N, centred on the sample's own mean).
//
// Empty input is rejected with ErrEmptyInput rather than producing NaN.
//
// Complexity: O(n) time, O(1) extra space, two deterministic passes.
package stats
