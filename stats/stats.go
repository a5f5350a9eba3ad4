// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Mean and population standard deviation over a flat []float64.
//
// Determinism:
//   - Fixed left→right traversal; identical input gives bit-identical output.

package stats

import (
	"fmt"
	"math"
)

// Operation name constants for error wrapping.
const (
	opAvg       = "Avg"
	opStdev     = "Stdev"
	opMeanStdev = "MeanStdev"
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Avg returns the arithmetic mean Σv / len(v).
//
// Errors:
//   - ErrEmptyInput when len(v) == 0 (the returned mean is 0).
func Avg(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, statsErrorf(opAvg, ErrEmptyInput)
	}

	return sum(v) / float64(len(v)), nil
}

// Stdev returns the population standard deviation of v:
//
//	sqrt( Σ (v[i] - mean)² / N )
//
// where mean is the mean of v itself. A single sample yields 0.
//
// Errors:
//   - ErrEmptyInput when len(v) == 0.
func Stdev(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, statsErrorf(opStdev, ErrEmptyInput)
	}
	_, std := meanStdev(v)

	return std, nil
}

// MeanStdev returns the mean and population standard deviation in one call.
//
// Errors:
//   - ErrEmptyInput when len(v) == 0.
func MeanStdev(v []float64) (mean, std float64, err error) {
	if len(v) == 0 {
		return 0, 0, statsErrorf(opMeanStdev, ErrEmptyInput)
	}
	mean, std = meanStdev(v)

	return mean, std, nil
}

// meanStdev assumes len(v) > 0.
// Two passes: mean first, then squared deviations from it.
func meanStdev(v []float64) (mean, std float64) {
	n := float64(len(v))
	mean = sum(v) / n

	var d, sq float64
	for _, x := range v {
		d = x - mean
		sq += d * d
	}

	return mean, math.Sqrt(sq / n)
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}
