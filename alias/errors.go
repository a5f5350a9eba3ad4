// SPDX-License-Identifier: MIT
// Package: alias
//
// errors.go — sentinel errors. Callers branch with errors.Is; context is
// attached with %w by the operation that failed.

package alias

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("alias: negative weight")

	// ErrInvalidWeight indicates a NaN or ±Inf weight.
	ErrInvalidWeight = errors.New("alias: weight is NaN or Inf")

	// ErrLengthMismatch indicates output slices whose length differs from the input.
	ErrLengthMismatch = errors.New("alias: output length differs from input")

	// ErrEmptyTable indicates a sampler was requested for zero outcomes.
	ErrEmptyTable = errors.New("alias: table has no outcomes")
)

func aliasErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
