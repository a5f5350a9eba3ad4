// SPDX-License-Identifier: MIT

package dot

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sciutil/internal/logging"
)

const (
	opReal        = "Real"
	opRealComplex = "RealComplex"
	opComplex     = "Complex"
)

// Scalar is the accumulator type of a dot product.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Real returns Σ a[i]·b[i].
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
func Real(a, b []float64, opts ...Option) (float64, error) {
	if len(a) != len(b) {
		return 0, dotErrorf(opReal, ErrLengthMismatch)
	}

	s, err := reduce(a, b, mulReal, gatherOptions(opts...))
	if err != nil {
		return 0, dotErrorf(opReal, err)
	}

	return s, nil
}

// RealComplex returns Σ a[i]·b[i] with real a and complex b.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
func RealComplex(a []float64, b []complex128, opts ...Option) (complex128, error) {
	if len(a) != len(b) {
		return 0, dotErrorf(opRealComplex, ErrLengthMismatch)
	}

	s, err := reduce(a, b, mulRealComplex, gatherOptions(opts...))
	if err != nil {
		return 0, dotErrorf(opRealComplex, err)
	}

	return s, nil
}

// Complex returns Σ a[i]·b[i]. Neither operand is conjugated.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
func Complex(a, b []complex128, opts ...Option) (complex128, error) {
	if len(a) != len(b) {
		return 0, dotErrorf(opComplex, ErrLengthMismatch)
	}

	s, err := reduce(a, b, mulComplex, gatherOptions(opts...))
	if err != nil {
		return 0, dotErrorf(opComplex, err)
	}

	return s, nil
}

func mulReal(x, y float64) float64 { return x * y }

// mulRealComplex scales both parts by x; it does not promote x to complex(x, 0),
// so 0·Inf terms are never introduced.
func mulRealComplex(x float64, y complex128) complex128 {
	return complex(x*real(y), x*imag(y))
}

func mulComplex(x, y complex128) complex128 { return x * y }

// reduce splits [0,n) into contiguous chunks, sums each chunk in its own
// goroutine into a private slot, joins, then adds the slots in chunk order.
// Caller guarantees len(a) == len(b).
func reduce[A, B any, R Scalar](a []A, b []B, mul func(A, B) R, o Options) (R, error) {
	n := len(a)
	workers, chunk := o.plan(n)
	if workers == 1 {
		return partial(a, b, mul), nil
	}

	if ce := logging.Named("dot").Check(zap.DebugLevel, "fork-join reduction"); ce != nil {
		ce.Write(zap.Int("n", n), zap.Int("workers", workers), zap.Int("chunk", chunk))
	}

	partials := make([]R, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		w := w
		g.Go(func() error {
			partials[w] = partial(a[lo:hi], b[lo:hi], mul)

			return nil
		})
	}
	var s R
	if err := g.Wait(); err != nil {
		return s, err
	}
	for _, p := range partials {
		s += p
	}

	return s, nil
}

// partial is the serial kernel: a fixed left→right accumulation.
func partial[A, B any, R Scalar](a []A, b []B, mul func(A, B) R) R {
	b = b[:len(a)]
	var s R
	for i := range a {
		s += mul(a[i], b[i])
	}

	return s
}
