// SPDX-License-Identifier: MIT
// Package: dot
//
// options.go — functional options for the fork-join reduction.
//
// Contract:
//   • Option constructors validate and PANIC on nonsensical values
//     (programmer error). The dot products themselves never panic.
//   • Options apply in order; the last one wins.

package dot

import "runtime"

// DefaultMinChunk is the smallest number of terms handed to one worker.
// Below it goroutine start-up costs more than the arithmetic.
const DefaultMinChunk = 4096

const (
	panicWorkersInvalid  = "dot: WithWorkers: n must be >= 1"
	panicMinChunkInvalid = "dot: WithMinChunk: n must be >= 1"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use the WithX constructors.
type Options struct {
	workers  int // >= 1; default GOMAXPROCS
	minChunk int // >= 1; DefaultMinChunk
}

// WithWorkers caps the number of concurrent partial sums.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSerial forces a single worker. Equivalent to WithWorkers(1).
func WithSerial() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithMinChunk sets the smallest chunk a worker receives.
// Panics if n < 1.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic(panicMinChunkInvalid)
	}

	return func(o *Options) { o.minChunk = n }
}

// gatherOptions resolves defaults and applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  runtime.GOMAXPROCS(0),
		minChunk: DefaultMinChunk,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// plan returns how many workers to use for n terms and the chunk length.
// The result satisfies workers*chunk >= n and every chunk is non-empty.
func (o Options) plan(n int) (workers, chunk int) {
	if n == 0 {
		return 1, 0
	}
	workers = o.workers
	if byChunk := n / o.minChunk; byChunk < workers {
		workers = byChunk
	}
	if workers <= 1 {
		return 1, n
	}
	chunk = (n + workers - 1) / workers
	workers = (n + chunk - 1) / chunk

	return workers, chunk
}
