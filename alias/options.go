// SPDX-License-Identifier: MIT
// Package: alias
//
// options.go — functional options for the Table sampler.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: without WithSeed/WithRand the sampler is
//     seeded with DefaultSeed, so two fresh tables draw the same stream.

package alias

import "math/rand"

// DefaultSeed seeds a Table that was given no RNG option.
const DefaultSeed int64 = 1

// Option customizes a Table before it is built.
type Option func(*tableConfig)

type tableConfig struct {
	rng *rand.Rand // nil → rand.New(rand.NewSource(DefaultSeed))
}

// WithRand uses r for every draw. Panics on nil.
// The Table takes over r: sharing it with other goroutines is a data race.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("alias: WithRand(nil)")
	}

	return func(c *tableConfig) { c.rng = r }
}

// WithSeed creates a private *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *tableConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newTableConfig(opts ...Option) tableConfig {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
