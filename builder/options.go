// SPDX-License-Identifier: MIT
// Package: misopt/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   - Options are applied in order; later options override earlier ones.
//   - Option constructors panic on meaningless inputs; constructors never do.
//   - Determinism is explicit: randomness only flows from WithSeed/WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor run.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newBuilderConfig resolves options over the deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
