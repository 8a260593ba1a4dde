// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures and random instance
// generators for misopt.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(7))
//	r, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(500, 0.02))
//
// The classic topologies have closed-form independence numbers and serve as
// oracles in tests; RandomSparse backs the `misopt generate` command.
package builder
