// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// rng.go - deterministic random sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The engine owns exactly one and
//     draws from it only on its own goroutine, before any parallel decoding.

package brkga

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed bits verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	var s int64
	s = int64(seed)
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// maxKey is the largest float64 below 1.
var maxKey = math.Nextafter(1, 0)

// jittered returns base + U[0, width), capped at maxKey: the sum can round
// up to 1 for draws just below 1.
func jittered(rng *rand.Rand, base, width float64) float64 {
	return min(base+rng.Float64()*width, maxKey)
}
