// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// crossover.go - parameterized uniform crossover biased toward the elite parent.

package brkga

import "math/rand"

// Crossover builds a child gene by gene: with probability rhoe position j is
// copied from elite, otherwise from other. Both parents must be
// position-aligned and of equal length; the child is then a permutation too.
//
// Complexity: O(n).
func Crossover(elite, other Chromosome, rhoe float64, rng *rand.Rand) Chromosome {
	child := make(Chromosome, len(elite))
	var j int
	for j = 0; j < len(elite); j++ {
		if rng.Float64() < rhoe {
			child[j] = elite[j]
		} else {
			child[j] = other[j]
		}
	}

	return child
}

// pickParents draws one elite rank from [0,nElite) and one non-elite rank
// from [nElite,p), independently and uniformly.
func pickParents(rng *rand.Rand, nElite, p int) (int, int) {
	e := rng.Intn(nElite)
	o := nElite + rng.Intn(p-nElite)

	return e, o
}
