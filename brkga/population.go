// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// population.go - ordered collection of exactly p individuals.
//
// Invariants:
//   - Len() == p at all times after construction.
//   - Sorted by fitness descending (stable) whenever Best, Worst, Elite or At
//     are used for positional reasoning; every mutating method re-sorts.
//   - A new generation is installed by swapping the whole slice, so no reader
//     can observe a mix of current and next individuals.

package brkga

import (
	"cmp"
	"slices"
)

// Population owns the current generation. Not safe for concurrent use.
type Population struct {
	inds []Individual
}

// NewPopulation takes ownership of inds and sorts them.
func NewPopulation(inds []Individual) *Population {
	p := &Population{inds: inds}
	p.Sort()

	return p
}

// Len returns p.
func (p *Population) Len() int { return len(p.inds) }

// At returns the individual at rank i (0 = best).
func (p *Population) At(i int) Individual { return p.inds[i] }

// Best returns rank 0.
func (p *Population) Best() Individual { return p.inds[0] }

// Worst returns the last rank.
func (p *Population) Worst() Individual { return p.inds[len(p.inds)-1] }

// Elite returns the top k ranks. The slice aliases the population and must
// not be modified.
func (p *Population) Elite(k int) []Individual { return p.inds[:k] }

// Individuals returns a shallow snapshot of the ranking.
func (p *Population) Individuals() []Individual { return slices.Clone(p.inds) }

// Sort orders by fitness descending; ties keep their current relative order.
//
// Complexity: O(p log p).
func (p *Population) Sort() {
	slices.SortStableFunc(p.inds, func(a, b Individual) int { return cmp.Compare(b.Fitness, a.Fitness) })
}

// ReplaceWorst overwrites the last rank with ind and re-sorts.
func (p *Population) ReplaceWorst(ind Individual) {
	p.inds[len(p.inds)-1] = ind
	p.Sort()
}

// swap installs next as the current generation and sorts it.
func (p *Population) swap(next []Individual) {
	p.inds = next
	p.Sort()
}
