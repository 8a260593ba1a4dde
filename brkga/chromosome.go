// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// chromosome.go - random-key encoding.
//
// Position j of every chromosome holds vertex j; only keys vary between
// individuals. Gene-wise crossover therefore always yields a permutation
// and never needs repair.

package brkga

import (
	"fmt"
	"math/rand"
)

// Gene pairs a priority key in [0,1) with the vertex it ranks.
type Gene struct {
	Key    float64
	Vertex int
}

// Chromosome is a length-n sequence of genes. Chromosomes are treated as
// immutable once scored; elites share their backing array across generations.
type Chromosome []Gene

// NewRandomChromosome draws n independent U[0,1) keys, binding gene j to vertex j.
//
// Complexity: O(n).
func NewRandomChromosome(n int, rng *rand.Rand) Chromosome {
	c := make(Chromosome, n)
	var j int
	for j = 0; j < n; j++ {
		c[j] = Gene{Key: rng.Float64(), Vertex: j}
	}

	return c
}

// FromKeys builds the position-aligned chromosome for keys.
func FromKeys(keys []float64) Chromosome {
	c := make(Chromosome, len(keys))
	for j, k := range keys {
		c[j] = Gene{Key: k, Vertex: j}
	}

	return c
}

// Clone returns a deep copy.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)

	return out
}

// Validate checks len(c) == n and that the vertices form a permutation of 0..n-1.
//
// Complexity: O(n).
func (c Chromosome) Validate(n int) error {
	if len(c) != n {
		return fmt.Errorf("Validate: len=%d n=%d: %w", len(c), n, ErrChromosomeLength)
	}
	seen := make([]bool, n)
	for j, g := range c {
		if g.Vertex < 0 || g.Vertex >= n {
			return fmt.Errorf("Validate: gene %d vertex %d: %w", j, g.Vertex, ErrVertexOutOfRange)
		}
		if seen[g.Vertex] {
			return fmt.Errorf("Validate: gene %d vertex %d: %w", j, g.Vertex, ErrDuplicateVertex)
		}
		seen[g.Vertex] = true
	}

	return nil
}

// Individual is a chromosome with its cached fitness.
type Individual struct {
	Chromosome Chromosome
	Fitness    int
}

// Better reports whether a ranks strictly before b.
func Better(a, b Individual) bool { return a.Fitness > b.Fitness }

// Clone returns a deep copy of the individual.
func (ind Individual) Clone() Individual {
	return Individual{Chromosome: ind.Chromosome.Clone(), Fitness: ind.Fitness}
}
