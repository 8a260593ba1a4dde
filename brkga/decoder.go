// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// decoder.go - chromosome → independent set.
//
// Algorithm:
//  1. Stable-sort genes by key descending; equal keys keep chromosome order.
//  2. Walk the order. An unblocked vertex is selected, then it and all of its
//     neighbors are blocked.
//
// Selecting a vertex blocks its neighbors before they are reached, so the
// output is always independent. The blocked array is allocated per call,
// which makes Decode safe for concurrent use on distinct or shared chromosomes.
//
// Complexity: O(n log n + m) time, O(n) space per call.

package brkga

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/misopt/core"
)

// Decoder maps chromosomes of a fixed graph to independent sets.
type Decoder struct {
	g *core.Graph
}

// NewDecoder binds a decoder to g.
func NewDecoder(g *core.Graph) (*Decoder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Decoder{g: g}, nil
}

// Order returns the vertex count chromosomes must match.
func (d *Decoder) Order() int { return d.g.Order() }

// Decode returns the selected vertices in selection order.
func (d *Decoder) Decode(c Chromosome) ([]int, error) {
	n := d.g.Order()
	if len(c) != n {
		return nil, fmt.Errorf("Decode: len=%d n=%d: %w", len(c), n, ErrChromosomeLength)
	}

	order := slices.Clone(c)
	slices.SortStableFunc(order, func(a, b Gene) int { return cmp.Compare(b.Key, a.Key) })

	var (
		blocked = make([]bool, n)
		out     = make([]int, 0, n)
		v       int
	)
	for _, gene := range order {
		v = gene.Vertex
		if v < 0 || v >= n {
			return nil, fmt.Errorf("Decode: vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if blocked[v] {
			continue
		}
		out = append(out, v)
		blocked[v] = true
		for _, w := range d.g.Neighbors(v) {
			blocked[w] = true
		}
	}

	return out, nil
}

// Fitness returns the size of the decoded set.
func (d *Decoder) Fitness(c Chromosome) (int, error) {
	set, err := d.Decode(c)
	if err != nil {
		return 0, err
	}
	return len(set), nil
}

// Score wraps c into a scored Individual.
func (d *Decoder) Score(c Chromosome) (Individual, error) {
	f, err := d.Fitness(c)
	if err != nil {
		return Individual{}, err
	}
	return Individual{Chromosome: c, Fitness: f}, nil
}
