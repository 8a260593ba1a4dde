// SPDX-License-Identifier: MIT

// Package greedy provides constructive heuristics for maximum independent set.
//
// All three heuristics share one rule: take an unmarked vertex, then mark it
// and its neighbors. They differ only in which unmarked vertex comes next:
//
//	ByID           - smallest id.
//	Deterministic  - smallest static degree, ties by id.
//	Randomized     - uniform pick among the k unmarked vertices of smallest
//	                 static degree (restricted candidate list).
//
// Every result is a maximal independent set of g.
package greedy

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/misopt/core"
)

// ErrBadRCL indicates a restricted candidate list length below 1.
var ErrBadRCL = errors.New("greedy: RCL length must be at least 1")

// ErrNeedRand indicates Randomized was called without a random source.
var ErrNeedRand = errors.New("greedy: rng is required")

// byDegree returns 0..n-1 sorted by degree ascending, ties by id.
func byDegree(g *core.Graph) []int {
	order := make([]int, g.Order())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(g.Degree(a), g.Degree(b)) })

	return order
}

// take selects v and marks its closed neighborhood. It returns how many
// vertices became marked.
func take(g *core.Graph, marked []bool, v int) int {
	c := 1
	marked[v] = true
	for _, w := range g.Neighbors(v) {
		if !marked[w] {
			marked[w] = true
			c++
		}
	}
	return c
}

// inOrder applies the greedy rule along a fixed order.
func inOrder(g *core.Graph, order []int) []int {
	marked := make([]bool, g.Order())
	out := make([]int, 0)
	for _, v := range order {
		if marked[v] {
			continue
		}
		take(g, marked, v)
		out = append(out, v)
	}
	return out
}

// ByID scans vertices in id order.
//
// Complexity: O(n + m).
func ByID(g *core.Graph) []int {
	order := make([]int, g.Order())
	for i := range order {
		order[i] = i
	}
	return inOrder(g, order)
}

// Deterministic scans vertices by ascending degree.
//
// Complexity: O(n log n + m).
func Deterministic(g *core.Graph) []int {
	return inOrder(g, byDegree(g))
}

// Randomized repeatedly picks uniformly among the first k unmarked vertices
// of the degree order. k=1 reproduces Deterministic.
//
// Complexity: O(n·k + m) after the O(n log n) sort.
func Randomized(g *core.Graph, k int, rng *rand.Rand) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("Randomized: k=%d: %w", k, ErrBadRCL)
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	var (
		order    = byDegree(g)
		marked   = make([]bool, g.Order())
		unmarked = g.Order()
		rcl      = make([]int, 0, k)
		out      = make([]int, 0)
		head     int
	)
	for unmarked > 0 {
		// head skips the marked prefix so each scan starts at the first live vertex.
		for marked[order[head]] {
			head++
		}
		rcl = rcl[:0]
		for i := head; i < len(order) && len(rcl) < k; i++ {
			if !marked[order[i]] {
				rcl = append(rcl, order[i])
			}
		}
		v := rcl[rng.Intn(len(rcl))]
		unmarked -= take(g, marked, v)
		out = append(out, v)
	}

	return out, nil
}
