// SPDX-License-Identifier: MIT
// Package: misopt/exact
//
// brute.go - exhaustive enumeration for tiny vertex subsets.
//
// Every subset of allowed is visited as a bitmask; the largest independent
// one wins, lowest mask first on ties. Cancellation is checked every 4096
// masks and returns the best found so far.

package exact

import (
	"context"
	"fmt"
	"math/bits"
	"slices"

	"github.com/katalvlaran/misopt/core"
)

const (
	// defaultBruteMax caps enumeration when BruteForce.MaxVertices is zero.
	defaultBruteMax = 20
	// hardBruteMax keeps masks inside uint32.
	hardBruteMax = 30
)

// BruteForce enumerates all subsets of the allowed vertices. It is a
// reference oracle for tests and small reduced subsets.
type BruteForce struct {
	// MaxVertices bounds |allowed|; 0 selects 20, values above 30 act as 30. Larger inputs fail with ErrTooLarge.
	MaxVertices int
}

// Solve implements brkga.Oracle.
func (b BruteForce) Solve(ctx context.Context, g *core.Graph, allowed []int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	limit := b.MaxVertices
	if limit <= 0 {
		limit = defaultBruteMax
	}
	limit = min(limit, hardBruteMax)
	ids := slices.Clone(allowed)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) > limit {
		return nil, fmt.Errorf("BruteForce: |allowed|=%d > %d: %w", len(ids), limit, ErrTooLarge)
	}
	for _, v := range ids {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("BruteForce: vertex %d: %w", v, ErrVertexOutOfRange)
		}
	}

	k := len(ids)
	// conflict[i] has bit j set when ids[i] and ids[j] are adjacent.
	conflict := make([]uint32, k)
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if i != j && g.HasEdge(ids[i], ids[j]) {
				conflict[i] |= 1 << uint(j)
			}
		}
	}

	var (
		bestMask uint32
		bestSize int
		mask     uint32
		end      = uint32(1) << uint(k)
	)
	for mask = 1; mask < end; mask++ {
		if mask&4095 == 0 && ctx.Err() != nil {
			break
		}
		if bits.OnesCount32(mask) <= bestSize || !independentMask(conflict, mask) {
			continue
		}
		bestMask, bestSize = mask, bits.OnesCount32(mask)
	}

	out := make([]int, 0, bestSize)
	for i = 0; i < k; i++ {
		if bestMask&(1<<uint(i)) != 0 {
			out = append(out, ids[i])
		}
	}

	return out, nil
}

func independentMask(conflict []uint32, mask uint32) bool {
	for m := mask; m != 0; m &= m - 1 {
		if conflict[bits.TrailingZeros32(m)]&mask != 0 {
			return false
		}
	}
	return true
}
