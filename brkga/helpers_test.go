package brkga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/core"
)

// mustGraph builds a graph from an edge list or fails the test.
func mustGraph(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.New(n, edges)
	require.NoError(t, err)
	return g
}

// randomGraph returns a seeded G(n,p).
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	return g
}

// bruteOracle solves MIS on G[allowed] exactly by include/exclude recursion
// with a remaining-vertices bound. Only for small V′.
func bruteOracle() brkga.Oracle {
	return brkga.OracleFunc(func(_ context.Context, g *core.Graph, allowed []int) ([]int, error) {
		var (
			best []int
			cur  []int
			rec  func(i int)
		)
		rec = func(i int) {
			if len(cur)+len(allowed)-i <= len(best) {
				return
			}
			if i == len(allowed) {
				best = append(best[:0:0], cur...)
				return
			}
			v := allowed[i]
			free := true
			for _, u := range cur {
				if g.HasEdge(u, v) {
					free = false
					break
				}
			}
			if free {
				cur = append(cur, v)
				rec(i + 1)
				cur = cur[:len(cur)-1]
			}
			rec(i + 1)
		}
		rec(0)
		return best, nil
	})
}

// fastOptions returns a small generation-budgeted configuration.
func fastOptions(gens int) brkga.Options {
	o := brkga.DefaultOptions()
	o.PopulationSize = 40
	o.EliteFraction = 0.2
	o.MutantFraction = 0.2
	o.EliteBias = 0.7
	o.Seed = 7
	o.Stop = brkga.StopOnGenerations
	o.Generations = gens
	return o
}
