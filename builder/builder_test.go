package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/core"
)

// TestBuilders_Functional checks vertex and edge counts for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{name: "Empty(5)", ctor: builder.Empty(5), wantV: 5, wantE: 0},
		{name: "Complete(6)", ctor: builder.Complete(6), wantV: 6, wantE: 15},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(2, 3))
				require.False(t, g.HasEdge(0, 3))
			}},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(4, 0))
			}},
		{name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, g.Degree(0))
				require.Equal(t, 1, g.Degree(3))
			}},
		{name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				require.False(t, g.HasEdge(0, 1))
				require.True(t, g.HasEdge(1, 4))
			}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Order())
			require.Equal(t, tc.wantE, g.Size())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.Star(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	require.Greater(t, a.Size(), 0)

	// Extremes need no RNG.
	full, err := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	require.Equal(t, 15, full.Size())
	none, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	require.Equal(t, 0, none.Size())
}
