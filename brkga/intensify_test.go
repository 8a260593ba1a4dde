package brkga_test

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/core"
)

// Vertices 2, 4, 6 with edges 2-4 and 4-6; the oracle answer {2,6} must
// decode to at least two vertices.
func TestSyntheticChromosome_RecoversOracleAnswer(t *testing.T) {
	g := mustGraph(t, 7, [][2]int{{2, 4}, {4, 6}, {0, 2}})
	dec, err := brkga.NewDecoder(g)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	opts := brkga.DefaultIntensifyOptions()
	for i := 0; i < 50; i++ {
		c := brkga.SyntheticChromosome(7, []int{2, 6}, opts, rng)
		require.NoError(t, c.Validate(7))
		for _, gene := range c {
			if gene.Vertex == 2 || gene.Vertex == 6 {
				require.GreaterOrEqual(t, gene.Key, 0.9)
			} else {
				require.Less(t, gene.Key, 0.2)
			}
		}
		set, err := dec.Decode(c)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(set), 2)
		require.ElementsMatch(t, []int{2, 6}, set[:2])
		require.NoError(t, g.CheckIndependent(set))
	}
}

// recordingOracle wraps an oracle and records every call.
type recordingOracle struct {
	inner    brkga.Oracle
	calls    int
	allowed  [][]int
	deadline []time.Duration
	onCall   func(allowed []int)
}

func (r *recordingOracle) Solve(ctx context.Context, g *core.Graph, allowed []int) ([]int, error) {
	r.calls++
	r.allowed = append(r.allowed, slices.Clone(allowed))
	if dl, ok := ctx.Deadline(); ok {
		r.deadline = append(r.deadline, time.Until(dl))
	}
	if r.onCall != nil {
		r.onCall(allowed)
	}
	return r.inner.Solve(ctx, g, allowed)
}

// topSource makes rand.Float64 return its largest value, 1-2^-53.
type topSource struct{}

func (topSource) Int63() int64 { return 1<<63 - 1 }
func (topSource) Seed(int64)   {}

func TestSyntheticChromosome_KeysStayBelowOne(t *testing.T) {
	in := brkga.DefaultOptions().Intensify
	require.Equal(t, 1.0, in.HighKey+in.Jitter)

	rng := rand.New(topSource{})
	require.Equal(t, 1.0, in.HighKey+rng.Float64()*in.Jitter)

	c := brkga.SyntheticChromosome(6, []int{1, 3, 5}, in, rng)
	require.NoError(t, c.Validate(6))
	for _, gene := range c {
		require.Less(t, gene.Key, 1.0)
	}
	require.Greater(t, c[1].Key, c[0].Key)
}

func TestIntensify_TriggerSchedule(t *testing.T) {
	g := randomGraph(t, 20, 0.2, 3)
	rec := &recordingOracle{inner: bruteOracle()}
	opts := fastOptions(21)
	opts.Oracle = rec
	opts.Intensify.Interval = 10
	opts.Intensify.OracleTimeLimit = 500 * time.Millisecond

	eng, err := brkga.New(g, opts)
	require.NoError(t, err)
	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	// Generations 1, 11 and 21.
	require.Equal(t, 3, rec.calls)
	require.Equal(t, 3, res.Intensify.Cycles)
	require.Equal(t, 3, res.Intensify.Replacements)
	require.Zero(t, res.Intensify.Failures)
	for _, d := range rec.deadline {
		require.LessOrEqual(t, d, 500*time.Millisecond)
	}
}

func TestIntensify_SubsetIsEliteUnion(t *testing.T) {
	g := randomGraph(t, 24, 0.2, 8)
	var eng *brkga.Engine
	var want []int
	rec := &recordingOracle{inner: bruteOracle()}
	rec.onCall = func([]int) {
		dec, err := brkga.NewDecoder(g)
		require.NoError(t, err)
		in := map[int]bool{}
		// na = max(1, floor(40·0.1)) = 4.
		for _, ind := range eng.Population().Elite(4) {
			set, err := dec.Decode(ind.Chromosome)
			require.NoError(t, err)
			for _, v := range set {
				in[v] = true
			}
		}
		want = want[:0]
		for v := 0; v < g.Order(); v++ {
			if in[v] {
				want = append(want, v)
			}
		}
	}
	opts := fastOptions(1)
	opts.Oracle = rec
	opts.Intensify.EliteFraction = 0.1

	eng, err := brkga.New(g, opts)
	require.NoError(t, err)
	require.NoError(t, eng.Init(context.Background()))
	out, err := eng.Intensify(context.Background())
	require.NoError(t, err)

	require.Equal(t, want, rec.allowed[0])
	require.Equal(t, want, out.Subset)
	require.True(t, out.Replaced)
	require.GreaterOrEqual(t, out.Fitness, len(out.Solution))
	require.Subset(t, out.Subset, out.Solution)
	require.GreaterOrEqual(t, eng.BestFitness(), out.Fitness)
}

func TestIntensify_FailuresLeavePopulationUntouched(t *testing.T) {
	g := mustGraph(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}})
	boom := errors.New("solver crashed")

	cases := []struct {
		name   string
		oracle brkga.OracleFunc
	}{
		{"error", func(context.Context, *core.Graph, []int) ([]int, error) { return nil, boom }},
		{"empty", func(context.Context, *core.Graph, []int) ([]int, error) { return nil, nil }},
		{"not independent", func(_ context.Context, _ *core.Graph, allowed []int) ([]int, error) {
			return []int{0, 1}, nil
		}},
		{"outside subset", func(_ context.Context, _ *core.Graph, allowed []int) ([]int, error) {
			in := map[int]bool{}
			for _, v := range allowed {
				in[v] = true
			}
			for v := 0; v < 8; v++ {
				if !in[v] {
					return []int{v}, nil
				}
			}
			return []int{99}, nil
		}},
		{"timeout", func(ctx context.Context, _ *core.Graph, _ []int) ([]int, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := fastOptions(3)
			opts.Oracle = tc.oracle
			opts.Intensify.OracleTimeLimit = 20 * time.Millisecond
			eng, err := brkga.New(g, opts)
			require.NoError(t, err)
			require.NoError(t, eng.Init(context.Background()))

			before := eng.Population().Individuals()
			bestBefore := eng.BestFitness()
			out, err := eng.Intensify(context.Background())
			require.ErrorIs(t, err, brkga.ErrOracle)
			require.False(t, out.Replaced)
			require.Equal(t, before, eng.Population().Individuals())
			require.Equal(t, bestBefore, eng.BestFitness())
			require.Equal(t, 1, eng.Stats().Failures)

			// The loop itself keeps going.
			res, err := eng.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, 3, res.Generations)
		})
	}
}

func TestIntensify_NoOracle(t *testing.T) {
	g := mustGraph(t, 3, nil)
	eng, err := brkga.New(g, fastOptions(1))
	require.NoError(t, err)
	require.NoError(t, eng.Init(context.Background()))
	_, err = eng.Intensify(context.Background())
	require.ErrorIs(t, err, brkga.ErrNoOracle)
}
