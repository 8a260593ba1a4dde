package anneal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/greedy"
)

func TestNew_Validation(t *testing.T) {
	g := builder.MustBuild(builder.Path(4))

	_, err := anneal.New(nil, anneal.DefaultOptions())
	require.ErrorIs(t, err, anneal.ErrNilGraph)

	o := anneal.DefaultOptions()
	o.MinTemp = 0
	_, err = anneal.New(g, o)
	require.ErrorIs(t, err, anneal.ErrTemperature)

	o = anneal.DefaultOptions()
	o.Cooling = 1
	_, err = anneal.New(g, o)
	require.ErrorIs(t, err, anneal.ErrCooling)

	o = anneal.DefaultOptions()
	o.TimeLimit = 0
	_, err = anneal.New(g, o)
	require.ErrorIs(t, err, anneal.ErrBudget)
}

func TestRun_IterationBudget(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(100, 0.05))
	require.NoError(t, err)

	var events []anneal.Improvement
	o := anneal.DefaultOptions()
	o.TimeLimit = 0
	o.MaxIterations = 50_000
	o.OnImprove = func(ev anneal.Improvement) { events = append(events, ev) }

	a, err := anneal.New(g, o)
	require.NoError(t, err)
	require.Equal(t, -1, a.BestFitness())

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(50_000), res.Iterations)
	require.Len(t, res.Solution, res.Fitness)
	require.NoError(t, g.CheckIndependent(res.Solution))
	require.Equal(t, res.Fitness, a.BestFitness())

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		require.Greater(t, events[i].Fitness, events[i-1].Fitness)
	}
	require.Equal(t, res.Fitness, events[len(events)-1].Fitness)
}

func TestRun_Deterministic(t *testing.T) {
	g := builder.MustBuild(builder.Cycle(40))
	o := anneal.DefaultOptions()
	o.TimeLimit = 0
	o.MaxIterations = 20_000

	run := func() anneal.Result {
		a, err := anneal.New(g, o)
		require.NoError(t, err)
		res, err := a.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, a.Solution, b.Solution)
	require.LessOrEqual(t, a.Fitness, 20)
}

func TestRun_NeverWorseThanStart(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(120, 0.08))
	require.NoError(t, err)
	o := anneal.DefaultOptions()
	o.TimeLimit = 0
	o.MaxIterations = 100_000

	a, err := anneal.New(g, o)
	require.NoError(t, err)
	res, err := a.Run(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Fitness, len(greedy.ByID(g)))
	require.NoError(t, g.CheckIndependent(res.Solution))
}

func TestRun_ContextAndTime(t *testing.T) {
	g := builder.MustBuild(builder.Path(50))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, err := anneal.New(g, anneal.DefaultOptions())
	require.NoError(t, err)
	res, err := a.Run(ctx)
	require.NoError(t, err)
	require.Zero(t, res.Iterations)
	require.Equal(t, 25, res.Fitness) // id-order greedy on a path is optimal

	o := anneal.DefaultOptions()
	o.TimeLimit = 30 * time.Millisecond
	a, err = anneal.New(g, o)
	require.NoError(t, err)
	res, err = a.Run(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Elapsed, o.TimeLimit)
}
