package race_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/exact"
	"github.com/katalvlaran/misopt/race"
)

func TestWorkers_StarGraph(t *testing.T) {
	g := builder.MustBuild(builder.Star(30))

	ga := brkga.DefaultOptions()
	ga.PopulationSize = 40
	ga.TimeLimit = time.Minute
	var seen int
	ga.OnImprove = func(ev brkga.Improvement) { seen = ev.Fitness }

	hy := brkga.HybridOptions(exact.NewSolver(exact.DefaultOptions()))
	hy.PopulationSize = 40
	hy.TimeLimit = time.Minute

	sa := anneal.DefaultOptions()
	sa.TimeLimit = time.Minute

	o := race.DefaultOptions()
	o.TimeLimit = 300 * time.Millisecond
	o.SampleInterval = 50 * time.Millisecond
	r, err := race.New(o)
	require.NoError(t, err)

	st, err := r.Run(context.Background(),
		race.BRKGA("brkga", g, ga),
		race.BRKGA("hybrid", g, hy),
		race.Anneal("sa", g, sa),
		race.Greedy("greedy", g),
	)
	require.NoError(t, err)
	require.Empty(t, st.Errors)
	require.Equal(t, 29, st.Final["hybrid"])
	require.Equal(t, 29, st.Final["greedy"])
	require.Equal(t, st.Final["brkga"], seen)
	require.Contains(t, st.Winners, "hybrid")
	for _, name := range []string{"brkga", "sa"} {
		require.Positive(t, st.Final[name])
	}
}

func TestWorkers_ConfigErrorsSurface(t *testing.T) {
	g := builder.MustBuild(builder.Path(5))
	bad := brkga.DefaultOptions()
	bad.EliteFraction = 0.9

	o := race.DefaultOptions()
	o.TimeLimit = 50 * time.Millisecond
	o.SampleInterval = 10 * time.Millisecond
	r, err := race.New(o)
	require.NoError(t, err)

	st, err := r.Run(context.Background(), race.BRKGA("bad", g, bad), race.Anneal("bad-sa", g, anneal.Options{}))
	require.NoError(t, err)
	require.ErrorIs(t, st.Errors["bad"], brkga.ErrFractionSum)
	require.ErrorIs(t, st.Errors["bad-sa"], anneal.ErrTemperature)
	require.Empty(t, st.Winners)
}
