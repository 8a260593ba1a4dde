package brkga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/brkga"
)

func TestPlan_SlotCounts(t *testing.T) {
	s, err := brkga.Plan(10, 0.2, 0.2)
	require.NoError(t, err)
	require.Equal(t, brkga.Slots{Elite: 2, Mutant: 2, Crossover: 6}, s)
	require.Equal(t, 10, s.Total())

	// Tuned defaults: floor(264·0.14)=36, floor(264·0.25)=66.
	s, err = brkga.Plan(264, 0.14, 0.25)
	require.NoError(t, err)
	require.Equal(t, brkga.Slots{Elite: 36, Mutant: 66, Crossover: 162}, s)
}

func TestPlan_Errors(t *testing.T) {
	cases := []struct {
		name   string
		p      int
		pe, pm float64
		want   error
	}{
		{"p zero", 0, 0.2, 0.2, brkga.ErrPopulationSize},
		{"pe zero", 10, 0, 0.2, brkga.ErrFraction},
		{"pm one", 10, 0.2, 1, brkga.ErrFraction},
		{"sum one", 10, 0.5, 0.5, brkga.ErrFractionSum},
		{"sum above one", 10, 0.6, 0.5, brkga.ErrFractionSum},
		{"no elite", 4, 0.2, 0.2, brkga.ErrNoElite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := brkga.Plan(tc.p, tc.pe, tc.pm)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPopulation_SortReplaceWorst(t *testing.T) {
	a := brkga.Individual{Chromosome: brkga.FromKeys([]float64{0.1}), Fitness: 3}
	b := brkga.Individual{Chromosome: brkga.FromKeys([]float64{0.2}), Fitness: 5}
	c := brkga.Individual{Chromosome: brkga.FromKeys([]float64{0.3}), Fitness: 3}

	pop := brkga.NewPopulation([]brkga.Individual{a, b, c})
	require.Equal(t, 3, pop.Len())
	require.Equal(t, b, pop.Best())
	// Stable: a stays ahead of c.
	require.Equal(t, a, pop.At(1))
	require.Equal(t, c, pop.Worst())

	d := brkga.Individual{Chromosome: brkga.FromKeys([]float64{0.4}), Fitness: 9}
	pop.ReplaceWorst(d)
	require.Equal(t, 3, pop.Len())
	require.Equal(t, d, pop.Best())
	require.Equal(t, []brkga.Individual{d, b}, pop.Elite(2))
	require.NotContains(t, pop.Individuals(), c)
}
