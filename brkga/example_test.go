package brkga_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/builder"
)

// ExampleDecoder shows how keys drive the greedy selection.
func ExampleDecoder() {
	// Path 0-1-2-3.
	g := builder.MustBuild(builder.Path(4))
	dec, _ := brkga.NewDecoder(g)

	set, _ := dec.Decode(brkga.FromKeys([]float64{0.2, 0.9, 0.1, 0.8}))
	fmt.Println(set)

	// Output:
	// [1 3]
}

// ExampleEngine_Run solves a star: all leaves form the maximum independent set.
func ExampleEngine_Run() {
	g := builder.MustBuild(builder.Star(8))

	opts := brkga.DefaultOptions()
	opts.PopulationSize = 30
	opts.Stop = brkga.StopOnGenerations
	opts.Generations = 20

	eng, err := brkga.New(g, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := eng.Run(context.Background())
	fmt.Println(res.Fitness, res.Generations)

	// Output:
	// 7 20
}
