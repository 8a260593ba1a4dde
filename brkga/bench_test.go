package brkga_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/misopt/brkga"
)

func BenchmarkDecode_1000(b *testing.B) {
	g := randomGraph(b, 1000, 0.01, 1)
	dec, _ := brkga.NewDecoder(g)
	c := brkga.NewRandomChromosome(1000, rand.New(rand.NewSource(1)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(c)
	}
}

func benchmarkGenerations(b *testing.B, workers int) {
	g := randomGraph(b, 300, 0.03, 2)
	opts := brkga.DefaultOptions()
	opts.Stop = brkga.StopOnGenerations
	opts.Generations = 5
	opts.Workers = workers
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng, _ := brkga.New(g, opts)
		_, _ = eng.Run(context.Background())
	}
}

func BenchmarkRun_Sequential(b *testing.B) { benchmarkGenerations(b, 1) }
func BenchmarkRun_Parallel4(b *testing.B)  { benchmarkGenerations(b, 4) }
