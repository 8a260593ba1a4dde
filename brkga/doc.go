// SPDX-License-Identifier: MIT

// Package brkga implements a biased random-key genetic algorithm for the
// maximum independent set problem, with optional oracle-backed
// intensification.
//
// Representation:
//
//	A chromosome holds one (key, vertex) gene per vertex; gene j always
//	carries vertex j. The Decoder sorts genes by key descending (stable)
//	and greedily keeps every vertex not adjacent to one already kept.
//	Fitness is the size of that set; every decoded set is independent.
//
// Generation:
//
//	p = n_elite + n_mutant + n_cross, with n_elite = floor(p·pe),
//	n_mutant = floor(p·pm) and the remainder going to crossover.
//	Elites survive unchanged, mutants are fresh random chromosomes and
//	children inherit each gene from their elite parent with probability rhoe.
//
// Intensification:
//
//	When Options.Oracle is set, the decoded sets of the top na share of the
//	population form a reduced vertex subset V′. The oracle solves MIS on
//	G[V′] under a short deadline; its answer is encoded as a chromosome with
//	high keys, decoded, and injected in place of the worst individual.
//	Oracle failures skip the cycle.
//
// Anytime interface:
//
//	BestFitness and Elapsed may be polled from other goroutines; OnImprove
//	fires on every strict Best-Global improvement. Run stops on the time or
//	generation budget, or when ctx is cancelled, and always returns the best
//	solution found.
//
// Quick start:
//
//	eng, err := brkga.New(g, brkga.DefaultOptions())
//	res, err := eng.Run(ctx)
//	fmt.Println(res.Fitness, res.Solution)
package brkga
