// Package misopt searches for large independent sets in undirected graphs.
//
// An independent set is a set of vertices with no edge between any two of
// them; misopt looks for the largest one it can find within a time or
// generation budget.
//
// What is inside:
//
//	core/     immutable adjacency-list Graph, independence checks, induced subgraphs
//	builder/  deterministic and seeded random instance generators
//	graphio/  edge-list instance files and vertex-per-line solution files
//	brkga/    biased random-key genetic algorithm with oracle intensification
//	exact/    branch-and-bound and brute-force solvers usable as the oracle
//	greedy/   id-order, min-degree and randomized constructive heuristics
//	anneal/   simulated annealing over independent sets
//	race/     side-by-side anytime comparison with CSV, SQLite and Prometheus output
//	config/   YAML + MISOPT_* environment configuration
//	cmd/misopt  the command-line front end
//
// The hybrid engine in one picture:
//
//	population ──decode──▶ sets ──every k gens──▶ union of elite sets V′
//	     ▲                                              │
//	     └──── synthetic chromosome ◀── exact oracle on G[V′]
//
// Quick start:
//
//	g := builder.MustBuild(builder.Cycle(9))
//	eng, _ := brkga.New(g, brkga.HybridOptions(exact.NewSolver(exact.DefaultOptions())))
//	res, _ := eng.Run(ctx)
//	fmt.Println(res.Fitness) // 4
//
//	go install github.com/katalvlaran/misopt/cmd/misopt@latest
package misopt
