// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/misopt/builder"
	"github.com/katalvlaran/misopt/graphio"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		n    int
		p    float64
		seed int64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write an Erdős–Rényi G(n,p) instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
			if err != nil {
				return err
			}
			if out == "" {
				return graphio.Write(a.out, g, a.base())
			}
			return writeFile(out, func(w io.Writer) error { return graphio.Write(w, g, a.base()) })
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&n, "vertices", "n", 1000, "number of vertices")
	fl.Float64VarP(&p, "prob", "p", 0.05, "edge probability")
	fl.Int64Var(&seed, "seed", 1, "generator seed")
	fl.StringVarP(&out, "output", "o", "", "output file, stdout when empty")

	return cmd
}
