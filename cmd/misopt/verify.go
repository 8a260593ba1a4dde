// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/misopt/graphio"
	"github.com/katalvlaran/misopt/internal/logging"
)

func (a *app) verifyCmd() *cobra.Command {
	var input, solution string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a solution file is an independent set of the instance and print its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readGraph(logging.Discard(), input)
			if err != nil {
				return err
			}
			f, err := os.Open(solution)
			if err != nil {
				return err
			}
			defer f.Close()
			set, err := graphio.ReadSolution(f, a.base())
			if err != nil {
				return err
			}
			if err = g.CheckIndependent(set); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
			fmt.Fprintf(a.out, "%d\n", len(set))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "instance file (required)")
	cmd.Flags().StringVar(&solution, "solution", "", "solution file (required)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("solution")

	return cmd
}
