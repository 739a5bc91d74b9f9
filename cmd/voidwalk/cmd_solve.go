// SPDX-License-Identifier: MIT
package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/karstvern/voidwalk/gmfpt"
	"github.com/karstvern/voidwalk/void"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute global mean first passage times",
		Long: `Build the requested topology, optionally embed the bulk reservoir
(--p-void > 0), and print one mean first passage time per node.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pVoid, _ := cmd.Flags().GetFloat64("p-void")
			unweighted, _ := cmd.Flags().GetBool("unweighted")
			workers, _ := cmd.Flags().GetInt("workers")
			csvOut, _ := cmd.Flags().GetBool("csv")

			if workers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", workers)
			}

			w, err := buildTopology(cmd)
			if err != nil {
				return err
			}

			if pVoid > 0 {
				w, err = void.Augment(w, pVoid)
				if err != nil {
					return fmt.Errorf("augment: %w", err)
				}
			}

			solveOpts := []gmfpt.Option{gmfpt.WithWorkers(workers)}
			if unweighted {
				solveOpts = append(solveOpts, gmfpt.WithUnweighted())
			}

			res, err := gmfpt.Analyze(w, solveOpts...)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			// Numerical health goes to stderr so piped output stays clean.
			for _, m := range res.NearZeroModes {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"warning: eigenvalue %d is near zero (%.3e); the graph sits close to disconnection and times may be inaccurate\n",
					m, res.Eigenvalues[m])
			}

			if csvOut {
				return writeTimesCSV(cmd, res.Times)
			}
			for i, t := range res.Times {
				fmt.Fprintf(cmd.OutOrStdout(), "node %d: %.6g\n", i, t)
			}

			return nil
		},
	}

	addTopologyFlags(cmd)
	cmd.Flags().Float64("p-void", 0, "Reservoir hop probability p in (0,1); 0 disables augmentation")
	cmd.Flags().Bool("unweighted", false, "Use the unweighted accumulation variant")
	cmd.Flags().Int("workers", 1, "Parallel workers for the accumulation stage")
	cmd.Flags().Bool("csv", false, "Emit node,time rows instead of the table")

	return cmd
}

// writeTimesCSV emits a header plus one node,time row per node.
func writeTimesCSV(cmd *cobra.Command, times []float64) error {
	wr := csv.NewWriter(cmd.OutOrStdout())
	if err := wr.Write([]string{"node", "time"}); err != nil {
		return err
	}
	for i, t := range times {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(t, 'g', -1, 64)}
		if err := wr.Write(row); err != nil {
			return err
		}
	}
	wr.Flush()

	return wr.Error()
}
