// SPDX-License-Identifier: MIT
package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/karstvern/voidwalk/matrix"
	"github.com/karstvern/voidwalk/void"
)

func newAugmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Print the reservoir-augmented weight matrix",
		Long: `Build the requested topology, embed the bulk reservoir with the given
hop probability, and print the (N+1)x(N+1) weight matrix. The reservoir
is the last row and column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pVoid, _ := cmd.Flags().GetFloat64("p-void")
			csvOut, _ := cmd.Flags().GetBool("csv")

			base, err := buildTopology(cmd)
			if err != nil {
				return err
			}

			aug, err := void.Augment(base, pVoid)
			if err != nil {
				return fmt.Errorf("augment: %w", err)
			}

			if csvOut {
				return writeMatrixCSV(cmd, aug)
			}
			fmt.Fprint(cmd.OutOrStdout(), aug)

			return nil
		},
	}

	addTopologyFlags(cmd)
	cmd.Flags().Float64("p-void", 0.5, "Reservoir hop probability p in (0,1)")
	cmd.Flags().Bool("csv", false, "Emit raw matrix rows instead of the bracketed form")

	return cmd
}

// writeMatrixCSV emits one CSV row per matrix row, no header.
func writeMatrixCSV(cmd *cobra.Command, m *matrix.Dense) error {
	wr := csv.NewWriter(cmd.OutOrStdout())
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := wr.Write(rec); err != nil {
			return err
		}
	}
	wr.Flush()

	return wr.Error()
}
