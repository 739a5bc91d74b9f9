// SPDX-License-Identifier: MIT
// voidwalk is the command line front end for the library: build a synthetic
// topology, optionally couple it to the bulk reservoir, and report mean first
// passage times or the augmented weight matrix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "voidwalk",
		Short: "First passage time statistics on weighted graphs",
		Long: `voidwalk builds synthetic weighted topologies, embeds an optional
bulk reservoir that every node leaks into, and computes global mean
first passage times from the Laplacian eigenspectrum.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSolveCmd(),
		newAugmentCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
