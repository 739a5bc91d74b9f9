// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karstvern/voidwalk/builder"
	"github.com/karstvern/voidwalk/matrix"
)

// Topology names accepted by --topology.
const (
	topoChain    = "chain"
	topoRing     = "ring"
	topoComplete = "complete"
	topoDecay    = "decay"
	topoBlocks   = "blocks"
)

// addTopologyFlags registers the flag set shared by solve and augment.
func addTopologyFlags(cmd *cobra.Command) {
	cmd.Flags().String("topology", topoChain, "Topology: chain, ring, complete, decay, or blocks")
	cmd.Flags().Int("nodes", 10, "Number of nodes (chain, ring, complete, decay)")
	cmd.Flags().Float64("weight", builder.DefaultWeight, "Base edge weight w0")
	cmd.Flags().Float64("decay-alpha", 1.0, "Decay rate for the decay topology")
	cmd.Flags().String("block-sizes", "", "Comma separated community sizes for the blocks topology, e.g. 4,4,3")
	cmd.Flags().Float64("block-in", 1.0, "Intra-community weight for the blocks topology")
	cmd.Flags().Float64("block-out", 0.1, "Inter-community weight for the blocks topology")
	cmd.Flags().Float64("noise", 0, "Multiplicative noise amplitude (0 disables)")
	cmd.Flags().Int64("seed", builder.DefaultSeed, "Noise seed")
}

// parseBlockSizes turns "4,4,3" into []int{4, 4, 3}.
func parseBlockSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("blocks topology requires --block-sizes")
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse block size %q: %w", p, err)
		}
		sizes = append(sizes, v)
	}

	return sizes, nil
}

// buildTopology resolves the shared flags into a validated weight matrix.
func buildTopology(cmd *cobra.Command) (*matrix.Dense, error) {
	topology, _ := cmd.Flags().GetString("topology")
	nodes, _ := cmd.Flags().GetInt("nodes")
	weight, _ := cmd.Flags().GetFloat64("weight")
	noise, _ := cmd.Flags().GetFloat64("noise")
	seed, _ := cmd.Flags().GetInt64("seed")

	if weight <= 0 {
		return nil, fmt.Errorf("--weight must be > 0, got %v", weight)
	}
	if noise < 0 {
		return nil, fmt.Errorf("--noise must be >= 0, got %v", noise)
	}

	opts := []builder.Option{
		builder.WithWeight(weight),
		builder.WithNoise(noise),
		builder.WithSeed(seed),
	}

	switch topology {
	case topoChain:
		return builder.Chain(nodes, opts...)
	case topoRing:
		return builder.Ring(nodes, opts...)
	case topoComplete:
		return builder.Complete(nodes, opts...)
	case topoDecay:
		alpha, _ := cmd.Flags().GetFloat64("decay-alpha")

		return builder.Decay(nodes, alpha, opts...)
	case topoBlocks:
		raw, _ := cmd.Flags().GetString("block-sizes")
		sizes, err := parseBlockSizes(raw)
		if err != nil {
			return nil, err
		}
		inW, _ := cmd.Flags().GetFloat64("block-in")
		outW, _ := cmd.Flags().GetFloat64("block-out")

		return builder.Blocks(sizes, inW, outW, opts...)
	default:
		return nil, fmt.Errorf("unsupported topology %q (use chain, ring, complete, decay, or blocks)", topology)
	}
}
