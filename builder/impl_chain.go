// SPDX-License-Identifier: MIT
// Package builder
//
// impl_chain.go — Chain(n) factory.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Edges (i−1)–i for i = 1..n−1, mirrored, weight cfg.weight.
//   - Deterministic emission order by increasing i.
//
// Complexity:
//   - Time O(n²) (allocation dominates), Space O(n²).

package builder

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
)

// File-local constants for method tagging and parameter minima.
const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain builds the unit-profile path 0–1–…–(n−1) as a weight matrix.
func Chain(n int, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	// Validate parameter domain early.
	if n < minChainNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChain, err)
	}

	// Emit chain edges in stable increasing order, mirrored for symmetry.
	for i := 1; i < n; i++ {
		_ = m.Set(i-1, i, cfg.weight)
		_ = m.Set(i, i-1, cfg.weight)
	}

	applyNoise(m, cfg)

	return m, nil
}
