// SPDX-License-Identifier: MIT
// Package builder
//
// impl_decay.go — Decay(n, alpha) factory.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes); alpha finite and > 0 (else ErrBadDecay).
//   - Fully dense profile: w_ij = w0·exp(−alpha·|i−j|) for i ≠ j.
//   - Symmetry is exact because |i−j| is symmetric; diagonal stays zero.
//
// Complexity:
//   - Time O(n²), Space O(n²). exp is evaluated once per distance class.

package builder

import (
	"fmt"
	"math"

	"github.com/karstvern/voidwalk/matrix"
)

const (
	methodDecay   = "Decay"
	minDecayNodes = 2
)

// Decay builds a dense matrix whose weights fall off exponentially with the
// index distance |i−j|. Large alpha approaches a chain; alpha → 0 approaches
// a complete graph with uniform weight w0.
func Decay(n int, alpha float64, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	if n < minDecayNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDecay, n, minDecayNodes, ErrTooFewNodes)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, fmt.Errorf("%s: alpha=%v: %w", methodDecay, alpha, ErrBadDecay)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecay, err)
	}

	// Precompute per-distance weights: distance d ∈ [1, n−1] is shared by all
	// pairs with |i−j| = d.
	byDist := make([]float64, n)
	for d := 1; d < n; d++ {
		byDist[d] = cfg.weight * math.Exp(-alpha*float64(d))
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			_ = m.Set(i, j, byDist[j-i])
			_ = m.Set(j, i, byDist[j-i])
		}
	}

	applyNoise(m, cfg)

	return m, nil
}
