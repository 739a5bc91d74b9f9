// SPDX-License-Identifier: MIT
// Package builder
//
// impl_ring.go — Ring(n) factory.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes): smaller rings collapse to multi-edges.
//   - Edges i–(i+1 mod n), mirrored, weight cfg.weight.
//   - Deterministic emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring builds the cycle C_n as a weight matrix.
func Ring(n int, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	// Ring edges including the closing edge (n−1)–0.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		_ = m.Set(i, j, cfg.weight)
		_ = m.Set(j, i, cfg.weight)
	}

	applyNoise(m, cfg)

	return m, nil
}
