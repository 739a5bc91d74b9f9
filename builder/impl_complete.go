// SPDX-License-Identifier: MIT
// Package builder
//
// impl_complete.go — Complete(n) factory.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Every off-diagonal pair carries weight cfg.weight; diagonal zero.
//   - Deterministic i→j emission order.

package builder

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete builds the complete graph K_n as a weight matrix.
func Complete(n int, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				_ = m.Set(i, j, cfg.weight)
			}
		}
	}

	applyNoise(m, cfg)

	return m, nil
}
