// SPDX-License-Identifier: MIT
// Package builder
//
// impl_blocks.go — Blocks(sizes, inW, outW) factory.
//
// Contract:
//   - sizes non-empty, every entry ≥ 1 (else ErrBadBlocks).
//   - inW > outW ≥ 0, both finite (else ErrBadWeight).
//   - Intra-community pairs carry inW, cross-community pairs carry outW;
//     outW = 0 yields disconnected communities.
//   - Node indices are assigned block by block in sizes order.
//
// Complexity:
//   - Time O(n²) for n = Σ sizes, Space O(n²) plus O(n) block labels.

package builder

import (
	"fmt"
	"math"

	"github.com/karstvern/voidwalk/matrix"
)

const methodBlocks = "Blocks"

// Blocks builds a planted-partition weight matrix: dense communities of the
// given sizes joined by weaker (possibly zero) cross links.
func Blocks(sizes []int, inW, outW float64, opts ...Option) (*matrix.Dense, error) {
	cfg := gatherOptions(opts...)

	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s: empty size list: %w", methodBlocks, ErrBadBlocks)
	}
	n := 0
	for b, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("%s: sizes[%d]=%d < 1: %w", methodBlocks, b, s, ErrBadBlocks)
		}
		n += s
	}
	if math.IsNaN(inW) || math.IsInf(inW, 0) || math.IsNaN(outW) || math.IsInf(outW, 0) {
		return nil, fmt.Errorf("%s: inW=%v outW=%v: %w", methodBlocks, inW, outW, ErrBadWeight)
	}
	if outW < 0 || inW <= outW {
		return nil, fmt.Errorf("%s: need inW > outW ≥ 0, got inW=%v outW=%v: %w",
			methodBlocks, inW, outW, ErrBadWeight)
	}
	// A single block of one node has no edges to place.
	if n < 2 {
		return nil, fmt.Errorf("%s: total nodes=%d < 2: %w", methodBlocks, n, ErrTooFewNodes)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBlocks, err)
	}

	// Label each node with its block index; sizes order fixes the layout.
	label := make([]int, 0, n)
	for b, s := range sizes {
		for k := 0; k < s; k++ {
			label = append(label, b)
		}
	}

	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = outW
			if label[i] == label[j] {
				w = inW
			}
			if w == 0 {
				continue
			}
			_ = m.Set(i, j, w)
			_ = m.Set(j, i, w)
		}
	}

	applyNoise(m, cfg)

	return m, nil
}
