// SPDX-License-Identifier: MIT
// Package matrix: derived quantities of a weight matrix.
//
// ops.go — degree vector, total edge weight, Laplacian, scaling.
//
// Contract:
//   - Every operation validates NotNil → Square before touching data.
//   - Inputs are never mutated; results are freshly allocated.
//   - Only sentinel errors are returned; no panics at runtime.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDegrees     = "Degrees"
	opTotalWeight = "TotalWeight"
	opLaplacian   = "Laplacian"
	opScale       = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers keep errors.Is/As semantics.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Degrees returns the per-node degree vector d, where d[i] is the sum of
// row i of the weight matrix.
// Stage 1 (Validate): NotNil → Square.
// Stage 2 (Execute): one deterministic row-major pass.
// Complexity: O(n²) time, O(n) space.
func Degrees(w *Dense) ([]float64, error) {
	if err := ValidateNotNil(w); err != nil {
		return nil, matrixErrorf(opDegrees, err)
	}
	if err := ValidateSquare(w); err != nil {
		return nil, matrixErrorf(opDegrees, err)
	}

	n := w.r
	d := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ { // fixed row loop
		var sum float64
		for j = 0; j < n; j++ { // accumulate row i
			sum += w.data[i*n+j]
		}
		d[i] = sum
	}

	return d, nil
}

// TotalWeight returns E = (Σ_ij w[i,j]) / 2, the total edge weight of an
// undirected weight matrix (each edge counted once).
// Complexity: O(n²) time, O(1) space.
func TotalWeight(w *Dense) (float64, error) {
	if err := ValidateNotNil(w); err != nil {
		return 0, matrixErrorf(opTotalWeight, err)
	}
	if err := ValidateSquare(w); err != nil {
		return 0, matrixErrorf(opTotalWeight, err)
	}

	// Single flat pass over backing storage; halve at the end.
	var sum float64
	for _, v := range w.data {
		sum += v
	}

	return sum / 2, nil
}

// Laplacian returns L = diag(d) − W for the given weight matrix W, where d
// is the per-node degree vector. L is symmetric positive semi-definite for
// symmetric non-negative W, with eigenvalue 0 paired with the all-ones
// eigenvector on every connected component.
// Stage 1 (Validate): NotNil → Square (delegated to Degrees).
// Stage 2 (Execute): negate off-diagonal weights, place degrees on diagonal.
// Complexity: O(n²) time and space.
func Laplacian(w *Dense) (*Dense, error) {
	// Degrees performs the structural validation for us.
	d, err := Degrees(w)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}

	n := w.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				// Diagonal: degree minus any self-loop weight.
				out.data[i*n+j] = d[i] - w.data[i*n+j]
			} else {
				out.data[i*n+j] = -w.data[i*n+j]
			}
		}
	}

	return out, nil
}

// Scale returns a fresh copy of w with every entry multiplied by c.
// Complexity: O(n²) time and space.
func Scale(w *Dense, c float64) (*Dense, error) {
	if err := ValidateNotNil(w); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense{r: w.r, c: w.c, data: make([]float64, len(w.data))}
	for idx, v := range w.data {
		out.data[idx] = c * v
	}

	return out, nil
}
