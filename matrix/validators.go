// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solver/augmenter code minimal by delegating shape/nil/symmetry/sign
//    checks here.
//  - Return plain sentinel errors (no wrapping beyond a validator tag) so call
//    sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateWeightedGraph before spectral methods to fail fast; it runs
//    the full NotNil → Square → Weights → Symmetric sequence.
//  - A negative eps is folded to its absolute value; NaN/Inf eps is rejected.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the non-negative tolerance used by structural checks
// (symmetry) when callers have no stronger preference.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil (caller must ensure).
//
// Errors: ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateWeights checks every entry is finite and non-negative.
// Assumes m is non-nil.
//
// Errors: ErrNaNInf on non-finite entries, ErrNegativeWeight on negatives.
// NaN/Inf takes priority over sign: a NaN entry reports ErrNaNInf.
// Complexity: O(r*c). Space: O(1).
func ValidateWeights(m *Dense) error {
	// Scan flat storage in a single deterministic pass.
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateWeights[%d,%d]", idx/m.c, idx%m.c), ErrNaNInf)
		}
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateWeights[%d,%d]", idx/m.c, idx%m.c), ErrNegativeWeight)
		}
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| ≤ eps for all i<j.
//
// Inputs: square Dense m, tolerance eps ≥ 0 (NaN/Inf eps rejected, negative
// eps folded to |eps|).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad eps), ErrAsymmetry.
// Complexity: O(n²) on the strict upper triangle. Space: O(1).
func ValidateSymmetric(m *Dense, eps float64) error {
	// Guard nil first to avoid dereferencing.
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	// Symmetry is only defined for square matrices.
	if m.r != m.c {
		return validatorErrorf("ValidateSymmetric", ErrNonSquare)
	}
	// Normalize tolerance to a non-negative finite value.
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	// A 0×0 or 1×1 matrix is trivially symmetric.
	n := m.r
	if n <= 1 {
		return nil
	}

	// Scan the strict upper triangle once; deterministic i→j order gives
	// reproducible short-circuiting.
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateWeightedGraph is the composite precondition for every voidwalk
// operation that consumes a WeightedGraph:
// NotNil → Square → Weights (finite, non-negative) → Symmetric(eps).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeWeight,
// ErrAsymmetry, in that priority order.
// Complexity: O(n²). Space: O(1).
func ValidateWeightedGraph(m *Dense, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateWeightedGraph", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateWeightedGraph", err)
	}
	if err := ValidateWeights(m); err != nil {
		return validatorErrorf("ValidateWeightedGraph", err)
	}
	if err := ValidateSymmetric(m, eps); err != nil {
		return validatorErrorf("ValidateWeightedGraph", err)
	}

	return nil
}
