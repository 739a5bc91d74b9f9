// SPDX-License-Identifier: MIT
// Package matrix_test: validator coverage — sentinel matching via errors.Is only.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karstvern/voidwalk/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestValidateNotNil covers the nil guard.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m := mustDense(t, [][]float64{{0}})
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSquare covers the shape guard.
func TestValidateSquare(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateSquare(sq))
}

// TestValidateWeights checks finite/non-negative enforcement and priority.
func TestValidateWeights(t *testing.T) {
	neg := mustDense(t, [][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, matrix.ValidateWeights(neg), matrix.ErrNegativeWeight)

	nan := mustDense(t, [][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, matrix.ValidateWeights(nan), matrix.ErrNaNInf)

	inf := mustDense(t, [][]float64{{0, math.Inf(1)}, {1, 0}})
	require.ErrorIs(t, matrix.ValidateWeights(inf), matrix.ErrNaNInf)

	ok := mustDense(t, [][]float64{{0, 2}, {2, 0}})
	require.NoError(t, matrix.ValidateWeights(ok))
}

// TestValidateSymmetric checks tolerance-aware symmetry detection.
func TestValidateSymmetric(t *testing.T) {
	asym := mustDense(t, [][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, matrix.DefaultEpsilon), matrix.ErrAsymmetry)

	// Deviation below eps is accepted.
	near := mustDense(t, [][]float64{{0, 1}, {1 + 1e-12, 0}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))

	// Non-square input is a shape violation, not an asymmetry.
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 1e-9), matrix.ErrNonSquare)

	// NaN tolerance is a numeric-policy violation.
	sq := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(sq, math.NaN()), matrix.ErrNaNInf)

	// Negative eps folds to |eps|.
	require.NoError(t, matrix.ValidateSymmetric(sq, -1e-9))

	// 1×1 is trivially symmetric.
	one := mustDense(t, [][]float64{{5}})
	require.NoError(t, matrix.ValidateSymmetric(one, 0))
}

// TestValidateWeightedGraph walks the composite error priority:
// nil → non-square → NaN/negative → asymmetry.
func TestValidateWeightedGraph(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateWeightedGraph(nil, 1e-9), matrix.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, matrix.ValidateWeightedGraph(rect, 1e-9), matrix.ErrNonSquare)

	neg := mustDense(t, [][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, matrix.ValidateWeightedGraph(neg, 1e-9), matrix.ErrNegativeWeight)

	asym := mustDense(t, [][]float64{{0, 1}, {3, 0}})
	require.ErrorIs(t, matrix.ValidateWeightedGraph(asym, 1e-9), matrix.ErrAsymmetry)

	ok := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateWeightedGraph(ok, 1e-9))
}
