// SPDX-License-Identifier: MIT
// Package matrix_test: derived-quantity coverage (Degrees, TotalWeight,
// Laplacian, Scale) on small hand-checkable fixtures.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karstvern/voidwalk/matrix"
)

// pathThree is the unit-weight path 0–1–2.
func pathThree(t *testing.T) *matrix.Dense {
	t.Helper()
	return mustDense(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
}

// TestDegreesPath checks row sums on the 3-node path.
func TestDegreesPath(t *testing.T) {
	d, err := matrix.Degrees(pathThree(t))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 1}, d) // end, middle, end
}

// TestDegreesErrors covers nil and non-square rejection.
func TestDegreesErrors(t *testing.T) {
	_, err := matrix.Degrees(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Degrees(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestTotalWeight verifies E = Σ entries / 2.
func TestTotalWeight(t *testing.T) {
	e, err := matrix.TotalWeight(pathThree(t))
	require.NoError(t, err)
	require.Equal(t, 2.0, e) // two unit edges

	weighted := mustDense(t, [][]float64{{0, 3}, {3, 0}})
	e, err = matrix.TotalWeight(weighted)
	require.NoError(t, err)
	require.Equal(t, 3.0, e)
}

// TestLaplacianPath validates L = diag(d) − W on the path fixture.
func TestLaplacianPath(t *testing.T) {
	l, err := matrix.Laplacian(pathThree(t))
	require.NoError(t, err)

	want := [][]float64{
		{1, -1, 0},
		{-1, 2, -1},
		{0, -1, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := l.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "L[%d,%d]", i, j)
		}
	}
}

// TestLaplacianRowSumsZero asserts the defining invariant: every Laplacian
// row sums to zero (the all-ones vector is in the kernel).
func TestLaplacianRowSumsZero(t *testing.T) {
	w := mustDense(t, [][]float64{
		{0, 2, 0.5},
		{2, 0, 1},
		{0.5, 1, 0},
	})
	l, err := matrix.Laplacian(w)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			v, err := l.At(i, j)
			require.NoError(t, err)
			sum += v
		}
		require.InDelta(t, 0, sum, 1e-12, "row %d", i)
	}
}

// TestLaplacianSelfLoop checks that a diagonal weight cancels out of the
// Laplacian diagonal (degree includes the loop, then the loop is subtracted).
func TestLaplacianSelfLoop(t *testing.T) {
	w := mustDense(t, [][]float64{
		{5, 1},
		{1, 0},
	})
	l, err := matrix.Laplacian(w)
	require.NoError(t, err)

	v, err := l.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // degree 6 minus loop weight 5
}

// TestLaplacianDoesNotMutateInput guards the no-aliasing contract.
func TestLaplacianDoesNotMutateInput(t *testing.T) {
	w := pathThree(t)
	_, err := matrix.Laplacian(w)
	require.NoError(t, err)

	v, err := w.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original weight untouched
}

// TestScale verifies fresh scaled copies.
func TestScale(t *testing.T) {
	w := pathThree(t)
	s, err := matrix.Scale(w, 2.5)
	require.NoError(t, err)

	v, err := s.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	orig, err := w.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // input untouched

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
