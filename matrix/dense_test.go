// Package matrix_test contains unit tests for the Dense implementation
// in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karstvern/voidwalk/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFromRows verifies construction from row slices and ragged rejection.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// Ragged input must be rejected with the dimension-mismatch sentinel.
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Empty input is an invalid shape.
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                        // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)                         // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)                     // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)                    // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	err = m.Set(1, 2, 7.89)
	require.NoError(t, err)

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy with no shared storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal) // clone reflects new value
}

// TestRowCopy ensures Row() returns an owned copy and nil for bad indices.
func TestRowCopy(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row := m.Row(1)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 99 // mutating the copy must not touch the matrix
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	require.Nil(t, m.Row(-1)) // out-of-range rows yield nil
	require.Nil(t, m.Row(2))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
