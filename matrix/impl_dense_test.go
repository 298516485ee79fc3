// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/beartooth/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSquare verifies that NewSquare accepts 0 and rejects negatives.
func TestNewSquare(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	rows, cols := m.Shape()
	require.Equal(t, 0, rows)
	require.Equal(t, 0, cols)
	require.Equal(t, "", m.String())

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err = matrix.NewSquare(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestAtAddOutOfBounds ensures accessors return ErrOutOfRange on invalid access.
func TestAtAddOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAddAccumulates validates repeated Add calls sum into the same cell.
func TestAddAccumulates(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Add(1, 2, 7.5))
	require.NoError(t, m.Add(1, 2, -2.5))
	require.NoError(t, m.Add(0, 0, 1))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, val)

	val, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, val)
}

// TestAddRejectsNonFinite checks that NaN/Inf never reach the buffer.
func TestAddRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Add(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	// Overflowing sum of two finite values is rejected and the cell is kept.
	require.NoError(t, m.Add(1, 1, math.MaxFloat64))
	require.ErrorIs(t, m.Add(1, 1, math.MaxFloat64), matrix.ErrNaNInf)
	v, _ := m.At(1, 1)
	require.Equal(t, math.MaxFloat64, v)
}

// TestString checks the diagnostic dump layout.
func TestString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Add(0, 0, 1.5)
	_ = m.Add(1, 1, -2)
	require.Equal(t, "[1.5, 0]\n[0, -2]\n", m.String())
}
