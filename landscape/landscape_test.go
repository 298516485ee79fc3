package landscape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/beartooth/landscape"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, non-square or
// non-finite inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, landscape.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, landscape.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, landscape.ErrNonRectangular},
		{"NonSquare", [][]float64{{1, 2}}, landscape.ErrNonSquare},
		{"NaN", [][]float64{{1, math.NaN()}, {0, 0}}, landscape.ErrNaNInf},
		{"Inf", [][]float64{{1, 0}, {math.Inf(-1), 0}}, landscape.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := landscape.New(tc.grid)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	l, err := landscape.New(grid)
	require.NoError(t, err)

	grid[1][0] = 99
	h, err := l.Height(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, h)

	rows := l.Rows()
	rows[0][0] = -1
	h, _ = l.Height(0, 0)
	require.Equal(t, 1.0, h)
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestHeight checks indexing order [x][y] and bounds.
func TestHeight(t *testing.T) {
	l, err := landscape.From2DInts([][]int{
		{0, 1, 2},
		{10, 11, 12},
		{20, 21, 22},
	})
	require.NoError(t, err)
	require.Equal(t, 3, l.Size())

	h, err := l.Height(2, 1)
	require.NoError(t, err)
	require.Equal(t, 21.0, h)

	invalid := [][2]int{{-1, 0}, {3, 0}, {0, 3}, {2, -1}}
	for _, xy := range invalid {
		require.False(t, l.InBounds(xy[0], xy[1]))
		_, err = l.Height(xy[0], xy[1])
		require.ErrorIs(t, err, landscape.ErrOutOfRange)
	}
}

// TestBeartooth checks the demo landscape shape, range and lowest point.
func TestBeartooth(t *testing.T) {
	l := landscape.Beartooth()
	require.Equal(t, 10, l.Size())

	low, high := l.Range()
	require.Equal(t, 0.0, low)
	require.Equal(t, 9.0, high)

	h, err := l.Height(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, h)

	h, err = l.Height(0, 9)
	require.NoError(t, err)
	require.Equal(t, 5.0, h)
}
