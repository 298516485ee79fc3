package qubo_test

import (
	"testing"

	"github.com/katalvlaran/beartooth/qubo"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		k, width int
		want     []uint8
	}{
		{0, 3, []uint8{0, 0, 0}},
		{1, 3, []uint8{1, 0, 0}},
		{2, 3, []uint8{1, 1, 0}},
		{3, 3, []uint8{1, 1, 1}},
		{0, 0, []uint8{}},
	}
	for _, tc := range cases {
		got, err := qubo.Encode(tc.k, tc.width)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
		require.True(t, qubo.IsUnary(got))
	}

	for _, bad := range [][2]int{{-1, 3}, {4, 3}, {0, -1}} {
		_, err := qubo.Encode(bad[0], bad[1])
		require.ErrorIs(t, err, qubo.ErrInvalidInput)
	}
}

func TestIsUnary(t *testing.T) {
	require.True(t, qubo.IsUnary(nil))
	require.True(t, qubo.IsUnary([]uint8{1, 1, 0, 0}))
	require.False(t, qubo.IsUnary([]uint8{1, 0, 1}))
	require.False(t, qubo.IsUnary([]uint8{0, 1, 1}))
	require.False(t, qubo.IsUnary([]uint8{1, 2, 0}))
}

func TestAssignment(t *testing.T) {
	bits, err := qubo.Assignment(4, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 1, 0, 1, 0, 0}, bits)

	bits, err = qubo.Assignment(1, 0, 0)
	require.NoError(t, err)
	require.Empty(t, bits)

	_, err = qubo.Assignment(0, 0, 0)
	require.ErrorIs(t, err, qubo.ErrInvalidInput)
	_, err = qubo.Assignment(4, 4, 0)
	require.ErrorIs(t, err, qubo.ErrInvalidInput)
	_, err = qubo.Assignment(4, 0, -1)
	require.ErrorIs(t, err, qubo.ErrInvalidInput)
}
