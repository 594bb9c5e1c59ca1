// Package matrix_test contains unit tests for FromDense and FromTriplets.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromDense drops zeros and produces a sorted layout.
func TestFromDense(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int{{0, 1, 0}, {0, 0, 0}, {1, 0, -1}})
	require.Equal(t, 3, m.NumNonzeros)
	require.Equal(t, []int{0, 1, 1, 3}, m.RowStart)
	require.Equal(t, []int{1, 0, 2}, m.EntryColumn)
	require.True(t, matrix.IsSorted(m))

	empty, err := matrix.FromDense[int](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.NumRows)
	require.NoError(t, matrix.Validate(empty))

	_, err = matrix.FromDense([][]int{{1, 0}, {1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromTriplets sorts entries, keeps zeros and rejects bad input.
func TestFromTriplets(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromTriplets(2, 3, []matrix.Triplet[float64]{
		{Row: 1, Column: 2, Value: 1},
		{Row: 0, Column: 2, Value: -1},
		{Row: 1, Column: 0, Value: 0},
		{Row: 0, Column: 0, Value: 1},
	})
	require.NoError(t, err)
	require.True(t, matrix.IsSorted(m))
	require.Equal(t, 4, m.NumNonzeros)
	require.Equal(t, []int{0, 2, 4}, m.RowStart)
	require.Equal(t, []int{0, 2, 0, 2}, m.EntryColumn)
	require.Equal(t, []float64{1, -1, 0, 1}, m.EntryValue)

	_, err = matrix.FromTriplets(2, 2, []matrix.Triplet[int]{{Row: 2, Column: 0, Value: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.FromTriplets(2, 2, []matrix.Triplet[int]{
		{Row: 1, Column: 1, Value: 1},
		{Row: 1, Column: 1, Value: -1},
	})
	require.ErrorIs(t, err, matrix.ErrPreconditionViolated)

	_, err = matrix.FromTriplets[int](-1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrPreconditionViolated)

	_, err = matrix.FromTriplets[float64](math.MaxInt, 1, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
	_, err = matrix.FromTriplets[float64](matrix.MaxEntries, 1, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
}
