// SPDX-License-Identifier: Apache-2.0
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidate covers nil input and every structural violation.
func TestValidate(t *testing.T) {
	t.Parallel()

	good := func() *matrix.Sparse[int] {
		return &matrix.Sparse[int]{
			NumRows: 2, NumColumns: 3, NumNonzeros: 3,
			RowStart:    []int{0, 2, 3},
			EntryColumn: []int{0, 2, 1},
			EntryValue:  []int{1, 1, -1},
		}
	}

	tests := []struct {
		name    string
		m       *matrix.Sparse[int]
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"good", good(), nil},
		{"negative rows", func() *matrix.Sparse[int] { m := good(); m.NumRows = -1; return m }(), matrix.ErrInvalidMatrix},
		{"short RowStart", func() *matrix.Sparse[int] { m := good(); m.RowStart = m.RowStart[:2]; return m }(), matrix.ErrInvalidMatrix},
		{"short entries", func() *matrix.Sparse[int] { m := good(); m.EntryValue = m.EntryValue[:2]; return m }(), matrix.ErrInvalidMatrix},
		{"nonzero first start", func() *matrix.Sparse[int] { m := good(); m.RowStart[0] = 1; return m }(), matrix.ErrInvalidMatrix},
		{"decreasing RowStart", func() *matrix.Sparse[int] { m := good(); m.RowStart[1] = 4; return m }(), matrix.ErrInvalidMatrix},
		{"bad sentinel", func() *matrix.Sparse[int] { m := good(); m.RowStart[2] = 2; return m }(), matrix.ErrInvalidMatrix},
		{"column too large", func() *matrix.Sparse[int] { m := good(); m.EntryColumn[1] = 3; return m }(), matrix.ErrInvalidMatrix},
		{"negative column", func() *matrix.Sparse[int] { m := good(); m.EntryColumn[2] = -1; return m }(), matrix.ErrInvalidMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.Validate(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestIsSorted distinguishes ascending, descending and duplicate columns.
func TestIsSorted(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int{{1, 0, 1}, {0, 1, 1}})
	require.True(t, matrix.IsSorted(m))

	m.EntryColumn[0], m.EntryColumn[1] = 2, 0 // row 0 now lists columns 2, 0
	require.False(t, matrix.IsSorted(m))

	dup := &matrix.Sparse[int]{
		NumRows: 1, NumColumns: 2, NumNonzeros: 2,
		RowStart: []int{0, 2}, EntryColumn: []int{1, 1}, EntryValue: []int{1, 1},
	}
	require.NoError(t, matrix.Validate(dup))
	require.False(t, matrix.IsSorted(dup))
}

// TestEqual covers equal, differing and unsorted operands.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]int{{1, 0, 1}, {0, -1, 0}})
	b := mustDense(t, [][]int{{1, 0, 1}, {0, -1, 0}})
	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	c := mustDense(t, [][]int{{1, 0, 1}, {0, 1, 0}})
	ok, err = matrix.Equal(a, c)
	require.NoError(t, err)
	require.False(t, ok, "values differ")

	d := mustDense(t, [][]int{{1, 1, 0}, {0, -1, 0}})
	ok, err = matrix.Equal(a, d)
	require.NoError(t, err)
	require.False(t, ok, "columns differ")

	e := mustDense(t, [][]int{{1, 0, 1, 0}, {0, -1, 0, 0}})
	ok, err = matrix.Equal(a, e)
	require.NoError(t, err)
	require.False(t, ok, "shapes differ")

	// Same entries distributed differently over rows.
	f := mustDense(t, [][]int{{1, 0, 0}, {0, -1, 1}})
	ok, err = matrix.Equal(a, f)
	require.NoError(t, err)
	require.False(t, ok, "row ranges differ")

	u := a.Clone()
	u.EntryColumn[0], u.EntryColumn[1] = 2, 0
	_, err = matrix.Equal(a, u)
	require.ErrorIs(t, err, matrix.ErrNotSorted)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIsTransposeOf checks the per-column cursor walk against Transpose.
func TestIsTransposeOf(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]int{
		{1, 0, -1, 0},
		{0, 1, 1, 0},
		{1, 0, 0, 1},
	})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)

	ok, err := matrix.IsTransposeOf(a, at)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsTransposeOf(at, a)
	require.NoError(t, err)
	require.True(t, ok, "transpose relation is symmetric")

	ok, err = matrix.IsTransposeOf(a, a)
	require.NoError(t, err)
	require.False(t, ok, "non-square shape mismatch")

	bad := at.Clone()
	bad.EntryValue[0] = -bad.EntryValue[0]
	ok, err = matrix.IsTransposeOf(a, bad)
	require.NoError(t, err)
	require.False(t, ok, "value mismatch")

	// Same shape and nnz, but an entry moved to another row of the transpose.
	moved := mustDense(t, [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{-1, 1, 0},
		{1, 0, 0},
	})
	ok, err = matrix.IsTransposeOf(a, moved)
	require.NoError(t, err)
	require.False(t, ok)
}
