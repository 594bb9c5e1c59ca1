// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (dense literals, seeded random
//     sparse matrices) and entry-multiset utilities for property checks.

package matrix_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a sorted Sparse from dense rows or fails the test.
func mustDense[T matrix.Value](tb testing.TB, rows [][]T) *matrix.Sparse[T] {
	tb.Helper()
	m, err := matrix.FromDense(rows)
	require.NoError(tb, err)
	require.NoError(tb, matrix.Validate(m))

	return m
}

// randomTernary returns a sorted r×c matrix with entries in {-1,1} placed
// with probability density, using a fixed seed.
func randomTernary(tb testing.TB, seed int64, r, c int, density float64) *matrix.Sparse[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, c)
		for j := range rows[i] {
			if rng.Float64() < density {
				if rng.Intn(2) == 0 {
					rows[i][j] = 1
				} else {
					rows[i][j] = -1
				}
			}
		}
	}

	return mustDense(tb, rows)
}

// entry is one (row, column, value) of a matrix, used for multiset comparisons.
type entry[T matrix.Value] struct {
	row, col int
	val      T
}

// entriesOf lists the stored entries of m sorted by (row, column).
// With transposed, rows and columns are swapped while listing.
func entriesOf[T matrix.Value](m *matrix.Sparse[T], transposed bool) []entry[T] {
	out := make([]entry[T], 0, m.NumNonzeros)
	for r := 0; r < m.NumRows; r++ {
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			if transposed {
				out = append(out, entry[T]{m.EntryColumn[e], r, m.EntryValue[e]})
			} else {
				out = append(out, entry[T]{r, m.EntryColumn[e], m.EntryValue[e]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].row != out[j].row {
			return out[i].row < out[j].row
		}
		return out[i].col < out[j].col
	})

	return out
}

// wideMatrix returns a valid empty 1×MaxInt matrix; anything that allocates
// per column must refuse it.
func wideMatrix(tb testing.TB) *matrix.Sparse[int] {
	tb.Helper()
	m := &matrix.Sparse[int]{NumRows: 1, NumColumns: math.MaxInt, RowStart: []int{0, 0}}
	require.NoError(tb, matrix.Validate(m))

	return m
}
