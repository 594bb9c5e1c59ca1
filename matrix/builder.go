// Package matrix provides constructors that build sorted CSR matrices from
// dense rows and from triplet lists, with fail-fast validation.
package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// FromDense builds a sorted Sparse matrix from dense rows, dropping zeros.
//
// A nil or empty input yields a 0×0 matrix. All rows must have the same
// length; the column count is taken from the first row.
//
// Errors: ErrDimensionMismatch for ragged rows.
// Complexity: O(rows·cols).
func FromDense[T Value](rows [][]T) (*Sparse[T], error) {
	numRows := len(rows)
	numColumns := 0
	if numRows > 0 {
		numColumns = len(rows[0])
	}

	nnz := 0
	for i, row := range rows {
		if len(row) != numColumns {
			return nil, fmt.Errorf("FromDense: row %d has %d columns, want %d: %w", i, len(row), numColumns, ErrDimensionMismatch)
		}
		for _, v := range row {
			if v != 0 {
				nnz++
			}
		}
	}

	m := newSparse[T](numRows, numColumns, nnz)
	k := 0
	for i, row := range rows {
		m.RowStart[i] = k
		for j, v := range row {
			if v != 0 {
				m.EntryColumn[k] = j
				m.EntryValue[k] = v
				k++
			}
		}
	}
	m.RowStart[numRows] = k

	return m, nil
}

// FromTriplets builds a sorted numRows×numColumns matrix from entries given
// in any order. Explicit zero values are stored (not dropped).
//
// Errors:
//   - ErrPreconditionViolated for negative sizes or a duplicated (row, column).
//   - ErrOutOfRange for an entry outside the shape.
//   - ErrOutOfMemory if numRows reaches MaxEntries.
//
// Complexity: O(nnz log nnz + rows).
func FromTriplets[T Value](numRows, numColumns int, entries []Triplet[T]) (*Sparse[T], error) {
	if numRows < 0 || numColumns < 0 {
		return nil, fmt.Errorf("FromTriplets(%d,%d): %w", numRows, numColumns, ErrPreconditionViolated)
	}
	if err := checkLengths("FromTriplets", numRows); err != nil {
		return nil, err
	}
	sorted := append([]Triplet[T](nil), entries...)
	for _, t := range sorted {
		if t.Row < 0 || t.Row >= numRows || t.Column < 0 || t.Column >= numColumns {
			return nil, fmt.Errorf("FromTriplets: entry (%d,%d): %w", t.Row, t.Column, ErrOutOfRange)
		}
	}
	slices.SortFunc(sorted, func(a, b Triplet[T]) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Column - b.Column
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Row == sorted[i-1].Row && sorted[i].Column == sorted[i-1].Column {
			return nil, fmt.Errorf("FromTriplets: duplicate entry (%d,%d): %w", sorted[i].Row, sorted[i].Column, ErrPreconditionViolated)
		}
	}

	return BuildCSR[T](numRows, numColumns, len(sorted), func(emit func(int, int, T)) {
		for _, t := range sorted {
			emit(t.Row, t.Column, t.Value)
		}
	}), nil
}
