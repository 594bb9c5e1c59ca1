// SPDX-License-Identifier: MIT

// Package matrix - submatrix selections and their materialization.
//
// Purpose:
//   - Describe a row/column subset by reference (Submatrix holds indices only).
//   - Materialize the induced matrix with Filter in two passes (count, fill),
//     renumbering rows and columns by selection order.
//
// Complexity quicksheet:
//   - NewSubmatrix: O(r' + c'); Sort: O(r' log r' + c' log c');
//     Filter: O(cols + r' + nnz of selected rows).

package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// absentColumn marks a parent column that is not selected in Filter's remap.
const absentColumn = -1

// NewSubmatrix returns a selection of the given rows and columns. The
// slices are copied.
func NewSubmatrix(rows, columns []int) *Submatrix {
	return &Submatrix{
		Rows:    append([]int(nil), rows...),
		Columns: append([]int(nil), columns...),
	}
}

// NewSubmatrix1x1 returns the selection of the single entry (row, column).
// Domain checks use it to locate a violating entry.
func NewSubmatrix1x1(row, column int) *Submatrix {
	return &Submatrix{Rows: []int{row}, Columns: []int{column}}
}

// NumRows returns the number of selected rows.
func (s *Submatrix) NumRows() int { return len(s.Rows) }

// NumColumns returns the number of selected columns.
func (s *Submatrix) NumColumns() int { return len(s.Columns) }

// Sort orders the selected rows and columns ascending, in place.
func (s *Submatrix) Sort() {
	slices.Sort(s.Rows)
	slices.Sort(s.Columns)
}

// Filter materializes the submatrix of m selected by sub.
//
// Implementation:
//   - Stage 1: build a column remap of size m.NumColumns
//     (original column -> position in sub.Columns, or absent).
//   - Stage 2: count the entries of the selected rows whose column is kept.
//   - Stage 3: fill rows in sub.Rows order, renumbering columns via the remap.
//
// Behavior highlights:
//   - Entry order within a row follows the parent row. The result is sorted
//     when the parent is sorted and sub.Columns is ascending.
//   - Stored zeros are carried over.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidMatrix from Validate; ErrNilMatrix for a nil sub.
//   - ErrOutOfRange for a selected row or column outside the parent.
//   - ErrPreconditionViolated for a column selected twice.
//   - ErrOutOfMemory if m.NumColumns reaches MaxEntries.
//
// Complexity: Time O(cols + |rows| + nnz(selected rows)), Space O(cols + result).
func Filter[T Value](m *Sparse[T], sub *Submatrix) (*Sparse[T], error) {
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("Filter: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("Filter: submatrix: %w", ErrNilMatrix)
	}
	if err := checkLengths("Filter", m.NumColumns); err != nil {
		return nil, err
	}

	// Stage 1: column remap.
	columnMap := make([]int, m.NumColumns)
	for c := range columnMap {
		columnMap[c] = absentColumn
	}
	for j, c := range sub.Columns {
		if c < 0 || c >= m.NumColumns {
			return nil, fmt.Errorf("Filter: column %d: %w", c, ErrOutOfRange)
		}
		if columnMap[c] != absentColumn {
			return nil, fmt.Errorf("Filter: column %d selected twice: %w", c, ErrPreconditionViolated)
		}
		columnMap[c] = j
	}
	for _, r := range sub.Rows {
		if r < 0 || r >= m.NumRows {
			return nil, fmt.Errorf("Filter: row %d: %w", r, ErrOutOfRange)
		}
	}

	// Stage 2: count.
	nnz := 0
	for _, r := range sub.Rows {
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			if columnMap[m.EntryColumn[e]] != absentColumn {
				nnz++
			}
		}
	}

	// Stage 3: fill.
	out := newSparse[T](len(sub.Rows), len(sub.Columns), nnz)
	k := 0
	for i, r := range sub.Rows {
		out.RowStart[i] = k
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			if local := columnMap[m.EntryColumn[e]]; local != absentColumn {
				out.EntryColumn[k] = local
				out.EntryValue[k] = m.EntryValue[e]
				k++
			}
		}
	}
	out.RowStart[len(sub.Rows)] = k

	return out, nil
}
