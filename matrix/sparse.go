// SPDX-License-Identifier: MIT

// Package matrix - CSR storage: construction, copies and read accessors.
//
// Purpose:
//   - Allocate exact final sizes once; callers fill RowStart and the entry slices.
//   - Provide deep copies with independent lifetime.
//   - Provide row scans and sorted lookups without exposing offset arithmetic.
//
// Complexity quicksheet:
//   - NewSparse: O(rows + nnz) zero-init; Clone: O(rows + nnz);
//     RowRange: O(1); At: O(log rowLength).

package matrix

import (
	"fmt"
	"sort"
)

// MaxEntries bounds every length the package allocates (RowStart, entry
// slices, per-column scratch). Longer slices would exceed the runtime's
// allocation limit: 1<<48 bytes on 64-bit platforms.
const MaxEntries = 1 << (28 + 17*(^uint(0)>>63))

// checkLengths reports ErrOutOfMemory if any length would need a slice of
// MaxEntries or more elements (RowStart needs one extra slot).
func checkLengths(tag string, lengths ...int) error {
	for _, n := range lengths {
		if n >= MaxEntries {
			return fmt.Errorf("%s: length %d: %w", tag, n, ErrOutOfMemory)
		}
	}

	return nil
}

// sparseErrorf wraps an error with a uniform Sparse context and indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// NewSparse allocates a numRows×numColumns matrix with room for exactly
// numNonzeros entries.
//
// RowStart has length numRows+1; the entry slices are allocated only when
// numNonzeros > 0 (nil otherwise). All storage is zero-filled, which is a
// valid layout only for numNonzeros == 0. Otherwise the caller must populate
// RowStart monotonically with RowStart[numRows] == numNonzeros before any
// row scan is used.
//
// Errors:
//   - ErrPreconditionViolated if any size is negative.
//   - ErrOutOfMemory if numRows or numNonzeros reaches MaxEntries.
//
// Complexity: Time O(rows + nnz), Space O(rows + nnz).
func NewSparse[T Value](numRows, numColumns, numNonzeros int) (*Sparse[T], error) {
	if numRows < 0 || numColumns < 0 || numNonzeros < 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d,%d): %w", numRows, numColumns, numNonzeros, ErrPreconditionViolated)
	}
	if err := checkLengths("NewSparse", numRows, numNonzeros); err != nil {
		return nil, err
	}

	return newSparse[T](numRows, numColumns, numNonzeros), nil
}

// newSparse is the unchecked allocator used after sizes are known to be sane.
func newSparse[T Value](numRows, numColumns, numNonzeros int) *Sparse[T] {
	m := &Sparse[T]{
		NumRows:     numRows,
		NumColumns:  numColumns,
		NumNonzeros: numNonzeros,
		RowStart:    make([]int, numRows+1),
	}
	if numNonzeros > 0 {
		m.EntryColumn = make([]int, numNonzeros)
		m.EntryValue = make([]T, numNonzeros)
	}

	return m
}

// Copy returns a deep clone of src.
// Errors: ErrNilMatrix if src is nil; ErrInvalidMatrix if src is malformed.
func Copy[T Value](src *Sparse[T]) (*Sparse[T], error) {
	if err := Validate(src); err != nil {
		return nil, fmt.Errorf("Copy: %w", err)
	}

	return src.Clone(), nil
}

// Clone returns a deep copy of m. The result shares no storage with m.
// Clone does not validate; use Copy for a checked clone.
// Complexity: O(rows + nnz).
func (m *Sparse[T]) Clone() *Sparse[T] {
	if m == nil {
		return nil
	}
	out := newSparse[T](m.NumRows, m.NumColumns, m.NumNonzeros)
	copy(out.RowStart, m.RowStart)
	copy(out.EntryColumn, m.EntryColumn)
	copy(out.EntryValue, m.EntryValue)

	return out
}

// Rows returns the number of rows.
func (m *Sparse[T]) Rows() int { return m.NumRows }

// Cols returns the number of columns.
func (m *Sparse[T]) Cols() int { return m.NumColumns }

// Nnz returns the number of stored entries (including stored zeros).
func (m *Sparse[T]) Nnz() int { return m.NumNonzeros }

// RowRange returns the half-open entry range [begin, end) of row r.
// r must be in [0, NumRows); the layout must be well-formed.
func (m *Sparse[T]) RowRange(r int) (begin, end int) {
	return m.RowStart[r], m.RowStart[r+1]
}

// At looks up the entry (row, col) by binary search in the row.
// It reports whether an entry is stored; a stored zero returns (0, true).
//
// Requires row to be sorted; on unsorted rows the result is unspecified.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(log rowLength).
func (m *Sparse[T]) At(row, col int) (T, bool, error) {
	var zero T
	if m == nil {
		return zero, false, sparseErrorf("At", row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.NumRows || col < 0 || col >= m.NumColumns {
		return zero, false, sparseErrorf("At", row, col, ErrOutOfRange)
	}
	begin, end := m.RowRange(row)
	cols := m.EntryColumn[begin:end]
	i := sort.SearchInts(cols, col)
	if i < len(cols) && cols[i] == col {
		return m.EntryValue[begin+i], true, nil
	}

	return zero, false, nil
}
