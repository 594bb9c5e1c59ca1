// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks of the
//    CSR layout, sortedness, equality and transpose consistency.
//  - Keep kernels minimal by delegating nil/shape/layout checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only IsTransposeOf allocates
//    (one cursor per column).
//
// Note:
//  - Comparisons require sorted operands and report ErrNotSorted otherwise,
//    so an unsorted input never yields a layout comparison mistaken for a
//    semantic one.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// invalidf wraps ErrInvalidMatrix with a formatted location.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("Validate: "+format+": %w", append(args, ErrInvalidMatrix)...)
}

// Validate checks the CSR invariants of m.
//
// Inputs: any *Sparse, possibly nil.
// Errors:
//   - ErrNilMatrix if m == nil.
//   - ErrInvalidMatrix (wrapped with the offending location) on negative
//     sizes, wrong slice lengths, RowStart[0] != 0, a decreasing RowStart,
//     RowStart[NumRows] != NumNonzeros, or a column outside [0, NumColumns).
//
// Complexity: O(rows + nnz), no allocation on success.
func Validate[T Value](m *Sparse[T]) error {
	if m == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if m.NumRows < 0 || m.NumColumns < 0 || m.NumNonzeros < 0 {
		return invalidf("negative size %dx%d nnz=%d", m.NumRows, m.NumColumns, m.NumNonzeros)
	}
	if len(m.RowStart) != m.NumRows+1 {
		return invalidf("len(RowStart)=%d, want %d", len(m.RowStart), m.NumRows+1)
	}
	if len(m.EntryColumn) != m.NumNonzeros || len(m.EntryValue) != m.NumNonzeros {
		return invalidf("entry slices %d/%d, want %d", len(m.EntryColumn), len(m.EntryValue), m.NumNonzeros)
	}
	if m.RowStart[0] != 0 {
		return invalidf("RowStart[0]=%d", m.RowStart[0])
	}
	for r := 0; r < m.NumRows; r++ {
		if m.RowStart[r+1] < m.RowStart[r] {
			return invalidf("RowStart decreases at row %d", r)
		}
	}
	if m.RowStart[m.NumRows] != m.NumNonzeros {
		return invalidf("RowStart[%d]=%d, want %d", m.NumRows, m.RowStart[m.NumRows], m.NumNonzeros)
	}
	for e, c := range m.EntryColumn {
		if c < 0 || c >= m.NumColumns {
			return invalidf("entry %d has column %d", e, c)
		}
	}

	return nil
}

// IsSorted reports whether every row lists its columns in strictly ascending
// order. m must be well-formed.
// Complexity: O(nnz).
func IsSorted[T Value](m *Sparse[T]) bool {
	for r := 0; r < m.NumRows; r++ {
		begin, end := m.RowRange(r)
		for e := begin + 1; e < end; e++ {
			if m.EntryColumn[e] <= m.EntryColumn[e-1] {
				return false
			}
		}
	}

	return true
}

// validateSorted is the composite NotNil → Layout → Sorted check.
func validateSorted[T Value](tag string, m *Sparse[T]) error {
	if err := Validate(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if !IsSorted(m) {
		return validatorErrorf(tag, ErrNotSorted)
	}

	return nil
}

// Equal reports whether a and b have the same dimensions and, row by row,
// identical entry ranges and entry sequences (columns and values).
//
// Errors: ErrNilMatrix, ErrInvalidMatrix, ErrNotSorted (both must be sorted).
// Complexity: O(rows + nnz).
func Equal[T Value](a, b *Sparse[T]) (bool, error) {
	if err := validateSorted("Equal", a); err != nil {
		return false, err
	}
	if err := validateSorted("Equal", b); err != nil {
		return false, err
	}
	if a.NumRows != b.NumRows || a.NumColumns != b.NumColumns || a.NumNonzeros != b.NumNonzeros {
		return false, nil
	}
	for r := 0; r < a.NumRows; r++ {
		beginA, endA := a.RowRange(r)
		beginB, endB := b.RowRange(r)
		if beginA != beginB || endA != endB {
			return false, nil
		}
		for e := beginA; e < endA; e++ {
			if a.EntryColumn[e] != b.EntryColumn[e] || a.EntryValue[e] != b.EntryValue[e] {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsTransposeOf reports whether b is the transpose of a.
//
// Implementation:
//   - Stage 1: shape and nnz must mirror each other.
//   - Stage 2: one cursor per column of a, initialized from b.RowStart.
//   - Stage 3: walk a row-major; each entry (r, c, v) must equal the entry
//     under cursor[c] in b, i.e. (c, r, v); then advance cursor[c].
//
// Errors: ErrNilMatrix, ErrInvalidMatrix, ErrNotSorted.
// Complexity: Time O(rows + cols + nnz), Space O(cols).
func IsTransposeOf[T Value](a, b *Sparse[T]) (bool, error) {
	if err := validateSorted("IsTransposeOf", a); err != nil {
		return false, err
	}
	if err := validateSorted("IsTransposeOf", b); err != nil {
		return false, err
	}
	if a.NumRows != b.NumColumns || a.NumColumns != b.NumRows || a.NumNonzeros != b.NumNonzeros {
		return false, nil
	}

	cursor := make([]int, b.NumRows)
	copy(cursor, b.RowStart[:b.NumRows])

	for r := 0; r < a.NumRows; r++ {
		begin, end := a.RowRange(r)
		for e := begin; e < end; e++ {
			c := a.EntryColumn[e]
			k := cursor[c]
			if k >= b.RowStart[c+1] || b.EntryColumn[k] != r || b.EntryValue[k] != a.EntryValue[e] {
				return false, nil
			}
			cursor[c]++
		}
	}

	return true, nil
}
