// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Transpose returns the transpose of src using counting sort (see BuildCSR).
//
// src must be well-formed and sorted. The result is sorted: within each
// destination row, entries appear in ascending source-row order.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidMatrix from Validate.
//   - ErrNotSorted if src has a row with non-ascending columns.
//   - ErrOutOfMemory if src.NumColumns reaches MaxEntries.
//
// Complexity: Time O(rows + cols + nnz), Space O(cols + nnz).
func Transpose[T Value](src *Sparse[T]) (*Sparse[T], error) {
	if err := Validate(src); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	if !IsSorted(src) {
		return nil, fmt.Errorf("Transpose: %w", ErrNotSorted)
	}
	if err := checkLengths("Transpose", src.NumColumns); err != nil {
		return nil, err
	}

	return transposeUnchecked(src), nil
}

// transposeUnchecked transposes a well-formed matrix without validation.
func transposeUnchecked[T Value](src *Sparse[T]) *Sparse[T] {
	return BuildCSR[T](src.NumColumns, src.NumRows, src.NumNonzeros, func(emit func(int, int, T)) {
		for row := 0; row < src.NumRows; row++ {
			begin, end := src.RowRange(row)
			for e := begin; e < end; e++ {
				emit(src.EntryColumn[e], row, src.EntryValue[e])
			}
		}
	})
}
