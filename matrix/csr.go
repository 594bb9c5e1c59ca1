// SPDX-License-Identifier: MIT

// Package matrix - two-pass counting-sort CSR construction.
//
// Purpose:
//   - Build a CSR matrix from an entry stream in O(rows + cols + nnz) without
//     growable buffers: count → prefix-sum → cursor-fill → un-shift.
//   - Serve as the single kernel behind Transpose and the one-sum
//     decomposer's per-component transposes.
//
// Determinism:
//   - Within each destination row, entries keep the order in which the
//     scan emitted them. A scan that walks its source row-major therefore
//     yields destination rows sorted by source row.

package matrix

// EntryScan feeds the (row, column, value) entries of a destination matrix to
// emit. BuildCSR calls it exactly twice; both calls must emit the same
// sequence.
type EntryScan[T Value] func(emit func(row, column int, value T))

// BuildCSR materializes a numRows×numColumns matrix holding exactly the
// numNonzeros entries produced by scan.
//
// Implementation:
//   - Stage 1: zero RowStart (fresh allocation) and histogram each entry
//     into RowStart[row+1].
//   - Stage 2: prefix-sum so RowStart[r] is the first slot of row r.
//   - Stage 3: second scan writes each entry at the cursor RowStart[row]
//     and advances it; afterwards RowStart[r] points one past row r.
//   - Stage 4: un-shift RowStart by one position and restore RowStart[0]=0.
//
// Contract: every emitted row is in [0, numRows), every column in
// [0, numColumns), and the scan emits exactly numNonzeros entries. Violations
// panic with an index error; exported wrappers validate before calling.
//
// Complexity: Time O(numRows + numNonzeros) plus two scans, Space O(result).
func BuildCSR[T Value](numRows, numColumns, numNonzeros int, scan EntryScan[T]) *Sparse[T] {
	dst := newSparse[T](numRows, numColumns, numNonzeros)
	start := dst.RowStart

	// Stage 1: histogram, shifted by one.
	scan(func(row, _ int, _ T) {
		start[row+1]++
	})

	// Stage 2: start offsets. start[numRows] still holds the last row's
	// count and is rewritten in stage 4.
	for r := 1; r < numRows; r++ {
		start[r] += start[r-1]
	}

	// Stage 3: cursor fill.
	scan(func(row, column int, value T) {
		slot := start[row]
		dst.EntryColumn[slot] = column
		dst.EntryValue[slot] = value
		start[row]++
	})

	// Stage 4: un-shift.
	for r := numRows; r > 0; r-- {
		start[r] = start[r-1]
	}
	start[0] = 0

	return dst
}
