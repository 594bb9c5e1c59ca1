// Package matrix offers a compressed sparse row (CSR) engine for the binary
// and ternary matrices handled by total-unimodularity tests.
//
// The matrix package provides:
//
//   - Sparse[T], a CSR matrix generic over its value domain (float64, int,
//     int8, ...), allocated once with exact sizes by NewSparse.
//   - Validators: Validate (layout), IsSorted, Equal, IsTransposeOf.
//   - BuildCSR, the two-pass counting-sort construction (count, prefix-sum,
//     cursor-fill, un-shift) behind Transpose and the one-sum decomposer.
//   - CheckDomain / IsBinary / IsTernary, locating the first offending entry
//     as a 1×1 Submatrix.
//   - Submatrix selections and Filter, which materializes them.
//   - FromDense, FromTriplets, Convert (value-domain narrowing with overflow
//     detection), a YAML codec and a dense diagnostic rendering (Format).
//
// Complexity: every operation is linear in rows + columns + nonzeros except
// FromTriplets (sorting) and the dense conversions (rows·columns).
//
// Errors are package sentinels (errors.go) matched with errors.Is.
package matrix
