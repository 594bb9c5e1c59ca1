// SPDX-License-Identifier: MIT

// Package matrix: domain types of the sparse engine.
// This file contains ONLY the domain-facing types (value domain, CSR storage,
// triplets, submatrix selections, domain kinds). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Value is the set of numeric element domains a Sparse matrix may hold.
// Wide floating point (float64), wide integers (int, int64) and narrow
// integers (int8) are the domains used by decomposition code; the constraint
// admits every signed integer and float type.
type Value interface {
	constraints.Float | constraints.Signed
}

// Sparse is a matrix in compressed sparse row (CSR) layout.
//
// Row r occupies the entry range [RowStart[r], RowStart[r+1]) of the
// parallel slices EntryColumn and EntryValue. A well-formed matrix satisfies:
//   - len(RowStart) == NumRows+1, RowStart[0] == 0, RowStart non-decreasing;
//   - RowStart[NumRows] == NumNonzeros == len(EntryColumn) == len(EntryValue);
//   - 0 <= EntryColumn[e] < NumColumns.
//
// Use Validate to check these. "Sorted" (strictly ascending columns within
// each row) is a separate property, see IsSorted. Stored zero values are
// legal and never removed implicitly.
type Sparse[T Value] struct {
	NumRows     int // number of rows (>= 0)
	NumColumns  int // number of columns (>= 0)
	NumNonzeros int // number of stored entries (>= 0)

	RowStart    []int // len NumRows+1; offsets into the entry slices
	EntryColumn []int // len NumNonzeros; column of each entry
	EntryValue  []T   // len NumNonzeros; value of each entry
}

// Triplet is a single (row, column, value) entry used by FromTriplets and
// the entries form of a YAML Document.
type Triplet[T Value] struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	Value  T   `json:"value"`
}

// Submatrix selects an ordered sequence of rows and columns of a parent
// matrix. It holds index references only, no values.
type Submatrix struct {
	Rows    []int `json:"rows"`
	Columns []int `json:"columns"`
}

// Domain selects the value domain checked by CheckDomain.
type Domain int

const (
	// DomainBinary accepts entries in {0, 1}.
	DomainBinary Domain = iota
	// DomainTernary accepts entries in {-1, 0, 1}.
	DomainTernary
)

// String implements fmt.Stringer.
func (d Domain) String() string {
	switch d {
	case DomainBinary:
		return "binary"
	case DomainTernary:
		return "ternary"
	default:
		return "unknown"
	}
}

// bounds returns the inclusive integer range admitted by the domain.
func (d Domain) bounds() (lo, hi float64) {
	if d == DomainTernary {
		return -1, 1
	}

	return 0, 1
}
