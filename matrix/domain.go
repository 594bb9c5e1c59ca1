// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// CheckDomain reports whether every stored entry of m rounds to an integer
// in the requested domain ({0,1} for DomainBinary, {-1,0,1} for
// DomainTernary).
//
// For float value types an entry v is accepted iff round(v) is in range and
// |v - round(v)| <= eps (WithEpsilon, default DefaultEpsilon). For integer
// types the check is an exact range check (eps has no effect).
//
// On the first violation in row-major order it returns false together with
// the 1×1 Submatrix locating (row, column). Callers must check the boolean
// before consulting the submatrix; it is nil when the result is true.
//
// Errors: ErrNilMatrix / ErrInvalidMatrix from Validate; ErrPreconditionViolated
// for an unknown Domain.
// Complexity: O(rows + nnz).
func CheckDomain[T Value](m *Sparse[T], d Domain, opts ...Option) (bool, *Submatrix, error) {
	if err := Validate(m); err != nil {
		return false, nil, fmt.Errorf("CheckDomain: %w", err)
	}
	if d != DomainBinary && d != DomainTernary {
		return false, nil, fmt.Errorf("CheckDomain(%d): %w", int(d), ErrPreconditionViolated)
	}
	o := gatherOptions(opts...)
	lo, hi := d.bounds()

	for r := 0; r < m.NumRows; r++ {
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			if !inDomain(float64(m.EntryValue[e]), lo, hi, o.eps) {
				return false, NewSubmatrix1x1(r, m.EntryColumn[e]), nil
			}
		}
	}

	return true, nil, nil
}

// IsBinary is CheckDomain(m, DomainBinary, opts...).
func IsBinary[T Value](m *Sparse[T], opts ...Option) (bool, *Submatrix, error) {
	return CheckDomain(m, DomainBinary, opts...)
}

// IsTernary is CheckDomain(m, DomainTernary, opts...).
func IsTernary[T Value](m *Sparse[T], opts ...Option) (bool, *Submatrix, error) {
	return CheckDomain(m, DomainTernary, opts...)
}

// inDomain tests one value. Integer-typed values are exact, so the epsilon
// comparison only matters for fractional floats.
func inDomain(x, lo, hi, eps float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	rounded := math.Round(x)
	if rounded < lo || rounded > hi {
		return false
	}

	return math.Abs(x-rounded) <= eps
}
