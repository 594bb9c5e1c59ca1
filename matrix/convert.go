// SPDX-License-Identifier: MIT

// Package matrix - conversion between value domains.
//
// Purpose:
//   - Narrow wide matrices (float64, int) to compact ones (int8) for
//     decomposition, rounding floats to the nearest integer.
//   - Detect values that do not survive the conversion instead of silently
//     wrapping or truncating them.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// IsIntegral reports whether T is an integer type.
func IsIntegral[T Value]() bool {
	half := 0.5

	return T(half) == 0
}

// bits returns the width of T in bits.
func bits[T Value]() int { return reflect.TypeFor[T]().Bits() }

// signedBound returns 2^(bits-1): integer T holds exactly [-bound, bound).
func signedBound[T Value]() float64 { return math.Ldexp(1, bits[T]()-1) }

// ConvertValue converts v from domain S to domain D.
//
// Behavior highlights:
//   - Integer sources convert exactly; the result is rejected if converting
//     back does not reproduce v (e.g. 300 into int8).
//   - Float sources are rounded to the nearest integer (halves away from
//     zero) when D is integral; the rounded value must be representable.
//   - NaN and ±Inf are never representable.
//
// Every value is range-checked before a float-to-integer or narrowing float
// conversion, so no conversion depends on platform-specific results.
//
// The boolean is false when the value is outside D.
func ConvertValue[S, D Value](v S) (D, bool) {
	if IsIntegral[S]() {
		d := D(v)
		if IsIntegral[D]() {
			return d, S(d) == v
		}
		// d may have rounded up to 2^(bits-1), which S cannot hold.
		f := float64(d)
		if f < -signedBound[S]() || f >= signedBound[S]() {
			return 0, false
		}

		return d, S(d) == v
	}

	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	if !IsIntegral[D]() {
		if bits[D]() == 32 && math.Abs(x) > math.MaxFloat32 {
			return 0, false
		}

		return D(x), true
	}
	x = math.Round(x)
	if x < -signedBound[D]() || x >= signedBound[D]() {
		return 0, false
	}

	return D(x), true
}

// Convert returns a copy of m with every stored value converted to D by
// ConvertValue. The layout (including stored zeros) is kept.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidMatrix from Validate.
//   - ErrValueOverflow wrapped with the (row, column) of the first value
//     that is outside D, in row-major order.
//
// Complexity: O(rows + nnz).
func Convert[S, D Value](m *Sparse[S]) (*Sparse[D], error) {
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("Convert: %w", err)
	}
	out := newSparse[D](m.NumRows, m.NumColumns, m.NumNonzeros)
	copy(out.RowStart, m.RowStart)
	copy(out.EntryColumn, m.EntryColumn)

	for r := 0; r < m.NumRows; r++ {
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			d, ok := ConvertValue[S, D](m.EntryValue[e])
			if !ok {
				return nil, fmt.Errorf("Convert: entry (%d,%d)=%v: %w", r, m.EntryColumn[e], m.EntryValue[e], ErrValueOverflow)
			}
			out.EntryValue[e] = d
		}
	}

	return out, nil
}
