// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (possibly wrapped with context via
// %w) and tests check them via errors.Is. No exported function panics on
// user-triggered error conditions; panics are reserved for nonsensical option
// parameters (programmer error, see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached as
// fmt.Errorf("Tag(...): %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> precondition/shape -> structural (ErrInvalidMatrix) -> sortedness
// -> index range -> value range.

var (
	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrPreconditionViolated marks a violated caller contract: negative
	// sizes, mismatched argument lengths, duplicate selections.
	ErrPreconditionViolated = errors.New("matrix: precondition violated")

	// ErrInvalidMatrix indicates a structurally malformed CSR layout
	// (slice lengths, non-monotonic RowStart, column index out of bounds).
	ErrInvalidMatrix = errors.New("matrix: invalid matrix")

	// ErrNotSorted signals that an operation requiring ascending column
	// indices per row received an unsorted matrix.
	ErrNotSorted = errors.New("matrix: matrix is not sorted")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged
	// dense input or a document whose rows disagree with its header.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrValueOverflow indicates that a value cannot be represented in the
	// target value domain of a conversion.
	ErrValueOverflow = errors.New("matrix: value out of target domain")

	// ErrOutOfMemory indicates that a requested allocation size cannot be
	// represented (size arithmetic overflows int).
	ErrOutOfMemory = errors.New("matrix: allocation size overflow")

	// ErrBadDocument indicates a YAML matrix document that is neither a
	// dense nor an entries document, or mixes both.
	ErrBadDocument = errors.New("matrix: bad matrix document")
)
