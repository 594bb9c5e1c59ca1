package onesum

import "github.com/katalvlaran/unimod/matrix"

// Sentinel errors of the decomposer. They alias the matrix sentinels so
// that errors.Is matches either name.
var (
	// ErrInvalidMatrix indicates a nil or structurally malformed input matrix.
	ErrInvalidMatrix = matrix.ErrInvalidMatrix

	// ErrPreconditionViolated indicates a caller contract violation, such as
	// an output buffer shorter than the rows or columns it must cover.
	ErrPreconditionViolated = matrix.ErrPreconditionViolated
)
