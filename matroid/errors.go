package matroid

import "errors"

// ErrNotTernary indicates an input entry outside {-1, 0, 1}.
var ErrNotTernary = errors.New("matroid: matrix is not ternary")
