package matroid

import (
	"fmt"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/katalvlaran/unimod/onesum"
)

// DecomposeOneSum splits the ternary matrix m into its one-sum components
// and returns the first level of a decomposition tree: a single leaf when m
// has at most one component, otherwise a one-sum node with one leaf per
// component in component order. The root covers all of m with identity
// maps; leaves map into m.
//
// Values are converted to int8 before decomposing; opts are passed to
// onesum.Decompose.
//
// Errors:
//   - ErrNotTernary wrapped with the first offending (row, column).
//   - errors of onesum.DecomposeAs.
func DecomposeOneSum[T matrix.Value](m *matrix.Sparse[T], opts ...onesum.Option) (*Dec, error) {
	ok, sub, err := matrix.IsTernary(m)
	if err != nil {
		return nil, fmt.Errorf("DecomposeOneSum: %w: %w", onesum.ErrInvalidMatrix, err)
	}
	if !ok {
		return nil, fmt.Errorf("DecomposeOneSum: entry (%d,%d): %w", sub.Rows[0], sub.Columns[0], ErrNotTernary)
	}

	d, err := onesum.DecomposeAs[T, int8](m, opts...)
	if err != nil {
		return nil, fmt.Errorf("DecomposeOneSum: %w", err)
	}
	if d.NumComponents() == 1 {
		return NewLeaf(d.Components[0], 0), nil
	}

	whole, err := d.Recompose()
	if err != nil {
		return nil, fmt.Errorf("DecomposeOneSum: %w", err)
	}
	wholeT, err := matrix.Transpose(whole)
	if err != nil {
		return nil, fmt.Errorf("DecomposeOneSum: %w", err)
	}
	if d.NumComponents() == 0 {
		// 0×0 input
		return &Dec{Matrix: whole, Transpose: wholeT, RowsToOriginal: []int{}, ColumnsToOriginal: []int{}}, nil
	}
	children := make([]*Dec, d.NumComponents())
	for i, comp := range d.Components {
		children[i] = NewLeaf(comp, 0)
	}

	return NewOneSum(whole, wholeT, identity(d.NumRows), identity(d.NumColumns), children...), nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
