package matroid

import (
	"fmt"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/katalvlaran/unimod/onesum"
)

// Dec is a node of a decomposition tree.
//
// Matrix and Transpose are sorted. RowsToOriginal and ColumnsToOriginal
// map the node's rows and columns to those of the decomposed input.
type Dec struct {
	Flags             Flags
	Matrix            *matrix.Sparse[int8]
	Transpose         *matrix.Sparse[int8]
	RowsToOriginal    []int
	ColumnsToOriginal []int
	Children          []*Dec
}

// NewLeaf wraps a one-sum component as a leaf with the given property flags.
// Type bits in flags are ignored.
func NewLeaf(comp onesum.Component[int8], flags Flags) *Dec {
	return &Dec{
		Flags:             flags &^ TypeMask,
		Matrix:            comp.Matrix,
		Transpose:         comp.Transpose,
		RowsToOriginal:    comp.RowsToOriginal,
		ColumnsToOriginal: comp.ColumnsToOriginal,
	}
}

// NewOneSum builds a one-sum node over children. Graphic, Cographic and
// Regular are each set iff every child has them, since these classes are
// closed under one-sums.
func NewOneSum(m, mt *matrix.Sparse[int8], rows, columns []int, children ...*Dec) *Dec {
	d := &Dec{
		Flags:             OneSum,
		Matrix:            m,
		Transpose:         mt,
		RowsToOriginal:    rows,
		ColumnsToOriginal: columns,
		Children:          children,
	}
	for _, bit := range []Flags{Graphic, Cographic, Regular} {
		all := len(children) > 0
		for _, c := range children {
			all = all && c.Flags&bit != 0
		}
		if all {
			d.Flags |= bit
		}
	}

	return d
}

// IsLeaf reports whether d has no children.
func (d *Dec) IsLeaf() bool { return len(d.Children) == 0 }

// IsRegular reports whether d represents a regular matroid.
func (d *Dec) IsRegular() bool { return d.Flags&Regular != 0 }

// IsGraphic reports whether d represents a graphic matroid.
func (d *Dec) IsGraphic() bool { return d.Flags&Graphic != 0 }

// IsCographic reports whether d represents a cographic matroid.
func (d *Dec) IsCographic() bool { return d.Flags&Cographic != 0 }

// SumKind returns k if d is a k-sum node and 0 otherwise.
func (d *Dec) SumKind() int {
	switch t := d.Flags.Type(); t {
	case OneSum, TwoSum, ThreeSum:
		return int(t)
	default:
		return 0
	}
}

// NumRows returns the number of rows of d's matrix.
func (d *Dec) NumRows() int { return len(d.RowsToOriginal) }

// NumColumns returns the number of columns of d's matrix.
func (d *Dec) NumColumns() int { return len(d.ColumnsToOriginal) }

// NumChildren returns the number of children.
func (d *Dec) NumChildren() int { return len(d.Children) }

// Child returns the i-th child, or nil if i is out of range.
func (d *Dec) Child(i int) *Dec {
	if i < 0 || i >= len(d.Children) {
		return nil
	}

	return d.Children[i]
}

// Walk calls fn for d and its descendants in pre-order with their depth;
// returning false from fn skips the node's children.
func (d *Dec) Walk(fn func(node *Dec, depth int) bool) {
	var walk func(*Dec, int)
	walk = func(n *Dec, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(d, 0)
}

// String returns a one-line summary of the node.
func (d *Dec) String() string {
	return fmt.Sprintf("%s %dx%d children=%d", d.Flags, d.NumRows(), d.NumColumns(), d.NumChildren())
}
