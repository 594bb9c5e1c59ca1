package onesum

import "github.com/katalvlaran/unimod/matrix"

// Order selects how local indices are assigned inside a component.
type Order int

const (
	// OrderDiscovery numbers rows and columns in depth-first discovery order.
	OrderDiscovery Order = iota
	// OrderOriginal numbers rows and columns by ascending original index.
	OrderOriginal
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderDiscovery:
		return "discovery"
	case OrderOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// Component is one block of a one-sum decomposition.
//
// Matrix and Transpose are sorted, use local indices 0..k-1 and share no
// storage with the input or with other components. RowsToOriginal[lr] and
// ColumnsToOriginal[lc] map local indices back to the input matrix.
type Component[T matrix.Value] struct {
	ID                int
	Matrix            *matrix.Sparse[T]
	Transpose         *matrix.Sparse[T]
	RowsToOriginal    []int
	ColumnsToOriginal []int
}

// Decomposition is the result of Decompose: the components in order of
// their smallest node (rows before columns), plus the input shape.
type Decomposition[T matrix.Value] struct {
	NumRows    int
	NumColumns int
	Components []Component[T]
}

// NumComponents returns the number of components.
func (d *Decomposition[T]) NumComponents() int { return len(d.Components) }
