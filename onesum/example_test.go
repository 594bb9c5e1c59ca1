package onesum_test

import (
	"fmt"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/katalvlaran/unimod/onesum"
)

// ExampleDecompose splits a matrix whose second row and column are
// independent of the rest.
func ExampleDecompose() {
	m, _ := matrix.FromDense([][]int8{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, -1},
	})
	d, _ := onesum.Decompose(m)
	for _, comp := range d.Components {
		fmt.Printf("component %d: rows %v columns %v\n", comp.ID, comp.RowsToOriginal, comp.ColumnsToOriginal)
		fmt.Print(comp.Matrix)
	}

	// Output:
	// component 0: rows [0 2] columns [0 2]
	// 2 2
	// 1 1
	// 1 -1
	// component 1: rows [1] columns [1]
	// 1 1
	// 1
}

// ExampleWithRowsToComponents requests the row → component map.
func ExampleWithRowsToComponents() {
	m, _ := matrix.FromDense([][]int{
		{1, 0},
		{0, 0},
		{1, 0},
	})
	rows := make([]int, m.NumRows)
	d, _ := onesum.Decompose(m, onesum.WithRowsToComponents(rows))
	fmt.Println(d.NumComponents(), rows)

	// Output:
	// 3 [0 1 0]
}
