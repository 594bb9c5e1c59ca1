package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/unimod/matrix"
)

// ExampleTranspose builds a small ternary matrix and prints its transpose.
func ExampleTranspose() {
	m, _ := matrix.FromDense([][]int8{
		{1, 0, -1},
		{0, 1, 1},
	})
	mt, _ := matrix.Transpose(m)
	fmt.Print(mt)

	ok, _ := matrix.IsTransposeOf(m, mt)
	fmt.Println("consistent:", ok)

	// Output:
	// 3 2
	// 1 0
	// 0 1
	// -1 1
	// consistent: true
}

// ExampleIsBinary locates the first entry outside {0, 1}.
func ExampleIsBinary() {
	m, _ := matrix.FromDense([][]int{
		{1, 0, 1},
		{0, 2, 0},
	})
	ok, sub, _ := matrix.IsBinary(m)
	fmt.Println(ok, sub.Rows[0], sub.Columns[0])

	// Output:
	// false 1 1
}
