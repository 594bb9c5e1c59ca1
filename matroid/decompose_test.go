package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/katalvlaran/unimod/matroid"
	"github.com/katalvlaran/unimod/onesum"
)

func TestDecomposeOneSum_Split(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromDense([][]float64{
		{1, 0, -1},
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	root, err := matroid.DecomposeOneSum(m)
	require.NoError(t, err)
	require.Equal(t, 1, root.SumKind())
	require.Equal(t, 2, root.NumChildren())
	require.Equal(t, []int{0, 1, 2}, root.RowsToOriginal)
	require.Equal(t, [][]int8{{1, 0, -1}, {0, 1, 0}, {1, 0, 1}}, matrix.ToDense(root.Matrix))
	ok, err := matrix.IsTransposeOf(root.Matrix, root.Transpose)
	require.NoError(t, err)
	require.True(t, ok)

	first := root.Child(0)
	require.True(t, first.IsLeaf())
	require.Equal(t, []int{0, 2}, first.RowsToOriginal)
	require.Equal(t, []int{0, 2}, first.ColumnsToOriginal)
	require.Equal(t, [][]int8{{1, -1}, {1, 1}}, matrix.ToDense(first.Matrix))
	require.Equal(t, []int{1}, root.Child(1).RowsToOriginal)
}

func TestDecomposeOneSum_Connected(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromDense([][]int{{1, 1}, {1, -1}})
	require.NoError(t, err)

	d, err := matroid.DecomposeOneSum(m, onesum.WithOrder(onesum.OrderOriginal))
	require.NoError(t, err)
	require.True(t, d.IsLeaf())
	require.Equal(t, 0, d.SumKind())
	require.Equal(t, 2, d.NumRows())
	require.Equal(t, 2, d.NumColumns())
}

func TestDecomposeOneSum_Empty(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse[int](0, 0, 0)
	require.NoError(t, err)

	d, err := matroid.DecomposeOneSum(m)
	require.NoError(t, err)
	require.True(t, d.IsLeaf())
	require.Equal(t, 0, d.NumRows())
	require.Equal(t, 0, d.NumColumns())
}

func TestDecomposeOneSum_Errors(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromDense([][]int{{1, 0}, {0, 2}})
	require.NoError(t, err)
	_, err = matroid.DecomposeOneSum(m)
	require.ErrorIs(t, err, matroid.ErrNotTernary)
	require.Contains(t, err.Error(), "(1,1)")

	f, err := matrix.FromDense([][]float64{{0.5}})
	require.NoError(t, err)
	_, err = matroid.DecomposeOneSum(f)
	require.ErrorIs(t, err, matroid.ErrNotTernary)

	_, err = matroid.DecomposeOneSum[int](nil)
	require.ErrorIs(t, err, onesum.ErrInvalidMatrix)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matroid.DecomposeOneSum(m.Clone(), onesum.WithRowsToComponents(make([]int, 1)))
	require.ErrorIs(t, err, matroid.ErrNotTernary)

	ok, err := matrix.FromDense([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	_, err = matroid.DecomposeOneSum(ok, onesum.WithRowsToComponents(make([]int, 1)))
	require.ErrorIs(t, err, onesum.ErrPreconditionViolated)
}
