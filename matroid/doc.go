// Package matroid holds decomposition trees of the regular matroids
// represented by ternary matrices.
//
// A tree node (Dec) carries its flags, its int8 matrix and transpose, the
// map of its rows and columns to those of the input matrix and its
// children. DecomposeOneSum produces the first level of such a tree: a
// one-sum node with one leaf per block of the input, or a single leaf when
// the input does not split. Leaves are not classified further here.
package matroid
