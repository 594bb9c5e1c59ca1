// Package unimod is a toolkit for the sparse ternary matrices met in total
// unimodularity testing, starting with their one-sum decomposition.
//
// What is unimod?
//
//	A small, allocation-aware set of packages that brings together:
//		• A generic CSR matrix engine: validation, transpose, domain checks,
//		  submatrix filtering, value-domain conversion, YAML documents
//		• One-sum decomposition: split a matrix into its independent
//		  block-diagonal components with maps back to the input
//		• Decomposition trees: flags and accessors for matroid tree nodes
//		• A command-line tool (tudecomp) over YAML matrix documents
//
// Why unimod?
//
//   - Linear time: every kernel is O(rows + columns + nonzeros)
//   - Exact allocation: no growable buffers in the hot paths
//   - No recursion: traversal depth is independent of the input
//   - Generic: float64, int and int8 inputs, narrowed with overflow checks
//
// Packages:
//
//	matrix/          Sparse[T] (CSR), BuildCSR, validators, domains, codec
//	onesum/          Decompose, DecomposeAs, Recompose
//	matroid/         Dec tree nodes, DecomposeOneSum
//	cmd/tudecomp/    decompose, check, transpose, print
//
// Quick ASCII example:
//
//	    1 . 1            1  1 │ .
//	    . 1 .     →      1 -1 │ .
//	    1 . -1          ──────┼──
//	                     .  . │ 1
//
// rows {0,2} and columns {0,2} form one block, row 1 and column 1 another.
//
//	go get github.com/katalvlaran/unimod
package unimod
