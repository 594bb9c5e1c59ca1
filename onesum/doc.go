// Package onesum splits a sparse matrix into its one-sum (block-diagonal)
// components.
//
// What:
//
//   - Two entries belong to the same component iff they are linked by a chain
//     of non-zero entries, each sharing a row or a column with the next.
//     After a simultaneous row/column permutation the matrix is block
//     diagonal with one block per component.
//   - Decompose works on the support of the matrix, not on its storage:
//     stored zeros link nothing. A row or column without non-zeros forms
//     its own singleton component (1×0 or 0×1).
//
// How:
//
//   - A bipartite incidence graph (row nodes, then column nodes) is built in
//     CSR form without growable buffers: degree count, prefix sum, fill by
//     decrementing per-node cursors.
//   - Components are labeled by an iterative depth-first search with an
//     explicit stack, seeded in increasing node id. Each node's per-kind
//     discovery number is its local index in its component.
//   - Each component's transpose and matrix are materialized with
//     matrix.BuildCSR (transpose first, then the transpose of that), so both
//     come out sorted.
//
// Key Types & Options:
//
//   - Component[T]: ID, Matrix, Transpose, RowsToOriginal, ColumnsToOriginal.
//   - Decomposition[T]: the components plus the original shape.
//   - WithRowsToComponents, WithColumnsToComponents, WithRowsToComponentRows,
//     WithColumnsToComponentColumns: optional caller buffers receiving the
//     full-universe maps, each independent of the others.
//   - WithOrder(OrderOriginal): pin local indices to ascending original
//     index instead of discovery order.
//   - WithLogger: phase summaries at debug level (logrus).
//
// Complexity:
//
//   - Time O(rows + columns + nonzeros), Memory O(rows + columns + nonzeros).
//   - No recursion; stack depth is independent of the input.
//
// Errors:
//
//   - ErrInvalidMatrix            malformed input (nil, bad layout).
//   - ErrPreconditionViolated     an output buffer shorter than its universe.
//   - matrix.ErrValueOverflow     DecomposeAs could not convert a value.
//   - matrix.ErrOutOfMemory       size arithmetic would overflow int.
//
// All validation happens before the graph phase; on error nothing is
// returned.
package onesum
