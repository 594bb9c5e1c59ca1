package onesum

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/unimod/matrix"
)

// Decompose splits m into its one-sum components.
//
// Every row and every column of m ends up in exactly one component. Rows
// and columns without non-zero entries become singleton components (1×0
// or 0×1). Components are numbered in order of their smallest node, rows
// before columns. Local indices follow the selected Order.
//
// m is only read; the result shares no storage with it.
//
// Errors:
//   - ErrInvalidMatrix if m is nil or malformed (also matches the
//     matrix.Validate error).
//   - ErrPreconditionViolated if an output buffer is too short or the
//     order is unknown.
//   - matrix.ErrOutOfMemory if the graph would reach matrix.MaxEntries
//     nodes or adjacency slots.
//
// Complexity: Time O(rows + cols + nnz), Space O(rows + cols + nnz).
func Decompose[T matrix.Value](m *matrix.Sparse[T], opts ...Option) (*Decomposition[T], error) {
	if err := matrix.Validate(m); err != nil {
		return nil, fmt.Errorf("onesum: %w: %w", ErrInvalidMatrix, err)
	}
	o := gatherOptions(opts...)
	if err := o.validate(m.NumRows, m.NumColumns); err != nil {
		return nil, err
	}
	if err := checkGraphSize(m.NumRows, m.NumColumns, m.NumNonzeros); err != nil {
		return nil, err
	}

	return decompose(m, &o), nil
}

// DecomposeAs converts every entry of m from S to D (see
// matrix.ConvertValue) and decomposes the result. Entries whose converted
// value is zero link nothing.
//
// Errors: those of Decompose, plus matrix.ErrValueOverflow located at the
// first entry that does not fit D.
func DecomposeAs[S, D matrix.Value](m *matrix.Sparse[S], opts ...Option) (*Decomposition[D], error) {
	if err := matrix.Validate(m); err != nil {
		return nil, fmt.Errorf("onesum: %w: %w", ErrInvalidMatrix, err)
	}
	converted, err := matrix.Convert[S, D](m)
	if err != nil {
		return nil, fmt.Errorf("onesum: %w", err)
	}

	return Decompose(converted, opts...)
}

// checkGraphSize rejects inputs whose node or adjacency slices would reach
// matrix.MaxEntries. Both counts are below the bound, so the sum cannot
// overflow.
func checkGraphSize(numRows, numColumns, numNonzeros int) error {
	if numRows >= matrix.MaxEntries || numColumns >= matrix.MaxEntries || numRows+numColumns >= matrix.MaxEntries {
		return fmt.Errorf("onesum: %d rows + %d columns: %w", numRows, numColumns, matrix.ErrOutOfMemory)
	}
	if numNonzeros >= matrix.MaxEntries/2 {
		return fmt.Errorf("onesum: %d nonzeros: %w", numNonzeros, matrix.ErrOutOfMemory)
	}

	return nil
}

// decompose runs the graph phase on a validated input.
func decompose[T matrix.Value](m *matrix.Sparse[T], o *Options) *Decomposition[T] {
	log := o.Logger.WithFields(logrus.Fields{
		"rows":     m.NumRows,
		"columns":  m.NumColumns,
		"nonzeros": m.NumNonzeros,
	})

	g := newIncidenceGraph(m)
	log.WithField("edges", len(g.adjacency)/2).Debug("onesum: incidence graph built")

	lab := g.label()
	if o.Order == OrderOriginal {
		lab.renumberByOriginal(g)
	}
	log.WithFields(logrus.Fields{
		"components": lab.numComponents,
		"order":      o.Order.String(),
	}).Debug("onesum: components labeled")

	d := &Decomposition[T]{
		NumRows:    m.NumRows,
		NumColumns: m.NumColumns,
		Components: make([]Component[T], lab.numComponents),
	}
	for c := range d.Components {
		d.Components[c] = Component[T]{
			ID:                c,
			RowsToOriginal:    make([]int, lab.rows[c]),
			ColumnsToOriginal: make([]int, lab.columns[c]),
		}
	}
	for v := 0; v < g.numNodes; v++ {
		comp := &d.Components[lab.component[v]]
		if g.isRow(v) {
			comp.RowsToOriginal[lab.order[v]] = v
		} else {
			comp.ColumnsToOriginal[lab.order[v]] = v - m.NumRows
		}
	}

	for c := range d.Components {
		materialize(m, g, lab, &d.Components[c], lab.nonzeros[c])
	}
	log.Debug("onesum: components materialized")

	fillMaps(m, g, lab, o)

	return d
}

// materialize builds the component's transpose by scanning its rows in
// local order, then its matrix as the transpose of that. Both come out
// sorted.
func materialize[T matrix.Value](m *matrix.Sparse[T], g *incidenceGraph, lab *labeling, comp *Component[T], numNonzeros int) {
	numRows, numColumns := len(comp.RowsToOriginal), len(comp.ColumnsToOriginal)

	comp.Transpose = matrix.BuildCSR[T](numColumns, numRows, numNonzeros, func(emit func(int, int, T)) {
		for localRow, row := range comp.RowsToOriginal {
			begin, end := m.RowRange(row)
			for e := begin; e < end; e++ {
				if value := m.EntryValue[e]; value != 0 {
					emit(lab.order[g.numRows+m.EntryColumn[e]], localRow, value)
				}
			}
		}
	})

	t := comp.Transpose
	comp.Matrix = matrix.BuildCSR[T](numRows, numColumns, numNonzeros, func(emit func(int, int, T)) {
		for column := 0; column < t.NumRows; column++ {
			begin, end := t.RowRange(column)
			for e := begin; e < end; e++ {
				emit(t.EntryColumn[e], column, t.EntryValue[e])
			}
		}
	})
}

// fillMaps writes the requested full-universe maps.
func fillMaps[T matrix.Value](m *matrix.Sparse[T], g *incidenceGraph, lab *labeling, o *Options) {
	for row := 0; row < m.NumRows; row++ {
		if o.RowsToComponents != nil {
			o.RowsToComponents[row] = lab.component[row]
		}
		if o.RowsToComponentRows != nil {
			o.RowsToComponentRows[row] = lab.order[row]
		}
	}
	for column := 0; column < m.NumColumns; column++ {
		v := g.numRows + column
		if o.ColumnsToComponents != nil {
			o.ColumnsToComponents[column] = lab.component[v]
		}
		if o.ColumnsToComponentColumns != nil {
			o.ColumnsToComponentColumns[column] = lab.order[v]
		}
	}
}

// Recompose places every component back at its original rows and columns
// and returns the resulting sorted matrix. Stored zeros of the input are
// not reproduced: the result is the input's support with its values.
//
// Errors: ErrInvalidMatrix if a component's matrix is malformed or has an
// unsorted row (also matching matrix.ErrNotSorted), if its shape disagrees
// with its maps, or if the maps cover an original row or column twice.
//
// Complexity: O(rows + cols + nnz).
func (d *Decomposition[T]) Recompose() (*matrix.Sparse[T], error) {
	rowSeen := make([]bool, d.NumRows)
	columnSeen := make([]bool, d.NumColumns)
	numNonzeros := 0
	for c := range d.Components {
		comp := &d.Components[c]
		if err := matrix.Validate(comp.Matrix); err != nil {
			return nil, fmt.Errorf("Recompose: component %d: %w: %w", c, ErrInvalidMatrix, err)
		}
		if !matrix.IsSorted(comp.Matrix) {
			return nil, fmt.Errorf("Recompose: component %d: %w: %w", c, ErrInvalidMatrix, matrix.ErrNotSorted)
		}
		if comp.Matrix.NumRows != len(comp.RowsToOriginal) || comp.Matrix.NumColumns != len(comp.ColumnsToOriginal) {
			return nil, fmt.Errorf("Recompose: component %d: maps disagree with %dx%d: %w",
				c, comp.Matrix.NumRows, comp.Matrix.NumColumns, ErrInvalidMatrix)
		}
		for _, r := range comp.RowsToOriginal {
			if r < 0 || r >= d.NumRows || rowSeen[r] {
				return nil, fmt.Errorf("Recompose: component %d: row %d: %w", c, r, ErrInvalidMatrix)
			}
			rowSeen[r] = true
		}
		for _, col := range comp.ColumnsToOriginal {
			if col < 0 || col >= d.NumColumns || columnSeen[col] {
				return nil, fmt.Errorf("Recompose: component %d: column %d: %w", c, col, ErrInvalidMatrix)
			}
			columnSeen[col] = true
		}
		numNonzeros += comp.Matrix.NumNonzeros
	}

	// Transpose first, scanning components row by row in original row
	// order, then transpose back so every row comes out sorted.
	rowOwner := make([][2]int, d.NumRows) // (component, local row)
	for c := range d.Components {
		for lr, r := range d.Components[c].RowsToOriginal {
			rowOwner[r] = [2]int{c, lr}
		}
	}
	t := matrix.BuildCSR[T](d.NumColumns, d.NumRows, numNonzeros, func(emit func(int, int, T)) {
		for r := 0; r < d.NumRows; r++ {
			if !rowSeen[r] {
				continue
			}
			comp := &d.Components[rowOwner[r][0]]
			begin, end := comp.Matrix.RowRange(rowOwner[r][1])
			for e := begin; e < end; e++ {
				emit(comp.ColumnsToOriginal[comp.Matrix.EntryColumn[e]], r, comp.Matrix.EntryValue[e])
			}
		}
	})

	return matrix.BuildCSR[T](d.NumRows, d.NumColumns, numNonzeros, func(emit func(int, int, T)) {
		for column := 0; column < t.NumRows; column++ {
			begin, end := t.RowRange(column)
			for e := begin; e < end; e++ {
				emit(t.EntryColumn[e], column, t.EntryValue[e])
			}
		}
	}), nil
}
