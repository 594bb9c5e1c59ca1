// SPDX-License-Identifier: MIT

// Package matrix - YAML document codec.
//
// A matrix document has a header (rows, columns) and exactly one of two
// bodies:
//
//	rows: 2            rows: 2
//	columns: 3         columns: 3
//	dense:             entries:
//	- [1, 0, 1]        - {row: 0, column: 0, value: 1}
//	- [0, -1, 0]       - {row: 0, column: 2, value: 1}
//	                   - {row: 1, column: 1, value: -1}
//
// A document with neither body is an all-zero matrix of the given shape.
// Dense bodies drop zeros; entries bodies keep explicit zeros.
package matrix

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Document is the serialized form of a Sparse matrix.
type Document[T Value] struct {
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Dense   [][]T        `json:"dense,omitempty"`
	Entries []Triplet[T] `json:"entries,omitempty"`
}

// DecodeYAML parses a YAML matrix document into a sorted Sparse matrix.
//
// Errors:
//   - YAML syntax errors from sigs.k8s.io/yaml.
//   - ErrBadDocument if both dense and entries are present.
//   - ErrDimensionMismatch if the dense body disagrees with rows/columns.
//   - errors of FromTriplets for an entries body.
func DecodeYAML[T Value](data []byte) (*Sparse[T], error) {
	var doc Document[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return doc.Sparse()
}

// Sparse builds the matrix described by the document.
func (doc *Document[T]) Sparse() (*Sparse[T], error) {
	if doc.Rows < 0 || doc.Columns < 0 {
		return nil, fmt.Errorf("Document: shape %dx%d: %w", doc.Rows, doc.Columns, ErrPreconditionViolated)
	}
	if doc.Dense != nil && doc.Entries != nil {
		return nil, fmt.Errorf("Document: dense and entries both set: %w", ErrBadDocument)
	}
	if doc.Dense == nil {
		return FromTriplets(doc.Rows, doc.Columns, doc.Entries)
	}
	if len(doc.Dense) != doc.Rows {
		return nil, fmt.Errorf("Document: %d dense rows, header says %d: %w", len(doc.Dense), doc.Rows, ErrDimensionMismatch)
	}
	for i, row := range doc.Dense {
		if len(row) != doc.Columns {
			return nil, fmt.Errorf("Document: dense row %d has %d columns, header says %d: %w", i, len(row), doc.Columns, ErrDimensionMismatch)
		}
	}
	m, err := FromDense(doc.Dense)
	if err != nil {
		return nil, err
	}
	// FromDense infers zero columns from an empty body.
	m.NumColumns = doc.Columns

	return m, nil
}

// NewDocument describes m as a document; dense selects the dense body,
// otherwise every stored entry (including stored zeros) is listed.
//
// Errors: ErrNilMatrix / ErrInvalidMatrix from Validate; ErrOutOfMemory if
// a dense body would exceed MaxEntries values.
func NewDocument[T Value](m *Sparse[T], dense bool) (*Document[T], error) {
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("NewDocument: %w", err)
	}
	doc := &Document[T]{Rows: m.NumRows, Columns: m.NumColumns}
	if dense {
		if err := checkLengths("NewDocument", m.NumColumns); err != nil {
			return nil, err
		}
		if m.NumColumns > 0 && m.NumRows > MaxEntries/m.NumColumns {
			return nil, fmt.Errorf("NewDocument: dense %dx%d: %w", m.NumRows, m.NumColumns, ErrOutOfMemory)
		}
		doc.Dense = ToDense(m)
		return doc, nil
	}
	if m.NumNonzeros > 0 {
		doc.Entries = make([]Triplet[T], 0, m.NumNonzeros)
	}
	for r := 0; r < m.NumRows; r++ {
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			doc.Entries = append(doc.Entries, Triplet[T]{Row: r, Column: m.EntryColumn[e], Value: m.EntryValue[e]})
		}
	}

	return doc, nil
}

// EncodeYAML serializes m as a YAML document (see NewDocument).
func EncodeYAML[T Value](m *Sparse[T], dense bool) ([]byte, error) {
	doc, err := NewDocument(m, dense)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(doc)
}

// ToDense expands a well-formed m into dense rows. Later duplicates of a
// (row, column) overwrite earlier ones. The caller bounds the size; use
// NewDocument for a checked expansion.
// Complexity: O(rows·cols + nnz).
func ToDense[T Value](m *Sparse[T]) [][]T {
	out := make([][]T, m.NumRows)
	for r := range out {
		out[r] = make([]T, m.NumColumns)
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			out[r][m.EntryColumn[e]] = m.EntryValue[e]
		}
	}

	return out
}
