// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtShape     = "%d %d\n"
	_fmtHeadPad   = "   "
	_fmtHeadRule  = "--"
	_fmtRowPrefix = "%d| "
	_fmtSep       = " "
)

// Format writes a dense rendering of m to w: a "rows columns" line followed
// by one line per row. Zero values (stored or not) are printed as zero. With
// header, a column-index ruler (indices mod 10) precedes the rows and each
// row is prefixed by its index mod 10.
//
// The rendering is diagnostic only and not meant to be parsed back; use the
// YAML codec for persistence.
//
// Errors: ErrNilMatrix / ErrInvalidMatrix from Validate; ErrOutOfMemory if
// NumColumns reaches MaxEntries; write errors from w.
// Complexity: O(rows·cols + nnz), Space O(cols).
func Format[T Value](w io.Writer, m *Sparse[T], zero rune, header bool) error {
	if err := Validate(m); err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	if err := checkLengths("Format", m.NumColumns); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, _fmtShape, m.NumRows, m.NumColumns)
	if header {
		bw.WriteString(_fmtHeadPad)
		for c := 0; c < m.NumColumns; c++ {
			fmt.Fprintf(bw, "%d"+_fmtSep, c%10)
		}
		bw.WriteString("\n  ")
		bw.WriteString(strings.Repeat(_fmtHeadRule, m.NumColumns))
		bw.WriteByte('\n')
	}

	dense := make([]T, m.NumColumns)
	for r := 0; r < m.NumRows; r++ {
		if header {
			fmt.Fprintf(bw, _fmtRowPrefix, r%10)
		}
		begin, end := m.RowRange(r)
		for e := begin; e < end; e++ {
			dense[m.EntryColumn[e]] = m.EntryValue[e]
		}
		for c, v := range dense {
			if c > 0 {
				bw.WriteString(_fmtSep)
			}
			if v == 0 {
				bw.WriteRune(zero)
			} else {
				fmt.Fprint(bw, v)
			}
		}
		for e := begin; e < end; e++ {
			dense[m.EntryColumn[e]] = 0
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String implements fmt.Stringer using Format with '0' and no header.
// A malformed matrix renders as its validation error.
func (m *Sparse[T]) String() string {
	var sb strings.Builder
	if err := Format(&sb, m, '0', false); err != nil {
		return err.Error()
	}

	return sb.String()
}
