// SPDX-License-Identifier: MIT

package pm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/matrix"
)

// PositionMatrix is an immutable width×N table bound to an alphabet and a kind.
// Column j is labelled by the alphabet's j-th symbol.
//
// Values are read through At, Row, Rows or a cloned Table; nothing exposes
// the backing storage for writing.
type PositionMatrix struct {
	kind  Kind
	alpha alphabet.Alphabet
	table *matrix.Dense
}

// empty reports a nil matrix or one not built by this package.
func (m *PositionMatrix) empty() bool { return m == nil || m.table == nil }

// Kind returns the matrix kind.
func (m *PositionMatrix) Kind() Kind { return m.kind }

// Alphabet returns the alphabet the columns are bound to.
func (m *PositionMatrix) Alphabet() alphabet.Alphabet { return m.alpha }

// Width returns the number of positions (rows).
func (m *PositionMatrix) Width() int { return m.table.Rows() }

// Len returns the number of symbols (columns).
func (m *PositionMatrix) Len() int { return m.table.Cols() }

// Labels returns the column labels in order.
func (m *PositionMatrix) Labels() []string { return m.alpha.Labels() }

// At returns the value at position i, column j.
func (m *PositionMatrix) At(i, j int) (float64, error) { return m.table.At(i, j) }

// Row returns a copy of position i, or nil when i is out of range.
func (m *PositionMatrix) Row(i int) []float64 {
	row, err := m.table.Row(i)
	if err != nil {
		return nil
	}
	return row
}

// Rows returns a copy of the whole table as row slices.
func (m *PositionMatrix) Rows() [][]float64 { return m.table.ToRows() }

// Table returns a deep copy of the numeric table for native numeric work.
func (m *PositionMatrix) Table() *matrix.Dense { return m.table.Clone().(*matrix.Dense) }

// Column returns a copy of the column labelled by symbol r.
func (m *PositionMatrix) Column(r rune) ([]float64, error) {
	j := m.alpha.Index(r)
	if j < 0 {
		return nil, fmt.Errorf("Column: symbol %q not in %s: %w", r, m.alpha.Symbols(), ErrShape)
	}
	out := make([]float64, m.Width())
	for i := range out {
		out[i] = m.table.RawRowView(i)[j]
	}
	return out, nil
}

// row exposes position i without copying; callers must not write to it.
func (m *PositionMatrix) row(i int) []float64 { return m.table.RawRowView(i) }

// String renders a labelled, tab-separated dump for diagnostics.
func (m *PositionMatrix) String() string {
	var b strings.Builder
	b.WriteString(m.kind.String())
	for _, l := range m.Labels() {
		b.WriteByte('\t')
		b.WriteString(l)
	}
	b.WriteByte('\n')
	for i := 0; i < m.Width(); i++ {
		b.WriteString(strconv.Itoa(i))
		for _, v := range m.row(i) {
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
