// SPDX-License-Identifier: MIT

package pm

// Source is where a matrix comes from. It is a closed set of variants:
// FilePath, RawTable and Existing. Orient switches on the variant.
type Source interface {
	isSource()
}

// FilePath names a delimited table file read through the configured Loader.
type FilePath string

// RawTable is an in-memory rectangular table of reals, rows first.
type RawTable [][]float64

// Existing wraps a previously built matrix. Its kind must match the slot it
// is supplied for; its table is re-fitted to the target alphabet.
type Existing struct {
	Matrix *PositionMatrix
}

func (FilePath) isSource() {}
func (RawTable) isSource() {}
func (Existing) isSource() {}

// FromMatrix is shorthand for Existing{Matrix: m}.
func FromMatrix(m *PositionMatrix) Source { return Existing{Matrix: m} }
