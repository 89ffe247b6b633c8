// SPDX-License-Identifier: MIT
// Package pm_test contains test helpers
//
// Purpose:
//   • Small DNA fixtures with hand-checkable statistics.
//   • Must* builders that fail the test instead of returning errors.

package pm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/pm"
	"github.com/katalvlaran/seqmotif/tabfile"
	"github.com/stretchr/testify/require"
)

// Tolerances used across the suite.
const (
	roundTripTol = 1e-6
	rowSumTol    = 1e-10
)

var dna = alphabet.MustResolve(alphabet.DNA, "")

// identityPFM is the 4-position motif "ACGT" with one count per position.
func identityPFM() [][]float64 {
	return [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// motifPFM is a 5-position count table with a tie at position 3 (A and C).
func motifPFM() [][]float64 {
	return [][]float64{
		{8, 1, 1, 0},
		{0, 0, 10, 0},
		{2, 2, 1, 5},
		{4, 4, 1, 1},
		{1, 3, 3, 3},
	}
}

// transposeRows returns the N×W view of a W×N literal.
func transposeRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows[0]))
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}
	return out
}

// MustOrient builds a DNA PositionMatrix of kind k or fails the test.
func MustOrient(t *testing.T, rows [][]float64, k pm.Kind) *pm.PositionMatrix {
	t.Helper()
	m, err := pm.Orient(pm.RawTable(rows), dna, k)
	require.NoError(t, err)

	return m
}

// MustPPM converts a DNA count table to probabilities or fails the test.
func MustPPM(t *testing.T, counts [][]float64) *pm.PositionMatrix {
	t.Helper()
	ppm, err := pm.PFMToPPM(MustOrient(t, counts, pm.Frequency))
	require.NoError(t, err)

	return ppm
}

// writeTable stores rows as a TSV file under t.TempDir and returns its path.
func writeTable(t *testing.T, labels []string, rows [][]float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.tsv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tabfile.Write(f, labels, rows))

	return path
}

// requireRowsSumToOne checks every row of m against 1 within rowSumTol.
func requireRowsSumToOne(t *testing.T, m *pm.PositionMatrix) {
	t.Helper()
	for i, row := range m.Rows() {
		var s float64
		for _, v := range row {
			s += v
		}
		require.InDelta(t, 1, s, rowSumTol, "row %d", i)
	}
}
