// SPDX-License-Identifier: MIT
package pm_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/pm"
	"github.com/katalvlaran/seqmotif/tabfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientAcceptsWxN(t *testing.T) {
	m := MustOrient(t, motifPFM(), pm.Frequency)
	assert.Equal(t, pm.Frequency, m.Kind())
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []string{"A", "C", "G", "T"}, m.Labels())
	assert.Equal(t, motifPFM(), m.Rows())
}

func TestOrientTransposesNxW(t *testing.T) {
	direct := MustOrient(t, motifPFM(), pm.Frequency)
	flipped := MustOrient(t, transposeRows(motifPFM()), pm.Frequency)
	require.Equal(t, direct.Rows(), flipped.Rows())
}

func TestOrientIsIdempotent(t *testing.T) {
	once := MustOrient(t, transposeRows(motifPFM()), pm.Frequency)
	twice, err := pm.Orient(pm.FromMatrix(once), dna, pm.Frequency)
	require.NoError(t, err)
	require.Equal(t, once.Rows(), twice.Rows())

	again, err := pm.Orient(pm.RawTable(once.Rows()), dna, pm.Frequency)
	require.NoError(t, err)
	require.Equal(t, once.Rows(), again.Rows())
}

func TestOrientSquareKeepsRows(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	m := MustOrient(t, rows, pm.Frequency)
	require.Equal(t, rows, m.Rows())
}

func TestOrientShapeRejected(t *testing.T) {
	_, err := pm.Orient(pm.RawTable{{1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}}, dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrShape)
	require.Contains(t, err.Error(), "4 columns or 4 rows")

	_, err = pm.Orient(pm.RawTable{}, dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrShape)

	_, err = pm.Orient(pm.RawTable{{1, 2, 3, 4}, {1, 2}}, dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrShape)
}

func TestOrientValueContract(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		kind pm.Kind
		want error
	}{
		{"negative count", [][]float64{{1, -1, 0, 0}}, pm.Frequency, pm.ErrValue},
		{"negative probability", [][]float64{{1.5, -0.5, 0, 0}}, pm.Probability, pm.ErrValue},
		{"NaN weight", [][]float64{{0, math.NaN(), 0, 0}}, pm.Weight, pm.ErrValue},
		{"Inf count", [][]float64{{0, math.Inf(1), 0, 0}}, pm.Frequency, pm.ErrValue},
		{"row sum", [][]float64{{0.5, 0.5, 0, 0}, {0.5, 0.4, 0, 0}}, pm.Probability, pm.ErrNormalization},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pm.Orient(pm.RawTable(tc.rows), dna, tc.kind)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// negative scores are fine for a PWM
	_, err := pm.Orient(pm.RawTable{{-3, 1, 0.5, -0.1}}, dna, pm.Weight)
	require.NoError(t, err)
}

func TestOrientInputType(t *testing.T) {
	_, err := pm.Orient(nil, dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrInputType)

	_, err = pm.Orient(pm.Existing{}, dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrInputType)

	// a zero PositionMatrix has no table behind it
	_, err = pm.Orient(pm.FromMatrix(&pm.PositionMatrix{}), dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrInputType)
	_, err = pm.PFMToPPM(&pm.PositionMatrix{})
	require.ErrorIs(t, err, pm.ErrInputType)
	_, err = pm.PositionalWeight(&pm.PositionMatrix{})
	require.ErrorIs(t, err, pm.ErrInputType)
	require.Equal(t, "", pm.Consensus(&pm.PositionMatrix{}))

	ppm := MustPPM(t, motifPFM())
	_, err = pm.Orient(pm.FromMatrix(ppm), dna, pm.Weight)
	require.ErrorIs(t, err, pm.ErrInputType)

	_, err = pm.Orient(pm.RawTable(motifPFM()), dna, pm.Kind(7))
	require.ErrorIs(t, err, pm.ErrInputType)

	_, err = pm.Orient(pm.RawTable(motifPFM()), alphabet.Alphabet{}, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrConfiguration)
}

func TestOrientExistingRefitsAlphabet(t *testing.T) {
	rna := alphabet.MustResolve(alphabet.RNA, "")
	src, err := pm.Orient(pm.RawTable(motifPFM()), rna, pm.Frequency)
	require.NoError(t, err)

	m, err := pm.Orient(pm.FromMatrix(src), dna, pm.Frequency)
	require.NoError(t, err)
	assert.Equal(t, alphabet.DNA, m.Alphabet().Type())
	assert.Equal(t, src.Rows(), m.Rows())
}

func TestOrientFromFile(t *testing.T) {
	path := writeTable(t, []string{"A", "C", "G", "T"}, motifPFM())
	m, err := pm.Orient(pm.FilePath(path), dna, pm.Frequency)
	require.NoError(t, err)
	require.Equal(t, motifPFM(), m.Rows())

	_, err = pm.Orient(pm.FilePath(path+".missing"), dna, pm.Frequency)
	require.ErrorIs(t, err, pm.ErrFileNotFound)
}

func TestOrientCustomLoader(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	loader := func(path string) ([][]float64, error) {
		calls++
		if path == "bad" {
			return nil, boom
		}
		return transposeRows(identityPFM()), nil
	}

	m, err := pm.Orient(pm.FilePath("good"), dna, pm.Frequency, pm.WithLoader(loader))
	require.NoError(t, err)
	require.Equal(t, identityPFM(), m.Rows())

	_, err = pm.Orient(pm.FilePath("bad"), dna, pm.Frequency, pm.WithLoader(loader))
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, pm.ErrFileNotFound)
	require.Equal(t, 2, calls)
}

func TestOrientUnreadableSource(t *testing.T) {
	failing := func(string) ([][]float64, error) {
		return tabfile.Parse(iotest.ErrReader(errors.New("i/o timeout")))
	}
	_, err := pm.Orient(pm.FilePath("remote.tsv"), dna, pm.Frequency, pm.WithLoader(failing))
	require.ErrorIs(t, err, pm.ErrFileNotFound)
	require.ErrorIs(t, err, tabfile.ErrRead)

	// a loader error that already names a kind keeps only that kind
	shaped := func(string) ([][]float64, error) {
		return nil, fmt.Errorf("odd table: %w", pm.ErrShape)
	}
	_, err = pm.Orient(pm.FilePath("odd.tsv"), dna, pm.Frequency, pm.WithLoader(shaped))
	require.ErrorIs(t, err, pm.ErrShape)
	require.NotErrorIs(t, err, pm.ErrFileNotFound)
}

func TestPositionMatrixAccessorsCopy(t *testing.T) {
	m := MustOrient(t, motifPFM(), pm.Frequency)

	row := m.Row(0)
	row[0] = 99
	assert.Equal(t, 8.0, m.Row(0)[0])
	assert.Nil(t, m.Row(5))

	tbl := m.Table()
	require.NoError(t, tbl.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	col, err := m.Column('G')
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 1, 1, 3}, col)

	_, err = m.Column('U')
	require.ErrorIs(t, err, pm.ErrShape)

	assert.Contains(t, m.String(), "pfm\tA\tC\tG\tT")
}
