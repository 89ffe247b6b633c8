// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqmotif/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	m := MustDenseFromRows(t, counts2x4())
	want := [][]float64{{1, 0}, {2, 0}, {3, 4}, {4, 0}}

	for _, in := range []matrix.Matrix{m, hide{m}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		require.Equal(t, want, tr.ToRows())

		back, err := matrix.Transpose(tr)
		require.NoError(t, err)
		require.Equal(t, counts2x4(), back.ToRows())
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowSums(t *testing.T) {
	m := MustDenseFromRows(t, counts2x4())
	for _, in := range []matrix.Matrix{m, hide{m}} {
		sums, err := matrix.RowSums(in)
		require.NoError(t, err)
		require.Equal(t, []float64{10, 4}, sums)
	}
}

func TestNormalizeRowsL1(t *testing.T) {
	m := MustDenseFromRows(t, counts2x4())

	y, sums, err := matrix.NormalizeRowsL1(m)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 4}, sums)
	require.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, y.RawRowView(0), 1e-15)
	require.InDeltaSlice(t, []float64{0, 0, 1, 0}, y.RawRowView(1), 1e-15)
	require.NoError(t, matrix.ValidateRowSums(y, 1, 1e-12))

	// input untouched
	require.Equal(t, counts2x4(), m.ToRows())
}

func TestNormalizeRowsL1Errors(t *testing.T) {
	zero := MustDenseFromRows(t, [][]float64{{1, 1}, {0, 0}})
	_, _, err := matrix.NormalizeRowsL1(zero)
	require.ErrorIs(t, err, matrix.ErrZeroRow)

	neg := MustDenseFromRows(t, [][]float64{{2, -1}})
	_, _, err = matrix.NormalizeRowsL1(neg)
	require.ErrorIs(t, err, matrix.ErrNegative)
}

func TestScaleRows(t *testing.T) {
	m := MustDenseFromRows(t, counts2x4())
	y, err := matrix.ScaleRows(hide{m}, []float64{2, 0.5})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4, 6, 8}, {0, 0, 2, 0}}, y.ToRows())

	_, err = matrix.ScaleRows(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMapIsAllOrNothing(t *testing.T) {
	m := MustDenseFromRows(t, counts2x4())

	y, err := matrix.Map(m, func(i, j int, v float64) float64 { return v + float64(i*10+j) })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3, 5, 7}, {10, 11, 16, 13}}, y.ToRows())

	y, err = matrix.Map(m, func(_, _ int, v float64) float64 { return math.Log(v) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Nil(t, y)
}

func TestAllClose(t *testing.T) {
	a := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, MustDenseFromRows(t, [][]float64{{1, 2}}), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
