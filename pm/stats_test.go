// SPDX-License-Identifier: MIT
package pm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/pm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsensusIdentity(t *testing.T) {
	assert.Equal(t, "ACGT", pm.Consensus(MustOrient(t, identityPFM(), pm.Frequency)))
	assert.Equal(t, "", pm.Consensus(nil))
}

func TestConsensusStableAcrossKinds(t *testing.T) {
	pfm := MustOrient(t, motifPFM(), pm.Frequency)
	ppm := MustPPM(t, motifPFM())
	pwm, err := pm.PPMToPWM(ppm, pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)

	// position 3 ties A and C: the earlier symbol wins
	want := "AGTAC"
	assert.Equal(t, want, pm.Consensus(pfm))
	assert.Equal(t, want, pm.Consensus(ppm))
	assert.Equal(t, want, pm.Consensus(pwm))
}

func TestInformationContentIdentity(t *testing.T) {
	ppm := MustPPM(t, identityPFM())
	pwm, err := pm.PPMToPWM(ppm, pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)

	ic, err := pm.InformationContent(ppm, pwm)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2, 2}, ic, 1e-6)
}

func TestInformationContentUniformRow(t *testing.T) {
	ppm := MustOrient(t, [][]float64{{0.25, 0.25, 0.25, 0.25}}, pm.Probability)
	pwm, err := pm.PPMToPWM(ppm, pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)

	ic, err := pm.InformationContent(ppm, pwm)
	require.NoError(t, err)
	assert.InDelta(t, 0, ic[0], 1e-6)
	assert.Equal(t, "A", pm.Consensus(ppm))
}

func TestInformationContentBounds(t *testing.T) {
	ppm := MustPPM(t, motifPFM())
	pwm, err := pm.PPMToPWM(ppm, pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)

	ic, err := pm.InformationContent(ppm, pwm)
	require.NoError(t, err)
	for i, v := range ic {
		assert.GreaterOrEqual(t, v, 0.0, "position %d", i)
		assert.LessOrEqual(t, v, math.Log2(4)+1e-9, "position %d", i)
	}
	// position 1 is a pure G
	assert.InDelta(t, 2, ic[1], 1e-6)
}

func TestInformationContentBoundsOtherAlphabets(t *testing.T) {
	cases := []struct {
		name string
		a    alphabet.Alphabet
	}{
		{"amino acids", alphabet.MustResolve(alphabet.AA, "")},
		{"custom three", alphabet.MustResolve(alphabet.Custom, "XYZ")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.a.Len()
			oneHot := make([]float64, n)
			oneHot[n-1] = 1
			uniform := make([]float64, n)
			skewed := make([]float64, n)
			for j := range uniform {
				uniform[j] = 1 / float64(n)
				skewed[j] = 0.5 / float64(n-1)
			}
			skewed[0] = 0.5

			ppm, err := pm.Orient(pm.RawTable{oneHot, uniform, skewed}, tc.a, pm.Probability)
			require.NoError(t, err)
			pwm, err := pm.PPMToPWM(ppm, pm.UniformBackground(1/float64(n)), pm.Pseudocount{})
			require.NoError(t, err)

			ic, err := pm.InformationContent(ppm, pwm)
			require.NoError(t, err)
			top := math.Log2(float64(n))
			for i, v := range ic {
				assert.GreaterOrEqual(t, v, -1e-9, "position %d", i)
				assert.LessOrEqual(t, v, top+1e-9, "position %d", i)
			}
			assert.InDelta(t, top, ic[0], 1e-6)
			assert.InDelta(t, 0, ic[1], 1e-6)
			assert.Greater(t, ic[2], 0.0)
			assert.Less(t, ic[2], top)
		})
	}
}

func TestInformationContentErrors(t *testing.T) {
	ppm := MustPPM(t, motifPFM())
	pwm, err := pm.PPMToPWM(ppm, pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)

	_, err = pm.InformationContent(pwm, ppm)
	require.ErrorIs(t, err, pm.ErrInputType)

	short, err := pm.PPMToPWM(MustPPM(t, identityPFM()), pm.Background{}, pm.Pseudocount{})
	require.NoError(t, err)
	_, err = pm.InformationContent(ppm, short)
	require.ErrorIs(t, err, pm.ErrShape)
}

func TestPositionalWeightGapFree(t *testing.T) {
	w, err := pm.PositionalWeight(MustPPM(t, motifPFM()))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, w)
}

func TestPositionalWeightGapped(t *testing.T) {
	reduced := alphabet.MustResolve(alphabet.ReducedDNA, "") // ACGTN-
	pfm, err := pm.Orient(pm.RawTable{
		{4, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 2},
		{0, 0, 0, 0, 0, 0},
	}, reduced, pm.Frequency)
	require.NoError(t, err)

	w, err := pm.PositionalWeight(pfm)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0}, w)

	pwm, err := pm.Orient(pm.RawTable{{0, 0, 0, 0, 0, 0}}, reduced, pm.Weight)
	require.NoError(t, err)
	_, err = pm.PositionalWeight(pwm)
	require.ErrorIs(t, err, pm.ErrInputType)

	_, err = pm.PositionalWeight(nil)
	require.ErrorIs(t, err, pm.ErrInputType)
}

func TestEntropyIsNats(t *testing.T) {
	assert.InDeltaSlice(t, []float64{2 * math.Ln2, 0}, pm.Entropy([]float64{2, 0}), 1e-15)
	assert.Empty(t, pm.Entropy(nil))
}
