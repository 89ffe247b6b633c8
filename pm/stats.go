// SPDX-License-Identifier: MIT
// Package: pm
//
// Purpose:
//   - Per-position summaries of a motif: consensus symbol, information content
//     (bits), positional weight, and IC in nats.
//
// Determinism:
//   - Consensus ties resolve to the earliest symbol in alphabet order
//     (floats.MaxIdx returns the first maximum).
//
// AI-Hints:
//   - InformationContent is the general Kullback–Leibler form Σ_k p·w. With a
//     uniform 1/N background it reduces to log2(N) − H(p); no separate path.

package pm

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	opInformationContent = "InformationContent"
	opPositionalWeight   = "PositionalWeight"
)

// Consensus returns the most likely symbol at every position of m.
// It works on any kind: counts, probabilities and log-odds share their argmax
// whenever the background is uniform.
// Complexity: O(W·N).
func Consensus(m *PositionMatrix) string {
	if m.empty() {
		return ""
	}
	var b strings.Builder
	b.Grow(m.Width())
	for i := 0; i < m.Width(); i++ {
		b.WriteRune(m.alpha.Symbol(floats.MaxIdx(m.row(i))))
	}
	return b.String()
}

// InformationContent returns Σ_k ppm[i,k]·pwm[i,k] for every position i, in bits.
//
// Errors:
//   - ErrInputType if the arguments are not a PPM and a PWM.
//   - ErrShape if their widths or alphabets differ.
//
// Complexity: O(W·N).
func InformationContent(ppm, pwm *PositionMatrix) ([]float64, error) {
	if err := expectKind(opInformationContent, ppm, Probability); err != nil {
		return nil, err
	}
	if err := expectKind(opInformationContent, pwm, Weight); err != nil {
		return nil, err
	}
	if ppm.Width() != pwm.Width() || ppm.Len() != pwm.Len() {
		return nil, pmErrorf(opInformationContent, fmt.Errorf(
			"ppm is %d×%d, pwm is %d×%d: %w", ppm.Width(), ppm.Len(), pwm.Width(), pwm.Len(), ErrShape))
	}

	ic := make([]float64, ppm.Width())
	for i := range ic {
		ic[i] = floats.Dot(ppm.row(i), pwm.row(i))
	}
	return ic, nil
}

// PositionalWeight returns how much of each position is not a gap.
//
// Gap-free alphabets weigh 1 everywhere. For a gapped alphabet (last symbol
// '-') position i weighs Σ_{k<N-1} m[i,k] / Σ_k m[i,k]; a row with no mass
// weighs 0. Log-odds rows carry no mass, so a gapped PWM is rejected with
// ErrInputType.
// Complexity: O(W·N).
func PositionalWeight(m *PositionMatrix) ([]float64, error) {
	if m.empty() {
		return nil, pmErrorf(opPositionalWeight, fmt.Errorf("nil matrix: %w", ErrInputType))
	}
	w := make([]float64, m.Width())
	if !m.alpha.Gapped() {
		for i := range w {
			w[i] = 1
		}
		return w, nil
	}
	if m.kind == Weight {
		return nil, pmErrorf(opPositionalWeight, fmt.Errorf("gapped %s has no mass: %w", m.kind, ErrInputType))
	}

	gap := m.Len() - 1
	for i := range w {
		row := m.row(i)
		total := floats.Sum(row)
		if total <= 0 {
			continue
		}
		w[i] = floats.Sum(row[:gap]) / total
	}
	return w, nil
}

// Entropy converts per-position information content from bits to nats.
func Entropy(ic []float64) []float64 {
	out := make([]float64, len(ic))
	floats.ScaleTo(out, math.Ln2, ic)
	return out
}
