// SPDX-License-Identifier: MIT
// Package: pm
//
// Purpose:
//   - The six pairwise conversions among PFM, PPM and PWM.
//   - PPM is the hub: PFM→PWM and PWM→PFM compose through it, so the log-domain
//     arithmetic lives in exactly two kernels (ppmToPWM, pwmToPPM).
//
// Edge cases:
//   - p = 0 maps to log2(pc) − log2(bg): large negative, never −Inf, since pc > 0.
//   - PWM→PPM may leave a residue in [−pc, 0) for p = 0 cells; it is clamped to 0.
//   - PWM→PPM rows are checked against 1 with a tolerance that grows with pc,
//     then rescaled to sum to 1.
//   - PPM→PFM keeps 1% resolution: round(100·p).
//   - PFM rows with zero total cannot be normalized (ErrNormalization).
//
// Determinism & Performance:
//   - Every kernel is a single i→j pass through matrix.Map / NormalizeRowsL1,
//     plus one RowSums/ScaleRows pass after PWM→PPM.

package pm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqmotif/matrix"
)

// CountScale is the total a PPM row is scaled to when converted to counts.
const CountScale = 100

const (
	opPFMToPPM = "PFMToPPM"
	opPPMToPFM = "PPMToPFM"
	opPPMToPWM = "PPMToPWM"
	opPWMToPPM = "PWMToPPM"
	opPFMToPWM = "PFMToPWM"
	opPWMToPFM = "PWMToPFM"
)

// converter carries the numeric policy shared by all conversions.
type converter struct {
	rowSumTol float64
}

var defaultConverter = converter{rowSumTol: DefaultRowSumTolerance}

// PFMToPPM normalizes every count row to sum to 1.
func PFMToPPM(pfm *PositionMatrix) (*PositionMatrix, error) {
	return defaultConverter.pfmToPPM(pfm)
}

// PPMToPFM scales probabilities to integer counts: round(100·p).
func PPMToPFM(ppm *PositionMatrix) (*PositionMatrix, error) {
	return defaultConverter.ppmToPFM(ppm)
}

// PPMToPWM computes log2(p + pc[i]) − log2(bg[j]).
// A zero bg resolves to the alphabet's built-in background (or ErrConfiguration).
func PPMToPWM(ppm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	return defaultConverter.ppmToPWM(ppm, bg, pc)
}

// PWMToPPM computes 2^(w + log2(bg[j])) − pc[i] and validates the result as a PPM.
func PWMToPPM(pwm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	return defaultConverter.pwmToPPM(pwm, bg, pc)
}

// PFMToPWM is PFMToPPM followed by PPMToPWM.
func PFMToPWM(pfm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	return defaultConverter.pfmToPWM(pfm, bg, pc)
}

// PWMToPFM is PWMToPPM followed by PPMToPFM.
func PWMToPFM(pwm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	return defaultConverter.pwmToPFM(pwm, bg, pc)
}

func expectKind(tag string, m *PositionMatrix, k Kind) error {
	if m.empty() {
		return pmErrorf(tag, fmt.Errorf("nil or empty %s: %w", k, ErrInputType))
	}
	if m.kind != k {
		return pmErrorf(tag, fmt.Errorf("got %s, want %s: %w", m.kind, k, ErrInputType))
	}
	return nil
}

// logParams resolves the background and validates the pseudocount for m.
func logParams(tag string, m *PositionMatrix, bg Background, pc Pseudocount) (Background, error) {
	resolved, err := ResolveBackground(bg, m.alpha)
	if err != nil {
		return Background{}, pmErrorf(tag, err)
	}
	if err = pc.check(m.Width()); err != nil {
		return Background{}, pmErrorf(tag, err)
	}
	return resolved, nil
}

func (c converter) pfmToPPM(pfm *PositionMatrix) (*PositionMatrix, error) {
	if err := expectKind(opPFMToPPM, pfm, Frequency); err != nil {
		return nil, err
	}
	table, _, err := matrix.NormalizeRowsL1(pfm.table)
	if err != nil {
		return nil, classify(opPFMToPPM, err)
	}
	return build(Probability, pfm.alpha, table, c.rowSumTol)
}

func (c converter) ppmToPFM(ppm *PositionMatrix) (*PositionMatrix, error) {
	if err := expectKind(opPPMToPFM, ppm, Probability); err != nil {
		return nil, err
	}
	table, err := matrix.Map(ppm.table, func(_, _ int, p float64) float64 {
		return math.Round(p * CountScale)
	})
	if err != nil {
		return nil, classify(opPPMToPFM, err)
	}
	return build(Frequency, ppm.alpha, table, c.rowSumTol)
}

func (c converter) ppmToPWM(ppm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	if err := expectKind(opPPMToPWM, ppm, Probability); err != nil {
		return nil, err
	}
	bg, err := logParams(opPPMToPWM, ppm, bg, pc)
	if err != nil {
		return nil, err
	}
	logBg := logs(bg.Expand(ppm.Len()))

	table, err := matrix.Map(ppm.table, func(i, j int, p float64) float64 {
		return math.Log2(p+pc.At(i)) - logBg[j]
	})
	if err != nil {
		return nil, classify(opPPMToPWM, err)
	}
	return build(Weight, ppm.alpha, table, c.rowSumTol)
}

func (c converter) pwmToPPM(pwm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	if err := expectKind(opPWMToPPM, pwm, Weight); err != nil {
		return nil, err
	}
	bg, err := logParams(opPWMToPPM, pwm, bg, pc)
	if err != nil {
		return nil, err
	}
	logBg := logs(bg.Expand(pwm.Len()))

	table, err := matrix.Map(pwm.table, func(i, j int, w float64) float64 {
		p := math.Exp2(w+logBg[j]) - pc.At(i)
		if p < 0 {
			return 0
		}
		return p
	})
	if err != nil {
		return nil, classify(opPWMToPPM, err)
	}
	if table, err = c.renormalize(table, pc); err != nil {
		return nil, pmErrorf(opPWMToPPM, err)
	}
	return build(Probability, pwm.alpha, table, c.rowSumTol)
}

// cancellationUlps bounds, in units of machine epsilon, the error one cell
// picks up from exp2(w + log2 bg) − pc.
const cancellationUlps = 64

// renormalize checks the rows of a PPM recovered from log-odds against 1 and
// rescales them to sum to 1. The check widens with the pseudocount, since
// subtracting pc after the exponential loses about pc·ε per cell.
func (c converter) renormalize(table *matrix.Dense, pc Pseudocount) (*matrix.Dense, error) {
	sums, err := matrix.RowSums(table)
	if err != nil {
		return nil, classify(opPWMToPPM, err)
	}
	inv := make([]float64, len(sums))
	for i, s := range sums {
		tol := math.Max(c.rowSumTol, float64(table.Cols())*(1+pc.At(i))*cancellationUlps*epsilon)
		if math.Abs(s-1) > tol {
			return nil, fmt.Errorf("row %d sums to %.12g (tolerance %g): %w", i, s, tol, ErrNormalization)
		}
		inv[i] = 1 / s
	}
	out, err := matrix.ScaleRows(table, inv)
	if err != nil {
		return nil, classify(opPWMToPPM, err)
	}
	return out, nil
}

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1

func (c converter) pfmToPWM(pfm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	ppm, err := c.pfmToPPM(pfm)
	if err != nil {
		return nil, pmErrorf(opPFMToPWM, err)
	}
	pwm, err := c.ppmToPWM(ppm, bg, pc)
	if err != nil {
		return nil, pmErrorf(opPFMToPWM, err)
	}
	return pwm, nil
}

func (c converter) pwmToPFM(pwm *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	ppm, err := c.pwmToPPM(pwm, bg, pc)
	if err != nil {
		return nil, pmErrorf(opPWMToPFM, err)
	}
	pfm, err := c.ppmToPFM(ppm)
	if err != nil {
		return nil, pmErrorf(opPWMToPFM, err)
	}
	return pfm, nil
}

// toPPM maps any kind onto the hub.
func (c converter) toPPM(m *PositionMatrix, bg Background, pc Pseudocount) (*PositionMatrix, error) {
	switch m.kind {
	case Frequency:
		return c.pfmToPPM(m)
	case Weight:
		return c.pwmToPPM(m, bg, pc)
	}
	return m, nil
}

func logs(v []float64) []float64 {
	out := make([]float64, len(v))
	for j, x := range v {
		out[j] = math.Log2(x)
	}
	return out
}
