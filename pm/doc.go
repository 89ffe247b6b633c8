// SPDX-License-Identifier: MIT

// Package pm represents and interconverts the three numeric encodings of a
// sequence motif and derives its summary statistics.
//
// 🚀 What is a position matrix?
//
//	A motif of width W over an alphabet of N symbols is a W×N table, one row
//	per position and one column per symbol, in one of three kinds:
//	  • PFM (Frequency)     non-negative counts
//	  • PPM (Probability)   probabilities, every row sums to 1
//	  • PWM (Weight)        log2-odds scores against a background
//
// ✨ Key features:
//   - Orient fits a raw table to an alphabet, transposing N×W input when needed.
//   - Six conversions (PFMToPPM, PPMToPFM, PPMToPWM, PWMToPPM, PFMToPWM,
//     PWMToPFM); the PFM↔PWM pair composes through PPM.
//   - Consensus, InformationContent and PositionalWeight.
//   - MatrixSet reconciles any non-empty subset of {PFM, PPM, PWM} into a
//     complete, mutually consistent triple plus statistics.
//
// ⚙️ Usage:
//
//	set, err := pm.NewMatrixSet(
//	  pm.WithAlphabet(alphabet.DNA),
//	  pm.WithInputs(pm.Inputs{PFM: pm.RawTable(counts)}),
//	)
//	if err != nil {
//	  // errors.Is(err, pm.ErrShape), pm.ErrNormalization, ...
//	}
//	fmt.Println(set.Consensus(), set.IC())
//
// Formulas (per cell, row i, column j):
//
//	PFM → PPM: f[i,j] / Σ_k f[i,k]
//	PPM → PFM: round(100·p[i,j])
//	PPM → PWM: log2(p[i,j] + pc[i]) − log2(bg[j])
//	PWM → PPM: 2^(w[i,j] + log2(bg[j])) − pc[i]
//	IC[i]    : Σ_k p[i,k]·w[i,k]
//
// Concurrency:
//
//	Everything here is synchronous and allocation-bounded by W·N. Position
//	matrices are immutable. A MatrixSet has no internal locking: a single
//	writer may Reconcile while readers are excluded externally; Reconcile
//	swaps state only on success.
package pm
