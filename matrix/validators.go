// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/value checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Value scans run i→j and stop at the first violation.
//
// AI-Hints:
//  - Use ValidateFinite before any log-domain transform to fail fast.
//  - Use ValidateRowSums to enforce row-stochastic tables (probability matrices).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures no entry is NaN or ±Inf.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with the offending coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	return scan(m, "ValidateFinite", ErrNaNInf, func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

// ValidateNonNegative ensures every entry is >= 0 (NaN counts as a violation).
//
// Errors: ErrNilMatrix, ErrNegative.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	return scan(m, "ValidateNonNegative", ErrNegative, func(v float64) bool {
		return v >= 0
	})
}

// ValidateRowSums checks |Σ_j m[i,j] − target| ≤ tol·max(1, |target|) for every row.
//
// Inputs: any matrix, target sum, tolerance tol (negative is normalized to |tol|).
// Errors: ErrNilMatrix, ErrNaNInf on a non-finite tolerance, ErrRowSum on violation.
// Complexity: O(r*c).
// AI-Hints: tol is relative to the target, so target=1 makes it an absolute bound.
func ValidateRowSums(m Matrix, target, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowSums", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateRowSums", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}
	bound := tol * math.Max(1, math.Abs(target))

	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf("ValidateRowSums", err)
	}
	for i, s := range sums {
		if math.IsNaN(s) || math.Abs(s-target) > bound {
			return fmt.Errorf("ValidateRowSums: row %d sums to %.12g: %w", i, s, ErrRowSum)
		}
	}

	return nil
}

// scan walks m in i→j order and reports the first entry failing ok.
func scan(m Matrix, tag string, sentinel error, ok func(float64) bool) error {
	r, c := m.Rows(), m.Cols()
	if d, isDense := m.(*Dense); isDense {
		for idx, v := range d.data {
			if !ok(v) {
				return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, idx/c, idx%c, v, sentinel)
			}
		}
		return nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if !ok(v) {
				return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, sentinel)
			}
		}
	}

	return nil
}
