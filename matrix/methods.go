// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-oriented transforms over Matrix values: sums, L1 normalization,
//     per-row scaling, element-wise mapping and transposition.
//   - Each public op validates, then delegates tight loops to ew* kernels.
//
// Exposed API:
//   - Transpose(X)          -> Xᵀ
//   - RowSums(X)            -> []Σ_j X[i,j]
//   - NormalizeRowsL1(X)    -> (Y, sums)   // strict: zero-mass rows are an error
//   - ScaleRows(X, s)       -> Y[i,j] = X[i,j]*s[i]
//   - Map(X, f)             -> Y[i,j] = f(i,j,X[i,j]), finite-only
//   - AllClose(a, b, r, a)  -> bool
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose       = "Transpose"
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opScaleRows       = "ScaleRows"
	opMap             = "Map"
	opAllClose        = "AllClose"
)

// matrixErrorf wraps an underlying error with the given op tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new Dense holding mᵀ.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: O(r·c) time, O(r) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)

	var i, j int
	var s, v float64
	var err error
	d, fast := m.(*Dense)
	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[i*c+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		sums[i] = s
	}

	return sums, nil
}

// NormalizeRowsL1 scales each row to unit L1 mass and returns the original masses.
//
// Implementation:
//   - Stage 1: validate non-nil and non-negative entries (ErrNegative).
//   - Stage 2: compute row masses; a zero-mass row aborts with ErrZeroRow.
//   - Stage 3: apply ewScaleRows with 1/mass.
//
// Behavior highlights:
//   - Unlike a lenient L1 normalizer, degenerate rows are rejected: a row-stochastic
//     result is the contract, and a zero row has no such scaling.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) masses).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNonNegative(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	sums, err := RowSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	scale := make([]float64, len(sums))
	for i, s := range sums {
		if s <= 0 {
			return nil, nil, fmt.Errorf("%s: row %d: %w", opNormalizeRowsL1, i, ErrZeroRow)
		}
		scale[i] = 1.0 / s
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, sums, nil
}

// ScaleRows returns a copy of X with row i multiplied by scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != Rows(X).
// Complexity: O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleRows(X, scale)
}

// Map returns a fresh Dense with Y[i,j] = f(i, j, X[i,j]).
// The result is all-or-nothing: a NaN/±Inf produced by f yields ErrNaNInf and no matrix.
// Complexity: O(r*c).
func Map(X Matrix, f func(i, j int, v float64) float64) (*Dense, error) {
	return ewMap(X, true, f)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
