// SPDX-License-Identifier: MIT

// Package matrix offers the small numeric-table layer used by seqmotif.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - NewDenseFromRows to ingest a rectangular [][]float64 (rejecting ragged input).
//   - Row-wise kernels used by position matrices: RowSums, NormalizeRowsL1,
//     ScaleRows, Map and Transpose.
//   - Central validators (ValidateNotNil, ValidateFinite, ValidateNonNegative,
//     ValidateRowSums) returning package sentinels for errors.Is matching.
//
// Tables here are plain numbers: they carry no column labels and no notion of
// counts, probabilities or scores. Package pm layers that meaning on top.
package matrix
