// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and validators.
//   • Keep all data finite and well-formed unless a test is about bad values.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/seqmotif/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
//
// Behavior highlights:
//   - Prevents the "*Dense" fast-path in code under test, so the generic
//     fallback loops get exercised too.
type hide struct{ matrix.Matrix }

// MustDenseFromRows builds a *Dense from literal rows or fails the test.
func MustDenseFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// counts2x4 is a tiny count table with distinct row masses (10 and 4).
func counts2x4() [][]float64 {
	return [][]float64{
		{1, 2, 3, 4},
		{0, 0, 4, 0},
	}
}
