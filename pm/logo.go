// SPDX-License-Identifier: MIT

package pm

import "gonum.org/v1/gonum/floats"

// LogoSource is what a sequence-logo renderer reads from a motif: per-position
// rows of the canonical matrix, their column labels, the information content
// that sets each stack's height and the weight that scales its width.
type LogoSource interface {
	Width() int
	Labels() []string
	Row(i int) []float64
	IC() []float64
	Weight() []float64
}

var _ LogoSource = (*MatrixSet)(nil)

// LogoHeights returns, for every position, the letter heights a logo stacks:
// row[k]·IC[i] for the canonical row of a probability-canonical source.
// Positions beyond the shorter of Width and IC are dropped.
func LogoHeights(src LogoSource) [][]float64 {
	ic := src.IC()
	n := src.Width()
	if len(ic) < n {
		n = len(ic)
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := src.Row(i)
		h := make([]float64, len(row))
		floats.ScaleTo(h, ic[i], row)
		out[i] = h
	}
	return out
}
