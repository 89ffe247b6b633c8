// SPDX-License-Identifier: MIT

package pm

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/seqmotif/matrix"
)

// DefaultPseudocount keeps log2(p + pc) finite for zero probabilities.
const DefaultPseudocount = 1e-10

// Pseudocount is the offset added before, and removed after, the log2
// transform: one scalar, or one value per position (row).
// The zero Pseudocount is the scalar DefaultPseudocount.
type Pseudocount struct {
	scalar float64
	vector []float64
	set    bool
}

// ScalarPseudocount returns a pseudocount applied to every position.
func ScalarPseudocount(v float64) Pseudocount {
	return Pseudocount{scalar: v, set: true}
}

// VectorPseudocount returns a per-position pseudocount. The slice is copied.
func VectorPseudocount(v ...float64) Pseudocount {
	out := make([]float64, len(v))
	copy(out, v)
	return Pseudocount{vector: out, set: true}
}

// IsVector reports whether p holds one value per position.
func (p Pseudocount) IsVector() bool { return p.vector != nil }

// Vector returns a copy of the per-position values, or nil for a scalar.
func (p Pseudocount) Vector() []float64 {
	if p.vector == nil {
		return nil
	}
	out := make([]float64, len(p.vector))
	copy(out, p.vector)
	return out
}

// At returns the pseudocount of position i.
func (p Pseudocount) At(i int) float64 {
	switch {
	case p.vector != nil:
		return p.vector[i]
	case p.set:
		return p.scalar
	}
	return DefaultPseudocount
}

// String implements fmt.Stringer.
func (p Pseudocount) String() string {
	if p.vector != nil {
		return fmt.Sprint(p.vector)
	}
	return strconv.FormatFloat(p.At(0), 'g', -1, 64)
}

// check validates p against a matrix of the given width.
func (p Pseudocount) check(width int) error {
	if p.vector != nil {
		if err := matrix.ValidateVecLen(p.vector, width); err != nil {
			return fmt.Errorf("pseudocount has %d values, matrix width is %d: %w: %w", len(p.vector), width, ErrShape, err)
		}
	}
	n := width
	if p.vector == nil {
		n = 1
	}
	for i := 0; i < n; i++ {
		v := p.At(i)
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("pseudocount[%d]=%g: %w", i, v, ErrValue)
		}
	}
	return nil
}
