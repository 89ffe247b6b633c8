// SPDX-License-Identifier: MIT

package pm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/matrix"
)

// Background is the symbol distribution PWM scores are measured against:
// either one scalar applied to every symbol or one probability per column.
// The zero Background is unset and resolves to the alphabet's built-in one.
type Background struct {
	scalar float64
	vector []float64
	set    bool
}

// UniformBackground returns a scalar background p for every symbol.
func UniformBackground(p float64) Background {
	return Background{scalar: p, set: true}
}

// VectorBackground returns a per-symbol background in column order.
// The slice is copied.
func VectorBackground(p ...float64) Background {
	v := make([]float64, len(p))
	copy(v, p)
	return Background{vector: v, set: true}
}

// IsZero reports whether b is unset.
func (b Background) IsZero() bool { return !b.set }

// IsScalar reports whether b applies a single value to every symbol.
func (b Background) IsScalar() bool { return b.set && b.vector == nil }

// Scalar returns the scalar value and true for scalar backgrounds.
func (b Background) Scalar() (float64, bool) {
	if !b.IsScalar() {
		return 0, false
	}
	return b.scalar, true
}

// Vector returns a copy of the per-symbol values, or nil for scalar/unset backgrounds.
func (b Background) Vector() []float64 {
	if b.vector == nil {
		return nil
	}
	out := make([]float64, len(b.vector))
	copy(out, b.vector)
	return out
}

// At returns the background probability of column j.
func (b Background) At(j int) float64 {
	if b.vector != nil {
		return b.vector[j]
	}
	return b.scalar
}

// Expand returns the background as n per-column values.
func (b Background) Expand(n int) []float64 {
	out := make([]float64, n)
	for j := range out {
		out[j] = b.At(j)
	}
	return out
}

// String implements fmt.Stringer.
func (b Background) String() string {
	switch {
	case !b.set:
		return "unset"
	case b.vector == nil:
		return strconv.FormatFloat(b.scalar, 'g', -1, 64)
	}
	parts := make([]string, len(b.vector))
	for j, v := range b.vector {
		parts[j] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ResolveBackground returns the background to use with alphabet a.
//
// Resolution order:
//  1. an explicit scalar, or a vector whose length equals a.Len() (else ErrShape);
//  2. the built-in background for a.Type();
//  3. otherwise ErrConfiguration naming the alphabet type.
//
// Every value must be finite and > 0 (ErrValue): its log2 is taken.
func ResolveBackground(bg Background, a alphabet.Alphabet) (Background, error) {
	const tag = "ResolveBackground"
	if a.IsZero() {
		return Background{}, pmErrorf(tag, fmt.Errorf("empty alphabet: %w", ErrConfiguration))
	}

	if bg.IsZero() {
		builtin, ok := alphabet.BuiltinBackground(a.Type())
		if !ok || len(builtin) != a.Len() {
			return Background{}, pmErrorf(tag, fmt.Errorf(
				"alphabet type %q has no built-in background, supply one: %w", string(a.Type()), ErrConfiguration))
		}
		return VectorBackground(builtin...), nil
	}

	if bg.vector != nil {
		if err := matrix.ValidateVecLen(bg.vector, a.Len()); err != nil {
			return Background{}, pmErrorf(tag, fmt.Errorf(
				"background has %d values, alphabet %s has %d symbols: %w: %w", len(bg.vector), a.Symbols(), a.Len(), ErrShape, err))
		}
	}
	for j, v := range bg.Expand(a.Len()) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return Background{}, pmErrorf(tag, fmt.Errorf("background[%d]=%g: %w", j, v, ErrValue))
		}
	}

	return bg, nil
}
