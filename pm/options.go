// SPDX-License-Identifier: MIT

// Package pm: functional configuration for orientation, conversion and
// MatrixSet reconciliation. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values: programmer error),
//   - gatherOptions / finalizeOptions helpers that enforce invariants.
//
// Notes:
//   - Alphabet, background and pseudocount are fixed for the life of a
//     MatrixSet; changing them means building a new set.
//   - Priority decides which supplied matrix the missing ones are derived from.
//     finalizeOptions completes a partial priority with the default order.
package pm

import (
	"math"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/tabfile"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlphabetType is used when no alphabet option is given.
	DefaultAlphabetType = alphabet.DNA

	// DefaultCanonical is the kind consensus and weights are computed from.
	DefaultCanonical = Probability

	// DefaultRowSumTolerance bounds |Σ_j p[i,j] − 1| for probability rows.
	DefaultRowSumTolerance = 1e-10

	// DefaultConsistencyTolerance bounds the element-wise PPM disagreement
	// between two supplied matrices.
	DefaultConsistencyTolerance = 1e-6

	// DefaultCheckConsistency validates supplied matrices against each other.
	DefaultCheckConsistency = true
)

// DefaultPriority is the derivation order: PPM first, as the hub every
// conversion passes through, then PFM, then PWM.
func DefaultPriority() []Kind { return []Kind{Probability, Frequency, Weight} }

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid = "pm: tolerance must be finite and non-negative"
	panicKindInvalid      = "pm: invalid matrix kind"
)

// Loader turns a file path into a raw table. tabfile.Read is the default.
type Loader func(path string) ([][]float64, error)

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	alphabetType alphabet.Type
	symbols      string

	background  Background
	pseudocount Pseudocount

	canonical        Kind
	priority         []Kind
	checkConsistency bool
	consistencyTol   float64
	rowSumTol        float64

	loader Loader
	inputs *Inputs
}

// WithAlphabet selects a built-in alphabet type (or Custom, with WithSymbols).
func WithAlphabet(t alphabet.Type) Option {
	return func(o *Options) { o.alphabetType = t }
}

// WithSymbols supplies the symbol string for a Custom alphabet, or relabels
// the columns of a built-in one.
func WithSymbols(symbols string) Option {
	return func(o *Options) { o.symbols = symbols }
}

// WithCustomAlphabet is WithAlphabet(alphabet.Custom) plus WithSymbols(symbols).
func WithCustomAlphabet(symbols string) Option {
	return func(o *Options) {
		o.alphabetType = alphabet.Custom
		o.symbols = symbols
	}
}

// WithBackground sets an explicit background; otherwise the alphabet's
// built-in background is used.
func WithBackground(bg Background) Option {
	return func(o *Options) { o.background = bg }
}

// WithPseudocount sets the log-transform offset (default DefaultPseudocount).
func WithPseudocount(pc Pseudocount) Option {
	return func(o *Options) { o.pseudocount = pc }
}

// WithCanonical picks the kind consensus and positional weights are read from.
// Panics on an invalid kind.
func WithCanonical(k Kind) Option {
	if !k.Valid() {
		panic(panicKindInvalid)
	}
	return func(o *Options) { o.canonical = k }
}

// WithPriority sets the order in which supplied matrices are preferred as the
// derivation source. Kinds left out keep their default relative order after
// the listed ones. Panics on an invalid kind.
func WithPriority(kinds ...Kind) Option {
	for _, k := range kinds {
		if !k.Valid() {
			panic(panicKindInvalid)
		}
	}
	cp := append([]Kind(nil), kinds...)
	return func(o *Options) { o.priority = cp }
}

// WithoutConsistencyCheck keeps supplied matrices verbatim even when they
// disagree; only missing matrices are derived, from the highest-priority one.
func WithoutConsistencyCheck() Option {
	return func(o *Options) { o.checkConsistency = false }
}

// WithConsistencyTolerance sets the PPM-space tolerance for the consistency check.
func WithConsistencyTolerance(tol float64) Option {
	mustTolerance(tol)
	return func(o *Options) { o.consistencyTol = tol }
}

// WithRowSumTolerance sets the probability row-sum tolerance.
func WithRowSumTolerance(tol float64) Option {
	mustTolerance(tol)
	return func(o *Options) { o.rowSumTol = tol }
}

// WithLoader replaces the file loader used for FilePath sources.
func WithLoader(l Loader) Option {
	return func(o *Options) { o.loader = l }
}

// WithInputs makes NewMatrixSet reconcile in immediately after construction.
func WithInputs(in Inputs) Option {
	return func(o *Options) {
		cp := in
		o.inputs = &cp
	}
}

func mustTolerance(tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		alphabetType:     DefaultAlphabetType,
		canonical:        DefaultCanonical,
		checkConsistency: DefaultCheckConsistency,
		consistencyTol:   DefaultConsistencyTolerance,
		rowSumTol:        DefaultRowSumTolerance,
	}
}

// gatherOptions applies setters on top of defaults (last-writer-wins) and
// finalizes derived invariants.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place:
//   - priority is de-duplicated and completed with DefaultPriority order;
//   - a nil loader becomes tabfile.Read.
func finalizeOptions(o *Options) {
	seen := [numKinds]bool{}
	full := make([]Kind, 0, numKinds)
	for _, k := range append(append([]Kind(nil), o.priority...), DefaultPriority()...) {
		if !seen[k] {
			seen[k] = true
			full = append(full, k)
		}
	}
	o.priority = full

	if o.loader == nil {
		o.loader = tabfile.Read
	}
}
