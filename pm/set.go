// SPDX-License-Identifier: MIT
// Package: pm
//
// Purpose:
//   - MatrixSet: reconcile any non-empty subset of {PFM, PPM, PWM} into a
//     complete triple plus consensus, information content and weights.
//
// Stages (Reconcile):
//   1. Orient every supplied source against the set's alphabet.
//   2. Widths must agree; a vector pseudocount must match that width.
//   3. Pick the derivation source: first supplied kind in priority order.
//   4. Map the source to PPM (the hub).
//   5. Consistency (default on): every other supplied matrix must map to the
//      same PPM within the consistency tolerance.
//   6. Derive the missing kinds from the hub.
//   7. Statistics on the canonical kind; IC from the set's PPM and PWM.
//
// Atomicity:
//   - A fresh state is assembled off to the side and swapped in only when every
//     stage succeeds. A failed Reconcile leaves the previous state untouched.

package pm

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/matrix"
)

const (
	opNewMatrixSet = "NewMatrixSet"
	opReconcile    = "Reconcile"
)

// Inputs names the sources supplied to Reconcile. Nil fields are derived.
type Inputs struct {
	PFM Source
	PPM Source
	PWM Source
}

// Source returns the source supplied for kind k, or nil.
func (in Inputs) Source(k Kind) Source {
	switch k {
	case Frequency:
		return in.PFM
	case Probability:
		return in.PPM
	case Weight:
		return in.PWM
	}
	return nil
}

// Empty reports whether no source is supplied.
func (in Inputs) Empty() bool { return in.PFM == nil && in.PPM == nil && in.PWM == nil }

// MatrixSet owns a reconciled PFM/PPM/PWM triple over one alphabet.
//
// Alphabet, background and pseudocount are fixed at construction. Matrices
// and statistics are available once Reconcile has succeeded (see Ready).
// A MatrixSet is not safe for concurrent Reconcile calls.
type MatrixSet struct {
	opts  Options
	alpha alphabet.Alphabet
	bg    Background
	conv  converter
	st    *state
}

// state is one reconciled snapshot; it is never mutated after publication.
type state struct {
	mats      [numKinds]*PositionMatrix
	supplied  [numKinds]bool
	source    Kind
	consensus string
	ic        []float64
	weight    []float64
}

// NewMatrixSet resolves the alphabet and background and, when WithInputs is
// given, reconciles the inputs immediately.
//
// Errors:
//   - ErrConfiguration for an unknown alphabet type, missing or duplicate
//     custom symbols, or an alphabet without a built-in background and no
//     explicit one.
//   - ErrShape / ErrValue for an explicit background of the wrong length or
//     with non-positive entries, and for a non-positive scalar pseudocount.
//   - Any Reconcile error when WithInputs is used.
func NewMatrixSet(opts ...Option) (*MatrixSet, error) {
	o := gatherOptions(opts...)

	a, err := alphabet.Resolve(o.alphabetType, o.symbols)
	if err != nil {
		return nil, classify(opNewMatrixSet, err)
	}
	bg, err := ResolveBackground(o.background, a)
	if err != nil {
		return nil, pmErrorf(opNewMatrixSet, err)
	}
	if !o.pseudocount.IsVector() {
		if err = o.pseudocount.check(1); err != nil {
			return nil, pmErrorf(opNewMatrixSet, err)
		}
	}

	s := &MatrixSet{
		opts:  o,
		alpha: a,
		bg:    bg,
		conv:  converter{rowSumTol: o.rowSumTol},
	}
	if o.inputs != nil {
		if err = s.Reconcile(*o.inputs); err != nil {
			return nil, pmErrorf(opNewMatrixSet, err)
		}
	}

	return s, nil
}

// Reconcile replaces the set's matrices with the ones derived from in.
//
// Errors:
//   - ErrInputType when in is empty or a source is of the wrong variant/kind.
//   - ErrShape for mismatched widths or a pseudocount vector of the wrong length.
//   - ErrInconsistent when supplied matrices disagree (consistency check on).
//   - Any Orient or conversion error.
//
// On error the previous state is kept.
func (s *MatrixSet) Reconcile(in Inputs) error {
	if in.Empty() {
		return pmErrorf(opReconcile, fmt.Errorf("no matrix supplied: %w", ErrInputType))
	}

	// Stage 1: orient.
	next := &state{}
	width := -1
	for _, k := range Kinds() {
		src := in.Source(k)
		if src == nil {
			continue
		}
		m, err := orient(src, s.alpha, k, &s.opts)
		if err != nil {
			return pmErrorf(opReconcile, fmt.Errorf("%s: %w", k, err))
		}
		// Stage 2: widths.
		if width >= 0 && m.Width() != width {
			return pmErrorf(opReconcile, fmt.Errorf("%s has width %d, want %d: %w", k, m.Width(), width, ErrShape))
		}
		width = m.Width()
		next.mats[k] = m
		next.supplied[k] = true
	}
	pc := s.opts.pseudocount
	if err := pc.check(width); err != nil {
		return pmErrorf(opReconcile, err)
	}

	// Stage 3: derivation source.
	for _, k := range s.opts.priority {
		if next.supplied[k] {
			next.source = k
			break
		}
	}

	// Stage 4: hub.
	hub, err := s.conv.toPPM(next.mats[next.source], s.bg, pc)
	if err != nil {
		return pmErrorf(opReconcile, err)
	}

	// Stage 5: consistency.
	if s.opts.checkConsistency {
		if err = s.checkConsistent(next, hub); err != nil {
			return pmErrorf(opReconcile, err)
		}
	}

	// Stage 6: fill.
	if next.mats[Probability] == nil {
		next.mats[Probability] = hub
	}
	if next.mats[Frequency] == nil {
		if next.mats[Frequency], err = s.conv.ppmToPFM(hub); err != nil {
			return pmErrorf(opReconcile, err)
		}
	}
	if next.mats[Weight] == nil {
		if next.mats[Weight], err = s.conv.ppmToPWM(hub, s.bg, pc); err != nil {
			return pmErrorf(opReconcile, err)
		}
	}

	// Stage 7: statistics.
	if err = next.summarize(s.opts.canonical); err != nil {
		return pmErrorf(opReconcile, err)
	}

	s.st = next
	return nil
}

// checkConsistent compares every supplied non-source matrix with hub in PPM space.
// A PFM paired with a PPM or PWM source is also accepted when it is the
// rounded CountScale form of the other side, since PPM→PFM loses precision.
func (s *MatrixSet) checkConsistent(next *state, hub *PositionMatrix) error {
	for _, k := range Kinds() {
		if !next.supplied[k] || k == next.source {
			continue
		}
		p, err := s.conv.toPPM(next.mats[k], s.bg, s.opts.pseudocount)
		if err != nil {
			return fmt.Errorf("supplied %s: %w", k, err)
		}
		ok, err := matrix.AllClose(p.table, hub.table, 0, s.opts.consistencyTol)
		if err != nil {
			return classify("AllClose", err)
		}
		if !ok && (k == Frequency) != (next.source == Frequency) {
			counts, probs := next.mats[k], hub
			if next.source == Frequency {
				counts, probs = next.mats[Frequency], p
			}
			if ok, err = s.roundsTo(counts, probs); err != nil {
				return err
			}
		}
		if !ok {
			return fmt.Errorf("supplied %s disagrees with %s beyond %g: %w",
				k, next.source, s.opts.consistencyTol, ErrInconsistent)
		}
	}
	return nil
}

// roundsTo reports whether every count lies within half a unit (plus the
// consistency tolerance) of CountScale·p.
func (s *MatrixSet) roundsTo(counts, probs *PositionMatrix) (bool, error) {
	scaled, err := matrix.Map(probs.table, func(_, _ int, p float64) float64 { return p * CountScale })
	if err != nil {
		return false, classify("roundsTo", err)
	}
	ok, err := matrix.AllClose(counts.table, scaled, 0, 0.5+CountScale*s.opts.consistencyTol)
	if err != nil {
		return false, classify("roundsTo", err)
	}
	return ok, nil
}

// summarize fills consensus, IC and weight. Weights come from the PPM when
// the canonical kind carries no mass.
func (st *state) summarize(canonical Kind) error {
	can := st.mats[canonical]
	st.consensus = Consensus(can)

	ic, err := InformationContent(st.mats[Probability], st.mats[Weight])
	if err != nil {
		return err
	}
	st.ic = ic

	mass := can
	if mass.kind == Weight {
		mass = st.mats[Probability]
	}
	if st.weight, err = PositionalWeight(mass); err != nil {
		return err
	}
	return nil
}

// ---------- accessors ----------

// Ready reports whether a Reconcile has succeeded.
func (s *MatrixSet) Ready() bool { return s.st != nil }

// PFM returns the frequency matrix, or nil before the first Reconcile.
func (s *MatrixSet) PFM() *PositionMatrix { return s.Matrix(Frequency) }

// PPM returns the probability matrix, or nil before the first Reconcile.
func (s *MatrixSet) PPM() *PositionMatrix { return s.Matrix(Probability) }

// PWM returns the weight matrix, or nil before the first Reconcile.
func (s *MatrixSet) PWM() *PositionMatrix { return s.Matrix(Weight) }

// Matrix returns the matrix of kind k, or nil.
func (s *MatrixSet) Matrix(k Kind) *PositionMatrix {
	if s.st == nil || !k.Valid() {
		return nil
	}
	return s.st.mats[k]
}

// Supplied reports whether kind k was given to the last successful Reconcile
// rather than derived.
func (s *MatrixSet) Supplied(k Kind) bool {
	return s.st != nil && k.Valid() && s.st.supplied[k]
}

// Source returns the kind the missing matrices were derived from.
func (s *MatrixSet) Source() (Kind, bool) {
	if s.st == nil {
		return 0, false
	}
	return s.st.source, true
}

// CanonicalKind returns the kind consensus and weights are read from.
func (s *MatrixSet) CanonicalKind() Kind { return s.opts.canonical }

// Canonical returns the matrix of the canonical kind.
func (s *MatrixSet) Canonical() *PositionMatrix { return s.Matrix(s.opts.canonical) }

// Width returns the number of positions, 0 before the first Reconcile.
func (s *MatrixSet) Width() int {
	if s.st == nil {
		return 0
	}
	return s.st.mats[Probability].Width()
}

// Length returns the alphabet size N.
func (s *MatrixSet) Length() int { return s.alpha.Len() }

// Alphabet returns the resolved alphabet.
func (s *MatrixSet) Alphabet() alphabet.Alphabet { return s.alpha }

// Labels returns the column labels.
func (s *MatrixSet) Labels() []string { return s.alpha.Labels() }

// Row returns a copy of position i of the canonical matrix, or nil.
func (s *MatrixSet) Row(i int) []float64 {
	c := s.Canonical()
	if c == nil {
		return nil
	}
	return c.Row(i)
}

// Background returns the resolved background.
func (s *MatrixSet) Background() Background { return s.bg }

// Pseudocount returns the configured pseudocount.
func (s *MatrixSet) Pseudocount() Pseudocount { return s.opts.pseudocount }

// Consensus returns the consensus string, "" before the first Reconcile.
func (s *MatrixSet) Consensus() string {
	if s.st == nil {
		return ""
	}
	return s.st.consensus
}

// IC returns a copy of the per-position information content in bits.
func (s *MatrixSet) IC() []float64 {
	if s.st == nil {
		return nil
	}
	return append([]float64(nil), s.st.ic...)
}

// Weight returns a copy of the per-position weights.
func (s *MatrixSet) Weight() []float64 {
	if s.st == nil {
		return nil
	}
	return append([]float64(nil), s.st.weight...)
}

// Entropy returns the per-position information content in nats.
func (s *MatrixSet) Entropy() []float64 {
	if s.st == nil {
		return nil
	}
	return Entropy(s.st.ic)
}

// Counts returns the total count at every position of the PFM.
func (s *MatrixSet) Counts() []float64 {
	pfm := s.PFM()
	if pfm == nil {
		return nil
	}
	out := make([]float64, pfm.Width())
	for i := range out {
		out[i] = floats.Sum(pfm.row(i))
	}
	return out
}

// String implements fmt.Stringer.
func (s *MatrixSet) String() string {
	if s.st == nil {
		return fmt.Sprintf("MatrixSet(%s, empty)", s.alpha)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "MatrixSet(%s, width=%d, consensus=%s, source=%s", s.alpha, s.Width(), s.st.consensus, s.st.source)
	for _, k := range Kinds() {
		if s.st.supplied[k] {
			fmt.Fprintf(&b, ", %s supplied", k)
		}
	}
	b.WriteByte(')')
	return b.String()
}
