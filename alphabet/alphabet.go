// SPDX-License-Identifier: MIT

// Package alphabet resolves alphabet type tags to ordered symbol sets and
// their built-in background distributions.
//
// Symbol order is significant: column j of every position matrix tied to an
// Alphabet is bound to the alphabet's j-th symbol.
//
// ⚙️ Usage:
//
//	a, err := alphabet.Resolve(alphabet.DNA, "")
//	// a.Symbols() == "ACGT"
//
//	c, err := alphabet.Resolve(alphabet.Custom, "XYZ")
//	// c.Len() == 3, no built-in background
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Type tags an alphabet. The set of tags is closed; see Types.
type Type string

// Built-in alphabet types. The reduced and ambiguous variants end with the gap
// symbol '-'.
const (
	DNA        Type = "DNA"
	ReducedDNA Type = "reduced DNA"
	AmbigDNA   Type = "ambig DNA"
	RNA        Type = "RNA"
	ReducedRNA Type = "reduced RNA"
	AmbigRNA   Type = "ambig RNA"
	AA         Type = "AA"
	ReducedAA  Type = "reduced AA"
	AmbigAA    Type = "ambig AA"
	Custom     Type = "custom"
)

// Gap is the symbol marking a gap column when it is an alphabet's last symbol.
const Gap = '-'

// Sentinel errors. All of them describe a configuration problem.
var (
	// ErrUnknownType indicates a tag outside the closed set.
	ErrUnknownType = errors.New("alphabet: unknown alphabet type")

	// ErrNoSymbols indicates Custom was selected without a symbol string.
	ErrNoSymbols = errors.New("alphabet: custom alphabet requires symbols")

	// ErrDuplicateSymbol indicates a symbol string with repeated symbols.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrLengthMismatch indicates an override symbol string whose length differs
	// from the built-in alphabet it replaces.
	ErrLengthMismatch = errors.New("alphabet: symbol override has wrong length")
)

var symbols = map[Type]string{
	DNA:        "ACGT",
	ReducedDNA: "ACGTN-",
	AmbigDNA:   "ACGTRYSWKMBDHVN-",
	RNA:        "ACGU",
	ReducedRNA: "ACGUN-",
	AmbigRNA:   "ACGURYSWKMBDHVN-",
	AA:         "ACDEFGHIKLMNPQRSTVWY",
	ReducedAA:  "ACDEFGHIKLMNPQRSTVWYX*-",
	AmbigAA:    "ACDEFGHIKLMNOPQRSTUVWYBJZX*-",
}

// order fixes the iteration order of Types.
var order = []Type{DNA, ReducedDNA, AmbigDNA, RNA, ReducedRNA, AmbigRNA, AA, ReducedAA, AmbigAA, Custom}

// Alphabet is an immutable ordered set of distinct symbols with its type tag.
// The zero Alphabet is empty and unusable; obtain values through Resolve.
type Alphabet struct {
	typ     Type
	symbols []rune
}

// Resolve returns the Alphabet for t.
//
// For Custom, custom must be a non-empty string of distinct symbols. For a
// built-in type, an empty custom selects the canonical symbols; a non-empty
// custom re-labels the columns and must have the built-in length.
func Resolve(t Type, custom string) (Alphabet, error) {
	if t == Custom {
		if custom == "" {
			return Alphabet{}, ErrNoSymbols
		}
		return newAlphabet(t, custom)
	}

	builtin, ok := symbols[t]
	if !ok {
		return Alphabet{}, fmt.Errorf("%q: %w", string(t), ErrUnknownType)
	}
	if custom == "" {
		return newAlphabet(t, builtin)
	}
	if n := len([]rune(custom)); n != len([]rune(builtin)) {
		return Alphabet{}, fmt.Errorf("%s has %d symbols, got %d: %w", t, len([]rune(builtin)), n, ErrLengthMismatch)
	}

	return newAlphabet(t, custom)
}

// MustResolve is Resolve for package-level fixtures; it panics on error.
func MustResolve(t Type, custom string) Alphabet {
	a, err := Resolve(t, custom)
	if err != nil {
		panic(err)
	}
	return a
}

func newAlphabet(t Type, s string) (Alphabet, error) {
	rs := []rune(s)
	seen := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		if _, dup := seen[r]; dup {
			return Alphabet{}, fmt.Errorf("%q in %q: %w", r, s, ErrDuplicateSymbol)
		}
		seen[r] = struct{}{}
	}

	return Alphabet{typ: t, symbols: rs}, nil
}

// ParseType maps a user-supplied tag to a Type. Matching ignores case and
// surrounding space, so "dna" and " Reduced DNA" are accepted.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range order {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownType)
}

// Types lists every supported tag in a fixed order.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// Type returns the alphabet's tag.
func (a Alphabet) Type() Type { return a.typ }

// Len returns the number of symbols N.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the symbols in column order.
func (a Alphabet) Symbols() string { return string(a.symbols) }

// Symbol returns the j-th symbol.
func (a Alphabet) Symbol(j int) rune { return a.symbols[j] }

// Labels returns one single-symbol string per column.
func (a Alphabet) Labels() []string {
	out := make([]string, len(a.symbols))
	for j, r := range a.symbols {
		out[j] = string(r)
	}
	return out
}

// Index returns the column of symbol r, or -1.
func (a Alphabet) Index(r rune) int {
	for j, s := range a.symbols {
		if s == r {
			return j
		}
	}
	return -1
}

// Gapped reports whether the final symbol is the gap symbol.
func (a Alphabet) Gapped() bool {
	n := len(a.symbols)
	return n > 0 && a.symbols[n-1] == Gap
}

// IsZero reports whether a is the unusable zero Alphabet.
func (a Alphabet) IsZero() bool { return len(a.symbols) == 0 }

// String implements fmt.Stringer.
func (a Alphabet) String() string {
	return fmt.Sprintf("%s(%s)", a.typ, string(a.symbols))
}

// IsNucleic reports whether t is one of the DNA/RNA variants.
func IsNucleic(t Type) bool {
	switch t {
	case DNA, ReducedDNA, AmbigDNA, RNA, ReducedRNA, AmbigRNA:
		return true
	}
	return false
}

// IsAmino reports whether t is one of the amino-acid variants.
func IsAmino(t Type) bool {
	switch t {
	case AA, ReducedAA, AmbigAA:
		return true
	}
	return false
}
