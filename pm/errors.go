// SPDX-License-Identifier: MIT
// Package pm: sentinel error set.
// Every failure returned by this package matches exactly one of the kinds
// below via errors.Is. Lower-level causes (matrix, tabfile, alphabet, fs) stay
// in the chain as well, so callers may match either layer.

package pm

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/matrix"
	"github.com/katalvlaran/seqmotif/tabfile"
)

var (
	// ErrInputType indicates a matrix source that is neither a file path, a raw
	// table nor an existing matrix of the requested kind.
	ErrInputType = errors.New("pm: unsupported matrix input")

	// ErrFileNotFound indicates a file path that does not resolve to a readable
	// regular file, or a Loader that failed without a more specific kind.
	ErrFileNotFound = errors.New("pm: matrix file not found")

	// ErrShape indicates a table that fits the alphabet in neither orientation,
	// or a background/pseudocount vector of the wrong length.
	ErrShape = errors.New("pm: shape does not match alphabet")

	// ErrNormalization indicates probability rows that do not sum to 1, or
	// count rows with no mass to normalize.
	ErrNormalization = errors.New("pm: rows do not sum to 1")

	// ErrConfiguration indicates an alphabet or background that cannot be resolved.
	ErrConfiguration = errors.New("pm: configuration error")

	// ErrValue indicates NaN/±Inf entries, negative counts or probabilities, or
	// a non-positive background or pseudocount.
	ErrValue = errors.New("pm: invalid value")

	// ErrInconsistent indicates supplied matrices that do not describe the same motif.
	ErrInconsistent = errors.New("pm: supplied matrices are inconsistent")
)

// pmErrorf tags err with the operation name.
func pmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// classify tags a lower-layer error with the pm kind it belongs to.
// Errors that already carry a pm kind, or match none, are only tagged.
func classify(tag string, err error) error {
	if err == nil {
		return nil
	}
	kind := kindOf(err)
	if kind == nil || errors.Is(err, kind) {
		return pmErrorf(tag, err)
	}

	return fmt.Errorf("%s: %w: %w", tag, kind, err)
}

// errorKinds lists every pm error kind.
var errorKinds = []error{ErrInputType, ErrFileNotFound, ErrShape, ErrNormalization, ErrConfiguration, ErrValue, ErrInconsistent}

// kindOf returns the pm kind err already carries, else the kind its
// lower-layer sentinel maps to, else nil.
func kindOf(err error) error {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}

	var kind error
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, tabfile.ErrRead):
		kind = ErrFileNotFound
	case errors.Is(err, matrix.ErrNilMatrix):
		kind = ErrInputType
	case errors.Is(err, matrix.ErrRagged),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, tabfile.ErrRagged),
		errors.Is(err, tabfile.ErrEmpty):
		kind = ErrShape
	case errors.Is(err, matrix.ErrZeroRow), errors.Is(err, matrix.ErrRowSum):
		kind = ErrNormalization
	case errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, matrix.ErrNegative),
		errors.Is(err, tabfile.ErrParse):
		kind = ErrValue
	case errors.Is(err, alphabet.ErrUnknownType),
		errors.Is(err, alphabet.ErrNoSymbols),
		errors.Is(err, alphabet.ErrDuplicateSymbol),
		errors.Is(err, alphabet.ErrLengthMismatch):
		kind = ErrConfiguration
	}
	return kind
}
