// SPDX-License-Identifier: MIT
// Package: pm
//
// Purpose:
//   - Fit a raw table to an alphabet: accept W×N, transpose N×W, reject the rest.
//   - Enforce the per-kind value contract before a PositionMatrix exists.
//
// Stages (Orient):
//   1. Load the table from the Source variant.
//   2. Orient: Cols()==N ⇒ as-is; else Rows()==N ⇒ transpose; else ErrShape.
//   3. Finalize: finite values; non-negative for PFM/PPM; PPM rows sum to 1.
//
// AI-Hints:
//   - A square N×N table is taken as-is: the columns-first rule wins.

package pm

import (
	"fmt"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/matrix"
)

const opOrient = "Orient"

// Orient builds a PositionMatrix of kind k over alphabet a from src.
//
// Errors:
//   - ErrInputType for a nil or unknown Source, or an Existing of another kind.
//   - ErrFileNotFound for a FilePath that is not a regular file.
//   - ErrShape when the table fits the alphabet in neither orientation.
//   - ErrValue for non-finite entries, or negative PFM/PPM entries.
//   - ErrNormalization for PPM rows that do not sum to 1.
//   - ErrConfiguration for a zero alphabet.
//
// Complexity: O(W·N).
func Orient(src Source, a alphabet.Alphabet, k Kind, opts ...Option) (*PositionMatrix, error) {
	o := gatherOptions(opts...)
	return orient(src, a, k, &o)
}

func orient(src Source, a alphabet.Alphabet, k Kind, o *Options) (*PositionMatrix, error) {
	if a.IsZero() {
		return nil, pmErrorf(opOrient, fmt.Errorf("empty alphabet: %w", ErrConfiguration))
	}
	if !k.Valid() {
		return nil, pmErrorf(opOrient, fmt.Errorf("%s: %w", k, ErrInputType))
	}

	raw, err := load(src, k, o)
	if err != nil {
		return nil, classify(opOrient, err)
	}

	n := a.Len()
	table := raw
	switch {
	case raw.Cols() == n:
		// already W×N
	case raw.Rows() == n:
		if table, err = matrix.Transpose(raw); err != nil {
			return nil, classify(opOrient, err)
		}
	default:
		return nil, pmErrorf(opOrient, fmt.Errorf(
			"%s alphabet selected, table is %d×%d, want %d columns or %d rows: %w",
			a.Type(), raw.Rows(), raw.Cols(), n, n, ErrShape))
	}

	return build(k, a, table, o.rowSumTol)
}

// load materializes the Source as a fresh *matrix.Dense the caller may own.
func load(src Source, k Kind, o *Options) (*matrix.Dense, error) {
	switch s := src.(type) {
	case nil:
		return nil, fmt.Errorf("nil source: %w", ErrInputType)
	case FilePath:
		rows, err := o.loader(string(s))
		if err != nil {
			if kindOf(err) == nil {
				return nil, fmt.Errorf("load %s: %w: %w", string(s), ErrFileNotFound, err)
			}
			return nil, err
		}
		return matrix.NewDenseFromRows(rows)
	case RawTable:
		return matrix.NewDenseFromRows(s)
	case Existing:
		if s.Matrix.empty() {
			return nil, fmt.Errorf("nil or empty existing matrix: %w", ErrInputType)
		}
		if s.Matrix.Kind() != k {
			return nil, fmt.Errorf("existing %s supplied as %s: %w", s.Matrix.Kind(), k, ErrInputType)
		}
		return s.Matrix.Table(), nil
	}

	return nil, fmt.Errorf("source %T: %w", src, ErrInputType)
}

// build checks the per-kind value contract and wraps table (taking ownership).
func build(k Kind, a alphabet.Alphabet, table *matrix.Dense, rowSumTol float64) (*PositionMatrix, error) {
	if table.Cols() != a.Len() {
		return nil, pmErrorf(opOrient, fmt.Errorf("%d columns for %d symbols: %w", table.Cols(), a.Len(), ErrShape))
	}
	if err := matrix.ValidateFinite(table); err != nil {
		return nil, classify(opOrient, err)
	}
	if k == Frequency || k == Probability {
		if err := matrix.ValidateNonNegative(table); err != nil {
			return nil, classify(opOrient, err)
		}
	}
	if k == Probability {
		if err := matrix.ValidateRowSums(table, 1, rowSumTol); err != nil {
			return nil, pmErrorf(opOrient, fmt.Errorf("some %s rows do not add to 1: %w: %w", k, ErrNormalization, err))
		}
	}

	return &PositionMatrix{kind: k, alpha: a, table: table}, nil
}
