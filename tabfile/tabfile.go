// SPDX-License-Identifier: MIT

// Package tabfile reads and writes plain rectangular numeric tables.
//
// A table file holds one row per line, values separated by spaces, tabs or
// commas. Blank lines and lines whose first non-space character is '#' are
// skipped. There is no header row.
package tabfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// CommentPrefix starts a line that Parse ignores.
const CommentPrefix = "#"

var (
	// ErrEmpty indicates that no data rows were found.
	ErrEmpty = errors.New("tabfile: no data rows")

	// ErrRagged indicates rows with differing value counts.
	ErrRagged = errors.New("tabfile: ragged rows")

	// ErrParse indicates a token that is not a real number.
	ErrParse = errors.New("tabfile: invalid number")

	// ErrRead wraps every I/O failure: stat, open, or the underlying reader.
	// The cause (fs.ErrNotExist, fs.ErrPermission, bufio.ErrTooLong, ...) stays
	// in the chain.
	ErrRead = errors.New("tabfile: cannot read table")
)

// Read loads the table stored at path.
//
// A path that does not exist, or that is not a regular file, yields an error
// wrapping fs.ErrNotExist. Any other stat or open failure wraps ErrRead.
func Read(path string) ([][]float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("tabfile: %s is not a regular file: %w", path, fs.ErrNotExist)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse reads a table from r. A failing reader, or a line longer than
// bufio.MaxScanTokenSize, yields ErrRead.
func Parse(r io.Reader) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]float64
	ncols := -1
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}
		fields := strings.FieldsFunc(text, isSeparator)
		if ncols == -1 {
			ncols = len(fields)
		}
		if len(fields) != ncols {
			return nil, fmt.Errorf("line %d has %d values, want %d: %w", line, len(fields), ncols, ErrRagged)
		}

		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d %q: %w", line, j+1, tok, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("after line %d: %w: %w", line, ErrRead, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return rows, nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}

// Write prints rows as tab-separated lines. When labels is non-empty it is
// written first as a header line prefixed by CommentPrefix, so the output can
// be fed back to Parse unchanged.
func Write(w io.Writer, labels []string, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	if len(labels) > 0 {
		if _, err := fmt.Fprintf(bw, "%s%s\n", CommentPrefix, strings.Join(labels, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
