// SPDX-License-Identifier: MIT

// Package matrix: the whitespace text format. One row per line, columns
// separated by spaces or tabs, every row the same width. Any malformation
// collapses into the single generic ErrParse — the format carries no
// partial or row-level diagnostics.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a matrix definition from r.
// Stage 1 (Scan): split into lines, skip blank ones.
// Stage 2 (Convert): parse each field as float64.
// Stage 3 (Validate): all rows must share one column count and at least one
// row must be present.
// Errors: ErrParse for unreadable input, non-numeric tokens, ragged rows or
// an empty body.
// Complexity: O(r*c).
func Parse(r io.Reader) (*Dense, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, ErrParse
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, ErrParse
	}
	if len(rows) == 0 {
		return nil, ErrParse
	}

	m, err := NewDenseFromRows(rows)
	if err != nil {
		// Ragged rows and degenerate shapes are all just "invalid definition".
		return nil, ErrParse
	}

	return m, nil
}

// ParseFile reads a matrix definition from the named file.
// Errors: ErrParse (wrapped with the file name) for unreadable files or
// malformed content.
func ParseFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrParse)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrParse)
	}

	return m, nil
}

// Fprint writes m to w in the same text format Parse reads: one row per
// line, values space-separated with %g.
// Errors: ErrNilMatrix, element access and writer failures.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			sep := " "
			if j == 0 {
				sep = ""
			}
			if _, err = fmt.Fprintf(w, "%s%g", sep, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// Sprint renders m via Fprint into a string, ignoring element errors by
// returning what was written so far. Meant for debugging and examples.
func Sprint(m Matrix) string {
	var sb strings.Builder
	_ = Fprint(&sb, m)

	return sb.String()
}
