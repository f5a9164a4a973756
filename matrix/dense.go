// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// swaps counts SwapRows calls cumulatively; gen is bumped on every mutation
// and backs the TriangularView staleness guard.
type Dense struct {
	r, c  int       // number of rows and columns
	data  []float64 // flat backing storage, length == r*c
	swaps int       // cumulative SwapRows counter
	gen   uint64    // mutation generation, see view.go
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Return initialized Dense over a fresh flat slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows creates a Dense from a rectangular [][]float64.
// Returns ErrBadShape when rows is empty or the first row is empty, and
// ErrDimensionMismatch when row lengths differ.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	m, err := NewDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewVector creates an n×1 column vector from the given values.
// Optimizer points and right-hand sides use this shape throughout.
// Returns ErrBadShape when no values are provided.
// Complexity: O(n).
func NewVector(values ...float64) (*Dense, error) {
	if len(values) == 0 {
		return nil, ErrBadShape
	}
	m, _ := NewDense(len(values), 1)
	copy(m.data, values)

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) and advances the mutation generation.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.gen++

	return nil
}

// SwapRows exchanges rows r1 and r2 in place, increments the cumulative
// swap counter (even for r1 == r2) and advances the mutation generation.
// Stage 1 (Validate): both row indices in range.
// Stage 2 (Execute): swap the two row slices element by element.
// Complexity: O(cols).
func (m *Dense) SwapRows(r1, r2 int) error {
	// Validate both rows via the shared index check
	if _, err := m.indexOf(r1, 0); err != nil {
		return err
	}
	if _, err := m.indexOf(r2, 0); err != nil {
		return err
	}

	// Swap backing storage row by row
	if r1 != r2 {
		a := m.data[r1*m.c : (r1+1)*m.c]
		b := m.data[r2*m.c : (r2+1)*m.c]
		for j := 0; j < m.c; j++ {
			a[j], b[j] = b[j], a[j]
		}
	}
	// The counter is cumulative per call, not deduplicated.
	m.swaps++
	m.gen++

	return nil
}

// RowSwaps reports the cumulative number of SwapRows calls on this matrix.
// Complexity: O(1).
func (m *Dense) RowSwaps() int {
	return m.swaps
}

// Clone returns a deep copy of the Dense matrix with a fresh swap counter.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// NewInstance returns a zero-filled *Dense of the given shape.
// Complexity: O(rows*cols).
func (m *Dense) NewInstance(rows, cols int) (Matrix, error) {
	return NewDense(rows, cols)
}

// String implements fmt.Stringer for easy debugging: one row per line,
// values space-separated, matching the Parse text format.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
