// SPDX-License-Identifier: MIT

// Package matrix: the Matrix abstraction shared by every kernel in numopt.
// This file intentionally contains ONLY the interface; concrete storage
// lives in dense.go and the read-only projection in view.go.
package matrix

// Matrix represents a two-dimensional array of float64 values with an
// immutable shape. Implementations may be mutable (Dense) or read-only
// projections (TriangularView, which rejects mutation with ErrReadOnlyView).
//
// Complexity notes: all methods are expected O(1) except Clone and
// NewInstance (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices, or ErrReadOnlyView when the
	// implementation is a projection.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// SwapRows exchanges rows r1 and r2 in place and increments the row-swap
	// counter, including when r1 == r2. Returns ErrOutOfRange on invalid
	// indices, or ErrReadOnlyView on a projection.
	// Complexity: O(cols).
	SwapRows(r1, r2 int) error

	// RowSwaps reports the cumulative number of SwapRows calls performed on
	// this matrix. Note the determinant sign uses the Decomposition's own
	// exchange count, not this counter.
	// Complexity: O(1).
	RowSwaps() int

	// Clone returns a deep copy of the matrix, independent of the original,
	// with a zeroed row-swap counter.
	// Complexity: O(rows*cols).
	Clone() Matrix

	// NewInstance returns a zero-filled matrix of the given shape, of the
	// same concrete family as the receiver. Generic routines (decomposition,
	// solver, optimizer) use it as a factory so they never hard-code a
	// concrete matrix type. Returns ErrBadShape for non-positive dimensions.
	// Complexity: O(rows*cols).
	NewInstance(rows, cols int) (Matrix, error)
}
