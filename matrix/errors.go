// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning them
// directly; if context is essential, wrap at the operation facade via
// fmt.Errorf("Op: %w", ErrX) — callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/SwapRows/SubMatrix) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (determinant, identity, decomposition, triangular solves).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingularPivot is returned by pivoted decomposition when the best
	// pivot candidate in a column has magnitude <= PivotTol.
	ErrSingularPivot = errors.New("matrix: singular pivot")

	// ErrZeroPivot is returned by plain (non-pivoting) decomposition when an
	// elimination divisor is exactly zero. Unreachable with pivoting enabled.
	ErrZeroPivot = errors.New("matrix: division by zero pivot")

	// ErrReadOnlyView signals a mutation attempt (Set, SwapRows) on a
	// TriangularView. Views project shared factorized storage and never write.
	ErrReadOnlyView = errors.New("matrix: triangular view is read-only")

	// ErrStaleView signals a read through a TriangularView whose owning
	// matrix was mutated after the view was created.
	ErrStaleView = errors.New("matrix: view invalidated by later mutation of its owner")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrParse is the single generic failure for malformed matrix text:
	// unreadable input, a non-numeric token, ragged rows or an empty body.
	ErrParse = errors.New("matrix: invalid matrix definition")
)
