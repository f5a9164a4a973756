// SPDX-License-Identifier: MIT

// Package matrix: central shape validators shared by every kernel.
// Keeping the checks here guarantees one error surface per failure class:
// kernels call a validator, wrap the sentinel at their facade and return.
package matrix

// ValidateNotNil rejects a nil Matrix value.
// Returns ErrNilMatrix when m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare rejects non-square matrices.
// Returns ErrNilMatrix or ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape rejects operand pairs of differing shapes (Add/Sub).
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible rejects pairs where a.Cols() != b.Rows() (Mul).
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateColumnVector rejects matrices that are not n×1 columns of the
// given length n (triangular solves, norms).
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateColumnVector(v Matrix, n int) error {
	if err := ValidateNotNil(v); err != nil {
		return err
	}
	if v.Cols() != 1 || v.Rows() != n {
		return ErrDimensionMismatch
	}

	return nil
}
