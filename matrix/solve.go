// SPDX-License-Identifier: MIT

// Package matrix: forward/backward substitution against triangular factors.
// Both routines mutate the right-hand side in place, matching the aliasing
// discipline of the decomposition: no hidden copies in the solve path.
package matrix

// Operation tags for the solver facades.
const (
	opForward  = "ForwardSubstitute"
	opBackward = "BackwardSubstitute"
)

// ForwardSubstitute solves L·x = b for unit-lower-triangular L, rewriting
// the column vector b in place into x.
//
// Elimination runs top-to-bottom: for each row i, every row j below it
// drops L[j][i]·b[i]. The unit diagonal means no division occurs.
//
// Errors: ErrNilMatrix, ErrNonSquare (L), ErrDimensionMismatch (b not an
// n×1 column matching L), ErrStaleView (stale L view).
// Complexity: O(n²).
func ForwardSubstitute(L, b Matrix) error {
	if err := ValidateSquare(L); err != nil {
		return matrixErrorf(opForward, err)
	}
	n := L.Rows()
	if err := ValidateColumnVector(b, n); err != nil {
		return matrixErrorf(opForward, err)
	}

	for i := 0; i < n-1; i++ {
		bi, err := b.At(i, 0)
		if err != nil {
			return matrixErrorf(opForward, err)
		}
		for j := i + 1; j < n; j++ {
			lji, err := L.At(j, i)
			if err != nil {
				return matrixErrorf(opForward, err)
			}
			bj, err := b.At(j, 0)
			if err != nil {
				return matrixErrorf(opForward, err)
			}
			if err = b.Set(j, 0, bj-lji*bi); err != nil {
				return matrixErrorf(opForward, err)
			}
		}
	}

	return nil
}

// BackwardSubstitute solves U·x = y for upper-triangular U, rewriting the
// column vector y in place into x.
//
// Elimination runs bottom-to-top: row i first drops the contributions of
// columns right of the diagonal, then divides by U[i][i]. An exactly-zero
// diagonal entry fails with ErrZeroPivot; near-zero entries are the
// caller's guard — the decomposition pivot check is the primary one.
//
// Errors: ErrNilMatrix, ErrNonSquare (U), ErrDimensionMismatch (y not an
// n×1 column matching U), ErrZeroPivot, ErrStaleView (stale U view).
// Complexity: O(n²).
func BackwardSubstitute(U, y Matrix) error {
	if err := ValidateSquare(U); err != nil {
		return matrixErrorf(opBackward, err)
	}
	n := U.Rows()
	if err := ValidateColumnVector(y, n); err != nil {
		return matrixErrorf(opBackward, err)
	}

	for i := n - 1; i >= 0; i-- {
		yi, err := y.At(i, 0)
		if err != nil {
			return matrixErrorf(opBackward, err)
		}
		for j := i + 1; j < n; j++ {
			uij, err := U.At(i, j)
			if err != nil {
				return matrixErrorf(opBackward, err)
			}
			yj, err := y.At(j, 0)
			if err != nil {
				return matrixErrorf(opBackward, err)
			}
			yi -= uij * yj
		}
		uii, err := U.At(i, i)
		if err != nil {
			return matrixErrorf(opBackward, err)
		}
		if uii == 0 {
			return matrixErrorf(opBackward, ErrZeroPivot)
		}
		if err = y.Set(i, 0, yi/uii); err != nil {
			return matrixErrorf(opBackward, err)
		}
	}

	return nil
}
