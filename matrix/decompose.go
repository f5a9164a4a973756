// SPDX-License-Identifier: MIT

// Package matrix: in-place Doolittle LU/LUP factorization and the
// inversion/solve facades built on it.
//
// Decompose rewrites the input matrix itself: after it returns, the strict
// lower triangle holds the elimination multipliers (L without its unit
// diagonal) and the diagonal-and-above holds U. The returned TriangularView
// pair exposes both factors over that single storage without copying.
package matrix

import "math"

// PivotTol is the partial-pivoting singularity threshold: a pivot candidate
// whose magnitude is at or below it fails the factorization.
const PivotTol = 1e-9

// Operation tags for this file's facades.
const (
	opDecompose = "Decompose"
	opInverse   = "Invert"
	opSolve     = "Solve"
)

// Decomposition is the result of an LU/LUP factorization.
//
// L and U alias the factorized input; P is the permutation matrix such that
// P·A = L·U when pivoting was requested, and nil for plain LU. Swaps counts
// the row exchanges this factorization performed (it feeds the determinant
// sign and is independent of the input's cumulative RowSwaps counter).
type Decomposition struct {
	L, U  *TriangularView
	P     Matrix
	swaps int
}

// Swaps reports the number of row exchanges performed by this factorization.
func (d *Decomposition) Swaps() int {
	return d.swaps
}

// Determinant computes det(A) from the factorization:
//
//	det(A) = (-1)^swaps · det(L) · det(U)
//
// where det(L) = 1 (unit diagonal) and det(U) is its diagonal product.
// Errors: ErrStaleView when the factorized matrix was mutated since.
// Complexity: O(n).
func (d *Decomposition) Determinant() (float64, error) {
	detU, err := d.U.Determinant()
	if err != nil {
		return 0, err
	}
	if d.swaps%2 != 0 {
		return -detU, nil
	}

	return detU, nil
}

// Decompose performs Doolittle factorization of the square matrix a, in
// place, with partial pivoting when pivot is true (LUP) and without it
// otherwise (plain LU).
//
// Implementation:
//   - Stage 1: Validate a (not nil, square); build P = I when pivoting.
//   - Stage 2: For each pivot column i = 0..n-2:
//     – pivoting: pick the largest-|·| candidate in rows i..n-1 of column i;
//     magnitude ≤ PivotTol fails with ErrSingularPivot; swap the winning
//     row into place in both a and P, recording the exchange.
//     – elimination: for each row j below i, store the multiplier
//     a[j][i]/a[i][i] back into a[j][i] (the cell becomes part of L), then
//     subtract multiplier·row(i) from row j right of the pivot column.
//   - Stage 3: Wrap the rewritten storage in Lower/Upper views.
//
// The input is consumed: its prior contents are destroyed, and any views
// from an earlier factorization of the same matrix become stale.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingularPivot: no usable pivot under partial pivoting.
//   - ErrZeroPivot: exactly-zero divisor, reachable only with pivot=false.
//
// Complexity: O(n³) time, O(n²) extra only for P.
func Decompose(a Matrix, pivot bool) (*Decomposition, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}

	n := a.Rows()
	dec := &Decomposition{}
	if pivot {
		p, err := Identity(a)
		if err != nil {
			return nil, matrixErrorf(opDecompose, err)
		}
		dec.P = p
	}

	if da, ok := a.(*Dense); ok {
		if err := decomposeDense(da, dec, n, pivot); err != nil {
			return nil, err
		}
	} else if err := decomposeGeneric(a, dec, n, pivot); err != nil {
		return nil, err
	}

	// Views capture the post-factorization generation.
	var err error
	if dec.L, err = NewTriangularView(a, Lower); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}
	if dec.U, err = NewTriangularView(a, Upper); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}

	return dec, nil
}

// decomposeDense is the fast path operating on the flat backing slice.
func decomposeDense(a *Dense, dec *Decomposition, n int, pivot bool) error {
	d := a.data
	for i := 0; i < n-1; i++ {
		if pivot {
			// Scan column i over rows i..n-1 for the largest magnitude.
			maxRow := i
			maxAbs := math.Abs(d[i*n+i])
			for j := i + 1; j < n; j++ {
				if abs := math.Abs(d[j*n+i]); abs > maxAbs {
					maxAbs = abs
					maxRow = j
				}
			}
			if maxAbs <= PivotTol {
				return matrixErrorf(opDecompose, ErrSingularPivot)
			}
			if maxRow != i {
				if err := a.SwapRows(maxRow, i); err != nil {
					return matrixErrorf(opDecompose, err)
				}
				if err := dec.P.SwapRows(maxRow, i); err != nil {
					return matrixErrorf(opDecompose, err)
				}
				dec.swaps++
			}
		}
		piv := d[i*n+i]
		for j := i + 1; j < n; j++ {
			if piv == 0 {
				// Only reachable without pivoting.
				return matrixErrorf(opDecompose, ErrZeroPivot)
			}
			mult := d[j*n+i] / piv
			d[j*n+i] = mult
			for k := i + 1; k < n; k++ {
				d[j*n+k] -= mult * d[i*n+k]
			}
		}
	}
	a.gen++

	return nil
}

// decomposeGeneric is the interface fallback using At/Set in the same fixed
// visitation order as the fast path.
func decomposeGeneric(a Matrix, dec *Decomposition, n int, pivot bool) error {
	at := func(i, j int) (float64, error) { return a.At(i, j) }
	for i := 0; i < n-1; i++ {
		if pivot {
			maxRow := i
			v, err := at(i, i)
			if err != nil {
				return matrixErrorf(opDecompose, err)
			}
			maxAbs := math.Abs(v)
			for j := i + 1; j < n; j++ {
				if v, err = at(j, i); err != nil {
					return matrixErrorf(opDecompose, err)
				}
				if abs := math.Abs(v); abs > maxAbs {
					maxAbs = abs
					maxRow = j
				}
			}
			if maxAbs <= PivotTol {
				return matrixErrorf(opDecompose, ErrSingularPivot)
			}
			if maxRow != i {
				if err = a.SwapRows(maxRow, i); err != nil {
					return matrixErrorf(opDecompose, err)
				}
				if err = dec.P.SwapRows(maxRow, i); err != nil {
					return matrixErrorf(opDecompose, err)
				}
				dec.swaps++
			}
		}
		piv, err := at(i, i)
		if err != nil {
			return matrixErrorf(opDecompose, err)
		}
		for j := i + 1; j < n; j++ {
			if piv == 0 {
				return matrixErrorf(opDecompose, ErrZeroPivot)
			}
			v, err := at(j, i)
			if err != nil {
				return matrixErrorf(opDecompose, err)
			}
			mult := v / piv
			if err = a.Set(j, i, mult); err != nil {
				return matrixErrorf(opDecompose, err)
			}
			for k := i + 1; k < n; k++ {
				ajk, err := at(j, k)
				if err != nil {
					return matrixErrorf(opDecompose, err)
				}
				aik, err := at(i, k)
				if err != nil {
					return matrixErrorf(opDecompose, err)
				}
				if err = a.Set(j, k, ajk-mult*aik); err != nil {
					return matrixErrorf(opDecompose, err)
				}
			}
		}
	}

	return nil
}

// Invert computes A⁻¹ via pivoted decomposition of a clone: A·X = I is
// solved column by column through the triangular views and the solver pair,
// and the solved columns form the inverse. The input is not mutated.
//
// Errors: whatever Decompose fails with, ErrNonSquare first.
// Complexity: O(n³).
func Invert(a Matrix) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	work := a.Clone()
	dec, err := Decompose(work, true)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.Rows()
	inv, err := a.NewInstance(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for col := 0; col < n; col++ {
		// P·e_col is column col of P.
		b, err := NewDense(n, 1)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			v, err := dec.P.At(i, col)
			if err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			b.data[i] = v
		}
		if err = ForwardSubstitute(dec.L, b); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if err = BackwardSubstitute(dec.U, b); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			if err = inv.Set(i, col, b.data[i]); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
	}

	return inv, nil
}

// Solve computes x for A·x = b without mutating either input: a clone of A
// is factorized (pivoted when pivot is true), b is permuted by P when
// present, then forward- and backward-substituted.
//
// Errors: decomposition failures, ErrDimensionMismatch (b not n×1).
// Complexity: O(n³) dominated by the factorization.
func Solve(a, b Matrix, pivot bool) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateColumnVector(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	work := a.Clone()
	dec, err := Decompose(work, pivot)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var x Matrix
	if dec.P != nil {
		// Permute the right-hand side: L·U·x = P·b.
		if x, err = Mul(dec.P, b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	} else {
		x = b.Clone()
	}
	if err = ForwardSubstitute(dec.L, x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = BackwardSubstitute(dec.U, x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
