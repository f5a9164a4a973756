// SPDX-License-Identifier: MIT

// Package matrix: universal arithmetic kernels over any Matrix
// implementation: elementwise addition/subtraction/scaling (in place and
// clone-then-delegate), multiplication, transpose, identity, minors,
// cofactor determinant and the Euclidean norm. All kernels perform strict
// fail-fast validation and return sentinel errors on shape violations.
//
// Notes:
//   - In-place kernels mutate their first operand; the non-mutating
//     variants Clone first and delegate, so every Matrix implementation
//     gets them for free.
//   - Fast paths trigger on concrete *Dense operands and walk the flat
//     backing slices directly; fallbacks use At/Set in fixed i→j order.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opIdentity    = "Identity"
	opSubMatrix   = "SubMatrix"
	opDeterminant = "Determinant"
	opNorm        = "Norm2"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so callers keep matching with errors.Is. Call only with
// err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInPlace computes dst = dst + sign*src for sign ∈ {+1, -1}.
// Internal helper for AddInPlace/SubInPlace sharing validation and fast-path.
// Complexity: O(r*c).
func addSubInPlace(dst, src Matrix, sign float64, opTag string) error {
	// Validate shapes match
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			for idx := range dd.data { // deterministic 0..n-1
				dd.data[idx] += sign * ds.data[idx]
			}
			dd.gen++

			return nil
		}
	}

	// Fallback: generic interface version, fixed i→j order.
	rows, cols := dst.Rows(), dst.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d, err := dst.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, err)
			}
			s, err := src.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, err)
			}
			if err = dst.Set(i, j, d+sign*s); err != nil {
				return matrixErrorf(opTag, err)
			}
		}
	}

	return nil
}

// AddInPlace computes dst += src, mutating dst.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnlyView (projection dst).
// Complexity: O(r*c).
func AddInPlace(dst, src Matrix) error { return addSubInPlace(dst, src, +1, opAdd) }

// SubInPlace computes dst -= src, mutating dst.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrReadOnlyView (projection dst).
// Complexity: O(r*c).
func SubInPlace(dst, src Matrix) error { return addSubInPlace(dst, src, -1, opSub) }

// ScaleInPlace multiplies every element of dst by alpha, mutating dst.
// Errors: ErrNilMatrix, ErrReadOnlyView (projection dst).
// Complexity: O(r*c).
func ScaleInPlace(dst Matrix, alpha float64) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opScale, err)
	}

	// Fast path on *Dense
	if dd, ok := dst.(*Dense); ok {
		for idx := range dd.data {
			dd.data[idx] *= alpha
		}
		dd.gen++

		return nil
	}

	// Fallback: generic interface version
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			v, err := dst.At(i, j)
			if err != nil {
				return matrixErrorf(opScale, err)
			}
			if err = dst.Set(i, j, v*alpha); err != nil {
				return matrixErrorf(opScale, err)
			}
		}
	}

	return nil
}

// Add returns a + b as a fresh matrix; operands are not mutated.
// Clone-then-delegate over AddInPlace, so any Matrix implementation gets the
// non-mutating variant for free.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.Clone()
	if err := AddInPlace(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a - b as a fresh matrix; operands are not mutated.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := a.Clone()
	if err := SubInPlace(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale returns alpha*m as a fresh matrix; m is not mutated.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	if err := ScaleInPlace(out, alpha); err != nil {
		return nil, err
	}

	return out, nil
}

// Mul computes the matrix product a·b into a fresh matrix.
// Stage 1 (Validate): a.Cols() == b.Rows().
// Stage 2 (Execute): fast path on *Dense operands with flat indexing and
// i→k→j loop order; fallback via At/Set.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both operands *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				for k := 0; k < inner; k++ {
					aik := da.data[i*inner+k]
					if aik == 0 {
						continue
					}
					for j := 0; j < cols; j++ {
						out.data[i*cols+j] += aik * db.data[k*cols+j]
					}
				}
			}

			return out, nil
		}
	}

	// Fallback: generic interface version.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh matrix.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return out, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// Identity returns an identity matrix of the same shape as m.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Identity(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	n := m.Rows()
	out, err := m.NewInstance(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		if err = out.Set(i, i, 1); err != nil {
			return nil, matrixErrorf(opIdentity, err)
		}
	}

	return out, nil
}

// SubMatrix returns a fresh matrix with the given row and column removed
// (the minor used by cofactor expansion).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrBadShape (1×1 input has no minor).
// Complexity: O(r*c).
func SubMatrix(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opSubMatrix, ErrOutOfRange)
	}
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opSubMatrix, ErrBadShape)
	}

	out, err := NewDense(rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	for i, oi := 0, 0; i < rows; i++ {
		if i == row {
			continue
		}
		for j, oj := 0, 0; j < cols; j++ {
			if j == col {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSubMatrix, err)
			}
			out.data[oi*(cols-1)+oj] = v
			oj++
		}
		oi++
	}

	return out, nil
}

// Determinant computes det(m) by recursive cofactor expansion along the
// first row, the generic path of the engine. Triangular views short-circuit
// to their diagonal product; decomposition offers the O(n³) alternative via
// (*Decomposition).Determinant.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) — intended for small matrices and as a test oracle.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// Triangular views know their determinant in O(n).
	if tv, ok := m.(*TriangularView); ok {
		return tv.Determinant()
	}

	n := m.Rows()
	if n == 1 {
		return m.At(0, 0)
	}

	// Expand along the first row with alternating signs.
	det, sign := 0.0, 1.0
	for j := 0; j < n; j++ {
		v, err := m.At(0, j)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		if v != 0 {
			minor, err := SubMatrix(m, 0, j)
			if err != nil {
				return 0, err
			}
			sub, err := Determinant(minor)
			if err != nil {
				return 0, err
			}
			det += sign * v * sub
		}
		sign = -sign
	}

	return det, nil
}

// Norm2 computes the Euclidean (L2) norm of an n×1 column vector.
// The optimizers use it for the step-size convergence test.
// Errors: ErrNilMatrix, ErrDimensionMismatch (not a column vector).
// Complexity: O(n).
func Norm2(v Matrix) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if err := ValidateColumnVector(v, v.Rows()); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	sum := 0.0
	for i := 0; i < v.Rows(); i++ {
		x, err := v.At(i, 0)
		if err != nil {
			return 0, matrixErrorf(opNorm, err)
		}
		sum += x * x
	}

	return math.Sqrt(sum), nil
}
