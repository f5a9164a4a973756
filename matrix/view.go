// SPDX-License-Identifier: MIT

// Package matrix: TriangularView, the read-only L/U projection over a
// single factorized matrix. Views alias the owner's storage and never copy.
package matrix

// TriangularKind selects which half of the factorized storage a view reads.
//
//   - Lower — strict lower triangle is read, the diagonal is implicitly 1,
//     everything above is implicitly 0 (the L factor of Doolittle).
//   - Upper — diagonal and above are read, everything below is implicitly 0
//     (the U factor).
type TriangularKind int

const (
	// Lower reads the strict lower triangle with an implicit unit diagonal.
	Lower TriangularKind = iota

	// Upper reads the diagonal and the upper triangle.
	Upper
)

// TriangularView is a read-only projection over one shared, already
// factorized matrix. It does not copy data: L and U views returned by
// Decompose alias the same storage.
//
// Validity contract: a view is invalidated when its owner is mutated after
// the view was created (for example by factorizing the same matrix twice).
// When the owner is a *Dense this is enforced with a generation guard and
// stale reads return ErrStaleView; for other owners it holds by convention.
type TriangularView struct {
	owner   Matrix
	kind    TriangularKind
	gen     uint64 // owner generation captured at creation
	guarded bool   // true when owner is *Dense and gen is meaningful
}

// NewTriangularView wraps an already factorized matrix in a read-only L or
// U projection. Decompose is the usual producer; the constructor is exported
// for factorizations performed by hand.
// Errors: ErrNilMatrix.
func NewTriangularView(owner Matrix, kind TriangularKind) (*TriangularView, error) {
	if err := ValidateNotNil(owner); err != nil {
		return nil, err
	}
	v := &TriangularView{owner: owner, kind: kind}
	if d, ok := owner.(*Dense); ok {
		v.gen = d.gen
		v.guarded = true
	}

	return v, nil
}

// fresh reports whether the owner is still in the state the view captured.
func (v *TriangularView) fresh() bool {
	if !v.guarded {
		return true
	}
	d, ok := v.owner.(*Dense)

	return ok && d.gen == v.gen
}

// Rows returns the owner's row count.
// Complexity: O(1).
func (v *TriangularView) Rows() int {
	return v.owner.Rows()
}

// Cols returns the owner's column count.
// Complexity: O(1).
func (v *TriangularView) Cols() int {
	return v.owner.Cols()
}

// At retrieves the projected element at (row, col): stored values inside
// the view's triangle, implicit 1 on the Lower diagonal, implicit 0
// elsewhere.
// Errors: ErrOutOfRange, ErrStaleView (owner mutated after creation).
// Complexity: O(1).
func (v *TriangularView) At(row, col int) (float64, error) {
	if !v.fresh() {
		return 0, ErrStaleView
	}
	// Bounds come from the owner; probe the stored cell first.
	stored, err := v.owner.At(row, col)
	if err != nil {
		return 0, err
	}

	if v.kind == Lower {
		if row == col {
			return 1, nil
		}
		if row > col {
			return stored, nil
		}

		return 0, nil
	}
	// Upper: diagonal and above are stored.
	if col >= row {
		return stored, nil
	}

	return 0, nil
}

// Set is not supported: views project shared factorized storage.
// Returns ErrReadOnlyView always.
func (v *TriangularView) Set(int, int, float64) error {
	return ErrReadOnlyView
}

// SwapRows is not supported: views project shared factorized storage.
// Returns ErrReadOnlyView always.
func (v *TriangularView) SwapRows(int, int) error {
	return ErrReadOnlyView
}

// RowSwaps reports 0: a view performs no swaps of its own. The swap count
// that feeds the determinant sign lives on the Decomposition.
func (v *TriangularView) RowSwaps() int {
	return 0
}

// Clone returns another view over the same owner and generation. The
// underlying storage is shared, matching the aliasing contract.
// Complexity: O(1).
func (v *TriangularView) Clone() Matrix {
	clone := *v

	return &clone
}

// NewInstance delegates to the owner's factory, returning a fresh mutable
// zero matrix of the requested shape.
func (v *TriangularView) NewInstance(rows, cols int) (Matrix, error) {
	return v.owner.NewInstance(rows, cols)
}

// Determinant of a triangular matrix is the product of its diagonal:
// identically 1 for Lower (unit diagonal), the stored diagonal product for
// Upper.
// Errors: ErrNonSquare, ErrStaleView.
// Complexity: O(n).
func (v *TriangularView) Determinant() (float64, error) {
	if err := ValidateSquare(v.owner); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if !v.fresh() {
		return 0, matrixErrorf(opDeterminant, ErrStaleView)
	}
	if v.kind == Lower {
		return 1, nil
	}

	det := 1.0
	for i := 0; i < v.owner.Rows(); i++ {
		d, err := v.owner.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		det *= d
	}

	return det, nil
}
