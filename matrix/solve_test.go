package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/matrix"
)

// TestForwardSubstitute verifies L·x = b elimination against a
// hand-factorized lower triangle, and that b is rewritten in place.
func TestForwardSubstitute(t *testing.T) {
	// Storage whose strict lower triangle is L = [[1,0],[0.5,1]].
	store := mustDense(t, [][]float64{{2, 4}, {0.5, 3}})
	l, err := matrix.NewTriangularView(store, matrix.Lower)
	require.NoError(t, err)

	b := mustVector(t, 2, 5)
	require.NoError(t, matrix.ForwardSubstitute(l, b))
	// x0 = 2; x1 = 5 - 0.5*2 = 4.
	requireMatrixNear(t, mustVector(t, 2, 4), b, "forward substitution rewrites b into x")
}

// TestBackwardSubstitute verifies U·x = y elimination bottom-to-top with
// the diagonal division.
func TestBackwardSubstitute(t *testing.T) {
	store := mustDense(t, [][]float64{{2, 4}, {99, 3}})
	u, err := matrix.NewTriangularView(store, matrix.Upper)
	require.NoError(t, err)

	y := mustVector(t, 10, 6)
	require.NoError(t, matrix.BackwardSubstitute(u, y))
	// x1 = 6/3 = 2; x0 = (10 - 4*2)/2 = 1.
	requireMatrixNear(t, mustVector(t, 1, 2), y, "backward substitution rewrites y into x")
}

// TestSubstitute_Composed verifies that fs∘bs recovers the solution of
// A·x = b through a real decomposition, matching a reference solution.
func TestSubstitute_Composed(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 3}, {6, 3}})
	dec, err := matrix.Decompose(a, false)
	require.NoError(t, err)

	// Reference: 4x+3y=10, 6x+3y=12 → x=1, y=2.
	b := mustVector(t, 10, 12)
	require.NoError(t, matrix.ForwardSubstitute(dec.L, b))
	require.NoError(t, matrix.BackwardSubstitute(dec.U, b))
	requireMatrixNear(t, mustVector(t, 1, 2), b, "composed substitutions solve A·x = b")
}

// TestSubstitute_DimensionContracts verifies the shape checks on both
// routines.
func TestSubstitute_DimensionContracts(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	square := mustDense(t, [][]float64{{1, 0}, {2, 1}})
	short := mustVector(t, 1)
	wide := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	assert.ErrorIs(t, matrix.ForwardSubstitute(rect, short), matrix.ErrNonSquare, "L must be square")
	assert.ErrorIs(t, matrix.ForwardSubstitute(square, short), matrix.ErrDimensionMismatch, "b length must match")
	assert.ErrorIs(t, matrix.ForwardSubstitute(square, wide), matrix.ErrDimensionMismatch, "b must be a column")
	assert.ErrorIs(t, matrix.BackwardSubstitute(rect, short), matrix.ErrNonSquare, "U must be square")
	assert.ErrorIs(t, matrix.BackwardSubstitute(square, wide), matrix.ErrDimensionMismatch, "y must be a column")
}

// TestBackwardSubstitute_ZeroDiagonal verifies the exactly-zero diagonal
// guard the decomposition pivot check normally prevents.
func TestBackwardSubstitute_ZeroDiagonal(t *testing.T) {
	store := mustDense(t, [][]float64{{2, 4}, {0, 0}})
	u, err := matrix.NewTriangularView(store, matrix.Upper)
	require.NoError(t, err)

	y := mustVector(t, 1, 1)
	assert.ErrorIs(t, matrix.BackwardSubstitute(u, y), matrix.ErrZeroPivot)
}
