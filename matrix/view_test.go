package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/matrix"
)

// viewFixture returns L and U views over a hand-factorized 2×2 store:
// the strict lower triangle holds the multiplier, the rest is U.
func viewFixture(t *testing.T) (owner *matrix.Dense, l, u *matrix.TriangularView) {
	t.Helper()
	owner = mustDense(t, [][]float64{{2, 3}, {4, 5}})
	var err error
	l, err = matrix.NewTriangularView(owner, matrix.Lower)
	require.NoError(t, err)
	u, err = matrix.NewTriangularView(owner, matrix.Upper)
	require.NoError(t, err)

	return owner, l, u
}

// TestTriangularView_Projection verifies the implicit-value rules: unit
// diagonal and implicit upper zeros for L, implicit lower zeros for U, and
// shared storage for everything else.
func TestTriangularView_Projection(t *testing.T) {
	_, l, u := viewFixture(t)

	expect := func(m matrix.Matrix, i, j int, want float64, msg string) {
		v, err := m.At(i, j)
		require.NoError(t, err)
		assert.Equal(t, want, v, msg)
	}

	expect(l, 0, 0, 1, "L diagonal is implicitly 1")
	expect(l, 1, 1, 1, "L diagonal is implicitly 1")
	expect(l, 1, 0, 4, "L reads the stored strict lower triangle")
	expect(l, 0, 1, 0, "L above the diagonal is implicitly 0")

	expect(u, 0, 0, 2, "U reads the stored diagonal")
	expect(u, 0, 1, 3, "U reads above the diagonal")
	expect(u, 1, 1, 5, "U reads the stored diagonal")
	expect(u, 1, 0, 0, "U below the diagonal is implicitly 0")

	_, err := l.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "views bounds-check like their owner")
}

// TestTriangularView_ReadOnly verifies that mutation through a view is
// rejected with ErrReadOnlyView.
func TestTriangularView_ReadOnly(t *testing.T) {
	_, l, u := viewFixture(t)

	assert.ErrorIs(t, l.Set(1, 0, 9), matrix.ErrReadOnlyView, "Set on L view")
	assert.ErrorIs(t, u.Set(0, 0, 9), matrix.ErrReadOnlyView, "Set on U view")
	assert.ErrorIs(t, l.SwapRows(0, 1), matrix.ErrReadOnlyView, "SwapRows on a view")
	assert.Zero(t, l.RowSwaps(), "views never swap")
}

// TestTriangularView_Determinant verifies det(L)=1 and det(U)=∏diag.
func TestTriangularView_Determinant(t *testing.T) {
	_, l, u := viewFixture(t)

	dl, err := l.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 1.0, dl, "unit-diagonal L")

	du, err := u.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, du, tol, "product of U's diagonal")
}

// TestTriangularView_Staleness verifies the generation guard: any mutation
// of the owner after view creation makes reads fail with ErrStaleView.
func TestTriangularView_Staleness(t *testing.T) {
	owner, l, u := viewFixture(t)

	require.NoError(t, owner.Set(0, 0, 42))

	_, err := l.At(1, 0)
	assert.ErrorIs(t, err, matrix.ErrStaleView, "L read after owner mutation")
	_, err = u.Determinant()
	assert.ErrorIs(t, err, matrix.ErrStaleView, "U determinant after owner mutation")

	// A clone of a stale view shares the captured generation: still stale.
	_, err = l.Clone().At(1, 0)
	assert.ErrorIs(t, err, matrix.ErrStaleView, "clones share the validity window")
}

// TestTriangularView_RefactorizationInvalidates verifies the contract that
// factoring the same matrix twice invalidates the first factorization's
// views.
func TestTriangularView_RefactorizationInvalidates(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 3}, {6, 3}})
	first, err := matrix.Decompose(a, false)
	require.NoError(t, err)

	// Second factorization mutates the shared storage again.
	_, err = matrix.Decompose(a, false)
	require.NoError(t, err)

	_, err = first.U.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrStaleView, "first factorization's views must be stale")
}
