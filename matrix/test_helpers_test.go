package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/matrix"
)

// tol is the shared floating comparison tolerance for reconstruction checks.
const tol = 1e-9

// mustDense builds a Dense from rows or fails the test immediately.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "test fixture must be rectangular")

	return m
}

// mustVector builds an n×1 column vector or fails the test immediately.
func mustVector(t *testing.T, values ...float64) *matrix.Dense {
	t.Helper()
	v, err := matrix.NewVector(values...)
	require.NoError(t, err, "test fixture vector must be non-empty")

	return v
}

// requireMatrixNear asserts element-wise equality of two matrices within tol.
func requireMatrixNear(t *testing.T, want, got matrix.Matrix, msg string) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "%s: row count", msg)
	require.Equal(t, want.Cols(), got.Cols(), "%s: column count", msg)
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, tol, "%s: element (%d,%d)", msg, i, j)
		}
	}
}
