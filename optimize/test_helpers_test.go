package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/matrix"
	"github.com/katalvlaran/numopt/optimize"
)

// point builds an n×1 column vector or fails the test immediately.
func point(t *testing.T, values ...float64) *matrix.Dense {
	t.Helper()
	v, err := matrix.NewVector(values...)
	require.NoError(t, err)

	return v
}

// coords flattens an n×1 result into a plain slice for assertions.
func coords(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, 0)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// shiftedBowl is f(x,y) = (x-1)² + (y-2)², the classic well-conditioned
// fixture with its minimum at (1,2) and Hessian 2·I everywhere.
type shiftedBowl struct{}

func (shiftedBowl) Value(x matrix.Matrix) (float64, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return 0, err
	}
	b, err := x.At(1, 0)
	if err != nil {
		return 0, err
	}

	return (a-1)*(a-1) + (b-2)*(b-2), nil
}

func (shiftedBowl) Gradient(x matrix.Matrix) (matrix.Matrix, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return nil, err
	}
	b, err := x.At(1, 0)
	if err != nil {
		return nil, err
	}

	return matrix.NewVector(2*(a-1), 2*(b-2))
}

func (shiftedBowl) Hessian(matrix.Matrix) (matrix.Matrix, error) {
	return matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
}

// downwardParabola is f(x) = -x², a pure maximum: every Newton step moves
// uphill in value, which exercises the divergence path.
type downwardParabola struct{}

func (downwardParabola) Value(x matrix.Matrix) (float64, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return 0, err
	}

	return -a * a, nil
}

func (downwardParabola) Gradient(x matrix.Matrix) (matrix.Matrix, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return nil, err
	}

	return matrix.NewVector(-2 * a)
}

func (downwardParabola) Hessian(matrix.Matrix) (matrix.Matrix, error) {
	return matrix.NewDenseFromRows([][]float64{{-2}})
}

// shallowParabola is f(x) = 0.4(x-1)²: its fixed-step gradient iteration
// contracts toward 1, so the no-line-search path converges.
type shallowParabola struct{}

func (shallowParabola) Value(x matrix.Matrix) (float64, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return 0, err
	}

	return 0.4 * (a - 1) * (a - 1), nil
}

func (shallowParabola) Gradient(x matrix.Matrix) (matrix.Matrix, error) {
	a, err := x.At(0, 0)
	if err != nil {
		return nil, err
	}

	return matrix.NewVector(0.8 * (a - 1))
}

// valueOnly strips a function down to the bare Value capability.
type valueOnly struct{ f optimize.Function }

func (v valueOnly) Value(x matrix.Matrix) (float64, error) { return v.f.Value(x) }
