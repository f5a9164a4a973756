// SPDX-License-Identifier: MIT

// Package optimize: the function capability interfaces. The core never
// inspects a function beyond these three calls: value at a point, gradient
// at a point, Hessian at a point. Points are n×1 column vectors.
package optimize

import "github.com/katalvlaran/numopt/matrix"

// Function is the minimal capability: a scalar value at a point.
// The 1-D line-search surrogate needs nothing more.
type Function interface {
	// Value evaluates the function at the given column-vector point.
	Value(x matrix.Matrix) (float64, error)
}

// Differentiable adds the gradient capability required by the gradient
// family of optimizers.
type Differentiable interface {
	Function

	// Gradient evaluates ∇f at the given point as an n×1 column vector.
	Gradient(x matrix.Matrix) (matrix.Matrix, error)
}

// TwiceDifferentiable adds the Hessian capability required by
// Newton-Raphson.
type TwiceDifferentiable interface {
	Differentiable

	// Hessian evaluates the n×n matrix of second partial derivatives at the
	// given point.
	Hessian(x matrix.Matrix) (matrix.Matrix, error)
}

// Func1D adapts a plain scalar function of one variable into a Function
// over 1×1 points, the shape golden-section search works with.
type Func1D func(t float64) float64

// Value evaluates the wrapped function at a 1×1 point.
// Errors: ErrScalarPoint when x is not 1×1.
func (f Func1D) Value(x matrix.Matrix) (float64, error) {
	t, err := scalarOf(x)
	if err != nil {
		return 0, err
	}

	return f(t), nil
}

// scalarOf extracts the single element of a 1×1 point.
func scalarOf(x matrix.Matrix) (float64, error) {
	if x == nil || x.Rows() != 1 || x.Cols() != 1 {
		return 0, ErrScalarPoint
	}

	return x.At(0, 0)
}

// lineFunc is the 1-D surrogate φ(t) = f(base + t·dir) an optimizer hands
// to golden-section search. It only carries the Value capability.
type lineFunc struct {
	f         Function
	base, dir matrix.Matrix
}

// Value evaluates the surrogate at the 1×1 step-length point t.
func (s lineFunc) Value(t matrix.Matrix) (float64, error) {
	tv, err := scalarOf(t)
	if err != nil {
		return 0, err
	}
	scaled, err := matrix.Scale(s.dir, tv)
	if err != nil {
		return 0, err
	}
	probe, err := matrix.Add(s.base, scaled)
	if err != nil {
		return 0, err
	}

	return s.f.Value(probe)
}
