// SPDX-License-Identifier: MIT

// Package optimize: Newton-Raphson, the Hessian-driven optimizer at the top
// of the toolkit. Every iteration runs the full decomposition pipeline:
// Hessian → LUP factorization → triangular solves → inverse → Newton step.
package optimize

import (
	"fmt"

	"github.com/katalvlaran/numopt/matrix"
)

// NewtonRaphson minimizes a twice-differentiable function by damped Newton
// iteration: s = H⁻¹(x)·∇f(x), optionally rescaled by an exact
// golden-section line search along the step direction.
//
// Lifecycle per Run: INITIALIZING (seed state, acquire line search) →
// ITERATING → CONVERGED (‖s‖₂ < ε) or DIVERGED (f worsened against the
// best seen). Both terminal states return the best point found, never the
// final iterate. There is no iteration cap; see the package documentation.
type NewtonRaphson struct {
	gradientCore
}

// NewNewtonRaphson returns an unconfigured Newton-Raphson optimizer.
func NewNewtonRaphson() *NewtonRaphson {
	return &NewtonRaphson{gradientCore{status: StatusInitializing}}
}

// Name returns the registry key.
func (n *NewtonRaphson) Name() string { return NewtonRaphsonName }

// Run minimizes f from the configured initial point. f must be
// TwiceDifferentiable: the capability is asserted up front, not mid-loop.
//
// Stage 1 (Initialize): seed solution/best value from the initial point;
// acquire the golden-section line search from the registry — a failed
// lookup is logged and degrades to fixed unit steps along the Newton
// direction.
// Stage 2 (Iterate): compute g = ∇f(current) and H⁻¹ via pivoted
// decomposition, form s = H⁻¹·g, optionally minimize
// φ(t) = f(current + t·s) from t = 0 and rescale s ← t*·s.
// Stage 3 (Terminate): ‖s‖₂ < ε converges; a worsening f(current) against
// the best seen diverges. Both return the best-so-far solution.
//
// The update applies current + s when a line search rescaled the step and
// current − s when none did: t* carries the descent sign along +s, the raw
// Newton step descends by subtraction. The split is preserved observed
// behavior — flip either branch and convergence breaks on that path.
//
// Errors: ErrNilFunction, ErrNotDifferentiable, ErrNoInitialPoint,
// matrix.ErrSingularPivot / matrix.ErrZeroPivot from a degenerate Hessian,
// and any evaluation failure of f.
func (n *NewtonRaphson) Run(f Function) (matrix.Matrix, error) {
	n.status, n.iterations = StatusInitializing, 0
	if f == nil {
		return nil, ErrNilFunction
	}
	tf, ok := f.(TwiceDifferentiable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", NewtonRaphsonName, ErrNotDifferentiable)
	}
	if !n.configured {
		return nil, ErrNoInitialPoint
	}
	ls := n.acquireLineSearch(NewtonRaphsonName)

	solution := n.cfg.InitialPoint.Clone()
	bestValue, err := tf.Value(solution)
	if err != nil {
		return nil, err
	}
	current := solution.Clone()

	n.status = StatusIterating
	for {
		n.iterations++

		grad, err := tf.Gradient(current)
		if err != nil {
			return nil, err
		}
		hess, err := tf.Hessian(current)
		if err != nil {
			return nil, err
		}
		hessInv, err := matrix.Invert(hess)
		if err != nil {
			return nil, fmt.Errorf("%s: hessian: %w", NewtonRaphsonName, err)
		}
		step, err := matrix.Mul(hessInv, grad)
		if err != nil {
			return nil, err
		}
		if ls != nil {
			if err = n.rescaleStep(ls, tf, current, step); err != nil {
				return nil, err
			}
		}

		norm, err := matrix.Norm2(step)
		if err != nil {
			return nil, err
		}
		if norm < n.cfg.Epsilon {
			n.status = StatusConverged
			n.Log.printf(LogRun, "newton: converged after %d iterations\n", n.iterations)

			return solution, nil
		}

		if ls != nil {
			err = matrix.AddInPlace(current, step)
		} else {
			err = matrix.SubInPlace(current, step)
		}
		if err != nil {
			return nil, err
		}

		currentValue, err := tf.Value(current)
		if err != nil {
			return nil, err
		}
		n.Log.printf(LogIter, "newton: iter=%d f=%g |step|=%g\n", n.iterations, currentValue, norm)
		if currentValue > bestValue {
			n.status = StatusDiverged
			n.Log.printf(LogRun, "newton: diverging after %d iterations, returning best point\n", n.iterations)

			return solution, nil
		}
		solution = current.Clone()
		bestValue = currentValue
	}
}
