// SPDX-License-Identifier: MIT

// Package optimize: shared scaffolding of the gradient family
// (Newton-Raphson, gradient descent): configuration, run state, the
// once-per-run line-search acquisition with its degraded mode, and the
// step rescaling against the 1-D surrogate.
package optimize

import (
	"github.com/katalvlaran/numopt/matrix"
)

// gradientCore carries the state and collaborators every gradient-family
// optimizer shares. Concrete algorithms embed it and add their own step
// computation.
type gradientCore struct {
	cfg        Config
	configured bool
	status     Status
	iterations int

	// Registry supplies the golden-section line search, consulted at most
	// once per Run. Nil means no registry is available.
	Registry *Registry

	// LineSearch toggles the exact line search. When the lookup fails the
	// run degrades to fixed steps instead of failing.
	LineSearch bool

	// Log receives trace output; nil is silent.
	Log *Logger
}

// Configure installs the initial point (an n×1 column vector) and epsilon.
// Errors: ErrNoInitialPoint, ErrBadEpsilon, matrix.ErrDimensionMismatch.
func (c *gradientCore) Configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if err := matrix.ValidateColumnVector(cfg.InitialPoint, cfg.InitialPoint.Rows()); err != nil {
		return err
	}
	c.cfg = cfg
	c.configured = true

	return nil
}

// Status reports the state after the most recent Run.
func (c *gradientCore) Status() Status { return c.status }

// Iterations reports the iteration count of the most recent Run.
func (c *gradientCore) Iterations() int { return c.iterations }

// setLineSearch wires the registry and toggle; the config builder uses it.
func (c *gradientCore) setLineSearch(reg *Registry, enabled bool) {
	c.Registry = reg
	c.LineSearch = enabled
}

// acquireLineSearch obtains a configured golden-section instance from the
// registry, or nil in the degraded fixed-step mode. Lookup and
// configuration failures are logged, never propagated: absence of a line
// search must not crash the optimizer.
func (c *gradientCore) acquireLineSearch(caller string) Algorithm {
	if !c.LineSearch {
		return nil
	}
	if c.Registry == nil {
		c.Log.printf(LogRun, "%s: no registry available, using fixed steps\n", caller)

		return nil
	}
	inst, err := c.Registry.GetInstance(GoldenRatioName)
	if err != nil {
		c.Log.printf(LogRun, "%s: line search unavailable (%v), using fixed steps\n", caller, err)

		return nil
	}

	// The 1-D minimization starts from t = 0 with the caller's epsilon.
	zero, err := matrix.NewVector(0)
	if err != nil {
		return nil
	}
	if err = inst.Configure(Config{InitialPoint: zero, Epsilon: c.cfg.Epsilon}); err != nil {
		c.Log.printf(LogRun, "%s: line search rejected configuration (%v), using fixed steps\n", caller, err)

		return nil
	}

	return inst
}

// rescaleStep minimizes the surrogate φ(t) = f(current + t·step) with the
// supplied line search and scales step by the optimal t in place.
func (c *gradientCore) rescaleStep(ls Algorithm, f Function, current, step matrix.Matrix) error {
	lambda, err := ls.Run(lineFunc{f: f, base: current, dir: step})
	if err != nil {
		return err
	}
	t, err := scalarOf(lambda)
	if err != nil {
		return err
	}

	return matrix.ScaleInPlace(step, t)
}

// GradientDescent is the first-order optimizer of the family: the raw
// gradient is the step, optionally rescaled by the exact line search, with
// the same convergence and divergence contract as Newton-Raphson.
type GradientDescent struct {
	gradientCore
}

// NewGradientDescent returns an unconfigured gradient-descent optimizer.
func NewGradientDescent() *GradientDescent {
	return &GradientDescent{gradientCore{status: StatusInitializing}}
}

// Name returns the registry key.
func (g *GradientDescent) Name() string { return GradientDescentName }

// Run minimizes f from the configured initial point. f must be at least
// Differentiable. The return value is the best point seen before the
// stopping condition, whether that was convergence or divergence.
//
// Errors: ErrNilFunction, ErrNotDifferentiable, ErrNoInitialPoint and any
// evaluation failure.
func (g *GradientDescent) Run(f Function) (matrix.Matrix, error) {
	g.status, g.iterations = StatusInitializing, 0
	if f == nil {
		return nil, ErrNilFunction
	}
	df, ok := f.(Differentiable)
	if !ok {
		return nil, ErrNotDifferentiable
	}
	if !g.configured {
		return nil, ErrNoInitialPoint
	}
	ls := g.acquireLineSearch(GradientDescentName)

	solution := g.cfg.InitialPoint.Clone()
	bestValue, err := df.Value(solution)
	if err != nil {
		return nil, err
	}
	current := solution.Clone()

	g.status = StatusIterating
	for {
		g.iterations++
		step, err := df.Gradient(current)
		if err != nil {
			return nil, err
		}
		if ls != nil {
			if err = g.rescaleStep(ls, df, current, step); err != nil {
				return nil, err
			}
		}

		norm, err := matrix.Norm2(step)
		if err != nil {
			return nil, err
		}
		if norm < g.cfg.Epsilon {
			g.status = StatusConverged
			g.Log.printf(LogRun, "gradient-descent: converged after %d iterations\n", g.iterations)

			return solution, nil
		}

		// Same sign split as Newton-Raphson: the line-search t* carries the
		// descent sign along +step, the fixed-step path subtracts the raw
		// gradient.
		if ls != nil {
			err = matrix.AddInPlace(current, step)
		} else {
			err = matrix.SubInPlace(current, step)
		}
		if err != nil {
			return nil, err
		}

		currentValue, err := df.Value(current)
		if err != nil {
			return nil, err
		}
		g.Log.printf(LogIter, "gradient-descent: iter=%d f=%g |step|=%g\n", g.iterations, currentValue, norm)
		if currentValue > bestValue {
			g.status = StatusDiverged
			g.Log.printf(LogRun, "gradient-descent: diverging after %d iterations, returning best point\n", g.iterations)

			return solution, nil
		}
		solution = current.Clone()
		bestValue = currentValue
	}
}
