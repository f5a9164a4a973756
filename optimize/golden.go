// SPDX-License-Identifier: MIT

// Package optimize: golden-section search, the derivative-free 1-D
// minimizer consumed as the exact line search of the gradient family.
package optimize

import "github.com/katalvlaran/numopt/matrix"

// goldenK is the golden ratio constant (√5−1)/2 used to place the two
// interior probe points.
const goldenK = 0.6180339887498949

// GoldenRatio narrows a unimodal interval by the golden ratio until its
// width drops below epsilon, then reports the midpoint as the minimizer.
//
// The interval comes either from SetInterval or, when none was supplied,
// from UnimodalInterval around the configured 1×1 initial point. Points and
// results are 1×1 matrices so the algorithm fits the shared surface.
type GoldenRatio struct {
	cfg        Config
	configured bool

	left, right float64
	hasInterval bool

	status     Status
	iterations int

	// Log receives trace output; nil is silent.
	Log *Logger
}

// NewGoldenRatio returns an unconfigured golden-section search.
func NewGoldenRatio() *GoldenRatio {
	return &GoldenRatio{status: StatusInitializing}
}

// Name returns the registry key.
func (g *GoldenRatio) Name() string { return GoldenRatioName }

// SetInterval installs an explicit search interval [left, right], skipping
// the bracketing phase on the next Run.
func (g *GoldenRatio) SetInterval(left, right float64) {
	if left > right {
		left, right = right, left
	}
	g.left, g.right = left, right
	g.hasInterval = true
}

// Configure installs the 1×1 initial point and epsilon.
// Errors: ErrNoInitialPoint, ErrBadEpsilon, ErrScalarPoint (point not 1×1).
func (g *GoldenRatio) Configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if _, err := scalarOf(cfg.InitialPoint); err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true

	return nil
}

// Status reports the state after the most recent Run.
func (g *GoldenRatio) Status() Status { return g.status }

// Iterations reports the narrowing iterations of the most recent Run.
func (g *GoldenRatio) Iterations() int { return g.iterations }

// Run locates the 1-D minimizer of f.
//
// Stage 1 (Bracket): take the explicit interval or bracket one around the
// initial point via UnimodalInterval.
// Stage 2 (Narrow): place interior probes c = r − k·(r−l), d = l + k·(r−l),
// discard the sub-interval on the side of the larger probe value and reuse
// the surviving probe, until r − l < epsilon.
// Stage 3 (Finalize): return the interval midpoint as a 1×1 matrix.
//
// Errors: ErrNilFunction, ErrNoInitialPoint (unconfigured), evaluation
// failures of f.
// Complexity: O(log((r−l)/ε)) evaluations.
func (g *GoldenRatio) Run(f Function) (matrix.Matrix, error) {
	g.status = StatusInitializing
	g.iterations = 0
	if f == nil {
		return nil, ErrNilFunction
	}
	if !g.configured {
		return nil, ErrNoInitialPoint
	}

	l, r := g.left, g.right
	if !g.hasInterval {
		x0, err := scalarOf(g.cfg.InitialPoint)
		if err != nil {
			return nil, err
		}
		if l, r, err = UnimodalInterval(f, x0); err != nil {
			return nil, err
		}
	}

	// One reusable 1×1 probe point.
	point, err := matrix.NewVector(l)
	if err != nil {
		return nil, err
	}
	eval := func(t float64) (float64, error) {
		if err := point.Set(0, 0, t); err != nil {
			return 0, err
		}

		return f.Value(point)
	}

	c := r - goldenK*(r-l)
	d := l + goldenK*(r-l)
	fc, err := eval(c)
	if err != nil {
		return nil, err
	}
	fd, err := eval(d)
	if err != nil {
		return nil, err
	}

	g.status = StatusIterating
	for r-l > g.cfg.Epsilon {
		g.iterations++
		if fc < fd {
			// The minimum lives left of d: discard (d, r].
			r, d, fd = d, c, fc
			c = r - goldenK*(r-l)
			if fc, err = eval(c); err != nil {
				return nil, err
			}
		} else {
			// The minimum lives right of c: discard [l, c).
			l, c, fc = c, d, fd
			d = l + goldenK*(r-l)
			if fd, err = eval(d); err != nil {
				return nil, err
			}
		}
		g.Log.printf(LogIter, "golden: iter=%d interval=[%g,%g]\n", g.iterations, l, r)
	}

	g.status = StatusConverged
	g.Log.printf(LogRun, "golden: converged after %d iterations, minimizer=%g\n", g.iterations, (l+r)/2)

	return matrix.NewVector((l + r) / 2)
}
