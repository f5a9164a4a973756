// SPDX-License-Identifier: MIT
// Package optimize: sentinel error set. All algorithms return these
// sentinels and tests check them via errors.Is; none of them panics on
// user-triggered conditions.

package optimize

import "errors"

var (
	// ErrUnknownAlgorithm indicates a Registry lookup for a name that was
	// never registered.
	ErrUnknownAlgorithm = errors.New("optimize: unknown algorithm name")

	// ErrNilFunction indicates that a nil Function was passed to Run or to
	// UnimodalInterval.
	ErrNilFunction = errors.New("optimize: function is nil")

	// ErrNotDifferentiable indicates that the supplied function does not
	// expose the gradient/Hessian capability the algorithm requires.
	ErrNotDifferentiable = errors.New("optimize: function lacks required derivatives")

	// ErrNoInitialPoint indicates a Run without a configured initial point.
	ErrNoInitialPoint = errors.New("optimize: initial point not configured")

	// ErrBadEpsilon indicates a non-positive convergence epsilon.
	ErrBadEpsilon = errors.New("optimize: epsilon must be positive")

	// ErrScalarPoint indicates that a 1×1 point was required (golden-section
	// initial point, line-search surrogate argument) but something else was
	// supplied.
	ErrScalarPoint = errors.New("optimize: point must be a 1x1 scalar")
)
