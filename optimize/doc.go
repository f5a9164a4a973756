// Package optimize provides the iterative minimization layer of numopt:
// a family of algorithms that minimize a user-supplied scalar function of a
// column-vector point, built on the matrix package's decomposition engine.
//
// The optimize package provides:
//
//   - Function / Differentiable / TwiceDifferentiable capability
//     interfaces: a function is callable at a point and, where an algorithm
//     needs it, exposes a gradient and a Hessian.
//   - UnimodalInterval, geometric bracketing of a 1-D minimum around a
//     starting point.
//   - GoldenRatio, derivative-free golden-section narrowing of a bracketed
//     interval; the exact line-search subroutine of the gradient family.
//   - NewtonRaphson, the Hessian-driven optimizer: at every step it inverts
//     the Hessian through LUP decomposition, forms the Newton step and
//     optionally rescales it with an exact golden-section line search.
//   - GradientDescent, the first-order sibling sharing the same
//     line-search, convergence and divergence scaffolding.
//   - Registry, an explicit name-to-factory lookup built once at setup;
//     optimizers consult it at most once per run to obtain a line-search
//     instance, and a failed lookup degrades to fixed-step updates instead
//     of crashing.
//   - LoadConfig/BuildAlgorithm, a gcfg-backed loader for the [optimizer]
//     file section (algorithm name, epsilon, initial point, line search).
//
// Termination:
//
//	Runs stop on convergence (step norm below epsilon) or divergence (the
//	function value worsens against the best seen); both return the best
//	point found, never the possibly-worse final iterate. No iteration cap
//	is enforced — an oscillating, non-convergent and non-diverging
//	function loops indefinitely. That is the documented contract, not an
//	oversight; callers needing a bound must wrap the run themselves.
//
// Everything is synchronous and single-threaded: an Algorithm instance owns
// its state for the duration of one Run and must not be shared across
// goroutines.
package optimize
