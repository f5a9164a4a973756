// Package numopt is your in-memory toolkit for dense linear algebra and
// smooth optimization — from matrix primitives to LUP factorization and
// Hessian-driven minimizers.
//
// 🚀 What is numopt?
//
//	A compact, explicit-error library that brings together:
//		• Dense matrices: construction, arithmetic, transpose, minors, text I/O
//		• Factorization: in-place Doolittle LU and pivoted LUP with triangular views
//		• Solvers: forward/backward substitution, determinants, inversion
//		• 1-D search: unimodal bracketing + golden-section minimization
//		• Multivariate: Newton-Raphson and gradient descent with exact line search
//		• Configuration: name-keyed algorithm registry + gcfg run files
//
// ✨ Why choose numopt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest numerics – sentinel errors for singular pivots, zero divisions
//     and shape mismatches instead of silent NaNs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – register custom algorithms and resolve them by name
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — dense matrices, LU/LUP decomposition, triangular solves, text format
//	optimize/ — golden-section, Newton-Raphson, gradient descent, registry, config
//
// Quick example — minimize f(x,y) = (x-1)² + (y-2)²:
//
//	n := optimize.NewNewtonRaphson()
//	start, _ := matrix.NewVector(0, 0)
//	_ = n.Configure(optimize.Config{InitialPoint: start, Epsilon: 1e-6})
//	min, _ := n.Run(bowl{}) // → (1, 2)
//
// Dive into the package documentation of matrix and optimize for the full
// contracts: view staleness, pivoting tolerances and the termination rules
// of every optimizer.
//
//	go get github.com/katalvlaran/numopt
package numopt
