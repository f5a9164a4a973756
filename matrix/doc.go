// Package matrix provides the dense linear-algebra core of numopt:
// mutable row-major matrices, in-place LU/LUP factorization with aliasing
// triangular views, forward/backward substitution, determinants and
// inversion, plus a whitespace text format for matrix exchange.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, row
//     swapping with a cumulative swap counter, and a zero-matrix factory
//     (NewInstance) so generic routines never hard-code a concrete type.
//   - Elementwise kernels (AddInPlace/SubInPlace/ScaleInPlace) together
//     with clone-then-delegate variants (Add/Sub/Scale), Mul, Transpose,
//     Identity, SubMatrix and cofactor Determinant.
//   - Decompose: in-place Doolittle LU, optionally with partial pivoting
//     (LUP), returning read-only TriangularView projections that alias the
//     factorized storage instead of copying it.
//   - ForwardSubstitute/BackwardSubstitute for triangular systems, and
//     Invert/Solve built on top of the decomposition.
//   - Parse/ParseFile/Fprint for the one-row-per-line text format.
//
// Views and staleness:
//
//	A TriangularView holds a reference to the single factorized matrix; it
//	becomes observationally stale if that matrix is mutated again after the
//	view was created. Dense owners enforce this with a generation guard and
//	stale reads return ErrStaleView; non-Dense owners rely on convention.
//
// Errors:
//
//   - ErrOutOfRange: invalid row/column index.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: square matrix required.
//   - ErrSingularPivot: pivoting found no pivot above 1e-9 in magnitude.
//   - ErrZeroPivot: plain LU hit an exactly-zero divisor.
//   - ErrReadOnlyView: mutation attempted on a TriangularView.
//   - ErrStaleView: view read after its owner was mutated.
//   - ErrParse: malformed matrix text.
//
// All operations are synchronous and single-threaded; nothing here is safe
// for concurrent mutation.
package matrix
