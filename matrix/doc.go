// SPDX-License-Identifier: MIT

// Package matrix implements exact square matrices over the rings and fields
// of this module.
//
// What & Why:
//
//	SquareMatrix[T] is a row-major n×n grid over any Entry (Rational,
//	ComplexRational, RatioRoots, ComplexRatioRoots, or a polynomial ring over
//	one of them). Every kernel is written once against the algebra
//	interfaces; all zero tests are exact, never tolerance based.
//
// Kernels:
//
//   - Ring level: Add, Sub, Neg, MatMul, MatMulEq, MatMulVec, Pow,
//     Transpose, Trace, Minor, Determinant (Laplace expansion along row 0).
//   - Field level: Eliminate (reduced row-echelon form, transform matrix,
//     rank), Rank, Inverse, Solve, CharPoly, EigenRoots.
//
// Ownership:
//
//	Constructors and accessors deep-copy entries, so no two matrices share a
//	buffer. Only Set and MatMulEq mutate their receiver; both validate first.
//
// Complexity:
//
//	Elimination and products are O(n³) field operations. Determinant is
//	O(n!) by construction; size inputs accordingly (n ≤ 6 is interactive).
package matrix
