// SPDX-License-Identifier: MIT

// Package poly implements dense univariate polynomials over the exact
// fields of package field.
//
// A Poly[F] stores coefficients by ascending degree with no trailing zero;
// the zero polynomial has no coefficients and degree DegreeNegInf.
// Poly[F] satisfies algebra.Ring, which is what lets package matrix build
// characteristic polynomials as determinants over Poly[F].
//
// Solving is exact and limited to degree ≤ 2:
//
//	Solve          any field, degree ≤ 1
//	SolveSymbolic  rational coefficients, degree ≤ 2, real ratio-roots roots
//
// Higher degrees fail with ErrUnsupportedDegree; the zero polynomial fails
// with ErrInfiniteSolutions.
package poly
