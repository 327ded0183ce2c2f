// SPDX-License-Identifier: MIT

// Package field implements the exact coefficient fields of the tower.
//
// What & Why:
//
//	Rational is the base field ℚ over int64. RatioRoots is the field of
//	finite sums Σ qᵣ·√r with rational qᵣ and square-free radicands r, which
//	contains every root of a rational quadratic. Complex[F] adjoins i to
//	either of them. All three implement algebra.Field, so polynomials and
//	matrices over them share one generic implementation.
//
// Canonical forms:
//
//   - Rational: denominator > 0, gcd(|num|, den) = 1, zero is 0/1.
//   - RatioRoots: every radicand square-free, no zero coefficient; the
//     rational part is the radicand 1.
//
// Every operation returns a new value. int64 overflow panics with an error
// wrapping ErrOverflow.
package field
