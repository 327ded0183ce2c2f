// SPDX-License-Identifier: MIT

// Package algebra declares the capability interfaces shared by every exact
// type in the module and the algorithms written once against them.
//
// What & Why:
//
//	Ring, Field and UFD are small, fixed method sets. Rationals, ratio-roots,
//	complex numbers, polynomials and fractions all implement them, so the
//	generic kernels here (Pow, FieldPow, GCD, LCM, Defactorize) and the
//	elimination/determinant kernels in package matrix are written exactly
//	once and instantiated per concrete type.
//
// Conventions:
//
//   - Elements are immutable values: every operation returns a new element
//     and never mutates its receiver or argument.
//   - Zero and One ignore their receiver, so generic code writes
//     `var t T; t.One()` to obtain the identity of T.
//   - TryInverse reports invertibility with a boolean and never fails;
//     Field.Inverse returns ErrDivisionByZero for the zero element.
//
// FieldOfFractions builds the fraction field of any UFD; Integer is the
// reference UFD, factorizing through package numtheory.
package algebra
