// SPDX-License-Identifier: MIT
// Package field: lossless embeddings between the coefficient fields.
// Each map is total, injective and a field homomorphism.

package field

// RationalToRatioRoots embeds q as q·√1.
func RationalToRatioRoots(q Rational) RatioRoots { return FromRational(q) }

// RationalToComplex embeds q as q + 0i.
func RationalToComplex(q Rational) ComplexRational { return ComplexRational{re: q} }

// RationalToComplexRatioRoots embeds q as q·√1 + 0i.
func RationalToComplexRatioRoots(q Rational) ComplexRatioRoots {
	return ComplexRatioRoots{re: FromRational(q)}
}

// RatioRootsToComplex embeds x as x + 0i.
func RatioRootsToComplex(x RatioRoots) ComplexRatioRoots { return ComplexRatioRoots{re: x.Clone()} }

// ComplexRationalToComplexRatioRoots embeds both parts into RatioRoots.
func ComplexRationalToComplexRatioRoots(z ComplexRational) ComplexRatioRoots {
	return ComplexRatioRoots{re: FromRational(z.re), im: FromRational(z.im)}
}
