// SPDX-License-Identifier: MIT

// Package matrix - entry-wise embeddings between matrix types.
//
// Every converter applies a field embedding (or the constant-polynomial map)
// to each entry, so it is total and injective; sizes never change.
// ToGonum is the one lossy exit: float64 approximations for numeric tooling.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/poly"
)

// Map applies fn to every entry and returns the resulting matrix over U.
// Complexity: O(n²) calls to fn.
func Map[T Entry[T], U Entry[U]](m *SquareMatrix[T], fn func(T) U) *SquareMatrix[U] {
	out := newSquare[U](m.n)
	for k, v := range m.data {
		out.data[k] = fn(v)
	}

	return out
}

// RationalToComplexRational embeds every entry as q + 0i.
func RationalToComplexRational(m *SquareMatrix[field.Rational]) *SquareMatrix[field.ComplexRational] {
	return Map(m, field.RationalToComplex)
}

// RationalToRatioRoots embeds every entry as q·√1.
func RationalToRatioRoots(m *SquareMatrix[field.Rational]) *SquareMatrix[field.RatioRoots] {
	return Map(m, field.RationalToRatioRoots)
}

// RationalToComplexRatioRoots embeds every entry as q·√1 + 0i.
func RationalToComplexRatioRoots(m *SquareMatrix[field.Rational]) *SquareMatrix[field.ComplexRatioRoots] {
	return Map(m, field.RationalToComplexRatioRoots)
}

// RatioRootsToComplexRatioRoots embeds every entry as x + 0i.
func RatioRootsToComplexRatioRoots(m *SquareMatrix[field.RatioRoots]) *SquareMatrix[field.ComplexRatioRoots] {
	return Map(m, field.RatioRootsToComplex)
}

// ComplexRationalToComplexRatioRoots lifts both parts of every entry into RatioRoots.
func ComplexRationalToComplexRatioRoots(m *SquareMatrix[field.ComplexRational]) *SquareMatrix[field.ComplexRatioRoots] {
	return Map(m, field.ComplexRationalToComplexRatioRoots)
}

// ToPoly lifts every entry to a constant polynomial.
func ToPoly[F field.Scalar[F]](m *SquareMatrix[F]) *SquareMatrix[poly.Poly[F]] {
	return Map(m, poly.Constant[F])
}

// RationalToPoly turns every entry into a constant polynomial.
func RationalToPoly(m *SquareMatrix[field.Rational]) *SquareMatrix[poly.Poly[field.Rational]] {
	return ToPoly(m)
}

// ComplexRationalToPoly turns every entry into a constant polynomial.
func ComplexRationalToPoly(m *SquareMatrix[field.ComplexRational]) *SquareMatrix[poly.Poly[field.ComplexRational]] {
	return ToPoly(m)
}

// RationalPolyToRatioRootsPoly embeds the coefficients of every entry.
func RationalPolyToRatioRootsPoly(m *SquareMatrix[poly.Poly[field.Rational]]) *SquareMatrix[poly.Poly[field.RatioRoots]] {
	return Map(m, func(p poly.Poly[field.Rational]) poly.Poly[field.RatioRoots] {
		return poly.MapCoefficients(p, field.RationalToRatioRoots)
	})
}

// RationalPolyToComplexRatioRootsPoly embeds the coefficients of every entry.
func RationalPolyToComplexRatioRootsPoly(m *SquareMatrix[poly.Poly[field.Rational]]) *SquareMatrix[poly.Poly[field.ComplexRatioRoots]] {
	return Map(m, func(p poly.Poly[field.Rational]) poly.Poly[field.ComplexRatioRoots] {
		return poly.MapCoefficients(p, field.RationalToComplexRatioRoots)
	})
}

// Float64er is implemented by the real exact fields.
type Float64er interface {
	Float64() float64
}

// ToGonum returns a float64 approximation of m as a gonum dense matrix.
// Exactness is lost; use it for plotting, conditioning estimates and
// numeric cross-checks only.
// Complexity: O(n²).
func ToGonum[T interface {
	Entry[T]
	Float64er
}](m *SquareMatrix[T]) *mat.Dense {
	vals := make([]float64, len(m.data))
	for k, v := range m.data {
		vals[k] = v.Float64()
	}

	return mat.NewDense(m.n, m.n, vals)
}
