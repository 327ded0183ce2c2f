// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/poly"
)

// CharPoly returns p(λ) = det(M − λI) as a polynomial in λ.
// The matrix is lifted to polynomial entries (a_ii − λ on the diagonal,
// the constant a_ij elsewhere) and expanded with Determinant.
// p(0) = det M and the leading coefficient is (−1)ⁿ.
// Errors: ErrNilMatrix.
// Complexity: O(n!) polynomial products.
func CharPoly[F field.Scalar[F]](m *SquareMatrix[F]) (poly.Poly[F], error) {
	if err := validateNotNil(m); err != nil {
		return poly.Poly[F]{}, matrixErrorf(opCharPoly, err)
	}

	return LambdaShift(m).Determinant(), nil
}

// LambdaShift returns M − λI over polynomial entries.
func LambdaShift[F field.Scalar[F]](m *SquareMatrix[F]) *SquareMatrix[poly.Poly[F]] {
	n := m.n
	out := newSquare[poly.Poly[F]](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := m.data[i*n+j]
			if i == j {
				out.data[i*n+j] = poly.New(a, a.One().Neg())
			} else {
				out.data[i*n+j] = poly.Constant(a)
			}
		}
	}

	return out
}

// EigenRoots returns the exact real eigenvalues of a rational matrix whose
// characteristic polynomial has degree ≤ 2 (n ≤ 2), in the order produced
// by poly.SolveSymbolic.
// Errors: ErrNilMatrix; poly.ErrUnsupportedDegree for n > 2;
// poly.ErrComplexRoots when the eigenvalues are not real.
func EigenRoots(m *SquareMatrix[field.Rational]) ([]field.RatioRoots, error) {
	p, err := CharPoly(m)
	if err != nil {
		return nil, matrixErrorf(opEigenRoots, err)
	}
	roots, err := poly.SolveSymbolic(p)
	if err != nil {
		return nil, matrixErrorf(opEigenRoots, err)
	}

	return roots, nil
}

// EigenRootsComplex is EigenRoots admitting complex conjugate pairs.
func EigenRootsComplex(m *SquareMatrix[field.Rational]) ([]field.ComplexRatioRoots, error) {
	p, err := CharPoly(m)
	if err != nil {
		return nil, matrixErrorf(opEigenRoots, err)
	}
	roots, err := poly.SolveSymbolicComplex(p)
	if err != nil {
		return nil, matrixErrorf(opEigenRoots, err)
	}

	return roots, nil
}
