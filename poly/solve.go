// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/surdalg/field"
)

// Solve returns the roots of p over its own coefficient field.
//
//	degree −∞  ErrInfiniteSolutions (every value is a root)
//	degree 0   no roots
//	degree 1   the single root −c₀/c₁
//	degree ≥ 2 ErrUnsupportedDegree
//
// Quadratics need square roots outside most coefficient fields; use
// SolveSymbolic for rational coefficients.
func Solve[F field.Scalar[F]](p Poly[F]) ([]F, error) {
	switch d := p.Degree(); {
	case d == DegreeNegInf:
		return nil, polyErrorf(opSolve, ErrInfiniteSolutions)
	case d == 0:
		return []F{}, nil
	case d == 1:
		r, err := p.c[0].Neg().Quo(p.c[1])
		if err != nil {
			return nil, polyErrorf(opSolve, err)
		}
		return []F{r}, nil
	default:
		return nil, polyErrorf(opSolve, fmt.Errorf("%w: degree %d", ErrUnsupportedDegree, d))
	}
}

// SolveSymbolic returns the exact real roots of a rational polynomial of
// degree ≤ 2. A quadratic yields both roots of the quadratic formula,
// (−b + √Δ)/2a first and (−b − √Δ)/2a second; a double root is listed twice.
//
// Errors: ErrInfiniteSolutions for the zero polynomial, ErrUnsupportedDegree
// above degree 2, ErrComplexRoots when Δ = b² − 4ac < 0.
func SolveSymbolic(p Poly[field.Rational]) ([]field.RatioRoots, error) {
	if p.Degree() != 2 {
		roots, err := Solve(p)
		if err != nil {
			return nil, polyErrorf(opSolveSymbolic, err)
		}
		out := make([]field.RatioRoots, len(roots))
		for i, r := range roots {
			out[i] = field.FromRational(r)
		}
		return out, nil
	}

	half, shift, disc, err := quadratic(p)
	if err != nil {
		return nil, err
	}
	if disc.Sign() < 0 {
		return nil, polyErrorf(opSolveSymbolic, fmt.Errorf("%w: discriminant %s", ErrComplexRoots, disc))
	}
	s, err := disc.Sqrt()
	if err != nil {
		return nil, polyErrorf(opSolveSymbolic, err)
	}

	return []field.RatioRoots{
		field.FromRational(shift).Add(s[0].Scale(half)),
		field.FromRational(shift).Add(s[1].Scale(half)),
	}, nil
}

// SolveSymbolicComplex is SolveSymbolic extended to negative discriminants:
// the roots are −b/2a ± i·√(−Δ)/2a. Real roots are embedded unchanged.
func SolveSymbolicComplex(p Poly[field.Rational]) ([]field.ComplexRatioRoots, error) {
	if p.Degree() == 2 {
		half, shift, disc, err := quadratic(p)
		if err != nil {
			return nil, err
		}
		if disc.Sign() < 0 {
			s, err := disc.Neg().Sqrt()
			if err != nil {
				return nil, polyErrorf(opSolveSymbolic, err)
			}
			re := field.FromRational(shift)
			return []field.ComplexRatioRoots{
				field.NewComplex(re, s[0].Scale(half)),
				field.NewComplex(re, s[1].Scale(half)),
			}, nil
		}
	}
	roots, err := SolveSymbolic(p)
	if err != nil {
		return nil, err
	}
	out := make([]field.ComplexRatioRoots, len(roots))
	for i, r := range roots {
		out[i] = field.RatioRootsToComplex(r)
	}

	return out, nil
}

// quadratic returns 1/2a, −b/2a and Δ for p = ax² + bx + c.
func quadratic(p Poly[field.Rational]) (half, shift, disc field.Rational, err error) {
	a, b, c := p.c[2], p.c[1], p.c[0]
	twoA := a.Mul(field.FromInt(2))
	half, err = twoA.Inverse()
	if err != nil {
		return half, shift, disc, polyErrorf(opSolveSymbolic, err)
	}
	shift = b.Neg().Mul(half)
	disc = b.Mul(b).Sub(field.FromInt(4).Mul(a).Mul(c))

	return half, shift, disc, nil
}
