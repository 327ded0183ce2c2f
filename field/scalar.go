// SPDX-License-Identifier: MIT

package field

import "github.com/katalvlaran/surdalg/algebra"

// Scalar is a field element that can typeset itself. It is the coefficient
// constraint used by Complex, package poly and package matrix.
type Scalar[F any] interface {
	algebra.Field[F]
	// LaTeX renders the element as a LaTeX math-mode expression.
	LaTeX() string
}

var (
	_ Scalar[Rational]          = Rational{}
	_ Scalar[RatioRoots]        = RatioRoots{}
	_ Scalar[ComplexRational]   = ComplexRational{}
	_ Scalar[ComplexRatioRoots] = ComplexRatioRoots{}
)
