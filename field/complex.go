// SPDX-License-Identifier: MIT

package field

import (
	"strings"

	"github.com/katalvlaran/surdalg/algebra"
)

// Complex is re + im·i over a base field F. The Go zero value is 0.
type Complex[F Scalar[F]] struct {
	re, im F
}

// ComplexRational is ℚ(i).
type ComplexRational = Complex[Rational]

// ComplexRatioRoots is the ratio-roots field with i adjoined.
type ComplexRatioRoots = Complex[RatioRoots]

// NewComplex returns re + im·i.
func NewComplex[F Scalar[F]](re, im F) Complex[F] {
	return Complex[F]{re: re.Clone(), im: im.Clone()}
}

// Real returns the real part.
func (z Complex[F]) Real() F { return z.re.Clone() }

// Imag returns the imaginary part.
func (z Complex[F]) Imag() F { return z.im.Clone() }

// Conjugate returns re − im·i.
func (z Complex[F]) Conjugate() Complex[F] { return Complex[F]{re: z.re.Clone(), im: z.im.Neg()} }

// NormSquared returns re² + im², computed in F.
func (z Complex[F]) NormSquared() F { return z.re.Mul(z.re).Add(z.im.Mul(z.im)) }

// Clone returns an independent copy.
func (z Complex[F]) Clone() Complex[F] { return Complex[F]{re: z.re.Clone(), im: z.im.Clone()} }

// Zero returns the additive identity.
func (Complex[F]) Zero() Complex[F] {
	var f F
	return Complex[F]{re: f.Zero(), im: f.Zero()}
}

// One returns the multiplicative identity.
func (Complex[F]) One() Complex[F] {
	var f F
	return Complex[F]{re: f.One(), im: f.Zero()}
}

// IsZero reports whether the value is zero.
func (z Complex[F]) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }

// Equal compares both components.
func (z Complex[F]) Equal(w Complex[F]) bool { return z.re.Equal(w.re) && z.im.Equal(w.im) }

// Add adds componentwise.
func (z Complex[F]) Add(w Complex[F]) Complex[F] {
	return Complex[F]{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub subtracts componentwise.
func (z Complex[F]) Sub(w Complex[F]) Complex[F] {
	return Complex[F]{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Neg returns the additive inverse.
func (z Complex[F]) Neg() Complex[F] { return Complex[F]{re: z.re.Neg(), im: z.im.Neg()} }

// Mul returns (ac − bd) + (ad + bc)i.
func (z Complex[F]) Mul(w Complex[F]) Complex[F] {
	return Complex[F]{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.re.Mul(w.im).Add(z.im.Mul(w.re)),
	}
}

// Scale returns q·z for q in the base field.
func (z Complex[F]) Scale(q F) Complex[F] { return Complex[F]{re: z.re.Mul(q), im: z.im.Mul(q)} }

// Inverse returns conj(z) / |z|².
// Errors: ErrDivisionByZero when z is zero.
func (z Complex[F]) Inverse() (Complex[F], error) {
	inv, err := z.NormSquared().Inverse()
	if err != nil {
		return Complex[F]{}, fieldErrorf(opComplexInverse, err)
	}

	return z.Conjugate().Scale(inv), nil
}

// TryInverse is Inverse reporting failure as false.
func (z Complex[F]) TryInverse() (Complex[F], bool) {
	inv, err := z.Inverse()
	return inv, err == nil
}

// Quo returns z·conj(w) / |w|².
// Errors: ErrDivisionByZero when w is zero.
func (z Complex[F]) Quo(w Complex[F]) (Complex[F], error) {
	inv, err := w.Inverse()
	if err != nil {
		return Complex[F]{}, err
	}

	return z.Mul(inv), nil
}

// Pow returns zⁿ by repeated squaring; a negative n inverts first.
func (z Complex[F]) Pow(n int) (Complex[F], error) { return algebra.FieldPow(z, n) }

// String renders "(re) + (im)i".
func (z Complex[F]) String() string {
	return "(" + z.re.String() + ") + (" + z.im.String() + ")i"
}

// LaTeX renders "0" for zero, only the real part when im is zero, only the
// imaginary part when re is zero, and "re + im i" otherwise. A compound
// imaginary part is parenthesized: "1 + (1 + \sqrt{2})i".
func (z Complex[F]) LaTeX() string {
	switch {
	case z.IsZero():
		return "0"
	case z.im.IsZero():
		return z.re.LaTeX()
	}
	im := imagLaTeX(z.im)
	if z.re.IsZero() {
		return im
	}
	if rest, neg := strings.CutPrefix(im, "-"); neg {
		return z.re.LaTeX() + " - " + rest
	}

	return z.re.LaTeX() + " + " + im
}

func imagLaTeX[F Scalar[F]](b F) string {
	one := b.One()
	switch {
	case b.Equal(one):
		return "i"
	case b.Equal(one.Neg()):
		return "-i"
	}
	s := b.LaTeX()
	if strings.Contains(s[1:], " + ") || strings.Contains(s[1:], " - ") {
		return "(" + s + ")i"
	}

	return s + "i"
}

// Norm returns |z| = √(re² + im²) as an exact ratio-roots value.
func Norm(z ComplexRational) (RatioRoots, error) {
	roots, err := z.NormSquared().Sqrt()
	if err != nil {
		return RatioRoots{}, fieldErrorf(opNorm, err)
	}

	return roots[0], nil
}
