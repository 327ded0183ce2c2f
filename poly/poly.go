// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/surdalg/algebra"
	"github.com/katalvlaran/surdalg/field"
)

// DegreeNegInf is the degree of the zero polynomial.
const DegreeNegInf = math.MinInt

// Poly is an immutable polynomial Σ c[k]·xᵏ. The Go zero value is the zero
// polynomial.
type Poly[F field.Scalar[F]] struct {
	c []F // ascending degree, no trailing zero
}

var (
	_ algebra.Ring[Poly[field.Rational]]        = Poly[field.Rational]{}
	_ algebra.Ring[Poly[field.ComplexRational]] = Poly[field.ComplexRational]{}
)

// New returns Σ coeffs[k]·xᵏ; coeffs is copied and trailing zeros trimmed.
func New[F field.Scalar[F]](coeffs ...F) Poly[F] {
	c := make([]F, len(coeffs))
	for i, x := range coeffs {
		c[i] = x.Clone()
	}

	return trimmed(c)
}

// Constant returns the degree-0 polynomial c (zero when c is zero).
func Constant[F field.Scalar[F]](c F) Poly[F] { return New(c) }

// X returns the indeterminate x.
func X[F field.Scalar[F]]() Poly[F] {
	var f F
	return Poly[F]{c: []F{f.Zero(), f.One()}}
}

// Monomial returns c·xᵏ. Panics for k < 0.
func Monomial[F field.Scalar[F]](c F, k int) Poly[F] {
	if k < 0 {
		panic("poly: Monomial: negative degree")
	}
	if c.IsZero() {
		return Poly[F]{}
	}
	out := make([]F, k+1)
	for i := range out {
		out[i] = c.Zero()
	}
	out[k] = c.Clone()

	return Poly[F]{c: out}
}

// FromRoots returns Π (x − r) over roots; no roots gives One.
func FromRoots[F field.Scalar[F]](roots ...F) Poly[F] {
	var f F
	p := Poly[F]{}.One()
	for _, r := range roots {
		p = p.Mul(Poly[F]{c: []F{r.Neg(), f.One()}})
	}

	return p
}

// trimmed drops trailing zeros in place.
func trimmed[F field.Scalar[F]](c []F) Poly[F] {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Poly[F]{}
	}

	return Poly[F]{c: c[:n]}
}

// Degree returns the degree, DegreeNegInf for the zero polynomial.
func (p Poly[F]) Degree() int {
	if len(p.c) == 0 {
		return DegreeNegInf
	}

	return len(p.c) - 1
}

// Coefficients returns a copy of the coefficients by ascending degree.
func (p Poly[F]) Coefficients() []F {
	out := make([]F, len(p.c))
	for i, x := range p.c {
		out[i] = x.Clone()
	}

	return out
}

// Coefficient returns the coefficient of xᵏ (zero outside the stored range).
func (p Poly[F]) Coefficient(k int) F {
	if k < 0 || k >= len(p.c) {
		var f F
		return f.Zero()
	}

	return p.c[k].Clone()
}

// Leading returns the highest-degree coefficient (zero for the zero polynomial).
func (p Poly[F]) Leading() F { return p.Coefficient(len(p.c) - 1) }

// Clone copies the coefficient slice.
func (p Poly[F]) Clone() Poly[F] { return Poly[F]{c: p.Coefficients()} }

// Zero returns the zero polynomial (no coefficients).
func (Poly[F]) Zero() Poly[F] { return Poly[F]{} }

// One returns the constant polynomial 1.
func (Poly[F]) One() Poly[F] {
	var f F
	return Poly[F]{c: []F{f.One()}}
}

// IsZero reports whether the value is zero.
func (p Poly[F]) IsZero() bool { return len(p.c) == 0 }

// Equal compares trimmed coefficient slices.
func (p Poly[F]) Equal(q Poly[F]) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if !p.c[i].Equal(q.c[i]) {
			return false
		}
	}

	return true
}

// Add sums index-wise, padding the shorter side with zeros.
func (p Poly[F]) Add(q Poly[F]) Poly[F] {
	long, short := p.c, q.c
	if len(short) > len(long) {
		long, short = short, long
	}
	out := make([]F, len(long))
	for i := range long {
		if i < len(short) {
			out[i] = long[i].Add(short[i])
		} else {
			out[i] = long[i].Clone()
		}
	}

	return trimmed(out)
}

// Sub returns the difference.
func (p Poly[F]) Sub(q Poly[F]) Poly[F] { return p.Add(q.Neg()) }

// Neg returns the additive inverse.
func (p Poly[F]) Neg() Poly[F] {
	out := make([]F, len(p.c))
	for i, x := range p.c {
		out[i] = x.Neg()
	}

	return trimmed(out)
}

// Scale returns s·p.
func (p Poly[F]) Scale(s F) Poly[F] {
	out := make([]F, len(p.c))
	for i, x := range p.c {
		out[i] = x.Mul(s)
	}

	return trimmed(out)
}

// Mul is the full convolution: out[k] = Σ_{i+j=k} p[i]·q[j].
// A zero operand short-circuits to the zero polynomial.
// Complexity: O(deg p · deg q).
func (p Poly[F]) Mul(q Poly[F]) Poly[F] {
	if p.IsZero() || q.IsZero() {
		return Poly[F]{}
	}
	out := make([]F, len(p.c)+len(q.c)-1)
	for k := range out {
		out[k] = p.c[0].Zero()
	}
	for i, a := range p.c {
		for j, b := range q.c {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}

	return trimmed(out)
}

// Pow returns pⁿ by binary exponentiation.
// Errors: ErrInvalidInput for n < 0.
func (p Poly[F]) Pow(n int) (Poly[F], error) {
	r, err := algebra.Pow(p, n)
	if err != nil {
		return Poly[F]{}, polyErrorf(opPow, err)
	}

	return r, nil
}

// TryInverse succeeds exactly for non-zero constants.
func (p Poly[F]) TryInverse() (Poly[F], bool) {
	if len(p.c) != 1 {
		return Poly[F]{}, false
	}
	inv, ok := p.c[0].TryInverse()
	if !ok {
		return Poly[F]{}, false
	}

	return Poly[F]{c: []F{inv}}, true
}

// Evaluate returns p(z) by Horner's rule; the zero polynomial evaluates to zero.
func (p Poly[F]) Evaluate(z F) F {
	result := z.Zero()
	for k := len(p.c) - 1; k >= 0; k-- {
		result = result.Mul(z).Add(p.c[k])
	}

	return result
}

// MapCoefficients applies fn to every coefficient, producing a polynomial
// over another field. fn should be a field embedding so degrees are kept.
func MapCoefficients[F field.Scalar[F], G field.Scalar[G]](p Poly[F], fn func(F) G) Poly[G] {
	out := make([]G, len(p.c))
	for i, x := range p.c {
		out[i] = fn(x)
	}

	return trimmed(out)
}

// String renders the polynomial by descending degree, e.g. "x^2 - 5*x + 6".
func (p Poly[F]) String() string {
	return p.render(func(c F) string { return c.String() }, func(v string, k int) string {
		if k == 1 {
			return v
		}
		return v + "^" + strconv.Itoa(k)
	}, "*", DefaultVariable)
}

// LaTeX renders p with the default variable, e.g. "x^{2} - 5x + 6".
func (p Poly[F]) LaTeX() string { return p.Render() }

// Render is LaTeX with options (WithVariable).
func (p Poly[F]) Render(opts ...Option) string {
	o := gatherOptions(opts...)
	return p.render(func(c F) string { return c.LaTeX() }, func(v string, k int) string {
		if k == 1 {
			return v
		}
		return v + "^{" + strconv.Itoa(k) + "}"
	}, "", o.variable)
}

// render writes terms from the highest degree down. Coefficients ±1 are
// omitted in front of a power, compound coefficients are parenthesized and
// a leading minus of a simple coefficient becomes the joining operator.
func (p Poly[F]) render(coeff func(F) string, power func(string, int) string, join, variable string) string {
	if p.IsZero() {
		return "0"
	}
	one := p.c[0].One()
	var b strings.Builder
	for k := len(p.c) - 1; k >= 0; k-- {
		c := p.c[k]
		if c.IsZero() {
			continue
		}
		s := coeff(c)
		neg := false
		switch {
		case compound(s):
			s = "(" + s + ")"
		case strings.HasPrefix(s, "-"):
			neg, s = true, s[1:]
		}
		if k > 0 {
			switch {
			case c.Equal(one) || c.Equal(one.Neg()):
				s = power(variable, k)
			default:
				s = s + join + power(variable, k)
			}
		}
		switch {
		case b.Len() == 0 && neg:
			b.WriteString("-")
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(s)
	}

	return b.String()
}

// compound reports whether a rendered coefficient is a sum and needs
// parentheses when multiplied by a power of the variable.
func compound(s string) bool {
	if len(s) < 2 {
		return false
	}

	return strings.Contains(s[1:], " + ") || strings.Contains(s[1:], " - ")
}
