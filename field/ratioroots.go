// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/surdalg/algebra"
	"github.com/katalvlaran/surdalg/numtheory"
)

// RatioRoots is an exact element Σ qᵣ·√r of the ratio-roots field.
// terms maps square-free radicands to non-zero coefficients; nil is zero.
// The map is never mutated after construction, so values may share it.
type RatioRoots struct {
	terms map[int64]Rational
}

// NewRatioRoots builds Σ coeffs[r]·√r and canonicalizes it: every radicand
// r = s²·t (t square-free) contributes s·coeffs[r] to the coefficient of √t,
// and zero coefficients are pruned. The input map is not retained.
// Errors: ErrInvalidInput for a radicand ≤ 0 or above the number-theory ceiling.
func NewRatioRoots(coeffs map[int64]Rational) (RatioRoots, error) {
	out := make(map[int64]Rational, len(coeffs))
	for r, q := range coeffs {
		if r <= 0 {
			return RatioRoots{}, fieldErrorf(opNewRatioRoots, fmt.Errorf("%w: radicand %d", ErrInvalidInput, r))
		}
		if q.IsZero() {
			continue
		}
		s, t, err := numtheory.SquareFree(r)
		if err != nil {
			return RatioRoots{}, fieldErrorf(opNewRatioRoots, err)
		}
		out[t] = out[t].Add(q.Mul(FromInt(s)))
	}

	return pruned(out), nil
}

// MustRatioRoots is NewRatioRoots that panics on error.
func MustRatioRoots(coeffs map[int64]Rational) RatioRoots {
	x, err := NewRatioRoots(coeffs)
	if err != nil {
		panic(err)
	}

	return x
}

// FromRational embeds q as q·√1.
func FromRational(q Rational) RatioRoots {
	if q.IsZero() {
		return RatioRoots{}
	}

	return RatioRoots{terms: map[int64]Rational{1: q}}
}

// Surd returns q·√r with r > 0 canonicalized.
func Surd(q Rational, r int64) (RatioRoots, error) {
	return NewRatioRoots(map[int64]Rational{r: q})
}

// pruned drops zero coefficients in place and maps the empty result to nil.
func pruned(m map[int64]Rational) RatioRoots {
	for r, q := range m {
		if q.IsZero() {
			delete(m, r)
		}
	}
	if len(m) == 0 {
		return RatioRoots{}
	}

	return RatioRoots{terms: m}
}

// Terms returns a copy of the radicand → coefficient mapping.
func (x RatioRoots) Terms() map[int64]Rational {
	out := make(map[int64]Rational, len(x.terms))
	for r, q := range x.terms {
		out[r] = q
	}

	return out
}

// Radicands returns the radicands present, ascending.
func (x RatioRoots) Radicands() []int64 {
	out := make([]int64, 0, len(x.terms))
	for r := range x.terms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Coefficient returns the coefficient of √r (zero when absent).
func (x RatioRoots) Coefficient(r int64) Rational { return x.terms[r] }

// RationalPart returns the coefficient of √1.
func (x RatioRoots) RationalPart() Rational { return x.terms[1] }

// IsRational reports whether x has no irrational term.
func (x RatioRoots) IsRational() bool {
	_, hasOne := x.terms[1]
	return len(x.terms) == 0 || (len(x.terms) == 1 && hasOne)
}

// Clone copies the term map.
func (x RatioRoots) Clone() RatioRoots { return RatioRoots{terms: x.Terms()} }

// Zero returns the additive identity.
func (RatioRoots) Zero() RatioRoots { return RatioRoots{} }

// One returns the multiplicative identity.
func (RatioRoots) One() RatioRoots { return FromRational(FromInt(1)) }

// IsZero reports whether the value is zero.
func (x RatioRoots) IsZero() bool { return len(x.terms) == 0 }

// Equal compares canonical term maps.
func (x RatioRoots) Equal(y RatioRoots) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for r, q := range x.terms {
		if p, ok := y.terms[r]; !ok || p != q {
			return false
		}
	}

	return true
}

// Add merges coefficients key-wise.
func (x RatioRoots) Add(y RatioRoots) RatioRoots {
	out := x.Terms()
	for r, q := range y.terms {
		out[r] = out[r].Add(q)
	}

	return pruned(out)
}

// Sub returns the difference.
func (x RatioRoots) Sub(y RatioRoots) RatioRoots { return x.Add(y.Neg()) }

// Neg returns the additive inverse.
func (x RatioRoots) Neg() RatioRoots {
	if x.IsZero() {
		return x
	}
	out := make(map[int64]Rational, len(x.terms))
	for r, q := range x.terms {
		out[r] = q.Neg()
	}

	return RatioRoots{terms: out}
}

// Scale returns q·x.
func (x RatioRoots) Scale(q Rational) RatioRoots {
	if q.IsZero() || x.IsZero() {
		return RatioRoots{}
	}
	out := make(map[int64]Rational, len(x.terms))
	for r, c := range x.terms {
		out[r] = c.Mul(q)
	}

	return RatioRoots{terms: out}
}

// Mul distributes over every pair of terms. For square-free a, b with
// g = gcd(a, b): √a·√b = g·√((a/g)·(b/g)), and (a/g)·(b/g) is again
// square-free, so products never need factoring.
// Complexity: O(|x|·|y|).
func (x RatioRoots) Mul(y RatioRoots) RatioRoots {
	if x.IsZero() || y.IsZero() {
		return RatioRoots{}
	}
	out := make(map[int64]Rational, len(x.terms)*len(y.terms))
	for a, p := range x.terms {
		for b, q := range y.terms {
			g := algebra.GCD64(a, b)
			r := algebra.CheckedMul(a/g, b/g)
			out[r] = out[r].Add(p.Mul(q).Mul(FromInt(g)))
		}
	}

	return pruned(out)
}

// Inverse returns 1/x by iterated conjugation.
//
// Implementation:
//   - Stage 1: take the largest prime p dividing any radicand of the
//     running value v.
//   - Stage 2: form v̄ by flipping the sign of every term whose radicand is
//     divisible by p (the conjugation √p ↦ −√p). v·v̄ is fixed by that
//     conjugation, so it has no radicand divisible by p.
//   - Stage 3: rescale v̄ to its primitive integer form (coprime integer
//     coefficients), accumulate it and continue with v·v̄ until v is
//     rational. The rescaling cancels in the quotient below.
//   - Stage 4: 1/x = (Π v̄) / v.
//
// Each round removes one prime, so the loop ends after at most as many
// rounds as there are distinct primes in x's radicands.
//
// Errors: ErrDivisionByZero for zero; ErrInternalInvariant if the loop does
// not reach a non-zero rational.
func (x RatioRoots) Inverse() (RatioRoots, error) {
	if x.IsZero() {
		return RatioRoots{}, fieldErrorf(opRRInverse, ErrDivisionByZero)
	}
	acc := x.One()
	v := x
	for rounds := 0; !v.IsRational(); rounds++ {
		if rounds > 64 {
			return RatioRoots{}, fieldErrorf(opRRInverse, fmt.Errorf("%w: %s did not reduce", ErrInternalInvariant, x))
		}
		p, err := v.largestPrime()
		if err != nil {
			return RatioRoots{}, fieldErrorf(opRRInverse, err)
		}
		conj := v.conjugate(p).primitive()
		acc = acc.Mul(conj)
		v = v.Mul(conj)
	}
	q := v.RationalPart()
	if q.IsZero() {
		return RatioRoots{}, fieldErrorf(opRRInverse, fmt.Errorf("%w: %s reduced to zero", ErrInternalInvariant, x))
	}
	inv, err := q.Inverse()
	if err != nil {
		return RatioRoots{}, fieldErrorf(opRRInverse, err)
	}

	return acc.Scale(inv), nil
}

// largestPrime returns the largest prime dividing a radicand of x.
func (x RatioRoots) largestPrime() (int64, error) {
	best := int64(1)
	for r := range x.terms {
		if r <= best {
			continue
		}
		f, err := numtheory.Factorize(r)
		if err != nil {
			return 0, err
		}
		for p := range f {
			best = max(best, p)
		}
	}

	return best, nil
}

// conjugate flips the sign of every term whose radicand is divisible by p.
func (x RatioRoots) conjugate(p int64) RatioRoots {
	out := make(map[int64]Rational, len(x.terms))
	for r, q := range x.terms {
		if r%p == 0 {
			q = q.Neg()
		}
		out[r] = q
	}

	return RatioRoots{terms: out}
}

// primitive returns c·x for the positive rational c that makes every
// coefficient an integer and their gcd 1; x must be non-zero.
func (x RatioRoots) primitive() RatioRoots {
	l := int64(1)
	for _, q := range x.terms {
		d := q.Den()
		l = algebra.CheckedMul(l/algebra.GCD64(l, d), d)
	}
	var g int64
	for _, q := range x.terms {
		g = algebra.GCD64(g, algebra.CheckedMul(q.Num(), l/q.Den()))
	}

	return x.Scale(makeRational(l, g))
}

// TryInverse is Inverse reporting failure as false.
func (x RatioRoots) TryInverse() (RatioRoots, bool) {
	inv, err := x.Inverse()
	return inv, err == nil
}

// Quo returns x / y.
// Errors: ErrDivisionByZero when y is zero.
func (x RatioRoots) Quo(y RatioRoots) (RatioRoots, error) {
	inv, err := y.Inverse()
	if err != nil {
		return RatioRoots{}, err
	}

	return x.Mul(inv), nil
}

// Pow returns xⁿ by repeated squaring; a negative n inverts first.
func (x RatioRoots) Pow(n int) (RatioRoots, error) { return algebra.FieldPow(x, n) }

// Float64 approximates x; for display and cross-checks only.
func (x RatioRoots) Float64() float64 {
	var sum float64
	for _, r := range x.Radicands() {
		sum += x.terms[r].Float64() * math.Sqrt(float64(r))
	}

	return sum
}

// String renders terms by ascending radicand, e.g. "1/2 + 1/3*sqrt(2)".
func (x RatioRoots) String() string {
	return x.render(Rational.String, func(r int64) string { return "sqrt(" + strconv.FormatInt(r, 10) + ")" }, "*")
}

// LaTeX renders terms by ascending radicand, e.g. "\frac{1}{2} + \frac{1}{3}\sqrt{2}".
// Unit coefficients are omitted in front of a surd: "\sqrt{2} - \sqrt{3}".
func (x RatioRoots) LaTeX() string {
	return x.render(Rational.LaTeX, func(r int64) string { return `\sqrt{` + strconv.FormatInt(r, 10) + `}` }, "")
}

func (x RatioRoots) render(coeff func(Rational) string, surd func(int64) string, join string) string {
	if x.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, r := range x.Radicands() {
		q := x.terms[r]
		switch {
		case i == 0 && q.Sign() < 0:
			b.WriteString("-")
		case i > 0 && q.Sign() < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		q = q.Abs()
		switch {
		case r == 1:
			b.WriteString(coeff(q))
		case q.IsOne():
			b.WriteString(surd(r))
		default:
			b.WriteString(coeff(q) + join + surd(r))
		}
	}

	return b.String()
}
