// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/surdalg/algebra"
)

// Rational is an exact fraction num/den over int64 in canonical form.
// The denominator is stored minus one so the Go zero value is 0/1; Rationals
// are comparable with == and usable as map values and DeepEqual operands.
type Rational struct {
	num   int64
	denM1 int64
}

// NewRational returns n/d in canonical form.
// Errors: ErrDivisionByZero when d is 0.
func NewRational(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, fieldErrorf(opNewRational, fmt.Errorf("%w: %d/0", ErrDivisionByZero, n))
	}

	return makeRational(n, d), nil
}

// MustRational is NewRational that panics on error; for literals and tests.
func MustRational(n, d int64) Rational {
	r, err := NewRational(n, d)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt embeds an integer.
func FromInt(n int64) Rational { return Rational{num: n} }

// ParseRational reads "n" or "n/d" (surrounding blanks allowed).
// Errors: ErrInvalidInput for a malformed literal, ErrDivisionByZero for d = 0.
func ParseRational(s string) (Rational, error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational{}, fieldErrorf(opParseRational, fmt.Errorf("%w: %q", ErrInvalidInput, s))
	}
	if !hasDen {
		return FromInt(n), nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Rational{}, fieldErrorf(opParseRational, fmt.Errorf("%w: %q", ErrInvalidInput, s))
	}
	if d == 0 {
		return Rational{}, fieldErrorf(opParseRational, fmt.Errorf("%w: %q", ErrDivisionByZero, s))
	}

	return makeRational(n, d), nil
}

// makeRational normalizes sign and common factors; d must be non-zero.
func makeRational(n, d int64) Rational {
	if n == 0 {
		return Rational{}
	}
	if d < 0 {
		n, d = algebra.CheckedNeg(n), algebra.CheckedNeg(d)
	}
	g := algebra.GCD64(n, d)

	return Rational{num: n / g, denM1: d/g - 1}
}

// Num returns the numerator; its sign is the sign of the value.
func (r Rational) Num() int64 { return r.num }

// Den returns the (positive) denominator.
func (r Rational) Den() int64 { return r.denM1 + 1 }

// Clone returns r; Rational is a value type.
func (r Rational) Clone() Rational { return r }

// Zero returns the additive identity.
func (Rational) Zero() Rational { return Rational{} }

// One returns the multiplicative identity.
func (Rational) One() Rational { return Rational{num: 1} }

// IsZero reports whether the value is zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsOne reports whether r is 1.
func (r Rational) IsOne() bool { return r.num == 1 && r.denM1 == 0 }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.denM1 == 0 }

// Equal compares canonical numerator and denominator.
func (r Rational) Equal(o Rational) bool { return r == o }

// Add returns r + o, dividing out gcd(den) first to keep intermediates small.
func (r Rational) Add(o Rational) Rational {
	rd, od := r.Den(), o.Den()
	g := algebra.GCD64(rd, od)
	n := algebra.CheckedAdd(algebra.CheckedMul(r.num, od/g), algebra.CheckedMul(o.num, rd/g))

	return makeRational(n, algebra.CheckedMul(rd/g, od))
}

// Sub returns the difference.
func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

// Neg panics with ErrOverflow for a numerator of math.MinInt64.
func (r Rational) Neg() Rational {
	return Rational{num: algebra.CheckedNeg(r.num), denM1: r.denM1}
}

// Mul returns r·o, cross-reducing before multiplying.
func (r Rational) Mul(o Rational) Rational {
	if r.num == 0 || o.num == 0 {
		return Rational{}
	}
	g1 := algebra.GCD64(r.num, o.Den())
	g2 := algebra.GCD64(o.num, r.Den())
	n := algebra.CheckedMul(r.num/g1, o.num/g2)
	d := algebra.CheckedMul(r.Den()/g2, o.Den()/g1)

	return Rational{num: n, denM1: d - 1}
}

// Inverse returns 1/r.
// Errors: ErrDivisionByZero for zero.
func (r Rational) Inverse() (Rational, error) {
	if r.num == 0 {
		return Rational{}, fieldErrorf(opInverse, ErrDivisionByZero)
	}

	return makeRational(r.Den(), r.num), nil
}

// TryInverse is Inverse reporting failure as false.
func (r Rational) TryInverse() (Rational, bool) {
	inv, err := r.Inverse()
	return inv, err == nil
}

// Quo returns r / o.
// Errors: ErrDivisionByZero when o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Rational{}, err
	}

	return r.Mul(inv), nil
}

// Pow returns rⁿ; a negative n inverts first.
// Errors: ErrDivisionByZero for 0 raised to a negative power.
func (r Rational) Pow(n int) (Rational, error) { return algebra.FieldPow(r, n) }

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
// Cross-multiplication is valid because denominators are positive.
func (r Rational) Cmp(o Rational) int {
	lhs := algebra.CheckedMul(r.num, o.Den())
	rhs := algebra.CheckedMul(o.num, r.Den())
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// LessOrEqual reports r ≤ o.
func (r Rational) LessOrEqual(o Rational) bool { return r.Cmp(o) <= 0 }

// Greater reports r > o.
func (r Rational) Greater(o Rational) bool { return r.Cmp(o) > 0 }

// GreaterOrEqual reports r ≥ o.
func (r Rational) GreaterOrEqual(o Rational) bool { return r.Cmp(o) >= 0 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}

	return r
}

// Float64 returns the nearest float64; for display and cross-checks only.
func (r Rational) Float64() float64 { return float64(r.num) / float64(r.Den()) }

// Sqrt returns the two exact square roots (+√r first, then −√r) as
// single-surd RatioRoots, using p/q = pq/q², so √(p/q) = (1/q)·√(pq).
// Errors: ErrInvalidInput for a negative r; factorization errors when pq
// exceeds the number-theory ceiling.
func (r Rational) Sqrt() ([2]RatioRoots, error) {
	var out [2]RatioRoots
	if r.num < 0 {
		return out, fieldErrorf(opSqrt, fmt.Errorf("%w: square root of %s", ErrInvalidInput, r))
	}
	if r.num == 0 {
		return out, nil
	}
	q := r.Den()
	root, err := Surd(Rational{num: 1, denM1: q - 1}, algebra.CheckedMul(r.num, q))
	if err != nil {
		return out, fieldErrorf(opSqrt, err)
	}
	out[0], out[1] = root, root.Neg()

	return out, nil
}

// String renders "n" or "n/d".
func (r Rational) String() string {
	if r.denM1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// LaTeX renders "n" or "\frac{n}{d}", with a negative sign in front of the
// fraction: -\frac{1}{2}.
func (r Rational) LaTeX() string {
	if r.denM1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	if r.num < 0 {
		return `-\frac{` + strconv.FormatInt(-r.num, 10) + `}{` + strconv.FormatInt(r.Den(), 10) + `}`
	}

	return `\frac{` + strconv.FormatInt(r.num, 10) + `}{` + strconv.FormatInt(r.Den(), 10) + `}`
}
