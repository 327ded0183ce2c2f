// SPDX-License-Identifier: MIT

package algebra

import "fmt"

// FieldOfFractions is an element num/den of the fraction field of the UFD R.
// Values built by NewFraction are reduced: shared factors cancelled and
// units of the denominator absorbed into the numerator. The Go zero value is
// not meaningful; use Zero or NewFraction.
type FieldOfFractions[R UFD[R]] struct {
	num R
	den R
}

// NewFraction returns num/den in reduced form.
// Errors: ErrDivisionByZero for a zero den; factorization failures.
func NewFraction[R UFD[R]](num, den R) (FieldOfFractions[R], error) {
	f, err := FieldOfFractions[R]{num: num, den: den}.Reduce()
	if err != nil {
		return FieldOfFractions[R]{}, algebraErrorf(opFraction, err)
	}

	return f, nil
}

// Num returns the numerator.
func (f FieldOfFractions[R]) Num() R { return f.num.Clone() }

// Den returns the denominator.
func (f FieldOfFractions[R]) Den() R { return f.den.Clone() }

// Reduce cancels common factors of numerator and denominator.
//
// Implementation:
//   - Stage 1: reject a zero denominator; a zero numerator reduces to 0/1.
//   - Stage 2: factorize both sides.
//   - Stage 3: move every unit factor u^e of the denominator into the
//     numerator as (u⁻¹)^e.
//   - Stage 4: for each factor present on both sides subtract the smaller
//     exponent from both, dropping factors that reach exponent 0.
//   - Stage 5: multiply both sides back out.
func (f FieldOfFractions[R]) Reduce() (FieldOfFractions[R], error) {
	if f.den.IsZero() {
		return f, ErrDivisionByZero
	}
	if f.num.IsZero() {
		return FieldOfFractions[R]{num: f.num.Zero(), den: f.num.One()}, nil
	}
	nf, err := f.num.Factorize()
	if err != nil {
		return f, err
	}
	df, err := f.den.Factorize()
	if err != nil {
		return f, err
	}

	kept := df[:0:0]
	for _, d := range df {
		if inv, ok := d.Factor.TryInverse(); ok {
			nf = append([]Factor[R]{{Factor: inv, Exponent: d.Exponent}}, nf...)
			continue
		}
		kept = append(kept, d)
	}
	df = kept

	for i := 0; i < len(nf); i++ {
		j := indexOf(df, nf[i].Factor)
		if j < 0 {
			continue
		}
		shared := min(nf[i].Exponent, df[j].Exponent)
		nf[i].Exponent -= shared
		df[j].Exponent -= shared
		if df[j].Exponent == 0 {
			df = append(df[:j], df[j+1:]...)
		}
		if nf[i].Exponent == 0 {
			nf = append(nf[:i], nf[i+1:]...)
			i--
		}
	}

	num, err := Defactorize(nf)
	if err != nil {
		return f, err
	}
	den, err := Defactorize(df)
	if err != nil {
		return f, err
	}

	return FieldOfFractions[R]{num: num, den: den}, nil
}

// settle reduces when possible. A factorization failure (e.g. operands
// beyond the number-theory ceiling) leaves the value unreduced, which is
// still exact: Equal compares by cross-multiplication.
func settle[R UFD[R]](num, den R) FieldOfFractions[R] {
	f := FieldOfFractions[R]{num: num, den: den}
	if r, err := f.Reduce(); err == nil {
		return r
	}

	return f
}

// Clone returns an independent copy.
func (f FieldOfFractions[R]) Clone() FieldOfFractions[R] {
	return FieldOfFractions[R]{num: f.num.Clone(), den: f.den.Clone()}
}

// Zero returns the additive identity.
func (FieldOfFractions[R]) Zero() FieldOfFractions[R] {
	var r R
	return FieldOfFractions[R]{num: r.Zero(), den: r.One()}
}

// One returns the multiplicative identity.
func (FieldOfFractions[R]) One() FieldOfFractions[R] {
	var r R
	return FieldOfFractions[R]{num: r.One(), den: r.One()}
}

// Add returns a/b + c/d = (ad + cb)/bd, reduced.
func (f FieldOfFractions[R]) Add(g FieldOfFractions[R]) FieldOfFractions[R] {
	return settle(f.num.Mul(g.den).Add(g.num.Mul(f.den)), f.den.Mul(g.den))
}

// Sub returns the difference.
func (f FieldOfFractions[R]) Sub(g FieldOfFractions[R]) FieldOfFractions[R] {
	return f.Add(g.Neg())
}

// Neg returns the additive inverse.
func (f FieldOfFractions[R]) Neg() FieldOfFractions[R] {
	return FieldOfFractions[R]{num: f.num.Neg(), den: f.den.Clone()}
}

// Mul multiplies numerators and denominators, then reduces.
func (f FieldOfFractions[R]) Mul(g FieldOfFractions[R]) FieldOfFractions[R] {
	return settle(f.num.Mul(g.num), f.den.Mul(g.den))
}

// Equal compares a/b and c/d by ad = cb.
func (f FieldOfFractions[R]) Equal(g FieldOfFractions[R]) bool {
	return f.num.Mul(g.den).Equal(g.num.Mul(f.den))
}

// IsZero reports whether the value is zero.
func (f FieldOfFractions[R]) IsZero() bool { return f.num.IsZero() }

// Inverse returns den/num.
// Errors: ErrDivisionByZero for the zero fraction.
func (f FieldOfFractions[R]) Inverse() (FieldOfFractions[R], error) {
	if f.num.IsZero() {
		return FieldOfFractions[R]{}, algebraErrorf(opFraction, ErrDivisionByZero)
	}

	return settle(f.den.Clone(), f.num.Clone()), nil
}

// TryInverse is Inverse reporting failure as false.
func (f FieldOfFractions[R]) TryInverse() (FieldOfFractions[R], bool) {
	inv, err := f.Inverse()
	return inv, err == nil
}

// Quo returns f / g.
// Errors: ErrDivisionByZero when g is zero.
func (f FieldOfFractions[R]) Quo(g FieldOfFractions[R]) (FieldOfFractions[R], error) {
	inv, err := g.Inverse()
	if err != nil {
		return FieldOfFractions[R]{}, err
	}

	return f.Mul(inv), nil
}

// String renders "num/den", or just "num" when den is One.
func (f FieldOfFractions[R]) String() string {
	if f.den.Equal(f.den.One()) {
		return f.num.String()
	}

	return fmt.Sprintf("%s/%s", f.num, f.den)
}
