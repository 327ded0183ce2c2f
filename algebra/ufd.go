// SPDX-License-Identifier: MIT

package algebra

import "fmt"

// Factor is one irreducible (or unit) factor with its multiplicity.
type Factor[T any] struct {
	Factor   T
	Exponent int
}

// UFD is a unique factorization domain: a Ring whose non-zero elements
// decompose into irreducible factors, unique up to order and units.
type UFD[T any] interface {
	Ring[T]
	// Factorize returns the factors of a non-zero element. Units, when
	// present, come first.
	Factorize() ([]Factor[T], error)
}

// Defactorize multiplies factors back into an element; an empty list is One.
// Errors: ErrInvalidInput for a negative exponent.
func Defactorize[T Ring[T]](factors []Factor[T]) (T, error) {
	var result T
	result = result.One()
	for _, f := range factors {
		p, err := Pow(f.Factor, f.Exponent)
		if err != nil {
			return result, algebraErrorf(opDefactorize, err)
		}
		result = result.Mul(p)
	}

	return result, nil
}

// indexOf locates x in factors via Equal; -1 when absent.
func indexOf[T Ring[T]](factors []Factor[T], x T) int {
	for i, f := range factors {
		if f.Factor.Equal(x) {
			return i
		}
	}

	return -1
}

// isUnit reports whether x has a multiplicative inverse in its ring.
func isUnit[T Ring[T]](x T) bool {
	_, ok := x.TryInverse()
	return ok
}

// GCD returns the greatest common divisor of a and b computed purely from
// their factorizations (minimum exponent per shared non-unit factor).
// The result is normalized: unit factors are dropped.
// Errors: factorization failures of either operand.
func GCD[T UFD[T]](a, b T) (T, error) {
	af, bf, err := factorPair(a, b)
	if err != nil {
		return a.Zero(), algebraErrorf(opGCD, err)
	}
	common := make([]Factor[T], 0, len(af))
	for _, f := range af {
		if isUnit(f.Factor) {
			continue
		}
		if j := indexOf(bf, f.Factor); j >= 0 {
			common = append(common, Factor[T]{Factor: f.Factor, Exponent: min(f.Exponent, bf[j].Exponent)})
		}
	}

	return Defactorize(common)
}

// LCM returns the least common multiple of a and b from their
// factorizations (maximum exponent per factor, unit factors dropped).
func LCM[T UFD[T]](a, b T) (T, error) {
	af, bf, err := factorPair(a, b)
	if err != nil {
		return a.Zero(), algebraErrorf(opLCM, err)
	}
	all := make([]Factor[T], 0, len(af)+len(bf))
	for _, f := range af {
		if isUnit(f.Factor) {
			continue
		}
		e := f.Exponent
		if j := indexOf(bf, f.Factor); j >= 0 {
			e = max(e, bf[j].Exponent)
		}
		all = append(all, Factor[T]{Factor: f.Factor, Exponent: e})
	}
	for _, f := range bf {
		if isUnit(f.Factor) || indexOf(af, f.Factor) >= 0 {
			continue
		}
		all = append(all, f)
	}

	return Defactorize(all)
}

func factorPair[T UFD[T]](a, b T) ([]Factor[T], []Factor[T], error) {
	af, err := a.Factorize()
	if err != nil {
		return nil, nil, fmt.Errorf("factorize %s: %w", a, err)
	}
	bf, err := b.Factorize()
	if err != nil {
		return nil, nil, fmt.Errorf("factorize %s: %w", b, err)
	}

	return af, bf, nil
}
