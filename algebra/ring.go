// SPDX-License-Identifier: MIT

package algebra

import "fmt"

// Ring is the commutative-ring capability set. T is the implementing type
// itself (F-bounded), e.g. `field.Rational` implements Ring[field.Rational].
type Ring[T any] interface {
	// Clone returns an independent copy. For plain values this is the value.
	Clone() T
	// Zero returns the additive identity; the receiver is ignored.
	Zero() T
	// One returns the multiplicative identity; the receiver is ignored.
	One() T
	Add(other T) T
	Neg() T
	Mul(other T) T
	Equal(other T) bool
	IsZero() bool
	// TryInverse returns (x⁻¹, true) when x is a unit and (zero, false)
	// otherwise. It never fails.
	TryInverse() (T, bool)
	String() string
}

// Field extends Ring with subtraction and fallible division.
type Field[T any] interface {
	Ring[T]
	Sub(other T) T
	// Inverse returns x⁻¹ or ErrDivisionByZero for the zero element.
	Inverse() (T, error)
	// Quo returns x / other or ErrDivisionByZero when other is zero.
	Quo(other T) (T, error)
}

// Pow returns a^n by binary exponentiation (n ≥ 0). Pow(a, 0) is One.
// Errors: ErrInvalidInput for n < 0.
// Complexity: O(log n) multiplications.
func Pow[T Ring[T]](a T, n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, algebraErrorf(opPow, fmt.Errorf("%w: negative exponent %d", ErrInvalidInput, n))
	}
	result := a.One()
	base := a.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// FieldPow returns a^n for any integer n; a negative n inverts a first.
// Errors: ErrDivisionByZero for a zero base with n < 0.
func FieldPow[F Field[F]](a F, n int) (F, error) {
	if n < 0 {
		inv, err := a.Inverse()
		if err != nil {
			var zero F
			return zero, algebraErrorf(opFieldPow, err)
		}
		a, n = inv, -n
	}

	return Pow(a, n)
}

// Sum folds Add over xs starting from Zero.
func Sum[T Ring[T]](xs ...T) T {
	var acc T
	acc = acc.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Product folds Mul over xs starting from One.
func Product[T Ring[T]](xs ...T) T {
	var acc T
	acc = acc.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}

	return acc
}
