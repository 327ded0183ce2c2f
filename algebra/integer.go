// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/surdalg/numtheory"
)

// Integer is the ring ℤ restricted to int64, the reference UFD.
// Arithmetic panics with ErrOverflow outside the int64 range.
type Integer int64

var _ UFD[Integer] = Integer(0)

// Clone returns n.
func (n Integer) Clone() Integer { return n }

// Zero returns the additive identity.
func (Integer) Zero() Integer { return 0 }

// One returns the multiplicative identity.
func (Integer) One() Integer { return 1 }

// Add panics with ErrOverflow outside int64.
func (n Integer) Add(m Integer) Integer { return Integer(CheckedAdd(int64(n), int64(m))) }

// Neg panics with ErrOverflow for math.MinInt64.
func (n Integer) Neg() Integer { return Integer(CheckedNeg(int64(n))) }

// Mul panics with ErrOverflow outside int64.
func (n Integer) Mul(m Integer) Integer { return Integer(CheckedMul(int64(n), int64(m))) }

// Equal reports structural equality of canonical forms.
func (n Integer) Equal(m Integer) bool { return n == m }

// IsZero reports whether the value is zero.
func (n Integer) IsZero() bool { return n == 0 }

// String renders n in base 10.
func (n Integer) String() string { return strconv.FormatInt(int64(n), 10) }

// TryInverse succeeds only for the units ±1, each its own inverse.
func (n Integer) TryInverse() (Integer, bool) {
	if n == 1 || n == -1 {
		return n, true
	}

	return 0, false
}

// Factorize returns −1 (exponent 1) first when n is negative, followed by
// the prime factors of |n| in ascending order. 1 factorizes to the empty list.
// Errors: ErrInvalidInput for 0 or |n| above the number-theory ceiling.
func (n Integer) Factorize() ([]Factor[Integer], error) {
	if n == 0 {
		return nil, algebraErrorf(opFactorize, fmt.Errorf("%w: zero has no factorization", ErrInvalidInput))
	}
	out := make([]Factor[Integer], 0, 4)
	abs := int64(n)
	if abs < 0 {
		out = append(out, Factor[Integer]{Factor: -1, Exponent: 1})
		abs = CheckedNeg(abs)
	}
	f, err := numtheory.Factorize(abs)
	if err != nil {
		return nil, algebraErrorf(opFactorize, err)
	}
	for _, p := range f.Primes() {
		out = append(out, Factor[Integer]{Factor: Integer(p), Exponent: f[p]})
	}

	return out, nil
}
