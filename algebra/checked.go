// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math"
	"math/bits"
)

// CheckedAdd returns a+b, panicking with ErrOverflow outside int64.
func CheckedAdd(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		panic(fmt.Errorf("%w: %d + %d", ErrOverflow, a, b))
	}

	return c
}

// CheckedMul returns a*b, panicking with ErrOverflow outside int64.
func CheckedMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi != 0 || (!neg && lo > math.MaxInt64) || (neg && lo > 1<<63) {
		panic(fmt.Errorf("%w: %d * %d", ErrOverflow, a, b))
	}
	if neg {
		return int64(-lo)
	}

	return int64(lo)
}

// CheckedNeg returns -a, panicking with ErrOverflow for math.MinInt64.
func CheckedNeg(a int64) int64 {
	if a == math.MinInt64 {
		panic(fmt.Errorf("%w: -(%d)", ErrOverflow, a))
	}

	return -a
}

// GCD64 returns gcd(|a|, |b|) by Euclid; GCD64(0, 0) = 0.
func GCD64(a, b int64) int64 {
	if a < 0 {
		a = CheckedNeg(a)
	}
	if b < 0 {
		b = CheckedNeg(b)
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func absU(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}
