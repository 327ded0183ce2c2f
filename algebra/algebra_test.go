// SPDX-License-Identifier: MIT
package algebra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/algebra"
)

type Z = algebra.Integer

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		base Z
		n    int
		want Z
	}{
		{2, 0, 1}, {2, 1, 2}, {2, 10, 1024}, {-3, 3, -27}, {-3, 4, 81}, {0, 0, 1}, {0, 5, 0}, {7, 13, 96889010407},
	} {
		got, err := algebra.Pow(tc.base, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d^%d", tc.base, tc.n)
	}

	_, err := algebra.Pow(Z(2), -1)
	require.ErrorIs(t, err, algebra.ErrInvalidInput)
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, Z(10), algebra.Sum[Z](1, 2, 3, 4))
	assert.Equal(t, Z(24), algebra.Product[Z](1, 2, 3, 4))
	assert.Equal(t, Z(0), algebra.Sum[Z]())
	assert.Equal(t, Z(1), algebra.Product[Z]())
}

func TestIntegerFactorize(t *testing.T) {
	f, err := Z(-360).Factorize()
	require.NoError(t, err)
	assert.Equal(t, []algebra.Factor[Z]{{-1, 1}, {2, 3}, {3, 2}, {5, 1}}, f)

	f, err = Z(1).Factorize()
	require.NoError(t, err)
	assert.Empty(t, f)

	back, err := algebra.Defactorize([]algebra.Factor[Z]{{-1, 1}, {2, 3}, {3, 2}, {5, 1}})
	require.NoError(t, err)
	assert.Equal(t, Z(-360), back)

	_, err = Z(0).Factorize()
	require.ErrorIs(t, err, algebra.ErrInvalidInput)
}

func TestIntegerUnits(t *testing.T) {
	inv, ok := Z(-1).TryInverse()
	assert.True(t, ok)
	assert.Equal(t, Z(-1), inv)

	inv, ok = Z(1).TryInverse()
	assert.True(t, ok)
	assert.Equal(t, Z(1), inv)

	_, ok = Z(2).TryInverse()
	assert.False(t, ok)
}

func TestGCDLCM(t *testing.T) {
	for _, tc := range []struct {
		a, b     Z
		gcd, lcm Z
	}{
		{12, 18, 6, 36},
		{-12, 18, 6, 36},
		{7, 13, 1, 91},
		{1, 5, 1, 5},
		{-4, -6, 2, 12},
		{360, 84, 12, 2520},
	} {
		g, err := algebra.GCD(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.gcd, g, "gcd(%d,%d)", tc.a, tc.b)

		l, err := algebra.LCM(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.lcm, l, "lcm(%d,%d)", tc.a, tc.b)
	}

	_, err := algebra.GCD(Z(0), Z(3))
	require.ErrorIs(t, err, algebra.ErrInvalidInput)
}

func TestCheckedArithmeticPanics(t *testing.T) {
	assert.Equal(t, int64(6), algebra.CheckedMul(-2, -3))
	assert.Equal(t, int64(math.MinInt64), algebra.CheckedMul(math.MinInt64, 1))
	assert.Equal(t, int64(-5), algebra.CheckedAdd(-2, -3))

	for name, fn := range map[string]func(){
		"add": func() { algebra.CheckedAdd(math.MaxInt64, 1) },
		"mul": func() { algebra.CheckedMul(math.MaxInt64/2+1, 2) },
		"neg": func() { algebra.CheckedNeg(math.MinInt64) },
		"sub": func() { algebra.CheckedAdd(math.MinInt64, -1) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, algebra.ErrOverflow))
			}()
			fn()
		})
	}
}

func TestGCD64(t *testing.T) {
	assert.Equal(t, int64(6), algebra.GCD64(-12, 18))
	assert.Equal(t, int64(5), algebra.GCD64(0, -5))
	assert.Equal(t, int64(0), algebra.GCD64(0, 0))
}
