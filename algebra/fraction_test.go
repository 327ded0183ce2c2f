// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/algebra"
)

type Q = algebra.FieldOfFractions[Z]

func mustFrac(t *testing.T, n, d Z) Q {
	t.Helper()
	f, err := algebra.NewFraction(n, d)
	require.NoError(t, err)

	return f
}

func TestNewFractionReduces(t *testing.T) {
	for _, tc := range []struct {
		n, d         Z
		wantN, wantD Z
	}{
		{6, 8, 3, 4},
		{-4, -8, 1, 2},
		{4, -8, -1, 2},
		{0, -7, 0, 1},
		{12, 1, 12, 1},
		{1, -1, -1, 1},
		{-360, 84, -30, 7},
	} {
		f := mustFrac(t, tc.n, tc.d)
		assert.Equal(t, tc.wantN, f.Num(), "%d/%d num", tc.n, tc.d)
		assert.Equal(t, tc.wantD, f.Den(), "%d/%d den", tc.n, tc.d)
	}
}

func TestNewFractionZeroDenominator(t *testing.T) {
	_, err := algebra.NewFraction(Z(1), Z(0))
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestFractionArithmetic(t *testing.T) {
	half := mustFrac(t, 1, 2)
	third := mustFrac(t, 1, 3)

	sum := half.Add(third)
	assert.Equal(t, "5/6", sum.String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Quo(third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	inv, err := mustFrac(t, -2, 3).Inverse()
	require.NoError(t, err)
	assert.Equal(t, Z(-3), inv.Num())
	assert.Equal(t, Z(2), inv.Den())

	assert.True(t, half.Add(half).Equal(half.One()))
	assert.True(t, half.Sub(half).IsZero())
	assert.Equal(t, "1", half.Add(half).String())

	_, err = half.Zero().Inverse()
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
	_, ok := half.Zero().TryInverse()
	assert.False(t, ok)
}

func TestFractionFieldPow(t *testing.T) {
	p, err := algebra.FieldPow(mustFrac(t, 2, 3), -2)
	require.NoError(t, err)
	assert.Equal(t, "9/4", p.String())

	_, err = algebra.FieldPow(mustFrac(t, 0, 1), -1)
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestFractionEqualCrossMultiplies(t *testing.T) {
	assert.True(t, mustFrac(t, 2, 4).Equal(mustFrac(t, -3, -6)))
	assert.False(t, mustFrac(t, 1, 2).Equal(mustFrac(t, 1, 3)))
}
