// SPDX-License-Identifier: MIT
package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/poly"
)

func TestSolve(t *testing.T) {
	_, err := poly.Solve(poly.Poly[Q]{})
	require.ErrorIs(t, err, poly.ErrInfiniteSolutions)

	roots, err := poly.Solve(ints(5))
	require.NoError(t, err)
	assert.Empty(t, roots)

	roots, err = poly.Solve(ints(3, 2))
	require.NoError(t, err)
	assert.Equal(t, []Q{q(-3, 2)}, roots)

	_, err = poly.Solve(ints(6, -5, 1))
	require.ErrorIs(t, err, poly.ErrUnsupportedDegree)

	i := field.NewComplex(Q{}, q(1, 1))
	croots, err := poly.Solve(poly.New(i, i.One()))
	require.NoError(t, err)
	assert.True(t, croots[0].Equal(i.Neg()))
}

func TestSolveSymbolic(t *testing.T) {
	roots, err := poly.SolveSymbolic(ints(6, -5, 1))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Equal(field.FromRational(q(3, 1))))
	assert.True(t, roots[1].Equal(field.FromRational(q(2, 1))))

	roots, err = poly.SolveSymbolic(ints(-2, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, map[int64]Q{2: q(1, 1)}, roots[0].Terms())
	assert.Equal(t, map[int64]Q{2: q(-1, 1)}, roots[1].Terms())

	// 2x² − 2x − 1: (1 ± √3)/2
	roots, err = poly.SolveSymbolic(ints(-1, -2, 2))
	require.NoError(t, err)
	assert.Equal(t, map[int64]Q{1: q(1, 2), 3: q(1, 2)}, roots[0].Terms())
	assert.Equal(t, map[int64]Q{1: q(1, 2), 3: q(-1, 2)}, roots[1].Terms())

	// double root
	roots, err = poly.SolveSymbolic(ints(1, -2, 1))
	require.NoError(t, err)
	assert.True(t, roots[0].Equal(roots[1]))

	roots, err = poly.SolveSymbolic(ints(1, 2))
	require.NoError(t, err)
	assert.True(t, roots[0].Equal(field.FromRational(q(-1, 2))))
}

func TestSolveSymbolicRootsAreRoots(t *testing.T) {
	for _, p := range []poly.Poly[Q]{ints(-2, 0, 1), ints(-1, -2, 2), ints(-7, 3, 5)} {
		roots, err := poly.SolveSymbolic(p)
		require.NoError(t, err)
		lifted := poly.MapCoefficients(p, field.RationalToRatioRoots)
		for _, r := range roots {
			assert.True(t, lifted.Evaluate(r).IsZero(), "%s at %s", p, r)
		}
	}
}

func TestSolveSymbolicErrors(t *testing.T) {
	_, err := poly.SolveSymbolic(poly.Poly[Q]{})
	require.ErrorIs(t, err, poly.ErrInfiniteSolutions)

	_, err = poly.SolveSymbolic(ints(1, 0, 0, 1))
	require.ErrorIs(t, err, poly.ErrUnsupportedDegree)

	_, err = poly.SolveSymbolic(ints(1, 0, 1))
	require.ErrorIs(t, err, poly.ErrComplexRoots)
}

func TestSolveSymbolicComplex(t *testing.T) {
	// x² + 2x + 5: −1 ± 2i
	roots, err := poly.SolveSymbolicComplex(ints(5, 2, 1))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].Real().Equal(field.FromRational(q(-1, 1))))
	assert.True(t, roots[0].Imag().Equal(field.FromRational(q(2, 1))))
	assert.True(t, roots[1].Imag().Equal(field.FromRational(q(-2, 1))))

	roots, err = poly.SolveSymbolicComplex(ints(-2, 0, 1))
	require.NoError(t, err)
	assert.True(t, roots[0].Imag().IsZero())
	assert.Equal(t, map[int64]Q{2: q(1, 1)}, roots[0].Real().Terms())
}
