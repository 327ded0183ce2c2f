// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/matrix"
)

func TestEliminate_FullRank(t *testing.T) {
	m := ints(t, []int64{3, 1}, []int64{0, 2})

	r, tr, rank, err := matrix.Eliminate(m)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	requireEqual(t, matrix.IdentityLike(m), r)
	requireEqual(t, fracs(t, []string{"1/3", "-1/6"}, []string{"0", "1/2"}), tr)

	// input untouched
	requireEqual(t, ints(t, []int64{3, 1}, []int64{0, 2}), m)
}

func TestEliminate_RankDeficient(t *testing.T) {
	m := ints(t, []int64{3, 1}, []int64{6, 2})

	r, tr, rank, err := matrix.Eliminate(m)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	requireEqual(t, fracs(t, []string{"1", "1/3"}, []string{"0", "0"}), r)
	requireEqual(t, fracs(t, []string{"1/3", "0"}, []string{"-2", "1"}), tr)
}

func TestEliminate_ZeroColumnAndSwap(t *testing.T) {
	m := ints(t, []int64{0, 0, 1}, []int64{0, 2, 4}, []int64{0, 0, 0})

	r, tr, rank, err := matrix.Eliminate(m)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	requireEqual(t, ints(t, []int64{0, 1, 0}, []int64{0, 0, 1}, []int64{0, 0, 0}), r)

	tm, err := tr.MatMul(m)
	require.NoError(t, err)
	requireEqual(t, r, tm)
}

// TestEliminate_TransformInvariant checks T·M = R on a spread of inputs.
func TestEliminate_TransformInvariant(t *testing.T) {
	inputs := []*matrix.SquareMatrix[field.Rational]{
		ints(t, []int64{0}),
		ints(t, []int64{7}),
		ints(t, []int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9}),
		ints(t, []int64{0, 1, 2}, []int64{1, 0, 3}, []int64{4, -3, 8}),
		fracs(t, []string{"1/2", "1/3", "1/4"}, []string{"1/3", "1/4", "1/5"}, []string{"1/4", "1/5", "1/6"}),
		ints(t, []int64{2, 4, 1, 0}, []int64{1, 2, 0, 0}, []int64{0, 0, 0, 0}, []int64{3, 6, 1, 0}),
	}
	for i, m := range inputs {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			r, tr, rank, err := matrix.Eliminate(m)
			require.NoError(t, err)

			tm, err := tr.MatMul(m)
			require.NoError(t, err)
			requireEqual(t, r, tm)

			assert.False(t, tr.Determinant().IsZero(), "transform must be invertible")
			assert.Equal(t, rank == m.Size(), r.Equal(matrix.IdentityLike(m)))

			nonZero := 0
			for i := 0; i < r.Size(); i++ {
				row, err := r.Row(i)
				require.NoError(t, err)
				for _, v := range row {
					if !v.IsZero() {
						nonZero++
						break
					}
				}
			}
			assert.Equal(t, rank, nonZero, "rank counts the non-zero rows of R")
		})
	}
}

func TestRank(t *testing.T) {
	cases := []struct {
		m    *matrix.SquareMatrix[field.Rational]
		want int
	}{
		{ints(t, []int64{0, 0}, []int64{0, 0}), 0},
		{ints(t, []int64{1, 2}, []int64{2, 4}), 1},
		{ints(t, []int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9}), 2},
		{ints(t, []int64{2, -1, 0}, []int64{-1, 2, -1}, []int64{0, -1, 2}), 3},
	}
	for _, tc := range cases {
		got, err := matrix.Rank(tc.m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s", tc.m)
	}
}

func TestInverse(t *testing.T) {
	m := ints(t, []int64{2, -1, 0}, []int64{-1, 2, -1}, []int64{0, -1, 2})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	requireEqual(t, fracs(t,
		[]string{"3/4", "1/2", "1/4"},
		[]string{"1/2", "1", "1/2"},
		[]string{"1/4", "1/2", "3/4"}), inv)

	prod, err := m.MatMul(inv)
	require.NoError(t, err)
	requireEqual(t, matrix.IdentityLike(m), prod)

	assert.Equal(t, q(1, 4), inv.Determinant())
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse(ints(t, []int64{1, 2}, []int64{2, 4}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, err.Error(), "rank 1 < 2")
}

func TestSolve(t *testing.T) {
	m := ints(t, []int64{2, 1}, []int64{1, 3})

	x, err := matrix.Solve(m, []field.Rational{q(3, 1), q(5, 1)})
	require.NoError(t, err)
	assert.Equal(t, []field.Rational{q(4, 5), q(7, 5)}, x)

	back, err := m.MatMulVec(x)
	require.NoError(t, err)
	assert.Equal(t, []field.Rational{q(3, 1), q(5, 1)}, back)

	_, err = matrix.Solve(m, []field.Rational{q(1, 1)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(ints(t, []int64{1, 1}, []int64{1, 1}), []field.Rational{q(1, 1), q(2, 1)})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestElimination_NilMatrix(t *testing.T) {
	var m *matrix.SquareMatrix[field.Rational]

	_, _, _, err := matrix.Eliminate(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Rank(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RREF(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRREF(t *testing.T) {
	r, err := matrix.RREF(ints(t, []int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9}))
	require.NoError(t, err)
	requireEqual(t, ints(t, []int64{1, 0, -1}, []int64{0, 1, 2}, []int64{0, 0, 0}), r)
}
