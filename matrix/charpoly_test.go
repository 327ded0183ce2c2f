// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/matrix"
	"github.com/katalvlaran/surdalg/poly"
)

func TestCharPoly(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.SquareMatrix[field.Rational]
		want string
	}{
		{"1x1", ints(t, []int64{5}), "-x + 5"},
		{"upper", ints(t, []int64{3, 1}, []int64{0, 2}), "x^2 - 5*x + 6"},
		{"fibonacci", ints(t, []int64{1, 1}, []int64{1, 0}), "x^2 - x - 1"},
		{"rotation", ints(t, []int64{0, -1}, []int64{1, 0}), "x^2 + 1"},
		{"identity3", ints(t, []int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1}), "-x^3 + 3*x^2 - 3*x + 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := matrix.CharPoly(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

// TestCharPoly_Invariants checks p(0) = det, the λⁿ⁻¹ coefficient
// (−1)ⁿ⁻¹·trace and Cayley-Hamilton p(M) = 0.
func TestCharPoly_Invariants(t *testing.T) {
	m := fracs(t,
		[]string{"2", "1/2", "0"},
		[]string{"-1", "3", "1/3"},
		[]string{"4", "0", "-1"})

	p, err := matrix.CharPoly(m)
	require.NoError(t, err)
	require.Equal(t, 3, p.Degree())

	assert.Equal(t, m.Determinant(), p.Evaluate(q(0, 1)))
	assert.Equal(t, m.Trace(), p.Coefficient(2))
	assert.Equal(t, q(-1, 1), p.Leading())

	acc := matrix.ZerosLike(m)
	for k, c := range p.Coefficients() {
		mk, err := m.Pow(k)
		require.NoError(t, err)
		acc, err = acc.Add(mk.Scale(c))
		require.NoError(t, err)
	}
	assert.True(t, acc.IsZero(), "p(M) must vanish:\n%s", acc)
}

func TestCharPoly_Complex(t *testing.T) {
	i := field.NewComplex(q(0, 1), q(1, 1))
	one := i.One()
	m := matrix.MustNew([][]field.ComplexRational{{i, one}, {one.Zero(), i.Neg()}})

	p, err := matrix.CharPoly(m)
	require.NoError(t, err)
	// (i − λ)(−i − λ) = λ² + 1
	assert.True(t, p.Equal(poly.New(one, one.Zero(), one)))
}

func TestLambdaShift(t *testing.T) {
	m := ints(t, []int64{1, 2}, []int64{3, 4})
	s := matrix.LambdaShift(m)
	assert.Equal(t, `$$\begin{pmatrix}-x + 1 & 2\\3 & -x + 4\end{pmatrix}$$`, s.LaTeX())
}

func TestEigenRoots(t *testing.T) {
	roots, err := matrix.EigenRoots(ints(t, []int64{3, 1}, []int64{0, 2}))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "3", roots[0].String())
	assert.Equal(t, "2", roots[1].String())

	roots, err = matrix.EigenRoots(ints(t, []int64{1, 1}, []int64{1, 0}))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "1/2 + 1/2*sqrt(5)", roots[0].String())
	assert.Equal(t, "1/2 - 1/2*sqrt(5)", roots[1].String())

	roots, err = matrix.EigenRoots(ints(t, []int64{7}))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "7", roots[0].String())
}

func TestEigenRoots_Errors(t *testing.T) {
	_, err := matrix.EigenRoots(ints(t, []int64{0, -1}, []int64{1, 0}))
	require.ErrorIs(t, err, poly.ErrComplexRoots)

	_, err = matrix.EigenRoots(ints(t, []int64{1, 0, 0}, []int64{0, 2, 0}, []int64{0, 0, 3}))
	require.ErrorIs(t, err, poly.ErrUnsupportedDegree)

	_, err = matrix.EigenRoots(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigenRootsComplex(t *testing.T) {
	roots, err := matrix.EigenRootsComplex(ints(t, []int64{0, -1}, []int64{1, 0}))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "i", roots[0].LaTeX())
	assert.Equal(t, "-i", roots[1].LaTeX())

	roots, err = matrix.EigenRootsComplex(ints(t, []int64{1, -2}, []int64{1, 1}))
	require.NoError(t, err)
	// λ² − 2λ + 3: 1 ± i√2
	assert.Equal(t, `1 + \sqrt{2}i`, roots[0].LaTeX())
	assert.Equal(t, `1 - \sqrt{2}i`, roots[1].LaTeX())
}
