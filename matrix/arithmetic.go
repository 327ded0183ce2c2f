// SPDX-License-Identifier: MIT

// Package matrix - ring-level kernels.
//
// Every kernel here needs only Ring operations (Add, Neg, Mul), so it also
// runs over polynomial entries, which is what CharPoly relies on.
// Operands are never mutated except by MatMulEq.

package matrix

import "fmt"

// Add returns m + o entry-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func (m *SquareMatrix[T]) Add(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return m.combine(o, opAdd, func(a, b T) T { return a.Add(b) })
}

// Sub returns m − o entry-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *SquareMatrix[T]) Sub(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return m.combine(o, opSub, func(a, b T) T { return a.Add(b.Neg()) })
}

func (m *SquareMatrix[T]) combine(o *SquareMatrix[T], tag string, fn func(a, b T) T) (*SquareMatrix[T], error) {
	if err := validateSameSize(m, o); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newSquare[T](m.n)
	for k := range out.data {
		out.data[k] = fn(m.data[k], o.data[k])
	}

	return out, nil
}

// Neg returns −m.
func (m *SquareMatrix[T]) Neg() *SquareMatrix[T] {
	out := newSquare[T](m.n)
	for k, v := range m.data {
		out.data[k] = v.Neg()
	}

	return out
}

// Scale returns s·m.
func (m *SquareMatrix[T]) Scale(s T) *SquareMatrix[T] {
	out := newSquare[T](m.n)
	for k, v := range m.data {
		out.data[k] = s.Mul(v)
	}

	return out
}

// Transpose returns mᵀ.
func (m *SquareMatrix[T]) Transpose() *SquareMatrix[T] {
	out := newSquare[T](m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.data[j*m.n+i] = m.data[i*m.n+j].Clone()
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
func (m *SquareMatrix[T]) Trace() T {
	acc := m.data[0].Zero()
	for i := 0; i < m.n; i++ {
		acc = acc.Add(m.data[i*m.n+i])
	}

	return acc
}

// MatMul returns the product m·o.
// Implementation:
//   - Stage 1: validate both operands (non-nil, same size).
//   - Stage 2: triple loop i→j→k accumulating m[i,k]·o[k,j] from Zero.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³) ring operations, Space O(n²).
func (m *SquareMatrix[T]) MatMul(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if err := validateSameSize(m, o); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return m.mul(o), nil
}

func (m *SquareMatrix[T]) mul(o *SquareMatrix[T]) *SquareMatrix[T] {
	n := m.n
	out := newSquare[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := m.data[0].Zero()
			for k := 0; k < n; k++ {
				acc = acc.Add(m.data[i*n+k].Mul(o.data[k*n+j]))
			}
			out.data[i*n+j] = acc
		}
	}

	return out
}

// MatMulEq replaces m with m·o. On error m is unchanged.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *SquareMatrix[T]) MatMulEq(o *SquareMatrix[T]) error {
	if err := validateSameSize(m, o); err != nil {
		return matrixErrorf(opMatMulEq, err)
	}
	m.data = m.mul(o).data

	return nil
}

// MatMulVec returns the product m·x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != n.
// Complexity: O(n²).
func (m *SquareMatrix[T]) MatMulVec(x []T) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatMulVec, err)
	}
	if err := validateVecLen(x, m.n); err != nil {
		return nil, matrixErrorf(opMatMulVec, fmt.Errorf("len %d for size %d: %w", len(x), m.n, err))
	}
	out := make([]T, m.n)
	for i := 0; i < m.n; i++ {
		acc := m.data[0].Zero()
		for j := 0; j < m.n; j++ {
			acc = acc.Add(m.data[i*m.n+j].Mul(x[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Pow returns mᵏ by binary exponentiation; m⁰ is the identity.
// Errors: ErrNilMatrix; ErrInvalidInput for k < 0 (use Inverse first).
// Complexity: O(n³ log k).
func (m *SquareMatrix[T]) Pow(k int) (*SquareMatrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("%w: negative exponent %d", ErrInvalidInput, k))
	}
	result := identity[T](m.n)
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			result = result.mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.mul(base)
		}
	}

	return result, nil
}

// Minor returns m with row i and column j deleted.
// Errors: ErrOutOfRange for bad indices; ErrInvalidDimensions for a 1×1 m.
func (m *SquareMatrix[T]) Minor(i, j int) (*SquareMatrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if _, err := m.indexOf(i, j); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, err))
	}
	if m.n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return m.minor(i, j), nil
}

func (m *SquareMatrix[T]) minor(row, col int) *SquareMatrix[T] {
	n := m.n - 1
	out := newSquare[T](n)
	k := 0
	for i := 0; i < m.n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.n; j++ {
			if j == col {
				continue
			}
			out.data[k] = m.data[i*m.n+j].Clone()
			k++
		}
	}

	return out
}

// Determinant returns det(m) by Laplace expansion along row 0.
// MAIN DESCRIPTION:
//   - Exact cofactor recursion over any ring (Rational, RatioRoots, Poly, …).
//
// Implementation:
//   - Stage 1: a 1×1 matrix returns its sole entry.
//   - Stage 2: otherwise sum (−1)ʲ · m[0,j] · det(minor(0,j)) over j.
//
// Behavior highlights:
//   - Ring-only: no division, so polynomial entries are fine (CharPoly).
//
// Complexity:
//   - Time O(n!) ring operations; Space O(n²) per recursion level.
//
// Notes:
//   - Elimination would be O(n³) but needs a field; this recursion is the
//     one shared by every entry type.
func (m *SquareMatrix[T]) Determinant() T {
	if m.n == 1 {
		return m.data[0].Clone()
	}
	det := m.data[0].Zero()
	for j := 0; j < m.n; j++ {
		term := m.data[j].Mul(m.minor(0, j).Determinant())
		if j%2 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}

	return det
}
