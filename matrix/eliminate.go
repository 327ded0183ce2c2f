// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination over an exact field.
//
// Purpose:
//   - Reduce M to row-reduced echelon form R while replaying every row
//     operation on a copy of the identity, producing T with T·M = R.
//   - Derive rank, inverse and linear solves from that single pass.
//
// Determinism:
//   - The pivot is the first non-zero entry from the top; no partial
//     pivoting is needed because arithmetic is exact.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/surdalg/field"
)

// Eliminate runs Gauss-Jordan elimination on a copy of m and returns the
// row-reduced echelon form R, the invertible transform T with T·M = R, and
// the number of pivots.
// MAIN DESCRIPTION:
//   - The input is never modified; R and T are fresh matrices.
//
// Implementation:
//   - Stage 1: R = clone(m), T = Iₙ, start row s = 0, active column c = 0.
//   - Stage 2: while c < n and s < n, find the first row r ≥ s with
//     R[r,c] ≠ 0. None: advance c and continue.
//   - Stage 3: swap rows r and s in R and T; divide row s of both by the
//     pivot (all columns, so R[s,c] becomes 1).
//   - Stage 4: for every other row i, subtract R[i,c]·row s from row i of
//     both matrices. Then rank++, s++, c++.
//
// Behavior highlights:
//   - Each row operation is applied identically to R and T, so T·M = R
//     holds after every step.
//   - rank == n exactly when R is the identity, and then T = M⁻¹.
//
// Errors:
//   - ErrNilMatrix; ErrDivisionByZero would indicate a corrupted pivot.
//
// Complexity:
//   - Time O(n³) field operations, Space O(n²).
func Eliminate[F field.Scalar[F]](m *SquareMatrix[F]) (reduced, transform *SquareMatrix[F], rank int, err error) {
	if err = validateNotNil(m); err != nil {
		return nil, nil, 0, matrixErrorf(opEliminate, err)
	}
	n := m.n
	r := m.Clone()
	t := identity[F](n)

	for s, c := 0, 0; c < n && s < n; {
		p := -1
		for i := s; i < n; i++ {
			if !r.data[i*n+c].IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			c++
			continue
		}
		r.swapRows(p, s)
		t.swapRows(p, s)

		inv, err := r.data[s*n+c].Inverse()
		if err != nil {
			return nil, nil, 0, matrixErrorf(opEliminate, fmt.Errorf("pivot (%d,%d): %w", s, c, err))
		}
		r.scaleRow(s, inv)
		t.scaleRow(s, inv)

		for i := 0; i < n; i++ {
			if i == s {
				continue
			}
			f := r.data[i*n+c]
			if f.IsZero() {
				continue
			}
			r.subRow(i, s, f)
			t.subRow(i, s, f)
		}
		rank++
		s++
		c++
	}

	return r, t, rank, nil
}

// swapRows exchanges rows a and b in place.
func (m *SquareMatrix[T]) swapRows(a, b int) {
	if a == b {
		return
	}
	n := m.n
	for j := 0; j < n; j++ {
		m.data[a*n+j], m.data[b*n+j] = m.data[b*n+j], m.data[a*n+j]
	}
}

// scaleRow replaces row i by f·row i.
func (m *SquareMatrix[T]) scaleRow(i int, f T) {
	n := m.n
	for j := 0; j < n; j++ {
		m.data[i*n+j] = m.data[i*n+j].Mul(f)
	}
}

// subRow replaces row i by row i − f·row s.
func (m *SquareMatrix[T]) subRow(i, s int, f T) {
	n := m.n
	for j := 0; j < n; j++ {
		m.data[i*n+j] = m.data[i*n+j].Add(m.data[s*n+j].Mul(f).Neg())
	}
}

// Rank returns the rank of m.
// Errors: ErrNilMatrix.
func Rank[F field.Scalar[F]](m *SquareMatrix[F]) (int, error) {
	_, _, rank, err := Eliminate(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}

// Inverse returns m⁻¹, the transform of a full-rank elimination.
// Errors: ErrNilMatrix; ErrSingular when rank < n.
func Inverse[F field.Scalar[F]](m *SquareMatrix[F]) (*SquareMatrix[F], error) {
	_, t, rank, err := Eliminate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if rank < m.n {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%w: rank %d < %d", ErrSingular, rank, m.n))
	}

	return t, nil
}

// Solve returns the unique x with m·x = b.
// Errors: ErrNilMatrix; ErrDimensionMismatch for len(b) != n; ErrSingular
// when m is not invertible.
// Complexity: O(n³).
func Solve[F field.Scalar[F]](m *SquareMatrix[F], b []F) ([]F, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := validateVecLen(b, m.n); err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len %d for size %d: %w", len(b), m.n, err))
	}
	inv, err := Inverse(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return inv.MatMulVec(b)
}
