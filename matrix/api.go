// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//
// AI-Hints:
//   - FromInts/Parse build rational matrices from literals or text cells.
//   - RREF is Eliminate when only R is needed.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/surdalg/field"
)

// FromInts builds a rational matrix from integer rows.
// Errors: ErrInvalidDimensions, ErrNonSquare.
func FromInts(rows [][]int64) (*SquareMatrix[field.Rational], error) {
	n, err := validateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	m := newSquare[field.Rational](n)
	for i, row := range rows {
		for j, v := range row {
			m.data[i*n+j] = field.FromInt(v)
		}
	}

	return m, nil
}

// Parse builds a rational matrix from "n" or "n/d" cells.
// Errors: ErrInvalidDimensions, ErrNonSquare; field.ParseRational errors
// carry the offending cell position.
func Parse(rows [][]string) (*SquareMatrix[field.Rational], error) {
	n, err := validateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	m := newSquare[field.Rational](n)
	for i, row := range rows {
		for j, s := range row {
			q, err := field.ParseRational(s)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
			m.data[i*n+j] = q
		}
	}

	return m, nil
}

// IdentityLike returns the identity of m's size and entry type.
func IdentityLike[T Entry[T]](m *SquareMatrix[T]) *SquareMatrix[T] { return identity[T](m.n) }

// ZerosLike returns the zero matrix of m's size and entry type.
func ZerosLike[T Entry[T]](m *SquareMatrix[T]) *SquareMatrix[T] { return zeros[T](m.n) }

// RREF returns the row-reduced echelon form of m.
func RREF[F field.Scalar[F]](m *SquareMatrix[F]) (*SquareMatrix[F], error) {
	r, _, _, err := Eliminate(m)
	return r, err
}

// Commutator returns AB − BA.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Commutator[T Entry[T]](a, b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	ab, err := a.MatMul(b)
	if err != nil {
		return nil, err
	}

	return ab.Sub(b.mul(a))
}
