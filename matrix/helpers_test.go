// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures built from integer or fraction literals.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surdalg/field"
	"github.com/katalvlaran/surdalg/matrix"
)

func q(n, d int64) field.Rational { return field.MustRational(n, d) }

// ints builds a rational matrix from integer rows or fails the test.
func ints(t *testing.T, rows ...[]int64) *matrix.SquareMatrix[field.Rational] {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// fracs builds a rational matrix from "n/d" cells or fails the test.
func fracs(t *testing.T, rows ...[]string) *matrix.SquareMatrix[field.Rational] {
	t.Helper()
	m, err := matrix.Parse(rows)
	require.NoError(t, err)

	return m
}

// requireEqual compares matrices entry-wise and prints both on failure.
func requireEqual[T matrix.Entry[T]](t *testing.T, want, got *matrix.SquareMatrix[T]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want\n%s\ngot\n%s", want, got)
}
