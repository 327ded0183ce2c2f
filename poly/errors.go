// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.

package poly

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surdalg/algebra"
)

var (
	// ErrUnsupportedDegree is returned when solving beyond the supported degree.
	ErrUnsupportedDegree = errors.New("poly: unsupported degree")

	// ErrInfiniteSolutions is returned when solving the zero polynomial.
	ErrInfiniteSolutions = errors.New("poly: infinitely many solutions")

	// ErrComplexRoots is returned by SolveSymbolic for a negative discriminant.
	ErrComplexRoots = errors.New("poly: roots are not real")

	// ErrInvalidInput aliases the shared sentinel (e.g. negative exponents).
	ErrInvalidInput = algebra.ErrInvalidInput

	// ErrDivisionByZero aliases the shared sentinel.
	ErrDivisionByZero = algebra.ErrDivisionByZero
)

const (
	opSolve         = "Solve"
	opSolveSymbolic = "SolveSymbolic"
	opPow           = "Poly.Pow"
)

func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
