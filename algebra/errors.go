// SPDX-License-Identifier: MIT
// Package algebra: the shared error taxonomy.
// Field types in other packages return these sentinels (or aliases of them)
// so errors.Is matches across the whole tower.

package algebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surdalg/numtheory"
)

var (
	// ErrInvalidInput marks an out-of-range or otherwise unusable argument,
	// e.g. a negative exponent where a natural number is required.
	// It is the number-theory sentinel so both packages match the same cause.
	ErrInvalidInput = numtheory.ErrInvalidInput

	// ErrDivisionByZero is returned when inverting or dividing by a zero element.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrInternalInvariant marks a broken canonical-form invariant. It is an
	// assertion failure and indicates a bug, never bad user input.
	ErrInternalInvariant = errors.New("algebra: internal invariant violated")

	// ErrOverflow is raised (as a panic value) when exact int64 arithmetic
	// leaves the representable range.
	ErrOverflow = errors.New("algebra: int64 overflow")
)

// Operation tags for uniform error wrapping.
const (
	opPow         = "Pow"
	opFieldPow    = "FieldPow"
	opDefactorize = "Defactorize"
	opGCD         = "GCD"
	opLCM         = "LCM"
	opFraction    = "FieldOfFractions"
	opFactorize   = "Integer.Factorize"
)

// algebraErrorf wraps err with an operation tag; err must be non-nil.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
