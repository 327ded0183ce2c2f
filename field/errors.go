// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// The sentinels are aliases of the algebra taxonomy so errors.Is matches
// no matter which layer of the tower detected the failure.

package field

import (
	"fmt"

	"github.com/katalvlaran/surdalg/algebra"
)

var (
	// ErrInvalidInput marks a malformed literal, a non-positive radicand or
	// the square root of a negative rational.
	ErrInvalidInput = algebra.ErrInvalidInput

	// ErrDivisionByZero is returned by Inverse and Quo on a zero element.
	ErrDivisionByZero = algebra.ErrDivisionByZero

	// ErrInternalInvariant is returned when ratio-roots inversion fails to
	// reach a rational value (a canonicalization bug).
	ErrInternalInvariant = algebra.ErrInternalInvariant

	// ErrOverflow is the panic cause when int64 arithmetic overflows.
	ErrOverflow = algebra.ErrOverflow
)

// Operation tags.
const (
	opNewRational    = "NewRational"
	opParseRational  = "ParseRational"
	opInverse        = "Rational.Inverse"
	opSqrt           = "Rational.Sqrt"
	opNewRatioRoots  = "NewRatioRoots"
	opRRInverse      = "RatioRoots.Inverse"
	opComplexInverse = "Complex.Inverse"
	opNorm           = "Norm"
)

// fieldErrorf wraps err with an operation tag; err must be non-nil.
func fieldErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
