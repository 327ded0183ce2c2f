// SPDX-License-Identifier: MIT
// Package numtheory: sentinel error set.
// Kernels return ErrInvalidInput wrapped with an operation tag; callers match
// it via errors.Is.

package numtheory

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an argument is negative, zero where a
// positive value is required, or above the configured ceiling.
var ErrInvalidInput = errors.New("numtheory: invalid input")

// Operation tags for uniform error wrapping.
const (
	opIsPrime   = "IsPrime"
	opFactorize = "Factorize"
	opGCD       = "GCD"
	opSigma     = "Sigma"
)

// ntErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must pass a non-nil err.
func ntErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
