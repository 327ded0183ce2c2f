// SPDX-License-Identifier: MIT

// Package matrix: entry constraints.
// Ring-level kernels (products, minors, determinant) need only Entry;
// elimination-based kernels need a field (field.Scalar).
package matrix

import "github.com/katalvlaran/surdalg/algebra"

// Entry is any ring element that can typeset itself: every field of
// package field and every poly.Poly over one of them.
type Entry[T any] interface {
	algebra.Ring[T]
	LaTeX() string
}
