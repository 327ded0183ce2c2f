// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → SameSize).

package matrix

// validateRows checks a row set is non-empty and square; returns n.
func validateRows[T any](rows [][]T) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, ErrInvalidDimensions
	}
	for _, row := range rows {
		if len(row) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// validateNotNil ensures the matrix reference is non-nil.
func validateNotNil[T Entry[T]](m *SquareMatrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameSize ensures both operands are non-nil and of equal size.
func validateSameSize[T Entry[T]](a, b *SquareMatrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateVecLen ensures len(x) == n.
func validateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
