// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels wrapped with an operation tag,
// and tests check them via errors.Is. Panics are reserved for programmer
// errors in option constructors and for int64 overflow in the entry fields.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surdalg/algebra"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(opTag, ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch -> singularity.

var (
	// ErrNilMatrix indicates that a nil *SquareMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates an empty row set or a requested size ≤ 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a row of the input does not have n entries.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Minor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes, or a vector
	// whose length differs from the matrix size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse and Solve when rank < n.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero aliases the shared algebra sentinel.
	ErrDivisionByZero = algebra.ErrDivisionByZero

	// ErrInvalidInput aliases the shared algebra sentinel (negative powers).
	ErrInvalidInput = algebra.ErrInvalidInput
)

// Operation tags for uniform error wrapping.
const (
	opNew        = "New"
	opZeros      = "Zeros"
	opIdentity   = "Identity"
	opAdd        = "Add"
	opSub        = "Sub"
	opMatMul     = "MatMul"
	opMatMulEq   = "MatMulEq"
	opMatMulVec  = "MatMulVec"
	opPow        = "Pow"
	opMinor      = "Minor"
	opEliminate  = "Eliminate"
	opRank       = "Rank"
	opInverse    = "Inverse"
	opSolve      = "Solve"
	opCharPoly   = "CharPoly"
	opEigenRoots = "EigenRoots"
	opParse      = "ParseRational"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// squareErrorf wraps an error with the accessor context and coordinates.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMatrix.%s(%d,%d): %w", method, row, col, err)
}
