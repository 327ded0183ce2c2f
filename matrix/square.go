// SPDX-License-Identifier: MIT

// Package matrix - SquareMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Deep-copy entries at every boundary so matrices never alias.
//
// Complexity quicksheet:
//   - New: O(n²) clones; At/Set: O(1); Clone/Entries: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/surdalg/field"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// SquareMatrix is an n×n matrix over T in row-major order.
//   - n is the size (> 0 for every public constructor).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type SquareMatrix[T Entry[T]] struct {
	n    int
	data []T
}

var _ fmt.Stringer = (*SquareMatrix[field.Rational])(nil)

// New builds a matrix from rows, deep-copying every entry.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate len(rows) > 0 (ErrInvalidDimensions).
//   - Stage 2: validate every row has len(rows) entries (ErrNonSquare).
//   - Stage 3: clone entries into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Entry[T]](rows [][]T) (*SquareMatrix[T], error) {
	n, err := validateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	m := newSquare[T](n)
	for i, row := range rows {
		for j, v := range row {
			m.data[i*n+j] = v.Clone()
		}
	}

	return m, nil
}

// MustNew is New that panics on error; for literals and tests.
func MustNew[T Entry[T]](rows [][]T) *SquareMatrix[T] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns the n×n zero matrix.
// Errors: ErrInvalidDimensions for n ≤ 0.
func Zeros[T Entry[T]](n int) (*SquareMatrix[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidDimensions)
	}

	return zeros[T](n), nil
}

// Identity returns Iₙ.
// Errors: ErrInvalidDimensions for n ≤ 0.
func Identity[T Entry[T]](n int) (*SquareMatrix[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}

	return identity[T](n), nil
}

// newSquare allocates an n×n buffer of Go zero values; callers fill it.
func newSquare[T Entry[T]](n int) *SquareMatrix[T] {
	return &SquareMatrix[T]{n: n, data: make([]T, n*n)}
}

// zeros and identity skip validation; n > 0 is guaranteed by callers.
func zeros[T Entry[T]](n int) *SquareMatrix[T] {
	m := newSquare[T](n)
	var t T
	for k := range m.data {
		m.data[k] = t.Zero()
	}

	return m
}

func identity[T Entry[T]](n int) *SquareMatrix[T] {
	m := zeros[T](n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = m.data[i*n+i].One()
	}

	return m
}

// Size returns n. Complexity: O(1).
func (m *SquareMatrix[T]) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *SquareMatrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns a copy of the entry at (row, col) or ErrOutOfRange.
// Complexity: O(1) plus one Clone.
func (m *SquareMatrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off].Clone(), nil
}

// Set stores a copy of v at (row, col) or returns ErrOutOfRange.
// The receiver is untouched on error.
func (m *SquareMatrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v.Clone()

	return nil
}

// Row returns a copy of row i.
func (m *SquareMatrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.n {
		return nil, squareErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.n)
	for j := range out {
		out[j] = m.data[i*m.n+j].Clone()
	}

	return out, nil
}

// Entries returns a deep copy of the grid as rows.
func (m *SquareMatrix[T]) Entries() [][]T {
	out := make([][]T, m.n)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(n²) clones.
func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	cp := newSquare[T](m.n)
	for k, v := range m.data {
		cp.data[k] = v.Clone()
	}

	return cp
}

// Equal reports whether o has the same size and equal entries.
func (m *SquareMatrix[T]) Equal(o *SquareMatrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (m *SquareMatrix[T]) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// String renders one bracketed, comma-separated row per line.
func (m *SquareMatrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[i*m.n+j].String())
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// LaTeX renders the matrix, by default as
//
//	$$\begin{pmatrix}a & b\\c & d\end{pmatrix}$$
//
// Options: WithEnvironment, WithMathMode.
func (m *SquareMatrix[T]) LaTeX(opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	if o.mathMode {
		b.WriteString("$$")
	}
	b.WriteString(`\begin{` + o.environment + `}`)
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteString(`\\`)
		}
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(m.data[i*m.n+j].LaTeX())
		}
	}
	b.WriteString(`\end{` + o.environment + `}`)
	if o.mathMode {
		b.WriteString("$$")
	}

	return b.String()
}
