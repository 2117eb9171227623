// SPDX-License-Identifier: MIT

// Package matrix - column-major storage & safe accessors.
//
// Purpose:
//   - Provide a strided column-major buffer with the explicit index formula c*stride + r.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Share one layout (shape, stride, window) between owned matrices and no-copy views.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowIter = "RowIter"
	ctxColIter = "ColIter"
	ctxView    = "View"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// indexErrorf wraps err with a uniform method context and callsite indices.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// layout is the storage descriptor shared by Matrix and View.
//   - data starts at element (0,0) of this matrix or window.
//   - element (r,c) is data[c*stride + r].
//   - len(data) == (cols-1)*stride + rows, so the unused tail of the last
//     column is never reachable.
type layout[T any] struct {
	rows, cols int // shape (both > 0)
	stride     int // distance between column starts, ≥ rows
	data       []T // column-major window
}

// Matrix is a dense column-major matrix that exclusively owns its buffer.
type Matrix[T any] struct {
	layout[T]
}

// New creates a rows×cols matrix filled with the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{layout[T]{rows: rows, cols: cols, stride: rows, data: make([]T, rows*cols)}}, nil
}

// FromColumnMajor creates a rows×cols matrix from a column-major literal.
// values is copied. An empty values slice yields a zero matrix.
//
// Errors:
//   - ErrInvalidDimensions on non-positive shape.
//   - ErrBadShape when len(values) is neither 0 nor rows*cols.
func FromColumnMajor[T any](rows, cols int, values []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return m, nil
	case rows * cols:
		copy(m.data, values)
		return m, nil
	default:
		return nil, fmt.Errorf("FromColumnMajor(%d,%d): %d values: %w", rows, cols, len(values), ErrBadShape)
	}
}

// FromRowMajor creates a rows×cols matrix from a row-major literal,
// normalizing it to column-major storage. Same errors as FromColumnMajor.
func FromRowMajor[T any](rows, cols int, values []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return m, nil
	case rows * cols:
	default:
		return nil, fmt.Errorf("FromRowMajor(%d,%d): %d values: %w", rows, cols, len(values), ErrBadShape)
	}

	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			m.data[c*rows+r] = values[r*cols+c]
		}
	}

	return m, nil
}

// NewStrided adopts buf as the column-major storage of a rows×cols matrix
// whose columns start stride elements apart. Ownership of buf passes to the
// Matrix: the caller must not retain or write it afterwards.
//
// Errors:
//   - ErrInvalidDimensions on non-positive shape.
//   - ErrBadShape when stride < rows or len(buf) < (cols-1)*stride + rows.
func NewStrided[T any](rows, cols, stride int, buf []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewStrided(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	need := (cols-1)*stride + rows
	if stride < rows || len(buf) < need {
		return nil, fmt.Errorf("NewStrided(%d,%d,%d): buffer %d: %w", rows, cols, stride, len(buf), ErrBadShape)
	}

	return &Matrix[T]{layout[T]{rows: rows, cols: cols, stride: stride, data: buf[:need:need]}}, nil
}

// Rows returns the number of rows.
func (l *layout[T]) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *layout[T]) Cols() int { return l.cols }

// Stride returns the distance between the starts of consecutive columns.
func (l *layout[T]) Stride() int { return l.stride }

// Shape returns (rows, cols).
func (l *layout[T]) Shape() (rows, cols int) { return l.rows, l.cols }

// IsSquare reports whether rows == cols.
func (l *layout[T]) IsSquare() bool { return l.rows == l.cols }

// offset returns the buffer offset of (row, col) or ErrOutOfRange.
func (l *layout[T]) offset(method string, row, col int) (int, error) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return 0, indexErrorf(method, row, col, ErrOutOfRange)
	}

	return col*l.stride + row, nil
}

// At returns a copy of the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,rows) or col ∉ [0,cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func (l *layout[T]) At(row, col int) (T, error) {
	off, err := l.offset(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.data[off], nil
}

// Set assigns v at (row, col).
//
// Errors:
//   - ErrOutOfRange when the index is invalid.
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.offset(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns an owned deep copy with a compact stride (stride == rows).
// Complexity: O(r*c).
func (l *layout[T]) Clone() *Matrix[T] {
	return &Matrix[T]{layout[T]{rows: l.rows, cols: l.cols, stride: l.rows, data: l.ColumnMajor()}}
}

// ColumnMajor returns a compact column-major copy of the elements.
func (l *layout[T]) ColumnMajor() []T {
	out := make([]T, 0, l.rows*l.cols)
	for c := 0; c < l.cols; c++ {
		base := c * l.stride
		out = append(out, l.data[base:base+l.rows]...) // columns are contiguous
	}

	return out
}

// RowMajor returns a compact row-major copy of the elements.
func (l *layout[T]) RowMajor() []T {
	out := make([]T, l.rows*l.cols)
	var r, c int
	for c = 0; c < l.cols; c++ {
		for r = 0; r < l.rows; r++ {
			out[r*l.cols+c] = l.data[c*l.stride+r]
		}
	}

	return out
}

// View returns a no-copy, read-only window [r0:r0+rows, c0:c0+cols).
// The window keeps the parent's stride.
//
// Errors:
//   - ErrBadShape when the window is empty or leaves the parent bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (l *layout[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > l.rows || c0+cols > l.cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}
	start := c0*l.stride + r0
	end := start + (cols-1)*l.stride + rows

	return &View[T]{layout[T]{rows: rows, cols: cols, stride: l.stride, data: l.data[start:end:end]}}, nil
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for diagnostics, not hot paths.
func (l *layout[T]) String() string {
	var b strings.Builder
	for r := 0; r < l.rows; r++ {
		b.WriteString(_fmtRowOpen)
		it := l.rowIter(r)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			fmt.Fprintf(&b, "%v", v)
			if it.Len() > 0 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
