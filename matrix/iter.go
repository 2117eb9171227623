// SPDX-License-Identifier: MIT

// Package matrix - traversal iterators.
//
// Purpose:
//   - Expose the four access patterns of column-major storage so callers can
//     pick the one matching their natural traversal:
//     Col (step 1), Row (step stride), Cell (buffer order), Diag (step stride+1).
//
// Behavior highlights:
//   - Finite and single-pass; recreate a cursor from its matrix to restart.
//   - Bounds are fixed at creation from the source shape, so a created cursor
//     never reads outside its window and Next has no error channel.
//   - All() adapts a cursor to range-over-func; it drains the same cursor.

package matrix

import "iter"

// drain adapts a Next-style cursor to iter.Seq.
func drain[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// RowIterator walks one row: cols elements, each stride apart in the buffer.
type RowIterator[T any] struct {
	data   []T // window starting at (row, 0)
	cols   int
	stride int
	pos    int
}

// Next returns the next element of the row, or false once cols elements were produced.
func (it *RowIterator[T]) Next() (T, bool) {
	if it.pos == it.cols {
		var zero T
		return zero, false
	}
	v := it.data[it.pos*it.stride]
	it.pos++

	return v, true
}

// Len returns the number of elements left.
func (it *RowIterator[T]) Len() int { return it.cols - it.pos }

// All returns the remaining elements as a sequence.
func (it *RowIterator[T]) All() iter.Seq[T] { return drain(it.Next) }

// ColIterator walks one column: rows contiguous elements.
type ColIterator[T any] struct {
	data []T // exactly the column, len == rows
	pos  int
}

// Next returns the next element of the column.
func (it *ColIterator[T]) Next() (T, bool) {
	if it.pos == len(it.data) {
		var zero T
		return zero, false
	}
	v := it.data[it.pos]
	it.pos++

	return v, true
}

// Len returns the number of elements left.
func (it *ColIterator[T]) Len() int { return len(it.data) - it.pos }

// All returns the remaining elements as a sequence.
func (it *ColIterator[T]) All() iter.Seq[T] { return drain(it.Next) }

// CellIterator walks every element in column-major order: all rows of
// column 0, then column 1, and so on. Stride padding is skipped.
type CellIterator[T any] struct {
	data       []T
	rows, cols int
	stride     int
	r, c       int // position of the next element
}

// Next returns the next element in column-major order.
func (it *CellIterator[T]) Next() (T, bool) {
	if it.c == it.cols {
		var zero T
		return zero, false
	}
	v := it.data[it.c*it.stride+it.r]
	it.r++
	if it.r == it.rows {
		it.r = 0
		it.c++
	}

	return v, true
}

// Len returns the number of elements left.
func (it *CellIterator[T]) Len() int { return (it.cols-it.c)*it.rows - it.r }

// All returns the remaining elements as a sequence.
func (it *CellIterator[T]) All() iter.Seq[T] { return drain(it.Next) }

// DiagIterator walks the main diagonal: min(rows, cols) elements, each
// stride+1 apart (one row down and one column right).
type DiagIterator[T any] struct {
	data   []T
	n      int // min(rows, cols)
	step   int // stride + 1
	offset int
	pos    int
}

// Next returns the next diagonal element.
func (it *DiagIterator[T]) Next() (T, bool) {
	if it.pos == it.n {
		var zero T
		return zero, false
	}
	v := it.data[it.offset]
	it.offset += it.step
	it.pos++

	return v, true
}

// Len returns the number of elements left.
func (it *DiagIterator[T]) Len() int { return it.n - it.pos }

// All returns the remaining elements as a sequence.
func (it *DiagIterator[T]) All() iter.Seq[T] { return drain(it.Next) }

// ---------- constructors on the shared layout ----------

// rowIter builds a row cursor without bounds checks; row must be valid.
func (l *layout[T]) rowIter(row int) *RowIterator[T] {
	end := row + (l.cols-1)*l.stride + 1

	return &RowIterator[T]{data: l.data[row:end:end], cols: l.cols, stride: l.stride}
}

// RowIter returns a fresh cursor over row r.
//
// Errors:
//   - ErrOutOfRange when r ∉ [0, rows).
//
// Complexity:
//   - Time O(1) to create, O(cols) to drain.
func (l *layout[T]) RowIter(r int) (*RowIterator[T], error) {
	if r < 0 || r >= l.rows {
		return nil, indexErrorf(ctxRowIter, r, 0, ErrOutOfRange)
	}

	return l.rowIter(r), nil
}

// ColIter returns a fresh cursor over column c.
//
// Errors:
//   - ErrOutOfRange when c ∉ [0, cols).
func (l *layout[T]) ColIter(c int) (*ColIterator[T], error) {
	if c < 0 || c >= l.cols {
		return nil, indexErrorf(ctxColIter, 0, c, ErrOutOfRange)
	}
	start := c * l.stride
	end := start + l.rows

	return &ColIterator[T]{data: l.data[start:end:end]}, nil
}

// CellIter returns a fresh column-major cursor over all rows*cols elements.
func (l *layout[T]) CellIter() *CellIterator[T] {
	return &CellIterator[T]{data: l.data, rows: l.rows, cols: l.cols, stride: l.stride}
}

// DiagIter returns a fresh cursor over the main diagonal.
func (l *layout[T]) DiagIter() *DiagIterator[T] {
	n := min(l.rows, l.cols)
	end := (n-1)*(l.stride+1) + 1

	return &DiagIterator[T]{data: l.data[:end:end], n: n, step: l.stride + 1}
}
