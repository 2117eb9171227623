// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
)

// Vector is a Matrix with exactly one column. It is both the right-hand
// side and the solution type of the solver.
type Vector[T any] struct {
	Matrix[T]
}

// NewVector creates a vector holding a copy of values.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
func NewVector[T any](values []T) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewVector: %w", ErrInvalidDimensions)
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{Matrix[T]{layout[T]{rows: len(data), cols: 1, stride: len(data), data: data}}}, nil
}

// ZeroVector creates a length-n vector of zero values.
func ZeroVector[T any](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("ZeroVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &Vector[T]{Matrix[T]{layout[T]{rows: n, cols: 1, stride: n, data: make([]T, n)}}}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.rows }

// AtIndex returns a copy of element i.
func (v *Vector[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= v.rows {
		var zero T
		return zero, indexErrorf(ctxAtIndex, i, 0, ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetIndex assigns x to element i.
func (v *Vector[T]) SetIndex(i int, x T) error {
	if i < 0 || i >= v.rows {
		return indexErrorf(ctxSetIndex, i, 0, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.rows)
	copy(out, v.data)

	return out
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] {
	vals := v.Values()

	return &Vector[T]{Matrix[T]{layout[T]{rows: len(vals), cols: 1, stride: len(vals), data: vals}}}
}

// AsMatrix returns the vector as an n×1 Matrix sharing the same storage.
func (v *Vector[T]) AsMatrix() *Matrix[T] { return &v.Matrix }
