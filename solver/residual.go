// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/matrix"
)

// Residual returns the per-row magnitudes |b_i - (A·x)_i|.
// A may be rectangular; x must have Cols(A) entries and b Rows(A).
//
// Implementation:
//   - Stage 1: validate operands (non-nil, conformable).
//   - Stage 2: for each row, walk it with a RowIterator and accumulate A[i,·]·x.
//
// Errors:
//   - ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
func Residual[T any](a *matrix.Matrix[T], x, b *matrix.Vector[T], f algebra.Field[T]) ([]float64, error) {
	for _, op := range []struct {
		name string
		m    matrix.Shaped
	}{{"a", a}, {"x", x}, {"b", b}} {
		if err := matrix.ValidateNotNil(op.m); err != nil {
			return nil, fmt.Errorf("%s: %s: %w: %w", opResidual, op.name, ErrDimensionMismatch, err)
		}
	}
	if err := matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return nil, fmt.Errorf("%s: x: %w: %w", opResidual, ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: b: %w: %w", opResidual, ErrDimensionMismatch, err)
	}

	xs := x.Values()
	bs := b.Values()
	out := make([]float64, a.Rows())
	for r := range out {
		it, err := a.RowIter(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opResidual, err)
		}
		acc, j := f.Zero(), 0
		for v := range it.All() {
			acc = f.Add(acc, f.Mul(v, xs[j]))
			j++
		}
		out[r] = f.Magnitude(f.Sub(bs[r], acc))
	}

	return out, nil
}

// ResidualNorm returns the Euclidean norm of Residual(a, x, b, f).
func ResidualNorm[T any](a *matrix.Matrix[T], x, b *matrix.Vector[T], f algebra.Field[T]) (float64, error) {
	res, err := Residual(a, x, b, f)
	if err != nil {
		return 0, err
	}

	return floats.Norm(res, 2), nil
}
