// SPDX-License-Identifier: MIT
// Package solver_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (literal and random well-conditioned systems).
//   • A counting Field that proves when no arithmetic happened.

package solver_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/matrix"
)

// mustRowMajor BUILDS an r×c matrix from a row-major literal or fails the test.
func mustRowMajor[T any](t testing.TB, r, c int, vals []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRowMajor(r, c, vals)
	if err != nil {
		t.Fatalf("FromRowMajor(%d,%d): %v", r, c, err)
	}

	return m
}

// mustVector BUILDS a vector or fails the test.
func mustVector[T any](t testing.TB, vals []T) *matrix.Vector[T] {
	t.Helper()
	v, err := matrix.NewVector(vals)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	return v
}

// matVec computes A·x over field f with plain At reads.
func matVec[T any](t testing.TB, a *matrix.Matrix[T], x []T, f algebra.Field[T]) []T {
	t.Helper()
	out := make([]T, a.Rows())
	for i := range out {
		acc := f.Zero()
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			acc = f.Add(acc, f.Mul(v, x[j]))
		}
		out[i] = acc
	}

	return out
}

// randomSystem BUILDS a strictly diagonally dominant n×n system with a known
// solution xStar and b = A·xStar. Returns A in row-major order as well, for
// cross-checking against other libraries.
func randomSystem(t testing.TB, n int, seed int64) (a *matrix.Matrix[float64], rowMajor, xStar []float64, b *matrix.Vector[float64]) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rowMajor = make([]float64, n*n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			rowMajor[i*n+j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		rowMajor[i*n+i] = sum + 1 + rng.Float64()
	}
	xStar = make([]float64, n)
	for i := range xStar {
		xStar[i] = rng.Float64()*10 - 5
	}
	a = mustRowMajor(t, n, n, rowMajor)
	b = mustVector(t, matVec(t, a, xStar, algebra.Float64))

	return a, rowMajor, xStar, b
}

// countingField wraps a Field and counts every arithmetic call.
type countingField[T any] struct {
	algebra.Field[T]
	calls atomic.Int64
}

func (c *countingField[T]) Add(a, b T) T { c.calls.Add(1); return c.Field.Add(a, b) }
func (c *countingField[T]) Sub(a, b T) T { c.calls.Add(1); return c.Field.Sub(a, b) }
func (c *countingField[T]) Mul(a, b T) T { c.calls.Add(1); return c.Field.Mul(a, b) }
func (c *countingField[T]) Div(a, b T) T { c.calls.Add(1); return c.Field.Div(a, b) }
func (c *countingField[T]) Magnitude(a T) float64 { c.calls.Add(1); return c.Field.Magnitude(a) }

// divRecorder wraps a Field and records every divisor passed to Div.
type divRecorder[T any] struct {
	algebra.Field[T]
	divisors []T
}

func (d *divRecorder[T]) Div(a, b T) T {
	d.divisors = append(d.divisors, b)
	return d.Field.Div(a, b)
}
