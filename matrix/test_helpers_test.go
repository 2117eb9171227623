// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and drains for matrix/iterator tests.

package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// cursor is the Next-style surface shared by every iterator.
type cursor[T any] interface {
	Next() (T, bool)
	Len() int
}

// Collect DRAINS a cursor into a slice, checking Len() decreases by one per step.
func Collect[T any](t *testing.T, it cursor[T]) []T {
	t.Helper()
	var out []T
	for {
		before := it.Len()
		v, ok := it.Next()
		if !ok {
			if before != 0 {
				t.Fatalf("cursor stopped with Len()=%d", before)
			}
			return out
		}
		if it.Len() != before-1 {
			t.Fatalf("Len() went %d -> %d", before, it.Len())
		}
		out = append(out, v)
	}
}

// MustColumnMajor BUILDS an r×c matrix from a column-major literal or fails the test.
func MustColumnMajor[T any](t *testing.T, r, c int, vals []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromColumnMajor(r, c, vals)
	if err != nil {
		t.Fatalf("FromColumnMajor(%d,%d): %v", r, c, err)
	}

	return m
}

// Seq builds 1, 2, ..., n as float64 (distinct values make order visible).
func Seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// Padded BUILDS a rows×cols matrix with the given stride whose padding cells
// hold -1 and whose live cells hold 1..rows*cols in column-major order.
func Padded(t *testing.T, rows, cols, stride int) *matrix.Matrix[float64] {
	t.Helper()
	buf := slices.Repeat([]float64{-1}, cols*stride)
	k := 1.0
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			buf[c*stride+r] = k
			k++
		}
	}
	m, err := matrix.NewStrided(rows, cols, stride, buf)
	if err != nil {
		t.Fatalf("NewStrided(%d,%d,%d): %v", rows, cols, stride, err)
	}

	return m
}
