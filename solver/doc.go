// SPDX-License-Identifier: MIT

// Package solver solves square dense linear systems A·x = b by Gaussian
// elimination with partial pivoting.
//
// What & Why:
//
//	GaussElimination borrows a coefficient matrix and a right-hand side,
//	both from package matrix, and works over any element type for which an
//	algebra.Field exists: float32/float64, complex64/complex128, exact
//	rationals, GF(p). Solve never mutates its inputs: it clones them into
//	working storage, eliminates forward, back-substitutes and returns a new
//	Vector, or an error and no partial result.
//
// Phases:
//
//	Initialized → Forward-Eliminating → Back-Substituting
//	            → Solved | Singular | DimensionError
//
// Errors:
//
//	ErrDimensionMismatch  A not square, or len(b) ≠ rows(A); raised before
//	                      any arithmetic.
//	ErrSingularMatrix     the best pivot of some column has magnitude at or
//	                      below the singularity threshold.
//
// Pivot threshold:
//
//	Absolute by default (DefaultTolerance). WithRelativeTolerance scales the
//	tolerance by max|a_ij| of the input; WithTolerance(0) flags only exact
//	zeros, which is the right policy for exact fields.
//
// Concurrency:
//
//	A GaussElimination is immutable after construction. Concurrent Solve
//	calls are safe while nobody mutates the borrowed inputs.
//
// Complexity:
//
//	Time O(n³), Space O(n²) for the working copy.
package solver
