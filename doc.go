// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra toolkit: generic
// column-major matrices with strided iterators, and a Gaussian-elimination
// solver that works over any field.
//
// What is inside?
//
//	algebra/: the Field[T] element contract and its implementations:
//	           float32/float64, complex64/complex128, *big.Rat, GF(p)
//	matrix/:  Matrix[T], Vector[T], View[T]; row, column, cell and
//	           diagonal iterators; shape validators
//	solver/:  GaussElimination[T] with partial pivoting, a configurable
//	           singularity threshold, and residual checks
//
// Quick start:
//
//	a, _ := matrix.FromRowMajor(2, 2, []float64{2, 1, 1, 3})
//	b, _ := matrix.NewVector([]float64{3, 5})
//	x, err := solver.New(a, b).Solve() // x = [0.8 1.4]
//
// Logging:
//
//	The solver logs through github.com/ipfs/go-log/v2 under the "solver"
//	subsystem. Set GOLOG_LOG_LEVEL=debug (or call logging.SetLogLevel) to
//	trace pivot choices and phase transitions.
//
// See examples/gauss for a runnable demo.
package linalg
