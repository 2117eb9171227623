// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Solve returns exactly one of these (wrapped with context); callers match
// them with errors.Is. Failures are never recovered silently and never
// carry a partial solution.

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrDimensionMismatch: the coefficient matrix is not square, the RHS
	// length differs from its row count, or an operand is nil.
	// It wraps matrix.ErrDimensionMismatch, so errors.Is matches both.
	ErrDimensionMismatch = fmt.Errorf("solver: %w", matrix.ErrDimensionMismatch)

	// ErrSingularMatrix: a pivot's magnitude fell at or below the
	// singularity threshold during forward elimination.
	ErrSingularMatrix = errors.New("solver: singular matrix")
)

// Operation tags for uniform error wrapping.
const (
	opSolve    = "GaussElimination.Solve"
	opResidual = "Residual"
)
