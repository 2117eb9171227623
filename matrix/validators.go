// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common shape checks.
//  - Keep solvers minimal by delegating square/length checks here.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - ValidateSquare and ValidateVecLen assume non-nil arguments; run
//    ValidateNotNil first (ValidateSystem does).

package matrix

import (
	"fmt"
	"reflect"
)

// Shaped is implemented by Matrix, Vector and View.
type Shaped interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil interface and a nil pointer stored in one
// (a nil *Matrix[T] passed as Shaped is not a nil interface).
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Shaped) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is a single column of exactly n rows.
//
// Errors: ErrDimensionMismatch on a wrong length or more than one column.
// Complexity: O(1).
func ValidateVecLen(v Shaped, n int) error {
	if v.Cols() != 1 || v.Rows() != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %dx%d, want %dx1", v.Rows(), v.Cols(), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem checks that both operands are non-nil, a is square and b
// matches its row count, in that order.
func ValidateSystem(a, b Shaped) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}

	return ValidateVecLen(b, a.Rows())
}
