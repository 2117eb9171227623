// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"math/cmplx"
	"reflect"
)

// Number is the set of built-in numeric kinds with exact field semantics
// under Go's operators (integers are excluded: their division truncates).
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// NumberField implements Field[T] for every Number kind with Go operators.
// The zero value is ready to use.
type NumberField[T Number] struct{}

// Ready-made fields for the unnamed built-in kinds.
var (
	Float64    Field[float64]    = NumberField[float64]{}
	Float32    Field[float32]    = NumberField[float32]{}
	Complex128 Field[complex128] = NumberField[complex128]{}
	Complex64  Field[complex64]  = NumberField[complex64]{}
)

// Zero returns 0.
func (NumberField[T]) Zero() T { return 0 }

// One returns 1.
func (NumberField[T]) One() T { return 1 }

// Add returns a + b.
func (NumberField[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (NumberField[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (NumberField[T]) Mul(a, b T) T { return a * b }

// Div returns a / b. Division by zero follows IEEE-754 (±Inf/NaN).
func (NumberField[T]) Div(a, b T) T { return a / b }

// Magnitude returns |a|.
func (NumberField[T]) Magnitude(a T) float64 { return Magnitude(a) }

// Magnitude returns the absolute value of a real v, or the modulus of a
// complex v.
//
// Implementation:
//   - Stage 1: type switch on the unnamed kinds (no reflection on the hot path).
//   - Stage 2: fall back to reflect.Kind for named types such as `type Volt float64`.
//
// Complexity:
//   - Time O(1), Space O(1).
func Magnitude[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex128:
		return cmplx.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Abs(rv.Float())
	default:
		return cmplx.Abs(rv.Complex())
	}
}
