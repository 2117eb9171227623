// SPDX-License-Identifier: MIT

package algebra

import "errors"

// ErrNotPrime is returned by NewPrimeField when the modulus is not prime.
var ErrNotPrime = errors.New("algebra: modulus is not prime")

// Field is the capability set an element type must expose to elimination.
//
// Contract:
//   - Zero and One return the additive and multiplicative identities.
//   - Add, Sub, Mul, Div return new values and never mutate a or b.
//   - Div by an element of zero magnitude is a programmer error; callers
//     must guard it (the solver rejects such pivots before dividing).
//   - Magnitude returns a value ≥ 0 and returns 0 for Zero(). It is the
//     ordering used by partial pivoting: larger magnitude, better pivot.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Div returns a / b.
	Div(a, b T) T

	// Magnitude returns |a| (modulus for complex values).
	Magnitude(a T) float64
}
