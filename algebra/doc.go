// SPDX-License-Identifier: MIT

// Package algebra defines the element contract consumed by the matrix and
// solver packages.
//
// What & Why:
//
//	Matrix storage is generic over any copyable T, but elimination needs
//	arithmetic. Field[T] bundles exactly the capabilities the solver uses:
//	zero/one identities, the four field operations and a non-negative
//	magnitude used for partial pivoting. Every element type implements the
//	contract once:
//
//	  - NumberField[T] covers the built-in float and complex kinds.
//	  - RationalField gives exact arithmetic over *big.Rat.
//	  - PrimeField gives modular arithmetic over GF(p) with uint64 values.
//
// Field methods never mutate their arguments; they return fresh values, so
// matrices holding pointer elements (e.g. *big.Rat) stay safe to clone.
package algebra
