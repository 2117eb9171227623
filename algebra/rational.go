// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"math/big"
)

// RationalField implements Field[*big.Rat] with exact arithmetic.
//
// A nil *big.Rat is read as zero, so the zero-filled matrices produced by
// generic constructors are valid operands. Results are always freshly
// allocated; operands are never written.
type RationalField struct{}

// Rational is the ready-to-use exact field.
var Rational Field[*big.Rat] = RationalField{}

// rat normalizes nil to a zero rational without allocating for non-nil x.
func rat(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}

	return x
}

// Zero returns a new 0/1.
func (RationalField) Zero() *big.Rat { return new(big.Rat) }

// One returns a new 1/1.
func (RationalField) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (RationalField) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(rat(a), rat(b)) }

// Sub returns a - b.
func (RationalField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(rat(a), rat(b)) }

// Mul returns a * b.
func (RationalField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(rat(a), rat(b)) }

// Div returns a / b. It panics when b is zero, like big.Rat.Quo.
func (RationalField) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(rat(a), rat(b)) }

// Magnitude returns |a| rounded to the nearest float64.
// Values too small for float64 but non-zero report the smallest positive
// float64 so that Magnitude is 0 only for exact zero.
func (RationalField) Magnitude(a *big.Rat) float64 {
	x := rat(a)
	if x.Sign() == 0 {
		return 0
	}
	f, _ := new(big.Rat).Abs(x).Float64()
	if f == 0 {
		return math.SmallestNonzeroFloat64
	}

	return f
}
