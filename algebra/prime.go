// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math/big"
	"math/bits"
)

// PrimeField implements Field[uint64] for the finite field GF(p).
//
// Inputs are reduced mod p before use, so any uint64 is an acceptable
// operand. Magnitude is 0 for zero and 1 otherwise: with partial pivoting
// this selects the first non-zero candidate, which is the standard pivot
// rule over a finite field.
type PrimeField struct {
	p uint64 // prime modulus, ≥ 2
}

// NewPrimeField returns GF(p).
//
// Errors:
//   - ErrNotPrime when p < 2 or p is composite.
//
// Complexity:
//   - Time O(log p) primality test (exact for 64-bit inputs).
func NewPrimeField(p uint64) (*PrimeField, error) {
	if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, fmt.Errorf("NewPrimeField(%d): %w", p, ErrNotPrime)
	}

	return &PrimeField{p: p}, nil
}

// Modulus returns p.
func (f *PrimeField) Modulus() uint64 { return f.p }

// FromInt maps a signed integer onto its residue class in [0, p).
func (f *PrimeField) FromInt(v int64) uint64 {
	if v >= 0 {
		return uint64(v) % f.p
	}
	r := uint64(-(v + 1)) % f.p // -(v+1) avoids overflow at MinInt64

	return f.p - 1 - r
}

// Zero returns 0.
func (f *PrimeField) Zero() uint64 { return 0 }

// One returns 1.
func (f *PrimeField) One() uint64 { return 1 }

// Add returns (a + b) mod p.
func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= f.p {
		sum -= f.p // wraps correctly when carry is set
	}

	return sum
}

// Sub returns (a - b) mod p.
func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	d := a - b
	if a < b {
		d += f.p
	}

	return d
}

// Mul returns (a * b) mod p using a 128-bit intermediate product.
func (f *PrimeField) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a%f.p, b%f.p)

	return bits.Rem64(hi, lo, f.p)
}

// Div returns a * b⁻¹ mod p. It panics when b ≡ 0 (mod p).
func (f *PrimeField) Div(a, b uint64) uint64 {
	if b%f.p == 0 {
		panic("algebra: PrimeField.Div: division by zero")
	}

	return f.Mul(a, f.inv(b))
}

// Magnitude returns 0 for zero and 1 for every other residue.
func (f *PrimeField) Magnitude(a uint64) float64 {
	if a%f.p == 0 {
		return 0
	}

	return 1
}

// inv computes b^(p-2) mod p (Fermat's little theorem).
func (f *PrimeField) inv(b uint64) uint64 {
	result, base, e := uint64(1), b%f.p, f.p-2
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		e >>= 1
	}

	return result
}
