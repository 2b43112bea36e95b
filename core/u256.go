package core

import (
	"github.com/holiman/uint256"
)

// WAD is the fixed-point base unit used throughout the curve math: every
// multiplier, fee, and curve delta is scaled by 10^18.
var WAD = uint256.NewInt(1_000_000_000_000_000_000)

// MinPrice is the floor the exponential curve's spot price may never drop
// below; it sits above the 64-bit range, which is why spot price, delta, and
// every curve value here are carried as *uint256.Int rather than uint64.
var MinPrice = mustFromDecimal("1000000000000000000000000") // 10^24

func mustFromDecimal(s string) *uint256.Int {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}

// u64 lifts a uint64 into a *uint256.Int.
func u64(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// add, sub, mul return newly allocated results so callers never alias a
// shared accumulator by accident.
func add(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Add(a, b) }
func sub(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Sub(a, b) }
func mul(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Mul(a, b) }
func div(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Div(a, b) }

// mulDiv computes a*b/d truncated toward zero, with the product computed at
// full 256-bit width so overflow only needs to be checked once, at the final
// narrowing back to a bounded representation.
func mulDiv(a, b, d *uint256.Int) *uint256.Int {
	return div(mul(a, b), d)
}

// mulWad computes a*b/WAD, the standard WAD-scaled multiplication used to
// apply a fee multiplier (or any other WAD fraction) to a value.
func mulWad(a, b *uint256.Int) *uint256.Int {
	return mulDiv(a, b, WAD)
}

// fits128 reports whether v fits in the engine's 128-bit on-chain price
// representation window.
func fits128(v *uint256.Int) bool {
	return v.BitLen() <= 128
}

// fpow computes x^n in WAD-scaled fixed point: base when x==0 and n==0, 0
// when x==0 and n>0, otherwise an iterative z = z*x/base loop performed n
// times starting from z=base. Grounded directly on the exponential curve's
// reference power routine; this is the one place the exponential curve
// computes a true power rather than a linear approximation of one.
func fpow(x *uint256.Int, n uint64, base *uint256.Int) *uint256.Int {
	if x.IsZero() {
		if n == 0 {
			return new(uint256.Int).Set(base)
		}
		return new(uint256.Int)
	}
	z := new(uint256.Int).Set(base)
	for i := uint64(0); i < n; i++ {
		z = mulDiv(z, x, base)
	}
	return z
}
