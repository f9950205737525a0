// Package powtab computes the power of ten tables of floatconv with exact
// integer arithmetic.
package powtab

import (
	"math/big"

	"github.com/shogo82148/int128"
)

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

// Normalize returns 10^q scaled by a power of two into [2^(n-1), 2^n),
// rounded down, or up if ceil is set.
func Normalize(q int, n int, ceil bool) *big.Int {
	num, den := big.NewInt(1), big.NewInt(1)
	if q >= 0 {
		num.Exp(ten, big.NewInt(int64(q)), nil)
	} else {
		den.Exp(ten, big.NewInt(int64(-q)), nil)
	}

	a, b := new(big.Int), new(big.Int)
	m, r := new(big.Int), new(big.Int)
	shift := n - num.BitLen() + den.BitLen()
	for {
		if shift >= 0 {
			a.Lsh(num, uint(shift))
			b.Set(den)
		} else {
			a.Set(num)
			b.Lsh(den, uint(-shift))
		}
		m.QuoRem(a, b, r)
		if ceil && r.Sign() != 0 {
			m.Add(m, one)
		}
		switch l := m.BitLen(); {
		case l > n:
			shift--
		case l < n:
			shift++
		default:
			return m
		}
	}
}

// Truncated128 returns the 128-bit mantissa of 10^q rounded down,
// as used by the Eisel-Lemire parser.
func Truncated128(q int) int128.Uint128 {
	return toUint128(Normalize(q, 128, false))
}

// Ceil128 returns the 128-bit mantissa of 10^k rounded up,
// as used by the binary64 Dragonbox formatter.
func Ceil128(k int) int128.Uint128 {
	return toUint128(Normalize(k, 128, true))
}

// Ceil64 returns the 64-bit mantissa of 10^k rounded up,
// as used by the binary32 Dragonbox formatter.
func Ceil64(k int) uint64 {
	return Normalize(k, 64, true).Uint64()
}

func toUint128(m *big.Int) int128.Uint128 {
	lo := new(big.Int).And(m, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(m, 64)
	return int128.Uint128{H: hi.Uint64(), L: lo.Uint64()}
}
