package floatconv

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// Shortest round-trip digits by the Dragonbox algorithm of Junekey Jeon:
// https://github.com/jk-jeon/dragonbox/blob/d5dc40ae6a3f1a4559cda816738df2d6255b4e24/other_files/Dragonbox.pdf
//
// The input is a binary significand fc and exponent e (value = fc × 2^e).
// The output is a decimal significand and exponent rounded to nearest,
// ties to even, and is the shortest among the decimals inside the rounding
// interval of the input.

const (
	cacheBits64 = 128
	cacheBits32 = 64
	mantBits64  = 52
	mantBits32  = 23
)

func (t *Tables) dragonboxShortest64(mant uint64, exp int, denorm bool) (uint64, int) {
	if mant == 0 {
		return 0, 0
	}

	if mant == 1<<mantBits64 && !denorm {
		// Shorter interval: the gap below is half the gap above.
		minusK0 := floorLog10Pow2MinusLog10_4Over3(exp)
		beta := exp + floorLog2Pow10(-minusK0)
		phi := t.dragonbox64(-minusK0)
		xi := computeLeftEndpoint64(phi, beta)
		zi := computeRightEndpoint64(phi, beta)

		// The left endpoint is only included when it is an integer.
		if !(2 <= exp && exp <= 3) {
			xi++
		}

		q := zi / 10
		if xi <= q*10 {
			return removeTrailingZeros64(q, minusK0+1)
		}

		yru := computeRoundUp64(phi, beta)
		if exp == -77 && yru%2 != 0 {
			// tie, round to even
			yru--
		} else if yru < xi {
			yru++
		}
		return yru, minusK0
	}

	const kappa = 2
	const bigDivisor = 1000  // 10^(kappa+1)
	const smallDivisor = 100 // 10^kappa

	minusK := floorLog10Pow2(exp) - kappa
	beta := exp + floorLog2Pow10(-minusK)
	phi := t.dragonbox64(-minusK)
	zi, zIsInt := computeMul64((mant*2+1)<<beta, phi)
	deltai := computeDelta64(phi, beta)

	// Step 1: look for a member of the interval with one digit less than
	// what 10^kappa precision would give.
	s := zi / bigDivisor
	r := uint32(zi - bigDivisor*s)

	if r < deltai {
		// The right endpoint belongs to the interval only for an even significand.
		if r != 0 || !zIsInt || mant%2 == 0 {
			return removeTrailingZeros64(s, minusK+kappa+1)
		}
		s--
		r = bigDivisor
	} else if r == deltai {
		xiParity, xIsInt := computeMulParity64(mant*2-1, phi, beta)
		if xiParity || (xIsInt && mant%2 == 0) {
			return removeTrailingZeros64(s, minusK+kappa+1)
		}
	}

	// Step 2: the interval holds no such member, so the answer has kappa more
	// digits. Pick the one closest to the value.
	d := r + smallDivisor/2 - deltai/2
	t1 := d / smallDivisor
	rho := d - t1*smallDivisor
	yru := 10*s + uint64(t1)

	if rho == 0 {
		yiParity, yIsInt := computeMulParity64(mant*2, phi, beta)
		approx := (d-smallDivisor/2)%2 != 0
		if yiParity != approx {
			yru--
		} else if yIsInt && yru%2 != 0 {
			// tie, round to even
			yru--
		}
	}
	return yru, minusK + kappa
}

func (t *Tables) dragonboxShortest32(mant uint32, exp int, denorm bool) (uint32, int) {
	if mant == 0 {
		return 0, 0
	}

	if mant == 1<<mantBits32 && !denorm {
		minusK0 := floorLog10Pow2MinusLog10_4Over3(exp)
		beta := exp + floorLog2Pow10(-minusK0)
		phi := t.dragonbox32(-minusK0)
		xi := computeLeftEndpoint32(phi, beta)
		zi := computeRightEndpoint32(phi, beta)

		if !(2 <= exp && exp <= 3) {
			xi++
		}

		q := zi / 10
		if xi <= q*10 {
			return removeTrailingZeros32(q, minusK0+1)
		}

		yru := computeRoundUp32(phi, beta)
		if exp == -35 && yru%2 != 0 {
			yru--
		} else if yru < xi {
			yru++
		}
		return yru, minusK0
	}

	const kappa = 1
	const bigDivisor = 100
	const smallDivisor = 10

	minusK := floorLog10Pow2(exp) - kappa
	beta := exp + floorLog2Pow10(-minusK)
	phi := t.dragonbox32(-minusK)
	zi, zIsInt := computeMul32((mant*2+1)<<beta, phi)
	deltai := computeDelta32(phi, beta)

	s := zi / bigDivisor
	r := zi - bigDivisor*s

	if r < deltai {
		if r != 0 || !zIsInt || mant%2 == 0 {
			return removeTrailingZeros32(s, minusK+kappa+1)
		}
		s--
		r = bigDivisor
	} else if r == deltai {
		xiParity, xIsInt := computeMulParity32(mant*2-1, phi, beta)
		if xiParity || (xIsInt && mant%2 == 0) {
			return removeTrailingZeros32(s, minusK+kappa+1)
		}
	}

	d := r + smallDivisor/2 - deltai/2
	t1 := d / smallDivisor
	rho := d - t1*smallDivisor
	yru := 10*s + t1

	if rho == 0 {
		yiParity, yIsInt := computeMulParity32(mant*2, phi, beta)
		approx := (d-smallDivisor/2)%2 != 0
		if yiParity != approx {
			yru--
		} else if yIsInt && yru%2 != 0 {
			yru--
		}
	}
	return yru, minusK + kappa
}

// umul192Upper128 returns the upper 128 bits of the 192-bit product x × y.
func umul192Upper128(x uint64, y int128.Uint128) int128.Uint128 {
	var r int128.Uint128
	r.H, r.L = bits.Mul64(x, y.H)
	t, _ := bits.Mul64(x, y.L)
	return r.Add(int128.Uint128{L: t})
}

// umul192Lower128 returns the lower 128 bits of the 192-bit product x × y.
func umul192Lower128(x uint64, y int128.Uint128) int128.Uint128 {
	var r int128.Uint128
	r.H, r.L = bits.Mul64(x, y.L)
	r.H += x * y.H
	return r
}

// umul96Upper64 returns the upper 64 bits of the 96-bit product x × y.
func umul96Upper64(x uint32, y uint64) uint64 {
	hi, _ := bits.Mul64(uint64(x)<<32, y)
	return hi
}

func computeMul64(u uint64, phi int128.Uint128) (intPart uint64, isInt bool) {
	r := umul192Upper128(u, phi)
	return r.H, r.L == 0
}

func computeMul32(u uint32, phi uint64) (intPart uint32, isInt bool) {
	r := umul96Upper64(u, phi)
	return uint32(r >> 32), uint32(r) == 0
}

func computeMulParity64(mant2 uint64, phi int128.Uint128, beta int) (parity bool, isInt bool) {
	r := umul192Lower128(mant2, phi)
	parity = (r.H>>(64-beta))&1 != 0
	isInt = r.H<<beta|r.L>>(64-beta) == 0
	return
}

func computeMulParity32(mant2 uint32, phi uint64, beta int) (parity bool, isInt bool) {
	r := uint64(mant2) * phi
	parity = (r>>(64-beta))&1 != 0
	isInt = uint32(r>>(32-beta)) == 0
	return
}

func computeDelta64(phi int128.Uint128, beta int) uint32 {
	return uint32(phi.H >> (cacheBits64/2 - 1 - beta))
}

func computeDelta32(phi uint64, beta int) uint32 {
	return uint32(phi >> (cacheBits32 - 1 - beta))
}

func computeLeftEndpoint64(phi int128.Uint128, beta int) uint64 {
	return (phi.H - phi.H>>(mantBits64+2)) >> (cacheBits64/2 - mantBits64 - 1 - beta)
}

func computeLeftEndpoint32(phi uint64, beta int) uint32 {
	return uint32((phi - phi>>(mantBits32+2)) >> (cacheBits32 - mantBits32 - 1 - beta))
}

func computeRightEndpoint64(phi int128.Uint128, beta int) uint64 {
	return (phi.H + phi.H>>(mantBits64+1)) >> (cacheBits64/2 - mantBits64 - 1 - beta)
}

func computeRightEndpoint32(phi uint64, beta int) uint32 {
	return uint32((phi + phi>>(mantBits32+1)) >> (cacheBits32 - mantBits32 - 1 - beta))
}

func computeRoundUp64(phi int128.Uint128, beta int) uint64 {
	return (phi.H>>(cacheBits64/2-mantBits64-2-beta) + 1) / 2
}

func computeRoundUp32(phi uint64, beta int) uint32 {
	return uint32(phi>>(cacheBits32-mantBits32-2-beta)+1) / 2
}

// floorLog10Pow2 returns ⌊e × log10(2)⌋ for e in [-2620, 2620].
func floorLog10Pow2(e int) int {
	return (e * 315653) >> 20
}

// floorLog2Pow10 returns ⌊e × log2(10)⌋ for e in [-1233, 1233].
func floorLog2Pow10(e int) int {
	return (e * 1741647) >> 19
}

// floorLog10Pow2MinusLog10_4Over3 returns ⌊e × log10(2) - log10(4/3)⌋ for e in [-2985, 2936].
func floorLog10Pow2MinusLog10_4Over3(e int) int {
	return (e*631305 - 261663) >> 21
}

// removeTrailingZeros64 strips up to 15 trailing decimal zeros from mant.
// Each step multiplies by the modular inverse of 5^n and rotates by n:
// the result is small exactly when mant was divisible by 10^n.
func removeTrailingZeros64(mant uint64, exp int) (uint64, int) {
	s := 0
	if r := bits.RotateLeft64(mant*28999941890838049, -8); r < 184467440738 {
		s += 8
		mant = r
	}
	if r := bits.RotateLeft64(mant*182622766329724561, -4); r < 1844674407370956 {
		s += 4
		mant = r
	}
	if r := bits.RotateLeft64(mant*10330176681277348905, -2); r < 184467440737095517 {
		s += 2
		mant = r
	}
	if r := bits.RotateLeft64(mant*14757395258967641293, -1); r < 1844674407370955162 {
		s++
		mant = r
	}
	return mant, exp + s
}

// removeTrailingZeros32 strips up to 7 trailing decimal zeros from mant.
func removeTrailingZeros32(mant uint32, exp int) (uint32, int) {
	s := 0
	if r := bits.RotateLeft32(mant*184254097, -4); r < 429497 {
		s += 4
		mant = r
	}
	if r := bits.RotateLeft32(mant*42949673, -2); r < 42949673 {
		s += 2
		mant = r
	}
	if r := bits.RotateLeft32(mant*1288490189, -1); r < 429496730 {
		s++
		mant = r
	}
	return mant, exp + s
}
