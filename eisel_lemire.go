package floatconv

import (
	"math/bits"
)

// eiselLemire converts man × 10^exp10 to IEEE bits of the format flt using the
// 128-bit truncated powers of ten in t. See
// https://nigeltao.github.io/blog/2020/eisel-lemire.html
//
// ok is false when the table does not cover exp10, when the truncation error
// of the table could change the rounding, or when the result is subnormal,
// infinite or zero. The caller falls back to exact arithmetic in that case.
func (t *Tables) eiselLemire(flt *floatInfo, man uint64, exp10 int, neg bool) (b uint64, ok bool) {
	if man == 0 {
		return 0, false
	}
	pow, ok := t.pow10At(exp10)
	if !ok {
		return 0, false
	}

	// extra bits below the 1+mantbits+1 bits kept for the result
	shift := 64 - flt.mantbits - 3
	mask := uint64(1)<<shift - 1
	bias := -flt.bias

	// Normalization.
	clz := bits.LeadingZeros64(man)
	man <<= uint(clz)
	retExp2 := uint64(217706*exp10>>16+64+bias) - uint64(clz)

	// Multiplication.
	xHi, xLo := bits.Mul64(man, pow[1])

	// Wider approximation.
	if xHi&mask == mask && xLo+man < man {
		yHi, yLo := bits.Mul64(man, pow[0])
		mergedHi, mergedLo := xHi, xLo+yHi
		if mergedLo < xLo {
			mergedHi++
		}
		if mergedHi&mask == mask && mergedLo+1 == 0 && yLo+man < man {
			return 0, false
		}
		xHi, xLo = mergedHi, mergedLo
	}

	// Shifting to mantbits+2 bits.
	msb := xHi >> 63
	retMantissa := xHi >> (msb + uint64(shift))
	retExp2 -= 1 ^ msb

	// Half-way ambiguity.
	if xLo == 0 && xHi&mask == 0 && retMantissa&3 == 1 {
		return 0, false
	}

	// From mantbits+2 to mantbits+1 bits.
	retMantissa += retMantissa & 1
	retMantissa >>= 1
	if retMantissa>>(flt.mantbits+1) > 0 {
		retMantissa >>= 1
		retExp2 += 1
	}

	// retExp2 is unsigned: zero or wrap around means subnormal,
	// all ones or above means overflow.
	maxExp := uint64(1)<<flt.expbits - 1
	if retExp2-1 >= maxExp-1 {
		return 0, false
	}
	b = retExp2<<flt.mantbits | retMantissa&(1<<flt.mantbits-1)
	if neg {
		b |= 1 << (flt.mantbits + flt.expbits)
	}
	return b, true
}
