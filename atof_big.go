package floatconv

import (
	"math/big"
)

// Digits beyond these counts cannot change the rounding of a binary64 or
// binary32 value: every halfway point between two floats has fewer
// significant digits. Anything further is folded into a sticky digit.
const (
	maxBigDigits64 = 769
	maxBigDigits32 = 114
)

func (flt *floatInfo) maxBigDigits() int {
	if flt.mantbits == float32info.mantbits {
		return maxBigDigits32
	}
	return maxBigDigits64
}

// saturation bounds on the decimal exponent of the leading digit:
// above maxSci the value is beyond the largest finite float plus half an ulp,
// below minSci it is below half of the smallest subnormal.
func (flt *floatInfo) sciLimits() (minSci, maxSci int) {
	if flt.mantbits == float32info.mantbits {
		return -47, 38
	}
	return -326, 308
}

var bigTen = big.NewInt(10)

func bigPow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// atofBig converts the scanned number num of s exactly.
// The work is done with math/big and allocates.
func atofBig[T text](s T, num *number, flt *floatInfo) uint64 {
	minSci, maxSci := flt.sciLimits()
	switch sci := num.dp - 1; {
	case sci > maxSci:
		return roundBits(flt, 1, 1<<20, num.neg, false) // ±Inf
	case sci < minSci:
		return roundBits(flt, 0, 0, num.neg, false) // ±0
	}

	d, nd := bigDigits(s, num, flt.maxBigDigits())

	// value = d × 10^e = n / m
	e := num.dp - nd
	n, m := d, big.NewInt(1)
	if e >= 0 {
		n.Mul(n, bigPow10(e))
	} else {
		m = bigPow10(-e)
	}

	// Scale so that the quotient has mantbits+4 or mantbits+5 bits,
	// two more than needed for rounding.
	shift := int(flt.mantbits) + 4 - (n.BitLen() - m.BitLen())
	if shift >= 0 {
		n.Lsh(n, uint(shift))
	} else {
		m.Lsh(m, uint(-shift))
	}
	q, r := new(big.Int).QuoRem(n, m, new(big.Int))
	return roundBits(flt, q.Uint64(), -shift, num.neg, r.Sign() != 0)
}

// bigDigits returns the significant digits of num as an integer, at most limit
// of them, with a trailing 1 appended when non-zero digits were dropped.
// nd is the number of digits in d.
func bigDigits[T text](s T, num *number, limit int) (d *big.Int, nd int) {
	d = new(big.Int)
	var chunk uint64
	var chunkLen int
	started, sticky := false, false

	flush := func() {
		if chunkLen == 0 {
			return
		}
		d.Mul(d, new(big.Int).SetUint64(uint64pow10[chunkLen]))
		d.Add(d, new(big.Int).SetUint64(chunk))
		chunk, chunkLen = 0, 0
	}
	scan := func(start, end int) {
		for i := start; i < end; i++ {
			c := s[i]
			if !started {
				if c == '0' {
					continue
				}
				started = true
			}
			if nd == limit {
				if c != '0' {
					sticky = true
				}
				continue
			}
			chunk = chunk*10 + uint64(c-'0')
			chunkLen++
			nd++
			if chunkLen == maxMantDigits {
				flush()
			}
		}
	}
	scan(num.intStart, num.intEnd)
	scan(num.fracStart, num.fracEnd)
	if sticky {
		chunk = chunk*10 + 1
		chunkLen++
		nd++
	}
	flush()
	return d, nd
}

// roundBits returns the IEEE bits of the format flt nearest to
// mantissa × 2^exp, rounding half to even. If trunc is true, non-zero bits
// below mantissa have been dropped.
//
// based on https://github.com/golang/go/blob/8c92897e15d15fbc664cd5a05132ce800cf4017f/src/strconv/atof.go#L494-L562
func roundBits(flt *floatInfo, mantissa uint64, exp int, neg, trunc bool) uint64 {
	maxExp := 1<<flt.expbits + flt.bias - 2
	minExp := flt.bias + 1
	exp += int(flt.mantbits) // mantissa now implicitly divided by 2^mantbits.

	// Shift mantissa and exponent to bring representation into float range.
	// Eventually we want a mantissa with a leading 1-bit followed by mantbits other bits.
	// For rounding, we need two more, where the bottom bit represents
	// whether that bit or any later bit was non-zero.
	// (If the mantissa has already lost non-zero bits, trunc is true,
	// and we OR in a 1 below after shifting left appropriately.)
	for mantissa != 0 && mantissa>>(flt.mantbits+2) == 0 {
		mantissa <<= 1
		exp--
	}
	if trunc {
		mantissa |= 1
	}
	for mantissa>>(1+flt.mantbits+2) != 0 {
		mantissa = mantissa>>1 | mantissa&1
		exp++
	}

	// If exponent is too negative,
	// denormalize in hopes of making it representable.
	// (The -2 is for the rounding bits.)
	for mantissa > 1 && exp < minExp-2 {
		mantissa = mantissa>>1 | mantissa&1
		exp++
	}

	// Round using two bottom bits.
	round := mantissa & 3
	mantissa >>= 2
	round |= mantissa & 1 // round to even (round up if mantissa is odd)
	exp += 2
	if round == 3 {
		mantissa++
		if mantissa == 1<<(1+flt.mantbits) {
			mantissa >>= 1
			exp++
		}
	}

	if mantissa>>flt.mantbits == 0 { // subnormal or zero
		exp = flt.bias
	}
	if exp > maxExp { // infinity
		mantissa = 1 << flt.mantbits
		exp = maxExp + 1
	}

	bits := mantissa & (1<<flt.mantbits - 1)
	bits |= uint64((exp-flt.bias)&(1<<flt.expbits-1)) << flt.mantbits
	if neg {
		bits |= 1 << flt.mantbits << flt.expbits
	}
	return bits
}
