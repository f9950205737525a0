package floatconv

import (
	"math"
)

// exact powers of 10.
var float64pow10 = []float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}
var float32pow10 = []float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

var uint64pow10 = [...]uint64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07, 1e08, 1e09,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// exactLimits returns the largest mantissa that converts exactly,
// the largest exact power of ten, and how many more powers of ten may be
// moved into the mantissa.
func exactLimits(w Width) (maxMant uint64, maxPow, maxDisguised int) {
	if w == Width32 {
		return 1 << 24, 10, 7
	}
	return 1 << 53, 22, 15
}

// exactOK reports whether mant × 10^exp can be computed with a single
// correctly rounded floating point multiplication or division.
func exactOK(w Width, mant uint64, exp int) bool {
	maxMant, maxPow, maxDisguised := exactLimits(w)
	switch {
	case mant > maxMant:
		return false
	case -maxPow <= exp && exp <= maxPow:
		return true
	case maxPow < exp && exp <= maxPow+maxDisguised:
		// "1e30" is really "1000000000e21"
		return mant <= maxMant/uint64pow10[exp-maxPow]
	}
	return false
}

// atofExact computes mant × 10^exp; exactOK(w, mant, exp) must hold.
func atofExact(w Width, mant uint64, exp int, neg bool) uint64 {
	if w == Width32 {
		return uint64(math.Float32bits(atof32exact(mant, exp, neg)))
	}
	return math.Float64bits(atof64exact(mant, exp, neg))
}

func atof64exact(mant uint64, exp int, neg bool) float64 {
	f := float64(mant)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f
	case exp > 22:
		f *= float64pow10[exp-22]
		exp = 22
		fallthrough
	case exp > 0:
		return f * float64pow10[exp]
	}
	return f / float64pow10[-exp]
}

func atof32exact(mant uint64, exp int, neg bool) float32 {
	f := float32(mant)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f
	case exp > 10:
		f *= float32pow10[exp-10]
		exp = 10
		fallthrough
	case exp > 0:
		return f * float32pow10[exp]
	}
	return f / float32pow10[-exp]
}
