package floatconv

import (
	"math"
)

// Width is the IEEE 754 binary interchange format of a Value.
type Width uint8

const (
	Width32 Width = 32 // binary32, float32
	Width64 Width = 64 // binary64, float64
)

// floatInfo describes the bit layout of an IEEE 754 binary format.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var float32info = floatInfo{23, 8, -127}
var float64info = floatInfo{52, 11, -1023}

func (w Width) info() *floatInfo {
	switch w {
	case Width32:
		return &float32info
	case Width64:
		return &float64info
	}
	panic("floatconv: invalid width " + itoa(int(w)))
}

func (w Width) String() string {
	switch w {
	case Width32:
		return "float32"
	case Width64:
		return "float64"
	}
	return "Width(" + itoa(int(w)) + ")"
}

// Class is the IEEE 754 class of a floating point value.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassNaN
)

var classNames = [...]string{
	ClassZero:      "Zero",
	ClassSubnormal: "Subnormal",
	ClassNormal:    "Normal",
	ClassInfinity:  "Infinity",
	ClassNaN:       "NaN",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + itoa(int(c)) + ")"
}

// Value is an IEEE 754 binary32 or binary64 floating point number.
// The zero Value is a positive float64 zero.
type Value struct {
	bits  uint64
	width Width
}

// FromFloat32 returns the Value of f.
func FromFloat32(f float32) Value {
	return Value{bits: uint64(math.Float32bits(f)), width: Width32}
}

// FromFloat64 returns the Value of f.
func FromFloat64(f float64) Value {
	return Value{bits: math.Float64bits(f), width: Width64}
}

// FromBits returns the floating point number corresponding
// to the IEEE 754 binary representation b of width w.
// Bits above the width are ignored.
func FromBits(w Width, b uint64) Value {
	flt := w.info()
	n := flt.mantbits + flt.expbits + 1
	return Value{bits: b & (1<<n - 1), width: w}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(w Width, sign int) Value {
	flt := w.info()
	b := uint64(1<<flt.expbits-1) << flt.mantbits
	if sign < 0 {
		b |= 1 << (flt.mantbits + flt.expbits)
	}
	return Value{bits: b, width: w}
}

// NaN returns the canonical quiet NaN of width w.
func NaN(w Width) Value {
	flt := w.info()
	b := uint64(1<<flt.expbits-1)<<flt.mantbits | 1<<(flt.mantbits-1)
	return Value{bits: b, width: w}
}

// Width returns the format of v.
func (v Value) Width() Width {
	if v.width == 0 {
		return Width64
	}
	return v.width
}

// Bits returns the IEEE 754 binary representation of v.
func (v Value) Bits() uint64 {
	return v.bits
}

// Float32 returns v as a float32.
// A float64 value is rounded to nearest even.
func (v Value) Float32() float32 {
	if v.Width() == Width32 {
		return math.Float32frombits(uint32(v.bits))
	}
	return float32(math.Float64frombits(v.bits))
}

// Float64 returns v as a float64. The conversion is exact.
func (v Value) Float64() float64 {
	if v.Width() == Width32 {
		return float64(math.Float32frombits(uint32(v.bits)))
	}
	return math.Float64frombits(v.bits)
}

// split returns the sign, the biased exponent and the fraction of v.
func (v Value) split() (neg bool, exp int, frac uint64) {
	flt := v.Width().info()
	neg = v.bits>>(flt.mantbits+flt.expbits) != 0
	exp = int(v.bits>>flt.mantbits) & (1<<flt.expbits - 1)
	frac = v.bits & (1<<flt.mantbits - 1)
	return
}

// Signbit reports whether v is negative or negative zero.
func (v Value) Signbit() bool {
	neg, _, _ := v.split()
	return neg
}

// IsNaN reports whether v is an IEEE 754 “not-a-number” value.
func (v Value) IsNaN() bool {
	return v.Class() == ClassNaN
}

// IsInf reports whether v is an infinity, according to sign.
// If sign > 0, IsInf reports whether v is positive infinity.
// If sign < 0, IsInf reports whether v is negative infinity.
// If sign == 0, IsInf reports whether v is either infinity.
func (v Value) IsInf(sign int) bool {
	if v.Class() != ClassInfinity {
		return false
	}
	neg := v.Signbit()
	return sign >= 0 && !neg || sign <= 0 && neg
}

// Class returns the IEEE 754 class of v.
func (v Value) Class() Class {
	flt := v.Width().info()
	_, exp, frac := v.split()
	switch exp {
	case 0:
		if frac == 0 {
			return ClassZero
		}
		return ClassSubnormal
	case 1<<flt.expbits - 1:
		if frac == 0 {
			return ClassInfinity
		}
		return ClassNaN
	}
	return ClassNormal
}

// Neg returns v with its sign bit flipped.
func (v Value) Neg() Value {
	flt := v.Width().info()
	v.bits ^= 1 << (flt.mantbits + flt.expbits)
	if v.width == 0 {
		v.width = Width64
	}
	return v
}

// Equal reports whether v and u have the same width and bit pattern.
// Unlike ==, all NaNs of a width are equal to each other.
func (v Value) Equal(u Value) bool {
	if v.Width() != u.Width() {
		return false
	}
	if v.IsNaN() && u.IsNaN() {
		return true
	}
	return v.bits == u.bits
}

func itoa(i int) string {
	var buf [20]byte
	return string(appendInt(buf[:0], i))
}

func appendInt(dst []byte, i int) []byte {
	if i < 0 {
		dst = append(dst, '-')
		return appendUint(dst, uint64(-i))
	}
	return appendUint(dst, uint64(i))
}
