package floatconv

// Compare compares v and u and returns:
//
//	-1 if v <  u
//	 0 if v == u (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if v >  u
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
// Values of different widths are compared exactly.
func (v Value) Compare(u Value) int {
	vNaN := v.IsNaN()
	uNaN := u.IsNaN()
	if vNaN && uNaN {
		return 0
	}
	if vNaN {
		return -1
	}
	if uNaN {
		return 1
	}

	if v.Width() != u.Width() {
		v, u = FromFloat64(v.Float64()), FromFloat64(u.Float64())
	}
	iv, iu := v.order(), u.order()
	if iv < iu {
		return -1
	}
	if iv > iu {
		return 1
	}
	return 0
}

// order maps the bits of v to an integer with the same ordering as v.
// Both zeros map to 0.
func (v Value) order() int64 {
	flt := v.Width().info()
	n := flt.mantbits + flt.expbits
	mag := int64(v.bits & (1<<n - 1))
	if v.bits>>n != 0 {
		return -mag
	}
	return mag
}

// NextUp returns the least value of the same width greater than v.
// NextUp(+Inf) = +Inf and NextUp(NaN) = NaN.
func (v Value) NextUp() Value {
	v.width = v.Width()
	switch {
	case v.IsNaN() || v.IsInf(1):
	case v.Class() == ClassZero:
		v.bits = 1
	case v.Signbit():
		v.bits--
	default:
		v.bits++
	}
	return v
}

// NextDown returns the greatest value of the same width less than v.
// NextDown(-Inf) = -Inf and NextDown(NaN) = NaN.
func (v Value) NextDown() Value {
	if v.IsNaN() {
		return v
	}
	return v.Neg().NextUp().Neg()
}
