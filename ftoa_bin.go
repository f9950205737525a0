package floatconv

// appendBin appends the exact binary form of a finite v, "-ddddp±ddd",
// the way strconv.FormatFloat(f, 'b', -1, bitSize) does.
func (v Value) appendBin(buf []byte) []byte {
	flt := v.Width().info()
	neg, exp, frac := v.split()
	if neg {
		buf = append(buf, '-')
	}
	if exp == 0 {
		exp++
	} else {
		frac |= 1 << flt.mantbits
	}
	exp += flt.bias - int(flt.mantbits)

	buf = appendUint(buf, frac)
	buf = append(buf, 'p')
	if exp >= 0 {
		buf = append(buf, '+')
	}
	return appendInt(buf, exp)
}

// appendHex appends the shortest exact hexadecimal form of a finite v,
// "-0x1.yyyyp±dd", the way strconv.FormatFloat(f, 'x', -1, bitSize) does.
// fmt is 'x' or 'X'.
func (v Value) appendHex(buf []byte, fmt byte) []byte {
	flt := v.Width().info()
	neg, exp, frac := v.split()
	if exp == 0 {
		exp++
	} else {
		frac |= 1 << flt.mantbits
	}
	exp += flt.bias
	if frac == 0 {
		exp = 0
	}

	// Shift digits so leading 1 (if any) is at bit 1<<60.
	frac <<= 60 - flt.mantbits
	for frac != 0 && frac&(1<<60) == 0 {
		frac <<= 1
		exp--
	}

	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, '0', fmt, '0'+byte((frac>>60)&1))
	frac <<= 4 // remove leading 0 or 1
	if frac != 0 {
		buf = append(buf, '.')
		for frac != 0 {
			buf = append(buf, nibble(fmt, frac>>60))
			frac <<= 4
		}
	}

	buf = append(buf, fmt-('x'-'p'))
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}
	if exp < 10 {
		buf = append(buf, '0')
	}
	return appendUint(buf, uint64(exp))
}

func nibble(fmt byte, x uint64) byte {
	x &= 0xf
	if x < 10 {
		return '0' + byte(x)
	}
	return ('A' + byte(x-10)) | (fmt & ('a' - 'A'))
}
