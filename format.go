package floatconv

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = Value{}

// Format implements [fmt.Formatter].
//
// Without a precision, %v, %g, %e, %f and %x print the shortest representation
// that parses back to x. An explicit precision is handled by strconv.
func (x Value) Format(s fmt.State, verb rune) {
	switch verb {
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(floatconv.Value=%s)", verb, x.String())
		return
	}

	if x.IsNaN() {
		s.Write([]byte("NaN"))
		return
	}

	var prefix []byte
	var data []byte

	// sign
	if x.Signbit() {
		prefix = append(prefix, '-')
		x = x.Neg()
	} else {
		switch {
		case s.Flag('+'):
			prefix = append(prefix, '+')
		case s.Flag(' '):
			prefix = append(prefix, ' ')
		case x.IsInf(1):
			prefix = append(prefix, '+')
		}
	}

	prec, hasPrec := s.Precision()
	switch {
	case x.IsInf(0):
		data = append(data, "Inf"...)
	case verb == 'b':
		data = x.appendBin(data)
	case hasPrec && (verb == 'e' || verb == 'E' || verb == 'f' || verb == 'F' ||
		verb == 'g' || verb == 'G' || verb == 'x' || verb == 'X'):
		if verb == 'F' {
			verb = 'f'
		}
		// In this case, bitSize only selects the rounding of the shortest form,
		// which is not used with an explicit precision.
		data = strconv.AppendFloat(data, x.Float64(), byte(verb), prec, int(x.Width()))
	case verb == 'x' || verb == 'X':
		data = x.appendHex(data, byte(verb))
	case verb == 'e' || verb == 'E':
		data = x.Append(data, Layout{Notation: NotationScientific, ExpChar: byte(verb), ExpSign: true, MinExpDigits: 2})
	case verb == 'f' || verb == 'F':
		data = x.Append(data, Fixed)
	case verb == 'g' || verb == 'G':
		l := GoStyle
		l.ExpChar = byte(verb) + 'e' - 'g'
		data = x.Append(data, l)
	default:
		data = x.Append(data, GoStyle)
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		n := len(prefix) + len(data)
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			buf[0] = ' '
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			buf[0] = ' '
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
