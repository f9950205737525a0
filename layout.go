package floatconv

// Notation selects between fixed-point and scientific rendering.
type Notation uint8

const (
	// NotationShortest picks the shorter of fixed and scientific; fixed on a tie.
	NotationShortest Notation = iota
	NotationFixed
	NotationScientific
	// NotationThreshold uses fixed notation when the decimal exponent x of the
	// leading digit (d.ddd × 10^x) satisfies Low <= x < High.
	NotationThreshold
)

func (n Notation) String() string {
	switch n {
	case NotationShortest:
		return "shortest"
	case NotationFixed:
		return "fixed"
	case NotationScientific:
		return "scientific"
	case NotationThreshold:
		return "threshold"
	}
	return "Notation(" + itoa(int(n)) + ")"
}

// ParseNotation returns the Notation named s, as printed by Notation.String.
func ParseNotation(s string) (Notation, error) {
	for n := NotationShortest; n <= NotationThreshold; n++ {
		if n.String() == s {
			return n, nil
		}
	}
	return 0, Error.New("unknown notation %q", s)
}

// Layout renders a Decimal as ASCII text.
// The zero Layout is NotationShortest with an unpadded 'e' exponent.
//
// Layouts never round: every digit of the Decimal is written.
type Layout struct {
	Notation Notation

	// ExpChar is the exponent marker, 'e' if zero.
	ExpChar byte
	// ExpSign writes '+' before non-negative exponents.
	ExpSign bool
	// MinExpDigits pads the exponent with zeros, at most 3.
	MinExpDigits int

	// Low and High bound the fixed range of NotationThreshold.
	Low, High int
}

var (
	// Shortest renders 1e20 as "1e20", 1000 as "1e3" and 0.25 as "0.25".
	Shortest = Layout{Notation: NotationShortest}

	// Fixed never uses an exponent.
	Fixed = Layout{Notation: NotationFixed}

	// Scientific always uses an exponent: "1.5e0".
	Scientific = Layout{Notation: NotationScientific}

	// ECMAScript matches Number.prototype.toString for finite values.
	// Like every layout, it writes NaN, +Inf and -Inf for the others.
	ECMAScript = Layout{Notation: NotationThreshold, ExpSign: true, Low: -6, High: 21}

	// GoStyle matches strconv.FormatFloat(f, 'g', -1, bitSize).
	GoStyle = Layout{Notation: NotationThreshold, ExpSign: true, MinExpDigits: 2, Low: -4, High: 6}

	// ToChars matches the to_chars output of the dragonbox reference library
	// for finite values: "1.5E1".
	ToChars = Layout{Notation: NotationScientific, ExpChar: 'E'}
)

// Validate reports whether l can be rendered and parsed back.
func (l Layout) Validate() error {
	switch {
	case l.Notation > NotationThreshold:
		return Error.New("invalid notation %d", l.Notation)
	case l.ExpChar != 0 && l.ExpChar != 'e' && l.ExpChar != 'E':
		return Error.New("invalid exponent marker %q", l.ExpChar)
	case l.MinExpDigits < 0 || l.MinExpDigits > 3:
		return Error.New("invalid minimum exponent digits %d", l.MinExpDigits)
	case l.Notation == NotationThreshold && l.Low >= l.High:
		return Error.New("invalid threshold range [%d, %d)", l.Low, l.High)
	}
	return nil
}

// Worst-case lengths of the text of a single value.
const (
	// MaxLen32 and MaxLen64 bound NotationShortest and NotationScientific
	// output when MinExpDigits is at most 2 (binary32) or 3 (binary64):
	// sign, 9 or 17 digits, point, marker, exponent sign and 2 or 3 exponent digits.
	// Use Layout.MaxLen for threshold layouts.
	MaxLen32 = 1 + 9 + 1 + 1 + 1 + 2
	MaxLen64 = 1 + 17 + 1 + 1 + 1 + 3

	// MaxFixedLen32 and MaxFixedLen64 bound NotationFixed output,
	// reached by the smallest negative subnormal ("-0.000...0005").
	MaxFixedLen32 = 48
	MaxFixedLen64 = 327
)

// decimal ranges of the formats: digits and leading digit exponents.
func decimalRange(w Width) (maxDigits, minX, maxX int) {
	if w == Width32 {
		return 9, -45, 38
	}
	return 17, -324, 308
}

// MaxLen returns the maximum number of bytes AppendDecimal writes for
// a value of width w.
func (l Layout) MaxLen(w Width) int {
	maxDigits, minX, maxX := decimalRange(w)
	n := len("+Inf")
	for x := minX; x <= maxX; x++ {
		// Below 10^(minX+k) a shortest decimal has at most k+1 digits.
		nd := x - minX + 1
		if nd > maxDigits {
			nd = maxDigits
		}
		if m := 1 + l.length(nd, x); m > n {
			n = m
		}
	}
	return n
}

// length returns the length of an unsigned rendering of nd digits
// with leading digit exponent x.
func (l Layout) length(nd, x int) int {
	if l.useFixed(nd, x) {
		return fixedLen(nd, x)
	}
	return l.sciLen(nd, x)
}

func (l Layout) useFixed(nd, x int) bool {
	switch l.Notation {
	case NotationFixed:
		return true
	case NotationScientific:
		return false
	case NotationThreshold:
		return l.Low <= x && x < l.High
	}
	return fixedLen(nd, x) <= l.sciLen(nd, x)
}

func fixedLen(nd, x int) int {
	switch {
	case x < 0:
		return 2 + (-x - 1) + nd // 0.000ddd
	case x+1 >= nd:
		return x + 1 // ddd000
	}
	return nd + 1 // dd.d
}

func (l Layout) sciLen(nd, x int) int {
	n := nd + 1
	if nd > 1 {
		n++
	}
	if x < 0 || l.ExpSign {
		n++
	}
	ed := 1
	for e := abs(x); e >= 10; e /= 10 {
		ed++
	}
	if ed < l.MinExpDigits {
		ed = l.MinExpDigits
	}
	return n + ed
}

// AppendDecimal appends the text of d to dst.
func (l Layout) AppendDecimal(dst []byte, d Decimal) []byte {
	switch d.Kind {
	case KindNaN:
		return append(dst, "NaN"...)
	case KindInf:
		if d.Neg {
			return append(dst, "-Inf"...)
		}
		return append(dst, "+Inf"...)
	}

	var buf [20]byte
	i := putUint(&buf, d.Mant)
	digs := buf[i:]
	x := len(digs) - 1 + d.Exp
	if d.Mant == 0 {
		x = 0
	}

	if d.Neg {
		dst = append(dst, '-')
	}
	if l.useFixed(len(digs), x) {
		return appendFixed(dst, digs, x)
	}
	return l.appendSci(dst, digs, x)
}

// %f: ddd.ddd
func appendFixed(dst, digs []byte, x int) []byte {
	switch {
	case x < 0:
		dst = append(dst, '0', '.')
		for i := x + 1; i < 0; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digs...)
	case x+1 >= len(digs):
		dst = append(dst, digs...)
		for i := len(digs); i <= x; i++ {
			dst = append(dst, '0')
		}
		return dst
	}
	dst = append(dst, digs[:x+1]...)
	dst = append(dst, '.')
	return append(dst, digs[x+1:]...)
}

// %e: d.ddde±dd
func (l Layout) appendSci(dst, digs []byte, x int) []byte {
	dst = append(dst, digs[0])
	if len(digs) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digs[1:]...)
	}

	ch := l.ExpChar
	if ch == 0 {
		ch = 'e'
	}
	dst = append(dst, ch)
	if x < 0 {
		dst = append(dst, '-')
		x = -x
	} else if l.ExpSign {
		dst = append(dst, '+')
	}

	var buf [20]byte
	i := putUint(&buf, uint64(x))
	for n := len(buf) - i; n < l.MinExpDigits; n++ {
		dst = append(dst, '0')
	}
	return append(dst, buf[i:]...)
}

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// putUint writes the decimal digits of u at the end of buf
// and returns the index of the first digit.
func putUint(buf *[20]byte, u uint64) int {
	i := len(buf)
	for u >= 100 {
		is := u % 100 * 2
		u /= 100
		i -= 2
		buf[i+1] = smallsString[is+1]
		buf[i+0] = smallsString[is+0]
	}

	// u < 100
	is := u * 2
	i--
	buf[i] = smallsString[is+1]
	if u >= 10 {
		i--
		buf[i] = smallsString[is]
	}
	return i
}

func appendUint(dst []byte, u uint64) []byte {
	var buf [20]byte
	i := putUint(&buf, u)
	return append(dst, buf[i:]...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
