// convert decimal text to float32 and float64

package floatconv

import (
	"strconv"
)

// text is the input of the parser: a string or a byte slice,
// possibly a window of a larger buffer.
type text interface {
	~string | ~[]byte
}

// ErrInvalid indicates that the input does not start with a valid number,
// or that it has trailing bytes after one.
// It is strconv.ErrSyntax so that errors.Is(err, strconv.ErrSyntax) holds.
var ErrInvalid = strconv.ErrSyntax

// A ParseError records a failed conversion.
type ParseError struct {
	Func     string // the failing function (ParseFloat32, ParseFloat64, Parse)
	Num      string // the input
	Consumed int    // the number of leading bytes that form a valid number
	Err      error  // the reason the conversion failed (ErrInvalid)
}

func (e *ParseError) Error() string {
	return "floatconv." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error() +
		" (valid prefix of " + itoa(e.Consumed) + " bytes)"
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxError[T text](fn string, s T, consumed int) *ParseError {
	return &ParseError{Func: fn, Num: string(s), Consumed: consumed, Err: ErrInvalid}
}

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
// Instead of writing c == 'x' || c == 'X' one can write lower(c) == 'x'.
// Note that lower of non-letters can produce other non-letters.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// commonPrefixLenIgnoreCase returns the length of the common
// prefix of s[i:] and prefix, with the character case of s ignored.
// The prefix argument must be all lower-case.
func commonPrefixLenIgnoreCase[T text](s T, i int, prefix string) int {
	n := len(prefix)
	if n > len(s)-i {
		n = len(s) - i
	}
	for j := 0; j < n; j++ {
		c := s[i+j]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[j] {
			return j
		}
	}
	return n
}

// special parses "inf", "infinity" and "nan", ignoring case.
// Infinities may carry a sign.
func special[T text](s T, w Width) (f Value, n int, ok bool) {
	if len(s) == 0 {
		return f, 0, false
	}

	sign := 1
	nsign := 0
	switch s[0] {
	case '+', '-':
		if s[0] == '-' {
			sign = -1
		}
		nsign = 1
		fallthrough
	case 'i', 'I':
		n := commonPrefixLenIgnoreCase(s, nsign, "infinity")
		// Anything longer than "inf" is ok, but if we
		// don't have "infinity", only consume "inf".
		if 3 < n && n < 8 {
			n = 3
		}
		if n == 3 || n == 8 {
			return Inf(w, sign), nsign + n, true
		}
	case 'n', 'N':
		if commonPrefixLenIgnoreCase(s, 0, "nan") == 3 {
			return NaN(w), 3, true
		}
	}
	return f, 0, false
}

// number is a scanned decimal literal.
type number struct {
	mant  uint64 // the leading significant digits, at most maxMantDigits of them
	exp   int    // mant × 10^exp approximates the value
	dp    int    // the value is 0.ddd × 10^dp where ddd are the significant digits
	neg   bool
	trunc bool // non-zero digits were dropped from mant

	// digit spans of the mantissa, without the decimal point
	intStart, intEnd   int
	fracStart, fracEnd int
}

const maxMantDigits = 19 // 10^19 fits in uint64

// readFloat reads a decimal mantissa and exponent from s; the number may be
// followed by other characters. readFloat reports the number of bytes consumed
// (n), and whether a number was found (ok). A malformed exponent is not part of
// the number: "1e+x" consumes only "1".
func readFloat[T text](s T) (num number, n int, ok bool) {
	i := 0

	// optional sign
	if i >= len(s) {
		return
	}
	switch s[i] {
	case '+':
		i++
	case '-':
		num.neg = true
		i++
	}

	// digits
	sawdot := false
	sawdigits := false
	nd := 0
	ndMant := 0
	num.intStart = i
loop:
	for ; i < len(s); i++ {
		switch c := s[i]; true {
		case c == '.':
			if sawdot {
				break loop
			}
			sawdot = true
			num.intEnd = i
			num.fracStart = i + 1
			num.dp = nd
			continue

		case '0' <= c && c <= '9':
			sawdigits = true
			if c == '0' && nd == 0 { // ignore leading zeros
				num.dp--
				continue
			}
			nd++
			if ndMant < maxMantDigits {
				num.mant *= 10
				num.mant += uint64(c - '0')
				ndMant++
			} else if c != '0' {
				num.trunc = true
			}
			continue
		}
		break
	}
	if !sawdigits {
		return number{}, 0, false
	}
	if sawdot {
		num.fracEnd = i
	} else {
		num.dp = nd
		num.intEnd = i
		num.fracStart, num.fracEnd = i, i
	}
	n = i

	// optional exponent moves decimal point.
	// a huge exponent is clamped; it doesn't matter if it's
	// not the exact number as long as it saturates.
	if i < len(s) && lower(s[i]) == 'e' {
		i++
		esign := 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				esign = -1
			}
			i++
		}
		if i < len(s) && '0' <= s[i] && s[i] <= '9' {
			e := 0
			for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
				if e < 100000000 {
					e = e*10 + int(s[i]) - '0'
				}
			}
			num.dp += e * esign
			n = i
		}
	}

	if num.mant != 0 {
		num.exp = num.dp - ndMant
	}
	return num, n, true
}

// path is the conversion strategy chosen for a scanned number.
type path uint8

const (
	pathZero  path = iota // all digits are zero
	pathExact             // a single exact float operation
	pathTable             // Eisel-Lemire with the 128-bit table, big on failure
	pathBig               // arbitrary precision
)

func (num *number) path(t *Tables, w Width) path {
	switch {
	case num.mant == 0:
		return pathZero
	case !num.trunc && exactOK(w, num.mant, num.exp):
		return pathExact
	case t.hasPow10(num.exp):
		return pathTable
	}
	return pathBig
}

// convert returns the IEEE bits of the scanned number num of s.
func convert[T text](t *Tables, s T, num *number, w Width) uint64 {
	flt := w.info()
	switch num.path(t, w) {
	case pathZero:
		if num.neg {
			return 1 << (flt.mantbits + flt.expbits)
		}
		return 0
	case pathExact:
		return atofExact(w, num.mant, num.exp, num.neg)
	case pathTable:
		b, ok := t.eiselLemire(flt, num.mant, num.exp, num.neg)
		if ok && num.trunc {
			// The digits after mant may round either way:
			// only accept when mant and mant+1 agree.
			b1, ok1 := t.eiselLemire(flt, num.mant+1, num.exp, num.neg)
			ok = ok1 && b == b1
		}
		if ok {
			return b
		}
	}
	return atofBig(s, num, flt)
}

func parse[T text](t *Tables, fn string, s T, w Width) (Value, int, error) {
	if w == 0 {
		w = Width64
	}
	if v, n, ok := special(s, w); ok {
		if n != len(s) {
			return v, n, syntaxError(fn, s, n)
		}
		return v, n, nil
	}

	num, n, ok := readFloat(s)
	if !ok {
		return Value{width: w}, 0, syntaxError(fn, s, 0)
	}
	v := Value{bits: convert(t, s, &num, w), width: w}
	if n != len(s) {
		return v, n, syntaxError(fn, s, n)
	}
	return v, n, nil
}

// Parser converts decimal text to floating point values using
// a fixed set of tables. A Parser is safe for concurrent use.
type Parser struct {
	tables *Tables
}

// NewParser returns a Parser that uses t.
// A nil t selects DefaultTables.
func NewParser(t *Tables) *Parser {
	return &Parser{tables: orDefault(t)}
}

// Parse converts s to the nearest value of width w, rounding half to even.
//
// It returns the number of bytes consumed. If s is not entirely a number,
// the value of its longest valid prefix is returned along with a *ParseError
// whose Consumed field is the length of that prefix (zero if none).
// Values too large or too small for w saturate to ±Inf or ±0 without error.
// A zero w means Width64, as for the zero Value; any other width panics.
func (p *Parser) Parse(s string, w Width) (Value, int, error) {
	return parse(p.tables, "Parse", s, w)
}

// ParseBytes is like Parse but takes a byte slice. b is not retained.
func (p *Parser) ParseBytes(b []byte, w Width) (Value, int, error) {
	return parse(p.tables, "Parse", b, w)
}
