package floatconv

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestParseFloat64(t *testing.T) {
	tests := []struct {
		s    string
		bits uint64
	}{
		{"0", 0},
		{"-0", 0x8000000000000000},
		{"0.000e-5", 0},
		{"+Inf", 0x7ff0000000000000},
		{"-Inf", 0xfff0000000000000},
		{"inf", 0x7ff0000000000000},
		{"+infinity", 0x7ff0000000000000},
		{"-Infinity", 0xfff0000000000000},

		{"1", 0x3ff0000000000000},
		{"-2.5", 0xc004000000000000},
		{"3.14", 0x40091eb851eb851f},
		{"0.1", 0x3fb999999999999a},
		{".5", 0x3fe0000000000000},
		{"5.", 0x4014000000000000},
		{"1e23", 0x44b52d02c7e14af6},
		{"6.02214076e23", 0x44dfe185ca57c517},
		{"0.000001", 0x3eb0c6f7a0b5ed8d},
		{"123456789012345678901234567890", 0x45f8ee90ff6c373e},

		// maximum finite value
		{"1.7976931348623157e308", 0x7fefffffffffffff},
		{"1.7976931348623158e308", 0x7fefffffffffffff},
		{"1.7976931348623159e308", 0x7ff0000000000000},

		// smallest normal and largest subnormal
		{"2.2250738585072014e-308", 0x0010000000000000},
		{"2.2250738585072011e-308", 0x000fffffffffffff},

		// smallest subnormal
		{"4.9406564584124654e-324", 0x0000000000000001},
		{"2.4703282292062328e-324", 0x0000000000000001},
		{"2.4703282292062327e-324", 0},

		// round half to even
		{"9007199254740993", 0x4340000000000000},
		{"9007199254740995", 0x4340000000000002},
		{"9007199254740993.0000000001", 0x4340000000000001},

		// saturation
		{"1e400", 0x7ff0000000000000},
		{"-1e400", 0xfff0000000000000},
		{"1e-400", 0},
		{"-1e-400", 0x8000000000000000},
		{"1e100000000000", 0x7ff0000000000000},
		{"1e-100000000000", 0},
		{"0e100000000000", 0},
	}

	for _, tt := range tests {
		got, n, err := ParseFloat64(tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if n != len(tt.s) {
			t.Errorf("%q: expected %d bytes consumed, got %d", tt.s, len(tt.s), n)
		}
		if math.Float64bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float64bits(got))
		}
	}
}

func TestParseFloat32(t *testing.T) {
	tests := []struct {
		s    string
		bits uint32
	}{
		{"0", 0},
		{"-0", 0x80000000},
		{"+Inf", 0x7f800000},
		{"-inf", 0xff800000},
		{"1", 0x3f800000},
		{"-2.5", 0xc0200000},
		{"3.14", 0x4048f5c3},
		{"0.1", 0x3dcccccd},
		{"1e10", 0x501502f9},
		{"1e11", 0x51ba43b7},
		{"123456789e-20", 0x2badbfff},

		// maximum finite value
		{"3.4028235e38", 0x7f7fffff},
		{"3.4028236e38", 0x7f800000},

		// smallest normal and subnormal
		{"1.17549435e-38", 0x00800000},
		{"1.4e-45", 0x00000001},
		{"7.1e-46", 0x00000001},
		{"7e-46", 0},

		// round half to even
		{"16777217", 0x4b800000},
		{"16777219", 0x4b800002},

		// saturation
		{"1e39", 0x7f800000},
		{"-1e39", 0xff800000},
		{"1e-46", 0},
		{"-1e-46", 0x80000000},
	}

	for _, tt := range tests {
		got, n, err := ParseFloat32(tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if n != len(tt.s) {
			t.Errorf("%q: expected %d bytes consumed, got %d", tt.s, len(tt.s), n)
		}
		if math.Float32bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float32bits(got))
		}
	}
}

func TestParseNaN(t *testing.T) {
	for _, s := range []string{"nan", "NaN", "NAN"} {
		for _, w := range []Width{Width32, Width64} {
			v, n, err := Parse(s, w)
			if err != nil || n != 3 || !v.IsNaN() || v.Width() != w {
				t.Errorf("%q %s: expected NaN, got %x, %d, %v", s, w, v.Bits(), n, err)
			}
		}
	}
}

// halfway returns the exact decimal expansion of 2^-k, the midpoint between
// zero and the smallest subnormal for k = 1075 (float64) and k = 150 (float32).
func halfway(k int) string {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil).String()
}

func TestParseLongHalfway(t *testing.T) {
	tests := []struct {
		w Width
		k int
	}{
		{Width64, 1075},
		{Width32, 150},
	}
	for _, tt := range tests {
		digits := halfway(tt.k)
		cases := []struct {
			s    string
			bits uint64
		}{
			// exactly halfway: ties to even
			{digits + "e-" + strconv.Itoa(tt.k), 0},
			// just above halfway
			{digits + "1e-" + strconv.Itoa(tt.k+1), 1},
			// the deciding digit is far beyond the kept digits
			{digits + strings.Repeat("0", 1000) + "1e-" + strconv.Itoa(tt.k+1001), 1},
			{digits + strings.Repeat("0", 1000) + "e-" + strconv.Itoa(tt.k+1000), 0},
			// with a decimal point
			{"0." + strings.Repeat("0", 10) + digits + "1e" + strconv.Itoa(len(digits)+10-tt.k), 1},
		}
		for _, c := range cases {
			v, n, err := Parse(c.s, tt.w)
			if err != nil || n != len(c.s) {
				t.Errorf("%s: expected no error, got %d, %v", tt.w, n, err)
			}
			if v.Bits() != c.bits {
				t.Errorf("%s %.40q: expected %x, got %x", tt.w, c.s, c.bits, v.Bits())
			}
		}
	}
}

func TestParseMaxHalfway(t *testing.T) {
	// (2^1024 - 2^970) is halfway between the largest float64 and 2^1024.
	h := new(big.Int).Lsh(big.NewInt(1), 1024)
	h.Sub(h, new(big.Int).Lsh(big.NewInt(1), 970))
	s := h.String()

	if got, _, _ := ParseFloat64(s); !math.IsInf(got, 1) {
		t.Errorf("halfway: expected +Inf, got %v", got)
	}
	below := s[:len(s)-1] + "1"
	if got, _, _ := ParseFloat64(below); got != math.MaxFloat64 {
		t.Errorf("below halfway: expected max, got %v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		s        string
		consumed int
		bits     uint64
	}{
		{"", 0, 0},
		{"abc", 0, 0},
		{".", 0, 0},
		{"e5", 0, 0},
		{"+", 0, 0},
		{"-", 0, 0},
		{"-.e1", 0, 0},
		{"-nan", 0, 0},
		{"1e", 1, 0x3ff0000000000000},
		{"1e+", 1, 0x3ff0000000000000},
		{"1ex", 1, 0x3ff0000000000000},
		{"1.5x", 3, 0x3ff8000000000000},
		{"1.5e3 ", 5, 0x4097700000000000},
		{"1..5", 2, 0x3ff0000000000000},
		{"1_000", 1, 0x3ff0000000000000},
		{"0x10", 1, 0},
		{"infx", 3, 0x7ff0000000000000},
		{"infin", 3, 0x7ff0000000000000},
		{"-infinityy", 9, 0xfff0000000000000},
		{"nano", 3, 0x7ff8000000000000},
	}

	for _, tt := range tests {
		v, n, err := Parse(tt.s, Width64)
		if err == nil {
			t.Errorf("%q: expected error, got nil", tt.s)
			continue
		}
		if !errors.Is(err, strconv.ErrSyntax) || !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected syntax error, got %v", tt.s, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %T", tt.s, err)
			continue
		}
		if perr.Consumed != tt.consumed || n != tt.consumed {
			t.Errorf("%q: expected %d bytes consumed, got %d and %d", tt.s, tt.consumed, n, perr.Consumed)
		}
		if perr.Num != tt.s || perr.Func != "Parse" {
			t.Errorf("%q: unexpected error fields %+v", tt.s, perr)
		}
		if v.Bits() != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, v.Bits())
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, _, err := ParseFloat32("12abc")
	want := `floatconv.ParseFloat32: parsing "12abc": invalid syntax (valid prefix of 2 bytes)`
	if err == nil || err.Error() != want {
		t.Errorf("expected %s, got %v", want, err)
	}
}

type myBytes []byte

func TestParseBytes(t *testing.T) {
	buf := []byte("x3.14y")
	window := buf[1:5]
	v, n, err := Parse(window, Width64)
	if err != nil || n != 4 || v.Bits() != 0x40091eb851eb851f {
		t.Errorf("expected 3.14, got %x, %d, %v", v.Bits(), n, err)
	}

	f, n, err := ParseFloat32(myBytes("0.1"))
	if err != nil || n != 3 || math.Float32bits(f) != 0x3dcccccd {
		t.Errorf("expected 0.1, got %v, %d, %v", f, n, err)
	}

	p := NewParser(nil)
	v, n, err = p.ParseBytes([]byte("1e23"), Width64)
	if err != nil || n != 4 || v.Bits() != 0x44b52d02c7e14af6 {
		t.Errorf("expected 1e23, got %x, %d, %v", v.Bits(), n, err)
	}
}

func TestParseZeroWidth(t *testing.T) {
	for _, s := range []string{"1", "3.14", "1e23", "1e400", "-inf", "nan"} {
		v, n, err := Parse(s, Width(0))
		want, m, _ := Parse(s, Width64)
		if err != nil || n != m || v.Width() != Width64 || !v.Equal(want) {
			t.Errorf("%q: expected %x, got %x, %d, %v", s, want.Bits(), v.Bits(), n, err)
		}
	}

	v, n, err := NewParser(nil).Parse("0.1x", 0)
	if n != 3 || v.Bits() != 0x3fb999999999999a || !errors.Is(err, ErrInvalid) {
		t.Errorf("expected 0.1, got %x, %d, %v", v.Bits(), n, err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Parse("1", Width(16))
}

func TestNumberPath(t *testing.T) {
	restricted, err := DefaultTables().Restrict(-10, 10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		s      string
		w      Width
		tables *Tables
		want   path
	}{
		{"0", Width64, defaultTables, pathZero},
		{"-0.000e10", Width64, defaultTables, pathZero},
		{"1.5", Width64, defaultTables, pathExact},
		{"9007199254740992", Width64, defaultTables, pathExact},
		{"9007199254740993", Width64, defaultTables, pathTable},
		{"1e22", Width64, defaultTables, pathExact},
		{"1e37", Width64, defaultTables, pathExact}, // 1e15 × 1e22
		{"1e38", Width64, defaultTables, pathTable},
		{"1e-22", Width64, defaultTables, pathExact},
		{"1e-23", Width64, defaultTables, pathTable},
		{"1e10", Width32, defaultTables, pathExact},
		{"1e17", Width32, defaultTables, pathExact},
		{"1e18", Width32, defaultTables, pathTable},
		{"16777217", Width32, defaultTables, pathTable},
		{"12345678901234567890123", Width64, defaultTables, pathTable},
		{"1e300", Width64, defaultTables, pathTable},
		{"1e-348", Width64, defaultTables, pathTable},
		{"1e-349", Width64, defaultTables, pathBig},
		{"1e400", Width64, defaultTables, pathBig},
		{"3e-30", Width64, restricted, pathBig},
		{"1234567890123456789e-10", Width64, restricted, pathTable},
	}
	for _, tt := range tests {
		num, _, ok := readFloat(tt.s)
		if !ok {
			t.Errorf("%q: not a number", tt.s)
			continue
		}
		if got := num.path(tt.tables, tt.w); got != tt.want {
			t.Errorf("%q %s: expected path %d, got %d", tt.s, tt.w, tt.want, got)
		}
	}
}

// randomDecimal returns a random decimal literal with up to maxDigits
// significant digits and an exponent spanning the range of both widths.
func randomDecimal(r *rand.Rand, maxDigits int) string {
	var sb strings.Builder
	if r.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	nd := 1 + r.Intn(maxDigits)
	dot := r.Intn(nd + 1)
	for i := 0; i < nd; i++ {
		if i == dot {
			sb.WriteByte('.')
		}
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.Itoa(r.Intn(700) - 350))
	return sb.String()
}

func TestParseAgainstStrconv(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		maxDigits := 20
		if i%10 == 0 {
			maxDigits = 800
		}
		s := randomDecimal(r, maxDigits)

		want64, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			t.Fatalf("%q: %v", s, err)
		}
		got64, _, err := ParseFloat64(s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", s, err)
		}
		if math.Float64bits(got64) != math.Float64bits(want64) {
			t.Errorf("%q: expected %x, got %x", s, math.Float64bits(want64), math.Float64bits(got64))
		}

		want32, _ := strconv.ParseFloat(s, 32)
		got32, _, _ := ParseFloat32(s)
		if math.Float32bits(got32) != math.Float32bits(float32(want32)) {
			t.Errorf("%q: expected %x, got %x", s, math.Float32bits(float32(want32)), math.Float32bits(got32))
		}
	}
}

func TestParseRestrictedTables(t *testing.T) {
	restricted, err := DefaultTables().Restrict(-20, 20)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(restricted)

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20000; i++ {
		s := randomDecimal(r, 25)
		for _, w := range []Width{Width32, Width64} {
			want, _, _ := Parse(s, w)
			got, _, _ := p.Parse(s, w)
			if got.Bits() != want.Bits() {
				t.Errorf("%q %s: expected %x, got %x", s, w, want.Bits(), got.Bits())
			}
		}
	}
}

func TestParseMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		a := r.Uint64() >> uint(r.Intn(64))
		b := r.Uint64() >> uint(r.Intn(64))
		if a > b {
			a, b = b, a
		}
		exp := "e" + strconv.Itoa(r.Intn(700)-350)
		sa := strconv.FormatUint(a, 10) + exp
		sb := strconv.FormatUint(b, 10) + exp
		for _, w := range []Width{Width32, Width64} {
			va, _, _ := Parse(sa, w)
			vb, _, _ := Parse(sb, w)
			if va.Compare(vb) > 0 {
				t.Errorf("%s: %s parses above %s", w, sa, sb)
			}
		}
	}
}
