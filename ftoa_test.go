package floatconv

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestShortest64(t *testing.T) {
	tests := []struct {
		f    float64
		want Decimal
	}{
		{0, Decimal{}},
		{negZero, Decimal{Neg: true}},
		{math.Inf(1), Decimal{Kind: KindInf}},
		{math.Inf(-1), Decimal{Neg: true, Kind: KindInf}},
		{math.NaN(), Decimal{Kind: KindNaN}},
		{-math.NaN(), Decimal{Kind: KindNaN}},

		{1, Decimal{Mant: 1}},
		{100, Decimal{Mant: 1, Exp: 2}},
		{1.5, Decimal{Mant: 15, Exp: -1}},
		{-2.5, Decimal{Mant: 25, Exp: -1, Neg: true}},
		{0.1, Decimal{Mant: 1, Exp: -1}},
		{0.3, Decimal{Mant: 3, Exp: -1}},
		{math.Float64frombits(0x3fd3333333333334), Decimal{Mant: 30000000000000004, Exp: -17}}, // 0.1 + 0.2
		{1.0 / 3, Decimal{Mant: 3333333333333333, Exp: -16}},
		{3.14, Decimal{Mant: 314, Exp: -2}},
		{1e23, Decimal{Mant: 1, Exp: 23}},
		{1 << 53, Decimal{Mant: 9007199254740992}},
		{123456789012345680, Decimal{Mant: 12345678901234568, Exp: 1}},
		{math.MaxFloat64, Decimal{Mant: 17976931348623157, Exp: 292}},
		{0x1p-1022, Decimal{Mant: 22250738585072014, Exp: -324}},
		{5e-324, Decimal{Mant: 5, Exp: -324}},
		{1e-323, Decimal{Mant: 1, Exp: -323}},
		{math.Float64frombits(0x000fffffffffffff), Decimal{Mant: 2225073858507201, Exp: -323}},
	}

	for _, tt := range tests {
		got := FromFloat64(tt.f).Decimal()
		if got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.f, spew.Sdump(tt.want), spew.Sdump(got))
		}
	}
}

func TestShortest32(t *testing.T) {
	tests := []struct {
		f    float32
		want Decimal
	}{
		{0, Decimal{}},
		{float32(negZero), Decimal{Neg: true}},
		{float32(math.Inf(-1)), Decimal{Neg: true, Kind: KindInf}},
		{1, Decimal{Mant: 1}},
		{0.1, Decimal{Mant: 1, Exp: -1}},
		{3.14, Decimal{Mant: 314, Exp: -2}},
		{1.0 / 3, Decimal{Mant: 33333334, Exp: -8}},
		{16777216, Decimal{Mant: 16777216}},
		{1e10, Decimal{Mant: 1, Exp: 10}},
		{math.MaxFloat32, Decimal{Mant: 34028235, Exp: 31}},
		{0x1p-126, Decimal{Mant: 11754944, Exp: -45}},
		{0x1p-149, Decimal{Mant: 1, Exp: -45}},
	}

	for _, tt := range tests {
		got := FromFloat32(tt.f).Decimal()
		if got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.f, spew.Sdump(tt.want), spew.Sdump(got))
		}
	}
}

// strconvDecimal extracts the digits and exponent of strconv's shortest 'e' form.
func strconvDecimal(t *testing.T, s string) (mant uint64, exp int) {
	t.Helper()
	s = strings.TrimPrefix(s, "-")
	i := strings.IndexByte(s, 'e')
	digits := strings.Replace(s[:i], ".", "", 1)
	x, err := strconv.Atoi(s[i+1:])
	if err != nil {
		t.Fatal(err)
	}
	mant, err = strconv.ParseUint(digits, 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	return mant, x - (len(digits) - 1)
}

func TestShortestAgainstStrconv(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200000; i++ {
		var v Value
		var want string
		if i%2 == 0 {
			f := math.Float64frombits(r.Uint64())
			if math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			v, want = FromFloat64(f), strconv.FormatFloat(f, 'e', -1, 64)
		} else {
			f := math.Float32frombits(r.Uint32())
			if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
				continue
			}
			v, want = FromFloat32(f), strconv.FormatFloat(float64(f), 'e', -1, 32)
		}

		d := v.Decimal()
		mant, exp := strconvDecimal(t, want)
		if mant == 0 {
			exp = 0
		}
		if d.Mant != mant || d.Exp != exp || d.Neg != v.Signbit() {
			t.Errorf("%s %x: expected %s, got %s", v.Width(), v.Bits(), want, spew.Sdump(d))
		}
	}
}

func TestShortestPowersOfTwo(t *testing.T) {
	// power of two significands take the asymmetric interval path
	for e := -1074; e <= 1023; e++ {
		f := math.Ldexp(1, e)
		want := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp := strconvDecimal(t, want)
		if d := FromFloat64(f).Decimal(); d.Mant != mant || d.Exp != exp {
			t.Errorf("2^%d: expected %s, got %s", e, want, spew.Sdump(d))
		}
	}
	for e := -149; e <= 127; e++ {
		f := float32(math.Ldexp(1, e))
		want := strconv.FormatFloat(float64(f), 'e', -1, 32)
		mant, exp := strconvDecimal(t, want)
		if d := FromFloat32(f).Decimal(); d.Mant != mant || d.Exp != exp {
			t.Errorf("2^%d: expected %s, got %s", e, want, spew.Sdump(d))
		}
	}
}

func TestShortestNoTrailingZeros(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		// integers and short decimals are the most likely to produce zeros
		f := float64(r.Int63n(1<<53)) * math.Pow10(r.Intn(40)-20)
		d := FromFloat64(f).Decimal()
		if d.Mant != 0 && d.Mant%10 == 0 {
			t.Errorf("%v: trailing zero in %s", f, spew.Sdump(d))
		}
		if d.Digits() > 17 {
			t.Errorf("%v: too many digits in %s", f, spew.Sdump(d))
		}
	}
}

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		mant uint64
		n    int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{17976931348623157, 17},
		{math.MaxUint64, 20},
	}
	for _, tt := range tests {
		if got := (Decimal{Mant: tt.mant}).Digits(); got != tt.n {
			t.Errorf("%d: expected %d digits, got %d", tt.mant, tt.n, got)
		}
	}
}

func TestDecimalString(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{Decimal{}, "0"},
		{Decimal{Neg: true}, "-0"},
		{Decimal{Mant: 15, Exp: -1}, "1.5"},
		{Decimal{Mant: 1, Exp: 20, Neg: true}, "-1e20"},
		{Decimal{Kind: KindNaN}, "NaN"},
		{Decimal{Kind: KindInf, Neg: true}, "-Inf"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestFormatterTables(t *testing.T) {
	f := NewFormatter(DefaultTables())
	v := FromFloat64(math.Pi)
	if got := string(f.Append(nil, v, Shortest)); got != "3.141592653589793" {
		t.Errorf("expected 3.141592653589793, got %s", got)
	}
	if got := f.Shortest(v); got != defaultFormatter.Shortest(v) {
		t.Errorf("expected %s, got %s", spew.Sdump(defaultFormatter.Shortest(v)), spew.Sdump(got))
	}
}
