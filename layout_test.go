package floatconv

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPolicies(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		f      float64
		want   string
	}{
		{"shortest", Shortest, 1e20, "1e20"},
		{"shortest", Shortest, 1000, "1e3"},
		{"shortest", Shortest, 100, "100"}, // tie goes to fixed
		{"shortest", Shortest, 0.25, "0.25"},
		{"shortest", Shortest, 0.001, "1e-3"},
		{"shortest", Shortest, 0.01, "0.01"},
		{"shortest", Shortest, 123456, "123456"},
		{"shortest", Shortest, -1.5, "-1.5"},
		{"shortest", Shortest, 1.5e-10, "1.5e-10"},
		{"shortest", Shortest, 0, "0"},
		{"shortest", Shortest, negZero, "-0"},
		{"shortest", Shortest, 5e-324, "5e-324"},
		{"shortest", Shortest, math.MaxFloat64, "1.7976931348623157e308"},

		{"fixed", Fixed, 1e20, "100000000000000000000"},
		{"fixed", Fixed, 1.5e-5, "0.000015"},
		{"fixed", Fixed, 123.456, "123.456"},
		{"fixed", Fixed, -0.5, "-0.5"},

		{"scientific", Scientific, 1.5, "1.5e0"},
		{"scientific", Scientific, 100, "1e2"},
		{"scientific", Scientific, -0.00123, "-1.23e-3"},
		{"scientific", Scientific, 0, "0e0"},

		{"ecmascript", ECMAScript, 1e21, "1e+21"},
		{"ecmascript", ECMAScript, 1e20, "100000000000000000000"},
		{"ecmascript", ECMAScript, 123.456, "123.456"},
		{"ecmascript", ECMAScript, 0.000001, "0.000001"},
		{"ecmascript", ECMAScript, 1e-7, "1e-7"},
		{"ecmascript", ECMAScript, -1.5e-7, "-1.5e-7"},
		{"ecmascript", ECMAScript, 1.2345e25, "1.2345e+25"},

		{"go", GoStyle, 1e6, "1e+06"},
		{"go", GoStyle, 123456, "123456"},
		{"go", GoStyle, 0.0001, "0.0001"},
		{"go", GoStyle, 0.00001, "1e-05"},
		{"go", GoStyle, 1e100, "1e+100"},

		{"tochars", ToChars, 1.5e1, "1.5E1"},
		{"tochars", ToChars, 1e-5, "1E-5"},

		{"padded", Layout{Notation: NotationScientific, MinExpDigits: 3}, 1.5, "1.5e000"},
		{"threshold", Layout{Notation: NotationThreshold, ExpChar: 'E', Low: 0, High: 3}, 999, "999"},
		{"threshold", Layout{Notation: NotationThreshold, ExpChar: 'E', Low: 0, High: 3}, 1000, "1E3"},
		{"threshold", Layout{Notation: NotationThreshold, ExpChar: 'E', Low: 0, High: 3}, 0.5, "5E-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat64(tt.f).Text(tt.layout), "%v", tt.f)
		})
	}
}

func TestLayoutSpecial(t *testing.T) {
	for _, l := range []Layout{Shortest, Fixed, Scientific, ECMAScript, GoStyle, ToChars} {
		for _, w := range []Width{Width32, Width64} {
			assert.Equal(t, "NaN", NaN(w).Text(l))
			assert.Equal(t, "+Inf", Inf(w, 1).Text(l))
			assert.Equal(t, "-Inf", Inf(w, -1).Text(l))
		}
	}

	// non-finite text does not depend on the layout and parses back
	for _, tt := range []struct {
		s    string
		sign int
	}{{"+Inf", 1}, {"-Inf", -1}} {
		assert.Equal(t, tt.s, Inf(Width64, tt.sign).Text(ECMAScript))
		assert.Equal(t, tt.s, Inf(Width32, tt.sign).Text(ToChars))
		v, n, err := Parse(tt.s, Width32)
		require.NoError(t, err)
		assert.Equal(t, len(tt.s), n)
		assert.True(t, v.IsInf(tt.sign))
	}
}

// strconv equivalents of the layouts
var strconvLayouts = []struct {
	layout Layout
	fmt    byte
}{
	{GoStyle, 'g'},
	{Fixed, 'f'},
	{Layout{Notation: NotationScientific, ExpSign: true, MinExpDigits: 2}, 'e'},
	{Layout{Notation: NotationScientific, ExpChar: 'E', ExpSign: true, MinExpDigits: 2}, 'E'},
	{Layout{Notation: NotationThreshold, ExpChar: 'E', ExpSign: true, MinExpDigits: 2, Low: -4, High: 6}, 'G'},
}

func TestLayoutAgainstStrconv(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 50000; i++ {
		for _, w := range []Width{Width32, Width64} {
			v := FromBits(w, r.Uint64())
			for _, sl := range strconvLayouts {
				want := strconv.FormatFloat(v.Float64(), sl.fmt, -1, int(w))
				got := v.Text(sl.layout)
				if got != want {
					t.Fatalf("%s %x %%%c: expected %s, got %s", w, v.Bits(), sl.fmt, want, got)
				}
			}
		}
	}
}

func TestMaxLen(t *testing.T) {
	assert.Equal(t, MaxLen32, Shortest.MaxLen(Width32))
	assert.Equal(t, MaxLen64, Shortest.MaxLen(Width64))
	assert.Equal(t, MaxLen32, Scientific.MaxLen(Width32))
	assert.Equal(t, MaxLen64, Scientific.MaxLen(Width64))
	assert.Equal(t, MaxLen32, GoStyle.MaxLen(Width32))
	assert.Equal(t, MaxLen64, GoStyle.MaxLen(Width64))
	assert.Equal(t, MaxFixedLen32, Fixed.MaxLen(Width32))
	assert.Equal(t, MaxFixedLen64, Fixed.MaxLen(Width64))
	assert.Equal(t, 22, ECMAScript.MaxLen(Width32))
	assert.Equal(t, 25, ECMAScript.MaxLen(Width64))

	assert.Equal(t, 15, MaxLen32)
	assert.Equal(t, 24, MaxLen64)

	// the bounds are reached
	assert.Len(t, FromFloat64(-math.Float64frombits(1)).Text(Fixed), MaxFixedLen64)
	assert.Len(t, FromFloat32(-math.Float32frombits(1)).Text(Fixed), MaxFixedLen32)
	assert.Len(t, FromFloat64(-2.2250738585072014e-308).Text(Shortest), MaxLen64)
}

func TestMaxLenBound(t *testing.T) {
	layouts := []Layout{Shortest, Fixed, Scientific, ECMAScript, GoStyle, ToChars,
		{Notation: NotationScientific, ExpSign: true, MinExpDigits: 3}}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		for _, w := range []Width{Width32, Width64} {
			v := FromBits(w, r.Uint64())
			for _, l := range layouts {
				got := v.Text(l)
				require.LessOrEqual(t, len(got), l.MaxLen(w), "%s %x %+v: %s", w, v.Bits(), l, got)
			}
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	for _, l := range []Layout{{}, Shortest, Fixed, Scientific, ECMAScript, GoStyle, ToChars} {
		assert.NoError(t, l.Validate())
	}

	bad := []Layout{
		{Notation: NotationThreshold + 1},
		{ExpChar: 'x'},
		{MinExpDigits: -1},
		{MinExpDigits: 4},
		{Notation: NotationThreshold, Low: 5, High: 5},
	}
	for _, l := range bad {
		err := l.Validate()
		assert.Error(t, err, "%+v", l)
		assert.True(t, Error.Has(err), "%+v", l)
	}
}

func TestNotation(t *testing.T) {
	for n := NotationShortest; n <= NotationThreshold; n++ {
		got, err := ParseNotation(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	assert.Equal(t, "Notation(9)", Notation(9).String())

	_, err := ParseNotation("engineering")
	assert.Error(t, err)
}

func TestAppendDecimal(t *testing.T) {
	buf := []byte("x=")
	buf = GoStyle.AppendDecimal(buf, Decimal{Mant: 12345, Exp: -2})
	assert.Equal(t, "x=123.45", string(buf))

	// every digit is written, even beyond what a float holds
	assert.Equal(t, "1.2345678901234567891e19", string(Scientific.AppendDecimal(nil, Decimal{Mant: 12345678901234567891})))
}
