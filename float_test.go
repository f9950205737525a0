package floatconv

import (
	"math"
	"testing"
)

var negZero = math.Float64frombits(1 << 63)

func TestIsNaN(t *testing.T) {
	if !NaN(Width32).IsNaN() {
		t.Errorf("expected NaN")
	}
	if !NaN(Width64).IsNaN() {
		t.Errorf("expected NaN")
	}
	if FromFloat64(1).IsNaN() {
		t.Errorf("expected not NaN")
	}
}

func TestIsInf(t *testing.T) {
	tests := []struct {
		f    Value
		sign int
		inf  bool
	}{
		{Inf(Width64, 1), 1, true},
		{Inf(Width64, -1), 1, false},
		{Inf(Width64, 1), -1, false},
		{Inf(Width64, -1), -1, true},
		{Inf(Width64, 1), 0, true},
		{Inf(Width64, -1), 0, true},
		{Inf(Width32, 1), 1, true},
		{Inf(Width32, -1), -1, true},
		{FromFloat64(math.MaxFloat64), 0, false},
		{NaN(Width32), 0, false},
	}
	for _, tt := range tests {
		if tt.f.IsInf(tt.sign) != tt.inf {
			t.Errorf("%x: expected %v", tt.f.Bits(), tt.inf)
		}
	}
}

func TestSpecialBits(t *testing.T) {
	tests := []struct {
		v    Value
		bits uint64
	}{
		{Inf(Width32, 1), 0x7f800000},
		{Inf(Width32, -1), 0xff800000},
		{NaN(Width32), 0x7fc00000},
		{Inf(Width64, 1), 0x7ff0000000000000},
		{Inf(Width64, -1), 0xfff0000000000000},
		{NaN(Width64), 0x7ff8000000000000},
		{FromBits(Width32, 0xffffffff3f800000), 0x3f800000},
		{FromBits(Width64, 0x3ff0000000000000), 0x3ff0000000000000},
	}
	for _, tt := range tests {
		if tt.v.Bits() != tt.bits {
			t.Errorf("expected %x, got %x", tt.bits, tt.v.Bits())
		}
	}

	if math.Float32bits(float32(math.Inf(1))) != uint32(Inf(Width32, 1).Bits()) {
		t.Errorf("float32 +Inf mismatch")
	}
	if math.Float64bits(math.Inf(-1)) != Inf(Width64, -1).Bits() {
		t.Errorf("float64 -Inf mismatch")
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		v     Value
		class Class
	}{
		{FromFloat64(0), ClassZero},
		{FromFloat64(negZero), ClassZero},
		{FromFloat64(5e-324), ClassSubnormal},
		{FromFloat64(0x1p-1022), ClassNormal},
		{FromFloat64(1), ClassNormal},
		{FromFloat64(math.Inf(-1)), ClassInfinity},
		{FromFloat64(math.NaN()), ClassNaN},
		{FromFloat32(0), ClassZero},
		{FromFloat32(0x1p-149), ClassSubnormal},
		{FromFloat32(0x1p-126), ClassNormal},
		{FromFloat32(math.MaxFloat32), ClassNormal},
		{Inf(Width32, 1), ClassInfinity},
		{FromBits(Width32, 0x7f800001), ClassNaN},
	}
	for _, tt := range tests {
		if got := tt.v.Class(); got != tt.class {
			t.Errorf("%s %x: expected %s, got %s", tt.v.Width(), tt.v.Bits(), tt.class, got)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var v Value
	if v.Width() != Width64 {
		t.Errorf("expected float64, got %s", v.Width())
	}
	if v.Float64() != 0 || v.Signbit() {
		t.Errorf("expected +0, got %v", v.Float64())
	}
	n := v.Neg()
	if n.Bits() != 1<<63 || n.Width() != Width64 {
		t.Errorf("expected -0, got %x", n.Bits())
	}
}

func TestFromFloat32(t *testing.T) {
	tests := []float32{
		0,
		float32(negZero),
		1,
		-2,
		0x1p-149,
		0x1.fffffcp-127,
		math.MaxFloat32,
		float32(math.Inf(1)),
	}
	for _, f := range tests {
		v := FromFloat32(f)
		if v.Width() != Width32 {
			t.Errorf("%v: expected float32, got %s", f, v.Width())
		}
		if v.Bits() != uint64(math.Float32bits(f)) {
			t.Errorf("%v: expected %x, got %x", f, math.Float32bits(f), v.Bits())
		}
		if got := v.Float32(); math.Float32bits(got) != math.Float32bits(f) {
			t.Errorf("%v: expected %v, got %v", f, f, got)
		}
		if got := v.Float64(); got != float64(f) {
			t.Errorf("%v: expected %v, got %v", f, float64(f), got)
		}
	}
}

func TestFloat32Rounding(t *testing.T) {
	// a float64 Value is converted to float32 with round to nearest even.
	v := FromFloat64(1 + 0x1p-24)
	if got := v.Float32(); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	v = FromFloat64(1 + 0x1p-24 + 0x1p-52)
	if got := v.Float32(); got != 1+0x1p-23 {
		t.Errorf("expected %v, got %v", float32(1+0x1p-23), got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{FromFloat64(1), FromFloat64(1), true},
		{FromFloat64(1), FromFloat32(1), false},
		{FromFloat64(0), FromFloat64(negZero), false},
		{NaN(Width64), FromFloat64(math.NaN()), true},
		{NaN(Width32), FromBits(Width32, 0xffc00001), true},
		{NaN(Width32), NaN(Width64), false},
		{Value{}, FromFloat64(0), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%x.Equal(%x): expected %v, got %v", tt.a.Bits(), tt.b.Bits(), tt.want, got)
		}
	}
}

func TestWidthString(t *testing.T) {
	if Width32.String() != "float32" || Width64.String() != "float64" {
		t.Errorf("unexpected width names %s %s", Width32, Width64)
	}
	if got := Width(16).String(); got != "Width(16)" {
		t.Errorf("expected Width(16), got %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Inf(Width(16), 1)
}
