package floatconv

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Value
		want int
	}{
		{FromFloat64(1), FromFloat64(2), -1},
		{FromFloat64(2), FromFloat64(1), 1},
		{FromFloat64(-1), FromFloat64(-2), 1},
		{FromFloat64(0), FromFloat64(negZero), 0},
		{FromFloat64(-1), FromFloat64(1), -1},
		{Inf(Width64, -1), FromFloat64(-math.MaxFloat64), -1},
		{Inf(Width32, 1), Inf(Width32, 1), 0},
		{NaN(Width64), FromFloat64(math.Inf(-1)), -1},
		{FromFloat64(0), NaN(Width32), 1},
		{NaN(Width32), NaN(Width64), 0},
		{FromFloat32(0.1), FromFloat64(0.1), 1}, // float32(0.1) > 0.1
		{FromFloat32(0.5), FromFloat64(0.5), 0},
		{FromFloat32(-0.1), FromFloat32(0.1), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%x.Compare(%x): expected %d, got %d", tt.a.Bits(), tt.b.Bits(), tt.want, got)
		}
	}
}

func TestNextUp(t *testing.T) {
	tests := []struct {
		v    Value
		up   uint64
		down uint64
	}{
		{FromFloat64(1), 0x3ff0000000000001, 0x3fefffffffffffff},
		{FromFloat64(-1), 0xbfefffffffffffff, 0xbff0000000000001},
		{FromFloat64(0), 0x0000000000000001, 0x8000000000000001},
		{FromFloat64(negZero), 0x0000000000000001, 0x8000000000000001},
		{FromFloat64(math.MaxFloat64), 0x7ff0000000000000, 0x7feffffffffffffe},
		{Inf(Width64, 1), 0x7ff0000000000000, 0x7fefffffffffffff},
		{Inf(Width64, -1), 0xffefffffffffffff, 0xfff0000000000000},
		{FromFloat32(1), 0x3f800001, 0x3f7fffff},
		{FromFloat32(0), 0x00000001, 0x80000001},
		{FromFloat32(math.MaxFloat32), 0x7f800000, 0x7f7ffffe},
		{Value{}, 0x0000000000000001, 0x8000000000000001},
	}
	for _, tt := range tests {
		if got := tt.v.NextUp(); got.Bits() != tt.up || got.Width() != tt.v.Width() {
			t.Errorf("%x: expected next up %x, got %x", tt.v.Bits(), tt.up, got.Bits())
		}
		if got := tt.v.NextDown(); got.Bits() != tt.down || got.Width() != tt.v.Width() {
			t.Errorf("%x: expected next down %x, got %x", tt.v.Bits(), tt.down, got.Bits())
		}
	}

	if !NaN(Width32).NextUp().IsNaN() || !NaN(Width64).NextDown().IsNaN() {
		t.Errorf("expected NaN")
	}
	if got := FromFloat64(1).NextUp().Float64(); got != math.Nextafter(1, 2) {
		t.Errorf("expected %v, got %v", math.Nextafter(1, 2), got)
	}
}
