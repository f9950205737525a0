package floatconv

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var roundTripLayouts = []Layout{Shortest, Fixed, Scientific, ECMAScript, GoStyle, ToChars}

func roundTrip(v Value, l Layout, buf []byte) ([]byte, error) {
	buf = v.Append(buf[:0], l)
	got, n, err := Parse(buf, v.Width())
	if err != nil {
		return buf, err
	}
	if n != len(buf) || !got.Equal(v) {
		return buf, Error.New("%q parsed as %s (%d bytes), want %s", buf, spew.Sdump(got), n, spew.Sdump(v))
	}
	return buf, nil
}

func TestRoundTripConcurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		seed := int64(i)
		g.Go(func() error {
			r := rand.New(rand.NewSource(seed))
			var buf []byte
			var err error
			for j := 0; j < 20000; j++ {
				w := Width64
				if j%2 == 1 {
					w = Width32
				}
				v := FromBits(w, r.Uint64())
				buf, err = roundTrip(v, roundTripLayouts[j%len(roundTripLayouts)], buf)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRoundTripBoundaries(t *testing.T) {
	values := []Value{
		FromFloat64(math.MaxFloat64),
		FromFloat64(math.SmallestNonzeroFloat64),
		FromFloat64(0x1p-1022),
		FromFloat64(math.Float64frombits(0x000fffffffffffff)),
		FromFloat64(math.Nextafter(1, 2)),
		FromFloat64(math.Nextafter(1, 0)),
		FromFloat32(math.MaxFloat32),
		FromFloat32(math.SmallestNonzeroFloat32),
		FromFloat32(0x1p-126),
		FromFloat32(math.Nextafter32(1, 2)),
		FromFloat32(math.Nextafter32(1, 0)),
	}
	for e := -1074; e <= 1023; e += 3 {
		values = append(values, FromFloat64(math.Ldexp(1, e)))
	}
	for e := -149; e <= 127; e++ {
		values = append(values, FromFloat32(float32(math.Ldexp(1, e))))
	}

	for _, v := range values[:len(values):len(values)] {
		values = append(values, v.NextUp(), v.NextDown())
	}

	var buf []byte
	var err error
	for _, v := range values {
		for _, l := range roundTripLayouts {
			buf, err = roundTrip(v, l, buf)
			require.NoError(t, err)
			buf, err = roundTrip(v.Neg(), l, buf)
			require.NoError(t, err)
		}
	}
}

func FuzzRoundTrip64(f *testing.F) {
	for _, b := range []uint64{0, 1, 0x3ff0000000000000, 0x7fefffffffffffff, 0x000fffffffffffff} {
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b uint64) {
		for _, l := range roundTripLayouts {
			if _, err := roundTrip(FromBits(Width64, b), l, nil); err != nil {
				t.Fatal(err)
			}
		}
	})
}

func FuzzRoundTrip32(f *testing.F) {
	for _, b := range []uint32{0, 1, 0x3f800000, 0x7f7fffff, 0x007fffff} {
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b uint32) {
		for _, l := range roundTripLayouts {
			if _, err := roundTrip(FromBits(Width32, uint64(b)), l, nil); err != nil {
				t.Fatal(err)
			}
		}
	})
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{"0", "1e23", "-.5e-3", "1e", "inf", "nan", "9007199254740993", "2.4703282292062327e-324"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, n, err := Parse(s, Width64)
		if n < 0 || n > len(s) {
			t.Fatalf("%q: consumed %d bytes", s, n)
		}
		if err == nil && n != len(s) {
			t.Fatalf("%q: consumed %d bytes without error", s, n)
		}
		if n == 0 {
			return
		}
		// the consumed prefix must be a complete number of the same value
		prefix := s[:n]
		u, m, err := Parse(prefix, Width64)
		if err != nil || m != n || !u.Equal(v) {
			t.Fatalf("%q: prefix %q parses as %x, %d, %v", s, prefix, u.Bits(), m, err)
		}
		if want, err := strconv.ParseFloat(prefix, 64); err == nil || err.(*strconv.NumError).Err == strconv.ErrRange {
			if !FromFloat64(want).Equal(v) {
				t.Fatalf("%q: expected %x, got %x", prefix, math.Float64bits(want), v.Bits())
			}
		}
	})
}
