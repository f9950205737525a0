package floatconv

import (
	"math/bits"

	"github.com/shogo82148/int128"
	"github.com/zeebo/errs"
)

//go:generate go run ./cmd/floatconv tables -dir .

// Error is the class of configuration errors returned by this package.
var Error = errs.Class("floatconv")

// Tables holds the precomputed powers of ten used by the Parser and the Formatter.
// A Tables value is never modified after construction and may be shared by any
// number of goroutines.
type Tables struct {
	// pow10[i] approximates 10^(pow10Min+i); see pow10Table.
	pow10    [][2]uint64
	pow10Min int

	cache64 []int128.Uint128
	cache32 []uint64
}

var defaultTables = &Tables{
	pow10:    pow10Table[:],
	pow10Min: pow10MinExp10,
	cache64:  dragonboxCache64[:],
	cache32:  dragonboxCache32[:],
}

// DefaultTables returns the tables generated for the full binary32 and binary64 ranges.
func DefaultTables() *Tables {
	return defaultTables
}

// Pow10Range returns the inclusive range of decimal exponents
// covered by the extended-precision parser table.
func (t *Tables) Pow10Range() (min, max int) {
	return t.pow10Min, t.pow10Min + len(t.pow10) - 1
}

// Restrict returns tables whose extended-precision parser table only covers
// the decimal exponents in [min, max]. Inputs outside the window are parsed by
// the arbitrary-precision fallback; results are identical, only slower.
func (t *Tables) Restrict(min, max int) (*Tables, error) {
	lo, hi := t.Pow10Range()
	if min > max {
		return nil, Error.New("invalid pow10 range [%d, %d]", min, max)
	}
	if min < lo || max > hi {
		return nil, Error.New("pow10 range [%d, %d] outside of table range [%d, %d]", min, max, lo, hi)
	}
	r := *t
	r.pow10 = t.pow10[min-lo : max-lo+1]
	r.pow10Min = min
	return &r, nil
}

// Validate checks the shape of the tables: entry counts and normalization.
// The entries themselves are verified against exact arithmetic by the tests.
func (t *Tables) Validate() (err error) {
	defer Error.WrapP(&err)

	if len(t.cache64) != dragonboxMaxK64-dragonboxMinK64+1 {
		return errs.New("dragonbox float64 cache has %d entries, want %d",
			len(t.cache64), dragonboxMaxK64-dragonboxMinK64+1)
	}
	if len(t.cache32) != dragonboxMaxK32-dragonboxMinK32+1 {
		return errs.New("dragonbox float32 cache has %d entries, want %d",
			len(t.cache32), dragonboxMaxK32-dragonboxMinK32+1)
	}
	lo, hi := t.Pow10Range()
	if len(t.pow10) == 0 || lo < pow10MinExp10 || hi > pow10MaxExp10 {
		return errs.New("pow10 range [%d, %d] outside of [%d, %d]", lo, hi, pow10MinExp10, pow10MaxExp10)
	}
	for i, e := range t.pow10 {
		if e[1]>>63 == 0 {
			return errs.New("pow10 entry 1e%d is not normalized", lo+i)
		}
	}
	for i, e := range t.cache64 {
		if bits.LeadingZeros64(e.H) != 0 {
			return errs.New("dragonbox float64 entry 1e%d is not normalized", dragonboxMinK64+i)
		}
	}
	for i, e := range t.cache32 {
		if bits.LeadingZeros64(e) != 0 {
			return errs.New("dragonbox float32 entry 1e%d is not normalized", dragonboxMinK32+i)
		}
	}
	return nil
}

// pow10At returns the 128-bit approximation of 10^q as {lo, hi}.
func (t *Tables) pow10At(q int) (e [2]uint64, ok bool) {
	i := q - t.pow10Min
	if i < 0 || i >= len(t.pow10) {
		return e, false
	}
	return t.pow10[i], true
}

func (t *Tables) hasPow10(q int) bool {
	i := q - t.pow10Min
	return 0 <= i && i < len(t.pow10)
}

func (t *Tables) dragonbox64(k int) int128.Uint128 {
	return t.cache64[k-dragonboxMinK64]
}

func (t *Tables) dragonbox32(k int) uint64 {
	return t.cache32[k-dragonboxMinK32]
}

func orDefault(t *Tables) *Tables {
	if t == nil {
		return defaultTables
	}
	return t
}
