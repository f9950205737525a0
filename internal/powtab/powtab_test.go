package powtab

import (
	"testing"

	"github.com/shogo82148/int128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncated128(t *testing.T) {
	tests := []struct {
		q    int
		want int128.Uint128
	}{
		{-348, int128.Uint128{H: 0xFA8FD5A0081C0288, L: 0x1732C869CD60E453}},
		{-1, int128.Uint128{H: 0xCCCCCCCCCCCCCCCC, L: 0xCCCCCCCCCCCCCCCC}},
		{0, int128.Uint128{H: 0x8000000000000000, L: 0}},
		{1, int128.Uint128{H: 0xA000000000000000, L: 0}},
		{22, int128.Uint128{H: 0x878678326EAC9000, L: 0}},
	}
	for _, tt := range tests {
		got := Truncated128(tt.q)
		if got != tt.want {
			t.Errorf("1e%d: expected %016x%016x, got %016x%016x", tt.q, tt.want.H, tt.want.L, got.H, got.L)
		}
	}
}

func TestCeil(t *testing.T) {
	// first and last entries of the dragonbox caches
	assert.Equal(t, int128.Uint128{H: 0xff77b1fcbebcdc4f, L: 0x25e8e89c13bb0f7b}, Ceil128(-292))
	assert.Equal(t, int128.Uint128{H: 0xf70867153aa2db38, L: 0xb8cbee4fc66d1ea8}, Ceil128(326))
	assert.Equal(t, uint64(0x81ceb32c4b43fcf5), Ceil64(-31))
}

func TestNormalize(t *testing.T) {
	for q := -400; q <= 400; q += 7 {
		for _, n := range []int{64, 128} {
			down := Normalize(q, n, false)
			up := Normalize(q, n, true)
			require.Equal(t, n, down.BitLen(), "1e%d", q)
			require.Equal(t, n, up.BitLen(), "1e%d", q)

			diff := up.Sub(up, down).Int64()
			if q >= 0 && q <= 27 && n == 128 {
				// exact
				require.Zero(t, diff, "1e%d", q)
			} else {
				require.LessOrEqual(t, diff, int64(1), "1e%d", q)
			}
		}
	}
}
