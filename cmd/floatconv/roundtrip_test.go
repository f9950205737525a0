package main

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shogo82148/floatconv"
)

func TestCheckerSpecial(t *testing.T) {
	for _, w := range []floatconv.Width{floatconv.Width32, floatconv.Width64} {
		for name, l := range presets {
			ch := newChecker(w, l)
			for _, v := range []floatconv.Value{
				floatconv.NaN(w),
				floatconv.Inf(w, 1),
				floatconv.Inf(w, -1),
				floatconv.FromBits(w, 0),
				floatconv.FromBits(w, 1),
				floatconv.FromBits(w, 1).Neg(),
				floatconv.Inf(w, 1).Neg().Neg(),
			} {
				_, err := ch.check(v, nil)
				assert.NoError(t, err, "%s %s", w, name)
			}
		}
	}
}

func TestRunRoundtrip(t *testing.T) {
	for _, bits := range []int{32, 64} {
		w, err := width(bits)
		require.NoError(t, err)
		for name, l := range presets {
			ch := newChecker(w, l)
			err := runRoundtrip(context.Background(), ch, RoundtripConfig{
				Bits:    bits,
				Workers: 3,
				Count:   2000,
				Seed:    42,
			})
			assert.NoError(t, err, "%d %s", bits, name)
			assert.Equal(t, uint64(2000), ch.checked.Load())
		}
	}
}

func TestRunRoundtripCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := newChecker(floatconv.Width32, floatconv.Shortest)
	err := runRoundtrip(ctx, ch, RoundtripConfig{Bits: 32, Workers: 2, Exhaustive: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRoundtripErrors(t *testing.T) {
	ch := newChecker(floatconv.Width64, floatconv.Shortest)
	assert.Error(t, runRoundtrip(context.Background(), ch, RoundtripConfig{Bits: 64, Workers: 1, Exhaustive: true}))
	assert.Error(t, runRoundtrip(context.Background(), ch, RoundtripConfig{Bits: 64}))
}

func TestCheckerRandom(t *testing.T) {
	ch := newChecker(floatconv.Width64, floatconv.GoStyle)
	require.NoError(t, ch.random(context.Background(), rand.New(rand.NewSource(7)), 10000))
}
