package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shogo82148/floatconv"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 64, c.Roundtrip.Bits)
	assert.Equal(t, 4, c.Roundtrip.Workers)
	assert.Equal(t, uint64(1000000), c.Roundtrip.Count)

	l, err := c.Layout.layout()
	require.NoError(t, err)
	assert.Equal(t, floatconv.Shortest, l)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
layout:
  preset: ""
  notation: threshold
  exp_char: E
  exp_sign: true
  min_exp_digits: 2
  low: -3
  high: 8
roundtrip:
  bits: 32
  workers: 2
  exhaustive: true
`)
	c, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, RoundtripConfig{Bits: 32, Workers: 2, Count: 1000000, Seed: 1, Exhaustive: true}, c.Roundtrip)

	l, err := c.Layout.layout()
	require.NoError(t, err)
	assert.Equal(t, floatconv.Layout{
		Notation:     floatconv.NotationThreshold,
		ExpChar:      'E',
		ExpSign:      true,
		MinExpDigits: 2,
		Low:          -3,
		High:         8,
	}, l)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"preset", "layout:\n  preset: cobol\n"},
		{"notation", "layout:\n  preset: \"\"\n  notation: engineering\n"},
		{"threshold", "layout:\n  preset: \"\"\n  notation: threshold\n  low: 3\n  high: 3\n"},
		{"exp_char", "layout:\n  preset: \"\"\n  notation: scientific\n  exp_char: ee\n"},
		{"bits", "roundtrip:\n  bits: 16\n"},
		{"workers", "roundtrip:\n  workers: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(viper.New(), writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	for name, want := range presets {
		l, err := LayoutConfig{Preset: name}.layout()
		require.NoError(t, err, name)
		assert.Equal(t, want, l, name)
		assert.NoError(t, l.Validate(), name)
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		in   string
		w    floatconv.Width
		want uint64
	}{
		{"0x3ff0000000000000", floatconv.Width64, 0x3ff0000000000000},
		{"0x3f800000", floatconv.Width32, 0x3f800000},
		{"1", floatconv.Width64, 0x3ff0000000000000},
		{"0.5", floatconv.Width32, 0x3f000000},
		{"0e0", floatconv.Width64, 0},
	}
	for _, tt := range tests {
		v, err := valueOf(tt.in, tt.w)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v.Bits(), tt.in)
		assert.Equal(t, tt.w, v.Width(), tt.in)
	}

	_, err := valueOf("0x1ffffffff", floatconv.Width32)
	assert.Error(t, err)
	_, err = valueOf("abc", floatconv.Width64)
	assert.Error(t, err)
}
