package main

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/shogo82148/floatconv"
)

// Config is the configuration of the floatconv command.
// It is read from an optional file given with --config.
type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Roundtrip RoundtripConfig `mapstructure:"roundtrip"`
}

// LayoutConfig selects the text layout. Preset names one of the predefined
// layouts; when it is empty the remaining fields describe a custom layout.
type LayoutConfig struct {
	Preset       string `mapstructure:"preset"`
	Notation     string `mapstructure:"notation"`
	ExpChar      string `mapstructure:"exp_char"`
	ExpSign      bool   `mapstructure:"exp_sign"`
	MinExpDigits int    `mapstructure:"min_exp_digits"`
	Low          int    `mapstructure:"low"`
	High         int    `mapstructure:"high"`
}

type RoundtripConfig struct {
	Bits       int    `mapstructure:"bits"`
	Workers    int    `mapstructure:"workers"`
	Count      uint64 `mapstructure:"count"`
	Seed       int64  `mapstructure:"seed"`
	Exhaustive bool   `mapstructure:"exhaustive"`
}

var presets = map[string]floatconv.Layout{
	"shortest":   floatconv.Shortest,
	"fixed":      floatconv.Fixed,
	"scientific": floatconv.Scientific,
	"ecmascript": floatconv.ECMAScript,
	"go":         floatconv.GoStyle,
	"tochars":    floatconv.ToChars,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("layout.preset", "shortest")
	v.SetDefault("roundtrip.bits", 64)
	v.SetDefault("roundtrip.workers", 4)
	v.SetDefault("roundtrip.count", 1000000)
	v.SetDefault("roundtrip.seed", 1)
}

// loadConfig reads the config file at path on top of the defaults.
// An empty path yields the defaults.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errs.Wrap(err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errs.Wrap(err)
	}
	if _, err := c.Layout.layout(); err != nil {
		return nil, err
	}
	if _, err := width(c.Roundtrip.Bits); err != nil {
		return nil, err
	}
	if c.Roundtrip.Workers <= 0 {
		return nil, errs.New("roundtrip.workers must be positive, got %d", c.Roundtrip.Workers)
	}
	return &c, nil
}

func (c LayoutConfig) layout() (floatconv.Layout, error) {
	if c.Preset != "" {
		l, ok := presets[strings.ToLower(c.Preset)]
		if !ok {
			return l, errs.New("unknown layout preset %q", c.Preset)
		}
		return l, nil
	}

	n, err := floatconv.ParseNotation(c.Notation)
	if err != nil {
		return floatconv.Layout{}, err
	}
	l := floatconv.Layout{
		Notation:     n,
		ExpSign:      c.ExpSign,
		MinExpDigits: c.MinExpDigits,
		Low:          c.Low,
		High:         c.High,
	}
	switch len(c.ExpChar) {
	case 0:
	case 1:
		l.ExpChar = c.ExpChar[0]
	default:
		return l, errs.New("exponent marker %q is not a single byte", c.ExpChar)
	}
	return l, l.Validate()
}

func width(bits int) (floatconv.Width, error) {
	switch bits {
	case 32:
		return floatconv.Width32, nil
	case 64:
		return floatconv.Width64, nil
	}
	return 0, errs.New("unsupported bit size %d", bits)
}
