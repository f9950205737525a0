package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/zeebo/errs"

	"github.com/shogo82148/floatconv"
)

var (
	bitsFlag = cli.IntFlag{
		Name:  "bits",
		Usage: "bit size, 32 or 64",
		Value: 64,
	}
	layoutFlag = cli.StringFlag{
		Name:  "layout",
		Usage: "layout preset: shortest, fixed, scientific, ecmascript, go or tochars",
	}
)

var parseCommand = cli.Command{
	Name:      "parse",
	Usage:     "parse decimal numbers and print their bits",
	ArgsUsage: "NUMBER...",
	Flags:     []cli.Flag{bitsFlag, layoutFlag},
	Action: func(c *cli.Context) error {
		w, l, err := commandOptions(c)
		if err != nil {
			return err
		}

		failed := 0
		for _, arg := range c.Args() {
			v, n, err := floatconv.Parse(arg, w)
			if err != nil {
				failed++
				var perr *floatconv.ParseError
				if errors.As(err, &perr) {
					logrus.WithFields(logrus.Fields{
						"input":    arg,
						"consumed": perr.Consumed,
					}).Warn("invalid number")
				}
				if n == 0 {
					continue
				}
			}
			fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", arg[:n], hexBits(v), v.Text(l))
		}
		if failed > 0 {
			return errs.New("%d of %d inputs are not valid numbers", failed, len(c.Args()))
		}
		return nil
	},
}

var formatCommand = cli.Command{
	Name:      "format",
	Usage:     "format IEEE 754 bit patterns (0x...) or numbers as shortest decimals",
	ArgsUsage: "BITS...",
	Flags:     []cli.Flag{bitsFlag, layoutFlag},
	Action: func(c *cli.Context) error {
		w, l, err := commandOptions(c)
		if err != nil {
			return err
		}

		for _, arg := range c.Args() {
			v, err := valueOf(arg, w)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, v.Text(l))
		}
		return nil
	},
}

// commandOptions resolves the width and layout of a command,
// flags taking precedence over the config file.
func commandOptions(c *cli.Context) (floatconv.Width, floatconv.Layout, error) {
	w, err := width(c.Int("bits"))
	if err != nil {
		return 0, floatconv.Layout{}, err
	}

	lc := conf.Layout
	if name := c.String("layout"); name != "" {
		lc = LayoutConfig{Preset: name}
	}
	l, err := lc.layout()
	return w, l, err
}

// valueOf interprets arg as a bit pattern with a 0x, 0o or 0b prefix,
// or else as a decimal number.
func valueOf(arg string, w floatconv.Width) (floatconv.Value, error) {
	if len(arg) > 2 && arg[0] == '0' && (arg[1] < '0' || arg[1] > '9') && arg[1] != '.' && arg[1] != 'e' && arg[1] != 'E' {
		b, err := strconv.ParseUint(arg, 0, int(w))
		if err != nil {
			return floatconv.Value{}, errs.Wrap(err)
		}
		return floatconv.FromBits(w, b), nil
	}
	v, _, err := floatconv.Parse(arg, w)
	return v, err
}

func hexBits(v floatconv.Value) string {
	return fmt.Sprintf("0x%0*x", int(v.Width())/4, v.Bits())
}
