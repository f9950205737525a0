package main

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/shogo82148/floatconv"
)

var roundtripCommand = cli.Command{
	Name:  "roundtrip",
	Usage: "format random (or all binary32) values and check that they parse back",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "bits", Usage: "bit size, 32 or 64"},
		cli.IntFlag{Name: "workers", Usage: "number of worker goroutines"},
		cli.Uint64Flag{Name: "count", Usage: "number of random values"},
		cli.Int64Flag{Name: "seed", Usage: "random seed"},
		cli.BoolFlag{Name: "exhaustive", Usage: "check every binary32 bit pattern"},
		layoutFlag,
	},
	Action: func(c *cli.Context) error {
		rc := conf.Roundtrip
		if c.IsSet("bits") {
			rc.Bits = c.Int("bits")
		}
		if c.IsSet("workers") {
			rc.Workers = c.Int("workers")
		}
		if c.IsSet("count") {
			rc.Count = c.Uint64("count")
		}
		if c.IsSet("seed") {
			rc.Seed = c.Int64("seed")
		}
		if c.IsSet("exhaustive") {
			rc.Exhaustive = c.Bool("exhaustive")
		}

		w, err := width(rc.Bits)
		if err != nil {
			return err
		}
		lc := conf.Layout
		if name := c.String("layout"); name != "" {
			lc = LayoutConfig{Preset: name}
		}
		l, err := lc.layout()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ch := newChecker(w, l)
		start := time.Now()
		err = runRoundtrip(ctx, ch, rc)
		fields := logrus.Fields{
			"checked": ch.checked.Load(),
			"elapsed": time.Since(start),
		}
		if errors.Is(err, context.Canceled) {
			logrus.WithFields(fields).Warn("interrupted")
			return nil
		}
		if err != nil {
			return err
		}
		logrus.WithFields(fields).Info("all values round trip")
		return nil
	},
}

// checker formats values, parses the text back with both floatconv and
// strconv, and reports the first value that does not survive.
type checker struct {
	width   floatconv.Width
	layout  floatconv.Layout
	checked atomic.Uint64
}

func newChecker(w floatconv.Width, l floatconv.Layout) *checker {
	return &checker{width: w, layout: l}
}

// check verifies v. buf is scratch space; the grown buffer is returned.
func (ch *checker) check(v floatconv.Value, buf []byte) ([]byte, error) {
	ch.checked.Add(1)
	buf = v.Append(buf[:0], ch.layout)

	u, _, err := floatconv.Parse(buf, ch.width)
	if err != nil {
		return buf, errs.New("%s: %q does not parse: %v", hexBits(v), buf, err)
	}
	if !u.Equal(v) {
		return buf, errs.New("%s: %q parses back as %s", hexBits(v), buf, hexBits(u))
	}

	f, err := strconv.ParseFloat(string(buf), int(ch.width))
	if err != nil {
		return buf, errs.New("%s: %q is rejected by strconv: %v", hexBits(v), buf, err)
	}
	var want floatconv.Value
	if ch.width == floatconv.Width32 {
		want = floatconv.FromFloat32(float32(f))
	} else {
		want = floatconv.FromFloat64(f)
	}
	if !want.Equal(v) {
		return buf, errs.New("%s: %q is %s according to strconv", hexBits(v), buf, hexBits(want))
	}
	return buf, nil
}

// random checks n random bit patterns.
func (ch *checker) random(ctx context.Context, r *rand.Rand, n uint64) error {
	var buf []byte
	var err error
	for i := uint64(0); i < n; i++ {
		if i%4096 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		buf, err = ch.check(floatconv.FromBits(ch.width, r.Uint64()), buf)
		if err != nil {
			return err
		}
	}
	return nil
}

// exhaustive checks every binary32 bit pattern b with b%stride == offset.
func (ch *checker) exhaustive(ctx context.Context, offset, stride int) error {
	var buf []byte
	var err error
	for b := uint64(offset); b <= math.MaxUint32; b += uint64(stride) {
		if b%(1<<16) < uint64(stride) && ctx.Err() != nil {
			return ctx.Err()
		}
		buf, err = ch.check(floatconv.FromBits(floatconv.Width32, b), buf)
		if err != nil {
			return err
		}
	}
	return nil
}

func runRoundtrip(ctx context.Context, ch *checker, rc RoundtripConfig) error {
	if rc.Exhaustive && ch.width != floatconv.Width32 {
		return errs.New("exhaustive checking needs 32 bits, got %d", rc.Bits)
	}
	if rc.Workers <= 0 {
		return errs.New("workers must be positive, got %d", rc.Workers)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logrus.WithField("checked", ch.checked.Load()).Info("progress")
			case <-done:
				return
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	per := rc.Count / uint64(rc.Workers)
	for i := 0; i < rc.Workers; i++ {
		i := i
		g.Go(func() error {
			if rc.Exhaustive {
				return ch.exhaustive(ctx, i, rc.Workers)
			}
			n := per
			if i == 0 {
				n += rc.Count % uint64(rc.Workers)
			}
			logrus.WithFields(logrus.Fields{"worker": i, "count": n}).Debug("start")
			return ch.random(ctx, rand.New(rand.NewSource(rc.Seed+int64(i))), n)
		})
	}
	return g.Wait()
}
