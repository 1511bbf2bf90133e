//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner once the tick clock reaches it; 0 runs forever.
	Ticks uint64
	// Virtual advances the clock by a fixed 1000/Hz ticks per frame instead
	// of following the wall clock.
	Virtual bool
}

// RunHeadless runs the system without a window or terminal.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	perFrame := uint64(d / TickDuration)
	if perFrame == 0 {
		perFrame = 1
	}

	h := newHostHAL(os.Stdout, nil)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if cfg.Virtual {
				h.t.advance(perFrame)
			} else {
				h.t.step()
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && h.t.now() >= cfg.Ticks {
				return nil
			}
		}
	}
}
