package app

import (
	"strings"
	"testing"
	"time"

	"tivalab/hal"
	"tivalab/hal/haltest"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
)

// runClock feeds ticks until the test ends.
func runClock(t *testing.T, h *haltest.HAL) {
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	go func() {
		for seq := uint64(1); ; seq++ {
			select {
			case <-done:
				return
			case h.Clock.C <- seq:
			}
			time.Sleep(50 * time.Microsecond)
		}
	}()
}

func hasLog(h *haltest.HAL, substr string) bool {
	for _, line := range h.Log.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func waitLog(t *testing.T, h *haltest.HAL, substr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hasLog(h, substr) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no log line containing %q in %q", substr, h.Log.Lines())
}

func TestSystemBootsInitialApp(t *testing.T) {
	h := haltest.New()
	cfg := DefaultConfig()
	cfg.App = proto.AppDimmer
	NewWithConfig(h, cfg)
	runClock(t, h)

	waitLog(t, h, "tivalab ")
	waitLog(t, h, "launcher: foreground dimmer")

	// The dimmer may see its activation after the launcher logs it, so
	// keep pressing until a press lands.
	for i := 0; i < 50 && !hasLog(h, "dimmer: level"); i++ {
		h.In.Btns.Set(hal.ButtonRight)
		time.Sleep(20 * time.Millisecond)
		h.In.Btns.Set(0)
		time.Sleep(20 * time.Millisecond)
	}
	waitLog(t, h, "(buttons, pwm)")
}

func TestSystemSwitchesAppsByKey(t *testing.T) {
	h := haltest.New()
	NewWithConfig(h, DefaultConfig())
	runClock(t, h)
	waitLog(t, h, "launcher: foreground snake")

	h.In.Kbd.C <- hal.KeyEvent{Code: hal.KeyF3, Press: true}
	waitLog(t, h, "launcher: foreground sensors")

	h.In.Kbd.C <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	waitLog(t, h, "launcher: foreground snake")
}

func TestPanicLines(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 3, Tick: 42, Value: "boom", Stack: []byte("a\n\nb\n")})
	want := []string{"Panic", "task: 3", "tick: 42", "panic: boom", "stack:", "a", "b"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q", lines)
	}

	lines = panicLines(kernel.PanicInfo{TaskID: 1, Value: 7})
	if lines[len(lines)-1] != "stack: unavailable" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s, prefix, rest string
		n               int
	}{
		{"abcdef", "abc", "def", 3},
		{"ab", "ab", "", 3},
		{"äöü", "äö", "ü", 2},
		{"abc", "", "abc", 0},
	}
	for _, tt := range tests {
		p, r := takeRunes(tt.s, tt.n)
		if p != tt.prefix || r != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tt.s, tt.n, p, r)
		}
	}
}

func TestDrawPanicFillsPanel(t *testing.T) {
	fb := haltest.NewFramebuffer(36, 24)
	c := gfx.New(fb)
	drawPanic(c, []string{"a very long line that wraps", "x", "y", "z"})

	if fb.Presents != 1 {
		t.Fatalf("presents = %d", fb.Presents)
	}
	if fb.Count(hal.RGB565(0, 0, 0)) == 0 {
		t.Fatal("no text drawn")
	}
}
