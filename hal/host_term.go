//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TermConfig controls the terminal runner.
type TermConfig struct {
	Hz    int
	Ticks uint64
	// LogLines is how many recent log lines are kept under the panel.
	LogLines int
}

// RunTerminal draws the framebuffer with half-block characters in the
// current terminal and maps keys to the board controls. It returns when
// Esc is pressed, the tick limit is reached or ctx is done.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.LogLines <= 0 {
		cfg.LogLines = 4
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	tail := newLogTail(cfg.LogLines)
	var buzzer Buzzer
	if bz := newBeepBuzzer(); bz != nil {
		defer bz.close()
		buzzer = bz
	}

	h := newHostHAL(tail, buzzer)
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleTermKey(h, ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			drawTerm(screen, h, scratch, tail)
			if cfg.Ticks > 0 && h.t.now() >= cfg.Ticks {
				return nil
			}
		}
	}
}

// handleTermKey reports false when the user asked to quit.
func handleTermKey(h *hostHAL, ev *tcell.EventKey) bool {
	var ke KeyEvent
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		ke.Code = KeyUp
	case tcell.KeyDown:
		ke.Code = KeyDown
	case tcell.KeyLeft:
		ke.Code = KeyLeft
	case tcell.KeyRight:
		ke.Code = KeyRight
	case tcell.KeyEnter:
		ke.Code = KeyEnter
	case tcell.KeyTab:
		ke.Code = KeyTab
	case tcell.KeyF1:
		ke.Code = KeyF1
	case tcell.KeyF2:
		ke.Code = KeyF2
	case tcell.KeyF3:
		ke.Code = KeyF3
	case tcell.KeyRune:
		ke.Rune = ev.Rune()
		if ke.Rune == 'q' {
			return false
		}
	default:
		return true
	}

	if c, ok := controlForKey(ke); ok {
		h.controls.pulse(c)
		return true
	}
	if ke.Code != KeyUnknown {
		ke.Press = true
		h.kbd.emit(ke)
		h.kbd.emit(KeyEvent{Code: ke.Code})
	}
	return true
}

// drawTerm packs two framebuffer rows into each terminal row using the
// upper half block: foreground is the top pixel, background the bottom one.
func drawTerm(screen tcell.Screen, h *hostHAL, scratch []byte, tail *logTail) {
	fb := h.fb
	fb.snapshotRGB565(scratch)

	cols, rows := screen.Size()
	for y := 0; y < fb.height/2 && y < rows; y++ {
		for x := 0; x < fb.width && x < cols; x++ {
			top := termColor(fb.pixelAt(scratch, x, 2*y))
			bot := termColor(fb.pixelAt(scratch, x, 2*y+1))
			screen.SetContent(x, y, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bot))
		}
	}

	row := fb.height / 2
	status := fmt.Sprintf("LED %3d%%  arrows stick  z/x buttons  space select  F1-F3/Tab app  Esc quit",
		int(h.lamp.brightness()*100+0.5))
	drawTermText(screen, 0, row, cols, status, tcell.StyleDefault.Reverse(true))
	for i, line := range tail.lines() {
		drawTermText(screen, 0, row+1+i, cols, line, tcell.StyleDefault)
	}
	screen.Show()
}

func drawTermText(screen tcell.Screen, x, y, cols int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= cols {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

func termColor(p uint16) tcell.Color {
	r, g, b := RGB888From565(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// logTail keeps the last few log lines for display under the panel.
type logTail struct {
	mu  sync.Mutex
	limit int
	buf []string
}

func newLogTail(limit int) *logTail {
	return &logTail{limit: limit}
}

func (t *logTail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		t.buf = append(t.buf, line)
	}
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *logTail) lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.buf...)
}
