//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb *st7735Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

type tinyGoInput struct {
	kbd     Keyboard
	stick   Joystick
	buttons Buttons
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }
func (in tinyGoInput) Joystick() Joystick { return in.stick }
func (in tinyGoInput) Buttons() Buttons   { return in.buttons }

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// pinButtons reads active-low push buttons with pull-ups.
type pinButtons struct {
	left, right, sel machine.Pin
}

func newPinButtons(left, right, sel machine.Pin) *pinButtons {
	for _, p := range []machine.Pin{left, right, sel} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return &pinButtons{left: left, right: right, sel: sel}
}

func (b *pinButtons) State() ButtonState {
	var s ButtonState
	if !b.left.Get() {
		s |= ButtonLeft
	}
	if !b.right.Get() {
		s |= ButtonRight
	}
	if !b.sel.Get() {
		s |= ButtonSelect
	}
	return s
}
