//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// PanelSize is the side of the square host framebuffer, matching the
// 128x128 board LCD.
const PanelSize = 128

type hostHAL struct {
	logger   *hostLogger
	lamp     *hostLamp
	fb       *hostFramebuffer
	kbd      *hostKeyboard
	controls *virtualControls
	analog   *virtualAnalog
	buzzer   Buzzer
	t        *hostTime
}

// New returns a host HAL with a silent buzzer that logs its tones.
func New() HAL {
	return newHostHAL(os.Stdout, nil)
}

func newHostHAL(logOut io.Writer, buzzer Buzzer) *hostHAL {
	logger := &hostLogger{w: logOut}
	controls := newVirtualControls(nil)
	if buzzer == nil {
		buzzer = &logBuzzer{log: logger}
	}
	return &hostHAL{
		logger:   logger,
		lamp:     &hostLamp{},
		fb:       newHostFramebuffer(PanelSize, PanelSize),
		kbd:      newHostKeyboard(),
		controls: controls,
		analog:   newVirtualAnalog(controls, nil, uint64(time.Now().UnixNano())),
		buzzer:   buzzer,
		t:        newHostTime(nil),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.lamp }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, controls: h.controls} }
func (h *hostHAL) Analog() Analog   { return h.analog }
func (h *hostHAL) PWM() PWM         { return h.lamp }
func (h *hostHAL) Buzzer() Buzzer   { return h.buzzer }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd      *hostKeyboard
	controls *virtualControls
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Joystick() Joystick { return in.controls }
func (in hostInput) Buttons() Buttons   { return in.controls }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// logBuzzer stands in for the speaker when no audio backend runs.
type logBuzzer struct {
	log Logger
}

func (b *logBuzzer) Tone(hz uint32, ms uint32) {
	if hz == 0 {
		return
	}
	b.log.WriteLineString(fmt.Sprintf("buzzer: %d Hz %d ms", hz, ms))
}
