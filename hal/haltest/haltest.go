// Package haltest provides in-memory HAL devices for tests.
package haltest

import (
	"sync"

	"tivalab/hal"
)

// Framebuffer is an RGB565 framebuffer that counts presents.
type Framebuffer struct {
	W, H     int
	Pix      []byte
	Presents int
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, Pix: make([]byte, w*h*2)}
}

func (f *Framebuffer) Width() int              { return f.W }
func (f *Framebuffer) Height() int             { return f.H }
func (f *Framebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *Framebuffer) StrideBytes() int        { return f.W * 2 }
func (f *Framebuffer) Buffer() []byte          { return f.Pix }
func (f *Framebuffer) Present() error          { f.Presents++; return nil }

func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.Pix); i += 2 {
		f.Pix[i] = byte(p)
		f.Pix[i+1] = byte(p >> 8)
	}
}

// At returns the pixel at (x, y).
func (f *Framebuffer) At(x, y int) uint16 {
	i := y*f.W*2 + x*2
	return uint16(f.Pix[i]) | uint16(f.Pix[i+1])<<8
}

// Count returns how many pixels equal p.
func (f *Framebuffer) Count(p uint16) int {
	n := 0
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.At(x, y) == p {
				n++
			}
		}
	}
	return n
}

// Display wraps a framebuffer.
type Display struct{ FB hal.Framebuffer }

func (d Display) Framebuffer() hal.Framebuffer { return d.FB }

// Stick is a joystick held at fixed raw values.
type Stick struct {
	mu         sync.Mutex
	vertical   uint16
	horizontal uint16
}

func NewStick() *Stick { return &Stick{vertical: 2048, horizontal: 2048} }

func (s *Stick) Set(vertical, horizontal uint16) {
	s.mu.Lock()
	s.vertical, s.horizontal = vertical, horizontal
	s.mu.Unlock()
}

func (s *Stick) Read() (vertical, horizontal uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vertical, s.horizontal
}

// Buttons reports a settable button mask.
type Buttons struct {
	mu    sync.Mutex
	state hal.ButtonState
}

func (b *Buttons) Set(s hal.ButtonState) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

func (b *Buttons) State() hal.ButtonState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Keyboard delivers events pushed onto C.
type Keyboard struct{ C chan hal.KeyEvent }

func NewKeyboard() *Keyboard { return &Keyboard{C: make(chan hal.KeyEvent, 16)} }

func (k *Keyboard) Events() <-chan hal.KeyEvent { return k.C }

// Input bundles the fake input devices.
type Input struct {
	Kbd   *Keyboard
	Stick *Stick
	Btns  *Buttons
}

func NewInput() *Input {
	return &Input{Kbd: NewKeyboard(), Stick: NewStick(), Btns: &Buttons{}}
}

func (in *Input) Keyboard() hal.Keyboard { return in.Kbd }
func (in *Input) Joystick() hal.Joystick { return in.Stick }
func (in *Input) Buttons() hal.Buttons   { return in.Btns }

// Tone is one recorded buzzer request.
type Tone struct {
	Hz uint32
	Ms uint32
}

// Buzzer records every tone.
type Buzzer struct {
	mu    sync.Mutex
	tones []Tone
}

func (b *Buzzer) Tone(hz, ms uint32) {
	b.mu.Lock()
	b.tones = append(b.tones, Tone{Hz: hz, Ms: ms})
	b.mu.Unlock()
}

func (b *Buzzer) Tones() []Tone {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Tone(nil), b.tones...)
}

// Analog returns fixed per-channel values. Err, when set, is returned for
// every read.
type Analog struct {
	Values [hal.AnalogChannelCount]uint16
	Err    error
}

func (a *Analog) Read(ch hal.AnalogChannel) (uint16, error) {
	if a.Err != nil {
		return 0, a.Err
	}
	if int(ch) >= len(a.Values) {
		return 0, hal.ErrNotImplemented
	}
	return a.Values[ch], nil
}

// Lamp records the LED level and PWM settings.
type Lamp struct {
	Level   bool
	PWMOn   bool
	Hz      uint32
	Num     uint32
	Den     uint32
	Changes int
}

func (l *Lamp) High() { l.Level, l.PWMOn = true, false; l.Changes++ }
func (l *Lamp) Low()  { l.Level, l.PWMOn = false, false; l.Changes++ }

func (l *Lamp) SetFrequency(hz uint32) error { l.Hz = hz; return nil }
func (l *Lamp) SetDuty(num, den uint32)      { l.Num, l.Den = num, den }
func (l *Lamp) Enable(on bool)               { l.PWMOn = on; l.Changes++ }

// Log collects lines written to it.
type Log struct {
	mu    sync.Mutex
	lines []string
}

func (l *Log) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *Log) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Time is a tick source driven by the test.
type Time struct{ C chan uint64 }

func NewTime() *Time { return &Time{C: make(chan uint64, 1024)} }

func (t *Time) Ticks() <-chan uint64 { return t.C }

// HAL bundles the fakes into a hal.HAL.
type HAL struct {
	Log     *Log
	Lamp    *Lamp
	FB      *Framebuffer
	In      *Input
	ADC     *Analog
	Speaker *Buzzer
	Clock   *Time
}

// New returns a HAL with a 128x128 panel.
func New() *HAL {
	return &HAL{
		Log:     &Log{},
		Lamp:    &Lamp{},
		FB:      NewFramebuffer(128, 128),
		In:      NewInput(),
		ADC:     &Analog{},
		Speaker: &Buzzer{},
		Clock:   NewTime(),
	}
}

func (h *HAL) Logger() hal.Logger   { return h.Log }
func (h *HAL) LED() hal.LED         { return h.Lamp }
func (h *HAL) Display() hal.Display { return Display{FB: h.FB} }
func (h *HAL) Input() hal.Input     { return h.In }
func (h *HAL) Analog() hal.Analog   { return h.ADC }
func (h *HAL) PWM() hal.PWM         { return h.Lamp }
func (h *HAL) Buzzer() hal.Buzzer   { return h.Speaker }
func (h *HAL) Time() hal.Time       { return h.Clock }
