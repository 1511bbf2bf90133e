package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoWindow is returned by RunWindow in builds without cgo.
	ErrNoWindow = errors.New("window mode requires cgo")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
	KeyF3
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Joystick reads the two axes of the analog stick as raw 12-bit values.
type Joystick interface {
	Read() (vertical, horizontal uint16)
}

// ButtonState is a bitmask of pressed buttons.
type ButtonState uint8

const (
	ButtonLeft ButtonState = 1 << iota
	ButtonRight
	ButtonSelect
)

// Pressed returns the buttons that went down between prev and cur.
func Pressed(prev, cur ButtonState) ButtonState {
	return cur &^ prev
}

// Buttons reports the current level of the board buttons.
type Buttons interface {
	State() ButtonState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Joystick() Joystick
	Buttons() Buttons
}

// AnalogChannel selects one ADC input of the sensor board.
type AnalogChannel uint8

const (
	AnalogAccelX AnalogChannel = iota
	AnalogAccelY
	AnalogAccelZ
	AnalogJoyX
	AnalogJoyY
	AnalogMic

	AnalogChannelCount = 6
)

// AnalogMax is the full-scale value of a 12-bit conversion.
const AnalogMax = 4095

// Analog performs single ADC conversions.
type Analog interface {
	Read(ch AnalogChannel) (uint16, error)
}

// PWM drives the dimmable LED output.
type PWM interface {
	SetFrequency(hz uint32) error
	// SetDuty sets the pulse width to num/den of the period.
	SetDuty(num, den uint32)
	Enable(on bool)
}

// Buzzer plays a square tone in the background. Tone returns immediately;
// a new tone replaces the one playing. hz == 0 silences the buzzer.
type Buzzer interface {
	Tone(hz uint32, ms uint32)
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Analog() Analog
	PWM() PWM
	Buzzer() Buzzer
	Time() Time
}
