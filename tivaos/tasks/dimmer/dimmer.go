package dimmer

import (
	"tivalab/tivaos/joystick"
	"tivalab/tivaos/mathx"
)

const (
	MinLevel     = 0
	MaxLevel     = 100
	InitialLevel = 50

	// PWMFrequency is the LED PWM carrier in Hz.
	PWMFrequency = 200
)

// State is how the LED pin is driven.
type State uint8

const (
	StatePWM State = iota
	StateLow
	StateHigh
)

func (s State) String() string {
	switch s {
	case StatePWM:
		return "pwm"
	case StateLow:
		return "low"
	case StateHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Output is the pin configuration for one brightness level. Duty is the
// pulse width in hundredths of the PWM period and is only meaningful for
// StatePWM.
type Output struct {
	State State
	Duty  uint32
}

// Drive maps a brightness level to a pin configuration. The end points
// bypass the PWM generator so the LED is fully off or fully on.
func Drive(level int) Output {
	level = mathx.Clamp(level, MinLevel, MaxLevel)
	switch level {
	case MinLevel:
		return Output{State: StateLow}
	case MaxLevel:
		return Output{State: StateHigh}
	default:
		return Output{State: StatePWM, Duty: uint32(level)}
	}
}

// Mode selects the level source.
type Mode uint8

const (
	ModeButtons Mode = iota
	ModeJoystick
)

func (m Mode) String() string {
	switch m {
	case ModeButtons:
		return "buttons"
	case ModeJoystick:
		return "joystick"
	default:
		return "unknown"
	}
}

// Input is one poll of the controls. Left, Right and Toggle are press
// edges, not levels.
type Input struct {
	Left   bool
	Right  bool
	Toggle bool

	Joystick uint16 // raw horizontal axis
}

// Controller tracks the brightness level across polls.
type Controller struct {
	level int
	mode  Mode
}

func NewController(mode Mode) *Controller {
	return &Controller{level: InitialLevel, mode: mode}
}

func (c *Controller) Level() int     { return c.level }
func (c *Controller) Mode() Mode     { return c.mode }
func (c *Controller) Output() Output { return Drive(c.level) }

// Update applies one poll and reports whether the level or mode changed.
func (c *Controller) Update(in Input) bool {
	prevLevel, prevMode := c.level, c.mode

	if in.Toggle {
		if c.mode == ModeButtons {
			c.mode = ModeJoystick
		} else {
			c.mode = ModeButtons
		}
	}

	switch c.mode {
	case ModeButtons:
		if in.Left && c.level > MinLevel {
			c.level--
		}
		if in.Right && c.level < MaxLevel {
			c.level++
		}
	case ModeJoystick:
		c.level = joystick.Percent(in.Joystick)
	}

	return c.level != prevLevel || c.mode != prevMode
}
