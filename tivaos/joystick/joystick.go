// Package joystick turns raw analog stick readings into discrete directions.
package joystick

import "tivalab/tivaos/mathx"

// RawMax is the full-scale value of the 12-bit ADC feeding each axis.
const RawMax = 4095

// Centre is the raw reading of an axis at rest.
const Centre = 2048

// Thresholds are the percentage dead-zone limits. Readings above High or
// below Low count as a deflection.
type Thresholds struct {
	Low  int
	High int
}

var DefaultThresholds = Thresholds{Low: 30, High: 70}

// Direction is a discrete stick deflection.
type Direction uint8

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the screen-space displacement of one move of length step.
// Y grows downward.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case Up:
		return 0, -step
	case Down:
		return 0, step
	case Left:
		return -step, 0
	case Right:
		return step, 0
	default:
		return 0, 0
	}
}

// Percent scales a raw axis reading to 0..100.
func Percent(raw uint16) int {
	return mathx.Clamp(mathx.ScaleRound(int(raw), RawMax, 100), 0, 100)
}

// Resolve picks a direction from axis percentages. When both axes are
// deflected the first match of up, right, down, left wins.
func Resolve(vertical, horizontal int, th Thresholds) Direction {
	switch {
	case vertical > th.High:
		return Up
	case horizontal > th.High:
		return Right
	case vertical < th.Low:
		return Down
	case horizontal < th.Low:
		return Left
	default:
		return None
	}
}

// ResolveRaw is Resolve applied to raw ADC readings.
func ResolveRaw(vertical, horizontal uint16, th Thresholds) Direction {
	return Resolve(Percent(vertical), Percent(horizontal), th)
}
