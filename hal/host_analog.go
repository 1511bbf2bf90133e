//go:build !tinygo

package hal

import (
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// virtualAnalog synthesizes the sensor board: a slowly tilting
// accelerometer, the virtual stick and a noisy microphone.
type virtualAnalog struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	stick Joystick
	rng   *rand.Rand
}

func newVirtualAnalog(stick Joystick, now func() time.Time, seed uint64) *virtualAnalog {
	if now == nil {
		now = time.Now
	}
	return &virtualAnalog{
		now:   now,
		start: now(),
		stick: stick,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *virtualAnalog) Read(ch AnalogChannel) (uint16, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	phase := 2 * math.Pi * a.now().Sub(a.start).Seconds() / 4
	switch ch {
	case AnalogAccelX:
		return adcClamp(axisCentre + 600*math.Sin(phase)), nil
	case AnalogAccelY:
		return adcClamp(axisCentre + 600*math.Cos(phase)), nil
	case AnalogAccelZ:
		return adcClamp(3100 + 40*math.Sin(3*phase)), nil
	case AnalogJoyX:
		_, hor := a.stick.Read()
		return hor, nil
	case AnalogJoyY:
		ver, _ := a.stick.Read()
		return ver, nil
	case AnalogMic:
		return adcClamp(float64(axisCentre + a.rng.Intn(401) - 200)), nil
	default:
		return 0, fmt.Errorf("analog: channel %d: %w", ch, ErrNotImplemented)
	}
}

func adcClamp(v float64) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= AnalogMax:
		return AnalogMax
	default:
		return uint16(v)
	}
}
