//go:build !tinygo

package hal

import (
	"errors"
	"sync"
)

// hostLamp is the board LED: a GPIO level or a PWM output on the same pin.
type hostLamp struct {
	mu sync.Mutex

	level bool
	pwmOn bool
	hz    uint32
	num   uint32
	den   uint32
}

func (l *hostLamp) High() { l.setLevel(true) }
func (l *hostLamp) Low()  { l.setLevel(false) }

func (l *hostLamp) setLevel(on bool) {
	l.mu.Lock()
	l.level = on
	l.pwmOn = false
	l.mu.Unlock()
}

func (l *hostLamp) SetFrequency(hz uint32) error {
	if hz == 0 {
		return errors.New("pwm: zero frequency")
	}
	l.mu.Lock()
	l.hz = hz
	l.mu.Unlock()
	return nil
}

func (l *hostLamp) SetDuty(num, den uint32) {
	if den == 0 {
		return
	}
	if num > den {
		num = den
	}
	l.mu.Lock()
	l.num, l.den = num, den
	l.mu.Unlock()
}

func (l *hostLamp) Enable(on bool) {
	l.mu.Lock()
	l.pwmOn = on
	l.mu.Unlock()
}

// brightness returns the mean light output in [0, 1].
func (l *hostLamp) brightness() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pwmOn {
		if l.den == 0 {
			return 0
		}
		return float64(l.num) / float64(l.den)
	}
	if l.level {
		return 1
	}
	return 0
}
