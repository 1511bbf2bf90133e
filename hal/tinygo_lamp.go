//go:build tinygo && baremetal

package hal

import "machine"

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetPeriod(period uint64) error
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

// pwmLamp drives the LED pin either as a plain GPIO (fully off or on) or
// through its PWM slice. Switching modes reassigns the pin function.
type pwmLamp struct {
	pin machine.Pin
	pwm pwmDevice
	ch  uint8

	hz      uint32
	num     uint32
	den     uint32
	pwmMode bool
}

func newPWMLamp(pin machine.Pin) *pwmLamp {
	l := &pwmLamp{pin: pin, pwm: pwmForPin(pin), hz: 200, den: 1}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return l
}

func (l *pwmLamp) High() { l.gpio(true) }
func (l *pwmLamp) Low()  { l.gpio(false) }

func (l *pwmLamp) gpio(on bool) {
	if l.pwmMode && l.pwm != nil {
		l.pwm.Enable(false)
	}
	l.pwmMode = false
	l.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.pin.Set(on)
}

func (l *pwmLamp) SetFrequency(hz uint32) error {
	if l.pwm == nil {
		return ErrNotImplemented
	}
	l.hz = hz
	if l.pwmMode {
		return l.pwm.SetPeriod(1e9 / uint64(hz))
	}
	return nil
}

func (l *pwmLamp) SetDuty(num, den uint32) {
	if den == 0 {
		return
	}
	if num > den {
		num = den
	}
	l.num, l.den = num, den
	if l.pwmMode {
		l.apply()
	}
}

func (l *pwmLamp) Enable(on bool) {
	if l.pwm == nil {
		return
	}
	if !on {
		l.gpio(false)
		return
	}
	if !l.pwmMode {
		if err := l.pwm.Configure(machine.PWMConfig{Period: 1e9 / uint64(l.hz)}); err != nil {
			return
		}
		ch, err := l.pwm.Channel(l.pin)
		if err != nil {
			return
		}
		l.ch = ch
		l.pwmMode = true
	}
	l.apply()
	l.pwm.Enable(true)
}

func (l *pwmLamp) apply() {
	top := l.pwm.Top()
	l.pwm.Set(l.ch, uint32(uint64(top)*uint64(l.num)/uint64(l.den)))
}
