//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

// adcAnalog maps the board channels onto the RP2040 ADC pins. Channels
// without a pin report ErrNotImplemented.
type adcAnalog struct {
	adc [AnalogChannelCount]*machine.ADC
}

func newADCAnalog() *adcAnalog {
	machine.InitADC()

	pins := [AnalogChannelCount]machine.Pin{
		AnalogAccelX: machine.NoPin,
		AnalogAccelY: machine.NoPin,
		AnalogAccelZ: machine.NoPin,
		AnalogJoyX:   machine.ADC0,
		AnalogJoyY:   machine.ADC1,
		AnalogMic:    machine.ADC2,
	}
	a := &adcAnalog{}
	for ch, pin := range pins {
		if pin == machine.NoPin {
			continue
		}
		adc := &machine.ADC{Pin: pin}
		adc.Configure(machine.ADCConfig{})
		a.adc[ch] = adc
	}
	return a
}

func (a *adcAnalog) Read(ch AnalogChannel) (uint16, error) {
	if int(ch) >= AnalogChannelCount || a.adc[ch] == nil {
		return 0, fmt.Errorf("analog: channel %d: %w", ch, ErrNotImplemented)
	}
	// Get scales to 16 bits; the board values are 12-bit.
	return a.adc[ch].Get() >> 4, nil
}

// adcStick reads the joystick from its two ADC channels.
type adcStick struct {
	a *adcAnalog
}

func (s adcStick) Read() (vertical, horizontal uint16) {
	vertical, _ = s.a.Read(AnalogJoyY)
	horizontal, _ = s.a.Read(AnalogJoyX)
	return vertical, horizontal
}
