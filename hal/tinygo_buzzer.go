//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/buzzer"
)

type toneRequest struct {
	hz uint32
	ms uint32
}

// pinBuzzer bit-bangs tones on a GPIO from its own goroutine so Tone never
// blocks the caller. A pending request is replaced by a newer one.
type pinBuzzer struct {
	req chan toneRequest
}

func newPinBuzzer(pin machine.Pin) *pinBuzzer {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dev := buzzer.New(pin)
	// One beat per second so durations are in seconds.
	dev.BPM = 60

	b := &pinBuzzer{req: make(chan toneRequest, 1)}
	go func() {
		for r := range b.req {
			_ = dev.Tone(float64(r.hz), float64(r.ms)/1000)
			_ = dev.Off()
		}
	}()
	return b
}

func (b *pinBuzzer) Tone(hz uint32, ms uint32) {
	if hz == 0 || ms == 0 {
		return
	}
	r := toneRequest{hz: hz, ms: ms}
	select {
	case b.req <- r:
		return
	default:
	}
	select {
	case <-b.req:
	default:
	}
	select {
	case b.req <- r:
	default:
	}
}
