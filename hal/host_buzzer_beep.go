//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// beepBuzzer plays tones on the terminal host through the beep speaker.
type beepBuzzer struct {
	mu    sync.Mutex
	sr    beep.SampleRate
	mixer *beep.Mixer
	cur   *beep.Ctrl
}

// newBeepBuzzer returns nil when no audio device is available.
func newBeepBuzzer() *beepBuzzer {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil
	}
	b := &beepBuzzer{sr: sr, mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b
}

func (b *beepBuzzer) Tone(hz uint32, ms uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	if b.cur != nil {
		// A Ctrl without a streamer ends and leaves the mixer.
		b.cur.Streamer = nil
		b.cur = nil
	}
	if hz == 0 || ms == 0 {
		return
	}
	tone, err := generators.SquareTone(b.sr, float64(hz))
	if err != nil {
		return
	}
	quiet := &effects.Gain{Streamer: tone, Gain: -0.8}
	b.cur = &beep.Ctrl{Streamer: beep.Take(b.sr.N(time.Duration(ms)*time.Millisecond), quiet)}
	b.mixer.Add(b.cur)
}

func (b *beepBuzzer) close() {
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
