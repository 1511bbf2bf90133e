//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const buzzerSampleRate = 44100

// ebitenBuzzer renders square-wave tones through Ebiten's audio context.
// The player is never paused; it reads silence between tones.
type ebitenBuzzer struct {
	mu sync.Mutex

	ctx    *audio.Context
	player *audio.Player

	period int // samples per full wave, 0 when silent
	phase  int
	left   int // samples remaining in the current tone
}

func newEbitenBuzzer() *ebitenBuzzer {
	b := &ebitenBuzzer{ctx: audio.NewContext(buzzerSampleRate)}
	p, err := b.ctx.NewPlayer(&ebitenBuzzerReader{b: b})
	if err != nil {
		return b
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.SetVolume(0.25)
	p.Play()
	b.player = p
	return b
}

func (b *ebitenBuzzer) Tone(hz uint32, ms uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if hz == 0 || ms == 0 {
		b.period, b.left = 0, 0
		return
	}
	b.period = int(buzzerSampleRate / hz)
	if b.period < 2 {
		b.period = 2
	}
	b.phase = 0
	b.left = int(uint64(buzzerSampleRate) * uint64(ms) / 1000)
}

func (b *ebitenBuzzer) next() int16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.left <= 0 || b.period == 0 {
		return 0
	}
	b.left--
	b.phase = (b.phase + 1) % b.period
	if b.phase < b.period/2 {
		return 8000
	}
	return -8000
}

func (b *ebitenBuzzer) close() {
	if b.player != nil {
		_ = b.player.Close()
	}
}

type ebitenBuzzerReader struct {
	b *ebitenBuzzer
}

func (r *ebitenBuzzerReader) Read(p []byte) (int, error) {
	// Ebiten audio expects 16-bit little-endian stereo.
	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		s := r.b.next()
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return n, nil
}
