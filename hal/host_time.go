//go:build !tinygo

package hal

import "time"

const (
	// TickDuration is the host tick period.
	TickDuration = time.Millisecond

	// maxCatchUp caps the ticks emitted by one step after a stall, such as
	// a window drag or a suspended process.
	maxCatchUp = 250
)

type hostTime struct {
	ch    chan uint64
	seq   uint64
	clock func() time.Time

	started bool
	last    time.Time
	carry   time.Duration
}

func newHostTime(clock func() time.Time) *hostTime {
	if clock == nil {
		clock = time.Now
	}
	return &hostTime{ch: make(chan uint64, 1024), clock: clock}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits one tick per TickDuration elapsed on the clock since the
// previous step. The first step emits a single tick.
func (t *hostTime) step() {
	now := t.clock()
	if !t.started {
		t.started = true
		t.last = now
		t.advance(1)
		return
	}

	t.carry += now.Sub(t.last)
	t.last = now
	n := t.carry / TickDuration
	if n <= 0 {
		return
	}
	t.carry -= n * TickDuration
	t.advance(uint64(min(n, maxCatchUp)))
}

// advance emits n ticks regardless of the clock. Ticks nobody reads in
// time are dropped but still counted.
func (t *hostTime) advance(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

func (t *hostTime) now() uint64 { return t.seq }
