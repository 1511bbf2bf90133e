//go:build !tinygo && !cgo

package hal

type beepBuzzer struct{}

// newBeepBuzzer returns nil: the beep speaker needs cgo on this platform.
func newBeepBuzzer() *beepBuzzer { return nil }

func (b *beepBuzzer) Tone(hz uint32, ms uint32) {}
func (b *beepBuzzer) close()                    {}
