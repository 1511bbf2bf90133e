//go:build !tinygo

package hal

// keyQueueLen is how many launcher key events wait before new ones drop.
const keyQueueLen = 64

// hostKeyboard queues launcher key events from whichever host front end
// is running. Events beyond keyQueueLen are dropped.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, keyQueueLen)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}
