//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

const (
	axisCentre = 2048

	// keyHold is how long a terminal key press keeps a control active.
	// Terminals report presses only, never releases.
	keyHold = 180 * time.Millisecond
)

type control uint8

const (
	ctlUp control = iota
	ctlDown
	ctlLeft
	ctlRight
	ctlButtonLeft
	ctlButtonRight
	ctlSelect
	controlCount
)

func controlForKey(ev KeyEvent) (control, bool) {
	switch ev.Code {
	case KeyUp:
		return ctlUp, true
	case KeyDown:
		return ctlDown, true
	case KeyLeft:
		return ctlLeft, true
	case KeyRight:
		return ctlRight, true
	case KeyEnter:
		return ctlSelect, true
	}
	switch ev.Rune {
	case 'z', 'Z':
		return ctlButtonLeft, true
	case 'x', 'X':
		return ctlButtonRight, true
	case ' ':
		return ctlSelect, true
	}
	return 0, false
}

// virtualControls maps keys to the joystick and buttons of the board.
type virtualControls struct {
	mu    sync.Mutex
	now   func() time.Time
	down  [controlCount]bool
	until [controlCount]time.Time
}

func newVirtualControls(now func() time.Time) *virtualControls {
	if now == nil {
		now = time.Now
	}
	return &virtualControls{now: now}
}

// set applies a press or release from a backend that reports both.
func (v *virtualControls) set(c control, down bool) {
	v.mu.Lock()
	v.down[c] = down
	v.mu.Unlock()
}

// pulse keeps c active for keyHold.
func (v *virtualControls) pulse(c control) {
	v.mu.Lock()
	v.until[c] = v.now().Add(keyHold)
	v.mu.Unlock()
}

func (v *virtualControls) activeLocked(c control, now time.Time) bool {
	return v.down[c] || now.Before(v.until[c])
}

// Read returns the axes at the rails while a direction is held. Up and
// Right read high, matching the board's stick orientation.
func (v *virtualControls) Read() (vertical, horizontal uint16) {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.now()

	vertical, horizontal = axisCentre, axisCentre
	switch {
	case v.activeLocked(ctlUp, now):
		vertical = AnalogMax
	case v.activeLocked(ctlDown, now):
		vertical = 0
	}
	switch {
	case v.activeLocked(ctlRight, now):
		horizontal = AnalogMax
	case v.activeLocked(ctlLeft, now):
		horizontal = 0
	}
	return vertical, horizontal
}

func (v *virtualControls) State() ButtonState {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.now()

	var s ButtonState
	if v.activeLocked(ctlButtonLeft, now) {
		s |= ButtonLeft
	}
	if v.activeLocked(ctlButtonRight, now) {
		s |= ButtonRight
	}
	if v.activeLocked(ctlSelect, now) {
		s |= ButtonSelect
	}
	return s
}
