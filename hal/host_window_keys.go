//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowControlKeys = [...]struct {
	key ebiten.Key
	ctl control
}{
	{ebiten.KeyArrowUp, ctlUp},
	{ebiten.KeyArrowDown, ctlDown},
	{ebiten.KeyArrowLeft, ctlLeft},
	{ebiten.KeyArrowRight, ctlRight},
	{ebiten.KeyZ, ctlButtonLeft},
	{ebiten.KeyX, ctlButtonRight},
	{ebiten.KeySpace, ctlSelect},
	{ebiten.KeyEnter, ctlSelect},
}

var windowEventKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyF1, KeyF1},
	{ebiten.KeyF2, KeyF2},
	{ebiten.KeyF3, KeyF3},
}

// poll samples the window keyboard once per frame. Held keys drive the
// virtual stick and buttons; launcher keys become events.
func (k *hostKeyboard) poll(controls *virtualControls) {
	var held [controlCount]bool
	for _, m := range windowControlKeys {
		if ebiten.IsKeyPressed(m.key) {
			held[m.ctl] = true
		}
	}
	for c := control(0); c < controlCount; c++ {
		controls.set(c, held[c])
	}

	for _, m := range windowEventKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: false})
		}
	}
}
