package dimmer

import (
	"testing"

	"tivalab/hal"
	"tivalab/hal/haltest"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/kernel"
)

func newTestTask(mode Mode) (*Task, *haltest.Input, *haltest.Lamp, *haltest.Framebuffer) {
	fb := haltest.NewFramebuffer(128, 128)
	in := haltest.NewInput()
	lamp := &haltest.Lamp{}
	tk := New(haltest.Display{FB: fb}, in, lamp, lamp, kernel.Capability{}, kernel.Capability{}, mode)
	tk.canvas = gfx.New(fb)
	return tk, in, lamp, fb
}

// press simulates one press and release of b across two polls.
func press(tk *Task, in *haltest.Input, b hal.ButtonState) {
	in.Btns.Set(b)
	tk.poll()
	in.Btns.Set(0)
	tk.poll()
}

func TestInitialOutputIsHalfDuty(t *testing.T) {
	tk, _, lamp, _ := newTestTask(ModeButtons)
	tk.apply()
	if !lamp.PWMOn || lamp.Hz != PWMFrequency || lamp.Num != 50 || lamp.Den != 100 {
		t.Fatalf("lamp = %+v", lamp)
	}
}

func TestButtonPressesStepLevel(t *testing.T) {
	tk, in, lamp, _ := newTestTask(ModeButtons)
	tk.apply()

	press(tk, in, hal.ButtonRight)
	press(tk, in, hal.ButtonRight)
	press(tk, in, hal.ButtonLeft)
	if tk.ctl.Level() != 51 || lamp.Num != 51 {
		t.Fatalf("level=%d duty=%d, want 51", tk.ctl.Level(), lamp.Num)
	}
}

func TestHeldButtonCountsOnce(t *testing.T) {
	tk, in, _, _ := newTestTask(ModeButtons)
	in.Btns.Set(hal.ButtonLeft)
	for i := 0; i < 5; i++ {
		tk.poll()
	}
	if tk.ctl.Level() != InitialLevel-1 {
		t.Fatalf("level = %d, want %d", tk.ctl.Level(), InitialLevel-1)
	}
}

func TestEndpointsBypassPWM(t *testing.T) {
	tk, in, lamp, _ := newTestTask(ModeButtons)
	tk.apply()
	tk.ctl.level = 1

	press(tk, in, hal.ButtonLeft)
	if lamp.PWMOn || lamp.Level {
		t.Fatalf("level 0: lamp = %+v, want forced low", lamp)
	}

	tk.ctl.level = 99
	press(tk, in, hal.ButtonRight)
	if lamp.PWMOn || !lamp.Level {
		t.Fatalf("level 100: lamp = %+v, want forced high", lamp)
	}
}

func TestChordTogglesJoystickMode(t *testing.T) {
	tk, in, lamp, _ := newTestTask(ModeButtons)
	in.Stick.Set(2048, 1024)

	press(tk, in, hal.ButtonLeft|hal.ButtonRight)
	if tk.ctl.Mode() != ModeJoystick {
		t.Fatalf("mode = %v, want joystick", tk.ctl.Mode())
	}
	if tk.ctl.Level() != 25 || lamp.Num != 25 {
		t.Fatalf("level=%d duty=%d, want 25", tk.ctl.Level(), lamp.Num)
	}

	press(tk, in, hal.ButtonSelect)
	if tk.ctl.Mode() != ModeButtons {
		t.Fatalf("select did not switch back: %v", tk.ctl.Mode())
	}
}

func TestActivateRendersBar(t *testing.T) {
	tk, _, _, fb := newTestTask(ModeButtons)
	tk.setActive(0, true)

	yellow := hal.RGB565(0xff, 0xff, 0)
	if fb.At(barX, barY) != yellow || fb.At(barX+49, barY) != yellow {
		t.Fatal("bar not filled to the level")
	}
	if fb.At(barX+50, barY) == yellow {
		t.Fatal("bar filled past the level")
	}
	if fb.Presents != 1 {
		t.Fatalf("presents = %d", fb.Presents)
	}
}
