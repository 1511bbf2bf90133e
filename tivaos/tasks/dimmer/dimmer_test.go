package dimmer

import (
	"testing"

	"tivalab/tivaos/joystick"
)

func TestDrive(t *testing.T) {
	tests := []struct {
		level int
		want  Output
	}{
		{-5, Output{State: StateLow}},
		{0, Output{State: StateLow}},
		{1, Output{State: StatePWM, Duty: 1}},
		{50, Output{State: StatePWM, Duty: 50}},
		{99, Output{State: StatePWM, Duty: 99}},
		{100, Output{State: StateHigh}},
		{180, Output{State: StateHigh}},
	}
	for _, tt := range tests {
		if got := Drive(tt.level); got != tt.want {
			t.Fatalf("Drive(%d) = %+v, want %+v", tt.level, got, tt.want)
		}
	}
}

func TestControllerButtons(t *testing.T) {
	c := NewController(ModeButtons)
	if c.Level() != InitialLevel {
		t.Fatalf("initial level = %d, want %d", c.Level(), InitialLevel)
	}

	if !c.Update(Input{Right: true}) || c.Level() != 51 {
		t.Fatalf("after right: level %d", c.Level())
	}
	if !c.Update(Input{Left: true}) || c.Level() != 50 {
		t.Fatalf("after left: level %d", c.Level())
	}
	if c.Update(Input{Left: true, Right: true}) || c.Level() != 50 {
		t.Fatalf("both buttons: level %d", c.Level())
	}
	if c.Update(Input{}) {
		t.Fatal("idle poll reported a change")
	}
}

func TestControllerClampsAtEnds(t *testing.T) {
	c := NewController(ModeButtons)
	for i := 0; i < 200; i++ {
		c.Update(Input{Left: true})
	}
	if c.Level() != MinLevel || c.Output().State != StateLow {
		t.Fatalf("level %d output %+v", c.Level(), c.Output())
	}
	for i := 0; i < 200; i++ {
		c.Update(Input{Right: true})
	}
	if c.Level() != MaxLevel || c.Output().State != StateHigh {
		t.Fatalf("level %d output %+v", c.Level(), c.Output())
	}
}

func TestControllerJoystick(t *testing.T) {
	c := NewController(ModeButtons)
	if !c.Update(Input{Toggle: true, Joystick: joystick.RawMax}) {
		t.Fatal("toggle not reported")
	}
	if c.Mode() != ModeJoystick || c.Level() != 100 {
		t.Fatalf("mode %v level %d", c.Mode(), c.Level())
	}

	c.Update(Input{Joystick: 0})
	if c.Level() != 0 {
		t.Fatalf("joystick at rail: level %d", c.Level())
	}
	c.Update(Input{Joystick: joystick.Centre, Right: true})
	if c.Level() != joystick.Percent(joystick.Centre) {
		t.Fatalf("joystick centred: level %d", c.Level())
	}

	c.Update(Input{Toggle: true})
	if c.Mode() != ModeButtons {
		t.Fatalf("mode after second toggle = %v", c.Mode())
	}
}
