package dimmer

import (
	"fmt"

	"tivalab/hal"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/services/logger"
)

const pollIntervalTicks = 10

const (
	barX      = 14
	barY      = 64
	barWidth  = MaxLevel
	barHeight = 12
)

type Task struct {
	disp   hal.Display
	in     hal.Input
	led    hal.LED
	pwm    hal.PWM
	ep     kernel.Capability
	logCap kernel.Capability

	canvas *gfx.Canvas
	ctl    *Controller
	log    *logger.Client

	active   bool
	lastPoll uint64
	buttons  hal.ButtonState

	out     Output
	applied bool
}

func New(disp hal.Display, in hal.Input, led hal.LED, pwm hal.PWM, ep, logCap kernel.Capability, mode Mode) *Task {
	return &Task{
		disp:   disp,
		in:     in,
		led:    led,
		pwm:    pwm,
		ep:     ep,
		logCap: logCap,
		ctl:    NewController(mode),
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	t.log = logger.NewClient(ctx, t.logCap, "dimmer")
	if t.disp != nil {
		t.canvas = gfx.New(t.disp.Framebuffer())
	}
	t.apply()

	done := make(chan struct{})
	defer close(done)
	ticks := ctx.TickChan(done)

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if proto.Kind(msg.Kind) != proto.MsgAppControl {
				continue
			}
			active, ok := proto.DecodeAppControlPayload(msg.Payload())
			if !ok {
				continue
			}
			t.setActive(ctx.NowTick(), active)

		case now := <-ticks:
			if t.active && now-t.lastPoll >= pollIntervalTicks {
				t.lastPoll = now
				t.poll()
			}
		}
	}
}

// setActive starts or stops polling. The LED keeps its level while the
// dimmer is in the background.
func (t *Task) setActive(now uint64, active bool) {
	if active == t.active {
		return
	}
	t.active = active
	if !active {
		return
	}
	t.lastPoll = now
	t.buttons = t.readButtons()
	t.render()
}

func (t *Task) readButtons() hal.ButtonState {
	if t.in == nil {
		return 0
	}
	if b := t.in.Buttons(); b != nil {
		return b.State()
	}
	return 0
}

func (t *Task) poll() {
	cur := t.readButtons()
	pressed := hal.Pressed(t.buttons, cur)
	t.buttons = cur

	const both = hal.ButtonLeft | hal.ButtonRight
	chord := cur&both == both && pressed&both != 0

	in := Input{
		Toggle: pressed&hal.ButtonSelect != 0 || chord,
		Left:   !chord && pressed&hal.ButtonLeft != 0,
		Right:  !chord && pressed&hal.ButtonRight != 0,
	}
	if t.in != nil {
		if stick := t.in.Joystick(); stick != nil {
			_, in.Joystick = stick.Read()
		}
	}

	if !t.ctl.Update(in) {
		return
	}
	t.apply()
	t.render()
	t.log.Printf("level %d%% (%s, %s)", t.ctl.Level(), t.ctl.Mode(), t.out.State)
}

// apply drives the LED pin for the current level.
func (t *Task) apply() {
	out := t.ctl.Output()
	if t.applied && out == t.out {
		return
	}
	t.out, t.applied = out, true

	switch out.State {
	case StateLow:
		if t.led != nil {
			t.led.Low()
		}
	case StateHigh:
		if t.led != nil {
			t.led.High()
		}
	case StatePWM:
		if t.pwm == nil {
			return
		}
		if err := t.pwm.SetFrequency(PWMFrequency); err != nil {
			t.log.Printf("pwm: %v", err)
			return
		}
		t.pwm.SetDuty(out.Duty, MaxLevel)
		t.pwm.Enable(true)
	}
}

func (t *Task) render() {
	if t.canvas == nil {
		return
	}
	w, _ := t.canvas.Size()
	cx := int(w) / 2

	t.canvas.Clear(gfx.Black)
	t.canvas.TextCentred(cx, 8, "LED dimmer", gfx.White)
	t.canvas.TextCentred(cx, 28, "mode: "+t.ctl.Mode().String(), gfx.Grey)
	t.canvas.TextCentred(cx, 44, fmt.Sprintf("%d%%", t.ctl.Level()), gfx.Yellow)

	t.canvas.FillRect(barX-1, barY-1, barWidth+2, barHeight+2, gfx.Grey)
	t.canvas.FillRect(barX, barY, barWidth, barHeight, gfx.Black)
	t.canvas.FillRect(barX, barY, t.ctl.Level()*barWidth/MaxLevel, barHeight, gfx.Yellow)

	t.canvas.TextCentred(cx, 96, "L/R: -/+  SEL: mode", gfx.Grey)
	t.canvas.Display()
}
