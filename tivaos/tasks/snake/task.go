package snake

import (
	"fmt"
	"image/color"

	"tivalab/hal"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/joystick"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/segments"
	"tivalab/tivaos/services/logger"
)

const (
	// stepIntervalTicks paces the snake at one move per 100 ms.
	stepIntervalTicks = 100
	restartDelayTicks = 1500

	toneEatHz     = 1760
	toneEatMs     = 40
	toneDeathHz   = 196
	toneDeathMs   = 400
	toneVictoryHz = 988
	toneVictoryMs = 600
)

var (
	colorBackground = gfx.Black
	colorBody       = gfx.Green
	colorFood       = gfx.Red
	colorText       = gfx.White
)

type Task struct {
	disp   hal.Display
	in     hal.Input
	buzzer hal.Buzzer
	ep     kernel.Capability
	logCap kernel.Capability
	cfg    Config

	canvas *gfx.Canvas
	sess   *Session
	log    *logger.Client

	active   bool
	lastStep uint64
	overAt   uint64
}

func New(disp hal.Display, in hal.Input, buzzer hal.Buzzer, ep, logCap kernel.Capability, cfg Config) *Task {
	return &Task{
		disp:   disp,
		in:     in,
		buzzer: buzzer,
		ep:     ep,
		logCap: logCap,
		cfg:    cfg,
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	t.log = logger.NewClient(ctx, t.logCap, "snake")
	if err := t.init(); err != nil {
		t.log.Printf("init: %v", err)
		return
	}

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
			if t.active {
				t.tick(now)
			}
		}
	}
}

func (t *Task) init() error {
	if t.disp == nil || t.in == nil {
		return hal.ErrNotImplemented
	}
	t.canvas = gfx.New(t.disp.Framebuffer())
	if t.canvas == nil {
		return fmt.Errorf("framebuffer: %w", hal.ErrNotImplemented)
	}
	w, h := t.canvas.Size()
	t.cfg.Width, t.cfg.Height = int(w), int(h)

	sess, err := NewSession(t.cfg)
	if err != nil {
		return err
	}
	t.sess = sess
	return nil
}

func (t *Task) setActive(now uint64, active bool) {
	if active == t.active {
		return
	}
	t.active = active
	if !active {
		return
	}
	t.lastStep = now
	if t.sess.Over() {
		t.restart()
		return
	}
	t.drawAll()
}

func (t *Task) tick(now uint64) {
	if t.sess.Over() {
		if now-t.overAt >= restartDelayTicks {
			t.restart()
		}
		return
	}
	if now-t.lastStep < stepIntervalTicks {
		return
	}
	t.lastStep = now
	t.step(now)
}

// step polls the stick and advances the game by one move.
func (t *Task) step(now uint64) {
	stick := t.in.Joystick()
	if stick == nil {
		return
	}
	ver, hor := stick.Read()
	dir := joystick.ResolveRaw(ver, hor, joystick.DefaultThresholds)

	oldFood, hadFood := t.sess.Food()
	st := t.sess.Tick(dir)
	if st.Finished {
		t.overAt = now
		t.drawOutcome(st.Outcome)
		return
	}
	if !st.Moved {
		return
	}

	if st.Shrunk {
		t.fillSegment(st.Erased, colorBackground)
	}
	if st.Ate {
		if hadFood {
			t.fillRect(oldFood, colorBackground)
		}
		t.tone(toneEatHz, toneEatMs)
		t.log.Printf("ate %d/%d", t.sess.Eaten(), t.cfg.Capacity)
	}
	t.fillSegment(st.Head, colorBody)
	if st.NewFood {
		t.drawFood()
	} else if st.Ate {
		t.log.Printf("food: %v", t.sess.Err())
	}
	t.canvas.Display()
}

func (t *Task) restart() {
	t.sess.Reset()
	if err := t.sess.Err(); err != nil {
		t.log.Printf("round %d: %v", t.sess.Round(), err)
	}
	t.drawAll()
}

func (t *Task) drawAll() {
	t.canvas.Clear(colorBackground)
	for _, c := range t.sess.Body().All() {
		t.fillSegment(c, colorBody)
	}
	t.drawFood()
	t.canvas.Display()
}

func (t *Task) drawFood() {
	if f, ok := t.sess.Food(); ok {
		t.fillRect(f, colorFood)
	}
}

func (t *Task) drawOutcome(o Outcome) {
	t.canvas.Clear(colorBackground)
	cx := t.cfg.Width / 2
	cy := t.cfg.Height/2 - 8

	switch o {
	case Victory:
		t.canvas.TextCentred(cx, cy, "Victory!", colorText)
		t.tone(toneVictoryHz, toneVictoryMs)
	case Fault:
		t.canvas.TextCentred(cx, cy, "Fault", colorText)
		t.log.Printf("round %d: %v", t.sess.Round(), t.sess.Err())
	default:
		t.canvas.TextCentred(cx, cy, "Game over", colorText)
		t.tone(toneDeathHz, toneDeathMs)
	}
	t.canvas.TextCentred(cx, cy+12, fmt.Sprintf("Score %d", t.sess.Eaten()), colorText)
	t.canvas.Display()

	t.log.Printf("round %d: %s, eaten %d", t.sess.Round(), o, t.sess.Eaten())
}

func (t *Task) fillSegment(c segments.Coord, col color.RGBA) {
	t.fillRect(segments.Square(c, t.cfg.Segment), col)
}

func (t *Task) fillRect(r segments.Rect, col color.RGBA) {
	t.canvas.FillRect(r.X, r.Y, r.W, r.H, col)
}

func (t *Task) tone(hz, ms uint32) {
	if t.buzzer != nil {
		t.buzzer.Tone(hz, ms)
	}
}
