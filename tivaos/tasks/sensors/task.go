package sensors

import (
	"strconv"

	"tivalab/hal"
	"tivalab/tivaos/fonts/font6x8"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/services/logger"
)

// Readout layout: one row per channel, label and value centred on their
// own columns.
const (
	labelCentreX = 50
	valueCentreX = 110
	firstRowY    = 8
	rowPitch     = 10
	valueCols    = 4
)

type Task struct {
	disp   hal.Display
	analog hal.Analog
	ep     kernel.Capability
	logCap kernel.Capability

	canvas *gfx.Canvas
	log    *logger.Client
	avg    Averager

	active bool
	last   Sample
	ready  bool

	// failed marks channels whose read error was already logged.
	failed [ChannelCount]bool
}

func New(disp hal.Display, analog hal.Analog, ep, logCap kernel.Capability, window int) *Task {
	return &Task{
		disp:   disp,
		analog: analog,
		ep:     ep,
		logCap: logCap,
		avg:    Averager{Window: window},
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	t.log = logger.NewClient(ctx, t.logCap, "sensors")
	if t.disp != nil {
		t.canvas = gfx.New(t.disp.Framebuffer())
	}
	if t.canvas == nil || t.analog == nil {
		t.log.Printf("init: %v", hal.ErrNotImplemented)
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
			t.setActive(active)

		case <-ticks:
			if t.active {
				t.sample()
			}
		}
	}
}

func (t *Task) setActive(active bool) {
	if active == t.active {
		return
	}
	t.active = active
	if !active {
		return
	}
	t.avg.Reset()
	t.drawLabels()
	if t.ready {
		t.drawValues(t.last)
	}
	t.canvas.Display()
}

// sample reads every channel once. A failing channel contributes zero.
func (t *Task) sample() {
	var s Sample
	for c := Channel(0); c < ChannelCount; c++ {
		v, err := t.analog.Read(hal.AnalogChannel(c))
		if err != nil {
			if !t.failed[c] {
				t.failed[c] = true
				t.log.Printf("%s %v", c.Label(), err)
			}
			continue
		}
		s[c] = v
	}

	avg, ok := t.avg.Add(s)
	if !ok {
		return
	}
	t.last, t.ready = avg, true
	t.drawValues(avg)
	t.canvas.Display()
}

func rowTop(c Channel) int {
	return firstRowY + int(c)*rowPitch - font6x8.Height/2
}

func (t *Task) drawLabels() {
	t.canvas.Clear(gfx.Black)
	for c := Channel(0); c < ChannelCount; c++ {
		t.canvas.TextCentred(labelCentreX, rowTop(c), c.Label(), gfx.White)
	}
}

func (t *Task) drawValues(s Sample) {
	left := valueCentreX - valueCols*font6x8.Width/2
	for c := Channel(0); c < ChannelCount; c++ {
		t.canvas.FillRect(left, rowTop(c), valueCols*font6x8.Width, font6x8.Height, gfx.Black)
		t.canvas.TextCentred(valueCentreX, rowTop(c), strconv.Itoa(int(s[c])), gfx.Yellow)
	}
}
