// Package launcher owns the foreground app selection. Exactly one app is
// active at a time; switching sends MsgAppControl(false) to the previous
// app before MsgAppControl(true) reaches the next one.
package launcher

import (
	"tivalab/hal"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/services/logger"
)

// sendRetryTicks bounds how long a control message waits for room in a
// busy app mailbox.
const sendRetryTicks = 250

type Service struct {
	inCap  kernel.Capability
	logCap kernel.Capability
	apps   map[proto.AppID]kernel.Capability

	initial proto.AppID
	active  proto.AppID
	log     *logger.Client
}

// New returns a launcher that reads MsgKeyInput and MsgAppSelect from inCap
// and starts with initial in the foreground.
func New(inCap, logCap kernel.Capability, initial proto.AppID, apps map[proto.AppID]kernel.Capability) *Service {
	return &Service{
		inCap:   inCap,
		logCap:  logCap,
		apps:    apps,
		initial: initial,
	}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.inCap)
	if !ok {
		return
	}
	s.log = logger.NewClient(ctx, s.logCap, "launcher")
	s.switchTo(ctx, s.initial)

	for msg := range ch {
		switch proto.Kind(msg.Kind) {
		case proto.MsgKeyInput:
			code, press, ok := proto.DecodeKeyInputPayload(msg.Payload())
			if !ok || !press {
				continue
			}
			if id, ok := s.appForKey(hal.KeyCode(code)); ok {
				s.switchTo(ctx, id)
			}
		case proto.MsgAppSelect:
			id, ok := proto.DecodeAppSelectPayload(msg.Payload())
			if !ok {
				continue
			}
			s.switchTo(ctx, id)
		}
	}
}

// Active returns the foreground app.
func (s *Service) Active() proto.AppID { return s.active }

func (s *Service) appForKey(code hal.KeyCode) (proto.AppID, bool) {
	switch code {
	case hal.KeyF1:
		return proto.Apps[0], true
	case hal.KeyF2:
		return proto.Apps[1], true
	case hal.KeyF3:
		return proto.Apps[2], true
	case hal.KeyTab:
		return s.next(), true
	default:
		return proto.AppNone, false
	}
}

// next returns the app after the active one in cycle order, skipping apps
// that were not registered.
func (s *Service) next() proto.AppID {
	start := 0
	for i, id := range proto.Apps {
		if id == s.active {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(proto.Apps); i++ {
		id := proto.Apps[(start+i)%len(proto.Apps)]
		if s.apps[id].Valid() {
			return id
		}
	}
	return s.active
}

func (s *Service) switchTo(ctx *kernel.Context, id proto.AppID) {
	if id == s.active {
		return
	}
	to := s.apps[id]
	if !to.Valid() {
		s.log.Printf("no app %s", id)
		return
	}

	if from := s.apps[s.active]; from.Valid() {
		if res := sendControl(ctx, from, false); res != kernel.SendOK {
			s.log.Printf("deactivate %s: %s", s.active, res)
		}
	}
	s.active = id
	if res := sendControl(ctx, to, true); res != kernel.SendOK {
		s.log.Printf("activate %s: %s", id, res)
		return
	}
	s.log.Printf("foreground %s", id)
}

func sendControl(ctx *kernel.Context, to kernel.Capability, active bool) kernel.SendResult {
	return ctx.SendToCapRetry(to, uint16(proto.MsgAppControl), proto.AppControlPayload(active), kernel.Capability{}, sendRetryTicks)
}
