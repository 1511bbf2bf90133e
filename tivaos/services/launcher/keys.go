package launcher

import (
	"tivalab/hal"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
)

// KeyPump forwards the launcher keys from hal.Keyboard as MsgKeyInput.
// Other keys reach the apps through the HAL's virtual joystick and buttons.
type KeyPump struct {
	in hal.Input
	to kernel.Capability
}

func NewKeyPump(in hal.Input, to kernel.Capability) *KeyPump {
	return &KeyPump{in: in, to: to}
}

func (p *KeyPump) Run(ctx *kernel.Context) {
	if ctx == nil || p.in == nil || !p.to.Valid() {
		return
	}
	kbd := p.in.Keyboard()
	if kbd == nil {
		return
	}
	events := kbd.Events()
	if events == nil {
		return
	}

	for ev := range events {
		if !launcherKey(ev.Code) {
			continue
		}
		payload := proto.KeyInputPayload(uint16(ev.Code), ev.Press)
		ctx.SendToCapRetry(p.to, uint16(proto.MsgKeyInput), payload, kernel.Capability{}, sendRetryTicks)
	}
}

func launcherKey(code hal.KeyCode) bool {
	switch code {
	case hal.KeyTab, hal.KeyF1, hal.KeyF2, hal.KeyF3:
		return true
	default:
		return false
	}
}
