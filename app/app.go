// Package app wires the HAL, the kernel and the lab apps into a running
// system.
package app

import (
	"tivalab/hal"
	"tivalab/internal/buildinfo"
	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/services/launcher"
	"tivalab/tivaos/services/logger"
	"tivalab/tivaos/tasks/dimmer"
	"tivalab/tivaos/tasks/sensors"
	"tivalab/tivaos/tasks/snake"
)

type system struct {
	k *kernel.Kernel
}

type Config struct {
	// App is the foreground app at boot.
	App  proto.AppID
	Seed uint64

	DimmerMode   dimmer.Mode
	SensorWindow int
}

func DefaultConfig() Config {
	return Config{
		App:          proto.AppSnake,
		Seed:         1,
		DimmerMode:   dimmer.ModeButtons,
		SensorWindow: sensors.DefaultWindow,
	}
}

// New initializes and starts the system with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run starts the system and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	installPanicHandler(h)
	_ = newSystem(h, cfg)
	return func() error { return nil }
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	launcherEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	snakeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	dimmerEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	sensorsEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	logCap := logEP.Restrict(kernel.RightSend)
	if l := h.Logger(); l != nil {
		l.WriteLineString("tivalab " + buildinfo.String())
		k.AddTask(logger.New(l, logEP.Restrict(kernel.RightRecv)))
	}

	snakeCfg := snake.DefaultConfig()
	snakeCfg.Seed = cfg.Seed
	k.AddTask(snake.New(h.Display(), h.Input(), h.Buzzer(), snakeEP.Restrict(kernel.RightRecv), logCap, snakeCfg))
	k.AddTask(dimmer.New(h.Display(), h.Input(), h.LED(), h.PWM(), dimmerEP.Restrict(kernel.RightRecv), logCap, cfg.DimmerMode))
	k.AddTask(sensors.New(h.Display(), h.Analog(), sensorsEP.Restrict(kernel.RightRecv), logCap, cfg.SensorWindow))

	apps := map[proto.AppID]kernel.Capability{
		proto.AppSnake:   snakeEP.Restrict(kernel.RightSend),
		proto.AppDimmer:  dimmerEP.Restrict(kernel.RightSend),
		proto.AppSensors: sensorsEP.Restrict(kernel.RightSend),
	}
	k.AddTask(launcher.New(launcherEP.Restrict(kernel.RightRecv), logCap, cfg.App, apps))
	k.AddTask(launcher.NewKeyPump(h.Input(), launcherEP.Restrict(kernel.RightSend)))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
