//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"tivalab/app"
	"tivalab/hal"
	"tivalab/tivaos/proto"
	"tivalab/tivaos/tasks/dimmer"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		term     bool
		appName  string
		joystick bool
	)
	cfg := app.DefaultConfig()

	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&headless.Virtual, "virtual", false, "Headless: advance a virtual clock instead of following the wall clock.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&term, "term", false, "Draw the panel in the terminal.")
	flag.StringVar(&appName, "app", cfg.App.String(), "Initial app: snake, dimmer or sensors.")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for food placement.")
	flag.IntVar(&cfg.SensorWindow, "window", cfg.SensorWindow, "Samples averaged per sensor readout.")
	flag.BoolVar(&joystick, "dimmer-joystick", false, "Start the dimmer in joystick mode.")
	flag.IntVar(&window.Scale, "scale", 4, "Window scale factor.")
	flag.Parse()

	id, ok := proto.ParseAppID(appName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown app %q\n", appName)
		os.Exit(2)
	}
	cfg.App = id
	if joystick {
		cfg.DimmerMode = dimmer.ModeJoystick
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Hz: headless.Hz, Ticks: headless.Ticks})
	case headless.Enabled:
		err = hal.RunHeadless(ctx, newApp, headless)
	default:
		err = hal.RunWindow(newApp, window)
		if errors.Is(err, hal.ErrNoWindow) {
			fmt.Fprintln(os.Stderr, "no window support in this build, using the terminal")
			err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Hz: headless.Hz, Ticks: headless.Ticks})
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
