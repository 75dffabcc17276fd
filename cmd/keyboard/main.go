// keyboard opens a window with a text panel and an on-screen keyboard in a room.
// Point with the mouse (or touch) and click to type; right-drag looks around.
// With --xr-emulation, gamepad 0 stands in for a VR controller: the middle button
// enters and leaves the emulated session, the left stick aims and the right trigger selects.
package main

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"

	"spatial-keyboard/internal/app"
	"spatial-keyboard/internal/config"
	"spatial-keyboard/internal/debug"
	"spatial-keyboard/internal/env"
	"spatial-keyboard/internal/fonts"
	"spatial-keyboard/internal/graphics"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/render"
)

const hudFontSize = 64

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("keyboard", pflag.ContinueOnError)
	flags := config.NewFlags(flagSet)
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if _, err := env.Load(flags.EnvPath); err != nil {
		return fmt.Errorf("read %s: %w", flags.EnvPath, err)
	}
	prefs, cfgErr := config.Load(flags.ConfigPath)
	prefs, envErr := config.ApplyEnv(prefs, os.LookupEnv)
	prefs = flags.Apply(prefs)

	log := logger.New(prefs.LogPath)
	if cfgErr != nil {
		log.Warnf("config: %v (using defaults)", cfgErr)
	}
	if envErr != nil {
		log.Warnf("%v", envErr)
	}

	opts, err := app.OptionsFromPrefs(prefs, log)
	if err != nil {
		return err
	}
	session, err := app.NewSession(opts)
	if err != nil {
		return err
	}

	view := graphics.NewView()
	if prefs.XREmulation {
		view.XR = graphics.NewController(0)
		log.Infof("xr: emulating controller 0 with gamepad 0")
	}
	renderer := render.New(view)
	session.Loop.Controls = view
	session.Loop.Renderer = renderer
	session.Loop.Rays = view

	input := graphics.NewInput(view.XR)
	hud := debug.New()
	hud.ShowFPS = prefs.ShowFPS
	hud.ShowTarget = prefs.ShowTarget

	fontPath, err := fonts.Resolve(prefs.FontPath)
	if err != nil {
		log.Warnf("font %q: %v (using the built-in font)", prefs.FontPath, err)
	}
	fontLoaded := false

	graphics.Run(graphics.DefaultWindow(), func() {
		// Fonts need the GL context, which exists once the first frame starts.
		if !fontLoaded {
			fontLoaded = true
			if fontPath != "" {
				font := rl.LoadFontEx(fontPath, hudFontSize, nil)
				renderer.Font = font
				hud.SetFont(font)
				log.Infof("font: %s", fontPath)
			}
		}
		session.Frame(input.Poll())
		hud.Draw(session)
	})
	log.Infof("exit after %d frames, text %q", session.Frames(), session.Text())
	return nil
}
