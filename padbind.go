// This file is part of padbind.
//
// padbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padbind.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/nesbundler/padbind/configfile"
	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/gamepads"
	"github.com/nesbundler/padbind/inputs"
	"github.com/nesbundler/padbind/logger"
	"github.com/nesbundler/padbind/notifications"
	"github.com/nesbundler/padbind/paths"
	"github.com/nesbundler/padbind/prefs"
	"github.com/nesbundler/padbind/sdlinput"
	"github.com/nesbundler/padbind/statsview"
	"github.com/nesbundler/padbind/termsource"
	"github.com/nesbundler/padbind/userinput"
	"github.com/nesbundler/padbind/version"

	"github.com/spf13/pflag"
)

// list of supported modes
const (
	modeSDL  = "sdl"
	modeTerm = "term"
)

// unsupportedMode is returned by run() when the mode flag is not recognised
const unsupportedMode = "padbind: unsupported mode (%s)"

// memvizError is returned by run() when the memviz file cannot be created
const memvizError = "padbind: memviz: %v"

// name of the input configurations file in the resource directory
const settingsFilename = "inputs.toml"

// noticeError is returned by notifier.Notify() when the notice data is
// not as expected
const noticeError = "padbind: %s: unexpected data: %v"

// the frame rate of the emulator the joypads are being resolved for
const frameRate = 60

// source of device events. implemented by the SDL and terminal sources
type source interface {
	Poll() []userinput.Event
}

// sdlSource adapts the SDL subsystem to the source interface. SDL polling
// depends on the stick preferences
type sdlSource struct {
	sub *sdlinput.Subsystem
	p   *inputs.Preferences
}

func (src sdlSource) Poll() []userinput.Event {
	return src.sub.Poll(src.p)
}

// notifier presents notices from the input pipeline to the user
type notifier struct {
	output io.Writer
}

func (n notifier) Notify(notice notifications.Notice, data ...string) error {
	switch notice {
	case notifications.NotifyFallback:
		if len(data) != 3 {
			return curated.Errorf(noticeError, notice, data)
		}
		fmt.Fprintf(n.output, "* %s: %s is not connected: using %s\n", data[0], data[1], data[2])
	case notifications.NotifyNewConfiguration:
		if len(data) != 2 {
			return curated.Errorf(noticeError, notice, data)
		}
		fmt.Fprintf(n.output, "* new gamepad: %s\n", data[1])
	}
	return nil
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

func run(args []string) error {
	flgs := pflag.NewFlagSet("padbind", pflag.ContinueOnError)
	mode := flgs.StringP("mode", "m", modeSDL, fmt.Sprintf("input source (%s or %s)", modeSDL, modeTerm))
	prefsFlag := flgs.String("prefs", "", "preferences for this run, eg. \"inputs.fallback::false; inputs.stickdeadzone::8000\"")
	statsFlag := flgs.Bool("statsview", false, fmt.Sprintf("run the statistics server on %s", statsview.DefaultAddress))
	settingsFlag := flgs.String("settings", "", "input configurations file (default is inputs.toml in the resource directory)")
	memvizFlag := flgs.Bool("memviz", false, "write a graphviz description of the input state to the resource directory on exit")
	echo := flgs.Bool("echo", false, "echo log entries to stderr")
	versionFlag := flgs.Bool("version", false, "print version information and exit")

	err := flgs.Parse(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if *versionFlag {
		fmt.Println(version.String())
		return nil
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}
	logger.Log(logger.Allow, "padbind", version.String())

	settingsFile := *settingsFlag
	if settingsFile == "" {
		settingsFile, err = paths.ResourcePath("", settingsFilename)
		if err != nil {
			return err
		}
	}

	// preferences given on the command line take priority over the defaults.
	// the stack is popped once the preferences have been created
	prefs.PushCommandLineStack(*prefsFlag)
	p, err := inputs.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "padbind", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	store := settingsStore{filename: settingsFile}
	inp, err := store.newInputs(p)
	if err != nil {
		return err
	}

	inp.SetNotify(notifier{output: os.Stdout})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *statsFlag {
		err = statsview.Launch(ctx, statsview.DefaultAddress)
		if err != nil {
			logger.Log(logger.Allow, "padbind", err)
		} else {
			logger.Logf(logger.Allow, "padbind", "statsview running on %s", statsview.DefaultAddress)
		}
	}

	var src source

	switch strings.ToLower(*mode) {
	case modeSDL:
		sub, err := sdlinput.NewSubsystem(true)
		if err != nil {
			return err
		}
		defer sub.Destroy()
		src = sdlSource{sub: sub, p: p}

	case modeTerm:
		term, err := termsource.NewSource(os.Stdin)
		if err != nil {
			return err
		}
		defer func() {
			if err := term.Close(); err != nil {
				logger.Log(logger.Allow, "padbind", err)
			}
		}()
		src = term

	default:
		return curated.Errorf(unsupportedMode, *mode)
	}

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	loop(ctx, src, inp, os.Stdout, ticker.C)

	err = store.save(inp)
	if err != nil {
		return err
	}

	if *memvizFlag {
		err = writeMemviz(inp)
		if err != nil {
			return err
		}
	}

	return nil
}

// settingsStore is the file of input configurations for the run
type settingsStore struct {
	filename string

	// the settings given to the input pipeline at startup
	loaded inputs.Settings

	// the file exists but could not be used. a rejected file is never
	// overwritten
	rejected bool
}

// newInputs creates the input pipeline from the settings in the file. if the
// file does not exist, or if it cannot be used, the default settings are used
func (st *settingsStore) newInputs(p *inputs.Preferences) (*inputs.Inputs, error) {
	st.loaded = inputs.DefaultSettings()
	st.rejected = false

	if _, err := os.Stat(st.filename); err == nil {
		s, err := configfile.Load(st.filename)
		if err != nil {
			logger.Log(logger.Allow, "padbind", err)
			st.rejected = true
		} else {
			st.loaded = s
		}
	}

	inp, err := inputs.NewInputs(gamepads.NewRegistry(), st.loaded, p)
	if err == nil {
		return inp, nil
	}

	// the settings file was decoded but is not a usable set of
	// configurations. start again with the defaults
	logger.Logf(logger.Allow, "padbind", "%s: %v", st.filename, err)
	st.loaded = inputs.DefaultSettings()
	st.rejected = true

	return inputs.NewInputs(gamepads.NewRegistry(), st.loaded, p)
}

// save writes the current settings of the input pipeline if they differ from
// the settings at startup. gamepads seen for the first time will have been
// added to the settings
func (st *settingsStore) save(inp *inputs.Inputs) error {
	s := inp.Settings()
	if s.Hash() == st.loaded.Hash() {
		return nil
	}

	if st.rejected {
		logger.Logf(logger.Allow, "padbind", "not saving input configurations: %s was not usable at startup", st.filename)
		return nil
	}

	err := configfile.Save(st.filename, s)
	if err != nil {
		return err
	}
	st.loaded = s
	logger.Logf(logger.Allow, "padbind", "saved input configurations to %s", st.filename)

	return nil
}

func writeMemviz(inp *inputs.Inputs) error {
	fn, err := paths.ResourcePath("", paths.UniqueFilename("memviz", "dot"))
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(memvizError, err)
	}
	defer f.Close()

	inp.Memviz(f)
	logger.Logf(logger.Allow, "padbind", "memviz written to %s", fn)

	return nil
}
