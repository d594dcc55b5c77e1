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

package configfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nesbundler/padbind/configfile"
	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/inputs"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/test"
	"github.com/nesbundler/padbind/userinput"
)

func TestRoundTrip(t *testing.T) {
	s := inputs.DefaultSettings()

	pad := inputs.NewGamepadConfiguration("gamepad-test", "Test Pad")
	pad.Gamepad.Remap(joypad.Start, userinput.GamepadButtonGuide)
	pad.Gamepad.Unbind(joypad.Select)
	s.Configurations = append(s.Configurations, pad)
	s.Configurations[0].Keyboard.Remap(joypad.A, userinput.ScancodeRShift)
	s.Selected[1] = "gamepad-test"

	fn := filepath.Join(t.TempDir(), "inputs.toml")
	test.DemandSuccess(t, configfile.Save(fn, s))

	l, err := configfile.Load(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, l.Hash(), s.Hash())
	test.ExpectEquality(t, l.Selected, s.Selected)
	test.ExpectEquality(t, l.Default, s.Default)
	if test.ExpectEquality(t, len(l.Configurations), len(s.Configurations)) {
		for i := range l.Configurations {
			test.ExpectEquality(t, l.Configurations[i], s.Configurations[i], i)
		}
	}

	// loaded settings are acceptable to the pipeline
	inp, err := inputs.NewInputs(nil, l, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Selected(1).ID, userinput.InputID("gamepad-test"))
}

func TestSaveOverwrites(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "inputs.toml")

	s := inputs.DefaultSettings()
	test.DemandSuccess(t, configfile.Save(fn, s))

	s.Configurations[1].Keyboard.Unbind(joypad.Up)
	test.DemandSuccess(t, configfile.Save(fn, s))

	l, err := configfile.Load(fn)
	test.DemandSuccess(t, err)
	_, ok := l.Configurations[1].Keyboard.Get(joypad.Up)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, l.Hash(), s.Hash())
}

func load(t *testing.T, content string) (inputs.Settings, error) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "inputs.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0600))
	return configfile.Load(fn)
}

func TestLoadErrors(t *testing.T) {
	_, err := configfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectEquality(t, curated.Is(err, configfile.ReadError), true)

	_, err = load(t, "this is not toml [[[")
	test.ExpectEquality(t, curated.Is(err, configfile.ReadError), true)

	// wrong number of players
	_, err = load(t, `
selected = ["00-keyboard-1"]
default = ["00-keyboard-1", "01-keyboard-2"]
`)
	test.ExpectEquality(t, curated.Is(err, configfile.InvalidEntry), true)

	const players = `
selected = ["00-keyboard-1", "01-keyboard-2"]
default = ["00-keyboard-1", "01-keyboard-2"]
`

	_, err = load(t, players+`
[[configurations]]
id = "00-keyboard-1"
name = "Keyboard 1"
kind = "joystick"
`)
	test.ExpectEquality(t, curated.Is(err, configfile.InvalidEntry), true)

	_, err = load(t, players+`
[[configurations]]
id = "00-keyboard-1"
name = "Keyboard 1"
kind = "keyboard"

[configurations.mapping]
turbo = "X"
`)
	test.ExpectEquality(t, curated.Is(err, configfile.InvalidEntry), true)

	_, err = load(t, players+`
[[configurations]]
id = "00-keyboard-1"
name = "Keyboard 1"
kind = "keyboard"

[configurations.mapping]
a = "NoSuchKey"
`)
	test.ExpectEquality(t, curated.Is(err, configfile.InvalidEntry), true)

	// configuration without an id
	_, err = load(t, players+`
[[configurations]]
name = "Keyboard 1"
kind = "keyboard"
`)
	test.ExpectEquality(t, curated.Is(err, configfile.InvalidEntry), true)
}

func TestMixedCaseID(t *testing.T) {
	s := inputs.DefaultSettings()
	s.Configurations = append(s.Configurations, inputs.NewGamepadConfiguration("Pad-X", "Pad X"))
	s.Selected[0] = "Pad-X"

	fn := filepath.Join(t.TempDir(), "inputs.toml")
	test.DemandSuccess(t, configfile.Save(fn, s))

	l, err := configfile.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Hash(), s.Hash())
	test.DemandEquality(t, len(l.Configurations), 3)
	test.ExpectEquality(t, l.Configurations[2].ID, userinput.InputID("Pad-X"))
	test.ExpectEquality(t, l.Selected[0], userinput.InputID("Pad-X"))

	inp, err := inputs.NewInputs(nil, l, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Selected(0).ID, userinput.InputID("Pad-X"))
}

func TestLoadPartialMapping(t *testing.T) {
	s, err := load(t, `
selected = ["00-keyboard-1", "00-keyboard-1"]
default = ["00-keyboard-1", "00-keyboard-1"]

[[configurations]]
id = "00-keyboard-1"
name = "Keyboard 1"
kind = "keyboard"

[configurations.mapping]
a = "x"
up = "Up"
`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s.Configurations), 1)

	conf := s.Configurations[0]
	test.ExpectEquality(t, conf.Name, "Keyboard 1")
	test.ExpectEquality(t, conf.Kind, inputs.KindKeyboard)

	k, ok := conf.Keyboard.Get(joypad.A)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, k, userinput.ScancodeX)

	k, ok = conf.Keyboard.Get(joypad.Up)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, k, userinput.ScancodeUp)

	_, ok = conf.Keyboard.Get(joypad.B)
	test.ExpectEquality(t, ok, false)
}
