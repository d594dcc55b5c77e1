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

package inputs

import (
	"crypto/sha1"
	"fmt"

	"github.com/nesbundler/padbind/gamepads"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/keyboard"
	"github.com/nesbundler/padbind/mapping"
	"github.com/nesbundler/padbind/userinput"
)

// Kind is the class of device a configuration is for.
type Kind int

// List of valid Kind values.
const (
	KindKeyboard Kind = iota
	KindGamepad
)

func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindGamepad:
		return "gamepad"
	}
	return "unknown kind"
}

// Configuration binds a device to a mapping table. Only the table for the
// Kind of the configuration is used.
//
// A Configuration is a value and can be compared with ==.
type Configuration struct {
	ID   userinput.InputID
	Name string
	Kind Kind

	Keyboard mapping.Table[userinput.Scancode]
	Gamepad  mapping.Table[userinput.GamepadButton]
}

func (conf *Configuration) copy() *Configuration {
	c := *conf
	return &c
}

func (conf Configuration) String() string {
	switch conf.Kind {
	case KindKeyboard:
		return fmt.Sprintf("%s (%s): %s", conf.Name, conf.ID, conf.Keyboard)
	case KindGamepad:
		return fmt.Sprintf("%s (%s): %s", conf.Name, conf.ID, conf.Gamepad)
	}
	return fmt.Sprintf("%s (%s): %s", conf.Name, conf.ID, conf.Kind)
}

// The InputIDs of the two keyboard configurations. These are created at
// startup and can never be removed.
const (
	KeyboardPlayer1 userinput.InputID = "00-keyboard-1"
	KeyboardPlayer2 userinput.InputID = "01-keyboard-2"
)

// NewKeyboardConfiguration returns a keyboard configuration with the default
// mapping for the player.
func NewKeyboardConfiguration(id userinput.InputID, name string, player joypad.Player) Configuration {
	return Configuration{
		ID:       id,
		Name:     name,
		Kind:     KindKeyboard,
		Keyboard: keyboard.DefaultMapping(player),
	}
}

// NewGamepadConfiguration returns a gamepad configuration with the default
// gamepad mapping.
func NewGamepadConfiguration(id userinput.InputID, name string) Configuration {
	return Configuration{
		ID:      id,
		Name:    name,
		Kind:    KindGamepad,
		Gamepad: gamepads.DefaultMapping(),
	}
}

// Settings is the state of the configuration registry as seen by an external
// settings store. The store supplies Settings to NewInputs() and retrieves
// the current Settings with Inputs.Settings() when it wants to save.
type Settings struct {
	Configurations []Configuration
	Selected       [joypad.MaxPlayers]userinput.InputID
	Default        [joypad.MaxPlayers]userinput.InputID
}

// DefaultSettings returns the two keyboard configurations. The first
// configuration is selected for and is the default of the first player. The
// second configuration is selected for and is the default of the second
// player.
func DefaultSettings() Settings {
	return Settings{
		Configurations: []Configuration{
			NewKeyboardConfiguration(KeyboardPlayer1, "Keyboard 1", 0),
			NewKeyboardConfiguration(KeyboardPlayer2, "Keyboard 2", 1),
		},
		Selected: [joypad.MaxPlayers]userinput.InputID{KeyboardPlayer1, KeyboardPlayer2},
		Default:  [joypad.MaxPlayers]userinput.InputID{KeyboardPlayer1, KeyboardPlayer2},
	}
}

// Hash returns a SHA1 digest of the settings. A settings store can compare
// the hash with the hash of the last saved settings to decide whether the
// settings need saving.
func (s Settings) Hash() string {
	h := sha1.New()
	for _, conf := range s.Configurations {
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00", conf.ID, conf.Name, conf.Kind)
		for _, b := range joypad.Buttons {
			switch conf.Kind {
			case KindKeyboard:
				k, ok := conf.Keyboard.Get(b)
				fmt.Fprintf(h, "%d:%v:%d\x00", b, ok, k)
			case KindGamepad:
				k, ok := conf.Gamepad.Get(b)
				fmt.Fprintf(h, "%d:%v:%d\x00", b, ok, k)
			}
		}
	}
	for p := range s.Selected {
		fmt.Fprintf(h, "%s\x00%s\x00", s.Selected[p], s.Default[p])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
