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
	"github.com/nesbundler/padbind/gamepads"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/keyboard"
)

// backend is the capability of a class of device. The backend for a
// configuration is chosen by the Kind of the configuration.
type backend interface {
	controlWord(conf *Configuration) joypad.ControlWord
	isConnected(conf *Configuration) bool

	// press-to-bind. binds the first held key or button of the device to
	// the joypad button. returns false if nothing is held
	remap(conf *Configuration, b joypad.Button) bool
}

type keyboardBackend struct {
	kb *keyboard.Keyboard
}

func (bk keyboardBackend) controlWord(conf *Configuration) joypad.ControlWord {
	return bk.kb.ControlWord(conf.Keyboard)
}

func (bk keyboardBackend) isConnected(_ *Configuration) bool {
	return bk.kb.IsConnected()
}

// the first held key is the first in iteration order of the held set. this is
// not press order and is not guaranteed to be the same from call to call
func (bk keyboardBackend) remap(conf *Configuration, b joypad.Button) bool {
	k, ok := bk.kb.FirstHeld()
	if !ok {
		return false
	}
	conf.Keyboard.Remap(b, k)
	return true
}

type gamepadBackend struct {
	pads gamepads.Backend
}

func (bk gamepadBackend) controlWord(conf *Configuration) joypad.ControlWord {
	return bk.pads.ControlWord(conf.ID, conf.Gamepad)
}

func (bk gamepadBackend) isConnected(conf *Configuration) bool {
	return bk.pads.IsConnected(conf.ID)
}

func (bk gamepadBackend) remap(conf *Configuration, b joypad.Button) bool {
	st, ok := bk.pads.GamepadByInputID(conf.ID)
	if !ok || !st.Connected {
		return false
	}
	btn, ok := st.FirstHeld()
	if !ok {
		return false
	}
	conf.Gamepad.Remap(b, btn)
	return true
}

// unknown kinds of configuration are never connected and never resolve to
// anything
type nullBackend struct{}

func (nullBackend) controlWord(_ *Configuration) joypad.ControlWord {
	return 0
}

func (nullBackend) isConnected(_ *Configuration) bool {
	return false
}

func (nullBackend) remap(_ *Configuration, _ joypad.Button) bool {
	return false
}
