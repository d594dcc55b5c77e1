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

package gamepads

import (
	"fmt"

	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/mapping"
	"github.com/nesbundler/padbind/userinput"
)

// Backend is the interface to the gamepads used by the input pipeline. The
// Registry type is the implementation used with real devices.
type Backend interface {
	// Advance applies the event to the gamepad state. Returns false if the
	// event is not a gamepad event.
	Advance(ev userinput.Event) bool

	// ControlWord resolves the held buttons of the gamepad with the mapping
	// table. A gamepad that is not connected, or which has never been seen,
	// has no held buttons.
	ControlWord(id userinput.InputID, t mapping.Table[userinput.GamepadButton]) joypad.ControlWord

	// GamepadByInputID returns the state of the gamepad. Returns false if the
	// gamepad has never been seen.
	GamepadByInputID(id userinput.InputID) (DeviceState, bool)

	// IsConnected returns false if the gamepad is not connected or has never
	// been seen.
	IsConnected(id userinput.InputID) bool

	// Devices returns the state of every gamepad that has been seen, connected
	// or not, ordered by InputID.
	Devices() []DeviceState

	// Forget removes a gamepad that is no longer connected. Returns false if
	// the gamepad is connected or has never been seen.
	Forget(id userinput.InputID) bool
}

// DeviceState is a snapshot of a gamepad.
type DeviceState struct {
	ID   userinput.InputID
	GUID string
	Name string

	// Handle is only meaningful if Connected is true
	Handle    userinput.DeviceHandle
	Connected bool

	// held buttons in ascending order
	Held []userinput.GamepadButton
}

// FirstHeld returns the first held button. Returns false if no button is
// held.
func (d DeviceState) FirstHeld() (userinput.GamepadButton, bool) {
	if len(d.Held) == 0 {
		return userinput.GamepadButtonNone, false
	}
	return d.Held[0], true
}

func (d DeviceState) String() string {
	if d.Connected {
		return fmt.Sprintf("%s [%s] handle %d", d.Name, d.ID, d.Handle)
	}
	return fmt.Sprintf("%s [%s] disconnected", d.Name, d.ID)
}

// DefaultMapping returns the mapping used for a gamepad the first time it is
// seen.
func DefaultMapping() mapping.Table[userinput.GamepadButton] {
	return mapping.NewTable(map[joypad.Button]userinput.GamepadButton{
		joypad.Up:     userinput.GamepadButtonDPadUp,
		joypad.Down:   userinput.GamepadButtonDPadDown,
		joypad.Left:   userinput.GamepadButtonDPadLeft,
		joypad.Right:  userinput.GamepadButtonDPadRight,
		joypad.Start:  userinput.GamepadButtonStart,
		joypad.Select: userinput.GamepadButtonBack,
		joypad.B:      userinput.GamepadButtonX,
		joypad.A:      userinput.GamepadButtonA,
	})
}
