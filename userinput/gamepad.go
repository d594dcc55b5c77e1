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

package userinput

import (
	"strings"
)

// GamepadButton identifies a button on a gamepad.
type GamepadButton int

// List of valid GamepadButton values. The order matches the SDL game
// controller button order.
const (
	GamepadButtonNone GamepadButton = iota - 1
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

// NumGamepadButtons is the number of valid gamepad buttons.
const NumGamepadButtons = 15

var gamepadButtonNames = [NumGamepadButtons]string{
	"A", "B", "X", "Y",
	"Back", "Guide", "Start",
	"LeftStick", "RightStick",
	"LeftShoulder", "RightShoulder",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
}

// Valid returns true if the button is not GamepadButtonNone and is in range.
func (b GamepadButton) Valid() bool {
	return b >= GamepadButtonA && b <= GamepadButtonDPadRight
}

func (b GamepadButton) String() string {
	if !b.Valid() {
		return "None"
	}
	return gamepadButtonNames[b]
}

// ParseGamepadButton returns the GamepadButton for the name. The name is as
// returned by String() and case is ignored.
func ParseGamepadButton(name string) (GamepadButton, bool) {
	name = strings.TrimSpace(name)
	for i, n := range gamepadButtonNames {
		if strings.EqualFold(n, name) {
			return GamepadButton(i), true
		}
	}
	return GamepadButtonNone, false
}

// StickDeadzone is the default deadzone for treating a thumbstick as a dpad.
// Quite a large deadzone.
const StickDeadzone = 10000

// StickDirections is the set of dpad buttons asserted by a thumbstick.
type StickDirections struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// StickToDPad converts thumbstick axis values to dpad directions. An axis
// value beyond the deadzone in either direction asserts the corresponding
// dpad button. Positive vertical values are down, as reported by SDL.
//
// Diagonals assert two directions.
func StickToDPad(horiz int16, vert int16, deadzone int) StickDirections {
	return StickDirections{
		Up:    int(vert) < -deadzone,
		Down:  int(vert) > deadzone,
		Left:  int(horiz) < -deadzone,
		Right: int(horiz) > deadzone,
	}
}

// Transitions compares the previous directions with the current directions
// and returns a button event for every dpad button that has changed. The
// Handle field of the returned events is set to the supplied handle and the
// Stick field is set to true.
func (s StickDirections) Transitions(prev StickDirections, handle DeviceHandle) []EventGamepadButton {
	var evs []EventGamepadButton

	check := func(was bool, is bool, b GamepadButton) {
		if was != is {
			evs = append(evs, EventGamepadButton{
				Handle: handle,
				Button: b,
				Down:   is,
				Stick:  true,
			})
		}
	}

	check(prev.Up, s.Up, GamepadButtonDPadUp)
	check(prev.Down, s.Down, GamepadButtonDPadDown)
	check(prev.Left, s.Left, GamepadButtonDPadLeft)
	check(prev.Right, s.Right, GamepadButtonDPadRight)

	return evs
}
