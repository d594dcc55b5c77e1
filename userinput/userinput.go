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

// Event represents all the different type of events that can occur in the
// device event stream.
type Event interface{}

// EventQuit is sent when the user has requested that the application end.
// The input pipeline ignores this event.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Key repeats are
// not sent.
type EventKeyboard struct {
	Scancode Scancode
	Down     bool
}

// DeviceHandle identifies a connected gamepad for the lifetime of its
// connection. A gamepad that disconnects and reconnects will be given a
// different handle.
type DeviceHandle int32

// InputID is the stable identifier of an input configuration. For gamepads
// the ID is derived from the device and survives reconnection.
type InputID string

// EventGamepadAdded is sent when a gamepad is connected.
type EventGamepadAdded struct {
	Handle DeviceHandle

	// the GUID as reported by the device API. identical models of gamepad
	// will report the same GUID
	GUID string

	Name string
}

// EventGamepadRemoved is sent when a gamepad is disconnected.
type EventGamepadRemoved struct {
	Handle DeviceHandle
}

// EventGamepadButton is sent when a button on a gamepad is pressed or
// released.
type EventGamepadButton struct {
	Handle DeviceHandle
	Button GamepadButton
	Down   bool

	// the event was produced by a thumbstick acting as a dpad and not by a
	// physical button
	Stick bool
}
