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

// Package inputs is the input pipeline. It keeps the registry of input
// configurations, the selection of configuration for each player, and
// resolves the selected configurations into a joypad.ControlWord once per
// frame.
//
// A frame proceeds as follows:
//
//	inp.Frame(events)         // or Advance() for each event then Update()
//	w := inp.GetJoypad(0)     // read as often as required until the next frame
//
// Configurations are either keyboard configurations or gamepad
// configurations. The two keyboard configurations (KeyboardPlayer1 and
// KeyboardPlayer2) always exist. Gamepad configurations are created the first
// time a gamepad is seen and remain after the gamepad is disconnected, so
// that the configuration is found again when the gamepad reconnects.
//
// If the configuration selected for a player is not connected, the player is
// given the default configuration for that player. The default
// configuration is always a keyboard configuration and so is always
// connected.
//
// Remapping is by press-to-bind. The remap interface asks the user to hold a
// key or button and then calls RemapConfiguration(). There is no waiting:
// if nothing is held at the moment of the call then the remap fails.
//
// Persisting configurations is the job of the caller. NewInputs() is given
// Settings and the Settings() function returns the current state for
// saving. Settings.Hash() can be used to decide whether a save is required.
package inputs
