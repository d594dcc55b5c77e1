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

// Package configfile loads and saves input configurations. The file format is
// TOML and is read and written with viper:
//
//	default = ["00-keyboard-1", "01-keyboard-2"]
//	selected = ["00-keyboard-1", "gamepad-5b2e..."]
//
//	[[configurations]]
//	id = "00-keyboard-1"
//	kind = "keyboard"
//	name = "Keyboard 1"
//
//	[configurations.mapping]
//	a = "X"
//	b = "Z"
//	up = "Up"
//	...
//
// Buttons without a binding are absent from the mapping table. Names of keys
// and gamepad buttons are as returned by userinput.Scancode.String() and
// userinput.GamepadButton.String().
//
// The file is not validated beyond what is required to decode it. The
// decoded inputs.Settings are validated by inputs.NewInputs() in the usual
// way.
package configfile
