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


// Package mapping associates physical keys with the eight logical buttons of
// a joypad.
//
// The Table type is generic over the physical key type so the same code
// serves the keyboard (scancodes) and gamepads (controller buttons). Keys are
// resolved into a joypad.ControlWord by folding over the set of held keys
// (the Held type) and performing a reverse lookup on each.
//
// Reverse lookup returns every button a key is bound to. The remap interface
// uses this to show which buttons a key already controls and Ambiguous() to
// list keys that control more than one button.
package mapping
