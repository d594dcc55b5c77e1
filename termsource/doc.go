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

// Package termsource is a keyboard-only device event source for when SDL is
// not available. The terminal is put into cbreak mode and each byte typed
// becomes a key press.
//
// Terminals do not report key releases. A key pressed during one call to
// Poll() is released at the start of the next call. Holding a key down
// relies on the terminal's key repeat to press it again before the release
// takes effect, which means that a held key may be seen to flicker.
//
// Only the keys with a byte representation are supported: letters, digits,
// return, space, tab, backspace, escape and the four cursor keys. Upper and
// lower case letters are the same key. Typing 'q' or the interrupt character
// produces a userinput.EventQuit.
//
// Cbreak mode is only supported on linux. On other platforms NewSource()
// returns the Unsupported error.
package termsource

// Unsupported is returned by NewSource() on platforms without termios
// support.
const Unsupported = "termsource: terminal input not supported on this platform"
