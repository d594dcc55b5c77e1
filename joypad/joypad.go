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

package joypad

import (
	"strings"
)

// Button is one of the eight logical controls of the emulated joypad.
type Button int

// List of valid Button values. The order of the list is the canonical order
// used whenever buttons are listed or displayed.
const (
	Up Button = iota
	Down
	Left
	Right
	Start
	Select
	B
	A
)

// NumButtons is the number of logical buttons on the joypad.
const NumButtons = 8

// Buttons lists all buttons in canonical order.
var Buttons = [NumButtons]Button{Up, Down, Left, Right, Start, Select, B, A}

var buttonNames = [NumButtons]string{"Up", "Down", "Left", "Right", "Start", "Select", "B", "A"}

// single letter used by ControlWord.String()
var buttonLetters = [NumButtons]byte{'U', 'D', 'L', 'R', 'S', 's', 'B', 'A'}

// Valid returns true if the button is one of the eight logical buttons.
func (b Button) Valid() bool {
	return b >= Up && b <= A
}

func (b Button) String() string {
	if !b.Valid() {
		return "unknown button"
	}
	return buttonNames[b]
}

// ParseButton returns the Button named by s. Case is ignored.
func ParseButton(s string) (Button, bool) {
	s = strings.TrimSpace(s)
	for i, n := range buttonNames {
		if strings.EqualFold(n, s) {
			return Button(i), true
		}
	}
	return Up, false
}

// bit weights. the directions occupy the high nibble
const (
	weightRight = 0x80
	weightLeft  = 0x40
	weightDown  = 0x20
	weightUp    = 0x10
	weightStart = 0x08
	weightSel   = 0x04
	weightB     = 0x02
	weightA     = 0x01
)

// BitWeight returns the single bit representing the button in a ControlWord.
// The values are fixed and must not change once configurations have been saved.
//
// An invalid button has a weight of zero.
func BitWeight(b Button) ControlWord {
	switch b {
	case Up:
		return weightUp
	case Down:
		return weightDown
	case Left:
		return weightLeft
	case Right:
		return weightRight
	case Start:
		return weightStart
	case Select:
		return weightSel
	case B:
		return weightB
	case A:
		return weightA
	}
	return 0
}
