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

import "fmt"

// ControlWord is the packed state of a joypad. A bit is set when the
// corresponding button is asserted. See BitWeight() for the bit assignments.
//
// A ControlWord is recomputed every frame and is never partially updated.
type ControlWord uint8

// IsPressed returns true if the button is asserted in the control word.
func (w ControlWord) IsPressed(b Button) bool {
	return w&BitWeight(b) != 0
}

// IsPressed is the function form of ControlWord.IsPressed().
func IsPressed(w ControlWord, b Button) bool {
	return w.IsPressed(b)
}

// Pressed lists the asserted buttons in canonical order.
func (w ControlWord) Pressed() []Button {
	var p []Button
	for _, b := range Buttons {
		if w.IsPressed(b) {
			p = append(p, b)
		}
	}
	return p
}

// String returns eight characters, one for each button in canonical order. A
// letter indicates an asserted button and a dash indicates otherwise. The
// letter for Select is a lower case 's' to distinguish it from Start.
func (w ControlWord) String() string {
	s := make([]byte, NumButtons)
	for i, b := range Buttons {
		if w.IsPressed(b) {
			s[i] = buttonLetters[i]
		} else {
			s[i] = '-'
		}
	}
	return string(s)
}

// GoString shows the raw value of the control word alongside the String()
// representation.
func (w ControlWord) GoString() string {
	return fmt.Sprintf("%#02x (%s)", uint8(w), w.String())
}

// MaxPlayers is the number of player slots.
const MaxPlayers = 2

// Player indexes a player slot. Valid values are 0 to MaxPlayers-1.
type Player int

// Valid returns true if the player is in range.
func (p Player) Valid() bool {
	return p >= 0 && p < MaxPlayers
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", int(p)+1)
}
