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
	"fmt"
	"strings"
)

// Scancode identifies a physical key on the keyboard, independent of the
// keyboard layout. Values follow the USB HID usage table.
type Scancode uint32

// List of named scancodes. Keys not listed can still be used by their
// numeric value.
const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4 + iota - 1
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ
	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0
	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
)

const (
	ScancodeF1 Scancode = 58 + iota
	ScancodeF2
	ScancodeF3
	ScancodeF4
	ScancodeF5
	ScancodeF6
	ScancodeF7
	ScancodeF8
	ScancodeF9
	ScancodeF10
	ScancodeF11
	ScancodeF12
)

const (
	ScancodeRight Scancode = 79 + iota
	ScancodeLeft
	ScancodeDown
	ScancodeUp
)

const (
	ScancodeLCtrl  Scancode = 224
	ScancodeLShift Scancode = 225
	ScancodeLAlt   Scancode = 226
	ScancodeRCtrl  Scancode = 228
	ScancodeRShift Scancode = 229
	ScancodeRAlt   Scancode = 230
)

var scancodeNames map[Scancode]string

func init() {
	scancodeNames = map[Scancode]string{
		ScancodeReturn:    "Return",
		ScancodeEscape:    "Escape",
		ScancodeBackspace: "Backspace",
		ScancodeTab:       "Tab",
		ScancodeSpace:     "Space",
		ScancodeRight:     "Right",
		ScancodeLeft:      "Left",
		ScancodeDown:      "Down",
		ScancodeUp:        "Up",
		ScancodeLCtrl:     "LCtrl",
		ScancodeLShift:    "LShift",
		ScancodeLAlt:      "LAlt",
		ScancodeRCtrl:     "RCtrl",
		ScancodeRShift:    "RShift",
		ScancodeRAlt:      "RAlt",
	}

	for i := ScancodeA; i <= ScancodeZ; i++ {
		scancodeNames[i] = string(rune('A' + (i - ScancodeA)))
	}

	for i := Scancode1; i <= Scancode9; i++ {
		scancodeNames[i] = string(rune('1' + (i - Scancode1)))
	}
	scancodeNames[Scancode0] = "0"

	for i := ScancodeF1; i <= ScancodeF12; i++ {
		scancodeNames[i] = fmt.Sprintf("F%d", int(i-ScancodeF1)+1)
	}
}

// String returns the name of the key. Keys without a name are shown by
// their numeric value.
func (s Scancode) String() string {
	if n, ok := scancodeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Scancode(%d)", uint32(s))
}

// ParseScancode returns the Scancode for the named key. The name is as
// returned by String() and case is ignored. The "Scancode(n)" form is also
// accepted.
func ParseScancode(name string) (Scancode, bool) {
	name = strings.TrimSpace(name)

	for s, n := range scancodeNames {
		if strings.EqualFold(n, name) {
			return s, true
		}
	}

	var v uint32
	if _, err := fmt.Sscanf(name, "Scancode(%d)", &v); err == nil {
		return Scancode(v), true
	}

	return ScancodeUnknown, false
}
