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

// Package keyboard tracks the keys held on the keyboard and resolves them into
// a joypad control word with a mapping table.
package keyboard

import (
	"fmt"
	"sort"

	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/mapping"
	"github.com/nesbundler/padbind/userinput"
)

// Keyboard is the keyboard backend. The zero value is ready to use.
type Keyboard struct {
	held mapping.Held[userinput.Scancode]
}

// Advance applies the event to the keyboard state. Returns false if the event
// is not a keyboard event.
//
// A press of a key that is already held and a release of a key that is not
// held are both ignored.
func (kb *Keyboard) Advance(ev userinput.Event) bool {
	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		if ev.Down {
			kb.held.Press(ev.Scancode)
		} else {
			kb.held.Release(ev.Scancode)
		}
		return true
	}
	return false
}

// ControlWord resolves the held keys with the mapping table.
func (kb *Keyboard) ControlWord(t mapping.Table[userinput.Scancode]) joypad.ControlWord {
	return t.Resolve(kb.held)
}

// IsConnected always returns true. The keyboard cannot be disconnected.
func (kb *Keyboard) IsConnected() bool {
	return true
}

// FirstHeld returns the first held key in iteration order. The order is
// unspecified and is not the order in which keys were pressed.
func (kb *Keyboard) FirstHeld() (userinput.Scancode, bool) {
	return kb.held.First()
}

// Held returns the held keys in ascending scancode order.
func (kb *Keyboard) Held() []userinput.Scancode {
	ks := kb.held.Keys()
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	return ks
}

// Reset releases all keys. Used when the application loses keyboard focus and
// will not see the release events.
func (kb *Keyboard) Reset() {
	kb.held.Clear()
}

func (kb *Keyboard) String() string {
	return fmt.Sprintf("keyboard: %v", kb.Held())
}

// DefaultMapping returns the default keyboard mapping for the player. There
// are default mappings for two players. Players outside that range have an
// empty mapping.
func DefaultMapping(player joypad.Player) mapping.Table[userinput.Scancode] {
	switch player {
	case 0:
		return mapping.NewTable(map[joypad.Button]userinput.Scancode{
			joypad.Up:     userinput.ScancodeUp,
			joypad.Down:   userinput.ScancodeDown,
			joypad.Left:   userinput.ScancodeLeft,
			joypad.Right:  userinput.ScancodeRight,
			joypad.Start:  userinput.ScancodeReturn,
			joypad.Select: userinput.ScancodeRShift,
			joypad.B:      userinput.ScancodeZ,
			joypad.A:      userinput.ScancodeX,
		})
	case 1:
		return mapping.NewTable(map[joypad.Button]userinput.Scancode{
			joypad.Up:     userinput.ScancodeW,
			joypad.Down:   userinput.ScancodeS,
			joypad.Left:   userinput.ScancodeA,
			joypad.Right:  userinput.ScancodeD,
			joypad.Start:  userinput.Scancode1,
			joypad.Select: userinput.Scancode2,
			joypad.B:      userinput.ScancodeG,
			joypad.A:      userinput.ScancodeH,
		})
	}
	return mapping.Table[userinput.Scancode]{}
}
