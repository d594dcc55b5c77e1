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

package mapping

import (
	"fmt"
	"strings"

	"github.com/nesbundler/padbind/joypad"
)

// Slot holds the physical key bound to a single joypad button. The Key field
// is meaningless if Bound is false.
type Slot[K comparable] struct {
	Key   K
	Bound bool
}

// Table associates each joypad button with at most one physical key. The key
// type K is the vocabulary of the physical device: a keyboard scancode or a
// gamepad button for example.
//
// Table is a value type. It can be compared with == and can be used as a map
// key, so long as K can.
//
// The same key may be bound to more than one button. This is not prevented
// and when such a key is held all buttons it is bound to are asserted.
type Table[K comparable] struct {
	slots [joypad.NumButtons]Slot[K]
}

// NewTable creates a table from the button/key pairs in the map. Buttons that
// are not in the map are left unbound. Invalid buttons are ignored.
func NewTable[K comparable](pairs map[joypad.Button]K) Table[K] {
	var t Table[K]
	for b, k := range pairs {
		if b.Valid() {
			t.slots[b] = Slot[K]{Key: k, Bound: true}
		}
	}
	return t
}

// Lookup returns the slot for the button. Changing the returned slot changes
// the table.
//
// The function never returns nil. An invalid button will return a slot that
// is not part of the table.
func (t *Table[K]) Lookup(b joypad.Button) *Slot[K] {
	if !b.Valid() {
		return &Slot[K]{}
	}
	return &t.slots[b]
}

// Get returns the key bound to the button and whether the slot is bound.
func (t Table[K]) Get(b joypad.Button) (K, bool) {
	if !b.Valid() {
		var k K
		return k, false
	}
	return t.slots[b].Key, t.slots[b].Bound
}

// Remap binds the key to the button, overwriting any existing binding for
// that button. Other buttons are unaffected.
//
// Returns the previous binding.
func (t *Table[K]) Remap(b joypad.Button, k K) (K, bool) {
	s := t.Lookup(b)
	prev, hadPrev := s.Key, s.Bound
	s.Key = k
	s.Bound = true
	return prev, hadPrev
}

// Unbind clears the binding for the button. Returns the previous binding.
func (t *Table[K]) Unbind(b joypad.Button) (K, bool) {
	s := t.Lookup(b)
	prev, hadPrev := s.Key, s.Bound
	*s = Slot[K]{}
	return prev, hadPrev
}

// ReverseLookup returns every button that the key is bound to, in canonical
// order. Returns nil if the key is not bound to any button.
func (t Table[K]) ReverseLookup(k K) []joypad.Button {
	var bs []joypad.Button
	for _, b := range joypad.Buttons {
		if t.slots[b].Bound && t.slots[b].Key == k {
			bs = append(bs, b)
		}
	}
	return bs
}

// Resolve the held keys into a control word. Each held key asserts every
// button it is bound to.
//
// The cost of resolution is proportional to the number of held keys.
func (t Table[K]) Resolve(held Held[K]) joypad.ControlWord {
	var w joypad.ControlWord
	for k := range held.keys {
		for _, b := range t.ReverseLookup(k) {
			w |= joypad.BitWeight(b)
		}
	}
	return w
}

// Ambiguous returns the keys that are bound to more than one button. Returns
// nil if there are no such keys.
func (t Table[K]) Ambiguous() map[K][]joypad.Button {
	var amb map[K][]joypad.Button
	for _, b := range joypad.Buttons {
		s := t.slots[b]
		if !s.Bound {
			continue
		}
		if _, ok := amb[s.Key]; ok {
			continue
		}
		if bs := t.ReverseLookup(s.Key); len(bs) > 1 {
			if amb == nil {
				amb = make(map[K][]joypad.Button)
			}
			amb[s.Key] = bs
		}
	}
	return amb
}

func (t Table[K]) String() string {
	s := strings.Builder{}
	for i, b := range joypad.Buttons {
		if i > 0 {
			s.WriteString(" ")
		}
		if t.slots[b].Bound {
			s.WriteString(fmt.Sprintf("%s=%v", b, t.slots[b].Key))
		} else {
			s.WriteString(fmt.Sprintf("%s=none", b))
		}
	}
	return s.String()
}
