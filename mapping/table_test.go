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

package mapping_test

import (
	"testing"

	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/mapping"
	"github.com/nesbundler/padbind/test"
)

func held(keys ...rune) mapping.Held[rune] {
	var h mapping.Held[rune]
	for _, k := range keys {
		h.Press(k)
	}
	return h
}

func weights(bs ...joypad.Button) joypad.ControlWord {
	var w joypad.ControlWord
	for _, b := range bs {
		w |= joypad.BitWeight(b)
	}
	return w
}

func TestResolve(t *testing.T) {
	tab := mapping.NewTable(map[joypad.Button]rune{
		joypad.Up: 'W',
		joypad.A:  'J',
	})

	test.ExpectEquality(t, tab.Resolve(held()), 0)
	test.ExpectEquality(t, tab.Resolve(held('W')), weights(joypad.Up))
	test.ExpectEquality(t, tab.Resolve(held('W', 'J')), weights(joypad.Up, joypad.A))

	// keys that are not bound to anything have no effect
	test.ExpectEquality(t, tab.Resolve(held('W', 'Q')), weights(joypad.Up))

	// resolution is idempotent
	h := held('W', 'J')
	test.ExpectEquality(t, tab.Resolve(h), tab.Resolve(h))
}

func TestDuplicateBinding(t *testing.T) {
	tab := mapping.NewTable(map[joypad.Button]rune{
		joypad.Up:   'W',
		joypad.Down: 'W',
	})

	test.ExpectEquality(t, tab.Resolve(held('W')), weights(joypad.Up, joypad.Down))

	amb := tab.Ambiguous()
	test.DemandEquality(t, len(amb), 1)
	test.DemandEquality(t, len(amb['W']), 2)
	test.ExpectEquality(t, amb['W'][0], joypad.Up)
	test.ExpectEquality(t, amb['W'][1], joypad.Down)

	// two different keys for the same button. either one asserts the button
	tab = mapping.NewTable(map[joypad.Button]rune{
		joypad.A: 'J',
	})
	tab.Remap(joypad.B, 'K')
	tab.Remap(joypad.B, 'J')
	test.ExpectEquality(t, tab.Resolve(held('J')), weights(joypad.A, joypad.B))
	test.ExpectEquality(t, len(tab.Ambiguous()), 1)
}

func TestReverseLookup(t *testing.T) {
	tab := mapping.NewTable(map[joypad.Button]rune{
		joypad.A:     'J',
		joypad.Up:    'W',
		joypad.Start: 'W',
	})

	test.ExpectEquality(t, len(tab.ReverseLookup('Q')), 0)

	bs := tab.ReverseLookup('J')
	test.DemandEquality(t, len(bs), 1)
	test.ExpectEquality(t, bs[0], joypad.A)

	// results are in canonical order
	bs = tab.ReverseLookup('W')
	test.DemandEquality(t, len(bs), 2)
	test.ExpectEquality(t, bs[0], joypad.Up)
	test.ExpectEquality(t, bs[1], joypad.Start)

	// the zero value of the key type does not match unbound slots
	test.ExpectEquality(t, len(tab.ReverseLookup(0)), 0)

	// completeness. every button returned has a slot equal to the key and
	// every slot equal to the key is returned
	for _, k := range []rune{'J', 'W', 'Q'} {
		found := make(map[joypad.Button]bool)
		for _, b := range tab.ReverseLookup(k) {
			found[b] = true
		}
		for _, b := range joypad.Buttons {
			v, ok := tab.Get(b)
			test.ExpectEquality(t, ok && v == k, found[b])
		}
	}
}

func TestRemap(t *testing.T) {
	var tab mapping.Table[rune]

	prev, ok := tab.Remap(joypad.Select, 'S')
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prev, 0)

	k, ok := tab.Get(joypad.Select)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 'S')

	bs := tab.ReverseLookup('S')
	test.DemandEquality(t, len(bs), 1)
	test.ExpectEquality(t, bs[0], joypad.Select)

	// overwrite returns the previous binding and leaves other slots alone
	tab.Remap(joypad.Start, 'T')
	prev, ok = tab.Remap(joypad.Select, 'E')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, prev, 'S')
	k, _ = tab.Get(joypad.Start)
	test.ExpectEquality(t, k, 'T')
	test.ExpectEquality(t, len(tab.ReverseLookup('S')), 0)

	prev, ok = tab.Unbind(joypad.Select)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, prev, 'E')
	_, ok = tab.Get(joypad.Select)
	test.ExpectFailure(t, ok)
}

func TestLookup(t *testing.T) {
	var tab mapping.Table[rune]

	// changing the slot in place changes the table
	s := tab.Lookup(joypad.Left)
	test.DemandSuccess(t, s != nil)
	s.Key = 'A'
	s.Bound = true
	k, ok := tab.Get(joypad.Left)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 'A')

	// invalid buttons return a slot that does not affect the table
	before := tab
	s = tab.Lookup(joypad.Button(99))
	test.DemandSuccess(t, s != nil)
	s.Key = 'Z'
	s.Bound = true
	test.ExpectEquality(t, tab, before)
	_, ok = tab.Get(joypad.Button(99))
	test.ExpectFailure(t, ok)
}

func TestTableIsValue(t *testing.T) {
	a := mapping.NewTable(map[joypad.Button]rune{joypad.A: 'J'})
	b := a
	test.ExpectEquality(t, a, b)

	b.Remap(joypad.A, 'K')
	test.ExpectInequality(t, a, b)

	// usable as a map key
	m := map[mapping.Table[rune]]string{a: "a", b: "b"}
	test.ExpectEquality(t, len(m), 2)
	test.ExpectEquality(t, m[mapping.NewTable(map[joypad.Button]rune{joypad.A: 'J'})], "a")
}

func TestTableString(t *testing.T) {
	tab := mapping.NewTable(map[joypad.Button]string{joypad.Up: "W", joypad.A: "J"})
	test.ExpectEquality(t, tab.String(), "Up=W Down=none Left=none Right=none Start=none Select=none B=none A=J")
}
