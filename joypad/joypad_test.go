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

package joypad_test

import (
	"testing"

	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/test"
)

func TestBitWeights(t *testing.T) {
	test.ExpectEquality(t, joypad.BitWeight(joypad.Right), 0x80)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Left), 0x40)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Down), 0x20)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Up), 0x10)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Start), 0x08)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Select), 0x04)
	test.ExpectEquality(t, joypad.BitWeight(joypad.B), 0x02)
	test.ExpectEquality(t, joypad.BitWeight(joypad.A), 0x01)

	// out of range buttons have no weight
	test.ExpectEquality(t, joypad.BitWeight(joypad.Button(-1)), 0)
	test.ExpectEquality(t, joypad.BitWeight(joypad.Button(joypad.NumButtons)), 0)

	// every bit is used exactly once
	var all joypad.ControlWord
	for _, b := range joypad.Buttons {
		test.ExpectEquality(t, all&joypad.BitWeight(b), 0)
		all |= joypad.BitWeight(b)
	}
	test.ExpectEquality(t, all, 0xff)
}

func TestIsPressed(t *testing.T) {
	// exhaustive over all control words and buttons
	for w := 0; w <= 0xff; w++ {
		cw := joypad.ControlWord(w)
		for _, b := range joypad.Buttons {
			test.ExpectEquality(t, cw.IsPressed(b), cw&joypad.BitWeight(b) != 0)
			test.ExpectEquality(t, joypad.IsPressed(cw, b), cw.IsPressed(b))
		}
	}
}

func TestPressed(t *testing.T) {
	var w joypad.ControlWord
	test.ExpectEquality(t, len(w.Pressed()), 0)

	w = joypad.BitWeight(joypad.A) | joypad.BitWeight(joypad.Up) | joypad.BitWeight(joypad.Start)
	p := w.Pressed()
	test.DemandEquality(t, len(p), 3)
	test.ExpectEquality(t, p[0], joypad.Up)
	test.ExpectEquality(t, p[1], joypad.Start)
	test.ExpectEquality(t, p[2], joypad.A)
}

func TestControlWordString(t *testing.T) {
	var w joypad.ControlWord
	test.ExpectEquality(t, w.String(), "--------")

	w = joypad.BitWeight(joypad.Up) | joypad.BitWeight(joypad.Start) | joypad.BitWeight(joypad.A)
	test.ExpectEquality(t, w.String(), "U---S--A")

	w = 0xff
	test.ExpectEquality(t, w.String(), "UDLRSsBA")
}

func TestParseButton(t *testing.T) {
	for _, b := range joypad.Buttons {
		p, ok := joypad.ParseButton(b.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, b)
	}

	b, ok := joypad.ParseButton(" select ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, joypad.Select)

	_, ok = joypad.ParseButton("fire")
	test.ExpectFailure(t, ok)
}

func TestPlayer(t *testing.T) {
	test.ExpectSuccess(t, joypad.Player(0).Valid())
	test.ExpectSuccess(t, joypad.Player(joypad.MaxPlayers-1).Valid())
	test.ExpectFailure(t, joypad.Player(joypad.MaxPlayers).Valid())
	test.ExpectFailure(t, joypad.Player(-1).Valid())
	test.ExpectEquality(t, joypad.Player(0).String(), "player 1")
}
