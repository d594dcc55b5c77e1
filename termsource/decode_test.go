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

package termsource

import (
	"testing"

	"github.com/nesbundler/padbind/test"
	"github.com/nesbundler/padbind/userinput"
)

func TestScancodeFromByte(t *testing.T) {
	expect := func(b byte, sc userinput.Scancode) {
		t.Helper()
		v, ok := ScancodeFromByte(b)
		test.ExpectEquality(t, ok, true, b)
		test.ExpectEquality(t, v, sc, b)
	}

	expect('a', userinput.ScancodeA)
	expect('A', userinput.ScancodeA)
	expect('z', userinput.ScancodeZ)
	expect('Z', userinput.ScancodeZ)
	expect('x', userinput.ScancodeX)
	expect('0', userinput.Scancode0)
	expect('1', userinput.Scancode1)
	expect('9', userinput.Scancode9)
	expect('\r', userinput.ScancodeReturn)
	expect('\n', userinput.ScancodeReturn)
	expect(' ', userinput.ScancodeSpace)
	expect('\t', userinput.ScancodeTab)
	expect(8, userinput.ScancodeBackspace)
	expect(127, userinput.ScancodeBackspace)
	expect(27, userinput.ScancodeEscape)

	for _, b := range []byte{'!', '@', 0, 200} {
		v, ok := ScancodeFromByte(b)
		test.ExpectEquality(t, ok, false, b)
		test.ExpectEquality(t, v, userinput.ScancodeUnknown, b)
	}
}

func press(sc userinput.Scancode) userinput.Event {
	return userinput.EventKeyboard{Scancode: sc, Down: true}
}

func release(sc userinput.Scancode) userinput.Event {
	return userinput.EventKeyboard{Scancode: sc, Down: false}
}

func feed(dec *Decoder, bs ...byte) []userinput.Event {
	var evs []userinput.Event
	for _, b := range bs {
		evs = append(evs, dec.Feed(b)...)
	}
	return append(evs, dec.Flush()...)
}

func expectEvents(t *testing.T, evs []userinput.Event, expected ...userinput.Event) {
	t.Helper()
	if !test.ExpectEquality(t, len(evs), len(expected)) {
		return
	}
	for i := range evs {
		test.ExpectEquality(t, evs[i], expected[i], i)
	}
}

func TestDecoder(t *testing.T) {
	var dec Decoder

	expectEvents(t, feed(&dec, 'w', 'X', '1'),
		press(userinput.ScancodeW), press(userinput.ScancodeX), press(userinput.Scancode1))

	// unsupported bytes are ignored
	expectEvents(t, feed(&dec, '!'))

	// cursor keys
	expectEvents(t, feed(&dec, 27, '[', 'A', 27, '[', 'B', 27, '[', 'C', 27, '[', 'D'),
		press(userinput.ScancodeUp), press(userinput.ScancodeDown),
		press(userinput.ScancodeRight), press(userinput.ScancodeLeft))

	// unknown cursor sequence is ignored
	expectEvents(t, feed(&dec, 27, '[', 'Z'))

	// escape followed by another key
	expectEvents(t, feed(&dec, 27, 'z'),
		press(userinput.ScancodeEscape), press(userinput.ScancodeZ))

	// lone escape is completed by the flush
	expectEvents(t, feed(&dec, 27), press(userinput.ScancodeEscape))

	// quit keys
	expectEvents(t, feed(&dec, 'q'), userinput.EventQuit{})
	expectEvents(t, feed(&dec, 3), userinput.EventQuit{})
}

func TestDecoderSplitSequence(t *testing.T) {
	var dec Decoder

	// a cursor sequence split across two polls is not recognised if the
	// decoder is flushed in between. the first part is the escape key
	test.ExpectEquality(t, len(dec.Feed(27)), 0)
	expectEvents(t, dec.Flush(), press(userinput.ScancodeEscape))
	expectEvents(t, feed(&dec, '[', 'A'), press(userinput.ScancodeA))

	// without the flush the sequence is recognised
	test.ExpectEquality(t, len(dec.Feed(27)), 0)
	test.ExpectEquality(t, len(dec.Feed('[')), 0)
	expectEvents(t, dec.Feed('A'), press(userinput.ScancodeUp))
}

func TestReleaser(t *testing.T) {
	var rel releaser

	// nothing pressed and nothing to release
	expectEvents(t, rel.events(nil))

	expectEvents(t, rel.events([]userinput.Event{press(userinput.ScancodeZ)}),
		press(userinput.ScancodeZ))

	// release from previous poll comes before the presses in this poll
	expectEvents(t, rel.events([]userinput.Event{press(userinput.ScancodeZ), press(userinput.ScancodeX)}),
		release(userinput.ScancodeZ), press(userinput.ScancodeZ), press(userinput.ScancodeX))

	// quit events are passed through and are not released
	expectEvents(t, rel.events([]userinput.Event{userinput.EventQuit{}}),
		release(userinput.ScancodeZ), release(userinput.ScancodeX), userinput.EventQuit{})

	expectEvents(t, rel.events(nil))
}
