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
	"github.com/nesbundler/padbind/userinput"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// character following keyEsc that introduces a cursor sequence
const escCursor = '['

// list of characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// the key that quits the program in addition to keyInterrupt
const keyQuit = 'q'

// ScancodeFromByte returns the scancode of the key that produces the byte in
// a terminal. Upper and lower case letters produce the same scancode.
func ScancodeFromByte(b byte) (userinput.Scancode, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return userinput.ScancodeA + userinput.Scancode(b-'a'), true
	case b >= 'A' && b <= 'Z':
		return userinput.ScancodeA + userinput.Scancode(b-'A'), true
	case b == '0':
		return userinput.Scancode0, true
	case b >= '1' && b <= '9':
		return userinput.Scancode1 + userinput.Scancode(b-'1'), true
	}

	switch b {
	case keyCarriageReturn, keyLineFeed:
		return userinput.ScancodeReturn, true
	case ' ':
		return userinput.ScancodeSpace, true
	case keyTab:
		return userinput.ScancodeTab, true
	case keyBackspace, keyDelete:
		return userinput.ScancodeBackspace, true
	case keyEsc:
		return userinput.ScancodeEscape, true
	}

	return userinput.ScancodeUnknown, false
}

// Decoder turns the bytes read from a terminal into key presses. Terminals
// report cursor keys as escape sequences and the decoder keeps the state
// required to recognise them.
//
// Terminals do not report key releases. The decoder only produces
// userinput.EventKeyboard events with Down set to true.
type Decoder struct {
	// number of bytes of an escape sequence seen so far
	esc int
}

// Feed the next byte to the decoder. Returns the events that the byte
// completes, if any.
func (dec *Decoder) Feed(b byte) []userinput.Event {
	switch dec.esc {
	case 1:
		if b == escCursor {
			dec.esc = 2
			return nil
		}

		// not a cursor sequence. the escape key was pressed on its own
		dec.esc = 0
		return append(dec.press(userinput.ScancodeEscape), dec.Feed(b)...)

	case 2:
		dec.esc = 0
		switch b {
		case cursorUp:
			return dec.press(userinput.ScancodeUp)
		case cursorDown:
			return dec.press(userinput.ScancodeDown)
		case cursorForward:
			return dec.press(userinput.ScancodeRight)
		case cursorBackward:
			return dec.press(userinput.ScancodeLeft)
		}
		return nil
	}

	switch b {
	case keyEsc:
		dec.esc = 1
		return nil
	case keyInterrupt, keyQuit:
		return []userinput.Event{userinput.EventQuit{}}
	}

	if sc, ok := ScancodeFromByte(b); ok {
		return dec.press(sc)
	}

	return nil
}

// Flush completes any partial escape sequence. Should be called when no more
// bytes are immediately available. A lone escape byte is the escape key.
func (dec *Decoder) Flush() []userinput.Event {
	defer func() { dec.esc = 0 }()
	if dec.esc == 1 {
		return dec.press(userinput.ScancodeEscape)
	}
	return nil
}

func (dec *Decoder) press(sc userinput.Scancode) []userinput.Event {
	return []userinput.Event{userinput.EventKeyboard{Scancode: sc, Down: true}}
}

// releaser produces the release events that terminals do not report. A key
// pressed in one poll is released at the start of the next poll.
type releaser struct {
	pressed []userinput.Scancode
}

// events returns the release events for keys pressed in the previous poll,
// followed by the events for this poll. Keys pressed in this poll are noted
// for release in the next poll.
func (rel *releaser) events(evs []userinput.Event) []userinput.Event {
	out := make([]userinput.Event, 0, len(rel.pressed)+len(evs))
	for _, sc := range rel.pressed {
		out = append(out, userinput.EventKeyboard{Scancode: sc, Down: false})
	}
	rel.pressed = rel.pressed[:0]

	for _, ev := range evs {
		if kev, ok := ev.(userinput.EventKeyboard); ok && kev.Down {
			rel.pressed = append(rel.pressed, kev.Scancode)
		}
		out = append(out, ev)
	}

	return out
}
