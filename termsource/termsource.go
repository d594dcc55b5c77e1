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

//go:build linux

package termsource

import (
	"os"

	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/logger"
	"github.com/nesbundler/padbind/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermiosError is returned by NewSource() and Close() when the terminal
// attributes cannot be read or written.
const TermiosError = "termsource: %v"

// the number of bytes that can be read ahead of a call to Poll()
const readAhead = 64

// Source reads key presses from a terminal.
type Source struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	bytes chan byte
	dec   Decoder
	rel   releaser
}

// NewSource puts the terminal attached to input into cbreak mode and starts
// reading from it. The terminal is returned to canonical mode by Close().
func NewSource(input *os.File) (*Source, error) {
	src := &Source{
		input: input,
		bytes: make(chan byte, readAhead),
	}

	if err := termios.Tcgetattr(src.input.Fd(), &src.canAttr); err != nil {
		return nil, curated.Errorf(TermiosError, err)
	}

	src.cbreakAttr = src.canAttr
	termios.Cfmakecbreak(&src.cbreakAttr)

	if err := termios.Tcsetattr(src.input.Fd(), termios.TCIFLUSH, &src.cbreakAttr); err != nil {
		return nil, curated.Errorf(TermiosError, err)
	}

	go src.read()

	return src, nil
}

// read bytes until the input is closed. the goroutine is not stopped by
// Close(). a blocking read cannot be interrupted and the goroutine ends with
// the program
func (src *Source) read() {
	b := make([]byte, 1)
	for {
		n, err := src.input.Read(b)
		if err != nil {
			logger.Log(logger.Allow, "termsource", err)
			close(src.bytes)
			return
		}
		if n > 0 {
			src.bytes <- b[0]
		}
	}
}

// Close returns the terminal to canonical mode.
func (src *Source) Close() error {
	if err := termios.Tcsetattr(src.input.Fd(), termios.TCIFLUSH, &src.canAttr); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	return nil
}

// Poll returns the events for the bytes read since the previous call to
// Poll(). Poll does not block.
//
// If the input has been closed then a userinput.EventQuit is returned.
func (src *Source) Poll() []userinput.Event {
	var evs []userinput.Event

	for {
		select {
		case b, ok := <-src.bytes:
			if !ok {
				evs = append(evs, src.dec.Flush()...)
				evs = append(evs, userinput.EventQuit{})
				return src.rel.events(evs)
			}
			evs = append(evs, src.dec.Feed(b)...)
		default:
			evs = append(evs, src.dec.Flush()...)
			return src.rel.events(evs)
		}
	}
}
