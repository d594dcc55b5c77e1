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

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nesbundler/padbind/inputs"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/userinput"
)

// loop runs one frame of the input pipeline for every tick. the control word
// of each player is written to the output when it changes. the loop ends when
// the context is done, the ticks channel is closed or the source produces a
// quit event.
func loop(ctx context.Context, src source, inp *inputs.Inputs, output io.Writer, ticks <-chan time.Time) {
	var prev [joypad.MaxPlayers]joypad.ControlWord

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
		}

		evs := src.Poll()
		inp.Frame(evs)

		for player, w := range inp.Joypads() {
			if w != prev[player] {
				fmt.Fprintf(output, "%s: %s\n", joypad.Player(player), w)
				prev[player] = w
			}
		}

		for _, ev := range evs {
			if _, ok := ev.(userinput.EventQuit); ok {
				return
			}
		}
	}
}
