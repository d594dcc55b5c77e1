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

package inputs

import (
	"fmt"

	"github.com/nesbundler/padbind/prefs"
	"github.com/nesbundler/padbind/userinput"
)

// Preferences for the input system.
type Preferences struct {
	col *prefs.Collection

	// gamepad button events are ignored if Gamepads is false
	Gamepads prefs.Bool

	// the left thumbstick of a gamepad is reported as the dpad
	StickDPad     prefs.Bool
	StickDeadzone prefs.Int

	// fallback to the default configuration when the selected configuration
	// is disconnected
	Fallback prefs.Bool
}

func (p *Preferences) String() string {
	return p.col.String()
}

// maximum value of a thumbstick axis
const maxStickDeadzone = 32767

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values in the current command line group are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.StickDeadzone.SetHookPre(func(v prefs.Value) error {
		if dz := v.(int); dz < 0 || dz > maxStickDeadzone {
			return fmt.Errorf("stick deadzone must be between 0 and %d", maxStickDeadzone)
		}
		return nil
	})

	p.SetDefaults()

	p.col = prefs.NewCollection()
	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"inputs.gamepads", &p.Gamepads},
		{"inputs.stickdpad", &p.StickDPad},
		{"inputs.stickdeadzone", &p.StickDeadzone},
		{"inputs.fallback", &p.Fallback},
	} {
		if err := p.col.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.col.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Gamepads.Set(true)
	p.StickDPad.Set(true)
	p.StickDeadzone.Set(userinput.StickDeadzone)
	p.Fallback.Set(true)
}
