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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/nesbundler/padbind/prefs"
	"github.com/nesbundler/padbind/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(10000))
	test.ExpectEquality(t, v.String(), "10000")

	test.ExpectSuccess(t, v.Set(" 8000 "))
	test.ExpectEquality(t, v.Get().(int), 8000)

	test.ExpectFailure(t, v.Set("eight thousand"))
	test.ExpectEquality(t, v.Get().(int), 8000)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("00-keyboard-1"))
	test.ExpectEquality(t, v.Get().(string), "00-keyboard-1")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	// the pre hook refuses negative values. the stored value is not changed
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, post, 100)

	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, post, 100)
}

func TestCollection(t *testing.T) {
	var deadzone prefs.Int
	var fallback prefs.Bool

	c := prefs.NewCollection()
	test.ExpectSuccess(t, c.Add("inputs.stickdeadzone", &deadzone))
	test.ExpectSuccess(t, c.Add("inputs.fallback", &fallback))
	test.ExpectFailure(t, c.Add("inputs.fallback", &fallback))

	prefs.PushCommandLineStack("inputs.stickdeadzone::8000; unused::true")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, deadzone.Get().(int), 8000)

	// only the unused entry remains in the command line group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")

	test.ExpectEquality(t, c.String(), "inputs.fallback::false\ninputs.stickdeadzone::8000\n")

	p, ok := c.Get("inputs.fallback")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p.String(), "false")
}
