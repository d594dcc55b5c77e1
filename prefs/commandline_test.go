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
	"testing"

	"github.com/nesbundler/padbind/prefs"
	"github.com/nesbundler/padbind/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("inputs.fallback::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.fallback::false")

	// surrounding space is removed from keys and values
	prefs.PushCommandLineStack("   inputs.fallback:: false ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.fallback::false")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("inputs.stickdpad::true; inputs.fallback::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.fallback::false; inputs.stickdpad::true")

	// entries without a separator or a key are ignored
	prefs.PushCommandLineStack("inputs.fallback")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("::10;inputs.stickdeadzone::8000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.stickdeadzone::8000")

	// an empty value is still a value
	prefs.PushCommandLineStack("inputs.fallback::")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.fallback::")
}

func TestCommandLineGet(t *testing.T) {
	ok, _ := prefs.GetCommandLinePref("inputs.fallback")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("inputs.stickdeadzone::8000;inputs_fallback")

	ok, _ = prefs.GetCommandLinePref("inputs_fallback")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("inputs.stickdeadzone")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "8000")

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("inputs.stickdeadzone")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("inputs.fallback::false")
	prefs.PushCommandLineStack("inputs.fallback::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// values are taken from the most recent group only
	ok, v := prefs.GetCommandLinePref("inputs.fallback")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// first group is untouched
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "inputs.fallback::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
