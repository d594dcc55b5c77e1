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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack. each group is a map of preference keys to the
// value given on the command line
var commandLine struct {
	crit   sync.Mutex
	groups []map[string]Value
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.groups)
}

// PushCommandLineStack parses a command line and adds it as a new group. The
// format of the string is a list of key/value pairs separated by semi-colons:
//
//	inputs.stickdeadzone::8000; inputs.fallback::false
//
// Entries without the "::" separator are ignored, as are entries with an
// empty key.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, entry := range strings.Split(prefs, ";") {
		key, value, ok := strings.Cut(entry, "::")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		group[key] = strings.TrimSpace(value)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.groups = append(commandLine.groups, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the preferences in the group that have not been taken with
// GetCommandLinePref(), in the same format as accepted by
// PushCommandLineStack() and sorted by key. A non-empty string usually
// indicates a mistyped preference key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.groups) == 0 {
		return ""
	}

	top := len(commandLine.groups) - 1
	group := commandLine.groups[top]
	commandLine.groups = commandLine.groups[:top]

	unused := make([]string, 0, len(group))
	for key, value := range group {
		unused = append(unused, fmt.Sprintf("%s::%v", key, value))
	}
	sort.Strings(unused)

	return strings.Join(unused, "; ")
}

// GetCommandLinePref takes the value for the key from the most recent group.
// A value can only be taken once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.groups) == 0 {
		return false, nil
	}

	group := commandLine.groups[len(commandLine.groups)-1]
	v, ok := group[key]
	if !ok {
		return false, nil
	}
	delete(group, key)

	return true, v
}
