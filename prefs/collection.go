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
)

// Collection is a set of keyed preference values. Values are added with Add()
// and can then be set from the command line stack with ApplyCommandLine().
//
// Writing the collection to disk is the job of the caller. The String()
// function produces one "key::value" line per entry, in key order.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the collection under the key.
func (c *Collection) Add(key string, p Pref) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key already in collection: %s", key)
	}
	c.entries[key] = p
	return nil
}

// Get the preference value for the key.
func (c *Collection) Get(key string) (Pref, bool) {
	p, ok := c.entries[key]
	return p, ok
}

func (c *Collection) keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyCommandLine sets any value in the collection that is present in the
// current command line group. Values used are removed from the group.
func (c *Collection) ApplyCommandLine() error {
	for _, k := range c.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := c.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

func (c *Collection) String() string {
	s := strings.Builder{}
	for _, k := range c.keys() {
		s.WriteString(fmt.Sprintf("%s::%s\n", k, c.entries[k].String()))
	}
	return s.String()
}
