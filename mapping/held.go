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

package mapping

// Held is the set of physical keys currently held down. The zero value is an
// empty set ready for use.
type Held[K comparable] struct {
	keys map[K]struct{}
}

// Press adds the key to the set. Returns false if the key was already held.
func (h *Held[K]) Press(k K) bool {
	if h.keys == nil {
		h.keys = make(map[K]struct{})
	}
	if _, ok := h.keys[k]; ok {
		return false
	}
	h.keys[k] = struct{}{}
	return true
}

// Release removes the key from the set. Returns false if the key was not
// held.
func (h *Held[K]) Release(k K) bool {
	if _, ok := h.keys[k]; !ok {
		return false
	}
	delete(h.keys, k)
	return true
}

// Contains returns true if the key is held.
func (h Held[K]) Contains(k K) bool {
	_, ok := h.keys[k]
	return ok
}

// Len returns the number of held keys.
func (h Held[K]) Len() int {
	return len(h.keys)
}

// Keys returns the held keys. The order of the keys is unspecified.
func (h Held[K]) Keys() []K {
	ks := make([]K, 0, len(h.keys))
	for k := range h.keys {
		ks = append(ks, k)
	}
	return ks
}

// Clear releases all keys.
func (h *Held[K]) Clear() {
	clear(h.keys)
}

// Clone returns an independent copy of the set.
func (h Held[K]) Clone() Held[K] {
	c := Held[K]{}
	for k := range h.keys {
		c.Press(k)
	}
	return c
}

// First returns the first key in iteration order. This is not the order in
// which keys were pressed and may differ between calls. Returns false if no
// key is held.
func (h Held[K]) First() (K, bool) {
	for k := range h.keys {
		return k, true
	}
	var k K
	return k, false
}
