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

//go:build !linux

package termsource

import (
	"os"

	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/userinput"
)

// Source is not available on this platform.
type Source struct{}

// NewSource always returns the Unsupported error on this platform.
func NewSource(_ *os.File) (*Source, error) {
	return nil, curated.Errorf(Unsupported)
}

// Close does nothing on this platform.
func (src *Source) Close() error {
	return nil
}

// Poll returns no events on this platform.
func (src *Source) Poll() []userinput.Event {
	return nil
}
