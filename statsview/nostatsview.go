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


//go:build !statsview

package statsview

import (
	"context"

	"github.com/nesbundler/padbind/curated"
)

// Launch always fails in this build.
func Launch(_ context.Context, _ string) error {
	return curated.Errorf(Unavailable)
}

// Available returns false in this build.
func Available() bool {
	return false
}
