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

package paths

import (
	"os"
	"path/filepath"

	"github.com/nesbundler/padbind/curated"
)

// PathError is returned by ResourcePath() when the directory for the
// resource cannot be created.
const PathError = "paths: %v"

// ResourcePath returns the path to the file in the sub-directory of the
// base path. Either argument can be empty. The sub-directory is created if
// it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return filepath.Join(pth, file), nil
}
