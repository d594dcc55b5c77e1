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

// Package paths prepares the paths to padbind's resources: the saved input
// configurations and any debugging output.
//
// The ResourcePath() function returns the supplied file name prepended with
// the appropriate config directory. For example, the following returns the
// path to the saved input configurations.
//
//	pth, err := paths.ResourcePath("", "inputs.toml")
//
// For development builds the base path is ".padbind" in the current
// directory. For release builds (built with the "release" tag) the base path
// is "padbind" in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system that is:
//
//	/home/user/.config/padbind/inputs.toml
//
// Directories are created as required but the file is not.
package paths
