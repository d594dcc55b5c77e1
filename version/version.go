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

// Package version reports the version of padbind. The version number is set
// by the linker for release builds:
//
//	go build -tags release -ldflags "-X github.com/nesbundler/padbind/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded by the go
// tool, if there is any.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "padbind"

// if number is empty then the project was probably not built using the
// release ldflags
var number string

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// version contains the current version number of the project
//
// If the version string is "unreleased" then it means that the project has
// been manually built (ie. without the release ldflags)
//
// If the version string is "local" then it means that there is no version
// number and no vcs information. This can happen when compiling/running with
// "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name, version and, for non-release
// versions, the revision.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	revision = describe(vcsRevision, vcsModified)
	version = numbered(number, vcs)
}

func describe(vcsRevision string, vcsModified bool) string {
	if vcsRevision == "" {
		return "no revision information"
	}
	if vcsModified {
		return fmt.Sprintf("%s+dirty", vcsRevision)
	}
	return vcsRevision
}

func numbered(number string, vcs bool) string {
	if number != "" {
		return number
	}
	if vcs {
		return "unreleased"
	}
	return "local"
}
