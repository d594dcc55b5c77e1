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

package logger

// Permission is implemented by any type that can decide whether a log
// request should be honoured. The gamepads.Registry for example allows
// diagnostic messages only while it is enabled.
//
// A request made with a Permission that returns false is dropped silently.
type Permission interface {
	AllowLogging() bool
}

// the type of the Allow permission. the logger checks for this type before
// calling AllowLogging()
type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission for log entries that should always be made.
var Allow Permission = allow{}
