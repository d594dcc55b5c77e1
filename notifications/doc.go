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

// Package notifications allow communication from the input pipeline to the
// program using it. Changes that the user did not ask for, such as a player
// being moved to the default configuration because their gamepad was
// unplugged, should be presented to the user.
//
// Notifications are in addition to the log. The log records the same events
// but is not intended to be seen by the user during normal operation.
package notifications
