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

package notifications

// Notice describes events that change the input configuration without
// instruction from the user.
type Notice string

// List of defined notifications.
const (
	// the selected configuration for a player is not connected and the
	// default configuration has been selected instead
	//
	// data: player, previous configuration name, new configuration name
	NotifyFallback Notice = "NotifyFallback"

	// a gamepad has been seen for the first time and a configuration has been
	// created for it
	//
	// data: configuration ID, configuration name
	NotifyNewConfiguration Notice = "NotifyNewConfiguration"
)

// Notify is implemented by anything that wants to receive notices. Errors
// returned by Notify are logged and otherwise ignored by the sender.
type Notify interface {
	Notify(notice Notice, data ...string) error
}
