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


// Package gamepads tracks connected gamepads and the buttons held on them.
//
// Each gamepad is identified by a userinput.InputID that is derived from the
// GUID reported by the device API. The same gamepad reconnecting is given
// the same InputID, so long as it is the only gamepad with that GUID or
// identical gamepads are connected in the same order. The DeviceHandle
// reported by the device API is only used to route events to the correct
// gamepad during a single connection.
package gamepads
