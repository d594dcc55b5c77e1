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


// Package userinput defines the events that physical input devices produce
// and the vocabularies used to name keys and buttons on those devices.
//
// It can be thought of as a translation layer between the device
// implementation and the input pipeline. Device event sources (the sdlinput
// and termsource packages) produce Event values and the inputs package
// consumes them. This package hides the details of the device implementation
// from the pipeline.
//
// The device implementation in use during development was SDL and so there
// will be a bias towards that system. Scancode values follow the USB HID
// usage numbering, which is also what SDL uses, and GamepadButton values
// follow the SDL game controller button order.
package userinput
