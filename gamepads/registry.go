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

package gamepads

import (
	"fmt"
	"sort"

	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/logger"
	"github.com/nesbundler/padbind/mapping"
	"github.com/nesbundler/padbind/userinput"

	"github.com/google/uuid"
)

// namespace for name based UUIDs of gamepads
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("padbind/gamepads"))

// InputIDFromGUID returns the InputID for the nth simultaneously connected
// gamepad with the GUID. The first gamepad with a GUID is n=0.
func InputIDFromGUID(guid string, n int) userinput.InputID {
	u := uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s/%d", guid, n)))
	return userinput.InputID("gamepad-" + u.String())
}

type device struct {
	id   userinput.InputID
	guid string
	name string

	handle    userinput.DeviceHandle
	connected bool

	// buttons held on the gamepad and dpad directions asserted by the
	// thumbstick. the two sets are independent and a dpad direction is held
	// while either of them has it
	held  mapping.Held[userinput.GamepadButton]
	stick mapping.Held[userinput.GamepadButton]
}

func (dev *device) pressed() mapping.Held[userinput.GamepadButton] {
	if dev.stick.Len() == 0 {
		return dev.held
	}
	p := dev.held.Clone()
	for _, b := range dev.stick.Keys() {
		p.Press(b)
	}
	return p
}

func (dev *device) clear() {
	dev.held.Clear()
	dev.stick.Clear()
}

func (dev *device) state() DeviceState {
	st := DeviceState{
		ID:        dev.id,
		GUID:      dev.guid,
		Name:      dev.name,
		Handle:    dev.handle,
		Connected: dev.connected,
		Held:      dev.pressed().Keys(),
	}
	sort.Slice(st.Held, func(i, j int) bool { return st.Held[i] < st.Held[j] })
	return st
}

// Registry implements the Backend interface from the stream of device
// events.
//
// Every gamepad that has been seen has an entry in the registry. An entry
// remains after the gamepad is disconnected so that it can be recovered if
// the gamepad reconnects. At most one connected session exists for an
// InputID at any one time.
type Registry struct {
	devices map[userinput.InputID]*device

	// the InputID for the handle of every connected gamepad
	handles map[userinput.DeviceHandle]userinput.InputID

	// button events are ignored when enabled is false
	enabled bool
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[userinput.InputID]*device),
		handles: make(map[userinput.DeviceHandle]userinput.InputID),
		enabled: true,
	}
}

// SetEnabled sets whether gamepad button events are processed. Disabling the
// registry releases all held buttons. Connection events are always processed.
func (reg *Registry) SetEnabled(enabled bool) {
	reg.enabled = enabled
	if !enabled {
		for _, dev := range reg.devices {
			dev.clear()
		}
	}
}

// Advance implements the Backend interface.
func (reg *Registry) Advance(ev userinput.Event) bool {
	switch ev := ev.(type) {
	case userinput.EventGamepadAdded:
		reg.added(ev)
	case userinput.EventGamepadRemoved:
		reg.removed(ev)
	case userinput.EventGamepadButton:
		reg.button(ev)
	default:
		return false
	}
	return true
}

// AllowLogging implements the logger.Permission interface. Diagnostic
// messages about ignored events are not logged while the registry is
// disabled.
func (reg *Registry) AllowLogging() bool {
	return reg.enabled
}

func (reg *Registry) added(ev userinput.EventGamepadAdded) {
	if id, ok := reg.handles[ev.Handle]; ok {
		logger.Logf(reg, "gamepads", "ignoring repeated connection for handle %d [%s]", ev.Handle, id)
		return
	}

	// the first InputID for the GUID that is not currently connected. a
	// gamepad reconnecting will be given the InputID it had before, so long
	// as the order of connection of identical gamepads is the same
	var id userinput.InputID
	for n := 0; ; n++ {
		id = InputIDFromGUID(ev.GUID, n)
		if dev, ok := reg.devices[id]; !ok || !dev.connected {
			break
		}
	}

	dev, ok := reg.devices[id]
	if ok {
		logger.Logf(logger.Allow, "gamepads", "reconnected: %s [%s]", ev.Name, id)
	} else {
		dev = &device{
			id:   id,
			guid: ev.GUID,
		}
		reg.devices[id] = dev
		logger.Logf(logger.Allow, "gamepads", "connected: %s [%s]", ev.Name, id)
	}

	dev.name = ev.Name
	dev.handle = ev.Handle
	dev.connected = true
	dev.clear()
	reg.handles[ev.Handle] = id
}

func (reg *Registry) removed(ev userinput.EventGamepadRemoved) {
	id, ok := reg.handles[ev.Handle]
	if !ok {
		return
	}
	delete(reg.handles, ev.Handle)

	dev := reg.devices[id]
	dev.connected = false
	dev.handle = 0
	dev.clear()
	logger.Logf(logger.Allow, "gamepads", "disconnected: %s [%s]", dev.name, id)
}

func (reg *Registry) button(ev userinput.EventGamepadButton) {
	if !reg.enabled || !ev.Button.Valid() {
		return
	}

	// events for unknown handles are ignored. they can occur during the
	// teardown of a device
	id, ok := reg.handles[ev.Handle]
	if !ok {
		logger.Logf(reg, "gamepads", "ignoring %s event for unknown handle %d", ev.Button, ev.Handle)
		return
	}

	dev := reg.devices[id]
	held := &dev.held
	if ev.Stick {
		held = &dev.stick
	}
	if ev.Down {
		held.Press(ev.Button)
	} else {
		held.Release(ev.Button)
	}
}

// ControlWord implements the Backend interface.
func (reg *Registry) ControlWord(id userinput.InputID, t mapping.Table[userinput.GamepadButton]) joypad.ControlWord {
	dev, ok := reg.devices[id]
	if !ok || !dev.connected {
		return t.Resolve(mapping.Held[userinput.GamepadButton]{})
	}
	return t.Resolve(dev.pressed())
}

// GamepadByInputID implements the Backend interface.
func (reg *Registry) GamepadByInputID(id userinput.InputID) (DeviceState, bool) {
	dev, ok := reg.devices[id]
	if !ok {
		return DeviceState{}, false
	}
	return dev.state(), true
}

// IsConnected implements the Backend interface.
func (reg *Registry) IsConnected(id userinput.InputID) bool {
	dev, ok := reg.devices[id]
	return ok && dev.connected
}

// Devices implements the Backend interface.
func (reg *Registry) Devices() []DeviceState {
	devs := make([]DeviceState, 0, len(reg.devices))
	for _, dev := range reg.devices {
		devs = append(devs, dev.state())
	}
	sort.Slice(devs, func(i, j int) bool { return devs[i].ID < devs[j].ID })
	return devs
}

// Forget implements the Backend interface.
func (reg *Registry) Forget(id userinput.InputID) bool {
	dev, ok := reg.devices[id]
	if !ok || dev.connected {
		return false
	}
	delete(reg.devices, id)
	logger.Logf(logger.Allow, "gamepads", "forgotten: %s [%s]", dev.name, id)
	return true
}
