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

// Package sdlinput is the SDL implementation of the device event source. It
// translates SDL keyboard and game controller events into userinput events.
//
// The SDL subsystems are process wide. The Subsystem type is the handle to
// them: it is created once with NewSubsystem() and must be destroyed with
// Destroy() before the program ends. All functions must be called from the
// main thread.
package sdlinput

import (
	"runtime"

	"github.com/nesbundler/padbind/assert"
	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/inputs"
	"github.com/nesbundler/padbind/logger"
	"github.com/nesbundler/padbind/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// InitError is returned by NewSubsystem() when SDL cannot be initialised.
const InitError = "sdlinput: %v"

const windowTitle = "padbind"

// an open game controller and the state of its left thumbstick
type controller struct {
	pad   *sdl.GameController
	stick userinput.StickDirections
}

// Subsystem is the handle to the SDL game controller, joystick and event
// subsystems.
type Subsystem struct {
	flags  uint32
	window *sdl.Window

	// open controllers indexed by SDL instance ID. the instance ID is used as
	// the userinput.DeviceHandle
	controllers map[sdl.JoystickID]*controller

	// the goroutine that initialised SDL
	goroutine uint64
}

// NewSubsystem initialises SDL. If withWindow is true then a small window is
// opened. SDL only sends keyboard events to a window that has focus so
// keyboard input requires a window.
//
// Gamepads that are already connected are reported as
// userinput.EventGamepadAdded events on the first call to Poll().
func NewSubsystem(withWindow bool) (*Subsystem, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	sub := &Subsystem{
		flags:       sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS,
		controllers: make(map[sdl.JoystickID]*controller),
		goroutine:   assert.GetGoRoutineID(),
	}
	if withWindow {
		sub.flags |= sdl.INIT_VIDEO
	}

	err := sdl.InitSubSystem(sub.flags)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlinput", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	if withWindow {
		sub.window, err = sdl.CreateWindow(windowTitle,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 320, 120,
			sdl.WINDOW_SHOWN)
		if err != nil {
			sdl.QuitSubSystem(sub.flags)
			return nil, curated.Errorf(InitError, err)
		}
	}

	return sub, nil
}

// Destroy closes all open controllers and shuts down the SDL subsystems.
func (sub *Subsystem) Destroy() {
	for id, ctrl := range sub.controllers {
		ctrl.pad.Close()
		delete(sub.controllers, id)
	}

	if sub.window != nil {
		if err := sub.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdlinput", err)
		}
		sub.window = nil
	}

	sdl.QuitSubSystem(sub.flags)
	sdl.Quit()
}

// Poll drains the SDL event queue and returns the translated events in the
// order they were received. Poll does not block.
//
// If the StickDPad preference is true then the left thumbstick of a gamepad is
// reported as dpad button events, using the StickDeadzone preference.
func (sub *Subsystem) Poll(p *inputs.Preferences) []userinput.Event {
	if id := assert.GetGoRoutineID(); id != sub.goroutine {
		logger.Logf(logger.Allow, "sdlinput", "Poll() called from goroutine %d: SDL was initialised in goroutine %d", id, sub.goroutine)
	}

	var evs []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			evs = append(evs, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			evs = append(evs, userinput.EventKeyboard{
				Scancode: userinput.Scancode(ev.Keysym.Scancode),
				Down:     ev.Type == sdl.KEYDOWN,
			})

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// Which is the device index for added events
				if e, ok := sub.open(int(ev.Which)); ok {
					evs = append(evs, e)
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				// and the instance ID for removed events
				if e, ok := sub.close(ev.Which); ok {
					evs = append(evs, e)
				}
			}

		case *sdl.ControllerButtonEvent:
			button := translateButton(sdl.GameControllerButton(ev.Button))
			if button != userinput.GamepadButtonNone {
				evs = append(evs, userinput.EventGamepadButton{
					Handle: userinput.DeviceHandle(ev.Which),
					Button: button,
					Down:   ev.State == sdl.PRESSED,
				})
			}

		case *sdl.ControllerAxisEvent:
			if !p.StickDPad.Get().(bool) {
				continue
			}

			axis := sdl.GameControllerAxis(ev.Axis)
			if axis != sdl.CONTROLLER_AXIS_LEFTX && axis != sdl.CONTROLLER_AXIS_LEFTY {
				continue
			}

			ctrl, ok := sub.controllers[ev.Which]
			if !ok {
				continue
			}

			dirs := userinput.StickToDPad(
				ctrl.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX),
				ctrl.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY),
				p.StickDeadzone.Get().(int))

			for _, e := range dirs.Transitions(ctrl.stick, userinput.DeviceHandle(ev.Which)) {
				evs = append(evs, e)
			}
			ctrl.stick = dirs
		}
	}

	return evs
}

func (sub *Subsystem) open(index int) (userinput.EventGamepadAdded, bool) {
	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		logger.Logf(logger.Allow, "sdlinput", "cannot open game controller at index %d", index)
		return userinput.EventGamepadAdded{}, false
	}

	joy := pad.Joystick()
	id := joy.InstanceID()
	if _, ok := sub.controllers[id]; ok {
		// already open. SDL returns the same controller for the same device
		return userinput.EventGamepadAdded{}, false
	}
	sub.controllers[id] = &controller{pad: pad}

	ev := userinput.EventGamepadAdded{
		Handle: userinput.DeviceHandle(id),
		GUID:   sdl.JoystickGetGUIDString(joy.GUID()),
		Name:   pad.Name(),
	}
	logger.Logf(logger.Allow, "sdlinput", "gamepad: %s (%s)", ev.Name, ev.GUID)

	return ev, true
}

func (sub *Subsystem) close(id sdl.JoystickID) (userinput.EventGamepadRemoved, bool) {
	ctrl, ok := sub.controllers[id]
	if !ok {
		return userinput.EventGamepadRemoved{}, false
	}
	ctrl.pad.Close()
	delete(sub.controllers, id)

	return userinput.EventGamepadRemoved{
		Handle: userinput.DeviceHandle(id),
	}, true
}

func translateButton(b sdl.GameControllerButton) userinput.GamepadButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_A:
		return userinput.GamepadButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return userinput.GamepadButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return userinput.GamepadButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return userinput.GamepadButtonY
	case sdl.CONTROLLER_BUTTON_BACK:
		return userinput.GamepadButtonBack
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return userinput.GamepadButtonGuide
	case sdl.CONTROLLER_BUTTON_START:
		return userinput.GamepadButtonStart
	case sdl.CONTROLLER_BUTTON_LEFTSTICK:
		return userinput.GamepadButtonLeftStick
	case sdl.CONTROLLER_BUTTON_RIGHTSTICK:
		return userinput.GamepadButtonRightStick
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return userinput.GamepadButtonLeftShoulder
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return userinput.GamepadButtonRightShoulder
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return userinput.GamepadButtonDPadUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return userinput.GamepadButtonDPadDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return userinput.GamepadButtonDPadLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return userinput.GamepadButtonDPadRight
	}
	return userinput.GamepadButtonNone
}
