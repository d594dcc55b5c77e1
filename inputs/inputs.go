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

package inputs

import (
	"io"
	"sort"

	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/gamepads"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/keyboard"
	"github.com/nesbundler/padbind/logger"
	"github.com/nesbundler/padbind/notifications"
	"github.com/nesbundler/padbind/prefs"
	"github.com/nesbundler/padbind/userinput"

	"github.com/bradleyjkemp/memviz"
)

// Sentinel errors.
const (
	UnknownConfiguration   = "inputs: unknown configuration: %s"
	InvalidPlayer          = "inputs: invalid player: %d"
	DuplicateConfiguration = "inputs: duplicate configuration: %s"
	DefaultNotKeyboard     = "inputs: default configuration for %s is not a keyboard: %s"
	InvalidKind            = "inputs: configuration %s has an invalid kind: %d"
)

// enabler is implemented by gamepad backends that can be enabled and
// disabled. gamepads.Registry implements this interface.
type enabler interface {
	SetEnabled(bool)
}

// Inputs is the input pipeline. It owns the configuration registry, the
// keyboard state and the selection of configuration for each player.
//
// All functions must be called from the same goroutine. The simulation and
// the remap interface read the results of Update() between calls to Update().
type Inputs struct {
	Prefs *Preferences

	kb   keyboard.Keyboard
	pads gamepads.Backend

	backends map[Kind]backend

	confs map[userinput.InputID]*Configuration

	// the selection and default for each player are referenced by InputID
	// and are looked up in the confs map when required
	selected [joypad.MaxPlayers]userinput.InputID
	defaults [joypad.MaxPlayers]userinput.InputID

	// the result of the most recent Update()
	joypads [joypad.MaxPlayers]joypad.ControlWord

	// receives notices about changes made by Update(). can be nil
	notify notifications.Notify
}

// SetNotify sets the receiver of notices about changes that Update() makes
// without instruction from the user. A nil value stops notices being sent.
func (inp *Inputs) SetNotify(notify notifications.Notify) {
	inp.notify = notify
}

func (inp *Inputs) sendNotice(notice notifications.Notice, data ...string) {
	if inp.notify == nil {
		return
	}
	if err := inp.notify.Notify(notice, data...); err != nil {
		logger.Log(logger.Allow, "inputs", err)
	}
}

// NewInputs is the preferred method of initialisation for the Inputs type.
//
// The gamepads argument can be nil, in which case a new gamepads.Registry is
// used. Likewise, the preferences argument can be nil.
//
// The settings are validated: configuration IDs must be unique and the
// default configuration for each player must exist and must be a keyboard
// configuration. A selected configuration that doesn't exist is replaced by
// the default for that player.
func NewInputs(pads gamepads.Backend, settings Settings, p *Preferences) (*Inputs, error) {
	if pads == nil {
		pads = gamepads.NewRegistry()
	}

	if p == nil {
		var err error
		p, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("inputs: %v", err)
		}
	}

	inp := &Inputs{
		Prefs: p,
		pads:  pads,
		confs: make(map[userinput.InputID]*Configuration),
	}

	inp.backends = map[Kind]backend{
		KindKeyboard: keyboardBackend{kb: &inp.kb},
		KindGamepad:  gamepadBackend{pads: inp.pads},
	}

	for _, conf := range settings.Configurations {
		if _, ok := inp.confs[conf.ID]; ok {
			return nil, curated.Errorf(DuplicateConfiguration, conf.ID)
		}
		if _, ok := inp.backends[conf.Kind]; !ok {
			return nil, curated.Errorf(InvalidKind, conf.ID, conf.Kind)
		}
		c := conf
		inp.confs[conf.ID] = &c
	}

	for i := range inp.defaults {
		player := joypad.Player(i)
		id := settings.Default[i]
		conf, ok := inp.confs[id]
		if !ok {
			return nil, curated.Errorf(UnknownConfiguration, id)
		}
		if conf.Kind != KindKeyboard {
			return nil, curated.Errorf(DefaultNotKeyboard, player, id)
		}
		inp.defaults[i] = id

		id = settings.Selected[i]
		if _, ok := inp.confs[id]; !ok {
			logger.Logf(logger.Allow, "inputs", "%s: selected configuration (%s) not found: using %s", player, id, inp.defaults[i])
			id = inp.defaults[i]
		}
		inp.selected[i] = id
	}

	// gamepad preference is pushed to the gamepad backend if possible
	if e, ok := inp.pads.(enabler); ok {
		inp.Prefs.Gamepads.SetHookPost(func(v prefs.Value) error {
			e.SetEnabled(v.(bool))
			return nil
		})
		e.SetEnabled(inp.Prefs.Gamepads.Get().(bool))
	}

	return inp, nil
}

func (inp *Inputs) backend(conf *Configuration) backend {
	if bk, ok := inp.backends[conf.Kind]; ok {
		return bk
	}
	return nullBackend{}
}

// Advance applies the event to the keyboard or gamepad backend. Events that
// are not for either backend, including userinput.EventQuit, are ignored.
//
// Advance is the only function that changes the held keys and buttons.
func (inp *Inputs) Advance(ev userinput.Event) {
	if inp.kb.Advance(ev) {
		return
	}
	inp.pads.Advance(ev)
}

// Update should be called once per frame, after all events for the frame have
// been applied with Advance(). The control word for each player is resolved
// and can be read with GetJoypad() until the next call to Update().
//
// Gamepads that have not been seen before are given a configuration. If the
// configuration selected for a player is not connected then the selection is
// changed to the default for that player, so long as the Fallback preference
// is true.
func (inp *Inputs) Update() {
	for _, dev := range inp.pads.Devices() {
		if _, ok := inp.confs[dev.ID]; ok {
			continue
		}
		conf := NewGamepadConfiguration(dev.ID, dev.Name)
		inp.confs[dev.ID] = &conf
		logger.Logf(logger.Allow, "inputs", "new configuration: %s [%s]", conf.Name, conf.ID)
		inp.sendNotice(notifications.NotifyNewConfiguration, string(conf.ID), conf.Name)
	}

	fallback := inp.Prefs.Fallback.Get().(bool)

	for i := range inp.selected {
		conf, ok := inp.confs[inp.selected[i]]
		if !ok || (fallback && !inp.backend(conf).isConnected(conf)) {
			logger.Logf(logger.Allow, "inputs", "%s: %s is not available: using %s",
				joypad.Player(i), inp.selected[i], inp.defaults[i])
			prev := string(inp.selected[i])
			if ok {
				prev = conf.Name
			}
			inp.selected[i] = inp.defaults[i]
			conf = inp.confs[inp.selected[i]]
			inp.sendNotice(notifications.NotifyFallback, joypad.Player(i).String(), prev, conf.Name)
		}
		inp.joypads[i] = inp.backend(conf).controlWord(conf)
	}
}

// Frame applies all events in order and then calls Update().
func (inp *Inputs) Frame(events []userinput.Event) {
	for _, ev := range events {
		inp.Advance(ev)
	}
	inp.Update()
}

// GetJoypad returns the control word for the player as resolved by the most
// recent call to Update(). An invalid player returns zero.
func (inp *Inputs) GetJoypad(player joypad.Player) joypad.ControlWord {
	if !player.Valid() {
		return 0
	}
	return inp.joypads[player]
}

// Joypads returns the control words for all players as resolved by the most
// recent call to Update().
func (inp *Inputs) Joypads() [joypad.MaxPlayers]joypad.ControlWord {
	return inp.joypads
}

// IsConnected returns true if the device for the configuration is connected.
// Keyboard configurations are always connected. Returns false for an unknown
// configuration.
func (inp *Inputs) IsConnected(id userinput.InputID) bool {
	conf, ok := inp.confs[id]
	if !ok {
		return false
	}
	return inp.backend(conf).isConnected(conf)
}

// DefaultConf returns a copy of the default configuration for the player.
// Returns nil for an invalid player.
func (inp *Inputs) DefaultConf(player joypad.Player) *Configuration {
	if !player.Valid() {
		return nil
	}
	return inp.confs[inp.defaults[player]].copy()
}

// Selected returns a copy of the configuration selected for the player.
// Returns nil for an invalid player.
func (inp *Inputs) Selected(player joypad.Player) *Configuration {
	if !player.Valid() {
		return nil
	}
	return inp.confs[inp.selected[player]].copy()
}

// Select the configuration for the player. The change is seen in the control
// word after the next call to Update().
//
// A configuration that is not connected can be selected but will be replaced
// by the default on the next Update() if the Fallback preference is true.
func (inp *Inputs) Select(player joypad.Player, id userinput.InputID) error {
	if !player.Valid() {
		return curated.Errorf(InvalidPlayer, int(player))
	}
	if _, ok := inp.confs[id]; !ok {
		return curated.Errorf(UnknownConfiguration, id)
	}
	if inp.selected[player] != id {
		logger.Logf(logger.Allow, "inputs", "%s: selected %s", player, id)
	}
	inp.selected[player] = id
	return nil
}

// RemapConfiguration binds whatever key or button is currently held on the
// device of the configuration to the joypad button. This is the press-to-bind
// operation used by a remap interface: the user is prompted to hold a key and the
// function is called.
//
// For keyboard configurations, if more than one key is held then the key used
// is the first in iteration order of the held keys, which is unspecified.
//
// Returns false and leaves the configuration unchanged if nothing is held, if
// the device is not connected, if the button is invalid or if the
// configuration is unknown.
func (inp *Inputs) RemapConfiguration(id userinput.InputID, b joypad.Button) bool {
	conf, ok := inp.confs[id]
	if !ok || !b.Valid() {
		return false
	}
	if !inp.backend(conf).remap(conf, b) {
		return false
	}
	logger.Logf(logger.Allow, "inputs", "remapped %s in %s", b, id)
	return true
}

// Configuration returns a copy of the configuration with the InputID.
// Changing the copy does not change the configuration. Use
// RemapConfiguration() to change a mapping.
func (inp *Inputs) Configuration(id userinput.InputID) (*Configuration, bool) {
	conf, ok := inp.confs[id]
	if !ok {
		return nil, false
	}
	return conf.copy(), true
}

// Configurations returns a copy of all configurations, ordered by InputID.
func (inp *Inputs) Configurations() []Configuration {
	confs := make([]Configuration, 0, len(inp.confs))
	for _, conf := range inp.confs {
		confs = append(confs, *conf)
	}
	sort.Slice(confs, func(i, j int) bool { return confs[i].ID < confs[j].ID })
	return confs
}

// RemoveConfiguration deletes a gamepad configuration whose device is not
// connected. The gamepad backend forgets the device too. Any player with the
// configuration selected is given the default configuration.
//
// Keyboard configurations cannot be removed. Returns false if the
// configuration was not removed.
func (inp *Inputs) RemoveConfiguration(id userinput.InputID) bool {
	conf, ok := inp.confs[id]
	if !ok || conf.Kind == KindKeyboard || inp.backend(conf).isConnected(conf) {
		return false
	}

	delete(inp.confs, id)
	inp.pads.Forget(id)

	for i := range inp.selected {
		if inp.selected[i] == id {
			inp.selected[i] = inp.defaults[i]
		}
	}

	logger.Logf(logger.Allow, "inputs", "removed configuration: %s [%s]", conf.Name, id)
	return true
}

// Settings returns the current state of the registry for saving by an
// external settings store.
func (inp *Inputs) Settings() Settings {
	return Settings{
		Configurations: inp.Configurations(),
		Selected:       inp.selected,
		Default:        inp.defaults,
	}
}

// Memviz writes a graphviz representation of the pipeline state to the
// writer.
func (inp *Inputs) Memviz(w io.Writer) {
	state := struct {
		Settings Settings
		Devices  []gamepads.DeviceState
		Keyboard []userinput.Scancode
		Joypads  [joypad.MaxPlayers]joypad.ControlWord
	}{
		Settings: inp.Settings(),
		Devices:  inp.pads.Devices(),
		Keyboard: inp.kb.Held(),
		Joypads:  inp.joypads,
	}
	memviz.Map(w, &state)
}
