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

package configfile

import (
	"fmt"
	"strings"

	"github.com/nesbundler/padbind/curated"
	"github.com/nesbundler/padbind/inputs"
	"github.com/nesbundler/padbind/joypad"
	"github.com/nesbundler/padbind/userinput"

	"github.com/spf13/viper"
)

// Sentinel error patterns.
const (
	ReadError    = "configfile: read: %v"
	WriteError   = "configfile: write: %v"
	InvalidEntry = "configfile: %s: %s"
)

const configType = "toml"

// list of keys
const (
	keySelected       = "selected"
	keyDefault        = "default"
	keyConfigurations = "configurations"
)

// entry is a single configuration in the file. configurations are an array
// of tables rather than a table keyed by ID because viper folds the case of
// keys and IDs are case sensitive
type entry struct {
	ID      string            `mapstructure:"id"`
	Name    string            `mapstructure:"name"`
	Kind    string            `mapstructure:"kind"`
	Mapping map[string]string `mapstructure:"mapping"`
}

// Load reads the file and returns the decoded settings.
func Load(filename string) (inputs.Settings, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType(configType)

	err := v.ReadInConfig()
	if err != nil {
		return inputs.Settings{}, curated.Errorf(ReadError, err)
	}

	return decode(v)
}

// Save writes the settings to file, replacing the existing file.
func Save(filename string, s inputs.Settings) error {
	v := encode(s)

	err := v.WriteConfigAs(filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}

func encode(s inputs.Settings) *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)

	v.Set(keySelected, playerIDs(s.Selected))
	v.Set(keyDefault, playerIDs(s.Default))

	confs := make([]map[string]any, 0, len(s.Configurations))
	for _, conf := range s.Configurations {
		m := make(map[string]any)
		for _, b := range joypad.Buttons {
			switch conf.Kind {
			case inputs.KindKeyboard:
				if k, ok := conf.Keyboard.Get(b); ok {
					m[strings.ToLower(b.String())] = k.String()
				}
			case inputs.KindGamepad:
				if k, ok := conf.Gamepad.Get(b); ok {
					m[strings.ToLower(b.String())] = k.String()
				}
			}
		}

		confs = append(confs, map[string]any{
			"id":      string(conf.ID),
			"name":    conf.Name,
			"kind":    conf.Kind.String(),
			"mapping": m,
		})
	}
	v.Set(keyConfigurations, confs)

	return v
}

func playerIDs(ids [joypad.MaxPlayers]userinput.InputID) []string {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, string(id))
	}
	return s
}

func decode(v *viper.Viper) (inputs.Settings, error) {
	var s inputs.Settings
	var err error

	s.Selected, err = decodeIDs(v, keySelected)
	if err != nil {
		return inputs.Settings{}, err
	}
	s.Default, err = decodeIDs(v, keyDefault)
	if err != nil {
		return inputs.Settings{}, err
	}

	var entries []entry
	err = v.UnmarshalKey(keyConfigurations, &entries)
	if err != nil {
		return inputs.Settings{}, curated.Errorf(InvalidEntry, keyConfigurations, err)
	}

	for i, ent := range entries {
		conf, err := decodeConfiguration(i, ent)
		if err != nil {
			return inputs.Settings{}, err
		}
		s.Configurations = append(s.Configurations, conf)
	}

	return s, nil
}

func decodeIDs(v *viper.Viper, key string) ([joypad.MaxPlayers]userinput.InputID, error) {
	var ids [joypad.MaxPlayers]userinput.InputID

	s := v.GetStringSlice(key)
	if len(s) != joypad.MaxPlayers {
		return ids, curated.Errorf(InvalidEntry, key, "wrong number of players")
	}
	for i := range s {
		ids[i] = userinput.InputID(s[i])
	}

	return ids, nil
}

func decodeConfiguration(i int, ent entry) (inputs.Configuration, error) {
	key := fmt.Sprintf("%s[%d]", keyConfigurations, i)

	if ent.ID == "" {
		return inputs.Configuration{}, curated.Errorf(InvalidEntry, key, "missing id")
	}

	conf := inputs.Configuration{
		ID:   userinput.InputID(ent.ID),
		Name: ent.Name,
	}

	switch ent.Kind {
	case inputs.KindKeyboard.String():
		conf.Kind = inputs.KindKeyboard
	case inputs.KindGamepad.String():
		conf.Kind = inputs.KindGamepad
	default:
		return conf, curated.Errorf(InvalidEntry, key+".kind", ent.Kind)
	}

	for name, k := range ent.Mapping {
		b, ok := joypad.ParseButton(name)
		if !ok {
			return conf, curated.Errorf(InvalidEntry, key+".mapping", name)
		}

		switch conf.Kind {
		case inputs.KindKeyboard:
			sc, ok := userinput.ParseScancode(k)
			if !ok {
				return conf, curated.Errorf(InvalidEntry, key+".mapping."+name, k)
			}
			conf.Keyboard.Remap(b, sc)
		case inputs.KindGamepad:
			gb, ok := userinput.ParseGamepadButton(k)
			if !ok {
				return conf, curated.Errorf(InvalidEntry, key+".mapping."+name, k)
			}
			conf.Gamepad.Remap(b, gb)
		}
	}

	return conf, nil
}
