package input

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// LoadKeyConfig parses TOML keymap data and applies it on top of base
// Sections: [main] binds directions, "wait" and commands; [history] binds cursor moves
// The value "none" unbinds a key. base is never modified
// Returns error on unknown sections, binding names, key names, or parse failure
func LoadKeyConfig(base *KeyTable, data []byte) (*KeyTable, error) {
	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := base.Clone()

	for section, bindings := range raw {
		var apply func(Key, string) error
		switch section {
		case "main":
			apply = kt.bindMain
		case "history":
			apply = kt.bindHistory
		default:
			return nil, fmt.Errorf("keymap: unknown section [%s]", section)
		}

		// Sorted for deterministic error reporting
		keys := make([]string, 0, len(bindings))
		for keyStr := range bindings {
			keys = append(keys, keyStr)
		}
		sort.Strings(keys)

		for _, keyStr := range keys {
			k, ok := KeyByName(keyStr)
			if !ok {
				return nil, fmt.Errorf("[%s] unknown key %q", section, keyStr)
			}
			if err := apply(k, bindings[keyStr]); err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
			}
		}
	}

	return kt, nil
}

func (kt *KeyTable) bindMain(k Key, name string) error {
	kt.unbindMain(k)
	if name == bindingNone {
		return nil
	}
	if name == bindingWait {
		kt.Wait[k] = true
		return nil
	}
	if d, ok := moveNames[name]; ok {
		kt.Move[k] = d
		return nil
	}
	if c, ok := commandNames[name]; ok {
		kt.Commands[k] = c
		return nil
	}
	return fmt.Errorf("unknown binding %q", name)
}

func (kt *KeyTable) bindHistory(k Key, name string) error {
	kt.unbindHistory(k)
	if name == bindingNone {
		return nil
	}
	if d, ok := cursorNames[name]; ok {
		kt.Cursor[k] = d
		return nil
	}
	if j, ok := jumpNames[name]; ok {
		kt.Jumps[k] = j
		return nil
	}
	return fmt.Errorf("unknown binding %q", name)
}
