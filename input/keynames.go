package input

import "fmt"

// keyToName maps special Key constants to canonical config string names
var keyToName = map[Key]string{
	KeySpace:  "space",
	KeyPeriod: "period",

	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyClear:     "clear",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",

	KeyKP1: "kp_1",
	KeyKP2: "kp_2",
	KeyKP3: "kp_3",
	KeyKP4: "kp_4",
	KeyKP5: "kp_5",
	KeyKP6: "kp_6",
	KeyKP7: "kp_7",
	KeyKP8: "kp_8",
	KeyKP9: "kp_9",

	KeyLShift: "lshift",
	KeyRShift: "rshift",
	KeyLCtrl:  "lctrl",
	KeyRCtrl:  "rctrl",
	KeyLAlt:   "lalt",
	KeyRAlt:   "ralt",
}

var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, name := range keyToName {
		nameToKey[name] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
	nameToKey["return"] = KeyEnter
}

// KeyByName resolves a config key name
// Single characters resolve to their printable key
func KeyByName(name string) (Key, bool) {
	if k, ok := nameToKey[name]; ok {
		return k, true
	}
	r := []rune(name)
	if len(r) == 1 && r[0] > ' ' {
		return Key(r[0]), true
	}
	return KeyNone, false
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k.IsRune() {
		return string(k.Rune())
	}
	return fmt.Sprintf("key(%d)", int32(k))
}
