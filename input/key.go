package input

// Key identifies a physical key independent of the backend that reported it
// Printable keys use their rune value, so letters form a contiguous range starting at KeyA
type Key int32

const KeyNone Key = 0

// Printable keys
const (
	KeySpace  Key = ' '
	KeyPeriod Key = '.'
)

const (
	KeyA Key = 'a' + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// keySpecial is the first non-printable key value, above any rune
const keySpecial Key = 1 << 30

// Special keys
const (
	KeyUp Key = keySpecial + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyClear
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	// Numpad
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9

	// Standalone modifiers, reported only by backends that see raw scancodes
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
)

// IsRune reports whether k is a printable key
func (k Key) IsRune() bool {
	return k > 0 && k < keySpecial
}

// Rune returns the printable rune for k, or 0 for special keys
func (k Key) Rune() rune {
	if !k.IsRune() {
		return 0
	}
	return rune(k)
}

// IsModifier reports whether k is a bare shift, ctrl or alt key
func IsModifier(k Key) bool {
	switch k {
	case KeyLShift, KeyRShift, KeyLCtrl, KeyRCtrl, KeyLAlt, KeyRAlt:
		return true
	}
	return false
}

// Mod is a bitmask of modifiers held while a key was pressed
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)
