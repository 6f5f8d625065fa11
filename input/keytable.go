package input

import "maps"

// Delta is a one-tile movement offset
type Delta struct {
	DX, DY int
}

// Command is a non-movement main mode binding
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandHistory
	CommandPickup
	CommandInventory
	CommandDrop
)

// Jump is an absolute history cursor move
type Jump uint8

const (
	JumpNone Jump = iota
	JumpTop
	JumpBottom
)

// KeyTable maps keys to behaviors for all modes
// Main mode uses Move, Wait and Commands; the history viewer uses Cursor and Jumps
type KeyTable struct {
	Move     map[Key]Delta
	Wait     map[Key]bool
	Commands map[Key]Command

	Cursor map[Key]int
	Jumps  map[Key]Jump
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Move: map[Key]Delta{
			// Arrow keys and the navigation cluster
			KeyUp:       {0, -1},
			KeyDown:     {0, 1},
			KeyLeft:     {-1, 0},
			KeyRight:    {1, 0},
			KeyHome:     {-1, -1},
			KeyEnd:      {-1, 1},
			KeyPageUp:   {1, -1},
			KeyPageDown: {1, 1},

			// Numpad
			KeyKP1: {-1, 1},
			KeyKP2: {0, 1},
			KeyKP3: {1, 1},
			KeyKP4: {-1, 0},
			KeyKP6: {1, 0},
			KeyKP7: {-1, -1},
			KeyKP8: {0, -1},
			KeyKP9: {1, -1},

			// Vi keys
			KeyH: {-1, 0},
			KeyJ: {0, 1},
			KeyK: {0, -1},
			KeyL: {1, 0},
			KeyY: {-1, -1},
			KeyU: {1, -1},
			KeyB: {-1, 1},
			KeyN: {1, 1},
		},

		Wait: map[Key]bool{
			KeyPeriod: true,
			KeyKP5:    true,
			KeyClear:  true,
		},

		Commands: map[Key]Command{
			KeyEscape: CommandQuit,
			KeyV:      CommandHistory,
			KeyG:      CommandPickup,
			KeyI:      CommandInventory,
			KeyD:      CommandDrop,
		},

		Cursor: map[Key]int{
			KeyUp:       -1,
			KeyDown:     1,
			KeyPageUp:   -10,
			KeyPageDown: 10,
		},

		Jumps: map[Key]Jump{
			KeyHome: JumpTop,
			KeyEnd:  JumpBottom,
		},
	}
}

// Clone returns a deep copy so overrides never touch the defaults
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Move:     maps.Clone(kt.Move),
		Wait:     maps.Clone(kt.Wait),
		Commands: maps.Clone(kt.Commands),
		Cursor:   maps.Clone(kt.Cursor),
		Jumps:    maps.Clone(kt.Jumps),
	}
}

// unbindMain removes k from every main mode map
// A key carries at most one main mode meaning
func (kt *KeyTable) unbindMain(k Key) {
	delete(kt.Move, k)
	delete(kt.Wait, k)
	delete(kt.Commands, k)
}

// unbindHistory removes k from every history viewer map
func (kt *KeyTable) unbindHistory(k Key) {
	delete(kt.Cursor, k)
	delete(kt.Jumps, k)
}
