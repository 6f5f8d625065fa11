package input

// Canonical binding names used by the keymap config loader

var moveNames = map[string]Delta{
	"north":     {0, -1},
	"south":     {0, 1},
	"west":      {-1, 0},
	"east":      {1, 0},
	"northwest": {-1, -1},
	"northeast": {1, -1},
	"southwest": {-1, 1},
	"southeast": {1, 1},
}

var commandNames = map[string]Command{
	"quit":      CommandQuit,
	"history":   CommandHistory,
	"pickup":    CommandPickup,
	"inventory": CommandInventory,
	"drop":      CommandDrop,
}

var cursorNames = map[string]int{
	"cursor_up":   -1,
	"cursor_down": 1,
	"page_up":     -10,
	"page_down":   10,
}

var jumpNames = map[string]Jump{
	"top":    JumpTop,
	"bottom": JumpBottom,
}

const (
	bindingNone = "none"
	bindingWait = "wait"
)
