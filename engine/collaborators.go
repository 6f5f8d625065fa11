package engine

import (
	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/console"
)

// Item is an inventory entry as seen by the menus
type Item interface {
	Name() string
	// UseAction builds the action for using this item on behalf of user
	UseAction(user Player) action.Action
}

// Player is the controlled actor
type Player interface {
	Pos() (x, y int)
	// Inventory returns items in menu order
	Inventory() []Item
}

// World is the game model queried during input handling and rendering
type World interface {
	InBounds(x, y int) bool
	UpdateFOV()
	Player() Player
	// Render draws the map, entities and status bars
	Render(con *console.Console)
	// NamesAt describes visible entities at a map position, or returns ""
	NamesAt(x, y int) string
}

// Enemies resolves the non-player half of a turn
type Enemies interface {
	ResolveTurn()
}

// Actions builds the player actions bound to main mode keys
type Actions interface {
	Bump(dx, dy int) action.Action
	Wait() action.Action
	Pickup() action.Action
	Drop(item Item) action.Action
}

// Sounds plays feedback cues
type Sounds interface {
	Play(s audio.Sound)
}
