// Package world is the dungeon model behind the input core: map, entities, player actions,
// monster turns, procedural generation and map rendering
package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/lixenwraith/vi-rogue/console"
)

// Terrain cells stored in the map grid
const (
	Wall rl.Cell = iota
	Floor
)

// Graphic is how a tile is drawn
type Graphic struct {
	Ch     rune
	Fg, Bg gruid.Color
}

// Tile describes the static properties of a terrain cell
type Tile struct {
	Walkable    bool
	Transparent bool
	Dark        Graphic // explored but out of view
	Light       Graphic // in view
}

// Shroud is drawn for unexplored tiles
var Shroud = Graphic{Ch: ' ', Fg: console.White, Bg: console.Black}

var tiles = map[rl.Cell]Tile{
	Floor: {
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Ch: ' ', Fg: console.White, Bg: console.RGB(50, 50, 150)},
		Light:       Graphic{Ch: ' ', Fg: console.White, Bg: console.RGB(200, 180, 50)},
	},
	Wall: {
		Dark:  Graphic{Ch: ' ', Fg: console.White, Bg: console.RGB(0, 0, 100)},
		Light: Graphic{Ch: ' ', Fg: console.White, Bg: console.RGB(130, 110, 50)},
	},
}

// TileOf returns the tile for a terrain cell; unknown cells behave as walls
func TileOf(c rl.Cell) Tile {
	if t, ok := tiles[c]; ok {
		return t
	}
	return tiles[Wall]
}
