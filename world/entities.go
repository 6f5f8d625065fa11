package world

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/vi-rogue/console"
)

func newPlayer(capacity int) *Entity {
	return &Entity{
		Char:      '@',
		Color:     console.White,
		Blocks:    true,
		Order:     OrderActor,
		Fighter:   &Fighter{MaxHP: 30, HP: 30, Defense: 2, Power: 5},
		Inventory: &Inventory{Capacity: capacity},
		name:      "player",
	}
}

func newOrc() *Entity {
	return &Entity{
		Char:    'o',
		Color:   console.RGB(63, 127, 63),
		Blocks:  true,
		Order:   OrderActor,
		Fighter: &Fighter{MaxHP: 10, HP: 10, Defense: 0, Power: 3},
		Hostile: true,
		name:    "orc",
	}
}

func newTroll() *Entity {
	return &Entity{
		Char:    'T',
		Color:   console.RGB(0, 127, 0),
		Blocks:  true,
		Order:   OrderActor,
		Fighter: &Fighter{MaxHP: 16, HP: 16, Defense: 1, Power: 4},
		Hostile: true,
		name:    "troll",
	}
}

func newHealthPotion() *Entity {
	return &Entity{
		Char:       '!',
		Color:      console.RGB(127, 0, 255),
		Order:      OrderItem,
		Consumable: &Consumable{Amount: 4},
		name:       "health potion",
	}
}

// spawn places e on the map at p
func (g *Game) spawn(e *Entity, p gruid.Point) *Entity {
	e.Pos = p
	e.g = g
	g.Map.add(e)
	return e
}
