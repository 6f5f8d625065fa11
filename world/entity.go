package world

import (
	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/engine"
)

// RenderOrder stacks entities sharing a tile; higher draws on top
type RenderOrder uint8

const (
	OrderCorpse RenderOrder = iota
	OrderItem
	OrderActor
)

// Fighter holds combat stats
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Heal restores up to amount HP and returns how much was recovered
func (f *Fighter) Heal(amount int) int {
	if f.HP >= f.MaxHP {
		return 0
	}
	recovered := min(f.HP+amount, f.MaxHP) - f.HP
	f.HP += recovered
	return recovered
}

// Consumable is a single-use healing item
type Consumable struct {
	Amount int
}

// Inventory holds carried items up to Capacity
type Inventory struct {
	Capacity int
	Items    []*Entity
}

// Full reports whether no more items fit
func (inv *Inventory) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

func (inv *Inventory) remove(item *Entity) bool {
	for i, x := range inv.Items {
		if x == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Entity is anything placed on the map: actors, items and corpses
type Entity struct {
	Pos    gruid.Point
	Char   rune
	Color  gruid.Color
	Blocks bool
	Order  RenderOrder

	Fighter    *Fighter    // actors
	Hostile    bool        // moved by the monster AI
	Inventory  *Inventory  // player
	Consumable *Consumable // items

	name string
	g    *Game
}

// Name is the display name
func (e *Entity) Name() string { return e.name }

// IsAlive reports whether e is an actor that can still act
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && e.Fighter.HP > 0
}

// UseAction implements engine.Item
func (e *Entity) UseAction(user engine.Player) action.Action {
	actor, ok := user.(*playerView)
	if !ok || e.Consumable == nil {
		return action.Func(func() error {
			return action.Impossiblef("You can't use the %s.", e.name)
		})
	}
	return &HealAction{g: e.g, actor: actor.e, item: e}
}

// playerView adapts the player entity to engine.Player
type playerView struct {
	e *Entity
}

func (p *playerView) Pos() (int, int) { return p.e.Pos.X, p.e.Pos.Y }

func (p *playerView) Inventory() []engine.Item {
	if p.e.Inventory == nil {
		return nil
	}
	items := make([]engine.Item, len(p.e.Inventory.Items))
	for i, it := range p.e.Inventory.Items {
		items[i] = it
	}
	return items
}
