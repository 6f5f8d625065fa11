package world

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/msglog"
)

var corpseColor = console.RGB(191, 0, 0)

// BumpAction attacks a blocking actor at the destination, otherwise moves there
type BumpAction struct {
	g      *Game
	actor  *Entity
	dx, dy int
}

func (a *BumpAction) Perform() error {
	dest := a.actor.Pos.Add(gruid.Point{X: a.dx, Y: a.dy})
	if target := a.g.Map.ActorAt(dest); target != nil && target.Blocks {
		return (&MeleeAction{g: a.g, actor: a.actor, dx: a.dx, dy: a.dy}).Perform()
	}
	return (&MoveAction{g: a.g, actor: a.actor, dx: a.dx, dy: a.dy}).Perform()
}

// MoveAction steps one tile
type MoveAction struct {
	g      *Game
	actor  *Entity
	dx, dy int
}

func (a *MoveAction) Perform() error {
	dest := a.actor.Pos.Add(gruid.Point{X: a.dx, Y: a.dy})
	m := a.g.Map
	if !m.InBounds(dest.X, dest.Y) || !m.Walkable(dest) || m.BlockingAt(dest) != nil {
		return action.Impossiblef("That way is blocked.")
	}
	a.actor.Pos = dest
	return nil
}

// MeleeAction attacks the actor in the given direction
type MeleeAction struct {
	g      *Game
	actor  *Entity
	dx, dy int
}

func (a *MeleeAction) Perform() error {
	dest := a.actor.Pos.Add(gruid.Point{X: a.dx, Y: a.dy})
	target := a.g.Map.ActorAt(dest)
	if target == nil {
		return action.Impossiblef("Nothing to attack.")
	}

	desc := fmt.Sprintf("%s attacks %s", capitalize(a.actor.name), target.name)
	cat := msglog.EnemyAttack
	if a.actor == a.g.player {
		cat = msglog.PlayerAttack
	}

	damage := a.actor.Fighter.Power - target.Fighter.Defense
	if damage <= 0 {
		a.g.Log.Add(desc+" but does no damage.", cat)
		return nil
	}
	a.g.Log.Add(fmt.Sprintf("%s for %d hit points.", desc, damage), cat)
	target.Fighter.HP = max(target.Fighter.HP-damage, 0)
	if target.Fighter.HP == 0 {
		a.g.kill(target)
	}
	return nil
}

// WaitAction passes the turn
type WaitAction struct{}

func (WaitAction) Perform() error { return nil }

// PickupAction moves the first item under the actor into its inventory
type PickupAction struct {
	g     *Game
	actor *Entity
}

func (a *PickupAction) Perform() error {
	items := a.g.Map.ItemsAt(a.actor.Pos)
	if len(items) == 0 {
		return action.Impossiblef("There is nothing here to pick up.")
	}
	if a.actor.Inventory.Full() {
		return action.Impossiblef("Your inventory is full.")
	}
	item := items[0]
	a.g.Map.remove(item)
	a.actor.Inventory.Items = append(a.actor.Inventory.Items, item)
	a.g.Log.Add(fmt.Sprintf("You picked up the %s!", item.name), msglog.Normal)
	return nil
}

// DropAction puts an inventory item on the actor's tile
type DropAction struct {
	g     *Game
	actor *Entity
	item  *Entity
}

func (a *DropAction) Perform() error {
	if !a.actor.Inventory.remove(a.item) {
		return action.Impossiblef("You don't have the %s.", a.item.name)
	}
	a.item.Pos = a.actor.Pos
	a.g.Map.add(a.item)
	a.g.Log.Add(fmt.Sprintf("You dropped the %s.", a.item.name), msglog.Normal)
	return nil
}

// HealAction consumes a healing item
type HealAction struct {
	g     *Game
	actor *Entity
	item  *Entity
}

func (a *HealAction) Perform() error {
	recovered := a.actor.Fighter.Heal(a.item.Consumable.Amount)
	if recovered == 0 {
		return action.Impossiblef("Your health is already full.")
	}
	a.g.Log.Add(fmt.Sprintf("You consume the %s, and recover %d HP!", a.item.name, recovered), msglog.HealthRecovered)
	a.actor.Inventory.remove(a.item)
	return nil
}

// kill turns an actor into a corpse
func (g *Game) kill(e *Entity) {
	if e == g.player {
		g.Log.Add("You died!", msglog.PlayerDie)
		g.logger.Info("player died")
	} else {
		g.Log.Add(fmt.Sprintf("%s is dead!", capitalize(e.name)), msglog.EnemyDie)
	}

	e.Char = '%'
	e.Color = corpseColor
	e.Blocks = false
	e.Hostile = false
	e.Order = OrderCorpse
	e.name = "remains of " + e.name

	if e == g.player && g.OnPlayerDeath != nil {
		g.OnPlayerDeath()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
