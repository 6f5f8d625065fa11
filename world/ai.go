package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/lixenwraith/vi-rogue/action"
)

// blockedCost discourages paths through other actors without forbidding them
const blockedCost = 10

// monsterPath implements paths.Astar for monster movement
type monsterPath struct {
	m      *Map
	target gruid.Point
	nbs    paths.Neighbors
}

func (mp *monsterPath) Neighbors(p gruid.Point) []gruid.Point {
	return mp.nbs.All(p, mp.m.Walkable)
}

func (mp *monsterPath) Cost(from, to gruid.Point) int {
	if to != mp.target && mp.m.BlockingAt(to) != nil {
		return 1 + blockedCost
	}
	return 1
}

func (mp *monsterPath) Estimation(from, to gruid.Point) int {
	return chebyshev(from, to)
}

// hostileTurn attacks the player when adjacent, otherwise walks toward a visible player
func (g *Game) hostileTurn(mon *Entity) action.Action {
	target := g.player.Pos
	if !g.Map.Visible(mon.Pos) {
		return WaitAction{}
	}

	d := target.Sub(mon.Pos)
	if chebyshev(mon.Pos, target) <= 1 {
		return &MeleeAction{g: g, actor: mon, dx: d.X, dy: d.Y}
	}

	mp := &monsterPath{m: g.Map, target: target}
	path := g.pr.AstarPath(mp, mon.Pos, target)
	if len(path) < 2 {
		return WaitAction{}
	}
	step := path[1].Sub(mon.Pos)
	return &MoveAction{g: g, actor: mon, dx: step.X, dy: step.Y}
}

// ResolveTurn lets every hostile actor act once
// Refused monster actions are dropped silently
func (g *Game) ResolveTurn() {
	for _, mon := range g.Map.Actors() {
		if mon == g.player || !mon.Hostile {
			continue
		}
		if !g.player.IsAlive() {
			return
		}
		err := g.hostileTurn(mon).Perform()
		if _, ok := action.AsImpossible(err); err != nil && !ok {
			g.logger.WithError(err).WithField("monster", mon.name).Error("monster action failed")
		}
	}
}

func chebyshev(p, q gruid.Point) int {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
