package world

import (
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/msglog"
)

// FOVRadius is how far the player sees
const FOVRadius = 8

// Game is the live dungeon state
// It serves as the engine's World, Enemies and Actions
type Game struct {
	Map *Map
	Log *msglog.Log

	// OnPlayerDeath runs once, during the turn in which the player dies
	OnPlayerDeath func()

	player *Entity
	view   *playerView
	fov    *rl.FOV
	pr     *paths.PathRange
	rand   *rand.Rand
	logger *logrus.Entry
}

var (
	_ engine.World   = (*Game)(nil)
	_ engine.Enemies = (*Game)(nil)
	_ engine.Actions = (*Game)(nil)
)

// NewGame generates a dungeon from seed and places the player in the first room
// log receives game messages; a nil logger discards diagnostics
func NewGame(opts Options, seed uint64, log *msglog.Log, logger *logrus.Logger) *Game {
	g := newGame(opts.Width, opts.Height, seed, log, logger)
	opts.RoomMaxSize = max(opts.RoomMaxSize, opts.RoomMinSize)
	start := g.generate(opts)
	g.placePlayer(opts.InventoryCapacity, start)
	return g
}

func newGame(width, height int, seed uint64, log *msglog.Log, logger *logrus.Logger) *Game {
	if log == nil {
		log = msglog.New()
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	rg := gruid.NewRange(0, 0, width, height)
	return &Game{
		Map:    NewMap(width, height),
		Log:    log,
		fov:    rl.NewFOV(rg),
		pr:     paths.NewPathRange(rg),
		rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger.WithField("component", "world"),
	}
}

func (g *Game) placePlayer(capacity int, p gruid.Point) {
	g.player = g.spawn(newPlayer(capacity), p)
	g.view = &playerView{e: g.player}
	g.UpdateFOV()
}

// Player implements engine.World
func (g *Game) Player() engine.Player {
	return g.view
}

// InBounds implements engine.World
func (g *Game) InBounds(x, y int) bool {
	return g.Map.InBounds(x, y)
}

// UpdateFOV recomputes what the player sees; seen tiles stay explored
func (g *Game) UpdateFOV() {
	pts := g.fov.SSCVisionMap(g.player.Pos, FOVRadius, g.Map.Transparent, false)
	g.Map.setVisible(append(pts, g.player.Pos))
}

// NamesAt lists the visible entities at x, y
func (g *Game) NamesAt(x, y int) string {
	p := gruid.Point{X: x, Y: y}
	if !g.Map.Visible(p) {
		return ""
	}
	var names []string
	for _, e := range g.Map.Entities {
		if e.Pos == p {
			names = append(names, e.name)
		}
	}
	return capitalize(strings.Join(names, ", "))
}

// Bump implements engine.Actions
func (g *Game) Bump(dx, dy int) action.Action {
	return &BumpAction{g: g, actor: g.player, dx: dx, dy: dy}
}

// Wait implements engine.Actions
func (g *Game) Wait() action.Action {
	return WaitAction{}
}

// Pickup implements engine.Actions
func (g *Game) Pickup() action.Action {
	return &PickupAction{g: g, actor: g.player}
}

// Drop implements engine.Actions
func (g *Game) Drop(item engine.Item) action.Action {
	it, ok := item.(*Entity)
	if !ok {
		return action.Func(func() error {
			return action.Impossiblef("You can't drop the %s.", item.Name())
		})
	}
	return &DropAction{g: g, actor: g.player, item: it}
}

// renderOrder returns entities sorted bottom to top
func (g *Game) renderOrder() []*Entity {
	es := slices.Clone(g.Map.Entities)
	slices.SortStableFunc(es, func(a, b *Entity) int {
		return int(a.Order) - int(b.Order)
	})
	return es
}
