// Package enginetest provides recording fakes of the engine collaborators
package enginetest

import (
	"fmt"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Recorder collects collaborator calls in order
type Recorder struct {
	Calls []string
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls equal call
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Action is a scripted action
type Action struct {
	Name string
	Err  error
	rec  *Recorder
}

func (a *Action) Perform() error {
	if a.rec != nil {
		a.rec.record("perform %s", a.Name)
	}
	return a.Err
}

// Item is a named inventory entry whose use action succeeds
type Item struct {
	ItemName string
	rec      *Recorder
}

func (i *Item) Name() string { return i.ItemName }

func (i *Item) UseAction(engine.Player) action.Action {
	return &Action{Name: "use " + i.ItemName, rec: i.rec}
}

// Player is a fake player with a fixed position
type Player struct {
	X, Y  int
	Items []engine.Item
}

func (p *Player) Pos() (int, int)           { return p.X, p.Y }
func (p *Player) Inventory() []engine.Item { return p.Items }

// World is a fake game model
// It implements engine.World, engine.Enemies and engine.Actions
type World struct {
	*Recorder
	Width, Height int
	Hero          *Player
	Names         map[engine.Point]string

	// BumpErr is returned by actions built through Bump
	BumpErr error
}

// NewWorld creates an 80x43 world with the player at (10, 10)
func NewWorld() *World {
	return &World{
		Recorder: &Recorder{},
		Width:    80,
		Height:   43,
		Hero:     &Player{X: 10, Y: 10},
		Names:    map[engine.Point]string{},
	}
}

// AddItems gives the player one item per name
func (w *World) AddItems(names ...string) {
	for _, n := range names {
		w.Hero.Items = append(w.Hero.Items, &Item{ItemName: n, rec: w.Recorder})
	}
}

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

func (w *World) UpdateFOV()            { w.record("fov") }
func (w *World) Player() engine.Player { return w.Hero }
func (w *World) ResolveTurn()          { w.record("enemies") }

func (w *World) Render(con *console.Console) {
	con.Print(0, 0, "@", console.White, console.Black)
}

func (w *World) NamesAt(x, y int) string {
	return w.Names[engine.Point{X: x, Y: y}]
}

func (w *World) Bump(dx, dy int) action.Action {
	w.record("bump %d,%d", dx, dy)
	return &Action{Name: fmt.Sprintf("bump %d,%d", dx, dy), Err: w.BumpErr, rec: w.Recorder}
}

func (w *World) Wait() action.Action {
	w.record("wait")
	return &Action{Name: "wait", rec: w.Recorder}
}

func (w *World) Pickup() action.Action {
	w.record("pickup")
	return &Action{Name: "pickup", rec: w.Recorder}
}

func (w *World) Drop(item engine.Item) action.Action {
	w.record("drop %s", item.Name())
	return &Action{Name: "drop " + item.Name(), rec: w.Recorder}
}

// Sounds records played cues
type Sounds struct {
	Played []audio.Sound
}

func (s *Sounds) Play(snd audio.Sound) {
	s.Played = append(s.Played, snd)
}

// New builds an engine over a fresh fake world and recording sounds
func New(initial engine.Handler) (*engine.Engine, *World, *Sounds) {
	w := NewWorld()
	s := &Sounds{}
	e := engine.New(engine.Config{
		World:   w,
		Enemies: w,
		Actions: w,
		Sounds:  s,
	}, initial)
	return e, w, s
}
