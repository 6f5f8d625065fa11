// Package engine owns the input dispatch state: the active handler, the hovered
// map position and the message log, and runs the turn protocol for performed actions
package engine

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/msglog"
)

// ErrQuit is returned by a handler when the player asked to leave the game
var ErrQuit = errors.New("quit requested")

// Handler interprets input while it is the active mode
// Exactly one handler is active; handlers switch modes through Engine.SetHandler
type Handler interface {
	// Dispatch maps one event to an action, nil for none
	// Returning ErrQuit ends the game loop
	Dispatch(e *Engine, ev input.Event) (action.Action, error)
	// HandleAction runs the turn protocol for a dispatched action
	// Returns true when the action consumed a turn
	HandleAction(e *Engine, a action.Action) (bool, error)
	// OnRender draws the live game state, then any overlay of its own
	OnRender(e *Engine, con *console.Console)
}

// Point is a map position
type Point struct {
	X, Y int
}

// Layout positions the parts of the base screen that the engine draws itself
type Layout struct {
	LogX, LogY, LogWidth, LogHeight int
	NamesX, NamesY                  int
}

// LayoutFor places the names line directly below a map of mapHeight lines and the
// five-line log under it
func LayoutFor(mapHeight int) Layout {
	return Layout{
		LogX: 21, LogY: mapHeight + 2, LogWidth: 40, LogHeight: 5,
		NamesX: 21, NamesY: mapHeight + 1,
	}
}

// DefaultLayout matches an 80x50 screen with a 43-line map
func DefaultLayout() Layout {
	return LayoutFor(43)
}

// Config wires the collaborators into an engine
type Config struct {
	World   World
	Enemies Enemies
	Actions Actions

	Log    *msglog.Log     // nil creates an empty log
	Keys   *input.KeyTable // nil uses the default bindings
	Sounds Sounds          // nil is silent
	Logger *logrus.Logger  // nil discards
	Layout *Layout         // nil uses DefaultLayout
}

// Engine holds all state mutated by input processing
// It is owned by the input loop goroutine; no method is safe for concurrent use
type Engine struct {
	World   World
	Enemies Enemies
	Actions Actions
	Log     *msglog.Log
	Keys    *input.KeyTable

	sounds Sounds
	logger *logrus.Entry
	layout Layout

	handler Handler
	mouse   Point
}

// New creates an engine with initial as the active handler
// Panics if initial is nil or a collaborator is missing
func New(cfg Config, initial Handler) *Engine {
	if cfg.World == nil || cfg.Enemies == nil || cfg.Actions == nil {
		panic("engine: World, Enemies and Actions are required")
	}

	e := &Engine{
		World:   cfg.World,
		Enemies: cfg.Enemies,
		Actions: cfg.Actions,
		Log:     cfg.Log,
		Keys:    cfg.Keys,
		sounds:  cfg.Sounds,
		layout:  DefaultLayout(),
	}
	if e.Log == nil {
		e.Log = msglog.New()
	}
	if e.Keys == nil {
		e.Keys = input.DefaultKeyTable()
	}
	if e.sounds == nil {
		e.sounds = audio.Silent{}
	}
	if cfg.Layout != nil {
		e.layout = *cfg.Layout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	e.logger = logger.WithField("component", "engine")

	e.SetHandler(initial)
	return e
}

// Handler returns the active handler
func (e *Engine) Handler() Handler {
	return e.handler
}

// SetHandler replaces the active handler
// The switch is effective for the next event
func (e *Engine) SetHandler(h Handler) {
	if h == nil {
		panic("engine: nil handler")
	}
	if e.handler != nil {
		e.logger.WithFields(logrus.Fields{
			"from": handlerName(e.handler),
			"to":   handlerName(h),
		}).Debug("handler switch")
	}
	e.handler = h
}

// Player is a shortcut for World.Player
func (e *Engine) Player() Player {
	return e.World.Player()
}

// Mouse returns the last hovered in-bounds map position
func (e *Engine) Mouse() Point {
	return e.mouse
}

// Hover records the pointer position if it lies on the map
// Returns false and changes nothing for out-of-bounds positions
func (e *Engine) Hover(x, y int) bool {
	if !e.World.InBounds(x, y) {
		return false
	}
	e.mouse = Point{X: x, Y: y}
	return true
}

// Cue plays a feedback sound
func (e *Engine) Cue(s audio.Sound) {
	e.sounds.Play(s)
}

// Logger returns the engine's structured logger
func (e *Engine) Logger() *logrus.Entry {
	return e.logger
}

// HandleEvent processes one input event to completion
// The handler active when the event arrives both dispatches it and handles the resulting
// action, even if dispatch switched modes
func (e *Engine) HandleEvent(ev input.Event) error {
	h := e.handler
	a, err := h.Dispatch(e, ev)
	if err != nil {
		return err
	}
	_, err = h.HandleAction(e, a)
	return err
}

// Render draws the active handler's view
func (e *Engine) Render(con *console.Console) {
	e.handler.OnRender(e, con)
}

// RenderBase draws the live game state every handler uses as background
func (e *Engine) RenderBase(con *console.Console) {
	e.World.Render(con)

	l := e.layout
	e.Log.Render(con, l.LogX, l.LogY, l.LogWidth, l.LogHeight)

	if names := e.World.NamesAt(e.mouse.X, e.mouse.Y); names != "" {
		con.Print(l.NamesX, l.NamesY, names, console.White, console.Black)
	}
}

func handlerName(h Handler) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
