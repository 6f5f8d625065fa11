// Package mode implements the input handlers: the main game mode, modal prompts,
// the message history viewer and the game over lockout
package mode

import (
	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
)

// base supplies the default turn protocol and render shared by the non-modal handlers
type base struct{}

func (base) HandleAction(e *engine.Engine, a action.Action) (bool, error) {
	return e.PerformTurn(a)
}

func (base) OnRender(e *engine.Engine, con *console.Console) {
	e.RenderBase(con)
}

// dispatchCommon handles the events every handler treats alike
// Returns done=true when ev needs no further interpretation
func dispatchCommon(e *engine.Engine, ev input.Event) (done bool, err error) {
	switch ev := ev.(type) {
	case input.Quit:
		return true, engine.ErrQuit
	case input.MouseMotion:
		e.Hover(ev.X, ev.Y)
		return true, nil
	}
	return false, nil
}
