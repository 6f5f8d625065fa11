package mode

import (
	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
)

// MainGame is the default mode: movement, waiting and the commands that open other modes
type MainGame struct {
	base
}

// NewMainGame creates the main mode handler
func NewMainGame() *MainGame {
	return &MainGame{}
}

func (h *MainGame) String() string { return "main" }

// Dispatch maps a main mode key to an action or a mode switch
// Unbound keys and clicks yield no action
func (h *MainGame) Dispatch(e *engine.Engine, ev input.Event) (action.Action, error) {
	if done, err := dispatchCommon(e, ev); done {
		return nil, err
	}

	kd, ok := ev.(input.KeyPress)
	if !ok {
		return nil, nil
	}

	if d, ok := e.Keys.Move[kd.Key]; ok {
		return e.Actions.Bump(d.DX, d.DY), nil
	}
	if e.Keys.Wait[kd.Key] {
		return e.Actions.Wait(), nil
	}

	switch e.Keys.Commands[kd.Key] {
	case input.CommandQuit:
		return nil, engine.ErrQuit
	case input.CommandHistory:
		e.SetHandler(NewHistoryViewer(e))
	case input.CommandPickup:
		return e.Actions.Pickup(), nil
	case input.CommandInventory:
		e.SetHandler(NewInventoryActivate())
	case input.CommandDrop:
		e.SetHandler(NewInventoryDrop())
	}
	return nil, nil
}
