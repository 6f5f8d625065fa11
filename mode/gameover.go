package mode

import (
	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
)

// GameOver is entered when the player dies; only quitting is possible
type GameOver struct {
	base
}

// NewGameOver creates the lockout handler
func NewGameOver() *GameOver {
	return &GameOver{}
}

func (h *GameOver) String() string { return "game_over" }

func (h *GameOver) Dispatch(e *engine.Engine, ev input.Event) (action.Action, error) {
	if done, err := dispatchCommon(e, ev); done {
		return nil, err
	}
	if kd, ok := ev.(input.KeyPress); ok && e.Keys.Commands[kd.Key] == input.CommandQuit {
		return nil, engine.ErrQuit
	}
	return nil, nil
}
