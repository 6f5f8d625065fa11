package mode

import (
	"fmt"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
)

// Prompt is the question part of a modal handler
type Prompt interface {
	// Key interprets a key press
	// consumed=false hands the key back to AskUser, which exits the prompt
	Key(e *engine.Engine, kd input.KeyPress) (a action.Action, consumed bool)
	// Render draws the prompt overlay on top of the base view
	Render(e *engine.Engine, con *console.Console)
}

// Exiter is implemented by prompts that replace the default cancel behavior
type Exiter interface {
	OnExit(e *engine.Engine) action.Action
}

// AskUser runs a Prompt as a modal handler that returns to MainGame afterwards
type AskUser struct {
	Prompt Prompt
}

func (h *AskUser) String() string {
	if s, ok := h.Prompt.(fmt.Stringer); ok {
		return "ask_user/" + s.String()
	}
	return "ask_user"
}

// Dispatch forwards keys to the prompt
// Unconsumed keys and any click exit; standalone modifier keys are ignored
func (h *AskUser) Dispatch(e *engine.Engine, ev input.Event) (action.Action, error) {
	if done, err := dispatchCommon(e, ev); done {
		return nil, err
	}

	switch ev := ev.(type) {
	case input.KeyPress:
		if input.IsModifier(ev.Key) {
			return nil, nil
		}
		if a, consumed := h.Prompt.Key(e, ev); consumed {
			return a, nil
		}
		return h.exit(e), nil
	case input.MouseButtonDown:
		return h.exit(e), nil
	}
	return nil, nil
}

// HandleAction runs the turn and, if one passed, returns to MainGame
// A GameOver entered during that turn is kept
func (h *AskUser) HandleAction(e *engine.Engine, a action.Action) (bool, error) {
	ok, err := e.PerformTurn(a)
	if err != nil || !ok {
		return ok, err
	}
	if _, over := e.Handler().(*GameOver); !over {
		e.SetHandler(NewMainGame())
	}
	return true, nil
}

func (h *AskUser) OnRender(e *engine.Engine, con *console.Console) {
	e.RenderBase(con)
	h.Prompt.Render(e, con)
}

func (h *AskUser) exit(e *engine.Engine) action.Action {
	if x, ok := h.Prompt.(Exiter); ok {
		return x.OnExit(e)
	}
	e.SetHandler(NewMainGame())
	return nil
}
