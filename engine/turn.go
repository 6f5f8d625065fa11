package engine

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/msglog"
)

// PerformTurn runs the turn protocol for a player action
//
//   - nil action: no turn, no side effects
//   - Impossible: the reason is logged, no turn; enemies and FOV are left alone
//   - success: enemies act, then FOV is recomputed; a turn passed
//   - any other error: returned wrapped as fatal
func (e *Engine) PerformTurn(a action.Action) (bool, error) {
	if a == nil {
		return false, nil
	}

	if err := a.Perform(); err != nil {
		if reason, ok := action.AsImpossible(err); ok {
			e.logger.WithFields(logrus.Fields{
				"handler": handlerName(e.handler),
				"action":  actionName(a),
			}).Info(reason)
			e.Log.Add(reason, msglog.Impossible)
			e.Cue(audio.SoundImpossible)
			return false, nil
		}
		e.logger.WithError(err).WithField("action", actionName(a)).Error("action failed")
		return false, errors.Wrapf(err, "perform %s", actionName(a))
	}

	e.Enemies.ResolveTurn()
	e.World.UpdateFOV()
	return true, nil
}

func actionName(a action.Action) string {
	return fmt.Sprintf("%T", a)
}
