// Package action defines the command values produced by input handlers
package action

import (
	"errors"
	"fmt"
)

// Action mutates game state when performed
// A nil error means the action took game time
type Action interface {
	Perform() error
}

// Impossible reports that a well-formed action cannot be carried out right now
// It is recoverable: the reason is shown to the player and no game time passes
type Impossible struct {
	Reason string
}

func (e *Impossible) Error() string {
	return e.Reason
}

// Impossiblef builds an Impossible error with a formatted reason
func Impossiblef(format string, args ...any) error {
	return &Impossible{Reason: fmt.Sprintf(format, args...)}
}

// AsImpossible reports whether err is, or wraps, an Impossible failure and returns its reason
func AsImpossible(err error) (string, bool) {
	var imp *Impossible
	if errors.As(err, &imp) {
		return imp.Reason, true
	}
	return "", false
}

// Func adapts a plain function to the Action interface
type Func func() error

func (f Func) Perform() error {
	return f()
}
