package mode

import (
	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/msglog"
)

const (
	historyTitle  = "┤Message history├"
	historyMargin = 3
	historyDim    = 0.5
)

// MoveCursor applies delta to a cursor over length entries
// Moving past an edge wraps only when the cursor already sits on that edge; otherwise the
// result is clamped. Non-positive lengths leave the cursor unchanged
func MoveCursor(cursor, delta, length int) int {
	if length <= 0 {
		return cursor
	}
	last := length - 1
	switch {
	case delta < 0 && cursor == 0:
		return last
	case delta > 0 && cursor == last:
		return 0
	}
	return max(0, min(cursor+delta, last))
}

// HistoryViewer scrolls through the message log over a dimmed game view
type HistoryViewer struct {
	base
	logLength int
	cursor    int
}

// NewHistoryViewer snapshots the log length; messages added later are not navigable
func NewHistoryViewer(e *engine.Engine) *HistoryViewer {
	n := e.Log.Len()
	return &HistoryViewer{logLength: n, cursor: n - 1}
}

func (h *HistoryViewer) String() string { return "history" }

// Cursor is the index of the newest visible message
func (h *HistoryViewer) Cursor() int { return h.cursor }

// LogLength is the navigable length captured on entry
func (h *HistoryViewer) LogLength() int { return h.logLength }

// Dispatch moves the cursor; any unbound key returns to MainGame
// Clicks are ignored
func (h *HistoryViewer) Dispatch(e *engine.Engine, ev input.Event) (action.Action, error) {
	if done, err := dispatchCommon(e, ev); done {
		return nil, err
	}

	kd, ok := ev.(input.KeyPress)
	if !ok {
		return nil, nil
	}

	if delta, ok := e.Keys.Cursor[kd.Key]; ok {
		h.cursor = MoveCursor(h.cursor, delta, h.logLength)
		return nil, nil
	}

	switch e.Keys.Jumps[kd.Key] {
	case input.JumpTop:
		if h.logLength > 0 {
			h.cursor = 0
		}
	case input.JumpBottom:
		h.cursor = h.logLength - 1
	default:
		e.SetHandler(NewMainGame())
	}
	return nil, nil
}

// OnRender draws the dimmed game view with the history panel inset on top
func (h *HistoryViewer) OnRender(e *engine.Engine, con *console.Console) {
	e.RenderBase(con)
	con.Dim(historyDim)

	w := con.Width() - 2*historyMargin
	ht := con.Height() - 2*historyMargin
	if w < 3 || ht < 3 {
		return
	}

	panel := con.Sub(w, ht)
	panel.DrawFrame(0, 0, w, ht, "", console.White, console.Black)
	panel.PrintCentered(0, 0, w, historyTitle, console.White, console.Black)
	msglog.RenderEntries(panel, 1, 1, w-2, ht-2, e.Log.Slice(0, h.cursor+1))
	panel.Blit(con, historyMargin, historyMargin)
}
