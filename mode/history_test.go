package mode

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/engine/enginetest"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/msglog"
)

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name                          string
		cursor, delta, length, expect int
	}{
		{"up mid", 3, -1, 5, 2},
		{"up wraps at top", 0, -1, 5, 4},
		{"down wraps at bottom", 4, 1, 5, 0},
		{"page down clamps", 0, 10, 5, 4},
		{"page up clamps", 3, -10, 5, 0},
		{"page up wraps at top", 0, -10, 5, 4},
		{"page down wraps at bottom", 4, 10, 5, 0},
		{"single entry", 0, 1, 1, 0},
		{"empty log", -1, 1, 0, -1},
		{"zero delta", 2, 0, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCursor(tt.cursor, tt.delta, tt.length); got != tt.expect {
				t.Errorf("MoveCursor(%d, %d, %d) = %d, want %d", tt.cursor, tt.delta, tt.length, got, tt.expect)
			}
		})
	}
}

func newHistoryEngine(n int) (*engine.Engine, *HistoryViewer) {
	e, _, _ := enginetest.New(NewMainGame())
	for i := 0; i < n; i++ {
		e.Log.Add(fmt.Sprintf("message %d", i), msglog.Normal)
	}
	h := NewHistoryViewer(e)
	e.SetHandler(h)
	return e, h
}

func TestHistoryViewer_Wraparound(t *testing.T) {
	e, h := newHistoryEngine(5)
	if h.Cursor() != 4 {
		t.Fatalf("Expected cursor 4 on entry, got %d", h.Cursor())
	}

	for _, want := range []int{3, 2, 1, 0, 4} {
		if err := e.HandleEvent(key(input.KeyUp)); err != nil {
			t.Fatal(err)
		}
		if h.Cursor() != want {
			t.Fatalf("Expected cursor %d, got %d", want, h.Cursor())
		}
	}

	if err := e.HandleEvent(key(input.KeyDown)); err != nil {
		t.Fatal(err)
	}
	if h.Cursor() != 0 {
		t.Fatalf("Expected down at bottom to wrap to 0, got %d", h.Cursor())
	}

	if err := e.HandleEvent(key(input.KeyPageDown)); err != nil {
		t.Fatal(err)
	}
	if h.Cursor() != 4 {
		t.Errorf("Expected page down from 0 to clamp to 4, got %d", h.Cursor())
	}
	if e.Handler() != h {
		t.Error("Navigation must not leave the viewer")
	}
}

func TestHistoryViewer_HomeEnd(t *testing.T) {
	e, h := newHistoryEngine(5)
	for _, start := range []input.Key{input.KeyUp, input.KeyPageUp} {
		if err := e.HandleEvent(key(start)); err != nil {
			t.Fatal(err)
		}
		if err := e.HandleEvent(key(input.KeyHome)); err != nil {
			t.Fatal(err)
		}
		if h.Cursor() != 0 {
			t.Errorf("Expected Home to jump to 0, got %d", h.Cursor())
		}
		if err := e.HandleEvent(key(input.KeyEnd)); err != nil {
			t.Fatal(err)
		}
		if h.Cursor() != 4 {
			t.Errorf("Expected End to jump to 4, got %d", h.Cursor())
		}
	}
}

func TestHistoryViewer_Snapshot(t *testing.T) {
	e, h := newHistoryEngine(3)
	e.Log.Add("late", msglog.Normal)

	if h.LogLength() != 3 {
		t.Errorf("Expected snapshot length 3, got %d", h.LogLength())
	}
	if err := e.HandleEvent(key(input.KeyDown)); err != nil {
		t.Fatal(err)
	}
	if h.Cursor() != 0 {
		t.Errorf("Expected wrap at snapshot bottom, got %d", h.Cursor())
	}
}

func TestHistoryViewer_OtherKeysExit(t *testing.T) {
	for _, k := range []input.Key{input.KeyEscape, input.KeyQ, input.KeyV, input.KeyLShift} {
		e, _ := newHistoryEngine(3)
		if err := e.HandleEvent(key(k)); err != nil {
			t.Fatal(err)
		}
		if _, ok := e.Handler().(*MainGame); !ok {
			t.Errorf("%s: expected MainGame, got %T", k, e.Handler())
		}
	}
}

func TestHistoryViewer_ClickIgnored(t *testing.T) {
	e, h := newHistoryEngine(3)
	if err := e.HandleEvent(input.MouseButtonDown{X: 1, Y: 1, Button: input.ButtonLeft}); err != nil {
		t.Fatal(err)
	}
	if e.Handler() != h {
		t.Errorf("Expected viewer to stay active, got %T", e.Handler())
	}
}

func TestHistoryViewer_EmptyLog(t *testing.T) {
	e, h := newHistoryEngine(0)
	for _, k := range []input.Key{input.KeyUp, input.KeyDown, input.KeyHome, input.KeyEnd} {
		if err := e.HandleEvent(key(k)); err != nil {
			t.Fatal(err)
		}
	}
	if h.Cursor() != -1 {
		t.Errorf("Expected cursor to stay before the first entry, got %d", h.Cursor())
	}
	e.Render(console.New(80, 50))
}

func TestHistoryViewer_Render(t *testing.T) {
	e, _ := newHistoryEngine(5)
	if err := e.HandleEvent(key(input.KeyUp)); err != nil {
		t.Fatal(err)
	}

	con := console.New(80, 50)
	e.Render(con)

	if got := con.At(3, 3).Rune; got != '┌' {
		t.Errorf("Expected panel corner at (3,3), got %q", got)
	}
	if got := con.At(76, 46).Rune; got != '┘' {
		t.Errorf("Expected panel corner at (76,46), got %q", got)
	}

	// cursor 3: message 3 is the bottom visible line, message 4 is hidden
	if got := rowText(con, 45, 4, 13); got != "message 3" {
		t.Errorf("Expected newest visible message at the panel bottom, got %q", got)
	}
	if got := rowText(con, 44, 4, 13); got != "message 2" {
		t.Errorf("Expected older message above, got %q", got)
	}
	title := "┤Message history├"
	found := false
	for x := 3; x < 77; x++ {
		if con.At(x, 3).Rune == '┤' && rowText(con, 3, x, x+len([]rune(title))) == title {
			found = true
		}
	}
	if !found {
		t.Error("Expected history title on the panel border")
	}
}
