package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/input"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s := Wrap(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(80, 50)
	t.Cleanup(s.Fini)
	return s, sim
}

func TestPollEvent_Keys(t *testing.T) {
	s, sim := newSimScreen(t)

	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want input.Event
	}{
		{tcell.KeyRune, 'h', tcell.ModNone, input.KeyPress{Key: input.KeyH}},
		{tcell.KeyRune, '.', tcell.ModNone, input.KeyPress{Key: input.KeyPeriod}},
		{tcell.KeyRune, '5', tcell.ModNone, input.KeyPress{Key: input.KeyKP5}},
		{tcell.KeyRune, '9', tcell.ModNone, input.KeyPress{Key: input.KeyKP9}},
		// tcell folds shift into the rune itself
		{tcell.KeyRune, 'A', tcell.ModShift, input.KeyPress{Key: input.Key('A')}},
		{tcell.KeyUp, 0, tcell.ModNone, input.KeyPress{Key: input.KeyUp}},
		{tcell.KeyPgDn, 0, tcell.ModNone, input.KeyPress{Key: input.KeyPageDown}},
		{tcell.KeyHome, 0, tcell.ModCtrl, input.KeyPress{Key: input.KeyHome, Mod: input.ModCtrl}},
		{tcell.KeyEscape, 0, tcell.ModNone, input.KeyPress{Key: input.KeyEscape}},
		{tcell.KeyClear, 0, tcell.ModNone, input.KeyPress{Key: input.KeyClear}},
		{tcell.KeyCtrlC, 0, tcell.ModCtrl, input.Quit{}},
	}

	for _, tt := range tests {
		sim.InjectKey(tt.key, tt.r, tt.mod)
		if got := s.PollEvent(); got != tt.want {
			t.Errorf("key %v rune %q: expected %#v, got %#v", tt.key, tt.r, tt.want, got)
		}
	}
}

func TestPollEvent_Mouse(t *testing.T) {
	s, sim := newSimScreen(t)

	sim.InjectMouse(3, 4, tcell.ButtonNone, tcell.ModNone)
	if got := s.PollEvent(); got != (input.MouseMotion{X: 3, Y: 4}) {
		t.Errorf("Expected motion, got %#v", got)
	}

	sim.InjectMouse(5, 6, tcell.Button1, tcell.ModNone)
	if got := s.PollEvent(); got != (input.MouseButtonDown{X: 5, Y: 6, Button: input.ButtonLeft}) {
		t.Errorf("Expected left click, got %#v", got)
	}

	// dragging with the button held is motion, not another click
	sim.InjectMouse(6, 6, tcell.Button1, tcell.ModNone)
	if got := s.PollEvent(); got != (input.MouseMotion{X: 6, Y: 6}) {
		t.Errorf("Expected drag motion, got %#v", got)
	}

	sim.InjectMouse(6, 6, tcell.ButtonNone, tcell.ModNone)
	s.PollEvent()
	sim.InjectMouse(7, 8, tcell.Button2, tcell.ModNone)
	if got := s.PollEvent(); got != (input.MouseButtonDown{X: 7, Y: 8, Button: input.ButtonRight}) {
		t.Errorf("Expected right click, got %#v", got)
	}
}

func TestDraw(t *testing.T) {
	s, sim := newSimScreen(t)

	con := console.New(80, 50)
	con.Print(2, 1, "@", console.White, console.RGB(200, 180, 50))
	s.Draw(con)

	r, _, style, _ := sim.GetContent(2, 1)
	if r != '@' {
		t.Fatalf("Expected '@', got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewHexColor(0xFFFFFF) || bg != tcell.NewHexColor(0xC8B432) {
		t.Errorf("Unexpected colours fg=%v bg=%v", fg, bg)
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank cell, got %q", r)
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[?1003l"} {
		if !bytes.Contains([]byte(out), []byte(seq)) {
			t.Errorf("Expected sequence %q in reset output", seq)
		}
	}
}
