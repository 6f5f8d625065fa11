// Package terminal drives a tcell screen: it translates tcell events into input events
// and flushes console frames
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/input"
)

// Screen is the game's terminal
// PollEvent and Draw are called from the input loop goroutine only
type Screen struct {
	screen  tcell.Screen
	buttons tcell.ButtonMask // buttons held at the last mouse event
}

// New creates a screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s), nil
}

// Wrap uses an existing tcell screen, such as a simulation screen in tests
func Wrap(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init enters raw mode and enables mouse motion reporting
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the terminal size in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// PollEvent blocks until the next event the game understands
// Resizes trigger a full redraw on the next Draw; a finalized screen reports Quit
func (s *Screen) PollEvent() input.Event {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return input.Quit{}
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.screen.Sync()
			continue
		}
		if out, ok := s.translate(ev); ok {
			return out
		}
	}
}

// Draw copies the console to the screen and shows it
func (s *Screen) Draw(con *console.Console) {
	w, h := con.Width(), con.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := con.At(x, y)
			style := tcell.StyleDefault.
				Foreground(color(c.Style.Fg)).
				Background(color(c.Style.Bg))
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.Show()
}
