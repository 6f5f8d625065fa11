// Package console is the cell grid every handler draws into
// Backends copy the grid to a real screen once per frame
package console

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
	"github.com/mattn/go-runewidth"
)

// Frame border runes
const (
	frameHorizontal  = '─'
	frameVertical    = '│'
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
)

// Console is a fixed-size character/colour grid
type Console struct {
	grid gruid.Grid
}

// New creates a blank console of the given size
func New(width, height int) *Console {
	c := &Console{grid: gruid.NewGrid(width, height)}
	c.Clear()
	return c
}

func (c *Console) Width() int  { return c.grid.Size().X }
func (c *Console) Height() int { return c.grid.Size().Y }

// Clear resets every cell to a blank with default colours
func (c *Console) Clear() {
	c.grid.Fill(gruid.Cell{Rune: ' '})
}

// At returns the cell at x, y; out-of-range positions yield the zero cell
func (c *Console) At(x, y int) gruid.Cell {
	return c.grid.At(gruid.Point{X: x, Y: y})
}

// Set writes a single cell; out-of-range positions are ignored
func (c *Console) Set(x, y int, r rune, fg, bg gruid.Color) {
	c.grid.Set(gruid.Point{X: x, Y: y}, gruid.Cell{Rune: r, Style: gruid.Style{Fg: fg, Bg: bg}})
}

// Print draws a single line of text starting at x, y, clipped to the console
func (c *Console) Print(x, y int, s string, fg, bg gruid.Color) {
	if x < 0 || y < 0 || y >= c.Height() || x >= c.Width() {
		return
	}
	line := c.grid.Slice(gruid.NewRange(x, y, c.Width(), y+1))
	ui.Text(s).WithStyle(gruid.Style{Fg: fg, Bg: bg}).Draw(line)
}

// PrintCentered draws s centred within the span [x, x+width)
func (c *Console) PrintCentered(x, y, width int, s string, fg, bg gruid.Color) {
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	c.Print(x+(width-w)/2, y, s, fg, bg)
}

// DrawFrame draws a bordered box with a cleared interior
// A non-empty title is centred on the top border with inverted colours
func (c *Console) DrawFrame(x, y, width, height int, title string, fg, bg gruid.Color) {
	if width < 2 || height < 2 {
		return
	}
	st := gruid.Style{Fg: fg, Bg: bg}
	c.grid.Slice(gruid.NewRange(x, y, x+width, y+height)).Fill(gruid.Cell{Rune: ' ', Style: st})

	right, bottom := x+width-1, y+height-1
	for i := x + 1; i < right; i++ {
		c.Set(i, y, frameHorizontal, fg, bg)
		c.Set(i, bottom, frameHorizontal, fg, bg)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, frameVertical, fg, bg)
		c.Set(right, j, frameVertical, fg, bg)
	}
	c.Set(x, y, frameTopLeft, fg, bg)
	c.Set(right, y, frameTopRight, fg, bg)
	c.Set(x, bottom, frameBottomLeft, fg, bg)
	c.Set(right, bottom, frameBottomRight, fg, bg)

	if title != "" {
		c.PrintCentered(x+1, y, width-2, title, bg, fg)
	}
}

// Sub creates an off-screen console sized for later blitting
func (c *Console) Sub(width, height int) *Console {
	return New(width, height)
}

// Blit copies this console onto dst with its top-left corner at x, y
// Cells falling outside dst are dropped
func (c *Console) Blit(dst *Console, x, y int) {
	w, h := c.Width(), c.Height()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			p := gruid.Point{X: i, Y: j}
			dst.grid.Set(p.Add(gruid.Point{X: x, Y: y}), c.grid.At(p))
		}
	}
}
