package console

import (
	"codeberg.org/anaseto/gruid"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB packs a 24-bit colour into a gruid.Color
// The packed value is offset by one so that zero keeps meaning "terminal default"
func RGB(r, g, b uint8) gruid.Color {
	return gruid.Color(uint32(r)<<16|uint32(g)<<8|uint32(b)) + 1
}

// Components unpacks a colour built with RGB
// ok is false for the default colour
func Components(c gruid.Color) (r, g, b uint8, ok bool) {
	if c == gruid.ColorDefault {
		return 0, 0, 0, false
	}
	v := uint32(c - 1)
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Hex returns the 0xRRGGBB value of c, or -1 for the default colour
func Hex(c gruid.Color) int32 {
	r, g, b, ok := Components(c)
	if !ok {
		return -1
	}
	return int32(r)<<16 | int32(g)<<8 | int32(b)
}

// Palette
var (
	White = RGB(0xFF, 0xFF, 0xFF)
	Black = RGB(0x00, 0x00, 0x00)

	PlayerAttack    = RGB(0xE0, 0xE0, 0xE0)
	EnemyAttack     = RGB(0xFF, 0xC0, 0xC0)
	PlayerDie       = RGB(0xFF, 0x30, 0x30)
	EnemyDie        = RGB(0xFF, 0xA0, 0x30)
	Invalid         = RGB(0xFF, 0xFF, 0x00)
	Impossible      = RGB(0x80, 0x80, 0x80)
	Error           = RGB(0xFF, 0x40, 0x40)
	WelcomeText     = RGB(0x20, 0xA0, 0xFF)
	HealthRecovered = RGB(0x00, 0xFF, 0x00)

	BarText   = White
	BarFilled = RGB(0x00, 0x60, 0x00)
	BarEmpty  = RGB(0x40, 0x10, 0x10)
)

// Dim darkens every non-default colour on the console towards black
// factor 0 leaves colours unchanged, 1 turns them black
func (c *Console) Dim(factor float64) {
	w, h := c.Width(), c.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := gruid.Point{X: x, Y: y}
			cell := c.grid.At(p)
			cell.Style.Fg = dimColor(cell.Style.Fg, factor)
			cell.Style.Bg = dimColor(cell.Style.Bg, factor)
			c.grid.Set(p, cell)
		}
	}
}

func dimColor(col gruid.Color, factor float64) gruid.Color {
	r, g, b, ok := Components(col)
	if !ok {
		return col
	}
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := src.BlendRgb(colorful.Color{}, factor)
	return RGB(out.RGB255())
}
