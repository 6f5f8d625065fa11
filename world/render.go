package world

import (
	"fmt"

	"codeberg.org/anaseto/gruid"

	"github.com/lixenwraith/vi-rogue/console"
)

// Health bar placement; the bar sits two lines below the map
const (
	barX      = 0
	barOffset = 2
	barWidth  = 20
)

// Render implements engine.World: terrain, visible entities, then the health bar
func (g *Game) Render(con *console.Console) {
	m := g.Map
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := gruid.Point{X: x, Y: y}
			gr := Shroud
			switch {
			case m.Visible(p):
				gr = TileOf(m.Terrain.At(p)).Light
			case m.Explored(p):
				gr = TileOf(m.Terrain.At(p)).Dark
			}
			con.Set(x, y, gr.Ch, gr.Fg, gr.Bg)
		}
	}

	for _, e := range g.renderOrder() {
		if !m.Visible(e.Pos) {
			continue
		}
		bg := TileOf(m.Terrain.At(e.Pos)).Light.Bg
		con.Set(e.Pos.X, e.Pos.Y, e.Char, e.Color, bg)
	}

	f := g.player.Fighter
	renderBar(con, m.height+barOffset, f.HP, f.MaxHP, barWidth)
}

func renderBar(con *console.Console, y, value, maximum, width int) {
	filled := 0
	if maximum > 0 {
		filled = value * width / maximum
	}
	for x := 0; x < width; x++ {
		bg := console.BarEmpty
		if x < filled {
			bg = console.BarFilled
		}
		con.Set(barX+x, y, ' ', console.BarText, bg)
	}
	label := fmt.Sprintf("HP: %d/%d", value, maximum)
	for i, r := range label {
		if i+1 >= width {
			break
		}
		bg := console.BarEmpty
		if i+1 < filled {
			bg = console.BarFilled
		}
		con.Set(barX+1+i, y, r, console.BarText, bg)
	}
}
