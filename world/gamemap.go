package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Map is one dungeon level: terrain, what the player sees and has seen, and the entities on it
type Map struct {
	Terrain  rl.Grid
	Entities []*Entity

	width, height int
	visible       []bool
	explored      []bool
}

// NewMap creates a map filled with walls
func NewMap(width, height int) *Map {
	m := &Map{
		Terrain:  rl.NewGrid(width, height),
		width:    width,
		height:   height,
		visible:  make([]bool, width*height),
		explored: make([]bool, width*height),
	}
	m.Terrain.Fill(Wall)
	return m
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// InBounds reports whether x, y is inside the map
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) idx(p gruid.Point) int {
	return p.Y*m.width + p.X
}

// Walkable reports whether terrain at p can be entered
func (m *Map) Walkable(p gruid.Point) bool {
	return m.InBounds(p.X, p.Y) && TileOf(m.Terrain.At(p)).Walkable
}

// Transparent reports whether terrain at p lets light through
func (m *Map) Transparent(p gruid.Point) bool {
	return m.InBounds(p.X, p.Y) && TileOf(m.Terrain.At(p)).Transparent
}

// Visible reports whether p is in the player's field of view
func (m *Map) Visible(p gruid.Point) bool {
	return m.InBounds(p.X, p.Y) && m.visible[m.idx(p)]
}

// Explored reports whether p has ever been seen
func (m *Map) Explored(p gruid.Point) bool {
	return m.InBounds(p.X, p.Y) && m.explored[m.idx(p)]
}

// setVisible replaces the field of view; visible points become explored
func (m *Map) setVisible(pts []gruid.Point) {
	clear(m.visible)
	for _, p := range pts {
		if !m.InBounds(p.X, p.Y) {
			continue
		}
		m.visible[m.idx(p)] = true
		m.explored[m.idx(p)] = true
	}
}

// BlockingAt returns the entity blocking movement at p, or nil
func (m *Map) BlockingAt(p gruid.Point) *Entity {
	for _, e := range m.Entities {
		if e.Blocks && e.Pos == p {
			return e
		}
	}
	return nil
}

// ActorAt returns the living actor at p, or nil
func (m *Map) ActorAt(p gruid.Point) *Entity {
	for _, e := range m.Entities {
		if e.IsAlive() && e.Pos == p {
			return e
		}
	}
	return nil
}

// ItemsAt returns the items lying at p
func (m *Map) ItemsAt(p gruid.Point) []*Entity {
	var out []*Entity
	for _, e := range m.Entities {
		if e.Consumable != nil && e.Pos == p {
			out = append(out, e)
		}
	}
	return out
}

// Actors returns every living actor
func (m *Map) Actors() []*Entity {
	var out []*Entity
	for _, e := range m.Entities {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

func (m *Map) add(e *Entity) {
	m.Entities = append(m.Entities, e)
}

func (m *Map) remove(e *Entity) {
	for i, x := range m.Entities {
		if x == e {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			return
		}
	}
}
