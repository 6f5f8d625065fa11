package world

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
)

// Options controls dungeon generation
type Options struct {
	Width, Height      int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	InventoryCapacity  int
}

// DefaultOptions is an 80x43 dungeon
func DefaultOptions() Options {
	return Options{
		Width:              80,
		Height:             43,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    2,
		InventoryCapacity:  26,
	}
}

// room is a rectangle whose border is wall and interior is floor
type room struct {
	x1, y1, x2, y2 int
}

func newRoom(x, y, w, h int) room {
	return room{x1: x, y1: y, x2: x + w, y2: y + h}
}

func (r room) center() gruid.Point {
	return gruid.Point{X: (r.x1 + r.x2) / 2, Y: (r.y1 + r.y2) / 2}
}

// inner is the floor area
func (r room) inner() gruid.Range {
	return gruid.NewRange(r.x1+1, r.y1+1, r.x2, r.y2)
}

func (r room) intersects(o room) bool {
	return r.x1 <= o.x2 && r.x2 >= o.x1 && r.y1 <= o.y2 && r.y2 >= o.y1
}

// tunnel returns an L-shaped corridor between two points
func tunnel(rng *rand.Rand, from, to gruid.Point) []gruid.Point {
	corner := gruid.Point{X: to.X, Y: from.Y}
	if rng.IntN(2) == 0 {
		corner = gruid.Point{X: from.X, Y: to.Y}
	}
	var pts []gruid.Point
	pts = append(pts, line(from, corner)...)
	pts = append(pts, line(corner, to)...)
	return pts
}

// line returns the points of an axis-aligned segment, both ends included
func line(a, b gruid.Point) []gruid.Point {
	step := gruid.Point{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
	pts := []gruid.Point{a}
	for p := a; p != b; {
		p = p.Add(step)
		pts = append(pts, p)
	}
	return pts
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// generate digs rooms and tunnels into m, places monsters and items, and returns the
// player's starting position
func (g *Game) generate(opts Options) gruid.Point {
	m := g.Map
	var rooms []room
	var start gruid.Point

	for range opts.MaxRooms {
		w := opts.RoomMinSize + g.rand.IntN(opts.RoomMaxSize-opts.RoomMinSize+1)
		h := opts.RoomMinSize + g.rand.IntN(opts.RoomMaxSize-opts.RoomMinSize+1)
		if w >= m.width || h >= m.height {
			continue
		}
		x := g.rand.IntN(m.width - w)
		y := g.rand.IntN(m.height - h)
		r := newRoom(x, y, w, h)

		overlaps := false
		for _, o := range rooms {
			if r.intersects(o) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		m.Terrain.Slice(r.inner()).Fill(Floor)

		if len(rooms) == 0 {
			start = r.center()
		} else {
			for _, p := range tunnel(g.rand, rooms[len(rooms)-1].center(), r.center()) {
				m.Terrain.Set(p, Floor)
			}
			g.populate(r, opts)
		}
		rooms = append(rooms, r)
	}

	if len(rooms) == 0 {
		// room sizes larger than the map: open a single cell for the player
		start = gruid.Point{X: m.width / 2, Y: m.height / 2}
		m.Terrain.Set(start, Floor)
	}

	g.logger.WithField("rooms", len(rooms)).Debug("dungeon generated")
	return start
}

// populate places monsters and items inside a room
func (g *Game) populate(r room, opts Options) {
	inner := r.inner()
	randomPoint := func() gruid.Point {
		return gruid.Point{
			X: inner.Min.X + g.rand.IntN(inner.Size().X),
			Y: inner.Min.Y + g.rand.IntN(inner.Size().Y),
		}
	}

	for range g.rand.IntN(opts.MaxMonstersPerRoom + 1) {
		p := randomPoint()
		if g.Map.BlockingAt(p) != nil {
			continue
		}
		if g.rand.Float64() < 0.8 {
			g.spawn(newOrc(), p)
		} else {
			g.spawn(newTroll(), p)
		}
	}

	for range g.rand.IntN(opts.MaxItemsPerRoom + 1) {
		p := randomPoint()
		if g.Map.BlockingAt(p) != nil || len(g.Map.ItemsAt(p)) > 0 {
			continue
		}
		g.spawn(newHealthPotion(), p)
	}
}
