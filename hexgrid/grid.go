package hexgrid

import (
	"fmt"
	"log/slog"
)

// Grid is a finite hexagonal tile grid. Its structure (tile count,
// positions, adjacency) is fixed by New; only tile terrain may change.
type Grid struct {
	width, height int
	shape         Shape
	tiles         []Tile
	index         map[rowCol]int
	corners       [4]int
	mid           int
}

// rowCol keys the position index by row (Y1+Y2) and column (X).
type rowCol struct {
	y, x int
}

// New generates a width×height grid and carves it into the requested shape.
// Returns ErrInvalidDimensions if either dimension is below MinDimension;
// no partial grid is produced.
//
// Steps:
//  1. Lay out a skewed lattice column by column.
//  2. Carve the shape (Diamond keeps tiles near the middle tile).
//  3. Shift all coordinates so that Y1, Y2 and X are non-negative.
//  4. Index tiles by (Y, X).
//  5. Rediscover the true corners by walking out from the middle tile.
//
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := newBuilder(width, height)
	b.layout()
	if cfg.Shape == Diamond {
		b.carveDiamond()
	}
	b.normalize()

	g := &Grid{
		width:  width,
		height: height,
		shape:  cfg.Shape,
		tiles:  b.tiles,
		index:  make(map[rowCol]int, len(b.tiles)),
		mid:    b.mid,
	}
	for i := range g.tiles {
		p := g.tiles[i].pos
		g.index[rowCol{y: p.Y(), x: p.X}] = i
	}
	g.rediscoverCorners()

	if cfg.Logger != nil {
		g.logBuilt(cfg.Logger, b.approx)
	}

	return g, nil
}

// builder holds the transient state of one New call.
type builder struct {
	width, height int
	tiles         []Tile
	approx        [4]int // column/row corners, -1 once carved away
	mid           int
	min           Position
}

func newBuilder(width, height int) *builder {
	return &builder{
		width:  width,
		height: height,
		tiles:  make([]Tile, 0, width*height),
	}
}

// layout creates every tile of the lattice. On even columns the Y1 seed
// drops by one, on odd columns the Y2 seed rises by one, which skews the
// columns into a parallelogram.
func (b *builder) layout() {
	initY1, initY2 := 1, 0
	for col := 0; col < b.width; col++ {
		if col%2 == 0 {
			initY1--
		} else {
			initY2++
		}
		for row := 0; row < b.height; row++ {
			id := len(b.tiles)
			b.tiles = append(b.tiles, Tile{
				id:      id,
				pos:     Position{Y1: initY1 + row, Y2: initY2 + row, X: col},
				terrain: TerrainNone,
			})
			b.track(id, col, row)
		}
	}
	b.min = minima(b.tiles)
}

// track records the approximate corners and the middle tile.
func (b *builder) track(id, col, row int) {
	lastCol, lastRow := b.width-1, b.height-1
	switch {
	case col == 0 && row == 0:
		b.approx[BottomLeftCorner] = id
	case col == 0 && row == lastRow:
		b.approx[TopLeftCorner] = id
	case col == lastCol && row == 0:
		b.approx[BottomRightCorner] = id
	case col == lastCol && row == lastRow:
		b.approx[TopRightCorner] = id
	}
	if col == b.width/2 && row == b.height/2 {
		b.mid = id
	}
}

// carveDiamond drops every tile farther than the diamond radius from the
// middle tile, then renumbers the survivors densely in their original order.
// Minima are recomputed since carving can remove the extremal tiles.
func (b *builder) carveDiamond() {
	limit := ((b.width + b.height) / 2) / 3
	center := b.tiles[b.mid].pos

	remap := make(map[int]int, len(b.tiles))
	kept := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		if t.pos.DistanceTo(center) > limit {
			continue
		}
		remap[t.id] = len(kept)
		t.id = len(kept)
		kept = append(kept, t)
	}
	b.tiles = kept
	b.mid = remap[b.mid]
	for c, old := range b.approx {
		if id, ok := remap[old]; ok {
			b.approx[c] = id
		} else {
			b.approx[c] = -1
		}
	}
	b.min = minima(b.tiles)
}

// normalize shifts every coordinate so that the minima become zero.
func (b *builder) normalize() {
	for i := range b.tiles {
		p := &b.tiles[i].pos
		p.Y1 -= b.min.Y1
		p.Y2 -= b.min.Y2
		p.X -= b.min.X
	}
}

// minima returns the smallest Y1, Y2 and X over tiles (each independently).
func minima(tiles []Tile) Position {
	m := tiles[0].pos
	for _, t := range tiles[1:] {
		m.Y1 = min(m.Y1, t.pos.Y1)
		m.Y2 = min(m.Y2, t.pos.Y2)
		m.X = min(m.X, t.pos.X)
	}
	return m
}

// rediscoverCorners walks from the middle tile along each corner's diagonal
// until the boundary, then straight down (bottom corners) or up (top
// corners) until the boundary again. The two-phase walk finds the extremal
// tile even when carving left an irregular edge.
func (g *Grid) rediscoverCorners() {
	g.corners[BottomLeftCorner] = g.walk(g.mid, BottomLeft, Bottom)
	g.corners[BottomRightCorner] = g.walk(g.mid, BottomRight, Bottom)
	g.corners[TopLeftCorner] = g.walk(g.mid, TopLeft, Top)
	g.corners[TopRightCorner] = g.walk(g.mid, TopRight, Top)
}

// walk follows each direction in turn for as long as a neighbor exists and
// returns the id of the tile it stops on.
func (g *Grid) walk(from int, dirs ...Direction) int {
	cur := &g.tiles[from]
	for _, d := range dirs {
		for next := g.Adjacent(cur, d); next != nil; next = g.Adjacent(cur, d) {
			cur = next
		}
	}
	return cur.id
}

func (g *Grid) logBuilt(l *slog.Logger, approx [4]int) {
	l.Debug("hexgrid: grid built",
		"width", g.width,
		"height", g.height,
		"shape", g.shape.String(),
		"tiles", len(g.tiles),
		"mid", g.mid,
		slog.Group("corners",
			"bottom_left", g.corners[BottomLeftCorner],
			"bottom_right", g.corners[BottomRightCorner],
			"top_left", g.corners[TopLeftCorner],
			"top_right", g.corners[TopRightCorner],
		),
	)
	for c := BottomLeftCorner; c <= TopRightCorner; c++ {
		if approx[c] == g.corners[c] {
			continue
		}
		l.Debug("hexgrid: corner moved by boundary walk",
			"corner", c.String(),
			"approx", approx[c],
			"walked", g.corners[c],
		)
	}
}

// Width returns the requested column count.
func (g *Grid) Width() int { return g.width }

// Height returns the requested row count.
func (g *Grid) Height() int { return g.height }

// Shape returns the carved silhouette.
func (g *Grid) Shape() Shape { return g.shape }

// TileCount returns the number of tiles in the grid.
func (g *Grid) TileCount() int { return len(g.tiles) }

// Tiles returns every tile in id order. The slice is fresh; the tiles are not.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		out[i] = &g.tiles[i]
	}
	return out
}

// Corner returns one of the four extremal tiles, or nil for an unknown corner.
//
// Corners are found by the boundary walk in New, not by column and row. On
// a rectangle they are the column 0 / column width-1 tiles of rows 0 and
// height-1 whenever height >= width/2+2. On wider grids the diagonal leg of
// the walk reaches the top or bottom edge first, and the corner can sit one
// or more columns inward: on 6×4 the top-left corner is in column 1, and on
// 12×4 the bottom-left corner is in column 2.
func (g *Grid) Corner(c Corner) *Tile {
	if c < BottomLeftCorner || c > TopRightCorner {
		return nil
	}
	return &g.tiles[g.corners[c]]
}

// Mid returns the tile at column width/2, row height/2 of the original lattice.
func (g *Grid) Mid() *Tile { return &g.tiles[g.mid] }

// Tile returns the tile with the given id, or nil if id is out of range.
func (g *Grid) Tile(id int) *Tile {
	if id < 0 || id >= len(g.tiles) {
		return nil
	}
	return &g.tiles[id]
}

// TileAtRow returns the tile at row y (Y1+Y2) and column x, or nil.
// Normalized coordinates are never negative, so negative input is nil.
func (g *Grid) TileAtRow(y, x int) *Tile {
	if y < 0 || x < 0 {
		return nil
	}
	id, ok := g.index[rowCol{y: y, x: x}]
	if !ok {
		return nil
	}
	return &g.tiles[id]
}

// TileAt returns the tile at (y1, y2, x), or nil.
// The lookup goes through the (Y, X) index and then confirms Y1, so a
// coordinate triple that is off the lattice never aliases a real tile.
func (g *Grid) TileAt(y1, y2, x int) *Tile {
	if y1 < 0 || y2 < 0 || x < 0 {
		return nil
	}
	t := g.TileAtRow(y1+y2, x)
	if t == nil || t.pos.Y1 != y1 {
		return nil
	}
	return t
}

// TileWithDelta returns the tile offset from origin by (dy1, dy2, dx), or nil.
func (g *Grid) TileWithDelta(origin *Tile, dy1, dy2, dx int) *Tile {
	if !g.owns(origin) {
		return nil
	}
	p := origin.pos.Add(Position{Y1: dy1, Y2: dy2, X: dx})
	return g.TileAt(p.Y1, p.Y2, p.X)
}

// owns reports whether t is a tile of this grid.
func (g *Grid) owns(t *Tile) bool {
	return t != nil && t.id >= 0 && t.id < len(g.tiles) && &g.tiles[t.id] == t
}
