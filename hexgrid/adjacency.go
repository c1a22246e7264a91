package hexgrid

import "github.com/katalvlaran/hextiles/internal/mathx"

// Adjacent returns the neighbor of t in direction dir, or nil at the grid
// boundary. dir is reduced modulo NumDirections first.
func (g *Grid) Adjacent(t *Tile, dir Direction) *Tile {
	if !g.owns(t) {
		return nil
	}
	p := t.pos.Add(dir.Delta())
	return g.TileAt(p.Y1, p.Y2, p.X)
}

// Adjacents returns all six neighbor slots of t in clockwise order from Top.
// Slots past the boundary are nil.
func (g *Grid) Adjacents(t *Tile) [NumDirections]*Tile {
	var out [NumDirections]*Tile
	for d := Top; d < NumDirections; d++ {
		out[d] = g.Adjacent(t, d)
	}
	return out
}

// NonNullAdjacents returns the existing neighbors of t in clockwise order,
// whatever their terrain.
func (g *Grid) NonNullAdjacents(t *Tile) []*Tile {
	out := make([]*Tile, 0, NumDirections)
	for _, n := range g.Adjacents(t) {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// PassableAdjacents returns the existing neighbors of t whose terrain is not
// exclude, in clockwise order. Pass NoExclude to keep every neighbor.
func (g *Grid) PassableAdjacents(t *Tile, exclude Terrain) []*Tile {
	out := make([]*Tile, 0, NumDirections)
	for _, n := range g.Adjacents(t) {
		if n == nil || n.excludedBy(exclude) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsAdjacent reports whether a and b are distinct tiles whose Y1, Y2 and X
// each differ by at most one. This is a proximity test on coordinates and is
// looser than membership in the six-neighbor set.
func IsAdjacent(a, b *Tile) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	return mathx.Abs(a.pos.Y1-b.pos.Y1) <= 1 &&
		mathx.Abs(a.pos.Y2-b.pos.Y2) <= 1 &&
		mathx.Abs(a.pos.X-b.pos.X) <= 1
}

// Distance returns the hex distance between a and b: the number of single
// neighbor steps on an unobstructed grid. Nil input yields 0.
func Distance(a, b *Tile) int {
	if a == nil || b == nil || a == b {
		return 0
	}
	return a.pos.DistanceTo(b.pos)
}
