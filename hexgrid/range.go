package hexgrid

import (
	"cmp"
	"slices"
)

// TilesWithinDelta returns every tile at hex distance <= delta from origin,
// origin included, ordered by id. delta < 0 yields nil and delta == 0 yields
// just origin.
//
// Only the hexagonal window of coordinates around origin is checked, so the
// cost is O(delta²) lookups regardless of grid size.
func (g *Grid) TilesWithinDelta(origin *Tile, delta int) []*Tile {
	if !g.owns(origin) || delta < 0 {
		return nil
	}
	if delta == 0 {
		return []*Tile{origin}
	}
	return g.window(origin, delta, func(int) bool { return true })
}

// TilesWithDelta returns every tile at exactly hex distance delta from
// origin, ordered by id. delta == 1 returns the existing neighbors in
// clockwise order instead. delta < 0 yields nil and delta == 0 yields just
// origin.
func (g *Grid) TilesWithDelta(origin *Tile, delta int) []*Tile {
	if !g.owns(origin) || delta < 0 {
		return nil
	}
	switch delta {
	case 0:
		return []*Tile{origin}
	case 1:
		return g.NonNullAdjacents(origin)
	}
	return g.window(origin, delta, func(dist int) bool { return dist == delta })
}

// window visits every coordinate within hex distance d of origin and keeps
// the tiles whose distance satisfies keep.
//
// On this lattice Y2-Y1 grows with X, so a step of (dy1, dx) fixes
// dy2 = dy1+dx and the hex distance is max(|dx|, |dy1|, |dy2|).
func (g *Grid) window(origin *Tile, d int, keep func(dist int) bool) []*Tile {
	out := make([]*Tile, 0, 3*d*(d+1)+1)
	for dx := -d; dx <= d; dx++ {
		lo, hi := max(-d, -d-dx), min(d, d-dx)
		for dy1 := lo; dy1 <= hi; dy1++ {
			t := g.TileWithDelta(origin, dy1, dy1+dx, dx)
			if t == nil || !keep(Distance(origin, t)) {
				continue
			}
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b *Tile) int { return cmp.Compare(a.id, b.id) })
	return out
}
