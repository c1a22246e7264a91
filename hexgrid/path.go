// A* shortest paths over the passable tiles of a Grid.
//
// Every passable tile costs 1 to enter and the hex distance to the target
// is the heuristic, which is admissible and consistent on this lattice.
//
// Complexity:
//
//   - Time:  O(N log N), N = tiles explored.
//   - Space: O(T) for the per-call side table (T = tiles in the grid)
//     plus O(N) heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Search state is a side table indexed by tile id and allocated per call,
//     so tiles carry no search fields and read-only searches may overlap.
//   - The open list is a binary min-heap on g+h. When a cheaper route to a
//     queued or closed tile turns up, the tile is evicted from both sets and
//     pushed again; the old heap entry goes stale and is skipped on pop.
//   - Equal g+h ties are broken by the lower tile id. This keeps results
//     reproducible but is not part of the contract.

package hexgrid

import (
	"container/heap"
	"math"
)

// PathOptions configures path queries.
type PathOptions struct {
	// Exclude is the terrain that may not be entered. NoExclude by default.
	Exclude Terrain
	// MaxLength caps the number of steps a returned path may have.
	// math.MaxInt by default (no cap).
	MaxLength int
}

// PathOption represents a functional option for path queries.
type PathOption func(*PathOptions)

// DefaultPathOptions returns PathOptions that exclude nothing and impose no
// length cap.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Exclude:   NoExclude,
		MaxLength: math.MaxInt,
	}
}

// Excluding forbids entering (or starting on) tiles of terrain t.
func Excluding(t Terrain) PathOption {
	return func(o *PathOptions) { o.Exclude = t }
}

// WithMaxLength drops paths longer than n steps. n <= 0 removes the cap,
// matching WithMaxSteps.
func WithMaxLength(n int) PathOption {
	return func(o *PathOptions) {
		if n <= 0 {
			n = math.MaxInt
		}
		o.MaxLength = n
	}
}

func buildPathOptions(opts []PathOption) PathOptions {
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FindPath returns the shortest sequence of tiles leading from origin to
// target. origin is not included; target is the last element. The result is
// empty when no path exists or the query is degenerate.
//
// Fast rejects (in order):
//  1. origin or target is nil or belongs to another grid.
//  2. origin == target.
//  3. origin or target has the excluded terrain.
//  4. origin or target has no passable neighbor.
func (g *Grid) FindPath(origin, target *Tile, opts ...PathOption) []*Tile {
	cfg := buildPathOptions(opts)
	return g.findPath(origin, target, cfg)
}

// FindPathByID is FindPath addressed by tile id. Unknown ids yield an empty result.
func (g *Grid) FindPathByID(originID, targetID int, opts ...PathOption) []*Tile {
	origin, target := g.Tile(originID), g.Tile(targetID)
	if origin == nil || target == nil {
		return nil
	}
	return g.FindPath(origin, target, opts...)
}

// FindPathToAdjacentOf returns the shortest path from origin to any passable
// neighbor of target. When several neighbors are equally close the first in
// clockwise order from Top wins. Empty when origin == target or no neighbor
// is reachable.
func (g *Grid) FindPathToAdjacentOf(origin, target *Tile, opts ...PathOption) []*Tile {
	if !g.owns(origin) || !g.owns(target) || origin == target {
		return nil
	}
	cfg := buildPathOptions(opts)

	var best []*Tile
	for _, n := range g.PassableAdjacents(target, cfg.Exclude) {
		p := g.findPath(origin, n, cfg)
		if len(p) == 0 {
			continue
		}
		if best == nil || len(p) < len(best) {
			best = p
		}
	}
	return best
}

// FindPathToAdjacentOfByID is FindPathToAdjacentOf addressed by tile id.
func (g *Grid) FindPathToAdjacentOfByID(originID, targetID int, opts ...PathOption) []*Tile {
	origin, target := g.Tile(originID), g.Tile(targetID)
	if origin == nil || target == nil {
		return nil
	}
	return g.FindPathToAdjacentOf(origin, target, opts...)
}

func (g *Grid) findPath(origin, target *Tile, cfg PathOptions) []*Tile {
	if !g.owns(origin) || !g.owns(target) || origin == target {
		return nil
	}
	if origin.excludedBy(cfg.Exclude) || target.excludedBy(cfg.Exclude) {
		return nil
	}
	if len(g.PassableAdjacents(origin, cfg.Exclude)) == 0 ||
		len(g.PassableAdjacents(target, cfg.Exclude)) == 0 {
		return nil
	}
	if Distance(origin, target) > cfg.MaxLength {
		return nil
	}

	s := newSearch(g, target, cfg)
	s.run(origin)
	return s.path()
}

// searchState is the per-tile record of one search.
type searchState struct {
	g      int // steps from origin; -1 until first reached
	h      int // hex distance to target
	parent int // previous tile id on the best known route; -1 for none
	open   bool
	closed bool
}

// search holds the mutable state for a single A* execution.
type search struct {
	grid   *Grid
	target *Tile
	cfg    PathOptions
	state  []searchState
	pq     openHeap
}

func newSearch(g *Grid, target *Tile, cfg PathOptions) *search {
	state := make([]searchState, len(g.tiles))
	for i := range state {
		state[i] = searchState{g: -1, h: -1, parent: -1}
	}
	return &search{
		grid:   g,
		target: target,
		cfg:    cfg,
		state:  state,
		pq:     make(openHeap, 0, 64),
	}
}

// run expands tiles in order of g+h until the target is selected or the
// open set is exhausted.
func (s *search) run(origin *Tile) {
	st := &s.state[origin.id]
	st.g = 0
	st.h = Distance(origin, s.target)
	s.open(origin.id)

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(openItem)
		cur := &s.state[item.id]
		// Stale entry: evicted, already closed, or superseded by a cheaper push.
		if !cur.open || item.g != cur.g {
			continue
		}
		if item.id == s.target.id {
			return
		}
		cur.open = false
		cur.closed = true
		s.expand(item.id)
	}
}

// expand relaxes every passable neighbor of tile id.
func (s *search) expand(id int) {
	from := &s.grid.tiles[id]
	cand := s.state[id].g + 1
	if cand > s.cfg.MaxLength {
		return
	}
	for _, n := range s.grid.PassableAdjacents(from, s.cfg.Exclude) {
		st := &s.state[n.id]
		if st.g >= 0 && cand < st.g {
			// Cheaper route found: force re-expansion.
			st.open = false
			st.closed = false
		}
		if st.open || st.closed {
			continue
		}
		st.g = cand
		st.h = Distance(n, s.target)
		st.parent = id
		s.open(n.id)
	}
}

func (s *search) open(id int) {
	st := &s.state[id]
	st.open = true
	heap.Push(&s.pq, openItem{id: id, g: st.g, f: st.g + st.h})
}

// path follows parent links back from the target. Empty if the target was
// never reached.
func (s *search) path() []*Tile {
	if s.state[s.target.id].parent < 0 {
		return nil
	}
	out := make([]*Tile, 0, s.state[s.target.id].g)
	for id := s.target.id; s.state[id].parent >= 0; id = s.state[id].parent {
		out = append(out, &s.grid.tiles[id])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// openItem is one heap entry: tile id, its g at push time, and g+h.
type openItem struct {
	id int
	g  int
	f  int
}

// openHeap is a min-heap of openItem ordered by f, then by tile id.
type openHeap []openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].id < h[j].id
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(openItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
