package hexgrid

// FloodOptions holds parameters and callbacks for Flood.
type FloodOptions struct {
	// Exclude is the terrain that may not be entered. NoExclude by default.
	Exclude Terrain

	// MaxSteps, if > 0, stops exploring beyond this many steps from origin.
	// Zero means no limit.
	MaxSteps int

	// OnVisit is called as each tile is visited, origin first. Returning
	// false stops the flood; the tile itself is still recorded.
	OnVisit func(t *Tile, steps int) bool
}

// FloodOption configures Flood.
type FloodOption func(*FloodOptions)

// DefaultFloodOptions returns FloodOptions with no exclusion, no step limit
// and a no-op visit hook.
func DefaultFloodOptions() FloodOptions {
	return FloodOptions{
		Exclude:  NoExclude,
		MaxSteps: 0,
		OnVisit:  func(*Tile, int) bool { return true },
	}
}

// FloodExcluding forbids entering tiles of terrain t.
func FloodExcluding(t Terrain) FloodOption {
	return func(o *FloodOptions) { o.Exclude = t }
}

// WithMaxSteps limits the flood to n steps from origin. n <= 0 removes the limit.
func WithMaxSteps(n int) FloodOption {
	return func(o *FloodOptions) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(t *Tile, steps int) bool) FloodOption {
	return func(o *FloodOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// FloodResult holds the outcome of a Flood:
//   - Order: tile ids in visit sequence, origin first.
//   - Steps: tile id -> number of steps from origin. When OnVisit stops the
//     flood early this also holds tiles that were queued but not visited.
//   - Parent: tile id -> previous tile id on a shortest route (origin absent).
type FloodResult struct {
	Order  []int
	Steps  map[int]int
	Parent map[int]int

	grid *Grid
}

// Tiles returns the visited tiles in visit order.
func (r *FloodResult) Tiles() []*Tile {
	out := make([]*Tile, 0, len(r.Order))
	for _, id := range r.Order {
		out = append(out, &r.grid.tiles[id])
	}
	return out
}

// Reached reports whether the flood got to the tile with the given id.
func (r *FloodResult) Reached(id int) bool {
	_, ok := r.Steps[id]
	return ok
}

// PathTo returns the route from the flood origin to the tile with the given
// id, origin excluded and destination last. Empty if the tile was not
// reached or is the origin.
func (r *FloodResult) PathTo(id int) []*Tile {
	if !r.Reached(id) {
		return nil
	}
	var out []*Tile
	for cur := id; ; {
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		out = append(out, &r.grid.tiles[cur])
		cur = parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Flood walks the passable tiles around origin breadth-first and records how
// many steps each one takes to reach. It answers movement-range questions
// such as "which tiles can a unit reach in three moves".
//
// Returns nil for a nil or foreign origin, and an empty result when origin
// itself has the excluded terrain.
//
// Complexity: O(N) over the tiles visited.
func (g *Grid) Flood(origin *Tile, opts ...FloodOption) *FloodResult {
	if !g.owns(origin) {
		return nil
	}
	o := DefaultFloodOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &FloodResult{
		Steps:  make(map[int]int),
		Parent: make(map[int]int),
		grid:   g,
	}
	if origin.excludedBy(o.Exclude) {
		return res
	}

	f := &flooder{grid: g, opts: o, res: res, queue: make([]floodItem, 0, 64)}
	f.enqueue(origin.id, 0, -1)
	f.loop()
	return res
}

// floodItem pairs a tile id with its step count.
type floodItem struct {
	id    int
	steps int
}

// flooder encapsulates mutable Flood state.
type flooder struct {
	grid  *Grid
	opts  FloodOptions
	res   *FloodResult
	queue []floodItem
}

// enqueue records id at the given step count and parent, then queues it.
func (f *flooder) enqueue(id, steps, parent int) {
	f.res.Steps[id] = steps
	if parent >= 0 {
		f.res.Parent[id] = parent
	}
	f.queue = append(f.queue, floodItem{id: id, steps: steps})
}

func (f *flooder) loop() {
	for len(f.queue) > 0 {
		item := f.queue[0]
		f.queue = f.queue[1:]

		f.res.Order = append(f.res.Order, item.id)
		if !f.opts.OnVisit(&f.grid.tiles[item.id], item.steps) {
			return
		}

		next := item.steps + 1
		if f.opts.MaxSteps > 0 && next > f.opts.MaxSteps {
			continue
		}
		for _, n := range f.grid.PassableAdjacents(&f.grid.tiles[item.id], f.opts.Exclude) {
			if _, seen := f.res.Steps[n.id]; seen {
				continue
			}
			f.enqueue(n.id, next, item.id)
		}
	}
}
