package hexgrid

// Regions finds all connected groups of tiles whose terrain is not exclude.
// Pass NoExclude to treat every tile as passable (a freshly built grid is
// always one region).
//
// Each region is a slice of tile ids in breadth-first discovery order,
// starting from its lowest id; regions are ordered by that lowest id.
//
// Time:   O(N).
// Memory: O(N) for seen flags and output.
func (g *Grid) Regions(exclude Terrain) [][]int {
	seen := make([]bool, len(g.tiles))
	var regions [][]int

	for i := range g.tiles {
		if seen[i] || g.tiles[i].excludedBy(exclude) {
			continue
		}
		// BFS to collect the region
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.PassableAdjacents(&g.tiles[queue[qi]], exclude) {
				if !seen[n.id] {
					seen[n.id] = true
					queue = append(queue, n.id)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether a and b can reach each other without entering
// terrain exclude. A tile is connected to itself unless it is excluded.
//
// This is cheaper than FindPath when only reachability matters.
func (g *Grid) Connected(a, b *Tile, exclude Terrain) bool {
	if !g.owns(a) || !g.owns(b) {
		return false
	}
	if a.excludedBy(exclude) || b.excludedBy(exclude) {
		return false
	}
	if a == b {
		return true
	}
	found := false
	g.Flood(a, FloodExcluding(exclude), WithOnVisit(func(t *Tile, _ int) bool {
		found = t == b
		return !found
	}))
	return found
}
