package hexgrid

import "container/heap"

// BreachPath finds a route from origin to target that enters as few tiles of
// terrain exclude as possible, and among those the one with the fewest steps.
// It answers "how many walls must be cleared to get there", which FindPath
// cannot since it treats excluded tiles as impassable.
//
// Returns the path (origin excluded, target last) and the number of excluded
// tiles it enters, target included. Degenerate input (nil or foreign tiles,
// origin == target) yields nil and 0.
//
// Behavior:
//  1. Entering a passable tile costs 1; entering an excluded tile costs
//     N+1, where N is the tile count. Any route has fewer than N+1 steps, so
//     minimizing the total minimizes crossings first and steps second.
//  2. Dijkstra over that cost with a lazy-deletion heap.
//  3. Reconstruct via predecessor ids.
//
// Complexity: O(N log N) time, O(N) memory.
func (g *Grid) BreachPath(origin, target *Tile, exclude Terrain) ([]*Tile, int) {
	if !g.owns(origin) || !g.owns(target) || origin == target {
		return nil, 0
	}

	n := len(g.tiles)
	wall := n + 1
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	pq := make(openHeap, 0, 64)
	dist[origin.id] = 0
	heap.Push(&pq, openItem{id: origin.id, g: 0, f: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(openItem)
		if item.g != dist[item.id] {
			continue
		}
		if item.id == target.id {
			break
		}
		for _, nb := range g.NonNullAdjacents(&g.tiles[item.id]) {
			step := 1
			if nb.excludedBy(exclude) {
				step = wall
			}
			nd := item.g + step
			if nd < dist[nb.id] {
				dist[nb.id] = nd
				prev[nb.id] = item.id
				heap.Push(&pq, openItem{id: nb.id, g: nd, f: nd})
			}
		}
	}

	if prev[target.id] < 0 {
		return nil, 0
	}
	var path []*Tile
	for at := target.id; at != origin.id; at = prev[at] {
		path = append(path, &g.tiles[at])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target.id] / wall
}
