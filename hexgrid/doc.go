// Package hexgrid builds a finite hexagonal tile grid and answers lookup,
// range and shortest-path queries over it.
//
// What:
//
//   - Grid generates a skewed hex lattice of Width×Height tiles, optionally
//     carved into a Diamond around its middle tile.
//   - Every tile is addressed by a three-coordinate Position (Y1, Y2, X);
//     Y = Y1+Y2 is the row coordinate used for lookups.
//   - Six neighbor Directions, clockwise from Top, resolve through the Grid.
//   - FindPath runs A* over passable tiles, optionally avoiding one terrain.
//   - Range queries return tiles within, or exactly at, a hex distance.
//   - Flood, Regions and BreachPath answer movement-range, connectivity and
//     "fewest walls to cross" questions.
//
// Coordinates:
//
//	          Higher Y1            Higher Y2
//	              \\                  //
//	               \\   /--------\   //
//	                   /   Top    \
//	          /--------\          /--------\
//	         /  TopLeft \--------/ TopRight \
//	         \          /--------\          /
//	  Lower X \--------/   tile   \--------/ Higher X
//	          /--------\          /--------\
//	         /BottomLeft\--------/BottomRight\
//	         \          /--------\          /
//	          \--------/  Bottom  \--------/
//	               //  \--------/  \\
//	          Lower Y1              Lower Y2
//
// Storage:
//
//   - The Grid holds its tiles by value in a dense slice; a tile's ID is its
//     index. Tiles never point at each other or at the Grid; every neighbor
//     access is a coordinate lookup on the Grid.
//   - Search state lives in side tables allocated per call, so tiles carry
//     no transient fields.
//
// Concurrency:
//
//   - No internal locking. Terrain changes (Tile.SetTerrain) and queries on
//     the same Grid must be serialized by the caller.
//   - Queries on an unchanging Grid may run in parallel; separate Grids share
//     nothing.
//
// Complexity:
//
//   - New:              O(W×H) time and memory.
//   - FindPath:         O(N log N), N = tiles explored.
//   - TilesWithinDelta: O(d²) lookups for distance d.
//   - Flood, Regions:   O(N).
//   - BreachPath:       O(N log N).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below MinDimension.
//
// Lookups that do not resolve return nil; queries that cannot be satisfied
// return an empty result. Neither is reported as an error.
package hexgrid
