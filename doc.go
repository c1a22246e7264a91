// Package hextiles is a finite hexagonal tile grid with shortest-path,
// range and reachability queries, meant to sit underneath turn-based games
// and simulations.
//
// What is in here?
//
//		• hexgrid/  - grid construction (rectangle or diamond), the three-axis
//		              coordinate model, adjacency, hex distance, A* paths with
//		              one excluded terrain, range windows, flood, regions,
//		              wall-breaching paths
//		• terrain/  - paints tile terrain from layered simplex noise
//		• scenario/ - YAML scenario files: grid, walls, queries, expectations
//		• cmd/hexpath - runs scenario files from the command line
//
// Design notes:
//
//   - Tiles live in one dense slice owned by the Grid; neighbors are found
//     by coordinate lookup, never stored.
//   - Path searches keep their state in per-call side tables, so several
//     read-only searches may run on one grid at the same time.
//   - Nothing logs unless a *slog.Logger is supplied.
//
// Flat-top hexes, every other column shifted by half a row:
//
//	 __    __
//	/  \__/  \__
//	\__/  \__/  \
//	/  \__/  \__/
//	\__/  \__/  \
//	   \__/  \__/
//
//	go get github.com/katalvlaran/hextiles/hexgrid
package hextiles
