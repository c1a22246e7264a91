// Package hexgrid defines core types, options, and sentinel errors
// for the hexgrid package of github.com/katalvlaran/hextiles.
package hexgrid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/hextiles/internal/mathx"
)

// MinDimension is the smallest accepted width or height.
const MinDimension = 4

// Sentinel errors for hexgrid operations.
var (
	// ErrInvalidDimensions indicates a width or height below MinDimension.
	ErrInvalidDimensions = errors.New("hexgrid: width and height must be at least 4")

	// ErrUnknownShape indicates a shape name that ParseShape does not recognize.
	ErrUnknownShape = errors.New("hexgrid: unknown shape")

	// ErrUnknownCorner indicates a corner name that ParseCorner does not recognize.
	ErrUnknownCorner = errors.New("hexgrid: unknown corner")

	// ErrUnknownDirection indicates a direction name that ParseDirection does not recognize.
	ErrUnknownDirection = errors.New("hexgrid: unknown direction")
)

// Shape selects the silhouette carved out of the generated lattice.
type Shape int

const (
	// Rectangle keeps the full skewed lattice.
	Rectangle Shape = iota
	// Diamond keeps only tiles within a radius of the middle tile.
	Diamond
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Diamond:
		return "diamond"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape converts a case-insensitive shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rectangle":
		return Rectangle, nil
	case "diamond":
		return Diamond, nil
	}
	return Rectangle, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Corner names one of the four extremal tiles of a grid.
type Corner int

const (
	BottomLeftCorner Corner = iota
	BottomRightCorner
	TopLeftCorner
	TopRightCorner
)

var cornerNames = [...]string{"bottom-left", "bottom-right", "top-left", "top-right"}

// String returns the hyphenated corner name, e.g. "top-left".
func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerNames[c]
}

// ParseCorner converts a corner name such as "top-left" into a Corner.
// Underscores and spaces are accepted in place of the hyphen.
func ParseCorner(name string) (Corner, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	for i, cn := range cornerNames {
		if n == cn {
			return Corner(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCorner, name)
}

// Terrain is an opaque, caller-defined tag on a tile.
type Terrain int

const (
	// TerrainNone marks an untyped tile. New assigns it to every tile.
	TerrainNone Terrain = -1

	// NoExclude is a reserved value meaning "exclude nothing" wherever a
	// terrain to avoid is passed explicitly. SetTerrain stores it as TerrainNone.
	NoExclude Terrain = math.MinInt
)

// Position addresses a tile. Y1 and Y2 each advance along one of the two
// diagonal hex axes; X is the generation column.
type Position struct {
	Y1, Y2, X int
}

// Y returns the row coordinate Y1+Y2.
func (p Position) Y() int {
	return p.Y1 + p.Y2
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Y1: p.Y1 + d.Y1, Y2: p.Y2 + d.Y2, X: p.X + d.X}
}

// DistanceTo returns the hex distance between p and q.
func (p Position) DistanceTo(q Position) int {
	return (mathx.Abs(p.Y1-q.Y1) + mathx.Abs(p.Y2-q.Y2) + mathx.Abs(p.X-q.X)) / 2
}

// Tile is one addressable cell of a Grid. Tiles are created only by New and
// are only reachable through their Grid.
type Tile struct {
	id      int
	pos     Position
	terrain Terrain
}

// ID returns the dense, zero-based tile id.
func (t *Tile) ID() int { return t.id }

// Position returns the normalized tile coordinates.
func (t *Tile) Position() Position { return t.pos }

// Terrain returns the tile's terrain tag.
func (t *Tile) Terrain() Terrain { return t.terrain }

// SetTerrain changes the tile's terrain tag. It is the only mutation a
// built grid accepts and must not race with queries on the same grid.
// The reserved NoExclude value is stored as TerrainNone.
func (t *Tile) SetTerrain(terrain Terrain) {
	if terrain == NoExclude {
		terrain = TerrainNone
	}
	t.terrain = terrain
}

// excludedBy reports whether exclude forbids entering t. NoExclude forbids nothing.
func (t *Tile) excludedBy(exclude Terrain) bool {
	return exclude != NoExclude && t.terrain == exclude
}

// String renders the tile's row and column, e.g. "7y|3x".
func (t *Tile) String() string {
	return fmt.Sprintf("%dy|%dx", t.pos.Y(), t.pos.X)
}

// Options holds construction parameters for New.
type Options struct {
	// Shape is the silhouette to carve. Default Rectangle.
	Shape Shape
	// Logger receives a Debug record once the grid is built. Nil disables it.
	Logger *slog.Logger
}

// Option configures New.
type Option func(*Options)

// DefaultOptions returns Options for a plain Rectangle grid without logging.
func DefaultOptions() Options {
	return Options{Shape: Rectangle}
}

// WithShape selects the grid silhouette.
func WithShape(s Shape) Option {
	return func(o *Options) { o.Shape = s }
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
