package hexgrid_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hextiles/hexgrid"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, w, h int, opts ...hexgrid.Option) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(w, h, opts...)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions verifies that New rejects grids smaller than 4×4.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"NarrowWidth", 3, 10},
		{"ShortHeight", 10, 3},
		{"Zero", 0, 0},
		{"Negative", -1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := hexgrid.New(tc.width, tc.height)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, hexgrid.ErrInvalidDimensions), "got %v", err)
		})
	}
}

// TestNew_TileCount checks w×h tiles for rectangles and strictly fewer for diamonds.
func TestNew_TileCount(t *testing.T) {
	sizes := [][2]int{{4, 4}, {10, 10}, {13, 7}, {7, 13}, {30, 30}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			rect := mustGrid(t, w, h)
			assert.Equal(t, w*h, rect.TileCount())
			assert.Equal(t, hexgrid.Rectangle, rect.Shape())
			assert.Equal(t, w, rect.Width())
			assert.Equal(t, h, rect.Height())

			diamond := mustGrid(t, w, h, hexgrid.WithShape(hexgrid.Diamond))
			assert.Less(t, diamond.TileCount(), w*h)
			assert.Equal(t, hexgrid.Diamond, diamond.Shape())
		})
	}
}

// TestNew_DiamondCount pins the diamond sizes for two grids whose carved
// disk fits entirely inside the lattice: radius 1 (7 tiles) and radius 3 (37).
func TestNew_DiamondCount(t *testing.T) {
	assert.Equal(t, 7, mustGrid(t, 4, 4, hexgrid.WithShape(hexgrid.Diamond)).TileCount())
	assert.Equal(t, 37, mustGrid(t, 10, 10, hexgrid.WithShape(hexgrid.Diamond)).TileCount())
}

// TestNew_Normalized checks dense ids, non-negative coordinates, a zero
// minimum on every axis, and that every tile is found by its own coordinates.
func TestNew_Normalized(t *testing.T) {
	for _, shape := range []hexgrid.Shape{hexgrid.Rectangle, hexgrid.Diamond} {
		t.Run(shape.String(), func(t *testing.T) {
			g := mustGrid(t, 12, 9, hexgrid.WithShape(shape))
			minY1, minY2, minX := 1<<31, 1<<31, 1<<31
			for i, tile := range g.Tiles() {
				p := tile.Position()
				require.Equal(t, i, tile.ID())
				require.GreaterOrEqual(t, p.Y1, 0)
				require.GreaterOrEqual(t, p.Y2, 0)
				require.GreaterOrEqual(t, p.X, 0)
				minY1, minY2, minX = min(minY1, p.Y1), min(minY2, p.Y2), min(minX, p.X)

				assert.Same(t, tile, g.TileAtRow(p.Y(), p.X))
				assert.Same(t, tile, g.TileAt(p.Y1, p.Y2, p.X))
				assert.Same(t, tile, g.Tile(tile.ID()))
				assert.Equal(t, hexgrid.TerrainNone, tile.Terrain())
			}
			assert.Zero(t, minY1)
			assert.Zero(t, minY2)
			assert.Zero(t, minX)
		})
	}
}

// TestNew_RectangleCorners verifies that the boundary walk lands on the
// column/row corners of rectangles tall enough for the diagonal leg of the
// walk to reach the side columns first: height >= width/2+2.
func TestNew_RectangleCorners(t *testing.T) {
	for w := 4; w <= 24; w++ {
		for h := w/2 + 2; h <= 24; h++ {
			g := mustGrid(t, w, h)
			require.Equal(t, 0, g.Corner(hexgrid.BottomLeftCorner).ID(), "%dx%d", w, h)
			require.Equal(t, h-1, g.Corner(hexgrid.TopLeftCorner).ID(), "%dx%d", w, h)
			require.Equal(t, (w-1)*h, g.Corner(hexgrid.BottomRightCorner).ID(), "%dx%d", w, h)
			require.Equal(t, w*h-1, g.Corner(hexgrid.TopRightCorner).ID(), "%dx%d", w, h)
			require.Equal(t, (w/2)*h+h/2, g.Mid().ID(), "%dx%d", w, h)
		}
	}
}

// TestNew_WideRectangleCorners pins the walked corners of rectangles wider
// than the walk can cover diagonally. The corners still sit on the bottom
// and top edges, but one or more columns inward.
func TestNew_WideRectangleCorners(t *testing.T) {
	cases := []struct {
		w, h           int
		bl, br, tl, tr int
		tlCol, blCol   int
	}{
		{6, 4, 0, 20, 7, 23, 1, 0},
		{12, 4, 8, 40, 15, 39, 3, 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			g := mustGrid(t, tc.w, tc.h)
			bl := g.Corner(hexgrid.BottomLeftCorner)
			tl := g.Corner(hexgrid.TopLeftCorner)
			assert.Equal(t, tc.bl, bl.ID())
			assert.Equal(t, tc.br, g.Corner(hexgrid.BottomRightCorner).ID())
			assert.Equal(t, tc.tl, tl.ID())
			assert.Equal(t, tc.tr, g.Corner(hexgrid.TopRightCorner).ID())
			assert.Equal(t, tc.blCol, bl.Position().X)
			assert.Equal(t, tc.tlCol, tl.Position().X)

			for _, c := range []hexgrid.Corner{hexgrid.BottomLeftCorner, hexgrid.BottomRightCorner} {
				assert.Nil(t, g.Adjacent(g.Corner(c), hexgrid.Bottom), c.String())
			}
			for _, c := range []hexgrid.Corner{hexgrid.TopLeftCorner, hexgrid.TopRightCorner} {
				assert.Nil(t, g.Adjacent(g.Corner(c), hexgrid.Top), c.String())
			}
		})
	}
}

// TestNew_Coordinates pins the normalized coordinates of a 10×10 grid.
func TestNew_Coordinates(t *testing.T) {
	g := mustGrid(t, 10, 10)
	cases := []struct {
		name string
		tile *hexgrid.Tile
		want hexgrid.Position
	}{
		{"BottomLeft", g.Corner(hexgrid.BottomLeftCorner), hexgrid.Position{Y1: 4, Y2: 0, X: 0}},
		{"TopLeft", g.Corner(hexgrid.TopLeftCorner), hexgrid.Position{Y1: 13, Y2: 9, X: 0}},
		{"BottomRight", g.Corner(hexgrid.BottomRightCorner), hexgrid.Position{Y1: 0, Y2: 5, X: 9}},
		{"TopRight", g.Corner(hexgrid.TopRightCorner), hexgrid.Position{Y1: 9, Y2: 14, X: 9}},
		{"Mid", g.Mid(), hexgrid.Position{Y1: 7, Y2: 8, X: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tile.Position())
		})
	}
	assert.Equal(t, "4y|0x", g.Corner(hexgrid.BottomLeftCorner).String())
}

// TestNew_DiamondCorners checks that diamond corners are members of the grid,
// sit on the boundary, and stay within the carving radius of the middle tile.
func TestNew_DiamondCorners(t *testing.T) {
	g := mustGrid(t, 10, 10, hexgrid.WithShape(hexgrid.Diamond))
	limit := ((10 + 10) / 2) / 3

	for _, c := range []hexgrid.Corner{hexgrid.BottomLeftCorner, hexgrid.BottomRightCorner} {
		tile := g.Corner(c)
		require.NotNil(t, tile, c.String())
		assert.Same(t, tile, g.Tile(tile.ID()))
		assert.Nil(t, g.Adjacent(tile, hexgrid.Bottom), c.String())
		assert.LessOrEqual(t, hexgrid.Distance(g.Mid(), tile), limit)
	}
	for _, c := range []hexgrid.Corner{hexgrid.TopLeftCorner, hexgrid.TopRightCorner} {
		tile := g.Corner(c)
		require.NotNil(t, tile, c.String())
		assert.Same(t, tile, g.Tile(tile.ID()))
		assert.Nil(t, g.Adjacent(tile, hexgrid.Top), c.String())
		assert.LessOrEqual(t, hexgrid.Distance(g.Mid(), tile), limit)
	}
	for _, tile := range g.Tiles() {
		assert.LessOrEqual(t, hexgrid.Distance(g.Mid(), tile), limit)
	}
}

// TestNew_Logger checks the Debug record emitted by WithLogger.
func TestNew_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mustGrid(t, 10, 10, hexgrid.WithLogger(logger))
	out := buf.String()
	assert.Contains(t, out, "hexgrid: grid built")
	assert.Contains(t, out, "tiles=100")
	assert.Contains(t, out, "shape=rectangle")
	assert.Contains(t, out, "mid=55")
	assert.Contains(t, out, "corners.bottom_left=0")
	assert.Contains(t, out, "corners.bottom_right=90")
	assert.Contains(t, out, "corners.top_left=9")
	assert.Contains(t, out, "corners.top_right=99")
	assert.NotContains(t, out, "corner moved")

	buf.Reset()
	mustGrid(t, 6, 4, hexgrid.WithLogger(logger))
	assert.Contains(t, buf.String(), "corners.top_left=7")
	assert.Contains(t, buf.String(), "corner=top-left approx=3 walked=7")

	buf.Reset()
	mustGrid(t, 10, 10, hexgrid.WithShape(hexgrid.Diamond), hexgrid.WithLogger(logger))
	assert.Contains(t, buf.String(), "tiles=37")
	assert.Contains(t, buf.String(), "corner moved by boundary walk")
}

//----------------------------------------------------------------------------//
// Lookups
//----------------------------------------------------------------------------//

// TestLookup_Absent verifies that unresolvable lookups return nil, never panic.
func TestLookup_Absent(t *testing.T) {
	g := mustGrid(t, 10, 10)
	bl := g.Corner(hexgrid.BottomLeftCorner)

	assert.Nil(t, g.TileAtRow(-1, 0))
	assert.Nil(t, g.TileAtRow(0, -1))
	assert.Nil(t, g.Tile(g.TileCount()))
	assert.Nil(t, g.Tile(-1))
	assert.Nil(t, g.TileAt(-1, 0, 0))
	assert.Nil(t, g.TileAt(1000, 1000, 1000))
	assert.Nil(t, g.TileWithDelta(bl, 0, 0, -1))
	assert.Nil(t, g.TileWithDelta(nil, 0, 0, 0))
	assert.Nil(t, g.Corner(hexgrid.Corner(9)))

	// (6,0,0) shares row 6, column 0 with the real tile (5,1,0) but is off the lattice.
	p := bl.Position()
	require.NotNil(t, g.TileAtRow(p.Y()+2, p.X))
	assert.Nil(t, g.TileAt(p.Y1+2, p.Y2, p.X))
}

// TestLookup_WithDelta walks from the bottom-left corner to column 6, row 0.
func TestLookup_WithDelta(t *testing.T) {
	g := mustGrid(t, 10, 10)
	bl := g.Corner(hexgrid.BottomLeftCorner)

	got := g.TileWithDelta(bl, -3, 3, 6)
	require.NotNil(t, got)
	assert.Equal(t, 60, got.ID())
	assert.Same(t, bl, g.TileWithDelta(bl, 0, 0, 0))
}

// TestLookup_ForeignTile verifies a tile from another grid is not accepted.
func TestLookup_ForeignTile(t *testing.T) {
	a := mustGrid(t, 10, 10)
	b := mustGrid(t, 10, 10)
	assert.Nil(t, a.Adjacent(b.Mid(), hexgrid.Top))
	assert.Nil(t, a.TileWithDelta(b.Mid(), 1, 1, 0))
	assert.Empty(t, a.NonNullAdjacents(b.Mid()))
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

func TestParseShape(t *testing.T) {
	s, err := hexgrid.ParseShape("Diamond")
	require.NoError(t, err)
	assert.Equal(t, hexgrid.Diamond, s)

	s, err = hexgrid.ParseShape("")
	require.NoError(t, err)
	assert.Equal(t, hexgrid.Rectangle, s)

	_, err = hexgrid.ParseShape("circle")
	assert.ErrorIs(t, err, hexgrid.ErrUnknownShape)
}

func TestParseCorner(t *testing.T) {
	for _, name := range []string{"top-left", "TOP_LEFT", "top left"} {
		c, err := hexgrid.ParseCorner(name)
		require.NoError(t, err, name)
		assert.Equal(t, hexgrid.TopLeftCorner, c)
	}
	_, err := hexgrid.ParseCorner("middle")
	assert.ErrorIs(t, err, hexgrid.ErrUnknownCorner)
	assert.Equal(t, "bottom-right", hexgrid.BottomRightCorner.String())
}
