package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hextiles/hexgrid"
)

func TestTilesWithinDelta_Interior(t *testing.T) {
	g := mustGrid(t, 10, 10)
	mid := g.Mid()

	within := g.TilesWithinDelta(mid, 2)
	assert.Len(t, within, 19)
	assert.Contains(t, within, mid)

	exactly := g.TilesWithDelta(mid, 2)
	assert.Len(t, exactly, 12)
	assert.NotContains(t, exactly, mid)
	for _, tile := range exactly {
		assert.Equal(t, 2, hexgrid.Distance(mid, tile))
	}
}

func TestTilesWithDelta_Small(t *testing.T) {
	g := mustGrid(t, 10, 10)
	mid := g.Mid()
	bl := g.Corner(hexgrid.BottomLeftCorner)

	assert.Equal(t, []*hexgrid.Tile{mid}, g.TilesWithinDelta(mid, 0))
	assert.Equal(t, []*hexgrid.Tile{mid}, g.TilesWithDelta(mid, 0))
	assert.Nil(t, g.TilesWithinDelta(mid, -1))
	assert.Nil(t, g.TilesWithDelta(mid, -1))

	// Delta one is the neighbor list, in clockwise order.
	assert.Equal(t, g.NonNullAdjacents(mid), g.TilesWithDelta(mid, 1))
	assert.Equal(t, []int{0, 1, 10}, ids(g.TilesWithinDelta(bl, 1)))

	other := mustGrid(t, 10, 10)
	assert.Nil(t, g.TilesWithinDelta(other.Mid(), 2))
}

// TestTilesWithinDelta_BruteForce compares the coordinate window against a
// full scan for every origin, on both shapes.
func TestTilesWithinDelta_BruteForce(t *testing.T) {
	for _, shape := range []hexgrid.Shape{hexgrid.Rectangle, hexgrid.Diamond} {
		t.Run(shape.String(), func(t *testing.T) {
			g := mustGrid(t, 11, 9, hexgrid.WithShape(shape))
			for _, origin := range g.Tiles() {
				for d := 0; d <= 4; d++ {
					within, exactly := []int{}, []int{}
					for _, tile := range g.Tiles() {
						dist := hexgrid.Distance(origin, tile)
						if dist <= d {
							within = append(within, tile.ID())
						}
						if dist == d {
							exactly = append(exactly, tile.ID())
						}
					}
					require.Equal(t, within, ids(g.TilesWithinDelta(origin, d)), "%s within %d", origin, d)
					if d != 1 {
						require.Equal(t, exactly, ids(g.TilesWithDelta(origin, d)), "%s at %d", origin, d)
					} else {
						require.ElementsMatch(t, exactly, ids(g.TilesWithDelta(origin, d)), "%s at 1", origin)
					}
				}
			}
		})
	}
}
