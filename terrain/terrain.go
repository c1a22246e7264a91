// Package terrain paints hexgrid tiles from layered simplex noise.
//
// Each tile is mapped to a point on the plane (flat-top hex layout, unit
// spacing between neighbor centers) and sampled with a normalized
// OpenSimplex generator summed over several octaves. The resulting value in
// [0,1] is then bucketed by ascending thresholds into terrain ids.
//
// Painting is deterministic for a fixed non-zero Seed.
package terrain

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/hextiles/hexgrid"
	"github.com/katalvlaran/hextiles/internal/mathx"
)

var (
	// ErrNoBands indicates a Config without any terrain band.
	ErrNoBands = errors.New("terrain: no bands configured")

	// ErrBadScale indicates a non-positive or non-finite noise scale.
	ErrBadScale = errors.New("terrain: scale must be positive")

	// ErrNilGrid indicates Paint was called without a grid.
	ErrNilGrid = errors.New("terrain: grid is nil")
)

const (
	// MaxOctaves bounds the octave count; further octaves are below float noise.
	MaxOctaves = 8

	persistence = 0.5
)

// Band maps noise values below a threshold to a terrain.
type Band struct {
	Below   float64         `yaml:"below"`
	Terrain hexgrid.Terrain `yaml:"terrain"`
}

// Config holds painting parameters.
type Config struct {
	Seed    int64   `yaml:"seed"`    // 0 = random
	Scale   float64 `yaml:"scale"`   // base frequency per tile step
	Octaves int     `yaml:"octaves"` // clamped to [1, MaxOctaves]
	Bands   []Band  `yaml:"bands"`
}

// DefaultConfig returns a three-band setup: water (0), open ground (-1,
// the untyped default) and rock (1).
func DefaultConfig() Config {
	return Config{
		Seed:    0,
		Scale:   0.12,
		Octaves: 4,
		Bands: []Band{
			{Below: 0.30, Terrain: 0},
			{Below: 0.70, Terrain: hexgrid.TerrainNone},
			{Below: 1.01, Terrain: 1},
		},
	}
}

// Validate reports configuration errors without touching any grid.
func (c Config) Validate() error {
	if len(c.Bands) == 0 {
		return ErrNoBands
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: got %v", ErrBadScale, c.Scale)
	}
	return nil
}

// Paint sets the terrain of every tile in g and returns how many tiles
// received each terrain.
//
// Bands are applied in ascending Below order; a tile takes the first band
// whose Below exceeds its noise value, or the highest band if none does.
func Paint(g *hexgrid.Grid, cfg Config) (map[hexgrid.Terrain]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)
	octaves := mathx.Clamp(cfg.Octaves, 1, MaxOctaves)

	bands := slices.Clone(cfg.Bands)
	slices.SortStableFunc(bands, func(a, b Band) int { return cmp.Compare(a.Below, b.Below) })

	counts := make(map[hexgrid.Terrain]int, len(bands))
	for _, tile := range g.Tiles() {
		x, y := planar(tile.Position())
		v := octaveNoise(noise, x, y, octaves, cfg.Scale)
		t := pick(bands, v)
		tile.SetTerrain(t)
		counts[t]++
	}
	return counts, nil
}

// Sample returns the noise value Paint would compute for p under cfg.
// cfg.Seed must be non-zero for the result to be reproducible.
func Sample(cfg Config, p hexgrid.Position) float64 {
	noise := opensimplex.NewNormalized(cfg.Seed)
	x, y := planar(p)
	return octaveNoise(noise, x, y, mathx.Clamp(cfg.Octaves, 1, MaxOctaves), cfg.Scale)
}

// planar converts lattice coordinates to a flat-top hex layout where
// neighbor centers are one unit apart.
func planar(p hexgrid.Position) (float64, float64) {
	return float64(p.X) * math.Sqrt(3) / 2, float64(p.Y()) / 2
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return mathx.Clamp(total/maxVal, 0, 1)
}

func pick(bands []Band, v float64) hexgrid.Terrain {
	for _, b := range bands {
		if v < b.Below {
			return b.Terrain
		}
	}
	return bands[len(bands)-1].Terrain
}
