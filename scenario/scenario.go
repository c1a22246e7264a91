// Package scenario loads YAML descriptions of a grid, its obstacles and a
// list of queries, and runs those queries against a freshly built grid.
//
// A scenario file looks like:
//
//	name: wall
//	width: 10
//	height: 10
//	shape: rectangle
//	walls:
//	  - {from: 60, direction: top, terrain: 1}
//	queries:
//	  - {kind: path, from: bottom-left, to: bottom-right, exclude: 1}
//	  - {kind: breach, from: bottom-left, to: bottom-right, exclude: 1, expect: 1}
//
// Tiles are addressed by id, by corner name, or by "mid".
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hextiles/hexgrid"
	"github.com/katalvlaran/hextiles/terrain"
)

// ErrInvalidScenario indicates a scenario that cannot be run as written.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Query kinds.
const (
	KindPath         = "path"
	KindPathAdjacent = "path_adjacent"
	KindFlood        = "flood"
	KindBreach       = "breach"
)

// Scenario holds one grid setup and the queries to run on it.
type Scenario struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Shape  string `yaml:"shape"` // rectangle (default) or diamond

	// Terrain, when set, paints every tile before walls are applied.
	Terrain *terrain.Config `yaml:"terrain"`

	Walls   []Wall  `yaml:"walls"`
	Queries []Query `yaml:"queries"`
}

// Wall paints a straight run of tiles.
type Wall struct {
	From      TileRef         `yaml:"from"`
	Direction string          `yaml:"direction"`
	Length    int             `yaml:"length"` // 0 = until the edge
	Terrain   hexgrid.Terrain `yaml:"terrain"`
}

// Query is one question asked of the grid.
type Query struct {
	Name string  `yaml:"name"`
	Kind string  `yaml:"kind"`
	From TileRef `yaml:"from"`
	To   TileRef `yaml:"to"` // unused by flood

	// Exclude is the impassable terrain; omitted means nothing is excluded.
	Exclude *hexgrid.Terrain `yaml:"exclude"`

	MaxLength int `yaml:"max_length"` // path kinds; 0 = no cap
	MaxSteps  int `yaml:"max_steps"`  // flood; 0 = no cap

	// Expect, when set, is compared with the result cost.
	Expect *int `yaml:"expect"`
}

// Label returns the query name, or kind and endpoints when unnamed.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	if q.Kind == KindFlood {
		return fmt.Sprintf("%s %s", q.Kind, q.From)
	}
	return fmt.Sprintf("%s %s->%s", q.Kind, q.From, q.To)
}

func (q Query) exclude() hexgrid.Terrain {
	if q.Exclude == nil {
		return hexgrid.NoExclude
	}
	return *q.Exclude
}

// TileRef addresses a tile by id, by corner name or as "mid".
type TileRef string

// UnmarshalYAML accepts both integer and string scalars.
func (r *TileRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: tile reference must be a scalar", ErrInvalidScenario, value.Line)
	}
	*r = TileRef(strings.TrimSpace(value.Value))
	return nil
}

// Resolve finds the referenced tile in g.
func (r TileRef) Resolve(g *hexgrid.Grid) (*hexgrid.Tile, error) {
	s := string(r)
	if s == "" {
		return nil, fmt.Errorf("%w: empty tile reference", ErrInvalidScenario)
	}
	if id, err := strconv.Atoi(s); err == nil {
		if t := g.Tile(id); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("%w: tile %d out of range [0,%d)", ErrInvalidScenario, id, g.TileCount())
	}
	if strings.EqualFold(s, "mid") {
		return g.Mid(), nil
	}
	c, err := hexgrid.ParseCorner(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if t := g.Corner(c); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: corner %s not found", ErrInvalidScenario, c)
}

// DefaultScenario returns an empty 10×10 rectangle.
func DefaultScenario() Scenario {
	return Scenario{
		Name:   "default",
		Width:  10,
		Height: 10,
		Shape:  hexgrid.Rectangle.String(),
	}
}

// Parse decodes a scenario over DefaultScenario and validates it.
func Parse(data []byte) (Scenario, error) {
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Load reads a scenario from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScenario(), nil
		}
		return DefaultScenario(), fmt.Errorf("reading scenario %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	if s.Name == DefaultScenario().Name {
		s.Name = path
	}
	return s, nil
}

// Validate checks everything that can be checked without building the grid.
// Tile references are checked by Build and Run.
func (s Scenario) Validate() error {
	if s.Width < hexgrid.MinDimension || s.Height < hexgrid.MinDimension {
		return fmt.Errorf("%w: grid %dx%d smaller than %d", ErrInvalidScenario, s.Width, s.Height, hexgrid.MinDimension)
	}
	if _, err := hexgrid.ParseShape(s.Shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Terrain != nil {
		if err := s.Terrain.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	for i, w := range s.Walls {
		if _, err := hexgrid.ParseDirection(w.Direction); err != nil {
			return fmt.Errorf("%w: wall %d: %w", ErrInvalidScenario, i, err)
		}
		if w.Length < 0 {
			return fmt.Errorf("%w: wall %d: negative length %d", ErrInvalidScenario, i, w.Length)
		}
	}
	for i, q := range s.Queries {
		switch q.Kind {
		case KindPath, KindPathAdjacent, KindBreach:
			if q.To == "" {
				return fmt.Errorf("%w: query %d (%s): missing to", ErrInvalidScenario, i, q.Kind)
			}
		case KindFlood:
		default:
			return fmt.Errorf("%w: query %d: unknown kind %q", ErrInvalidScenario, i, q.Kind)
		}
		if q.From == "" {
			return fmt.Errorf("%w: query %d (%s): missing from", ErrInvalidScenario, i, q.Kind)
		}
	}
	return nil
}
