package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hextiles/hexgrid"
	"github.com/katalvlaran/hextiles/terrain"
)

// Result is the outcome of one query.
//
// Cost depends on the kind: the path length for path and path_adjacent, the
// number of excluded tiles entered for breach, and the number of tiles
// reached (origin included) for flood.
type Result struct {
	Query string
	Kind  string
	Tiles []int
	Cost  int

	// Expected mirrors Query.Expect; Mismatch is set when it differs from Cost.
	Expected *int
	Mismatch bool
}

// Report is the outcome of one scenario.
type Report struct {
	Scenario string
	Tiles    int
	Painted  map[hexgrid.Terrain]int
	Results  []Result
}

// Failed reports whether any result missed its expectation.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Mismatch {
			return true
		}
	}
	return false
}

// Build constructs the grid, paints terrain and applies walls.
// The returned map is nil when no terrain was painted.
func (s Scenario) Build(logger *slog.Logger) (*hexgrid.Grid, map[hexgrid.Terrain]int, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	shape, _ := hexgrid.ParseShape(s.Shape)
	opts := []hexgrid.Option{hexgrid.WithShape(shape)}
	if logger != nil {
		opts = append(opts, hexgrid.WithLogger(logger))
	}
	g, err := hexgrid.New(s.Width, s.Height, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	var painted map[hexgrid.Terrain]int
	if s.Terrain != nil {
		if painted, err = terrain.Paint(g, *s.Terrain); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	for i, w := range s.Walls {
		if err := applyWall(g, w); err != nil {
			return nil, nil, fmt.Errorf("wall %d: %w", i, err)
		}
	}
	return g, painted, nil
}

// applyWall paints w.Length tiles (or up to the edge) starting at w.From.
func applyWall(g *hexgrid.Grid, w Wall) error {
	start, err := w.From.Resolve(g)
	if err != nil {
		return err
	}
	dir, err := hexgrid.ParseDirection(w.Direction)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	n := 0
	for t := start; t != nil; t = g.Adjacent(t, dir) {
		if w.Length > 0 && n == w.Length {
			break
		}
		t.SetTerrain(w.Terrain)
		n++
	}
	return nil
}

// Run builds the scenario grid and answers its queries in order.
// A nil logger discards records.
func Run(ctx context.Context, s Scenario, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("scenario", s.Name)

	g, painted, err := s.Build(logger)
	if err != nil {
		return Report{Scenario: s.Name}, err
	}
	rep := Report{Scenario: s.Name, Tiles: g.TileCount(), Painted: painted}
	logger.Info("grid ready", "width", s.Width, "height", s.Height, "shape", g.Shape(), "tiles", rep.Tiles, "walls", len(s.Walls))

	for i, q := range s.Queries {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := runQuery(g, q)
		if err != nil {
			return rep, fmt.Errorf("query %d: %w", i, err)
		}
		level := slog.LevelInfo
		if res.Mismatch {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "query done", "query", res.Query, "cost", res.Cost, "tiles", len(res.Tiles), "mismatch", res.Mismatch)
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func runQuery(g *hexgrid.Grid, q Query) (Result, error) {
	from, err := q.From.Resolve(g)
	if err != nil {
		return Result{}, err
	}
	var to *hexgrid.Tile
	if q.Kind != KindFlood {
		if to, err = q.To.Resolve(g); err != nil {
			return Result{}, err
		}
	}

	popts := []hexgrid.PathOption{hexgrid.Excluding(q.exclude())}
	if q.MaxLength > 0 {
		popts = append(popts, hexgrid.WithMaxLength(q.MaxLength))
	}

	res := Result{Query: q.Label(), Kind: q.Kind, Expected: q.Expect}
	switch q.Kind {
	case KindPath:
		res.Tiles = tileIDs(g.FindPath(from, to, popts...))
		res.Cost = len(res.Tiles)
	case KindPathAdjacent:
		res.Tiles = tileIDs(g.FindPathToAdjacentOf(from, to, popts...))
		res.Cost = len(res.Tiles)
	case KindBreach:
		path, crossings := g.BreachPath(from, to, q.exclude())
		res.Tiles = tileIDs(path)
		res.Cost = crossings
	case KindFlood:
		fr := g.Flood(from, hexgrid.FloodExcluding(q.exclude()), hexgrid.WithMaxSteps(q.MaxSteps))
		res.Tiles = fr.Order
		res.Cost = len(fr.Order)
	default:
		return Result{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidScenario, q.Kind)
	}
	res.Mismatch = q.Expect != nil && *q.Expect != res.Cost
	return res, nil
}

// RunAll runs every scenario concurrently on its own grid. Reports are
// returned in input order; the first error cancels the rest.
func RunAll(ctx context.Context, scenarios []Scenario, logger *slog.Logger) ([]Report, error) {
	reports := make([]Report, len(scenarios))
	eg, ectx := errgroup.WithContext(ctx)
	for i := range scenarios {
		eg.Go(func() error {
			rep, err := Run(ectx, scenarios[i], logger)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", scenarios[i].Name, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func tileIDs(tiles []*hexgrid.Tile) []int {
	out := make([]int, len(tiles))
	for i, t := range tiles {
		out[i] = t.ID()
	}
	return out
}
