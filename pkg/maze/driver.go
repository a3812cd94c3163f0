package maze

import (
	"context"
	"fmt"

	"github.com/dshills/mazeforge/pkg/mazeerr"
	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazegrid"
	"github.com/dshills/mazeforge/pkg/mazemeta"
	"github.com/dshills/mazeforge/pkg/mazerng"
	"github.com/dshills/mazeforge/pkg/mazesvg"
)

// Result is the output of a maze generation: the rendered SVG plus the
// solution's zone and edge counts.
type Result struct {
	SVG            []byte
	SolutionZones  int
	SolutionLength int
}

// BuildSquare is the conceptual maze_square entry point: it seeds a
// deterministic RNG from seed, builds a width x height square grid with 6
// zone roots (fewer on grids under 12 cells, see generate) and 1 meta-root,
// picks random distinct start/end cells, runs
// the full pipeline, and renders the SVG at the given scale.
func BuildSquare(seed uint64, width, height int, scale float64) (*Result, error) {
	return BuildSquareWithSolutionVisibility(seed, width, height, scale, true)
}

// BuildSquareWithSolutionVisibility is BuildSquare with control over whether
// the rendered SVG marks the solution path — the knob cmd/mazeserver exposes
// through its "solution" query parameter.
func BuildSquareWithSolutionVisibility(seed uint64, width, height int, scale float64, showSolution bool) (*Result, error) {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Width = width
	cfg.Height = height
	cfg.Scale = scale
	return generate(context.Background(), &cfg, showSolution)
}

// Generate runs the full pipeline described by cfg: geometry construction,
// zone-level spanning forest, meta-geometry, meta-level spanning forest,
// gateway opening, endpoint selection, hierarchical solving, and rendering.
// It is deterministic: identical cfg values always produce a byte-identical
// Result.
func Generate(ctx context.Context, cfg *Config) (*Result, error) {
	return generate(ctx, cfg, true)
}

func generate(ctx context.Context, cfg *Config, showSolution bool) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	configHash := cfg.Hash()
	zoneRNG := mazerng.New(cfg.Seed, "zone_layout", configHash)
	metaRNG := mazerng.New(cfg.Seed, "meta_layout", configHash)
	gatewayRNG := mazerng.New(cfg.Seed, "gateways", configHash)
	endpointRNG := mazerng.New(cfg.Seed, "endpoints", configHash)

	grid, err := mazegrid.NewSquareGeometry(cfg.Height, cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("building geometry: %w", err)
	}

	// Clamping R to NumCells() alone would let every cell become its own
	// zone root on tiny grids (N=2 -> 2 single-cell zones instead of one),
	// so the cap keeps at least 2 cells per zone: very small grids collapse
	// toward a single zone rather than fragmenting into degenerate ones.
	maxZones := grid.NumCells() / 2
	if maxZones < 1 {
		maxZones = 1
	}
	zoneRoots := cfg.ZoneRoots
	if zoneRoots > maxZones {
		zoneRoots = maxZones
	}
	cells, edges, err := mazeforest.Layout(grid, zoneRoots, zoneRNG)
	if err != nil {
		return nil, fmt.Errorf("zone layout: %w", err)
	}

	meta, err := mazemeta.New(cells, edges)
	if err != nil {
		return nil, fmt.Errorf("meta geometry: %w", err)
	}

	var metaEdges []mazeforest.Edge
	if meta.NumCells() > 0 {
		metaRoots := cfg.MetaRoots
		if metaRoots > meta.NumCells() {
			metaRoots = meta.NumCells()
		}
		_, metaEdges, err = mazeforest.Layout(meta, metaRoots, metaRNG)
		if err != nil {
			return nil, fmt.Errorf("meta layout: %w", err)
		}
		mazemeta.OpenGateways(meta, metaEdges, edges, gatewayRNG)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := grid.RandomCell(endpointRNG)
	end := grid.RandomCell(endpointRNG)
	for end == start {
		end = grid.RandomCell(endpointRNG)
	}

	zones, length, err := solveHierarchical(grid, cells, edges, meta, metaEdges, start, end)
	if err != nil {
		return nil, fmt.Errorf("solving: %w", err)
	}

	svgOpts := mazesvg.DefaultOptions()
	svgOpts.Scale = cfg.Scale
	svgOpts.ShowSolution = showSolution
	svgBytes, err := mazesvg.Render(grid, cells, edges, svgOpts, start, end)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	return &Result{SVG: svgBytes, SolutionZones: zones, SolutionLength: length}, nil
}

// solveHierarchical implements spec.md's hierarchical solve procedure: solve
// the meta-path between start's and end's zones, flip each intervening
// gateway into the solution, then solve each zone-segment's within-zone path
// in turn. If start and end already share a zone, a single micro-solve
// suffices and the meta-graph is never consulted.
func solveHierarchical(grid mazegrid.Geometry, cells []mazeforest.Cell, edges []mazeforest.Edge, meta *mazemeta.MetaGeometry, metaEdges []mazeforest.Edge, start, end int) (solutionZones, solutionLength int, err error) {
	if cells[start].Group == cells[end].Group {
		path := mazeforest.Solve(grid, edges, start, end)
		return 1, len(path), nil
	}

	startZone, endZone := cells[start].Group, cells[end].Group
	metaStart, ok := meta.ZoneIndex(startZone)
	if !ok {
		return 0, 0, mazeerr.ErrIndexOutOfBounds
	}
	metaEnd, ok := meta.ZoneIndex(endZone)
	if !ok {
		return 0, 0, mazeerr.ErrIndexOutOfBounds
	}

	borderPath := mazeforest.Solve(meta, metaEdges, metaStart, metaEnd)

	curCell, curZone := start, startZone
	length := 0
	zones := 1

	for _, borderID := range borderPath {
		gateway, ok := meta.Gateway(borderID)
		if !ok {
			return 0, 0, mazeerr.ErrGatewayMissing
		}
		edges[gateway].Solution = true

		ends := grid.EdgeCells(gateway)
		var exitCell, entryCell int
		if cells[ends[0]].Group == curZone {
			exitCell, entryCell = ends[0], ends[1]
		} else {
			exitCell, entryCell = ends[1], ends[0]
		}

		segment := mazeforest.Solve(grid, edges, curCell, exitCell)
		length += len(segment)

		curCell = entryCell
		curZone = cells[entryCell].Group
		zones++
	}

	final := mazeforest.Solve(grid, edges, curCell, end)
	length += len(final)

	return zones, length, nil
}
