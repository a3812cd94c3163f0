package mazeforest

import (
	"github.com/dshills/mazeforge/pkg/mazeerr"
	"github.com/dshills/mazeforge/pkg/mazegrid"
	"github.com/dshills/mazeforge/pkg/mazerng"
)

// Layout grows roots spanning trees simultaneously from roots randomly
// chosen seed cells, carving g into that many contiguous zones. It returns
// per-cell zone/root metadata and per-edge tree-direction metadata
// satisfying the invariants: every cell's Group is set exactly once, every
// edge ends Forward, Backward, or Closed (never Unknown), and the number of
// tree edges equals NumCells()-roots.
func Layout(g mazegrid.Geometry, roots int, rng *mazerng.Source) ([]Cell, []Edge, error) {
	n := g.NumCells()
	if roots < 1 || roots > n {
		return nil, nil, mazeerr.ErrInvalidGeometry
	}

	cells := make([]Cell, n)
	for i := range cells {
		cells[i].Group = ZoneNone
	}

	edges := make([]Edge, g.NumEdges())
	for e := range edges {
		ends := g.EdgeCells(e)
		edges[e] = Edge{A: ends[0], B: ends[1], Direction: Unknown}
	}

	rootCells := rng.UniqueIntN(n, roots)
	frontier := make([]int, 0, n)
	visited := 0
	for i, c := range rootCells {
		cells[c].Group = Zone(i)
		cells[c].Root = true
		frontier = append(frontier, c)
		visited++
	}

	for len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		c := frontier[idx]
		last := len(frontier) - 1
		frontier[idx] = frontier[last]
		frontier = frontier[:last]

		for _, eid := range g.CellEdges(c) {
			if edges[eid].Direction != Unknown {
				continue
			}
			var neighbor int
			if edges[eid].A == c {
				neighbor = edges[eid].B
			} else {
				neighbor = edges[eid].A
			}
			if cells[neighbor].Group != ZoneNone {
				edges[eid].Direction = Closed
				continue
			}
			if c < neighbor {
				edges[eid].Direction = Forward
			} else {
				edges[eid].Direction = Backward
			}
			cells[neighbor].Group = cells[c].Group
			frontier = append(frontier, neighbor)
			visited++
		}
	}

	if visited < n {
		return nil, nil, mazeerr.ErrBuilderStall
	}
	return cells, edges, nil
}
