package mazemeta

import (
	"github.com/dshills/mazeforge/pkg/mazeerr"
	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazerng"
)

// Border is a meta-edge: the bundle of grid-edge ids straddling a specific
// pair of zones. Key is always stored (min, max). Gateway is -1 until
// OpenGateways chooses one; once set it never changes.
type Border struct {
	Key     [2]mazeforest.Zone
	Edges   []int
	Gateway int
}

// MetaGeometry is the zone-level graph built from a completed spanning
// forest. It implements mazegrid.Geometry: its cells are zones (in the order
// they were first discovered while scanning edges) and its edges are
// Borders.
type MetaGeometry struct {
	zoneGroups  []mazeforest.Zone
	zoneIndex   map[mazeforest.Zone]int
	borders     []Border
	borderIndex map[[2]mazeforest.Zone]int
	cellEdges   [][]int
}

func orderedKey(a, b mazeforest.Zone) [2]mazeforest.Zone {
	if a < b {
		return [2]mazeforest.Zone{a, b}
	}
	return [2]mazeforest.Zone{b, a}
}

// New constructs the meta-graph from a completed spanning forest: cells
// carry each grid cell's zone Group, edges carry each grid edge's two
// endpoints. Intra-zone edges are skipped; every other edge is filed under
// the Border for the zone pair it straddles, creating that Border on first
// sight. Zones are assigned meta-cell ids in the order they are first seen
// (the order in which their borders are discovered while scanning edges).
func New(cells []mazeforest.Cell, edges []mazeforest.Edge) (*MetaGeometry, error) {
	if len(cells) == 0 {
		return nil, mazeerr.ErrInvalidGeometry
	}

	m := &MetaGeometry{
		zoneIndex:   make(map[mazeforest.Zone]int),
		borderIndex: make(map[[2]mazeforest.Zone]int),
	}

	ensureZone := func(z mazeforest.Zone) int {
		if idx, ok := m.zoneIndex[z]; ok {
			return idx
		}
		idx := len(m.zoneGroups)
		m.zoneGroups = append(m.zoneGroups, z)
		m.zoneIndex[z] = idx
		m.cellEdges = append(m.cellEdges, nil)
		return idx
	}

	for eid, e := range edges {
		a := cells[e.A].Group
		b := cells[e.B].Group
		if a == b {
			continue
		}
		key := orderedKey(a, b)
		bidx, ok := m.borderIndex[key]
		if !ok {
			bidx = len(m.borders)
			m.borderIndex[key] = bidx
			m.borders = append(m.borders, Border{Key: key, Gateway: -1})

			ai := ensureZone(key[0])
			bi := ensureZone(key[1])
			m.cellEdges[ai] = append(m.cellEdges[ai], bidx)
			m.cellEdges[bi] = append(m.cellEdges[bi], bidx)
		}
		m.borders[bidx].Edges = append(m.borders[bidx].Edges, eid)
	}

	return m, nil
}

func (m *MetaGeometry) NumCells() int { return len(m.zoneGroups) }
func (m *MetaGeometry) NumEdges() int { return len(m.borders) }

func (m *MetaGeometry) CellEdges(cell int) []int {
	return m.cellEdges[cell]
}

func (m *MetaGeometry) EdgeCells(edge int) [2]int {
	key := m.borders[edge].Key
	a, b := m.zoneIndex[key[0]], m.zoneIndex[key[1]]
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (m *MetaGeometry) RandomCell(rng *mazerng.Source) int {
	return rng.Intn(m.NumCells())
}

// Borders returns the meta-graph's borders in discovery order. Callers
// should treat the returned slice as read-only except through OpenGateways.
func (m *MetaGeometry) Borders() []Border {
	return m.borders
}

// Gateway returns the grid-edge id chosen as the given border's gateway, or
// ok=false if OpenGateways has not opened that border (its meta-edge is
// Closed).
func (m *MetaGeometry) Gateway(borderID int) (int, bool) {
	if borderID < 0 || borderID >= len(m.borders) {
		return 0, false
	}
	g := m.borders[borderID].Gateway
	if g < 0 {
		return 0, false
	}
	return g, true
}

// ZoneIndex returns the meta-cell id of a zone group, or ok=false if that
// zone never appeared in any border (e.g. the grid has only one zone).
func (m *MetaGeometry) ZoneIndex(group mazeforest.Zone) (int, bool) {
	idx, ok := m.zoneIndex[group]
	return idx, ok
}

// BorderOf returns the border id for a given zone pair, or ok=false if no
// border exists between them.
func (m *MetaGeometry) BorderOf(a, b mazeforest.Zone) (int, bool) {
	idx, ok := m.borderIndex[orderedKey(a, b)]
	return idx, ok
}
