package mazeforest

// Zone identifies the spanning tree (zone) a cell belongs to. It is a
// dense index among the zones that exist in a given forest, assigned in
// root-enumeration order. ZoneNone marks a cell not yet visited by Layout.
type Zone int

// ZoneNone is the sentinel Group value for a cell not yet visited; Go has no
// Option type, so a dedicated constant stands in for "unset" instead of -1
// sprinkled through call sites.
const ZoneNone Zone = -1

// Cell is one node of the spanning forest. Group is assigned exactly once,
// the first time the cell is visited by Layout, and never mutated afterward.
type Cell struct {
	Group Zone
	Root  bool
}

// Direction classifies a tree edge by which endpoint is closer to its zone's
// root, or marks it Closed (not part of any tree) or Border (an opened
// inter-zone gateway).
type Direction uint8

const (
	// Unknown marks an edge Layout has not yet processed. Must not survive
	// to output.
	Unknown Direction = iota
	// Forward marks a tree edge whose lower-indexed endpoint (A) is the
	// parent.
	Forward
	// Backward marks a tree edge whose higher-indexed endpoint (B) is the
	// parent.
	Backward
	// Closed marks an edge that is not part of any tree; rendered as a wall.
	Closed
	// Border marks an inter-zone gateway edge; rendered as a passable gap.
	Border
)

func (d Direction) String() string {
	switch d {
	case Unknown:
		return "Unknown"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Closed:
		return "Closed"
	case Border:
		return "Border"
	default:
		return "Direction(?)"
	}
}

// Edge connects cells A and B, with A < B always (Geometry.EdgeCells returns
// its two endpoints in ascending order for every geometry this module
// ships). Solution toggles on and off as the solver walks the tree; once
// settled, true means the edge lies on the current start-to-end path.
type Edge struct {
	A, B      int
	Direction Direction
	Solution  bool
}
