package mazeforest

import "github.com/dshills/mazeforge/pkg/mazegrid"

// parentEdge returns the one incident edge of node whose direction points
// toward node's parent (Forward with node as B, or Backward with node as A),
// or ok=false if node is its tree's root.
func parentEdge(g mazegrid.Geometry, edges []Edge, node int) (edge int, ok bool) {
	for _, eid := range g.CellEdges(node) {
		e := edges[eid]
		switch e.Direction {
		case Forward:
			if e.B == node {
				return eid, true
			}
		case Backward:
			if e.A == node {
				return eid, true
			}
		}
	}
	return 0, false
}

// findRoot walks node up to its tree's root, toggling Solution on every
// edge traversed, and returns the root cell id. Calling it twice on the
// same cell restores every toggled flag on that segment to its prior value.
func findRoot(g mazegrid.Geometry, edges []Edge, node int) int {
	for {
		eid, ok := parentEdge(g, edges, node)
		if !ok {
			return node
		}
		edges[eid].Solution = !edges[eid].Solution
		if edges[eid].Direction == Forward {
			node = edges[eid].A
		} else {
			node = edges[eid].B
		}
	}
}

// Solve finds the unique path between start and end within a single already
// -built tree (micro grid or meta-graph — both share the Geometry+[]Edge
// shape) using the toggle-to-root trick: walking each endpoint to its root
// toggles every edge on its root-segment, so the edges shared by both
// segments (everything above their lowest common ancestor) cancel back to
// false, leaving exactly the start-end path flagged true. It returns that
// path as an ordered sequence of edge ids.
func Solve(g mazegrid.Geometry, edges []Edge, start, end int) []int {
	if start == end {
		return nil
	}

	findRoot(g, edges, start)
	findRoot(g, edges, end)

	path := make([]int, 0)
	cur := start
	prevEdge := -1
	for cur != end {
		next := -1
		for _, eid := range g.CellEdges(cur) {
			if eid == prevEdge {
				continue
			}
			if edges[eid].Solution && (edges[eid].Direction == Forward || edges[eid].Direction == Backward) {
				next = eid
				break
			}
		}
		if next == -1 {
			break
		}
		path = append(path, next)
		ends := g.EdgeCells(next)
		if ends[0] == cur {
			cur = ends[1]
		} else {
			cur = ends[0]
		}
		prevEdge = next
	}
	return path
}
