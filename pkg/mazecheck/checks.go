// Package mazecheck runs the universal invariants of spec.md §8 against a
// finished maze, the way the teacher's pkg/validation ran hard constraints
// against a finished dungeon artifact: each check is independent, returns a
// Result rather than panicking, and a Report aggregates all of them with an
// overall pass/fail.
package mazecheck

import (
	"fmt"

	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazegrid"
)

// Result is the outcome of one invariant check.
type Result struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report aggregates every check run against a single maze.
type Report struct {
	Passed  bool
	Results []Result
}

// CheckAll runs the structural invariant checks (1-4) and the perfect-maze
// check (6) against the given geometry, cells and edges, plus the
// solution-path check (8) between start
// and end. It does not recompute the solve itself — edges must already
// carry whatever Solution flags the caller's solve pass set.
func CheckAll(g mazegrid.Geometry, cells []mazeforest.Cell, edges []mazeforest.Edge, start, end int) *Report {
	report := &Report{Passed: true}
	checks := []Result{
		CheckNoUnknownEdges(edges),
		CheckCellGroupsAssigned(cells),
		CheckTreeEdgeCount(cells, edges),
		CheckDirectionPolarity(edges),
		CheckPerfectMaze(g, edges),
		CheckSolutionPath(g, edges, start, end),
	}
	for _, r := range checks {
		if !r.Satisfied {
			report.Passed = false
		}
		report.Results = append(report.Results, r)
	}
	return report
}

// CheckNoUnknownEdges verifies invariant 1: every edge has a terminal
// direction (Forward, Backward, Closed, or Border) — Unknown never survives
// layout.
func CheckNoUnknownEdges(edges []mazeforest.Edge) Result {
	for i, e := range edges {
		if e.Direction == mazeforest.Unknown {
			return Result{"no_unknown_edges", false, fmt.Sprintf("edge %d left in Unknown state", i)}
		}
	}
	return Result{"no_unknown_edges", true, ""}
}

// CheckCellGroupsAssigned verifies invariant 2: every cell belongs to some
// zone group (no cell left at ZoneNone once layout completes).
func CheckCellGroupsAssigned(cells []mazeforest.Cell) Result {
	for i, c := range cells {
		if c.Group == mazeforest.ZoneNone {
			return Result{"cell_groups_assigned", false, fmt.Sprintf("cell %d has no zone group", i)}
		}
	}
	return Result{"cell_groups_assigned", true, ""}
}

// CheckTreeEdgeCount verifies invariant 3: the number of passable (Forward
// or Backward) edges equals numCells minus the number of tree roots.
func CheckTreeEdgeCount(cells []mazeforest.Cell, edges []mazeforest.Edge) Result {
	roots := 0
	for _, c := range cells {
		if c.Root {
			roots++
		}
	}
	passable := 0
	for _, e := range edges {
		if e.Direction == mazeforest.Forward || e.Direction == mazeforest.Backward {
			passable++
		}
	}
	want := len(cells) - roots
	if passable != want {
		return Result{"tree_edge_count", false, fmt.Sprintf("passable edges = %d, want %d (cells=%d, roots=%d)", passable, want, len(cells), roots)}
	}
	return Result{"tree_edge_count", true, ""}
}

// CheckDirectionPolarity verifies invariant 4: for every Forward edge, the
// parent A is the smaller cell id; for every Backward edge, the parent B is
// the larger one. This is what lets the
// toggle-to-root trick in pkg/mazeforest walk a node to its parent without
// a separate parent-pointer structure.
func CheckDirectionPolarity(edges []mazeforest.Edge) Result {
	for i, e := range edges {
		switch e.Direction {
		case mazeforest.Forward:
			if e.A >= e.B {
				return Result{"direction_polarity", false, fmt.Sprintf("edge %d is Forward but A=%d >= B=%d", i, e.A, e.B)}
			}
		case mazeforest.Backward:
			if e.B <= e.A {
				return Result{"direction_polarity", false, fmt.Sprintf("edge %d is Backward but B=%d <= A=%d", i, e.B, e.A)}
			}
		}
	}
	return Result{"direction_polarity", true, ""}
}

// CheckPerfectMaze verifies invariant 6 computationally rather than taking
// it on faith: the passable edges (Forward, Backward or Border — a gateway
// counts once it has been promoted out of Closed) must form a spanning tree
// over every cell in g — exactly NumCells()-1 of them, and all cells mutually
// reachable through them. A union-find over the passable edges proves both at
// once: if it ends with N-1 unions and a single root, the passable subgraph
// is connected by construction and therefore acyclic (a connected graph with
// N-1 edges on N vertices cannot contain a cycle).
func CheckPerfectMaze(g mazegrid.Geometry, edges []mazeforest.Edge) Result {
	n := g.NumCells()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	passable := 0
	for _, e := range edges {
		if e.Direction == mazeforest.Forward || e.Direction == mazeforest.Backward || e.Direction == mazeforest.Border {
			passable++
			ra, rb := find(e.A), find(e.B)
			if ra != rb {
				parent[ra] = rb
			}
		}
	}

	want := n - 1
	if passable != want {
		return Result{"perfect_maze", false, fmt.Sprintf("passable edges = %d, want N-1 = %d", passable, want)}
	}
	if n == 0 {
		return Result{"perfect_maze", true, ""}
	}

	root := find(0)
	for c := 1; c < n; c++ {
		if find(c) != root {
			return Result{"perfect_maze", false, fmt.Sprintf("cell %d not reachable from cell 0 through passable edges", c)}
		}
	}
	return Result{"perfect_maze", true, ""}
}

// CheckSolutionPath verifies invariant 8: the edges flagged Solution form a
// simple path from start to end — both endpoints have exactly one incident
// solution edge, every interior cell on the path has exactly two, and every
// other cell has zero.
func CheckSolutionPath(g mazegrid.Geometry, edges []mazeforest.Edge, start, end int) Result {
	degree := make([]int, g.NumCells())
	for cell := 0; cell < g.NumCells(); cell++ {
		for _, eid := range g.CellEdges(cell) {
			if edges[eid].Solution {
				degree[cell]++
			}
		}
	}

	if start == end {
		for c, d := range degree {
			if d != 0 {
				return Result{"solution_path", false, fmt.Sprintf("cell %d has solution degree %d but start==end implies no path", c, d)}
			}
		}
		return Result{"solution_path", true, ""}
	}

	for c, d := range degree {
		switch {
		case c == start || c == end:
			if d != 1 {
				return Result{"solution_path", false, fmt.Sprintf("endpoint %d has solution degree %d, want 1", c, d)}
			}
		default:
			if d != 0 && d != 2 {
				return Result{"solution_path", false, fmt.Sprintf("interior cell %d has solution degree %d, want 0 or 2", c, d)}
			}
		}
	}
	return Result{"solution_path", true, ""}
}
