package mazecheck

import (
	"testing"

	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazegrid"
	"github.com/dshills/mazeforge/pkg/mazerng"
)

func buildMaze(t *testing.T, rows, cols, roots int, seed uint64) (*mazegrid.SquareGeometry, []mazeforest.Cell, []mazeforest.Edge) {
	t.Helper()
	g, err := mazegrid.NewSquareGeometry(rows, cols)
	if err != nil {
		t.Fatalf("NewSquareGeometry: %v", err)
	}
	rng := mazerng.New(seed, "zone_layout", nil)
	cells, edges, err := mazeforest.Layout(g, roots, rng)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return g, cells, edges
}

func TestCheckAll_PassesOnFreshLayout(t *testing.T) {
	g, cells, edges := buildMaze(t, 5, 5, 1, 3)
	start, end := 0, len(cells)-1
	path := mazeforest.Solve(g, edges, start, end)
	for _, eid := range path {
		edges[eid].Solution = true
	}

	report := CheckAll(g, cells, edges, start, end)
	if !report.Passed {
		for _, r := range report.Results {
			if !r.Satisfied {
				t.Errorf("check %s failed: %s", r.Name, r.Details)
			}
		}
	}
}

func TestCheckNoUnknownEdges_FailsOnUnknown(t *testing.T) {
	_, _, edges := buildMaze(t, 4, 4, 1, 9)
	edges[0].Direction = mazeforest.Unknown
	if r := CheckNoUnknownEdges(edges); r.Satisfied {
		t.Error("expected failure with an Unknown edge present")
	}
}

func TestCheckTreeEdgeCount_FailsWhenMiscounted(t *testing.T) {
	_, cells, edges := buildMaze(t, 4, 4, 2, 5)
	// Flip one Closed edge to Forward, breaking the tree-edge-count invariant.
	for i, e := range edges {
		if e.Direction == mazeforest.Closed {
			edges[i].Direction = mazeforest.Forward
			break
		}
	}
	if r := CheckTreeEdgeCount(cells, edges); r.Satisfied {
		t.Error("expected failure after corrupting edge count")
	}
}

func TestCheckDirectionPolarity_FailsOnBadPolarity(t *testing.T) {
	_, _, edges := buildMaze(t, 4, 4, 1, 17)
	for i, e := range edges {
		if e.Direction == mazeforest.Forward {
			edges[i].A, edges[i].B = e.B, e.A
			break
		}
	}
	if r := CheckDirectionPolarity(edges); r.Satisfied {
		t.Error("expected failure after swapping a Forward edge's endpoints")
	}
}

func TestCheckPerfectMaze_PassesOnSingleRootLayout(t *testing.T) {
	g, _, edges := buildMaze(t, 5, 5, 1, 11)
	if r := CheckPerfectMaze(g, edges); !r.Satisfied {
		t.Errorf("expected success on a single-root layout: %s", r.Details)
	}
}

func TestCheckPerfectMaze_FailsOnDisconnectedForest(t *testing.T) {
	g, _, edges := buildMaze(t, 5, 5, 2, 11)
	if r := CheckPerfectMaze(g, edges); r.Satisfied {
		t.Error("expected failure: a 2-root layout is a forest, not a single spanning tree")
	}
}

func TestCheckPerfectMaze_FailsOnExtraPassableEdge(t *testing.T) {
	g, _, edges := buildMaze(t, 4, 4, 1, 23)
	for i, e := range edges {
		if e.Direction == mazeforest.Closed {
			edges[i].Direction = mazeforest.Border
			break
		}
	}
	if r := CheckPerfectMaze(g, edges); r.Satisfied {
		t.Error("expected failure after promoting an extra edge to passable, creating a cycle")
	}
}

func TestCheckSolutionPath_SameCellHasNoSolutionEdges(t *testing.T) {
	g, _, edges := buildMaze(t, 4, 4, 1, 21)
	if r := CheckSolutionPath(g, edges, 0, 0); !r.Satisfied {
		t.Errorf("expected success for start==end with no solution edges set: %s", r.Details)
	}
}

func TestCheckSolutionPath_FailsOnBrokenDegree(t *testing.T) {
	g, cells, edges := buildMaze(t, 5, 5, 1, 31)
	start, end := 0, len(cells)-1
	path := mazeforest.Solve(g, edges, start, end)
	for _, eid := range path {
		edges[eid].Solution = true
	}
	// Corrupt the path by also flagging an unrelated edge.
	for i, e := range edges {
		if !e.Solution {
			edges[i].Solution = true
			break
		}
	}
	if r := CheckSolutionPath(g, edges, start, end); r.Satisfied {
		t.Error("expected failure after flagging an extra solution edge")
	}
}
