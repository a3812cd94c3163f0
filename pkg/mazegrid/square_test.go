package mazegrid

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/mazeforge/pkg/mazerng"
)

func mustSquare(t *testing.T, rows, cols int) *SquareGeometry {
	t.Helper()
	g, err := NewSquareGeometry(rows, cols)
	if err != nil {
		t.Fatalf("NewSquareGeometry(%d,%d): %v", rows, cols, err)
	}
	return g
}

func TestNewSquareGeometry_RejectsBadDimensions(t *testing.T) {
	for _, tt := range []struct{ rows, cols int }{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewSquareGeometry(tt.rows, tt.cols); err == nil {
			t.Errorf("NewSquareGeometry(%d,%d) = nil error, want error", tt.rows, tt.cols)
		}
	}
}

// TestScenario_S3_ThreeByThree matches spec.md scenario S3.
func TestScenario_S3_ThreeByThree(t *testing.T) {
	g := mustSquare(t, 3, 3)
	if got := g.NumCells(); got != 9 {
		t.Errorf("NumCells() = %d, want 9", got)
	}
	if got := g.NumEdges(); got != 12 {
		t.Errorf("NumEdges() = %d, want 12", got)
	}
}

// TestScenario_S4_ThreeByFourEdgeCells matches spec.md scenario S4.
func TestScenario_S4_ThreeByFourEdgeCells(t *testing.T) {
	g := mustSquare(t, 3, 4)
	cases := []struct {
		edge int
		want [2]int
	}{
		{0, [2]int{0, 1}},
		{3, [2]int{0, 4}},
		{7, [2]int{4, 5}},
		{16, [2]int{10, 11}},
	}
	for _, tt := range cases {
		got := g.EdgeCells(tt.edge)
		if got != tt.want {
			t.Errorf("EdgeCells(%d) = %v, want %v", tt.edge, got, tt.want)
		}
	}
}

func TestNumEdgesFormula(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(1, 30).Draw(rt, "rows")
		cols := rapid.IntRange(1, 30).Draw(rt, "cols")
		g := mustSquare(t, rows, cols)
		want := rows*(2*cols-1) - cols
		if rows == 1 {
			want = cols - 1
		}
		if got := g.NumEdges(); got != want {
			rt.Fatalf("NumEdges() = %d, want %d for %dx%d", got, want, rows, cols)
		}
	})
}

// TestCellEdges_ConsistentWithEdgeCells checks the incidence/inverse
// incidence relationship between CellEdges and EdgeCells is consistent: every
// edge id returned by CellEdges(c) must list c among its EdgeCells, and every
// edge must appear in CellEdges exactly twice.
func TestCellEdges_ConsistentWithEdgeCells(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(1, 12).Draw(rt, "rows")
		cols := rapid.IntRange(1, 12).Draw(rt, "cols")
		g := mustSquare(t, rows, cols)

		seen := make([]int, g.NumEdges())
		for cell := 0; cell < g.NumCells(); cell++ {
			for _, e := range g.CellEdges(cell) {
				seen[e]++
				ends := g.EdgeCells(e)
				if ends[0] != cell && ends[1] != cell {
					rt.Fatalf("CellEdges(%d) returned edge %d whose EdgeCells %v does not contain %d", cell, e, ends, cell)
				}
			}
		}
		for e, count := range seen {
			if count != 2 {
				rt.Fatalf("edge %d appeared in CellEdges %d times, want 2", e, count)
			}
		}
	})
}

func TestRandomCell_InRange(t *testing.T) {
	g := mustSquare(t, 5, 7)
	rng := mazerng.New(1, "test", nil)
	for i := 0; i < 200; i++ {
		c := g.RandomCell(rng)
		if c < 0 || c >= g.NumCells() {
			t.Fatalf("RandomCell() = %d, out of range [0,%d)", c, g.NumCells())
		}
	}
}

func TestEdgePosition_MatchesCellPositionGrid(t *testing.T) {
	g := mustSquare(t, 3, 4)
	// edge 0 connects cells 0 and 1 (row 0, east edge between col 0 and 1):
	// its wall segment must be the vertical line x=1 spanning row 0.
	p1, p2 := g.EdgePosition(0)
	if p1[0] != 1 || p2[0] != 1 {
		t.Errorf("EdgePosition(0) = %v,%v want vertical segment at x=1", p1, p2)
	}
	if p1[1] != 0 || p2[1] != 1 {
		t.Errorf("EdgePosition(0) = %v,%v want y spanning [0,1]", p1, p2)
	}
}
