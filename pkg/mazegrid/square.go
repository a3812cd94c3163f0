package mazegrid

import (
	"fmt"

	"github.com/dshills/mazeforge/pkg/mazerng"
)

// Geometry is the pure combinatorial contract shared by the micro grid and
// the zone-level meta-graph. It exposes only counts, incidence, inverse
// incidence, and a uniform random cell picker — everything the spanning-forest
// builder and the hierarchical solver need, and nothing about layout.
type Geometry interface {
	NumCells() int
	NumEdges() int
	// CellEdges returns the edge ids incident to cell. Order is unspecified;
	// duplicates are forbidden.
	CellEdges(cell int) []int
	// EdgeCells returns the one or two cell ids an edge connects. The second
	// element is -1 for single-ended edges (this geometry has none, but the
	// contract admits geometries that do).
	EdgeCells(edge int) [2]int
	RandomCell(rng *mazerng.Source) int
}

// Renderable supplies 2D positions for a Geometry's cells and edges, so a
// renderer never needs to know how a Geometry lays itself out.
type Renderable interface {
	CellPosition(cell int) (x, y float64)
	EdgePosition(edge int) (p1, p2 [2]float64)
}

// SquareGeometry is a rows x cols rectangular grid. Cells are row-major;
// edges are laid out band-by-band as described in the package doc comment.
type SquareGeometry struct {
	rows, cols int
	bandStart  []int
	bandSize   []int
}

// NewSquareGeometry builds the geometry for a rows x cols grid. Both
// dimensions must be at least 1.
func NewSquareGeometry(rows, cols int) (*SquareGeometry, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("mazegrid: invalid dimensions %dx%d", rows, cols)
	}
	bandStart := make([]int, rows)
	bandSize := make([]int, rows)
	offset := 0
	for r := 0; r < rows; r++ {
		size := 2*cols - 1
		if r == rows-1 {
			size = cols - 1
		}
		bandStart[r] = offset
		bandSize[r] = size
		offset += size
	}
	return &SquareGeometry{rows: rows, cols: cols, bandStart: bandStart, bandSize: bandSize}, nil
}

func (g *SquareGeometry) Rows() int { return g.rows }
func (g *SquareGeometry) Cols() int { return g.cols }

func (g *SquareGeometry) NumCells() int { return g.rows * g.cols }

func (g *SquareGeometry) NumEdges() int {
	if g.rows == 0 {
		return 0
	}
	return g.bandStart[g.rows-1] + g.bandSize[g.rows-1]
}

// eastEdge returns the edge id between (row,col) and (row,col+1).
func (g *SquareGeometry) eastEdge(row, col int) int {
	return g.bandStart[row] + col
}

// southEdge returns the edge id between (row,col) and (row+1,col).
func (g *SquareGeometry) southEdge(row, col int) int {
	return g.bandStart[row] + (g.cols - 1) + col
}

func (g *SquareGeometry) CellEdges(cell int) []int {
	row, col := cell/g.cols, cell%g.cols
	edges := make([]int, 0, 4)
	if row > 0 {
		edges = append(edges, g.southEdge(row-1, col)) // north
	}
	if col > 0 {
		edges = append(edges, g.eastEdge(row, col-1)) // west
	}
	if col < g.cols-1 {
		edges = append(edges, g.eastEdge(row, col)) // east
	}
	if row < g.rows-1 {
		edges = append(edges, g.southEdge(row, col)) // south
	}
	return edges
}

func (g *SquareGeometry) EdgeCells(edge int) [2]int {
	row := g.rowOf(edge)
	offset := edge - g.bandStart[row]
	if offset < g.cols-1 {
		col := offset
		return [2]int{row*g.cols + col, row*g.cols + col + 1}
	}
	col := offset - (g.cols - 1)
	return [2]int{row*g.cols + col, (row+1)*g.cols + col}
}

// rowOf finds the band a given edge id falls into via a linear scan; band
// counts are small (one per row), so this stays cheap without a map.
func (g *SquareGeometry) rowOf(edge int) int {
	for r := g.rows - 1; r >= 0; r-- {
		if edge >= g.bandStart[r] {
			return r
		}
	}
	return 0
}

func (g *SquareGeometry) RandomCell(rng *mazerng.Source) int {
	return rng.Intn(g.NumCells())
}

func (g *SquareGeometry) CellPosition(cell int) (x, y float64) {
	row, col := cell/g.cols, cell%g.cols
	return float64(col) + 0.5, float64(row) + 0.5
}

func (g *SquareGeometry) EdgePosition(edge int) (p1, p2 [2]float64) {
	row := g.rowOf(edge)
	offset := edge - g.bandStart[row]
	if offset < g.cols-1 {
		// east edge: vertical wall segment between the two columns
		col := offset
		x := float64(col + 1)
		return [2]float64{x, float64(row)}, [2]float64{x, float64(row + 1)}
	}
	// south edge: horizontal wall segment between the two rows
	col := offset - (g.cols - 1)
	y := float64(row + 1)
	return [2]float64{float64(col), y}, [2]float64{float64(col + 1), y}
}
