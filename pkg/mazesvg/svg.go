package mazesvg

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazegrid"
)

// Options configures the rendered SVG.
type Options struct {
	Scale        float64 // pixels per grid unit
	ShowLabels   bool    // draw S/E letters on the start/end overlays
	ShowZoneFill bool    // fill cells with a per-zone color
	ShowSolution bool    // draw midpoint markers on Solution edges
	Margin       int     // canvas margin in pixels
}

// DefaultOptions returns sensible default render options.
func DefaultOptions() Options {
	return Options{
		Scale:        32,
		ShowLabels:   true,
		ShowZoneFill: true,
		ShowSolution: true,
		Margin:       16,
	}
}

// Render draws the maze described by cells/edges over g's layout to an SVG
// document. Wall segments (Closed edges), gateway segments (Border edges),
// zone-colored cell fills, solution midpoint markers, and start/end overlays
// are all drawn per the edge and cell state handed in — Render performs no
// layout of its own beyond what g.CellPosition/g.EdgePosition already supply.
func Render(g mazegrid.Renderable, cells []mazeforest.Cell, edges []mazeforest.Edge, opts Options, start, end int) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("mazesvg: Render requires a non-nil Renderable")
	}
	if opts.Scale <= 0 {
		opts.Scale = 32
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	width, height := canvasBounds(cells, g, opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#10121a")

	if opts.ShowZoneFill {
		drawZoneFills(canvas, cells, g, opts)
	}
	drawWallsAndGateways(canvas, edges, g, opts)
	if opts.ShowSolution {
		drawSolutionMarkers(canvas, edges, g, opts)
	}
	drawEndpoints(canvas, start, end, g, opts)

	canvas.End()
	return buf.Bytes(), nil
}

func px(v float64, opts Options) int {
	return int(v*opts.Scale) + opts.Margin
}

// canvasBounds measures from the origin to the largest cell position and pads
// it by opts.Margin on each side; the square grid's cell centers run from
// (0.5,0.5) to (cols-0.5,rows-0.5), but Render stays geometry-agnostic and
// measures instead of assuming.
func canvasBounds(cells []mazeforest.Cell, g mazegrid.Renderable, opts Options) (width, height int) {
	maxX, maxY := 0.0, 0.0
	for c := range cells {
		x, y := g.CellPosition(c)
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	width = int(maxX*opts.Scale) + 2*opts.Margin
	height = int(maxY*opts.Scale) + 2*opts.Margin
	return width, height
}

// zonePalette returns a deterministic, visually distinct HSL color for a
// zone id, so the renderer satisfies "each cell is drawn as a filled
// rectangle tagged with its zone group" without requiring an external
// stylesheet: the hue simply rotates by the golden angle per zone id.
func zonePalette(zone mazeforest.Zone) string {
	hue := (int(zone) * 137) % 360
	return fmt.Sprintf("fill:hsl(%d,45%%,28%%)", hue)
}

func drawZoneFills(canvas *svg.SVG, cells []mazeforest.Cell, g mazegrid.Renderable, opts Options) {
	half := opts.Scale/2 - 1
	if half < 1 {
		half = 1
	}
	for c, cell := range cells {
		x, y := g.CellPosition(c)
		cx, cy := px(x, opts), px(y, opts)
		style := zonePalette(cell.Group)
		canvas.Rect(cx-int(half), cy-int(half), int(2*half), int(2*half), style)
		if cell.Root {
			canvas.Circle(cx, cy, int(half/3)+1, "fill:#f5f5f5;opacity:0.85")
		}
	}
}

func drawWallsAndGateways(canvas *svg.SVG, edges []mazeforest.Edge, g mazegrid.Renderable, opts Options) {
	for i, e := range edges {
		switch e.Direction {
		case mazeforest.Closed:
			drawSegment(canvas, i, g, opts, "stroke:#e2e8f0;stroke-width:2")
		case mazeforest.Border:
			drawSegment(canvas, i, g, opts, "stroke:#ffd700;stroke-width:3;stroke-dasharray:1,0")
		}
	}
}

func drawSegment(canvas *svg.SVG, eid int, g mazegrid.Renderable, opts Options, style string) {
	p1, p2 := g.EdgePosition(eid)
	canvas.Line(px(p1[0], opts), px(p1[1], opts), px(p2[0], opts), px(p2[1], opts), style)
}

func drawSolutionMarkers(canvas *svg.SVG, edges []mazeforest.Edge, g mazegrid.Renderable, opts Options) {
	for i, e := range edges {
		if !e.Solution {
			continue
		}
		p1, p2 := g.EdgePosition(i)
		mx := (p1[0] + p2[0]) / 2
		my := (p1[1] + p2[1]) / 2
		canvas.Circle(px(mx, opts), px(my, opts), int(opts.Scale/6)+1, "fill:#38bdf8;stroke:#0c4a6e;stroke-width:1")
	}
}

func drawEndpoints(canvas *svg.SVG, start, end int, g mazegrid.Renderable, opts Options) {
	drawEndpoint(canvas, start, "S", "#22c55e", g, opts)
	drawEndpoint(canvas, end, "E", "#ef4444", g, opts)
}

func drawEndpoint(canvas *svg.SVG, cell int, label, color string, g mazegrid.Renderable, opts Options) {
	x, y := g.CellPosition(cell)
	cx, cy := px(x, opts), px(y, opts)
	radius := int(opts.Scale/3) + 1
	canvas.Circle(cx, cy, radius, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", color))
	if opts.ShowLabels {
		canvas.Text(cx, cy+radius/3, label, fmt.Sprintf("text-anchor:middle;font-weight:bold;font-size:%dpx;fill:%s", radius, color))
	}
}
