// Package mazegrid defines the Geometry contract shared by the micro grid and
// the zone-level meta-graph, and provides the only concrete Geometry this
// module ships: a rectangular square grid.
//
// # Overview
//
// Geometry is deliberately narrow: counts, incidence, inverse incidence, and a
// uniform random cell picker. Everything above it (the spanning-forest
// builder, the meta-graph, the solver) is written against the interface, not
// against SquareGeometry directly, so a future non-square geometry (hex,
// triangular, graph-defined) could be dropped in without touching the rest of
// the pipeline.
//
// # Square-Grid Layout
//
// Cells are row-major: cell id = row*cols + col. Edges are laid out band by
// band, one band per row: the first cols-1 entries of a band are the
// vertical edges to the next column in that row ("east" edges); the
// remaining cols entries are the horizontal edges to the same column in the
// next row ("south" edges). The last row has no south band, so
// num_edges = rows*(2*cols-1) - cols.
//
// # Renderable
//
// SquareGeometry also implements Renderable, giving every cell and edge a 2D
// position for the mazesvg renderer. Positions are plain grid coordinates;
// there is no force-directed or other layout step, since a square grid's
// positions are already fully determined by its indices.
package mazegrid
