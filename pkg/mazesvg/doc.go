// Package mazesvg renders a solved maze to SVG.
//
// Render takes exactly the data contract the core pipeline produces — a
// Renderable geometry for positions, the final cell and edge states, and the
// chosen start/end cells — and performs no layout of its own: positions come
// straight from the geometry, since a square grid's coordinates are already
// fully determined by its row/column indices.
//
// Closed edges draw as walls, Border edges as highlighted gateways,
// Forward/Backward edges draw nothing (they are passable), and any edge with
// Solution set also gets a midpoint marker. Cells are filled by a
// deterministic per-zone color so the zone partition is visible without
// depending on an external stylesheet.
package mazesvg
