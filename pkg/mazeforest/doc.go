// Package mazeforest builds a multi-root spanning forest over any
// mazegrid.Geometry and solves unique paths within it.
//
// # Overview
//
// Layout grows R spanning trees simultaneously from R randomly chosen seed
// cells, using a frontier with swap-remove semantics so tree shapes are not
// biased by insertion order. Every cell ends up in exactly one zone; every
// edge ends up Forward, Backward, or Closed.
//
// Solve finds the unique path between two cells of an already-built forest
// using a toggle-to-root trick instead of explicit LCA computation: walking
// each endpoint to its tree root while flipping a `solution` flag on every
// edge traversed cancels out the shared segment above the LCA, leaving
// exactly the path edges flagged.
//
// Both operations work identically whether called on the micro grid or on a
// mazemeta.MetaGeometry, since both present the same Geometry contract.
package mazeforest
