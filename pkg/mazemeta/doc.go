// Package mazemeta builds the zone-level meta-graph over an already-built
// spanning forest and opens its gateways.
//
// # Overview
//
// Every inter-zone grid edge straddles exactly one pair of zones. MetaGeometry
// groups those edges into Borders keyed by the zone pair they straddle, and
// exposes the same mazegrid.Geometry contract as the micro grid — its "cells"
// are zones, its "edges" are borders — so mazeforest.Layout and
// mazeforest.Solve can be reapplied unchanged one level up, growing a meta
// spanning tree over the zones themselves.
//
// OpenGateways then walks that meta spanning tree and, for every border whose
// meta-edge is part of it, promotes exactly one of its member grid-edges to a
// passable Border gateway. The rest of that border's edges stay Closed. A
// border's gateway, once chosen, is cached and never re-rolled.
package mazemeta
