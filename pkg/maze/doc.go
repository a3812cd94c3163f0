// Package maze is the generation driver: it wires mazegrid, mazeforest,
// mazemeta, and mazesvg into the pipeline described by spec.md's
// maze_square — zone layout, meta-graph construction, meta layout, gateway
// opening, endpoint selection, hierarchical solving, and rendering — behind
// a single BuildSquare/Generate entry point.
//
// Every random choice the pipeline makes is drawn from its own named
// sub-stream of mazerng, derived from the config's seed and a SHA-256 hash
// of the config itself, so that Generate is a pure function of cfg: the
// same Config always yields a byte-identical Result.
package maze
