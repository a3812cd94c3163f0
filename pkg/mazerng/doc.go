// Package mazerng provides deterministic random number generation for the maze
// generation pipeline.
//
// # Overview
//
// Source derives a stage-specific keystream from a master seed so that each
// pipeline stage (zone layout, meta layout, gateway selection, endpoint
// selection) draws from an independent random sequence, while the overall
// generation remains fully reproducible from one seed.
//
// # Sub-Key Derivation
//
// Each Source derives its key using SHA-256:
//
//	key_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the entire generation
//   - stageName: Pipeline stage identifier (e.g., "zone_layout")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce the same sequence (determinism)
//  2. Different stages get independent sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Stream Cipher
//
// The derived key seeds a ChaCha20 stream cipher (golang.org/x/crypto/chacha20)
// with a zero nonce. The keystream is drawn in fixed-size blocks and consumed
// eight bytes at a time for each Uint64; Intn/Float64 use rejection sampling
// over that stream to stay unbiased.
//
// # Usage
//
// Create a Source for each pipeline stage:
//
//	configHash := cfg.Hash()
//	zoneRNG := mazerng.New(cfg.Seed, "zone_layout", configHash)
//	metaRNG := mazerng.New(cfg.Seed, "meta_layout", configHash)
//
// Use the Source for all random decisions in that stage:
//
//	roots := zoneRNG.UniqueIntN(geom.NumCells(), zoneRootCount)
//	if zoneRNG.Bool() {
//	    // ...
//	}
//
// # Thread Safety
//
// Source instances are NOT thread-safe. Each goroutine should use its own
// Source instance, created before spawning goroutines and passed explicitly.
package mazerng
