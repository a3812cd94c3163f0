package mazerng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// Source provides deterministic random number generation for a pipeline stage.
// Each stage derives its own key from the master seed to ensure isolation and
// reproducibility. The derivation follows the formula:
//
//	key_stage = H(masterSeed, stageName, configHash)
//
// where H is SHA-256; the full 32-byte digest seeds a ChaCha20 stream cipher with
// a zero nonce. Keystream bytes are drawn eight at a time and interpreted as
// little-endian uint64s.
//
// All methods are deterministic given the same initial seed, making mazes
// reproducible across runs with identical inputs.
type Source struct {
	seed      uint64
	stageName string
	cipher    *chacha20.Cipher
	buf       [256]byte
	pos       int
}

// New creates a stage-specific Source by deriving a sub-key from the master seed.
// The derivation uses SHA-256 to combine:
//   - masterSeed: The top-level seed for the entire generation process
//   - stageName: Identifies the pipeline stage (e.g., "zone_layout", "gateways")
//   - configHash: Hash of the configuration, so config changes shift the stream
//
// This ensures that:
//  1. Same inputs always produce the same sequence (determinism)
//  2. Different stages get independent sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
func New(masterSeed uint64, stageName string, configHash []byte) *Source {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)
	key := h.Sum(nil)

	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// key is always 32 bytes (sha256.Size) and nonce is always
		// chacha20.NonceSize, so construction cannot fail.
		panic("mazerng: chacha20 cipher construction failed: " + err.Error())
	}

	s := &Source{
		seed:      binary.BigEndian.Uint64(key[:8]),
		stageName: stageName,
		cipher:    cipher,
	}
	s.pos = len(s.buf) // force a refill on first draw
	return s
}

func (s *Source) refill() {
	var zero [256]byte
	s.cipher.XORKeyStream(s.buf[:], zero[:])
	s.pos = 0
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
// The sequence is deterministic based on the Source's derived key.
func (s *Source) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

// uint64n returns a pseudo-random uint64 in [0, n) using rejection sampling,
// avoiding the modulo bias a plain `Uint64() % n` would introduce.
func (s *Source) uint64n(n uint64) uint64 {
	if n == 0 {
		panic("mazerng: uint64n argument must be positive")
	}
	// Largest multiple of n that fits in a uint64; draws at or above it are
	// discarded so every remaining outcome has equal probability.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := s.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Intn returns a pseudo-random integer in [0, n).
// It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("mazerng: Intn argument must be positive")
	}
	return int(s.uint64n(uint64(n)))
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	// 53 bits of precision, matching the float64 mantissa.
	return float64(s.uint64n(1<<53)) / float64(1<<53)
}

// Shuffle pseudo-randomizes the order of n elements using the Fisher-Yates
// algorithm. The shuffle is deterministic based on the Source's derived key.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// Seed returns the derived seed for this Source.
// This is useful for debugging which stage produced which stream.
func (s *Source) Seed() uint64 {
	return s.seed
}

// StageName returns the stage name this Source was created for.
func (s *Source) StageName() string {
	return s.stageName
}

// IntRange returns a pseudo-random integer in [min, max].
// It panics if min > max.
func (s *Source) IntRange(min, max int) int {
	if min > max {
		panic("mazerng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max).
// It panics if min >= max.
func (s *Source) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("mazerng: Float64Range min must be < max")
	}
	return min + s.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean value.
func (s *Source) Bool() bool {
	return s.Intn(2) == 1
}

// WeightedChoice selects an index from weights using weighted random selection.
// Weights must be non-negative. Returns -1 if all weights are zero or weights is empty.
func (s *Source) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("mazerng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	randVal := s.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// UniqueIntN draws n distinct indices from [0, size) uniformly at random.
// It is the stage-0 seed-selection primitive: picking R distinct zone roots
// out of N cells. Panics if n > size.
func (s *Source) UniqueIntN(size, n int) []int {
	if n > size {
		panic("mazerng: UniqueIntN cannot draw more unique indices than size")
	}
	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		choice := s.Intn(size)
		if _, ok := seen[choice]; ok {
			continue
		}
		seen[choice] = struct{}{}
		out = append(out, choice)
	}
	return out
}
