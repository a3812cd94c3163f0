package maze

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/mazeforge/pkg/mazeerr"
)

// Config specifies all maze generation parameters. It supports YAML parsing
// and includes validation matching the preconditions of BuildSquare.
type Config struct {
	// Seed is the master seed for deterministic generation. LoadConfig and
	// LoadConfigFromBytes replace 0 with a time-based seed; Generate uses
	// the value as given.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Width and Height are the grid's column and row counts.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// ZoneRoots is the number of zones the micro-grid is partitioned into.
	// Generate clamps it to max(1, Width*Height/2) if larger.
	ZoneRoots int `yaml:"zoneRoots" json:"zoneRoots"`

	// MetaRoots is the number of roots for the meta-level spanning forest.
	// 1 produces a single connected maze (the only value spec.md exercises);
	// values above 1 leave disjoint super-zones, useful for multi-entrance
	// layouts.
	MetaRoots int `yaml:"metaRoots" json:"metaRoots"`

	// Scale is the rendering scale in pixels per grid unit.
	Scale float64 `yaml:"scale" json:"scale"`
}

// DefaultConfig returns the parameters spec.md's BuildSquare uses: 6 zone
// roots, 1 meta-root, scale 32.
func DefaultConfig() Config {
	return Config{
		ZoneRoots: 6,
		MetaRoots: 1,
		Scale:     32,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks all configuration constraints. It returns
// mazeerr.ErrInvalidGeometry wrapped with the offending detail, or nil if
// valid.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: width and height must be >= 1, got %dx%d", mazeerr.ErrInvalidGeometry, c.Width, c.Height)
	}
	if c.Width*c.Height < 2 {
		return fmt.Errorf("%w: width*height must be >= 2 to guarantee distinct endpoints", mazeerr.ErrInvalidGeometry)
	}
	if c.ZoneRoots < 1 {
		return fmt.Errorf("%w: zoneRoots must be >= 1, got %d", mazeerr.ErrInvalidGeometry, c.ZoneRoots)
	}
	if c.MetaRoots < 1 {
		return fmt.Errorf("%w: metaRoots must be >= 1, got %d", mazeerr.ErrInvalidGeometry, c.MetaRoots)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be > 0, got %f", mazeerr.ErrInvalidGeometry, c.Scale)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// independent per-stage RNG sub-streams (see pkg/mazerng). Config changes
// shift every stage's stream even when the master seed is unchanged.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed creates a seed from the current time, used when a config
// omits one. Uses nanosecond precision for better uniqueness.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
