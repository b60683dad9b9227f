package cargo

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config tunes the five planning engines. Same Config + same Seed must
// produce identical engine output; Hash feeds the per-engine RNG
// derivation (see pkg/rng) so that changing a tuning knob changes the
// random sequence even when the master seed does not.
type Config struct {
	Seed uint64 `yaml:"seed"`

	Placement     PlacementCfg     `yaml:"placement"`
	Rearrangement RearrangementCfg `yaml:"rearrangement"`
	RTree         RTreeCfg         `yaml:"rtree"`
	Search        SearchCfg        `yaml:"search"`
	Waste         WasteCfg         `yaml:"waste"`
}

// PlacementCfg tunes the GA in pkg/placement.
type PlacementCfg struct {
	Population  int `yaml:"population"`
	Generations int `yaml:"generations"`
}

// RearrangementCfg tunes the GRASP+Tabu search in pkg/rearrangement.
type RearrangementCfg struct {
	Alpha         float64 `yaml:"alpha"`
	MaxIterations int     `yaml:"maxIterations"`
	TabuTenure    int     `yaml:"tabuTenure"`
}

// RTreeCfg tunes the spatial index in pkg/rtree.
type RTreeCfg struct {
	MaxEntries int `yaml:"maxEntries"`
}

// SearchCfg tunes the BM25 ranking in pkg/search.
type SearchCfg struct {
	K1 float64 `yaml:"k1"`
	B  float64 `yaml:"b"`
}

// WasteCfg tunes the knapsack discretization in pkg/waste.
type WasteCfg struct {
	ScaleMax int `yaml:"scaleMax"`
}

// DefaultConfig returns the engine defaults: GA population 50 over 100
// generations, GRASP alpha 0.3, tabu search capped at 100 iterations with
// tenure 10, R-tree fanout 5, BM25 k1=1.5/b=0.75, knapsack discretization
// scale 100.
func DefaultConfig() *Config {
	return &Config{
		Seed: 1,
		Placement: PlacementCfg{
			Population:  50,
			Generations: 100,
		},
		Rearrangement: RearrangementCfg{
			Alpha:         0.3,
			MaxIterations: 100,
			TabuTenure:    10,
		},
		RTree: RTreeCfg{MaxEntries: 5},
		Search: SearchCfg{
			K1: 1.5,
			B:  0.75,
		},
		Waste: WasteCfg{ScaleMax: 100},
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML config bytes, filling in
// defaults for any field the YAML omits. A field set explicitly to zero
// keeps that zero.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every tunable is within a sane range.
func (c *Config) Validate() error {
	if c.Placement.Population <= 0 {
		return errors.New("placement.population must be positive")
	}
	if c.Placement.Generations <= 0 {
		return errors.New("placement.generations must be positive")
	}
	if c.Rearrangement.Alpha <= 0 || c.Rearrangement.Alpha > 1 {
		return fmt.Errorf("rearrangement.alpha must be in (0, 1], got %f", c.Rearrangement.Alpha)
	}
	if c.Rearrangement.MaxIterations <= 0 {
		return errors.New("rearrangement.maxIterations must be positive")
	}
	if c.Rearrangement.TabuTenure <= 0 {
		return errors.New("rearrangement.tabuTenure must be positive")
	}
	if c.RTree.MaxEntries < 2 {
		return errors.New("rtree.maxEntries must be at least 2")
	}
	if c.Search.K1 < 0 {
		return errors.New("search.k1 must be non-negative")
	}
	if c.Search.B < 0 || c.Search.B > 1 {
		return fmt.Errorf("search.b must be in [0, 1], got %f", c.Search.B)
	}
	if c.Waste.ScaleMax <= 0 {
		return errors.New("waste.scaleMax must be positive")
	}
	return nil
}

// Hash returns a SHA-256 digest of the config's YAML encoding, used to
// derive per-engine RNG sub-seeds (see pkg/rng) so that two calls with
// different tuning but the same master seed diverge.
func (c *Config) Hash() []byte {
	data, err := yaml.Marshal(c)
	if err != nil {
		// yaml.Marshal on this struct cannot fail; fall back to a fixed
		// digest rather than propagating an error from a hash helper.
		data = []byte("cargo-config-marshal-error")
	}
	sum := sha256.Sum256(data)
	return sum[:]
}
