package vnet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
)

const defaultObserver = "slog"

// Config holds initialization parameters for all subsystems.
type Config struct {
	Alloc    alloc.Config `json:"alloc" yaml:"alloc"`
	Observer string       `json:"observer,omitempty" yaml:"observer,omitempty"`   // Name in the observability registry.
	MinLevel string       `json:"min_level,omitempty" yaml:"min_level,omitempty"` // Drop events below this level; empty keeps all.
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Alloc:    alloc.DefaultConfig(),
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Alloc.Merge(&source.Alloc)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.MinLevel != "" {
		c.MinLevel = source.MinLevel
	}
}

// LoadConfig reads a config file, merges it with defaults, and returns the
// resulting Config. Files ending in .yaml or .yml are decoded as YAML,
// anything else as JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
