// Package config loads and validates marquee's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCycleMS is the autoplay interval applied when cycle_ms is unset
// or non-positive.
const DefaultCycleMS = 3000

// Config is the top-level marquee configuration.
type Config struct {
	Images  []ImageConfig `yaml:"images"`
	CycleMS int           `yaml:"cycle_ms"`
	Style   StyleConfig   `yaml:"style"`
}

// ImageConfig describes one slide. In YAML an entry may be a plain
// string (the source path) or a mapping with src/title/caption keys.
type ImageConfig struct {
	Src     string `yaml:"src"`
	Title   string `yaml:"title,omitempty"`
	Caption string `yaml:"caption,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (ic *ImageConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&ic.Src)
	}

	type plain ImageConfig
	return node.Decode((*plain)(ic))
}

// StyleConfig holds the visual options applied once at startup.
type StyleConfig struct {
	Radius     bool   `yaml:"radius"`      // rounded frame corners
	ThemeColor string `yaml:"theme_color"` // accent color, hex or ANSI index
}

// Load reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, so image
// directories can live in the environment rather than be hardcoded.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// FromSources builds a Config from bare image paths, for invocations
// that pass images on the command line instead of a config file.
func FromSources(srcs []string) Config {
	cfg := Config{Images: make([]ImageConfig, 0, len(srcs))}
	for _, src := range srcs {
		cfg.Images = append(cfg.Images, ImageConfig{Src: src})
	}
	return cfg
}

// Validate checks that the configuration is internally consistent. An
// empty image list is valid: the carousel degenerates to an empty frame
// with no navigable state.
func (c Config) Validate() error {
	for i, img := range c.Images {
		if img.Src == "" {
			return fmt.Errorf("config: images[%d]: src is required", i)
		}
	}

	if c.CycleMS < 0 {
		return fmt.Errorf("config: cycle_ms must not be negative, got %d", c.CycleMS)
	}

	return nil
}

// Cycle returns the autoplay interval, falling back to DefaultCycleMS
// when cycle_ms is unset or zero.
func (c Config) Cycle() time.Duration {
	ms := c.CycleMS
	if ms <= 0 {
		ms = DefaultCycleMS
	}
	return time.Duration(ms) * time.Millisecond
}
