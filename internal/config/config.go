// Package config defines the checker configuration file. It uses strict
// YAML decoding on top of explicit defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/cstyle/internal/domain/detectors"
)

// Config holds the complete checker configuration.
type Config struct {
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Ctags      string           `yaml:"ctags"`          // ctags binary name or path
	Jobs       int              `yaml:"jobs,omitempty"` // detector workers, 0 = one per CPU
}

// ThresholdsConfig holds the limits of the sized rules.
type ThresholdsConfig struct {
	MaxFunctionLength int `yaml:"max_function_length"`
	MaxMainLength     int `yaml:"max_main_length"`
	LongLine          int `yaml:"long_line"`
	CommentGap        int `yaml:"comment_gap"`
	MaxArguments      int `yaml:"max_arguments"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	th := detectors.DefaultThresholds()

	return &Config{
		Thresholds: ThresholdsConfig{
			MaxFunctionLength: th.MaxFunctionLength,
			MaxMainLength:     th.MaxMainLength,
			LongLine:          th.LongLine,
			CommentGap:        th.CommentGap,
			MaxArguments:      th.MaxArguments,
		},
		Ctags: "ctags",
	}
}

// Load reads configuration from a YAML file. Keys missing from the file
// keep their default value. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses YAML over the defaults and validates the result.
func Decode(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DetectorThresholds converts the thresholds for the detector set.
func (c *Config) DetectorThresholds() detectors.Thresholds {
	return detectors.Thresholds{
		MaxFunctionLength: c.Thresholds.MaxFunctionLength,
		MaxMainLength:     c.Thresholds.MaxMainLength,
		LongLine:          c.Thresholds.LongLine,
		CommentGap:        c.Thresholds.CommentGap,
		MaxArguments:      c.Thresholds.MaxArguments,
	}
}
