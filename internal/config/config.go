// SPDX-License-Identifier: MIT

// Package config loads the optional YAML settings file of the mtx command.
//
// Example:
//
//	layout: csc
//	debug: true
//	max_line_bytes: 4194304
//	spy:
//	  width: 8
//	  height: 8
//	  marker: 1.5
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout names accepted by the layout setting.
const (
	LayoutCSR = "csr"
	LayoutCSC = "csc"
)

var (
	// ErrRead is returned when the config file cannot be read.
	ErrRead = errors.New("config: cannot read file")

	// ErrInvalid is returned for malformed YAML or out-of-range settings.
	ErrInvalid = errors.New("config: invalid settings")
)

// Spy holds the sparsity-plot settings.
type Spy struct {
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	Marker float64 `yaml:"marker"` // points
}

// Config holds every setting of the mtx command.
type Config struct {
	Layout       string `yaml:"layout"`
	Debug        bool   `yaml:"debug"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
	Spy          Spy    `yaml:"spy"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout:       LayoutCSR,
		MaxLineBytes: 1 << 20,
		Spy:          Spy{Width: 6, Height: 6, Marker: 1},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if err = yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Layout {
	case LayoutCSR, LayoutCSC:
	default:
		return fmt.Errorf("%w: layout %q, want %q or %q", ErrInvalid, c.Layout, LayoutCSR, LayoutCSC)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("%w: max_line_bytes must be positive", ErrInvalid)
	}
	if c.Spy.Width <= 0 || c.Spy.Height <= 0 || c.Spy.Marker <= 0 {
		return fmt.Errorf("%w: spy sizes must be positive", ErrInvalid)
	}

	return nil
}
