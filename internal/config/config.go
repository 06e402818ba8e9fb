// Package config handles atlas build configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/atlasc/internal/atlas"
)

// Validation errors.
var (
	ErrNoInputs = errors.New("no input images given")
	ErrNoOutput = errors.New("no output path given")
)

// Config holds one atlas build: the inputs, the manifest path and all build
// settings. A build file supplies any subset of it; CLI flags override.
type Config struct {
	Inputs  []string      `yaml:"inputs"`
	Output  string        `yaml:"output"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds sheet layout and mesh generation settings.
type AtlasConfig struct {
	MaxWidth       int    `yaml:"max_width"`
	MaxHeight      int    `yaml:"max_height"`
	Border         int    `yaml:"border"`
	Padding        int    `yaml:"padding"`
	PowerOfTwo     bool   `yaml:"pot"`
	Mesh           bool   `yaml:"mesh"`
	MaxVerts       int    `yaml:"max_verts"`
	AlphaThreshold int    `yaml:"alpha_threshold"`
	DebugDir       string `yaml:"debug_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented flag defaults.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			MaxWidth:       2048,
			MaxHeight:      2048,
			Border:         2,
			Padding:        1,
			MaxVerts:       25,
			AlphaThreshold: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for a runnable build.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInputs
	}
	if c.Output == "" {
		return ErrNoOutput
	}
	if c.Atlas.MaxWidth <= 0 || c.Atlas.MaxHeight <= 0 {
		return fmt.Errorf("invalid maximum sheet size %dx%d", c.Atlas.MaxWidth, c.Atlas.MaxHeight)
	}
	if c.Atlas.Border < 0 || c.Atlas.Padding < 0 {
		return fmt.Errorf("border and padding must not be negative")
	}
	if c.Atlas.MaxVerts < 3 {
		return fmt.Errorf("max_verts must be at least 3, got %d", c.Atlas.MaxVerts)
	}
	if c.Atlas.AlphaThreshold < 0 || c.Atlas.AlphaThreshold > 255 {
		return fmt.Errorf("alpha_threshold must be in 0..255, got %d", c.Atlas.AlphaThreshold)
	}
	return nil
}

// Options maps the configuration onto build options.
func (c *Config) Options() atlas.Options {
	return atlas.Options{
		MaxWidth:       c.Atlas.MaxWidth,
		MaxHeight:      c.Atlas.MaxHeight,
		Border:         c.Atlas.Border,
		Padding:        c.Atlas.Padding,
		PowerOfTwo:     c.Atlas.PowerOfTwo,
		Mesh:           c.Atlas.Mesh,
		MaxVerts:       c.Atlas.MaxVerts,
		AlphaThreshold: c.Atlas.AlphaThreshold,
		DebugDir:       c.Atlas.DebugDir,
	}
}
