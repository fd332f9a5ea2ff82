package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/winanchor/internal/placement"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ResolutionOverride pins the display resolution instead of querying the
// display server.
type ResolutionOverride struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	// Level is one of: debug, info, warn, error
	Level string `yaml:"level"`
	// Format is "console" (human readable, stderr) or "json"
	Format string `yaml:"format"`
}

// Config is the effective winanchor configuration.
type Config struct {
	// TaskbarReservation is the bottom margin in pixels kept for a docked
	// taskbar when placing bottom-anchored windows.
	TaskbarReservation int              `yaml:"taskbar_reservation"`
	DefaultAnchor      placement.Anchor `yaml:"default_anchor"`
	// IgnoreTaskbar is the default for footprints that don't say otherwise.
	IgnoreTaskbar bool                `yaml:"ignore_taskbar"`
	Resolution    *ResolutionOverride `yaml:"resolution,omitempty"`
	// Display overrides $DISPLAY for the X11 backend.
	Display string        `yaml:"display,omitempty"`
	Logging LoggingConfig `yaml:"logging"`
}

func DefaultConfig() *Config {
	return &Config{
		TaskbarReservation: int(placement.DefaultTaskbarReservation),
		DefaultAnchor:      placement.Center,
		IgnoreTaskbar:      false,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Resolver returns a placement resolver using the configured reservation.
func (c *Config) Resolver() placement.Resolver {
	if c == nil {
		return placement.NewResolver(placement.DefaultTaskbarReservation)
	}
	return placement.NewResolver(float64(c.TaskbarReservation))
}

// DefaultFootprint builds a footprint of the given size carrying the
// configured taskbar policy.
func (c *Config) DefaultFootprint(width, height float64) placement.Footprint {
	fp := placement.Footprint{Width: width, Height: height}
	if c != nil {
		fp.IgnoreTaskbarReservation = c.IgnoreTaskbar
	}
	return fp
}

// FixedResolution reports the configured resolution override, if any.
func (c *Config) FixedResolution() (placement.Resolution, bool) {
	if c == nil || c.Resolution == nil {
		return placement.Resolution{}, false
	}
	return placement.NewResolution(c.Resolution.Width, c.Resolution.Height), true
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if c.TaskbarReservation < 0 {
		return &ValidationError{Path: "taskbar_reservation", Err: fmt.Errorf("taskbar_reservation must be >= 0")}
	}
	if !c.DefaultAnchor.Valid() {
		return &ValidationError{Path: "default_anchor", Err: fmt.Errorf("default_anchor must be one of: %s", strings.Join(placement.AnchorNames(), ", "))}
	}
	if c.Resolution != nil {
		if c.Resolution.Width <= 0 {
			return &ValidationError{Path: "resolution.width", Err: fmt.Errorf("width must be > 0")}
		}
		if c.Resolution.Height <= 0 {
			return &ValidationError{Path: "resolution.height", Err: fmt.Errorf("height must be > 0")}
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ValidationError{Path: "logging.format", Err: fmt.Errorf("format must be one of: console, json")}
	}
	return nil
}

// Save writes the configuration to path, creating parent directories.
//
// Note: this marshals the effective config and will not preserve comments
// from the original YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
