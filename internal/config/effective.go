package config

import (
	"fmt"
	"strings"

	"github.com/1broseidon/winanchor/internal/placement"
)

// ValidationError reports an invalid config value, with its file position
// when known.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw file values over DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.TaskbarReservation != nil {
		cfg.TaskbarReservation = *raw.TaskbarReservation
	}
	if raw.DefaultAnchor != nil {
		anchor, err := placement.ParseAnchor(*raw.DefaultAnchor)
		if err != nil {
			return nil, &ValidationError{Path: "default_anchor", Err: err}
		}
		cfg.DefaultAnchor = anchor
	}
	if raw.IgnoreTaskbar != nil {
		cfg.IgnoreTaskbar = *raw.IgnoreTaskbar
	}
	if raw.Resolution != nil {
		if raw.Resolution.Width == nil || raw.Resolution.Height == nil {
			return nil, &ValidationError{Path: "resolution", Err: fmt.Errorf("resolution requires both width and height")}
		}
		cfg.Resolution = &ResolutionOverride{
			Width:  *raw.Resolution.Width,
			Height: *raw.Resolution.Height,
		}
	}
	if raw.Display != nil {
		cfg.Display = strings.TrimSpace(*raw.Display)
	}
	if raw.Logging != nil {
		if raw.Logging.Level != nil {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*raw.Logging.Level))
		}
		if raw.Logging.Format != nil {
			cfg.Logging.Format = strings.ToLower(strings.TrimSpace(*raw.Logging.Format))
		}
	}

	return cfg, nil
}
