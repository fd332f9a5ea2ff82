// Package display reads the primary display resolution.
package display

import (
	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/logging"
	"github.com/1broseidon/winanchor/internal/placement"
	"github.com/1broseidon/winanchor/internal/platform"
)

// Metrics exposes the current display resolution. Implementations do not
// cache; a failed query yields a zero Resolution rather than an error.
type Metrics interface {
	CurrentResolution() placement.Resolution
}

// Fixed is a Metrics reporting a constant resolution.
type Fixed struct {
	Width  int
	Height int
}

func (f Fixed) CurrentResolution() placement.Resolution {
	return placement.NewResolution(f.Width, f.Height)
}

// BackendMetrics reads the primary display from a platform backend on every call.
type BackendMetrics struct {
	backend platform.Backend
}

// NewMetrics wraps backend as a Metrics.
func NewMetrics(backend platform.Backend) *BackendMetrics {
	return &BackendMetrics{backend: backend}
}

func (m *BackendMetrics) CurrentResolution() placement.Resolution {
	logger := logging.Module("display")
	if m == nil || m.backend == nil {
		logger.Debug().Msg("no display backend; reporting 0x0")
		return placement.Resolution{}
	}

	d, err := m.backend.PrimaryDisplay()
	if err != nil {
		logger.Debug().Err(err).Msg("primary display query failed; reporting 0x0")
		return placement.Resolution{}
	}

	logger.Debug().
		Str("display", d.Name).
		Int("width", d.Bounds.Width).
		Int("height", d.Bounds.Height).
		Msg("primary display")
	return placement.NewResolution(d.Bounds.Width, d.Bounds.Height)
}

// BackendFactory opens a platform backend.
type BackendFactory func(platform.Options) (platform.Backend, error)

// FromConfig returns Fixed when cfg pins a resolution, otherwise metrics over a
// backend opened with factory. The returned close func releases the backend
// and is always non-nil.
func FromConfig(cfg *config.Config, factory BackendFactory) (Metrics, func(), error) {
	if res, ok := cfg.FixedResolution(); ok {
		return Fixed{Width: int(res.Width), Height: int(res.Height)}, func() {}, nil
	}
	if factory == nil {
		factory = platform.NewBackend
	}

	opts := platform.Options{}
	if cfg != nil {
		opts.Display = cfg.Display
	}
	backend, err := factory(opts)
	if err != nil {
		return nil, func() {}, err
	}
	return NewMetrics(backend), backend.Close, nil
}
