package display

import (
	"errors"
	"testing"

	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/placement"
	"github.com/1broseidon/winanchor/internal/platform"
)

type fakeBackend struct {
	primary platform.Display
	err     error
	calls   int
	closed  bool
	opts    platform.Options
}

func (f *fakeBackend) Displays() ([]platform.Display, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []platform.Display{f.primary}, nil
}

func (f *fakeBackend) PrimaryDisplay() (platform.Display, error) {
	f.calls++
	return f.primary, f.err
}

func (f *fakeBackend) Close() { f.closed = true }

func TestBackendMetrics_ReadsPrimaryEveryCall(t *testing.T) {
	fb := &fakeBackend{primary: platform.Display{Name: "eDP-1", Bounds: platform.Rect{Width: 1920, Height: 1080}}}
	m := NewMetrics(fb)

	got := m.CurrentResolution()
	if got != placement.NewResolution(1920, 1080) {
		t.Fatalf("expected 1920x1080, got %+v", got)
	}

	fb.primary.Bounds = platform.Rect{Width: 2560, Height: 1440}
	if got := m.CurrentResolution(); got.Width != 2560 {
		t.Fatalf("expected uncached read, got %+v", got)
	}
	if fb.calls != 2 {
		t.Fatalf("expected 2 backend calls, got %d", fb.calls)
	}
}

func TestBackendMetrics_FailureYieldsZero(t *testing.T) {
	m := NewMetrics(&fakeBackend{err: errors.New("no display")})
	if got := m.CurrentResolution(); got != (placement.Resolution{}) {
		t.Fatalf("expected 0x0, got %+v", got)
	}

	var nilMetrics *BackendMetrics
	if got := nilMetrics.CurrentResolution(); got != (placement.Resolution{}) {
		t.Fatalf("expected 0x0 from nil metrics, got %+v", got)
	}
}

func TestBackendMetrics_JoinedFallbackErrorYieldsZero(t *testing.T) {
	listErr := errors.New("randr unavailable")
	_, err := platform.SelectPrimary(nil, listErr, func() (platform.Display, error) {
		return platform.Display{}, errors.New("root geometry is empty")
	})
	if !errors.Is(err, listErr) {
		t.Fatalf("expected joined error, got %v", err)
	}

	m := NewMetrics(&fakeBackend{err: err})
	if got := m.CurrentResolution(); got != (placement.Resolution{}) {
		t.Fatalf("expected 0x0, got %+v", got)
	}
}

func TestFromConfig_FixedOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Resolution = &config.ResolutionOverride{Width: 1280, Height: 720}

	called := false
	m, closeFn, err := FromConfig(cfg, func(platform.Options) (platform.Backend, error) {
		called = true
		return nil, errors.New("should not open")
	})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer closeFn()
	if called {
		t.Fatalf("backend should not be opened when resolution is fixed")
	}
	if got := m.CurrentResolution(); got != placement.NewResolution(1280, 720) {
		t.Fatalf("expected 1280x720, got %+v", got)
	}
}

func TestFromConfig_OpensBackendWithDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display = ":2"

	fb := &fakeBackend{primary: platform.Display{Bounds: platform.Rect{Width: 800, Height: 600}}}
	m, closeFn, err := FromConfig(cfg, func(opts platform.Options) (platform.Backend, error) {
		fb.opts = opts
		return fb, nil
	})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if fb.opts.Display != ":2" {
		t.Fatalf("expected display :2, got %q", fb.opts.Display)
	}
	if got := m.CurrentResolution(); got.Width != 800 || got.Height != 600 {
		t.Fatalf("expected 800x600, got %+v", got)
	}
	closeFn()
	if !fb.closed {
		t.Fatalf("expected close func to close backend")
	}
}

func TestFromConfig_BackendError(t *testing.T) {
	want := platform.ErrUnsupportedPlatform
	_, closeFn, err := FromConfig(config.DefaultConfig(), func(platform.Options) (platform.Backend, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
	closeFn()
}
