package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/display"
	"github.com/1broseidon/winanchor/internal/placement"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func newTestServer(cfg *config.Config) *Server {
	return NewServer(cfg, display.Fixed{Width: 1920, Height: 1080})
}

func TestHandleResolvePlacement(t *testing.T) {
	s := newTestServer(nil)

	tests := []struct {
		name  string
		input ResolvePlacementInput
		wantX float64
		wantY float64
	}{
		{"top-left point", ResolvePlacementInput{Anchor: "top-left"}, 0, 0},
		{"top-right footprint", ResolvePlacementInput{Anchor: "top-right", Width: floatPtr(350), Height: floatPtr(370)}, 1549, 0},
		{"bottom-left point", ResolvePlacementInput{Anchor: "bottom-left"}, 0, 1079},
		{"center ignoring taskbar", ResolvePlacementInput{Anchor: "center", Width: floatPtr(960), Height: floatPtr(540), IgnoreTaskbar: boolPtr(true)}, 480, 270},
		{"bottom-right reserves taskbar", ResolvePlacementInput{Anchor: "BottomRight", Width: floatPtr(100), Height: floatPtr(200)}, 1819, 888},
		{"default anchor is center", ResolvePlacementInput{}, 960, 540},
		{"screen override", ResolvePlacementInput{Anchor: "bottom-right", ScreenWidth: 1280, ScreenHeight: 720}, 1279, 719},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := s.handleResolvePlacement(context.Background(), nil, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.X != tt.wantX || out.Y != tt.wantY {
				t.Fatalf("got (%v, %v), want (%v, %v)", out.X, out.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestHandleResolvePlacement_ReportsPadding(t *testing.T) {
	s := newTestServer(nil)

	_, out, err := s.handleResolvePlacement(context.Background(), nil, ResolvePlacementInput{
		Anchor: "bottom-left", Width: floatPtr(10), Height: floatPtr(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Padding != placement.DefaultTaskbarReservation {
		t.Fatalf("expected padding %v, got %v", placement.DefaultTaskbarReservation, out.Padding)
	}
	if out.Anchor != "bottom-left" || out.ScreenWidth != 1920 || out.ScreenHeight != 1080 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestHandleResolvePlacement_UsesConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultAnchor = placement.BottomLeft
	cfg.TaskbarReservation = 40
	cfg.IgnoreTaskbar = true
	s := newTestServer(cfg)

	_, out, err := s.handleResolvePlacement(context.Background(), nil, ResolvePlacementInput{
		Width: floatPtr(100), Height: floatPtr(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Y != 979 {
		t.Fatalf("expected config ignore_taskbar to drop padding (y=979), got %v", out.Y)
	}

	_, out, err = s.handleResolvePlacement(context.Background(), nil, ResolvePlacementInput{
		Width: floatPtr(100), Height: floatPtr(50), IgnoreTaskbar: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Y != 939 {
		t.Fatalf("expected configured reservation of 40 (y=939), got %v", out.Y)
	}
}

func TestHandleResolvePlacement_Errors(t *testing.T) {
	s := newTestServer(nil)

	tests := []struct {
		name  string
		input ResolvePlacementInput
		want  error
	}{
		{"unknown anchor", ResolvePlacementInput{Anchor: "middle"}, placement.ErrUnknownAnchor},
		{"width only", ResolvePlacementInput{Width: floatPtr(10)}, errPartialFootprint},
		{"negative size", ResolvePlacementInput{Width: floatPtr(-1), Height: floatPtr(10)}, errNegativeDimensions},
		{"partial screen", ResolvePlacementInput{ScreenWidth: 800}, errPartialScreen},
		{"partial screen height only", ResolvePlacementInput{ScreenHeight: 600}, errPartialScreen},
		{"negative screen width", ResolvePlacementInput{ScreenWidth: -5, ScreenHeight: 600}, errInvalidScreen},
		{"negative screen height", ResolvePlacementInput{ScreenWidth: 800, ScreenHeight: -1}, errInvalidScreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.handleResolvePlacement(context.Background(), nil, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestHandleResolvePlacement_NoDisplay(t *testing.T) {
	s := NewServer(nil, display.Fixed{})

	_, _, err := s.handleResolvePlacement(context.Background(), nil, ResolvePlacementInput{Anchor: "center"})
	if !errors.Is(err, errResolutionMissing) {
		t.Fatalf("expected errResolutionMissing, got %v", err)
	}
}

func TestHandleDisplayResolution(t *testing.T) {
	s := newTestServer(nil)
	_, out, err := s.handleDisplayResolution(context.Background(), nil, DisplayResolutionInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Width != 1920 || out.Height != 1080 {
		t.Fatalf("expected 1920x1080, got %+v", out)
	}
}

func TestHandleListAnchors(t *testing.T) {
	s := newTestServer(nil)
	_, out, err := s.handleListAnchors(context.Background(), nil, ListAnchorsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Anchors) != len(placement.Anchors()) {
		t.Fatalf("expected %d anchors, got %v", len(placement.Anchors()), out.Anchors)
	}
	if out.Default != "center" {
		t.Fatalf("expected default center, got %q", out.Default)
	}
}
