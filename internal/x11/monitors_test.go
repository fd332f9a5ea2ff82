package x11

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgbutil/xrect"
)

func TestMonitorFromRoot(t *testing.T) {
	mon, err := monitorFromRoot(xrect.New(0, 0, 1920, 1080))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mon.Width != 1920 || mon.Height != 1080 || !mon.Primary || mon.Name != "root" {
		t.Fatalf("unexpected monitor %+v", mon)
	}
}

func TestMonitorFromRoot_EmptyGeometry(t *testing.T) {
	tests := []struct {
		name string
		geom xrect.Rect
	}{
		{"nil", nil},
		{"zero width", xrect.New(0, 0, 0, 1080)},
		{"zero height", xrect.New(0, 0, 1920, 0)},
		{"negative", xrect.New(0, 0, -1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := monitorFromRoot(tt.geom); !errors.Is(err, ErrEmptyRootGeometry) {
				t.Fatalf("expected ErrEmptyRootGeometry, got %v", err)
			}
		})
	}
}
