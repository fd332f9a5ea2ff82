// Package placement computes where a window's top-left corner goes for a
// given display resolution, screen anchor and optional window footprint.
//
// Resolution is pure: no I/O, no shared state, safe for concurrent use.
package placement

import "fmt"

// DefaultTaskbarReservation is the height in pixels kept free at the bottom
// of the display for a docked taskbar.
const DefaultTaskbarReservation = 91.0

// Resolver resolves anchors into coordinates.
type Resolver struct {
	// TaskbarReservation is subtracted from the y coordinate of
	// bottom-anchored windows unless the footprint opts out.
	TaskbarReservation float64
}

// NewResolver returns a Resolver reserving the given taskbar height.
func NewResolver(taskbarReservation float64) Resolver {
	return Resolver{TaskbarReservation: taskbarReservation}
}

var defaultResolver = NewResolver(DefaultTaskbarReservation)

// Resolve places a window using DefaultTaskbarReservation.
func Resolve(res Resolution, anchor Anchor, fp OptionalFootprint) Point {
	return defaultResolver.Resolve(res, anchor, fp)
}

// Padding returns the vertical taskbar margin applied to bottom anchors.
// It is zero when no footprint is present or the footprint ignores the
// reservation.
func (r Resolver) Padding(fp OptionalFootprint) float64 {
	size, ok := fp.Get()
	if !ok || size.IgnoreTaskbarReservation {
		return 0
	}
	return r.TaskbarReservation
}

// Resolve returns the top-left coordinate for a window at anchor.
func (r Resolver) Resolve(res Resolution, anchor Anchor, fp OptionalFootprint) Point {
	pad := r.Padding(fp)

	switch anchor {
	case TopLeft:
		return Point{X: 0, Y: 0}
	case TopRight:
		return Point{X: rightEdgeX(res, topRightOffsetX(fp)), Y: 0}
	case Center:
		return centered(res, fp)
	case BottomLeft:
		return Point{X: 0, Y: bottomEdgeY(res, bottomOffsetY(fp, pad))}
	case BottomRight:
		return Point{
			X: rightEdgeX(res, bottomRightOffsetX(fp)),
			Y: bottomEdgeY(res, bottomOffsetY(fp, pad)),
		}
	}
	panic(fmt.Sprintf("placement: unhandled anchor %s", anchor))
}

// rightEdgeX is the last pixel column minus offset.
func rightEdgeX(res Resolution, offset float64) float64 {
	return (res.Width - 1) - offset
}

// bottomEdgeY is the last pixel row minus offset.
func bottomEdgeY(res Resolution, offset float64) float64 {
	return (res.Height - 1) - offset
}

func centered(res Resolution, fp OptionalFootprint) Point {
	size, _ := fp.Get()
	return Point{
		X: (res.Width - size.Width) / 2,
		Y: (res.Height - size.Height) / 2,
	}
}

// The offsets below keep the historical axis pairing: the top-right x offset
// uses the footprint height and the bottom y offset uses the footprint width.
// Each anchor's term is isolated so it can be corrected on its own.

func topRightOffsetX(fp OptionalFootprint) float64 {
	size, ok := fp.Get()
	if !ok {
		return 0
	}
	return size.Height
}

func bottomRightOffsetX(fp OptionalFootprint) float64 {
	size, ok := fp.Get()
	if !ok {
		return 0
	}
	return size.Width
}

func bottomOffsetY(fp OptionalFootprint, pad float64) float64 {
	size, ok := fp.Get()
	if !ok {
		return 0
	}
	return size.Width + pad
}
