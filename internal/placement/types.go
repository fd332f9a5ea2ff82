package placement

// Resolution is the pixel size of a display.
type Resolution struct {
	Width  float64
	Height float64
}

// NewResolution builds a Resolution from integer pixel counts.
func NewResolution(width, height int) Resolution {
	return Resolution{Width: float64(width), Height: float64(height)}
}

// Valid reports whether both dimensions are strictly positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Footprint is the size of the window being placed.
type Footprint struct {
	Width  float64
	Height float64
	// IgnoreTaskbarReservation drops the bottom taskbar margin for
	// bottom-anchored windows.
	IgnoreTaskbarReservation bool
}

// OptionalFootprint holds a Footprint that may be absent. The zero value is
// absent, in which case size-dependent terms collapse to zero and the
// corner anchors resolve to the extreme edge pixel.
type OptionalFootprint struct {
	value   Footprint
	present bool
}

// Some wraps fp as a present footprint.
func Some(fp Footprint) OptionalFootprint {
	return OptionalFootprint{value: fp, present: true}
}

// None returns an absent footprint.
func None() OptionalFootprint {
	return OptionalFootprint{}
}

// Get returns the footprint and whether it is present.
func (o OptionalFootprint) Get() (Footprint, bool) {
	return o.value, o.present
}

// Present reports whether a footprint was supplied.
func (o OptionalFootprint) Present() bool {
	return o.present
}

// Point is the top-left corner of a placed window in screen pixels.
type Point struct {
	X float64
	Y float64
}
