package platform

import "errors"

var (
	// ErrUnsupportedPlatform is returned by NewBackend where no display
	// backend exists.
	ErrUnsupportedPlatform = errors.New("display backend not supported on this platform")

	// ErrNoDisplays is returned when the backend reports no active display.
	ErrNoDisplays = errors.New("no active displays")
)

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes a physical display.
type Display struct {
	ID      int
	Name    string
	Bounds  Rect
	Primary bool
}

// Backend abstracts display queries across platforms.
type Backend interface {
	Displays() ([]Display, error)
	PrimaryDisplay() (Display, error)
	Close()
}

// Options configures backend construction.
type Options struct {
	// Display overrides the X11 display name (empty uses $DISPLAY).
	Display string
}

// PrimaryOf picks the display flagged primary, else the first one.
func PrimaryOf(displays []Display) (Display, error) {
	if len(displays) == 0 {
		return Display{}, ErrNoDisplays
	}
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return displays[0], nil
}

// SelectPrimary picks the primary display from an enumeration result. When
// listing failed or found nothing it falls back to root; if that fails too
// both errors are returned joined.
func SelectPrimary(displays []Display, listErr error, root func() (Display, error)) (Display, error) {
	if listErr == nil {
		d, err := PrimaryOf(displays)
		if err == nil {
			return d, nil
		}
		listErr = err
	}

	if root == nil {
		return Display{}, listErr
	}
	d, err := root()
	if err != nil {
		return Display{}, errors.Join(listErr, err)
	}
	return d, nil
}
