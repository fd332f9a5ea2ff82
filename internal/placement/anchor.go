package placement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAnchor is returned when an anchor name cannot be parsed.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor names a logical screen location a window is placed against.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	Center
	BottomLeft
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	Center:      "center",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

// Anchors returns every anchor in declaration order.
func Anchors() []Anchor {
	return []Anchor{TopLeft, TopRight, Center, BottomLeft, BottomRight}
}

// AnchorNames returns the canonical name of every anchor.
func AnchorNames() []string {
	names := make([]string, 0, len(anchorNames))
	for _, a := range Anchors() {
		names = append(names, a.String())
	}
	return names
}

// Valid reports whether a is one of the declared anchors.
func (a Anchor) Valid() bool {
	return a >= TopLeft && a <= BottomRight
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor converts a name such as "top-left", "TopLeft" or "bottom_right"
// into an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "topleft":
		return TopLeft, nil
	case "topright":
		return TopRight, nil
	case "center", "centre":
		return Center, nil
	case "bottomleft":
		return BottomLeft, nil
	case "bottomright":
		return BottomRight, nil
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownAnchor, s, strings.Join(AnchorNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAnchor, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
