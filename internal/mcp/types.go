package mcp

// ResolvePlacementInput is the input for the resolve_placement tool.
type ResolvePlacementInput struct {
	Anchor        string   `json:"anchor,omitempty" jsonschema:"Screen anchor: top-left, top-right, center, bottom-left or bottom-right (default: configured default_anchor)"`
	Width         *float64 `json:"width,omitempty" jsonschema:"Window width in pixels. Must be given together with height; omit both to place a single point."`
	Height        *float64 `json:"height,omitempty" jsonschema:"Window height in pixels. Must be given together with width."`
	IgnoreTaskbar *bool    `json:"ignore_taskbar,omitempty" jsonschema:"When true, do not reserve space for the bottom taskbar (default: configured ignore_taskbar)"`
	ScreenWidth   int      `json:"screen_width,omitempty" jsonschema:"Override the display width in pixels instead of querying the display"`
	ScreenHeight  int      `json:"screen_height,omitempty" jsonschema:"Override the display height in pixels instead of querying the display"`
}

// ResolvePlacementOutput is the output for the resolve_placement tool.
type ResolvePlacementOutput struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Anchor       string  `json:"anchor"`
	ScreenWidth  float64 `json:"screen_width"`
	ScreenHeight float64 `json:"screen_height"`
	Padding      float64 `json:"taskbar_padding"`
}

// DisplayResolutionInput is the input for the display_resolution tool.
type DisplayResolutionInput struct{}

// DisplayResolutionOutput is the output for the display_resolution tool.
type DisplayResolutionOutput struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ListAnchorsInput is the input for the list_anchors tool.
type ListAnchorsInput struct{}

// ListAnchorsOutput is the output for the list_anchors tool.
type ListAnchorsOutput struct {
	Anchors []string `json:"anchors"`
	Default string   `json:"default"`
}
