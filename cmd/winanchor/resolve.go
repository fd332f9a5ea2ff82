package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/display"
	"github.com/1broseidon/winanchor/internal/placement"
)

// openMetrics is replaced in tests.
var openMetrics = func(cfg *config.Config) (display.Metrics, func(), error) {
	return display.FromConfig(cfg, nil)
}

type placementResult struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Anchor       string  `json:"anchor"`
	ScreenWidth  float64 `json:"screen_width"`
	ScreenHeight float64 `json:"screen_height"`
}

type resolutionResult struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func runResolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	anchorName := fs.String("anchor", "", "Screen anchor (default: config default_anchor)")
	width := fs.Float64("width", 0, "Window width in pixels (requires --height)")
	height := fs.Float64("height", 0, "Window height in pixels (requires --width)")
	ignoreTaskbar := fs.Bool("ignore-taskbar", false, "Do not reserve space for the bottom taskbar")
	screen := fs.String("screen", "", "Override display resolution, e.g. 1920x1080")
	format := fs.String("format", string(formatAuto), "Output format: auto, text, json")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winanchor resolve [--anchor NAME] [--width W --height H] [--ignore-taskbar] [--screen WxH] [--format auto|text|json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Print the top-left coordinate for a window at the given anchor.")
		fmt.Fprintln(stderr, "Without --width/--height the window is treated as a single point.")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "resolve takes no positional arguments")
		fs.Usage()
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	outFmt, err := parseOutputFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if set["width"] != set["height"] {
		fmt.Fprintln(stderr, "--width and --height must be given together")
		return 2
	}
	if *width < 0 || *height < 0 {
		fmt.Fprintln(stderr, "--width and --height must be >= 0")
		return 2
	}

	cfg, ok := loadRuntime(stderr)
	if !ok {
		return 1
	}

	anchor := cfg.DefaultAnchor
	if set["anchor"] {
		anchor, err = placement.ParseAnchor(*anchorName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	fp := placement.None()
	if set["width"] {
		size := cfg.DefaultFootprint(*width, *height)
		if set["ignore-taskbar"] {
			size.IgnoreTaskbarReservation = *ignoreTaskbar
		}
		fp = placement.Some(size)
	}

	var res placement.Resolution
	if set["screen"] {
		res, err = parseScreen(*screen)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	} else {
		metrics, closeMetrics, err := openMetrics(cfg)
		if err != nil {
			fmt.Fprintln(stderr, "display error:", err)
			return 1
		}
		res = metrics.CurrentResolution()
		closeMetrics()
	}
	if !res.Valid() {
		fmt.Fprintln(stderr, "display resolution unavailable; pass --screen WxH")
		return 1
	}

	pt := cfg.Resolver().Resolve(res, anchor, fp)

	if outFmt.effective(stdout) == formatJSON {
		if err := writeJSON(stdout, placementResult{
			X:            pt.X,
			Y:            pt.Y,
			Anchor:       anchor.String(),
			ScreenWidth:  res.Width,
			ScreenHeight: res.Height,
		}); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(stdout, "%s %s\n", formatCoord(pt.X), formatCoord(pt.Y))
	return 0
}

func runResolution(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resolution", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", string(formatAuto), "Output format: auto, text, json")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winanchor resolution [--format auto|text|json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Print the primary display resolution (0x0 when it cannot be read).")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	outFmt, err := parseOutputFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, ok := loadRuntime(stderr)
	if !ok {
		return 1
	}

	metrics, closeMetrics, err := openMetrics(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "display error:", err)
		return 1
	}
	defer closeMetrics()
	res := metrics.CurrentResolution()

	if outFmt.effective(stdout) == formatJSON {
		if err := writeJSON(stdout, resolutionResult{Width: res.Width, Height: res.Height}); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(stdout, "%sx%s\n", formatCoord(res.Width), formatCoord(res.Height))
	return 0
}

func runAnchors(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("anchors", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winanchor anchors")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	for _, name := range placement.AnchorNames() {
		fmt.Fprintln(stdout, name)
	}
	return 0
}

// parseScreen parses "WIDTHxHEIGHT".
func parseScreen(s string) (placement.Resolution, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return placement.Resolution{}, fmt.Errorf("invalid --screen %q (want WIDTHxHEIGHT)", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return placement.Resolution{}, fmt.Errorf("invalid --screen %q (want positive WIDTHxHEIGHT)", s)
	}
	return placement.NewResolution(w, h), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
