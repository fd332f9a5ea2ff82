package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/display"
	"github.com/1broseidon/winanchor/internal/logging"
	"github.com/1broseidon/winanchor/internal/mcp"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "resolve":
		os.Exit(runResolve(os.Args[2:], os.Stdout, os.Stderr))
	case "resolution":
		os.Exit(runResolution(os.Args[2:], os.Stdout, os.Stderr))
	case "anchors":
		os.Exit(runAnchors(os.Args[2:], os.Stdout, os.Stderr))
	case "config":
		os.Exit(runConfig(os.Args[2:], os.Stdout, os.Stderr))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winanchor <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resolve             Compute window coordinates for an anchor")
	fmt.Fprintln(w, "  resolution          Show the primary display resolution")
	fmt.Fprintln(w, "  anchors             List supported anchors")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config path         Print configuration file path")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winanchor <command> --help' for command-specific options.")
}

// loadRuntime loads config and installs the logger. Errors are printed to stderr.
func loadRuntime(stderr io.Writer) (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return nil, false
	}
	if err := logging.Setup(cfg.Logging, stderr); err != nil {
		fmt.Fprintln(stderr, "logging error:", err)
		return nil, false
	}
	return cfg, true
}

func runMCP(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: winanchor mcp serve")
		if len(args) == 0 {
			return 2
		}
		return 0
	}
	if args[0] != "serve" {
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n", args[0])
		return 2
	}

	cfg, ok := loadRuntime(os.Stderr)
	if !ok {
		return 1
	}

	metrics, closeMetrics, err := display.FromConfig(cfg, nil)
	if err != nil {
		// Tools still work with explicit screen_width/screen_height.
		log.Warn().Err(err).Msg("display unavailable")
		metrics = display.Fixed{}
	}
	defer closeMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcp.NewServer(cfg, metrics).Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("mcp server stopped")
		return 1
	}
	return 0
}

func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}
