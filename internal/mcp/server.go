package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/1broseidon/winanchor/internal/config"
	"github.com/1broseidon/winanchor/internal/display"
	"github.com/1broseidon/winanchor/internal/logging"
	"github.com/1broseidon/winanchor/internal/placement"
)

const (
	ServerName    = "winanchor"
	ServerVersion = "0.1.0"
)

// Server exposes window placement over MCP.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	metrics   display.Metrics
	resolver  placement.Resolver
	logger    zerolog.Logger
}

// NewServer creates an MCP server resolving placements against metrics.
func NewServer(cfg *config.Config, metrics display.Metrics) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Server{
		config:   cfg,
		metrics:  metrics,
		resolver: cfg.Resolver(),
		logger:   logging.Module("mcp"),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Str("version", ServerVersion).Msg("serving on stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_placement",
		Description: "Compute the top-left pixel coordinate for a window placed at a screen anchor. Width and height describe the window; omit both to place a single point at the anchor. Bottom anchors reserve space for the taskbar unless ignore_taskbar is true.",
	}, s.handleResolvePlacement)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "display_resolution",
		Description: "Report the primary display resolution in pixels. Returns 0x0 when the display cannot be queried.",
	}, s.handleDisplayResolution)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_anchors",
		Description: "List the supported screen anchors and the configured default.",
	}, s.handleListAnchors)
}
