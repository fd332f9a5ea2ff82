package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winanchor/internal/placement"
)

var (
	errPartialFootprint   = errors.New("width and height must be given together")
	errPartialScreen      = errors.New("screen_width and screen_height must be given together")
	errInvalidScreen      = errors.New("screen_width and screen_height must be > 0")
	errResolutionMissing  = errors.New("display resolution unavailable; pass screen_width and screen_height")
	errNegativeDimensions = errors.New("width and height must be >= 0")
)

func (s *Server) handleResolvePlacement(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolvePlacementInput) (*mcpsdk.CallToolResult, ResolvePlacementOutput, error) {
	anchor := s.config.DefaultAnchor
	if strings.TrimSpace(args.Anchor) != "" {
		parsed, err := placement.ParseAnchor(args.Anchor)
		if err != nil {
			return nil, ResolvePlacementOutput{}, err
		}
		anchor = parsed
	}

	fp, err := s.footprintFor(args)
	if err != nil {
		return nil, ResolvePlacementOutput{}, err
	}

	res, err := s.resolutionFor(args)
	if err != nil {
		return nil, ResolvePlacementOutput{}, err
	}

	pt := s.resolver.Resolve(res, anchor, fp)
	s.logger.Debug().
		Str("anchor", anchor.String()).
		Float64("x", pt.X).
		Float64("y", pt.Y).
		Bool("footprint", fp.Present()).
		Msg("resolved placement")

	return nil, ResolvePlacementOutput{
		X:            pt.X,
		Y:            pt.Y,
		Anchor:       anchor.String(),
		ScreenWidth:  res.Width,
		ScreenHeight: res.Height,
		Padding:      s.resolver.Padding(fp),
	}, nil
}

func (s *Server) footprintFor(args ResolvePlacementInput) (placement.OptionalFootprint, error) {
	if args.Width == nil && args.Height == nil {
		return placement.None(), nil
	}
	if args.Width == nil || args.Height == nil {
		return placement.None(), errPartialFootprint
	}
	if *args.Width < 0 || *args.Height < 0 {
		return placement.None(), errNegativeDimensions
	}

	fp := s.config.DefaultFootprint(*args.Width, *args.Height)
	if args.IgnoreTaskbar != nil {
		fp.IgnoreTaskbarReservation = *args.IgnoreTaskbar
	}
	return placement.Some(fp), nil
}

func (s *Server) resolutionFor(args ResolvePlacementInput) (placement.Resolution, error) {
	if args.ScreenWidth != 0 || args.ScreenHeight != 0 {
		if args.ScreenWidth == 0 || args.ScreenHeight == 0 {
			return placement.Resolution{}, errPartialScreen
		}
		res := placement.NewResolution(args.ScreenWidth, args.ScreenHeight)
		if !res.Valid() {
			return placement.Resolution{}, fmt.Errorf("%w (got %dx%d)", errInvalidScreen, args.ScreenWidth, args.ScreenHeight)
		}
		return res, nil
	}

	res := s.currentResolution()
	if !res.Valid() {
		return placement.Resolution{}, errResolutionMissing
	}
	return res, nil
}

func (s *Server) currentResolution() placement.Resolution {
	if s.metrics == nil {
		return placement.Resolution{}
	}
	return s.metrics.CurrentResolution()
}

func (s *Server) handleDisplayResolution(_ context.Context, _ *mcpsdk.CallToolRequest, _ DisplayResolutionInput) (*mcpsdk.CallToolResult, DisplayResolutionOutput, error) {
	res := s.currentResolution()
	return nil, DisplayResolutionOutput{Width: res.Width, Height: res.Height}, nil
}

func (s *Server) handleListAnchors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListAnchorsInput) (*mcpsdk.CallToolResult, ListAnchorsOutput, error) {
	return nil, ListAnchorsOutput{
		Anchors: placement.AnchorNames(),
		Default: s.config.DefaultAnchor.String(),
	}, nil
}
