package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jeonsilai/guardrails-server/internal/api"
	"github.com/jeonsilai/guardrails-server/internal/mcpadapter"
	"github.com/jeonsilai/guardrails-server/internal/setup"
	logsetup "github.com/jeonsilai/guardrails-server/internal/setup/logger"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging. Stdout carries the MCP transport, so logs go elsewhere.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := logsetup.New(cfg.LogLevel).Output(os.Stderr)
	log.Logger = logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "guardrails-server",
			Version: api.Version,
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_input",
		Description: "Validate and normalize a user question for the electrical engineering exam assistant (length, blocked content, image size)",
	}, mcpadapter.NewValidateInputHandler(deps.InputRail))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_output",
		Description: "Check an AI-generated answer for required fields, unit presence, step completeness, and confidence",
	}, mcpadapter.NewValidateOutputHandler(deps.OutputRail))

	return server
}
