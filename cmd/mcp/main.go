package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	adcpmcp "github.com/pmartell/sonyadcp/pkg/mcp"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to registry database file (default: ~/.config/sonyadcp/projectors.db)")
	sdapPort := flag.Int("sdap-port", sdap.DefaultPort, "UDP port to listen on for projector announcements")
	flag.Parse()

	ctx := context.Background()

	// Open registry
	reg, err := registry.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open registry")
	}
	defer func() {
		if err := reg.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close registry")
		}
	}()

	log.Info().Str("path", reg.Path()).Msg("Registry opened")

	// Run migrations
	if err := reg.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run registry migrations")
	}

	listener := sdap.NewListener()
	listener.Port = *sdapPort

	// Create and start MCP server
	mcpServer := adcpmcp.NewServer(reg, listener)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
