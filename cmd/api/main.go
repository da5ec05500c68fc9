package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pmartell/sonyadcp/pkg/api"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"

	_ "github.com/pmartell/sonyadcp/docs"
)

// @title           Sony ADCP API
// @version         1.0
// @description     REST API for discovering and controlling Sony projectors over the network

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to registry database file (default: ~/.config/sonyadcp/projectors.db)")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	sdapPort := flag.Int("sdap-port", sdap.DefaultPort, "UDP port to listen on for projector announcements")
	window := flag.Duration("sdap-window", sdap.DefaultWindow, "Default discovery window length")
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
	if *window > 0 {
		listener.Window = *window
	}

	// Create and start API router
	router := api.NewRouter(reg, listener)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := reg.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close registry")
		}
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("address", *addr).Dur("discovery_window", listener.Window).Msg("Starting API server")

	if err := router.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
