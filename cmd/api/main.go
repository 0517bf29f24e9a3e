package main

import (
	"context"
	"os"

	"github.com/gcett/studentdir/internal/pkg/logger"
	"github.com/gcett/studentdir/internal/server"
)

// @title GCETT Student Directory API
// @version 1.0
// @description Student registration, directory search, notices, skill-test submissions and admin tools for GCETT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey AdminCookie
// @in cookie
// @name admin-token
// @description Signed admin session set by POST /admin/auth

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
