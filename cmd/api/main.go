package main

import (
	"os"

	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
	"github.com/adlavijwal/innovbridge/internal/server"
)

// @title InnovBridge API
// @version 1.0
// @description Backend API for the InnovBridge marketing site and student hub

// @contact.name InnovBridge
// @contact.email hello@innovbridge.tech

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the admin surface

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
