package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
	"github.com/JuanS3/globant-data-eng/internal/server"
)

// @title Globant Data Engineering API
// @version 1.0
// @description CSV ingestion and hiring report service for departments, jobs and employees

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A local .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
