package main

import (
	"flag"

	"github.com/cohorttools/cohort-tools-api/internal/bootstrap"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/server"
)

// @title Cohort Tools API
// @version 1.0
// @description CRUD API for bootcamp cohorts and students

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5005
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
