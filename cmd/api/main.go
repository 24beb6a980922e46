package main

import (
	"os"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/logger"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/server"
)

// @title ITVS Department CMS API
// @version 2.0
// @description Backend API for the ITVS department site: articles, tags, subjects, employees and library publications.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
