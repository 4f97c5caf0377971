// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	myHTTP "github.com/cotacoes-epc/go-quote-keeper/internal/handler/http"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/server"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("quote-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repositories, cfg, log)

	if err = services.AuthService.SeedRegistrationCodes(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding registration codes")
	}

	handler := myHTTP.NewHandler(services, cfg.Auth, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
