package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/localrail/railbook/internal/config"
	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/service"
	"github.com/localrail/railbook/internal/store"
	"github.com/localrail/railbook/internal/tui"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// optional .env next to the working directory; absence is not an error
	_ = godotenv.Load()

	cfg, err := config.GetConfig()
	if err != nil {
		log := logger.NewAppLogger("railbook", zerolog.InfoLevel)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewAppLogger("railbook", level)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	ui := tui.New(services, log)
	if err := ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ui run error")
	}
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
