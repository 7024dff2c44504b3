package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/client"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-stock-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-stock-client", cfg.App.LogFile)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	app, err := client.NewApp(context.Background(), cfg, models.NewAppBuildInfo(version, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
