package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nuragic/rendr-app-template/internal/app"
	"github.com/nuragic/rendr-app-template/internal/config"
	"github.com/nuragic/rendr-app-template/internal/logger"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("rendr-config", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("rendr-config", cfg.Level())
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	source, err := app.NewSource(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating profile source")
	}

	application, err := app.New(ctx, cfg, source, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	if err = write(os.Stdout, cfg.Output, application); err != nil {
		log.Fatal().Err(err).Msg("error writing configuration")
	}
}

// write prints the validated settings, RENDR_* overrides included.
func write(w io.Writer, format string, a *app.App) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a.Settings()); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a.Settings())
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
