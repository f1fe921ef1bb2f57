// Command sampledata replaces all projects and blog posts with demo content.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"estate-cms/config"
	"estate-cms/logger"
	"estate-cms/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", true, os.Stderr)
		log.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("connecting to database")
		os.Exit(1)
	}

	if err := seed.SampleData(context.Background(), db, log); err != nil {
		log.Error().Err(err).Msg("creating sample data")
		os.Exit(1)
	}

	log.Info().Msg("sample data created successfully")
}
