// Command initpages creates the default site pages that are missing.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"estate-cms/config"
	"estate-cms/logger"
	"estate-cms/repositories"
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

	created, err := seed.InitPages(context.Background(), repositories.NewPageRepository(db), log)
	if err != nil {
		log.Error().Err(err).Msg("initializing pages")
		os.Exit(1)
	}

	log.Info().Int("created", len(created)).Msg("page initialization complete")
}
