package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estate-cms/config"
	"estate-cms/logger"
	"estate-cms/routes"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", true, os.Stderr)
		log.Fatal().Err(err).Msg("loading config")
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}

	router, err := routes.Setup(cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("setting up router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutting down")
	}
	log.Info().Msg("server stopped")
}
