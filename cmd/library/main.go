package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/librarykit/lending-system/internal/app"
	"github.com/librarykit/lending-system/internal/pkg/config"
	"github.com/librarykit/lending-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Session: uuid.NewString(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, log, time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start library")
	}

	runErr := a.Run(ctx, os.Stdin, os.Stdout)
	if err := a.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to close library")
	}
	if errors.Is(runErr, context.Canceled) {
		log.Info().Msg("interrupted, goodbye")
		return
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("session aborted")
		os.Exit(1)
	}
}
