package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dosada05/tournament-bracket/config"
)

func main() {
	// Results go to stdout, so logs use stderr.
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Debug("configuration loaded",
		slog.Int("max_per_group", cfg.Format.MaxPerGroup),
		slog.Int("qualifiers_per_group", cfg.Format.QualifiersPerGroup),
		slog.String("seeding_mode", string(cfg.Format.SeedingMode)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg, logger).RunContext(ctx, os.Args); err != nil {
		logger.Error("bracketctl failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
