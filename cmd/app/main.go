package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/config"
	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/metrics"
	"github.com/osse101/incomeengine/internal/server"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
	"github.com/osse101/incomeengine/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Engine stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	slog.Info("Catalog loaded",
		"path", cfg.CatalogPath,
		"version", cat.Version,
		"assets", len(cat.Assets()),
		"upgrades", len(cat.Upgrades()))

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics collector: %w", err)
	}

	svc := engine.Synchronized(engine.NewService(
		cat,
		state.New(cfg.StartingMoney, cfg.DailyHours),
		activity.NewLog(cfg.LogHistory),
		bus,
		engine.Options{
			SpawnChance: cfg.EventSpawnChance,
			Random:      utils.SeededRandom(cfg.RandomSeed),
			NewID:       utils.SeededIDs(cfg.RandomSeed),
		},
	))

	ticker := worker.NewDayTicker(svc, cfg.DayInterval)
	ticker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, svc)
	if cfg.APIKey == "" {
		slog.Warn("API_KEY is empty, the HTTP API is unauthenticated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = ticker.Shutdown(context.Background())
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := ticker.Shutdown(shutdownCtx); err != nil {
		slog.Error("Day ticker shutdown failed", "error", err)
	}
	slog.Info("Engine stopped", "day", svc.Snapshot().Day)
	return nil
}
