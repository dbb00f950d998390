package main

import (
	"log/slog"

	"github.com/osse101/incomeengine/internal/config"
	"github.com/osse101/incomeengine/internal/logger"
)

// initLogger installs the process logger. Source locations are only added in
// development.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))
	slog.Debug("Logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)
}
