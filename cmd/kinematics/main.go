// Package main runs the dimensioned kinematics demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quantity/internal/config"
	"github.com/Faultbox/quantity/internal/logger"
	"github.com/Faultbox/quantity/internal/scenario"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded", zap.Any("config", cfg))

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
	}

	if err := scenario.New(cfg, os.Stdout).Run(); err != nil {
		logger.Error("scenario failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
