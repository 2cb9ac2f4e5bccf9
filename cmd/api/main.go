package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-analyzer/config"
	_ "smart-task-analyzer/docs" // Swagger docs
	weightRepo "smart-task-analyzer/internal/analyzer/repository/file"
	"smart-task-analyzer/internal/httpserver"
	"smart-task-analyzer/pkg/datemath"
	"smart-task-analyzer/pkg/log"
)

// @title       Smart Task Analyzer API
// @description Ranks tasks by urgency, importance, effort and dependency fan-in, and detects circular dependencies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Analyzer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Scoring dependencies
	dateMathParser, err := datemath.NewParser(cfg.Scoring.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scoring.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	if cfg.Scoring.ConfigPath != "" {
		logger.Infof(ctx, "Scoring weights file: %s", cfg.Scoring.ConfigPath)
	} else {
		logger.Info(ctx, "Scoring weights: built-in defaults")
	}
	weights := weightRepo.New(logger, cfg.Scoring.ConfigPath)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		Weights:          weights,
		DateMath:         dateMathParser,
		SuggestLimit:     cfg.Scoring.SuggestLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
