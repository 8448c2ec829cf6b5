// Package main provides the entry point for the analysis API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/match-edge/internal/analysis"
	"github.com/yourusername/match-edge/internal/api"
	"github.com/yourusername/match-edge/internal/config"
	"github.com/yourusername/match-edge/internal/logger"
	"github.com/yourusername/match-edge/internal/metrics"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
	)
	flag.Parse()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := logger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	analyzer := analysis.NewAnalyzer(analysis.Settings{
		KellyFractionCap:    cfg.Value.KellyFractionCap,
		Bankroll:            decimal.NewFromFloat(cfg.Value.Bankroll),
		MinEdge:             cfg.Value.MinEdge,
		ConfidenceThreshold: cfg.Value.ConfidenceThreshold,
	}, appLogger)

	server := api.NewServer(cfg, analyzer, appLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Fatalf("Server failed: %v", err)
		}
	case sig := <-stop:
		appLogger.WithField("signal", sig.String()).Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeoutSecs)*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			appLogger.Errorf("Graceful shutdown failed: %v", err)
		}
	}
}
