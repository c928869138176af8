// @title Diabetes Risk API
// @version 1.0
// @description JSON interface to the diabetes risk classifier.
// @BasePath /
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OldStager01/diabetes-risk/api"
	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)
	logger.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Mode)

	// Without both artifacts the service cannot answer anything.
	artifacts, err := model.LoadFromConfig(cfg.Artifacts)
	if err != nil {
		logger.Errorf("Artifact load failed: %v", err)
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	info := artifacts.Info()
	logger.WithFields(map[string]interface{}{
		"scaler": info.ScalerPath,
		"model":  info.ModelPath,
	}).Infof("Loaded %s and %s", info.ScalerType, info.ModelType)

	server, err := api.NewServer(cfg, artifacts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", server.Addr())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdownChan:
		logger.Infof("Received signal %v, shutting down", sig)
	}

	timeout := cfg.App.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
