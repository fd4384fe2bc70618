// Package main implements the entry point for the fxconvert API server,
// which converts amounts between currencies using live provider rates.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/fxconvert-api/internal/config"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"exchange_rate_base_url", cfg.ExchangeRate.BaseURL,
		"allowed_roles", cfg.Auth.AllowedRoles)
	l.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")

	return cfg, l, nil
}
