package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/fxconvert-api/internal/config"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/platform/exchangerate"
	"github.com/phrazzld/fxconvert-api/internal/service"
	"github.com/phrazzld/fxconvert-api/internal/service/auth"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	allowedRoles []domain.Role

	jwtService        auth.JWTService
	rateProvider      service.RateProvider
	conversionService service.ConversionService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...exchangerate.Option) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.allowedRoles, err = domain.ParseRoles(cfg.Auth.AllowedRoles)
	if err != nil {
		return nil, fmt.Errorf("invalid allowed roles: %w", err)
	}

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.rateProvider, err = exchangerate.NewClient(
		cfg.ExchangeRate,
		logger.With("component", "exchange_rate_client"),
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize exchange rate client: %w", err)
	}

	app.conversionService, err = service.NewConversionService(app.rateProvider, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
