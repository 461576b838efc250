// Package server wires configuration, storage, services and the HTTP API
// into a runnable application.
package server

import (
	"context"
	"fmt"
	"io"

	"github.com/William0209/backend-last/internal/logging"
	"github.com/William0209/backend-last/internal/server/auth"
	"github.com/William0209/backend-last/internal/server/config"
	"github.com/William0209/backend-last/internal/server/repositories/repomanager"
	"github.com/William0209/backend-last/internal/server/rest"
	"github.com/William0209/backend-last/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *rest.Server
}

// NewApp builds the application from c. Log output goes to out.
func NewApp(c *config.Config, out io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, out)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := repomanager.New(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	issuer, err := auth.NewTokenIssuer([]byte(c.SecretKey))
	if err != nil {
		_ = rm.Close()
		return nil, err
	}

	us := services.NewUserService(rm.Users(), auth.NewPasswordHasher(c.BcryptCost), issuer)
	ps := services.NewPostService(rm.Posts())
	srv := rest.NewServer(c.EndpointAddrHTTP, c.ShutdownTimeout, logger, us, ps, issuer, rm)

	return &App{config: c, logger: logger, repomanager: rm, server: srv}, nil
}

// Run applies migrations and serves HTTP until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if err := app.repomanager.Close(); err != nil {
			app.logger.Error(ctx, "error closing db", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddrHTTP)

	if err := app.repomanager.RunMigrations(ctx); err != nil {
		return err
	}

	if err := app.server.Run(ctx); err != nil {
		return fmt.Errorf("http server error: %w", err)
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
