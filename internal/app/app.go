package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/avramenko-dev/inventory-backend/internal/adapter/postgres"
	itemrepo "github.com/avramenko-dev/inventory-backend/internal/adapter/postgres/item"
	"github.com/avramenko-dev/inventory-backend/internal/auth"
	"github.com/avramenko-dev/inventory-backend/internal/config"
	itemservice "github.com/avramenko-dev/inventory-backend/internal/service/item"
	"github.com/avramenko-dev/inventory-backend/internal/transport/middleware"
	"github.com/avramenko-dev/inventory-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, wires services and the HTTP router,
// and serves until the context is cancelled. Shutdown is graceful within
// the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	items := itemservice.NewService(logger, itemrepo.New(pool))

	var limiter middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		limiter = rl.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		CORS:    cfg.CORS,
		Items:   rest.NewItemHandler(items, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    middleware.Auth(verifier),
		Limiter: limiter,
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
