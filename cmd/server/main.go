// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Command server runs the Showdeck HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/showdeck/showdeck/internal/api"
	"github.com/showdeck/showdeck/internal/auth"
	"github.com/showdeck/showdeck/internal/config"
	"github.com/showdeck/showdeck/internal/logging"
	"github.com/showdeck/showdeck/internal/store"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	st, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close store")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedShows {
		if _, err := st.SeedShows(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	tokens, err := auth.NewTokenManager(cfg.Security)
	if err != nil {
		return err
	}
	passwords := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	handler := api.NewHandler(st, tokens, passwords, cfg)
	router := api.NewRouter(handler, auth.NewMiddleware(tokens), cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
