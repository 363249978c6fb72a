// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package api provides the HTTP handlers and routing for the Showdeck
// server.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_auth.go: signup and login
//   - handlers_shows.go: show catalog reads and health
//   - handlers_watchlist.go: gated watchlist operations
//   - helpers.go: shared JSON helpers
//   - router.go: chi route tree and middleware stack
package api

import (
	"time"

	"github.com/showdeck/showdeck/internal/auth"
	"github.com/showdeck/showdeck/internal/config"
	"github.com/showdeck/showdeck/internal/store"
)

// Handler holds the dependencies of all API handlers.
type Handler struct {
	store     *store.Store
	tokens    *auth.TokenManager
	passwords *auth.PasswordHasher
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, tokens *auth.TokenManager, passwords *auth.PasswordHasher, cfg *config.Config) *Handler {
	return &Handler{
		store:     st,
		tokens:    tokens,
		passwords: passwords,
		config:    cfg,
		startTime: time.Now(),
	}
}
