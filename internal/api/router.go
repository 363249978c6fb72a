// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/showdeck/showdeck/internal/auth"
	"github.com/showdeck/showdeck/internal/config"
	"github.com/showdeck/showdeck/internal/middleware"
)

// NewRouter builds the route tree.
//
// Global middleware applies to every route; the login route adds a
// strict per-IP rate limit (brute force guard) and the watchlist group
// sits behind the bearer token gate.
func NewRouter(h *Handler, gate *auth.Middleware, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))
	r.Use(middleware.Prometheus)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.With(loginRateLimit(cfg)).Post("/login", h.Login)
	})

	r.Get("/shows", h.ListShows)
	r.Get("/shows/{id}", h.GetShow)

	r.Route("/watchlist", func(r chi.Router) {
		r.Use(gate.Authenticate)
		r.Post("/", h.WatchlistAdd)
		r.Get("/", h.WatchlistGet)
	})

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// loginRateLimit limits login attempts per client IP. The 429 body uses
// the same `{message}` shape as every other error.
func loginRateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Security.LoginRateLimit,
		cfg.Security.LoginRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondMessage(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
		}),
	)
}
