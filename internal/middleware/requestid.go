// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package middleware provides HTTP middleware shared across routes:
// request IDs for tracing and Prometheus instrumentation.
package middleware

import (
	"net/http"

	"github.com/showdeck/showdeck/internal/logging"
)

// RequestID tags each request with a unique ID, exposed in the
// X-Request-ID response header and in the logging context. An ID set by
// an upstream proxy is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
