// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/showdeck/showdeck/internal/logging"
)

type contextKey string

// claimsContextKey carries the verified token claims through the
// request context.
const claimsContextKey contextKey = "claims"

// Client-facing messages for the two rejection cases. Everything that
// goes wrong with a presented token collapses into the second message;
// the specific reason is only logged.
const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// Middleware gates protected routes behind bearer token verification.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware creates the auth gate around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate verifies the Authorization bearer token and injects the
// resolved claims into the request context. Requests without a token
// get 401 with a distinct message; requests with a bad token (expired,
// tampered, malformed) get 401 with one shared message so callers
// cannot probe which check failed.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, msgNoToken)
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token rejected")
			unauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}

// ClaimsFromContext retrieves the verified claims injected by
// Authenticate. Returns nil outside a gated request.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey).(*Claims)
	return claims
}

// UserIDFromContext returns the authenticated account id, or "".
func UserIDFromContext(ctx context.Context) string {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.Subject
	}
	return ""
}
