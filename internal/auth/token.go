// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package auth implements the credential subsystem: bearer token
// issuance and verification, password hashing, and the HTTP gate that
// protects per-account resources.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/showdeck/showdeck/internal/config"
)

// Claims are the token claims. Subject carries the account id; Username
// is included so clients can display the account name without a store
// round trip.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies signed bearer tokens. Tokens are
// HMAC-SHA256 signed, time-bounded and stateless; verification is a
// pure function of (token, current time, secret) and never touches the
// store.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenManager creates a token manager from the security config. The
// signing secret is injected here once and never read from ambient
// state, so tests can supply a fixed secret deterministically.
func NewTokenManager(cfg config.SecurityConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}

	lifetime := cfg.TokenLifetime
	if lifetime == 0 {
		lifetime = time.Hour
	}

	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		lifetime: lifetime,
	}, nil
}

// Generate mints a signed token bound to the account. The token expires
// lifetime after issuance.
func (m *TokenManager) Generate(userID, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate verifies the signature and time bounds of a token and
// returns its claims. Restricting the method to HMAC prevents algorithm
// confusion attacks. Expired, tampered and malformed tokens all come
// back as errors; callers surface a single generic message and log the
// specific reason.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
