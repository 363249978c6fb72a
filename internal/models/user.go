// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package models defines the stored documents and the request/response
// types of the HTTP API.
package models

import "time"

// User is the account document persisted in the store.
//
// PasswordHash holds the bcrypt hash of the password; the raw password is
// never stored and the hash is never serialized into an API response
// (only the store reads/writes this struct).
//
// Watchlist holds show ids in insertion order with no duplicates. Entries
// are opaque references: membership is not checked against the show
// catalog at append time.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"password"`
	Watchlist    []string  `json:"watchlist"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login. Identifier matches the
// username or the email of an account.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse is the success body of POST /auth/login. The username is
// returned alongside the token for client display.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// WatchlistAddRequest is the body of POST /watchlist.
type WatchlistAddRequest struct {
	ShowID string `json:"showId" validate:"required"`
}

// MessageResponse is the generic `{message}` body used by confirmations
// and by every error response.
type MessageResponse struct {
	Message string `json:"message"`
}
