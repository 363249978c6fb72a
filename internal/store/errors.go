// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package store

import "errors"

// Sentinel errors returned by store operations. The API layer maps
// these to HTTP status codes.
var (
	// ErrUserNotFound indicates no account matches the given id or identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates an account with the username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates an account with the email already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrShowNotFound indicates no show document matches the given id.
	ErrShowNotFound = errors.New("show not found")

	// ErrAlreadyInWatchlist indicates the show id is already on the
	// account's watchlist.
	ErrAlreadyInWatchlist = errors.New("show already in watchlist")
)
