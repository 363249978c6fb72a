// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package store persists users and shows as JSON documents in BadgerDB.
//
// Key layout:
//
//	user:<id>        -> user document (JSON)
//	username:<name>  -> user id (unique index)
//	email:<addr>     -> user id (unique index)
//	show:<id>        -> show document (JSON)
//
// The index keys give create-if-absent semantics: uniqueness checks and
// the document write happen inside one read-write transaction.
package store

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/showdeck/showdeck/internal/config"
	"github.com/showdeck/showdeck/internal/logging"
)

// Key prefixes for the document namespaces.
const (
	userKeyPrefix     = "user:"
	usernameKeyPrefix = "username:"
	emailKeyPrefix    = "email:"
	showKeyPrefix     = "show:"
)

// Store is a badger-backed document store for users and shows.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at the configured path. With
// InMemory set, nothing touches the filesystem; used by tests.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(badgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func userKey(id string) []byte       { return []byte(userKeyPrefix + id) }
func usernameKey(name string) []byte { return []byte(usernameKeyPrefix + name) }
func emailKey(addr string) []byte    { return []byte(emailKeyPrefix + addr) }
func showKey(id string) []byte       { return []byte(showKeyPrefix + id) }

// badgerLogger routes badger's internal logging through zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Str("component", "badger").Msg(trimf(format, args...))
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Str("component", "badger").Msg(trimf(format, args...))
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msg(trimf(format, args...))
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msg(trimf(format, args...))
}

func trimf(format string, args ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
