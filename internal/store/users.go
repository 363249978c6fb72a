// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/showdeck/showdeck/internal/models"
)

// CreateUser persists a new account with an empty watchlist. The
// username and email uniqueness checks and the document write happen in
// one transaction, so a concurrent signup with the same identifier
// cannot slip through between check and write.
//
// Returns ErrUsernameTaken or ErrEmailTaken on collision.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Watchlist:    []string{},
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(usernameKey(username)); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check username index: %w", err)
		}

		if email != "" {
			if _, err := txn.Get(emailKey(email)); err == nil {
				return ErrEmailTaken
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("check email index: %w", err)
			}
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		if err := txn.Set(usernameKey(username), []byte(user.ID)); err != nil {
			return fmt.Errorf("set username index: %w", err)
		}
		if email != "" {
			if err := txn.Set(emailKey(email), []byte(user.ID)); err != nil {
				return fmt.Errorf("set email index: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID fetches an account document by id.
// Returns ErrUserNotFound when absent.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(id), &user)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByIdentifier fetches an account whose username OR email equals
// the identifier. Returns ErrUserNotFound when neither matches; callers
// on the login path must collapse that into the generic credentials
// failure to avoid account enumeration.
func (s *Store) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User

	err := s.db.View(func(txn *badger.Txn) error {
		id, err := getIndexedID(txn, usernameKey(identifier))
		if errors.Is(err, badger.ErrKeyNotFound) {
			id, err = getIndexedID(txn, emailKey(identifier))
		}
		if err != nil {
			return err
		}
		return getJSON(txn, userKey(id), &user)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// getIndexedID reads a user id from a unique-index key.
func getIndexedID(txn *badger.Txn, key []byte) (string, error) {
	item, err := txn.Get(key)
	if err != nil {
		return "", err
	}
	var id string
	err = item.Value(func(val []byte) error {
		id = string(val)
		return nil
	})
	return id, err
}

// getJSON reads a key and unmarshals its value into dst.
func getJSON(txn *badger.Txn, key []byte, dst interface{}) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}
