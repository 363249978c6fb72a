// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/showdeck/showdeck/internal/models"
)

// AppendToWatchlist appends showID to the end of the account's
// watchlist. The membership check and the append run in one read-write
// transaction, so two racing appends of the same show serialize and the
// loser fails instead of producing a duplicate entry.
//
// The show id is not checked against the catalog; a reference to a show
// that does not (yet, or anymore) exist is accepted and only resolved at
// read time.
//
// Returns ErrUserNotFound or ErrAlreadyInWatchlist.
func (s *Store) AppendToWatchlist(ctx context.Context, userID, showID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		var user models.User
		if err := getJSON(txn, userKey(userID), &user); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if slices.Contains(user.Watchlist, showID) {
			return ErrAlreadyInWatchlist
		}

		user.Watchlist = append(user.Watchlist, showID)
		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		return txn.Set(userKey(userID), data)
	})
}

// ExpandWatchlist resolves the account's watchlist references into full
// show documents, preserving insertion order. Dangling references —
// entries whose show document no longer exists — are skipped.
//
// Returns ErrUserNotFound when the account is absent. The result is
// never nil; an empty watchlist expands to an empty slice.
func (s *Store) ExpandWatchlist(ctx context.Context, userID string) ([]models.Show, error) {
	shows := []models.Show{}

	err := s.db.View(func(txn *badger.Txn) error {
		var user models.User
		if err := getJSON(txn, userKey(userID), &user); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		for _, id := range user.Watchlist {
			var show models.Show
			err := getJSON(txn, showKey(id), &show)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue // dangling reference
			}
			if err != nil {
				return fmt.Errorf("expand show %s: %w", id, err)
			}
			shows = append(shows, show)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shows, nil
}
