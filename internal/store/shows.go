// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/showdeck/showdeck/internal/models"
)

// PutShow inserts or replaces a show document.
func (s *Store) PutShow(ctx context.Context, show *models.Show) error {
	data, err := json.Marshal(show)
	if err != nil {
		return fmt.Errorf("marshal show: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(showKey(show.ID), data)
	})
}

// GetShow fetches one show document by id.
// Returns ErrShowNotFound when absent.
func (s *Store) GetShow(ctx context.Context, id string) (*models.Show, error) {
	var show models.Show

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, showKey(id), &show)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	return &show, nil
}

// ListShows returns the whole catalog in key order (stable across calls).
// The result is never nil.
func (s *Store) ListShows(ctx context.Context) ([]models.Show, error) {
	shows := []models.Show{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(showKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var show models.Show
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &show)
			})
			if err != nil {
				return fmt.Errorf("decode show %s: %w", it.Item().Key(), err)
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

// CountShows reports how many show documents the catalog holds.
func (s *Store) CountShows(ctx context.Context) (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(showKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
