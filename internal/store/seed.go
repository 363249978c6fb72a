// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package store

import (
	"context"
	"time"

	"github.com/showdeck/showdeck/internal/logging"
	"github.com/showdeck/showdeck/internal/models"
)

// SeedShows loads the built-in catalog when the store holds no shows.
// It is a no-op on a populated store, so restarts never duplicate or
// overwrite imported data. Returns the number of shows inserted.
func (s *Store) SeedShows(ctx context.Context) (int, error) {
	count, err := s.CountShows(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Debug().Int("shows", count).Msg("Catalog already populated, skipping seed")
		return 0, nil
	}

	for i := range seedCatalog {
		if err := s.PutShow(ctx, &seedCatalog[i]); err != nil {
			return i, err
		}
	}

	logging.Info().Int("shows", len(seedCatalog)).Msg("Seeded built-in show catalog")
	return len(seedCatalog), nil
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// seedCatalog is a small stand-in catalog used until a real import runs.
var seedCatalog = []models.Show{
	{
		ID:        "a1f1cd2e-0a4e-4a41-9a33-5a47cf2f7a01",
		Title:     "Signal Lost",
		Poster:    "https://images.showdeck.io/posters/signal-lost.jpg",
		Plot:      "A radio astronomer intercepts a transmission that repeats her own voice, three days early.",
		Genres:    []string{"Sci-Fi", "Thriller"},
		Runtime:   52,
		Cast:      []string{"Mara Ellison", "Dev Akhtar"},
		Year:      2019,
		Rated:     "TV-14",
		Type:      "series",
		Released:  date(2019, time.March, 8),
		Languages: []string{"English"},
		Trailer:   "https://videos.showdeck.io/trailers/signal-lost.mp4",
	},
	{
		ID:        "b2c3417d-6c76-4d0f-8f9e-2d9f6f4be302",
		Title:     "The Quiet Harbor",
		Poster:    "https://images.showdeck.io/posters/quiet-harbor.jpg",
		Plot:      "A fishing town keeps a ledger of debts that no bank has ever seen.",
		Genres:    []string{"Drama", "Mystery"},
		Runtime:   47,
		Cast:      []string{"Tomas Lindqvist", "Aoife Byrne", "Sean Calloway"},
		Year:      2021,
		Rated:     "TV-MA",
		Type:      "series",
		Released:  date(2021, time.September, 17),
		Directors: []string{"Helena Voss"},
		Countries: []string{"Ireland"},
	},
	{
		ID:       "c3d9a7f0-1b52-49cf-9f14-73c2bb9ad203",
		Title:    "Paper Planets",
		Poster:   "https://images.showdeck.io/posters/paper-planets.jpg",
		Plot:     "An animator discovers her discarded sketches are colonizing each other.",
		Genres:   []string{"Animation", "Fantasy"},
		Runtime:  88,
		Cast:     []string{"Yuki Tanaka"},
		Year:     2017,
		Rated:    "PG",
		Type:     "movie",
		Released: date(2017, time.June, 2),
		FullPlot: "When animator Rin finds her rejected characters building societies in the margins of her notebooks, she must decide whether finishing the film means ending their world.",
	},
	{
		ID:        "d4e0b8c1-2c63-4ad0-8025-84d3cc0be404",
		Title:     "Ninety Floors Down",
		Poster:    "https://images.showdeck.io/posters/ninety-floors.jpg",
		Plot:      "The maintenance crew of an arcology never goes above the lobby. Tonight they have to.",
		Genres:    []string{"Action", "Sci-Fi"},
		Runtime:   104,
		Cast:      []string{"Omar Reyes", "Petra Molnar", "Jin-ho Park"},
		Year:      2023,
		Rated:     "R",
		Type:      "movie",
		Released:  date(2023, time.January, 27),
		Directors: []string{"Casimir Wright"},
		Trailer:   "https://videos.showdeck.io/trailers/ninety-floors.mp4",
	},
	{
		ID:      "e5f1c9d2-3d74-4be1-9136-95e4dd1cf505",
		Title:   "Borrowed Light",
		Poster:  "https://images.showdeck.io/posters/borrowed-light.jpg",
		Plot:    "Two lighthouse keepers on opposite coasts trade shifts through letters that arrive too fast.",
		Genres:  []string{"Romance", "Drama"},
		Runtime: 41,
		Cast:    []string{"Claire Dubois", "Ewan Ross"},
		Year:    2015,
		Rated:   "TV-PG",
		Type:    "series",
	},
	{
		ID:        "f6a2dae3-4e85-4cf2-a247-a6f5ee2da606",
		Title:     "The Cartographer's Dog",
		Poster:    "https://images.showdeck.io/posters/cartographers-dog.jpg",
		Plot:      "A surveyor's dog keeps leading expeditions to places that are not on any map yet.",
		Genres:    []string{"Adventure", "Family"},
		Runtime:   96,
		Cast:      []string{"Nils Berg", "Sofia Anand"},
		Year:      2020,
		Rated:     "PG",
		Type:      "movie",
		Released:  date(2020, time.November, 13),
		Languages: []string{"English", "Swedish"},
		Countries: []string{"Sweden", "Norway"},
	},
}
