// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/showdeck/showdeck/internal/auth"
	"github.com/showdeck/showdeck/internal/config"
	"github.com/showdeck/showdeck/internal/models"
	"github.com/showdeck/showdeck/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Security: config.SecurityConfig{
			JWTSecret:       "test_signing_secret_with_enough_length_123456",
			TokenLifetime:   time.Hour,
			BcryptCost:      10,
			CORSOrigins:     []string{"*"},
			LoginRateLimit:  5,
			LoginRateWindow: 5 * time.Minute,
		},
		Database: config.DatabaseConfig{InMemory: true},
		Logging:  config.LoggingConfig{Level: "disabled"},
	}
}

// newTestServer builds the full route tree over an in-memory store.
func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	cfg := testConfig()
	st, err := store.Open(cfg.Database)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})

	tokens, err := auth.NewTokenManager(cfg.Security)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	handler := NewHandler(st, tokens, auth.NewPasswordHasher(cfg.Security.BcryptCost), cfg)
	return NewRouter(handler, auth.NewMiddleware(tokens), cfg), st
}

// signup creates an account directly through the signup endpoint.
func signup(t *testing.T, router http.Handler, username, email, password string) {
	t.Helper()
	apitest.New().
		Handler(router).
		Post("/auth/signup").
		JSON(map[string]string{"username": username, "email": email, "password": password}).
		Expect(t).
		Status(http.StatusCreated).
		Body(`{"message":"User created successfully"}`).
		End()
}

// login performs a login and returns the issued token.
func login(t *testing.T, router http.Handler, identifier, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"identifier": identifier, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func TestSignup(t *testing.T) {
	router, _ := newTestServer(t)

	signup(t, router, "alice", "alice@x.com", "secret1")

	// Same username again.
	apitest.New().
		Handler(router).
		Post("/auth/signup").
		JSON(map[string]string{"username": "alice", "email": "other@x.com", "password": "secret2"}).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"Username already exists"}`).
		End()

	// Same email, different username.
	apitest.New().
		Handler(router).
		Post("/auth/signup").
		JSON(map[string]string{"username": "bob", "email": "alice@x.com", "password": "secret2"}).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"Email already exists"}`).
		End()
}

func TestSignup_MissingFields(t *testing.T) {
	router, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"no username", map[string]string{"email": "a@x.com", "password": "p"}},
		{"no email", map[string]string{"username": "a", "password": "p"}},
		{"no password", map[string]string{"username": "a", "email": "a@x.com"}},
		{"empty", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apitest.New().
				Handler(router).
				Post("/auth/signup").
				JSON(tt.body).
				Expect(t).
				Status(http.StatusBadRequest).
				Body(`{"message":"Username, email, and password are required"}`).
				End()
		})
	}
}

func TestLogin(t *testing.T) {
	router, _ := newTestServer(t)
	signup(t, router, "alice", "alice@x.com", "secret1")

	apitest.New().
		Handler(router).
		Post("/auth/login").
		JSON(map[string]string{"identifier": "alice", "password": "secret1"}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present("$.token")).
		Assert(jsonpath.Equal("$.username", "alice")).
		End()

	// Email works as identifier too.
	apitest.New().
		Handler(router).
		Post("/auth/login").
		JSON(map[string]string{"identifier": "alice@x.com", "password": "secret1"}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.username", "alice")).
		End()
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _ := newTestServer(t)
	signup(t, router, "alice", "alice@x.com", "secret1")

	// Wrong password and unknown identifier produce the identical
	// response, so the endpoint cannot be used to enumerate accounts.
	for _, body := range []map[string]string{
		{"identifier": "alice", "password": "wrong"},
		{"identifier": "nobody", "password": "secret1"},
	} {
		apitest.New().
			Handler(router).
			Post("/auth/login").
			JSON(body).
			Expect(t).
			Status(http.StatusBadRequest).
			Body(`{"message":"Invalid credentials"}`).
			End()
	}
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := newTestServer(t)

	apitest.New().
		Handler(router).
		Post("/auth/login").
		JSON(map[string]string{"identifier": "alice"}).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"Identifier and password are required"}`).
		End()
}

func TestLogin_RateLimited(t *testing.T) {
	router, _ := newTestServer(t)

	// The limiter counts attempts per IP regardless of outcome; the
	// sixth request in the window is rejected.
	for i := 0; i < 5; i++ {
		apitest.New().
			Handler(router).
			Post("/auth/login").
			JSON(map[string]string{"identifier": "nobody", "password": "wrong"}).
			Expect(t).
			Status(http.StatusBadRequest).
			End()
	}

	apitest.New().
		Handler(router).
		Post("/auth/login").
		JSON(map[string]string{"identifier": "nobody", "password": "wrong"}).
		Expect(t).
		Status(http.StatusTooManyRequests).
		Body(`{"message":"Too many login attempts, try again later"}`).
		End()
}

func TestWatchlist_RequiresToken(t *testing.T) {
	router, _ := newTestServer(t)

	apitest.New().
		Handler(router).
		Get("/watchlist").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"message":"No token, authorization denied"}`).
		End()

	apitest.New().
		Handler(router).
		Post("/watchlist").
		JSON(map[string]string{"showId": "show-1"}).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"message":"No token, authorization denied"}`).
		End()

	apitest.New().
		Handler(router).
		Get("/watchlist").
		Header("Authorization", "Bearer bogus.token.here").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"message":"Token is not valid"}`).
		End()
}

func TestWatchlist_Flow(t *testing.T) {
	router, st := newTestServer(t)

	err := st.PutShow(context.Background(), &models.Show{ID: "show-1", Title: "Signal Lost"})
	if err != nil {
		t.Fatalf("put show: %v", err)
	}

	signup(t, router, "alice", "alice@x.com", "secret1")
	token := login(t, router, "alice", "secret1")

	// Fresh account: empty array, not null.
	apitest.New().
		Handler(router).
		Get("/watchlist").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()

	apitest.New().
		Handler(router).
		Post("/watchlist").
		Header("Authorization", "Bearer "+token).
		JSON(map[string]string{"showId": "show-1"}).
		Expect(t).
		Status(http.StatusOK).
		Body(`{"message":"Show added to watchlist"}`).
		End()

	apitest.New().
		Handler(router).
		Get("/watchlist").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 1)).
		Assert(jsonpath.Equal(`$[0].id`, "show-1")).
		Assert(jsonpath.Equal(`$[0].title`, "Signal Lost")).
		End()

	// Second append of the same show is rejected.
	apitest.New().
		Handler(router).
		Post("/watchlist").
		Header("Authorization", "Bearer "+token).
		JSON(map[string]string{"showId": "show-1"}).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"Show already in watchlist"}`).
		End()
}

func TestWatchlist_AppendAcceptsUnknownShow(t *testing.T) {
	router, _ := newTestServer(t)

	signup(t, router, "alice", "alice@x.com", "secret1")
	token := login(t, router, "alice", "secret1")

	// References are opaque at append time; the dangling entry is
	// simply skipped on expansion.
	apitest.New().
		Handler(router).
		Post("/watchlist").
		Header("Authorization", "Bearer "+token).
		JSON(map[string]string{"showId": "never-imported"}).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(router).
		Get("/watchlist").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()
}

func TestWatchlist_MissingShowID(t *testing.T) {
	router, _ := newTestServer(t)

	signup(t, router, "alice", "alice@x.com", "secret1")
	token := login(t, router, "alice", "secret1")

	apitest.New().
		Handler(router).
		Post("/watchlist").
		Header("Authorization", "Bearer "+token).
		JSON(map[string]string{}).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"message":"Show ID is required"}`).
		End()
}

func TestShows(t *testing.T) {
	router, st := newTestServer(t)

	err := st.PutShow(context.Background(), &models.Show{ID: "show-1", Title: "Signal Lost", Year: 2019})
	if err != nil {
		t.Fatalf("put show: %v", err)
	}

	apitest.New().
		Handler(router).
		Get("/shows").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 1)).
		Assert(jsonpath.Equal(`$[0].title`, "Signal Lost")).
		End()

	apitest.New().
		Handler(router).
		Get("/shows/show-1").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.id`, "show-1")).
		End()

	apitest.New().
		Handler(router).
		Get("/shows/missing").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"message":"Show not found"}`).
		End()
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := newTestServer(t)

	apitest.New().
		Handler(router).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"status":"ok"}`).
		End()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("metrics status = %d, want 200", rec.Code)
	}
}
