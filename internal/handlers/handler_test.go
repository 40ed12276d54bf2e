// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"proposalpress/internal/ai"
	"proposalpress/internal/cache"
	"proposalpress/internal/database"
	"proposalpress/internal/draft"
	"proposalpress/internal/lifecycle"
	"proposalpress/internal/middleware"
	"proposalpress/internal/render"
	"proposalpress/internal/session"
	"proposalpress/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	name     string
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return m.name }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL, runs migrations, and
// seeds the default proposal.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "proposalpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "proposalpress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if err := database.Seed(db, false); err != nil {
		db.Close()
		t.Fatalf("seed: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB            *sql.DB
	Valkey        *redis.Client
	Renderer      *render.Renderer
	Sessions      *session.Store
	ProposalStore *store.ProposalStore
	CommentStore  *store.CommentStore
	UserStore     *store.UserStore
	Lifecycle     *lifecycle.Service
	Drafts        *draft.Manager
	PageCache     *cache.PageCache
	AIRegistry    *ai.Registry
	Admin         *Admin
	Auth          *Auth
	Public        *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Object storage stays nil, as in an unconfigured install.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	proposalStore := store.NewProposalStore(db)
	commentStore := store.NewCommentStore(db)
	viewStore := store.NewViewStore(db)
	userStore := store.NewUserStore(db)
	svc := lifecycle.NewService(proposalStore, commentStore, viewStore)
	drafts := draft.NewManager(proposalStore)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	aiRegistry := ai.NewRegistry()
	aiRegistry.Register(&mockAIProvider{name: "mock", response: "mock AI response"})

	admin := NewAdmin(renderer, sessions, svc, drafts, commentStore, pageCache, nil, aiRegistry)
	auth := NewAuth(renderer, sessions, userStore, drafts)
	public := NewPublic(renderer, svc, proposalStore, commentStore, pageCache)

	return &testEnv{
		DB:            db,
		Valkey:        vk,
		Renderer:      renderer,
		Sessions:      sessions,
		ProposalStore: proposalStore,
		CommentStore:  commentStore,
		UserStore:     userStore,
		Lifecycle:     svc,
		Drafts:        drafts,
		PageCache:     pageCache,
		AIRegistry:    aiRegistry,
		Admin:         admin,
		Auth:          auth,
		Public:        public,
	}
}

// createTestProposal clones the default proposal under a unique slug and
// registers cleanup.
func (env *testEnv) createTestProposal(t *testing.T) string {
	t.Helper()
	name := "Test Client " + uuid.NewString()[:8]
	slug, err := env.Lifecycle.CreateProposal(context.Background(), name)
	if err != nil {
		t.Fatalf("create proposal: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM proposals WHERE slug = $1", slug)
	})
	return slug
}

// testSession creates session data for an authenticated request.
func testSession(role string) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@proposalpress.local",
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   true,
	}
}

// withSession attaches session data to the request context.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
}

// withSessionCookie attaches a session cookie so the draft manager can
// key the request's engine.
func withSessionCookie(r *http.Request, id string) *http.Request {
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	return r
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
