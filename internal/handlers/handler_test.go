// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"boostkit/internal/cache"
	"boostkit/internal/database"
	"boostkit/internal/middleware"
	"boostkit/internal/models"
	"boostkit/internal/session"
	"boostkit/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "boostkit")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "boostkit")
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
		// Clean up test session and cache keys.
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
	DB             *sql.DB
	Valkey         *redis.Client
	Sessions       *session.Store
	UserStore      *store.UserStore
	PageStore      *store.LandingPageStore
	ProposalStore  *store.SalesProposalStore
	DealStore      *store.DealImageStore
	AnalyticsStore *store.AnalyticsStore
	PageCache      *cache.PageCache
	Auth           *Auth
	Catalog        *Catalog
	Pages          *Pages
	Proposals      *Proposals
	Dashboard      *Dashboard
	Public         *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
// Deal handlers are left out: they need S3.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk)
	userStore := store.NewUserStore(db)
	pageStore := store.NewLandingPageStore(db)
	proposalStore := store.NewSalesProposalStore(db)
	dealStore := store.NewDealImageStore(db)
	analyticsStore := store.NewAnalyticsStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	return &testEnv{
		DB:             db,
		Valkey:         vk,
		Sessions:       sessions,
		UserStore:      userStore,
		PageStore:      pageStore,
		ProposalStore:  proposalStore,
		DealStore:      dealStore,
		AnalyticsStore: analyticsStore,
		PageCache:      pageCache,
		Auth:           NewAuth(sessions, userStore),
		Catalog:        NewCatalog(),
		Pages:          NewPages(pageStore, pageCache),
		Proposals:      NewProposals(proposalStore),
		Dashboard:      NewDashboard(pageStore, proposalStore, dealStore, analyticsStore),
		Public:         NewPublic(pageStore, analyticsStore, pageCache),
	}
}

// testUser creates a throwaway account and registers cleanup.
func (env *testEnv) testUser(t *testing.T, email string, plan models.Plan) *models.User {
	t.Helper()
	u, err := env.UserStore.Create(email, "secret123", "Handler Test", plan)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM users WHERE email = $1", email) })
	return u
}

// testSession creates session data for a user with 2FA complete.
func testSession(u *models.User) *session.Data {
	return &session.Data{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Plan:        string(u.Plan),
		TwoFADone:   true,
	}
}

// withSession adds session data to a request using the middleware key.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParamAndSession adds both a chi URL param and session data.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}
