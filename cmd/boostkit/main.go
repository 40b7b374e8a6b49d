// Package main is the entry point for the BoostKit server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boostkit/internal/cache"
	"boostkit/internal/config"
	"boostkit/internal/database"
	"boostkit/internal/handlers"
	"boostkit/internal/router"
	"boostkit/internal/session"
	"boostkit/internal/storage"
	"boostkit/internal/store"
)

func main() {
	// Structured logger — outputs text; level Debug so cache hit/miss
	// logging is visible in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	sessionStore := session.NewStore(valkeyClient)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	pageStore := store.NewLandingPageStore(db)
	proposalStore := store.NewSalesProposalStore(db)
	dealStore := store.NewDealImageStore(db)
	analyticsStore := store.NewAnalyticsStore(db)

	// Connect to S3-compatible object storage (optional — app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured — deal image uploads disabled")
	}

	// Initialize the published-page cache (full HTML in Valkey).
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Create handler groups with their dependencies.
	deps := router.Deps{
		Sessions:  sessionStore,
		Auth:      handlers.NewAuth(sessionStore, userStore),
		Catalog:   handlers.NewCatalog(),
		Pages:     handlers.NewPages(pageStore, pageCache),
		Proposals: handlers.NewProposals(proposalStore),
		Deals:     handlers.NewDeals(dealStore, storageClient),
		Dashboard: handlers.NewDashboard(pageStore, proposalStore, dealStore, analyticsStore),
		Public:    handlers.NewPublic(pageStore, analyticsStore, pageCache),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(deps)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// deal image uploads, which include thumbnail generation and two S3 puts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
