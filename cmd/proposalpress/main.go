// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ProposalPress server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proposalpress/internal/ai"
	"proposalpress/internal/cache"
	"proposalpress/internal/config"
	"proposalpress/internal/database"
	"proposalpress/internal/draft"
	"proposalpress/internal/export"
	"proposalpress/internal/handlers"
	"proposalpress/internal/lifecycle"
	"proposalpress/internal/render"
	"proposalpress/internal/router"
	"proposalpress/internal/session"
	"proposalpress/internal/storage"
	"proposalpress/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL and bring the schema up to date.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default proposal (always) and a dev admin account (dev only).
	if err := database.Seed(db, cfg.IsDev()); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (sessions + full-page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	proposalStore := store.NewProposalStore(db)
	commentStore := store.NewCommentStore(db)
	viewStore := store.NewViewStore(db)
	userStore := store.NewUserStore(db)

	// S3-compatible object storage (optional — media uploads disable
	// cleanly when not configured).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured — media uploads disabled")
	} else {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	}

	svc := lifecycle.NewService(proposalStore, commentStore, viewStore)
	drafts := draft.NewManager(proposalStore)

	aiRegistry := ai.NewRegistryFromConfig(cfg.AIProvider, ai.ProviderConfig{
		APIKey: cfg.AIAPIKey,
		Model:  cfg.AIModel,
	})
	if aiRegistry.Enabled() {
		slog.Info("ai provider initialized", "available", aiRegistry.Available())
	}

	if !export.Available() {
		slog.Warn("chromium not found — PDF export disabled")
	}

	adminHandlers := handlers.NewAdmin(renderer, sessionStore, svc, drafts, commentStore, pageCache, storageClient, aiRegistry)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore, drafts)
	publicHandlers := handlers.NewPublic(renderer, svc, proposalStore, commentStore, pageCache)

	r, stopLimiters := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers)
	defer stopLimiters()

	// WriteTimeout accommodates PDF export and AI endpoints that wait on
	// slow upstreams.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
