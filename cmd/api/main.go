// Package main is the entry point for the Wanderlust itinerary API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/pressly/goose/v3"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/config"
	"github.com/wanderlust-app/backend/internal/handler"
	"github.com/wanderlust-app/backend/internal/importer"
	"github.com/wanderlust-app/backend/internal/middleware"
	"github.com/wanderlust-app/backend/internal/store"
	"github.com/wanderlust-app/backend/internal/workflow"
	"github.com/wanderlust-app/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Document store ---------------------------------------------------
	// Postgres when DATABASE_URL is set, in-memory otherwise. Migrations
	// run at boot so the schema and the binary always match.
	var docStore store.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database connection established")
		docStore = store.NewPGStore(pool)
	} else {
		slog.Info("no DATABASE_URL set, using in-memory document store")
		docStore = store.NewMemoryStore()
	}

	// --- Seed data --------------------------------------------------------
	if cfg.SeedFile != "" {
		n, err := importer.Seed(context.Background(), docStore, cfg.SeedFile)
		if err != nil {
			slog.Error("seed import failed", "error", err)
			os.Exit(1)
		}
		if n > 0 {
			slog.Info("seeded itinerary", "days", n)
		}
	}

	// --- Assistant pipeline -----------------------------------------------
	apiKey, err := assistant.ResolveAPIKey(cfg.APIKey)
	if err != nil {
		// Not fatal: the server still serves the document; assistant
		// requests fail with a clear no-credential error until a key is set.
		slog.Warn("no assistant API key configured")
		apiKey = ""
	}
	client := assistant.NewClient(assistant.Config{
		BaseURL:   cfg.AssistantBaseURL,
		APIKey:    apiKey,
		Model:     cfg.AssistantModel,
		MaxTokens: cfg.AssistantMaxTokens,
		Timeout:   cfg.AssistantTimeout,
	})
	flow := workflow.New(docStore, client)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(1 << 20)) // 1 MiB

	srv := handler.NewServer(docStore, flow)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion. The
	// write timeout leaves headroom for the assistant call on /propose.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AssistantTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrateUp applies all embedded migrations through the goose programmatic API.
func migrateUp(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
