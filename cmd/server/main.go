package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/herodex/herodex/internal/api"
	"github.com/herodex/herodex/internal/config"
	"github.com/herodex/herodex/internal/database"
	"github.com/herodex/herodex/internal/hero"
	"github.com/herodex/herodex/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	teamRepo := team.NewRepository(db.Pool())
	heroRepo := hero.NewRepository(db.Pool())
	hasher := hero.NewHasher(cfg.BcryptCost)

	if cfg.SeedFile != "" {
		seeds, err := hero.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("failed to load seed file", "error", err, "path", cfg.SeedFile)
			os.Exit(1)
		}
		if err := hero.Seed(ctx, heroRepo, hasher, seeds); err != nil {
			slog.Error("failed to seed heroes", "error", err)
			os.Exit(1)
		}
		slog.Info("seeded heroes", "count", len(seeds), "path", cfg.SeedFile)
	}

	router := api.NewRouter(api.RouterDeps{
		TeamRepo: teamRepo,
		HeroRepo: heroRepo,
		Hasher:   hasher,
		DBPinger: db,
		Version:  cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting herodex server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
