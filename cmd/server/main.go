package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"intern_scout/internal/api"
	"intern_scout/internal/chat"
	"intern_scout/internal/config"
	"intern_scout/internal/enrich"
	"intern_scout/internal/institute"
	"intern_scout/internal/resume"
	"intern_scout/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	directory := institute.NewDirectory()
	store := postgres.NewPostingStore(db)
	enricher := enrich.New(directory)

	// A missing or broken intents file leaves every query to the search
	// fallback instead of refusing to start.
	intents, err := chat.LoadIntents(cfg.Server.IntentsPath)
	if err != nil {
		logger.Warn("intents unavailable, chat falls back to search only",
			"path", cfg.Server.IntentsPath, "error", err)
		intents = chat.IntentTable{}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	responder := chat.New(intents, store, directory, rng, logger)
	parser := resume.NewParser(cfg.Server.UploadsDir)

	handler := api.New(store, enricher, directory, parser, responder, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
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

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
