package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"intern_scout/internal/config"
	"intern_scout/internal/crawl"
	"intern_scout/internal/extract"
	"intern_scout/internal/institute"
	"intern_scout/internal/publisher"
	"intern_scout/internal/scheduler"
	"intern_scout/internal/source"
	"intern_scout/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single crawl and exit")
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

	var pub crawl.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	directory := institute.NewDirectory()
	postingStore := postgres.NewPostingStore(db)
	crawlStateStore := postgres.NewCrawlStateStore(db)

	extractor := extract.New(extract.Config{
		Timeout:            cfg.Crawler.Timeout,
		InsecureSkipVerify: cfg.Crawler.InsecureSkipVerify,
		MinTitleLen:        cfg.Crawler.MinTitleLen,
	}, directory, logger)

	crawlService := crawl.NewService(
		source.Registry(),
		extractor,
		postingStore,
		crawlStateStore,
		pub,
		logger,
		cfg.Crawler,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		stats, err := crawlService.Run(ctx)
		if err != nil {
			logger.Error("crawl failed", "error", err)
			os.Exit(1)
		}
		logger.Info("crawl finished",
			"found", stats.Found,
			"new", stats.New,
			"duplicates", stats.Duplicates,
		)
		return
	}

	logger.Info("starting crawler",
		"sources", len(source.Registry()),
		"interval", cfg.Crawler.Interval,
		"workers", cfg.Crawler.Workers,
	)

	sched := scheduler.NewScheduler(crawlService, cfg.Crawler.Interval, logger)
	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
