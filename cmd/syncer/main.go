package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rickgao/kalshi-sync/internal/api"
	"github.com/rickgao/kalshi-sync/internal/auth"
	"github.com/rickgao/kalshi-sync/internal/config"
	"github.com/rickgao/kalshi-sync/internal/database"
	"github.com/rickgao/kalshi-sync/internal/scheduler"
	"github.com/rickgao/kalshi-sync/internal/storage/postgres"
	"github.com/rickgao/kalshi-sync/internal/sync"
	"github.com/rickgao/kalshi-sync/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/syncer.local.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single sync pass and exit")
	seriesFlag := flag.String("series", "", "comma-separated series tickers (overrides config)")
	eventFlag := flag.String("event", "", "comma-separated event tickers (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting syncer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	seriesTickers := cfg.Sync.SeriesTickers
	if *seriesFlag != "" {
		seriesTickers = splitTickers(*seriesFlag)
	}
	eventTickers := cfg.Sync.EventTickers
	if *eventFlag != "" {
		eventTickers = splitTickers(*eventFlag)
	}
	if len(seriesTickers) == 0 && len(eventTickers) == 0 {
		logger.Error("nothing to sync: no series or event tickers configured")
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"series", len(seriesTickers),
		"events", len(eventTickers),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create API client
	clientOpts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff),
	}
	if cfg.API.KeyID != "" {
		creds, err := auth.LoadCredentials(cfg.API.KeyID, cfg.API.PrivateKeyPath)
		if err != nil {
			logger.Error("failed to load API credentials", "error", err)
			os.Exit(1)
		}
		clientOpts = append(clientOpts, api.WithCredentials(creds))
	}
	apiClient := api.NewClient(cfg.API.BaseURL, cfg.API.APIKey, clientOpts...)

	store := postgres.NewStore(pool)
	syncer := sync.New(sync.Config{
		ExchangeSlug:          cfg.Sync.ExchangeSlug,
		ExchangeName:          cfg.Sync.ExchangeName,
		EventStatus:           cfg.Sync.EventStatus,
		PageLimit:             cfg.Sync.PageLimit,
		MaxEventPages:         cfg.Sync.MaxEventPages,
		SnapshotBatchSize:     cfg.Sync.SnapshotBatchSize,
		MarketGetBatchSize:    cfg.Sync.MarketGetBatchSize,
		MarketInsertBatchSize: cfg.Sync.MarketInsertBatchSize,
	}, apiClient, store, logger)
	runner := sync.NewRunner(syncer, logger)

	if *once || cfg.Scheduler.Interval <= 0 {
		report := runner.Run(ctx, seriesTickers, eventTickers)
		if failed := report.Failed(); len(failed) > 0 {
			for _, u := range failed {
				logger.Error("unit failed", "kind", string(u.Kind), "ticker", u.Ticker, "error", u.Err)
			}
			os.Exit(1)
		}
		return
	}

	sched := scheduler.New(scheduler.Config{Interval: cfg.Scheduler.Interval}, func(runCtx context.Context) {
		runner.Run(runCtx, seriesTickers, eventTickers)
	}, logger)

	if err := sched.Start(ctx); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	logger.Info("syncer running", "interval", cfg.Scheduler.Interval)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Error("scheduler shutdown error", "error", err)
	}

	logger.Info("syncer stopped")
}

func splitTickers(s string) []string {
	var tickers []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
