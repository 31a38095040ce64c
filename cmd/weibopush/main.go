package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"weibo_push/internal/bot"
	"weibo_push/internal/config"
	"weibo_push/internal/directory"
	"weibo_push/internal/dispatch"
	"weibo_push/internal/normalize"
	"weibo_push/internal/publisher"
	"weibo_push/internal/scheduler"
	"weibo_push/internal/service"
	"weibo_push/internal/source/weibo"
	"weibo_push/internal/storage/kv"
	"weibo_push/internal/storage/sqlstore"
	"weibo_push/internal/watermark"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("weibo push stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openDirectoryStore(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	dir := directory.New(store, logger)
	if err := dir.Load(ctx); err != nil {
		return fmt.Errorf("load directory: %w", err)
	}

	cache, err := kv.Open(kv.Config{Path: cfg.Cache.Path, NameTTL: cfg.Cache.NameTTL}, logger)
	if err != nil {
		return err
	}
	defer cache.Close()
	go cache.RunGC(ctx, cfg.Cache.GCInterval)

	cookie, err := cache.LoadCredentials()
	if err != nil {
		logger.Warn("failed to load stored credentials", "error", err)
	}
	if cookie == "" {
		cookie = cfg.Weibo.Cookie
	}
	creds := weibo.NewCredentialHolder(cookie)

	loader, closeLoader, err := newPageLoader(cfg.Weibo, logger)
	if err != nil {
		return err
	}
	defer closeLoader()

	api := weibo.NewAPISource(weibo.APIConfig{
		BaseURL:     cfg.Weibo.APIBaseURL,
		Timeout:     cfg.Weibo.Timeout,
		MaxAttempts: cfg.Weibo.Retry.MaxAttempts,
		Backoff:     cfg.Weibo.Retry.Backoff,
		UserAgent:   cfg.Weibo.UserAgent,
	}, creds, logger)
	markup := weibo.NewMarkupSource(weibo.MarkupConfig{
		BaseURL:   cfg.Weibo.MarkupBaseURL,
		MaxPages:  cfg.Weibo.MaxPages,
		PageDelay: cfg.Weibo.PageDelay,
	}, loader, creds, logger)

	source, err := weibo.Select(cfg.Weibo.Strategy, api, markup, logger)
	if err != nil {
		return err
	}

	loc, err := cfg.Weibo.TimeLocation()
	if err != nil {
		return err
	}
	normalizer := normalize.New(loc)

	var tg *tgbot.Bot
	if cfg.Telegram.Token != "" {
		tg, err = bot.New(cfg.Telegram.Token, logger)
		if err != nil {
			return err
		}
	}

	sender, closeSender, err := newSender(cfg, tg, logger)
	if err != nil {
		return err
	}
	defer closeSender()

	watermarks := watermark.New(dir)
	dispatcher := dispatch.New(dir, watermarks, sender, cache, cfg.Delivery.Pacing, logger)

	syncService := service.NewSyncService(
		source,
		normalizer,
		dir,
		watermarks,
		dispatcher,
		logger,
		service.SyncConfig{
			FeedCount:   cfg.Weibo.FeedCount,
			Concurrency: cfg.Sync.Concurrency,
		},
	)

	sched := scheduler.NewScheduler(syncService, scheduler.Config{
		Interval:     cfg.Sync.Interval,
		StartupDelay: cfg.Sync.StartupDelay,
		CycleTimeout: cfg.Sync.CycleTimeout,
	}, logger)

	commands := service.NewCommandService(service.CommandDeps{
		Directory:   dir,
		Source:      source,
		Normalizer:  normalizer,
		Users:       api,
		Prober:      api,
		Names:       cache,
		Credentials: cache,
		Holder:      creds,
		Trigger:     sched,
	}, service.CommandConfig{
		SeedCount:    cfg.Weibo.SeedCount,
		FeedCount:    cfg.Weibo.FeedCount,
		ProbeAccount: cfg.Weibo.ProbeAccount,
	}, logger)

	if tg != nil {
		bot.NewHandler(commands, cfg.Telegram.Admins, logger).Register(tg)
		go tg.Start(ctx)
	}

	logger.Info("starting weibo push",
		"source", source.Name(),
		"transport", cfg.Delivery.Transport,
		"interval", cfg.Sync.Interval,
		"accounts", len(dir.Accounts()),
		"destinations", len(dir.Destinations()),
	)

	return sched.Start(ctx)
}

func openDirectoryStore(cfg config.DatabaseConfig, logger *slog.Logger) (directory.Store, func(), error) {
	driver := sqlstore.DriverPostgres
	switch cfg.Driver {
	case "memory":
		logger.Warn("using in-memory directory, subscriptions will not survive a restart")
		return directory.NewMemoryStore(), func() {}, nil
	case "sqlite":
		driver = sqlstore.DriverSQLite
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlstore.Open(driver, cfg.DSN(), logger)
	if err != nil {
		return nil, nil, err
	}
	return sqlstore.NewDirectoryStore(db), func() { _ = db.Close() }, nil
}

func newPageLoader(cfg config.WeiboConfig, logger *slog.Logger) (weibo.PageLoader, func(), error) {
	if cfg.Loader == "browser" {
		l, err := weibo.NewBrowserLoader(cfg.Timeout, logger)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { _ = l.Close() }, nil
	}
	return weibo.NewHTTPLoader(weibo.LoaderConfig{
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.Retry.MaxAttempts,
		Backoff:     cfg.Retry.Backoff,
		UserAgent:   cfg.UserAgent,
	}, logger), func() {}, nil
}

func newSender(cfg *config.Config, tg *tgbot.Bot, logger *slog.Logger) (dispatch.Sender, func(), error) {
	if cfg.Delivery.Transport == "rabbitmq" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		return rabbitMQ, func() { _ = rabbitMQ.Close() }, nil
	}
	return bot.NewSender(tg), func() {}, nil
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
