package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"outreach_syncer/internal/config"
	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/eventkey"
	"outreach_syncer/internal/jobs"
	"outreach_syncer/internal/namespace"
	"outreach_syncer/internal/planner"
	"outreach_syncer/internal/publisher"
	"outreach_syncer/internal/ratelimit"
	"outreach_syncer/internal/scheduler"
	"outreach_syncer/internal/service"
	"outreach_syncer/internal/source/expandi"
	"outreach_syncer/internal/source/lemlist"
	"outreach_syncer/internal/storage/postgres"
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

	if err := run(cfg, logger); err != nil {
		logger.Error("syncer exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Stores
	eventStore := postgres.NewEventStore(db)
	profileStore := postgres.NewProfileStore(db)
	checkpointStore := postgres.NewCheckpointStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Namespace registry
	registered := make([]namespace.Namespace, 0, len(cfg.Namespaces))
	for i, ns := range cfg.Namespaces {
		registered = append(registered, namespace.Namespace{
			Name:          ns.Name,
			StorageTarget: ns.StorageTarget,
			Keywords:      ns.Keywords,
			Active:        ns.Active,
			CreatedAt:     time.Now().Add(time.Duration(i) * time.Millisecond),
		})
	}
	resolver, err := namespace.New(registered, cfg.DefaultNamespace(), logger)
	if err != nil {
		return fmt.Errorf("build namespace registry: %w", err)
	}
	for _, ns := range registered {
		if err := eventStore.EnsureTarget(ctx, ns.StorageTarget); err != nil {
			return err
		}
	}

	// Platform clients and their limiters
	clients := make(map[string]service.PlatformClient)
	limiters := make(map[string]service.Limiter)
	platforms := make([]string, 0, len(cfg.Platforms))
	for name, p := range cfg.Platforms {
		switch name {
		case lemlist.PlatformID:
			clients[name] = lemlist.New(lemlist.Config{
				BaseURL:  p.BaseURL,
				APIKey:   p.APIKey,
				PageSize: p.PageSize,
				Timeout:  p.Timeout,
			}, logger)
		case expandi.PlatformID:
			clients[name] = expandi.New(expandi.Config{
				BaseURL:  p.BaseURL,
				APIToken: p.APIKey,
				PageSize: p.PageSize,
				Timeout:  p.Timeout,
			}, logger)
		default:
			return fmt.Errorf("unknown platform %q in config", name)
		}
		limiters[name] = ratelimit.New(name, ratelimit.Config{
			RequestsPerSecond: p.RateLimit.RequestsPerSecond,
			Burst:             p.RateLimit.Burst,
			BaseBackoff:       p.RateLimit.BaseBackoff,
			MaxBackoff:        p.RateLimit.MaxBackoff,
			MaxWait:           p.RateLimit.MaxWait,
		}, logger)
		platforms = append(platforms, name)
	}

	// Optional downstream broker
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	orchestrator := service.NewOrchestrator(service.Deps{
		Clients:     clients,
		Limiters:    limiters,
		Keys:        eventkey.New(logger),
		Events:      eventStore,
		Profiles:    profileStore,
		Checkpoints: checkpointStore,
		TxManager:   txManager,
		Publisher:   pub,
		Matcher:     resolver,
	}, service.Config{MaxAttempts: cfg.Sync.MaxAttempts}, logger)

	plannerSvc := planner.New(resolver, checkpointStore, planner.Config{
		DefaultLookback: time.Duration(cfg.Sync.DefaultLookbackDays) * 24 * time.Hour,
		KnownPlatforms:  platforms,
	}, logger)

	notifier := jobs.NewWebhookNotifier(0, logger)
	jobService := jobs.New(plannerSvc, orchestrator, notifier, jobs.Config{
		MaxConcurrent: cfg.Sync.MaxConcurrentJobs,
	}, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting outreach syncer",
		"platforms", platforms,
		"namespaces", len(registered),
		"scheduler", cfg.Scheduler.Enabled,
	)

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(jobService, domain.SyncConfig{
			Platforms:  platforms,
			Mode:       domain.ModeDeltaSinceLast,
			Namespaces: []string{domain.NamespaceAll},
		}, cfg.Scheduler.Interval, cfg.Scheduler.Retention, logger)

		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
	} else {
		<-ctx.Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := jobService.Shutdown(shutdownCtx); err != nil {
		logger.Warn("jobs did not drain before shutdown deadline", "error", err)
	}
	return nil
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
