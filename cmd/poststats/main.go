package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/poststats-lab/project-poststats/internal/core/config"
	"github.com/poststats-lab/project-poststats/internal/core/storage/postgres"
	"github.com/poststats-lab/project-poststats/internal/ingestion"
	"github.com/poststats-lab/project-poststats/internal/migrations"
	"github.com/poststats-lab/project-poststats/internal/server"
	"github.com/poststats-lab/project-poststats/internal/statistics"
)

func main() {
	configPath := flag.String("config", "poststats.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration (includes the statistics catalog)
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"statistics", len(cfg.Catalog.Definitions()),
		"statistics_dir", cfg.Statistics.ConfigDir,
	)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations, then prepare statements against the migrated schema
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := dbAdapter.Prepare(); err != nil {
		slog.Error("Failed to prepare database statements", "error", err)
		os.Exit(1)
	}

	snapshotStore := postgres.NewSnapshotAdapter(dbAdapter.DB())

	// 3. Initialize Ingestion
	ingestionSvc := ingestion.NewService(dbAdapter, cfg.Server.MaxBodySizeMB)

	// 4. Initialize Statistics (query API + scheduler)
	statsSvc := statistics.NewService(dbAdapter, snapshotStore, cfg.Catalog, cfg.Statistics.WorkerCount)
	scheduler := statistics.NewScheduler(
		cfg.Statistics.Interval(),
		cfg.Statistics.LookbackWindow(),
		statsSvc,
		snapshotStore,
	)

	// 5. Initialize Server
	srv := server.New(cfg.Server.Addr(), dbAdapter.DB(), cfg.Server.Mode, ingestionSvc, statsSvc)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	schedulerDone := make(chan struct{})
	if cfg.Statistics.SchedulerEnabled {
		go func() {
			defer close(schedulerDone)
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("Scheduler stopped with error", "error", err)
			}
		}()
	} else {
		close(schedulerDone)
		slog.Info("Statistics scheduler disabled by config")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		cancel()
	}

	// Let the scheduler finish its final pass before the pool closes.
	<-schedulerDone
	slog.Info("Shutdown complete")
}
