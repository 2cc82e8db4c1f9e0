package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ArcLab_Go/internal/bootstrap"
	"github.com/osse101/ArcLab_Go/internal/config"
	"github.com/osse101/ArcLab_Go/internal/database"
	"github.com/osse101/ArcLab_Go/internal/scheduler"
	"github.com/osse101/ArcLab_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment check failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn("Environment warning", "detail", w)
		}
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(repos, cfg.CatalogCacheTTL)

	catalogSource, err := bootstrap.OpenCatalogSource(ctx, cfg.CatalogSource, cfg.AWSRegion)
	if err != nil {
		slog.Error("Failed to open catalog source", "error", err)
		dbPool.Close()
		os.Exit(1)
	}
	// A bad document must not keep the server down; the last good catalog stays.
	if err := bootstrap.SyncCatalog(ctx, services.Loader, catalogSource); err != nil {
		slog.Error("Catalog sync failed", "error", err)
	}

	sched := scheduler.New()
	if catalogSource != nil {
		sched.Schedule(bootstrap.CatalogSyncJobName, cfg.CatalogSyncInterval,
			bootstrap.CatalogSyncJob(services.Loader, catalogSource))
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, server.Services{
		Catalog:       services.Catalog,
		Planner:       services.Planner,
		Stash:         services.Stash,
		Importer:      services.Loader,
		CatalogSource: catalogSource,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		DBPool:    dbPool,
	})
}
