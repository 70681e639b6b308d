package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/timesheet-service/internal/api/http"
	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/cache"
	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/directory"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/persistence"
	"github.com/spec-kit/timesheet-service/internal/repository"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to connect postgres", zap.Error(err))
		return err
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var entryRepo repository.EntryRepository
	if pg.Enabled() {
		entryRepo = repository.NewPostgresEntryRepository(pg.PoolHandle(), repository.UUIDGenerator{})
	} else {
		entryRepo = repository.NewMemoryEntryRepository(repository.UUIDGenerator{}, directory.Entries())
	}

	var summaryCache cache.SummaryCache = cache.NoopSummaryCache{}
	if redis.Enabled() {
		summaryCache = cache.NewRedisSummaryCache(redis.Client, cfg.Timesheet.SummaryCacheTTL())
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.NewCacheInvalidationWorker(summaryCache, logger).Start(dispatcher)

	verifier, err := auth.NewSharedPasswordVerifier(directory.FindUserByEmail, cfg.Auth.SharedPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error("failed to prepare credential verifier", zap.Error(err))
		return err
	}
	authService := service.NewAuthService(cfg.Auth, verifier)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), directory.FindUserByID)

	timesheetService := service.NewTimesheetService(repository.NewStaticTimesheetRepository(directory.Timesheets()))
	entryService := service.NewEntryService(service.EntryDependencies{
		EntryRepo:  entryRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	summaryService := service.NewSummaryService(service.SummaryDependencies{
		Timesheets:        timesheetService,
		EntryRepo:         entryRepo,
		Cache:             summaryCache,
		WeeklyTargetHours: cfg.Timesheet.WeeklyTargetHours,
		Logger:            logger,
	})

	app := httptransport.NewApp(cfg.App.Name, logger, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Timesheets:     handlers.NewTimesheetsHandler(timesheetService, summaryService),
		Entries:        handlers.NewEntriesHandler(entryService),
		Catalog:        handlers.NewCatalogHandler(),
		AuthMiddleware: authMiddleware,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		logger.Error("fiber listen", zap.Error(err))
		return err
	case sig := <-shutdownSignal():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.Shutdown()
}

func shutdownSignal() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
