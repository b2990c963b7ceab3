package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/internal/domain/service"
	"github.com/xabank/time-deposit/internal/infrastructure/config"
	infraPG "github.com/xabank/time-deposit/internal/infrastructure/persistence/postgres"
	"github.com/xabank/time-deposit/internal/infrastructure/scheduler"
	"github.com/xabank/time-deposit/internal/infrastructure/telemetry"
	grpcPresentation "github.com/xabank/time-deposit/internal/presentation/grpc"
	"github.com/xabank/time-deposit/internal/presentation/rest"
	"github.com/xabank/time-deposit/pkg/observability"
	pgpkg "github.com/xabank/time-deposit/pkg/postgres"
)

const serviceName = "time-deposit-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logger.Info("starting "+serviceName,
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	plans, err := cfg.BuildPlans()
	if err != nil {
		logger.Error("invalid plan configuration", "error", err)
		os.Exit(1)
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = metrics.Provider.Shutdown(context.Background()) }()

	// Initialize database
	pgCfg := cfg.Postgres()
	pgCfg.ConnectTimeout = 10 * time.Second
	pool, err := pgpkg.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	source, err := pgpkg.MigrationSource(cfg.Migrations.Path)
	if err != nil {
		logger.Error("invalid migrations path", "error", err)
		os.Exit(1)
	}
	if err := pgpkg.RunMigrations(pgCfg.DSN(), source); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Wire dependencies (DI via constructors)
	repo := infraPG.NewTimeDepositRepo(pool)
	catalog := service.NewPlanCatalog(plans)
	logPlans(logger, catalog)
	calculator := service.NewInterestCalculator(catalog)

	// Use cases
	updateAllUC, err := telemetry.NewInstrumentedUpdater(
		usecase.NewUpdateAllTimeDeposits(repo, calculator, logger),
		metrics.Meter,
	)
	if err != nil {
		logger.Error("failed to instrument update use case", "error", err)
		os.Exit(1)
	}
	getAllUC := usecase.NewGetAllTimeDeposits(repo, logger)

	// Month-end scheduler
	var cron *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cron = scheduler.New(updateAllUC, logger, scheduler.Config{
			Schedule:    cfg.Scheduler.Schedule,
			LastDayOnly: cfg.Scheduler.LastDayOnly,
		})
		if err := cron.Start(); err != nil {
			logger.Error("failed to start scheduler", "error", err)
			os.Exit(1)
		}
	}

	// gRPC server
	grpcHandler := grpcPresentation.NewTimeDepositHandler(updateAllUC, getAllUC, logger)
	grpcServer := grpcPresentation.NewServer(grpcHandler, cfg.GRPCPort, logger)

	// HTTP server
	router := rest.NewRouter(
		rest.NewTimeDepositHandler(updateAllUC, getAllUC, logger),
		rest.NewHealthHandler(serviceName, pool, logger),
		metrics.Handler,
	)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start(ctx)
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if cron != nil {
		select {
		case <-cron.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn("scheduled run still in progress at shutdown")
		}
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	grpcServer.Stop()
	logger.Info(serviceName + " stopped")
}

// logPlans records the interest plans the calculator will apply.
func logPlans(logger *slog.Logger, catalog *service.PlanCatalog) {
	if catalog.Len() == 0 {
		logger.Warn("no interest plans configured, balances will not change")
		return
	}

	for _, p := range catalog.Plans() {
		attrs := []any{
			"plan_type", p.PlanType(),
			"annual_interest_rate", p.AnnualInterestRate().String(),
			"interest_free_days", p.InterestFreeDays(),
			"interest_ends", p.InterestEnds(),
		}
		if days, ok := p.InterestEndsAfterDays(); ok {
			attrs = append(attrs, "interest_ends_after_days", days)
		}
		logger.Info("interest plan configured", attrs...)
	}
}
