package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/pkg/observability"
)

// Updater runs one full recalculation of every time deposit.
type Updater interface {
	Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error)
}

// Config controls when the recalculation job fires.
type Config struct {
	// Schedule is a five-field cron expression.
	Schedule string
	// LastDayOnly skips firings that are not on the last day of the month.
	// robfig/cron has no "L" day token, so month-end is expressed as
	// "0 0 28-31 * *" plus this guard.
	LastDayOnly bool
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the time source used by the month-end guard.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler triggers the recalculation on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	updater Updater
	logger  *slog.Logger
	config  Config
	now     func() time.Time
}

func New(updater Updater, logger *slog.Logger, cfg Config, opts ...Option) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger))),
		updater: updater,
		logger:  logger,
		config:  cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the recalculation job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.Schedule, s.tick); err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q: %w", s.config.Schedule, err)
	}
	s.logger.Info("scheduled time deposit update job",
		"schedule", s.config.Schedule,
		"last_day_only", s.config.LastDayOnly,
		"source", observability.SourceScheduler,
	)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler; the returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) tick() {
	if s.config.LastDayOnly && !isLastDayOfMonth(s.now()) {
		return
	}
	s.RunOnce(context.Background())
}

// RunOnce performs one recalculation under a fresh trace id. Failures are logged, not returned.
func (s *Scheduler) RunOnce(ctx context.Context) {
	traceID := usecase.NewTraceID()
	log := observability.WithTrace(s.logger, traceID, observability.SourceScheduler)

	log.Info("starting scheduled time deposit update")
	resp, err := s.updater.Execute(ctx, traceID)
	if err != nil {
		log.Error("scheduled time deposit update failed", "error", err, "kind", usecase.KindOf(err).String())
		return
	}
	log.Info("scheduled time deposit update finished", "accounts_processed", resp.AccountsProcessed)
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
