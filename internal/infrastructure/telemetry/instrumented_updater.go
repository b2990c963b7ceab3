package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/application/usecase"
)

const (
	metricRuns     = "timedeposit_update_runs_total"
	metricAccounts = "timedeposit_update_accounts"
	metricDuration = "timedeposit_update_duration_seconds"

	outcomeSuccess = "success"
)

// Updater is the recalculation entry point being measured.
type Updater interface {
	Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error)
}

// InstrumentedUpdater records run outcome, accounts processed and duration around an Updater.
type InstrumentedUpdater struct {
	next     Updater
	runs     metric.Int64Counter
	accounts metric.Int64Histogram
	duration metric.Float64Histogram
}

func NewInstrumentedUpdater(next Updater, meter metric.Meter) (*InstrumentedUpdater, error) {
	runs, err := meter.Int64Counter(metricRuns,
		metric.WithDescription("Time deposit recalculation runs by outcome"))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRuns, err)
	}

	accounts, err := meter.Int64Histogram(metricAccounts,
		metric.WithDescription("Accounts updated per successful recalculation run"))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricAccounts, err)
	}

	duration, err := meter.Float64Histogram(metricDuration,
		metric.WithDescription("Duration of time deposit recalculation runs"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricDuration, err)
	}

	return &InstrumentedUpdater{
		next:     next,
		runs:     runs,
		accounts: accounts,
		duration: duration,
	}, nil
}

func (u *InstrumentedUpdater) Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error) {
	start := time.Now()
	resp, err := u.next.Execute(ctx, traceID)

	outcome := outcomeSuccess
	if err != nil {
		outcome = usecase.KindOf(err).String()
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	u.runs.Add(ctx, 1, attrs)
	u.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err == nil {
		u.accounts.Record(ctx, int64(resp.AccountsProcessed))
	}

	return resp, err
}
