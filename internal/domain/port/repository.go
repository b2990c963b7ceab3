package port

import (
	"context"

	"github.com/xabank/time-deposit/internal/domain/model"
)

// TimeDepositRepository defines persistence operations for time deposit accounts.
type TimeDepositRepository interface {
	// FindAll returns every stored time deposit. An empty store yields an empty slice, not an error.
	// Elements may be nil or carry missing fields; callers validate them before use.
	FindAll(ctx context.Context) ([]*model.TimeDepositRecord, error)
	// BatchUpdate writes plan type, balance and days for every deposit atomically.
	// Deposits whose id matches no stored row are skipped.
	BatchUpdate(ctx context.Context, deposits []model.TimeDeposit) error
}
