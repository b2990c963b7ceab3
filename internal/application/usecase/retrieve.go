package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xabank/time-deposit/internal/application/mapper"
	"github.com/xabank/time-deposit/internal/domain/model"
	"github.com/xabank/time-deposit/internal/domain/port"
)

// retrieveTimeDeposits reads every stored account and converts it for computation.
// Any read or conversion failure is logged with its original type and reported as ErrRetrievalFailed.
func retrieveTimeDeposits(ctx context.Context, repo port.TimeDepositRepository, log *slog.Logger) ([]model.TimeDeposit, error) {
	records, err := repo.FindAll(ctx)
	if err != nil {
		logStageFailure(log, "error retrieving time deposit accounts", err)
		return nil, ErrRetrievalFailed
	}

	deposits := make([]model.TimeDeposit, 0, len(records))
	for _, record := range records {
		deposit, err := mapper.ToComputable(record)
		if err != nil {
			logStageFailure(log, "error converting time deposit account", err)
			return nil, ErrRetrievalFailed
		}
		log.Debug("time deposit entity converted", "deposit", deposit.String())
		deposits = append(deposits, deposit)
	}

	if len(deposits) == 0 {
		log.Debug("no time deposit accounts found")
	} else {
		log.Debug("fetched time deposit accounts", "count", len(deposits))
	}

	return deposits, nil
}

// logStageFailure records the original error before it is replaced by a classified one.
func logStageFailure(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error_type", fmt.Sprintf("%T", err), "error", err.Error())
}
