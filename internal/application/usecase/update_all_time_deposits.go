package usecase

import (
	"context"
	"log/slog"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/domain/port"
	"github.com/xabank/time-deposit/internal/domain/service"
	"github.com/xabank/time-deposit/pkg/observability"
)

// UpdateAllTimeDeposits recalculates the balance of every time deposit and writes the
// whole set back in one batch. Overlapping runs are not serialized: each reads, computes
// and writes independently and the last batch written wins.
type UpdateAllTimeDeposits struct {
	repo       port.TimeDepositRepository
	calculator *service.InterestCalculator
	logger     *slog.Logger
}

func NewUpdateAllTimeDeposits(
	repo port.TimeDepositRepository,
	calculator *service.InterestCalculator,
	logger *slog.Logger,
) *UpdateAllTimeDeposits {
	return &UpdateAllTimeDeposits{
		repo:       repo,
		calculator: calculator,
		logger:     logger,
	}
}

func (uc *UpdateAllTimeDeposits) Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error) {
	if err := validateTraceID(uc.logger, traceID); err != nil {
		return dto.UpdateAllResponse{}, err
	}

	log := observability.WithTrace(uc.logger, traceID, observability.SourceService)
	log.Info("retrieve and update all time deposit accounts")

	deposits, err := retrieveTimeDeposits(ctx, uc.repo, log)
	if err != nil {
		return dto.UpdateAllResponse{}, err
	}

	if len(deposits) == 0 {
		log.Debug("no time deposit accounts found to update")
		return dto.UpdateAllResponse{}, nil
	}

	if err := uc.calculator.UpdateBalances(deposits); err != nil {
		logStageFailure(log, "error computing time deposit balances", err)
		return dto.UpdateAllResponse{}, ErrComputationFailed
	}

	log.Debug("updating time deposit accounts in the repository", "count", len(deposits))
	if err := uc.repo.BatchUpdate(ctx, deposits); err != nil {
		logStageFailure(log, "error saving updated time deposit accounts", err)
		return dto.UpdateAllResponse{}, ErrPersistenceFailed
	}

	log.Info("all time deposit accounts updated", "count", len(deposits))
	return dto.UpdateAllResponse{AccountsProcessed: len(deposits)}, nil
}
