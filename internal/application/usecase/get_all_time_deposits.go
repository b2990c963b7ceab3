package usecase

import (
	"context"
	"log/slog"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/domain/port"
	"github.com/xabank/time-deposit/pkg/observability"
)

// GetAllTimeDeposits lists every time deposit account with its current balance.
type GetAllTimeDeposits struct {
	repo   port.TimeDepositRepository
	logger *slog.Logger
}

func NewGetAllTimeDeposits(repo port.TimeDepositRepository, logger *slog.Logger) *GetAllTimeDeposits {
	return &GetAllTimeDeposits{repo: repo, logger: logger}
}

func (uc *GetAllTimeDeposits) Execute(ctx context.Context, traceID string) (dto.TimeDepositAccountsResponse, error) {
	if err := validateTraceID(uc.logger, traceID); err != nil {
		return dto.TimeDepositAccountsResponse{}, err
	}

	log := observability.WithTrace(uc.logger, traceID, observability.SourceService)
	log.Info("fetching all time deposit accounts")

	deposits, err := retrieveTimeDeposits(ctx, uc.repo, log)
	if err != nil {
		return dto.TimeDepositAccountsResponse{}, err
	}

	accounts := make([]dto.TimeDepositDTO, 0, len(deposits))
	for _, d := range deposits {
		accounts = append(accounts, dto.TimeDepositDTO{
			ID:       d.ID(),
			PlanType: d.PlanType(),
			Balance:  d.Balance(),
			Days:     d.Days(),
		})
	}

	return dto.TimeDepositAccountsResponse{
		Accounts: accounts,
		Count:    len(accounts),
	}, nil
}
