package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/pkg/money"
	"github.com/xabank/time-deposit/pkg/observability"
)

const successMessage = "Success!"

// UpdateAllUseCase recalculates every time deposit balance.
type UpdateAllUseCase interface {
	Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error)
}

// GetAllUseCase lists every time deposit account.
type GetAllUseCase interface {
	Execute(ctx context.Context, traceID string) (dto.TimeDepositAccountsResponse, error)
}

// Compile-time assertion that TimeDepositHandler implements TimeDepositServiceServer.
var _ TimeDepositServiceServer = (*TimeDepositHandler)(nil)

// TimeDepositHandler implements the gRPC TimeDepositServiceServer interface.
type TimeDepositHandler struct {
	UnimplementedTimeDepositServiceServer
	updateAll UpdateAllUseCase
	getAll    GetAllUseCase
	logger    *slog.Logger
}

func NewTimeDepositHandler(updateAll UpdateAllUseCase, getAll GetAllUseCase, logger *slog.Logger) *TimeDepositHandler {
	return &TimeDepositHandler{
		updateAll: updateAll,
		getAll:    getAll,
		logger:    logger,
	}
}

func (h *TimeDepositHandler) UpdateAllAccounts(ctx context.Context, _ *UpdateAllAccountsRequest) (*UpdateAllAccountsResponse, error) {
	traceID := usecase.NewTraceID()
	log := observability.WithTrace(h.logger, traceID, observability.SourceController)
	log.Info("update all time deposit accounts requested", "transport", "grpc")

	result, err := h.updateAll.Execute(ctx, traceID)
	if err != nil {
		log.Error("request failed", "error", err)
		return nil, toStatus(err)
	}

	return &UpdateAllAccountsResponse{
		Message:           successMessage,
		AccountsProcessed: int64(result.AccountsProcessed),
	}, nil
}

func (h *TimeDepositHandler) GetAllAccounts(ctx context.Context, _ *GetAllAccountsRequest) (*GetAllAccountsResponse, error) {
	traceID := usecase.NewTraceID()
	log := observability.WithTrace(h.logger, traceID, observability.SourceController)
	log.Info("get all time deposit accounts requested", "transport", "grpc")

	result, err := h.getAll.Execute(ctx, traceID)
	if err != nil {
		log.Error("request failed", "error", err)
		return nil, toStatus(err)
	}

	accounts := make([]*TimeDepositMsg, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		accounts = append(accounts, &TimeDepositMsg{
			ID:       a.ID,
			PlanType: a.PlanType,
			Balance:  money.NewAmount(a.Balance).String(),
			Days:     int64(a.Days),
		})
	}

	return &GetAllAccountsResponse{
		Accounts: accounts,
		Count:    int64(result.Count),
	}, nil
}

// toStatus maps use case failures onto gRPC status codes.
func toStatus(err error) error {
	switch usecase.KindOf(err) {
	case usecase.KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case usecase.KindRetrieval, usecase.KindComputation, usecase.KindPersistence:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
