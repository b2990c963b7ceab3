package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/xabank/time-deposit/internal/application/dto"
	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/pkg/money"
	"github.com/xabank/time-deposit/pkg/observability"
)

// successBody is returned by a completed recalculation.
const successBody = "Success!"

// UpdateAllUseCase recalculates every time deposit balance.
type UpdateAllUseCase interface {
	Execute(ctx context.Context, traceID string) (dto.UpdateAllResponse, error)
}

// GetAllUseCase lists every time deposit account.
type GetAllUseCase interface {
	Execute(ctx context.Context, traceID string) (dto.TimeDepositAccountsResponse, error)
}

// TimeDepositHandler serves the time deposit HTTP endpoints.
type TimeDepositHandler struct {
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

type accountResponse struct {
	ID       int64        `json:"id"`
	PlanType string       `json:"planType"`
	Balance  money.Amount `json:"balance"`
	Days     int          `json:"days"`
}

type accountsResponse struct {
	Count    int               `json:"count"`
	Accounts []accountResponse `json:"accounts"`
}

// UpdateAllAccounts handles PATCH /update-all-accounts.
func (h *TimeDepositHandler) UpdateAllAccounts(w http.ResponseWriter, r *http.Request) {
	traceID := usecase.NewTraceID()
	log := observability.WithTrace(h.logger, traceID, observability.SourceController)
	log.Info("update all time deposit accounts requested")

	if _, err := h.updateAll.Execute(r.Context(), traceID); err != nil {
		h.writeError(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(successBody))
}

// GetAllAccounts handles GET /get-all-accounts.
func (h *TimeDepositHandler) GetAllAccounts(w http.ResponseWriter, r *http.Request) {
	traceID := usecase.NewTraceID()
	log := observability.WithTrace(h.logger, traceID, observability.SourceController)
	log.Info("get all time deposit accounts requested")

	result, err := h.getAll.Execute(r.Context(), traceID)
	if err != nil {
		h.writeError(w, log, err)
		return
	}

	resp := accountsResponse{
		Count:    result.Count,
		Accounts: make([]accountResponse, 0, len(result.Accounts)),
	}
	for _, a := range result.Accounts {
		resp.Accounts = append(resp.Accounts, accountResponse{
			ID:       a.ID,
			PlanType: a.PlanType,
			Balance:  money.NewAmount(a.Balance),
			Days:     a.Days,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeError maps classified failures to 400 with their fixed message and anything else to 500.
func (h *TimeDepositHandler) writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	if usecase.KindOf(err) != usecase.KindUnclassified {
		status = http.StatusBadRequest
	}
	log.Error("request failed", "status", status, "error", err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
