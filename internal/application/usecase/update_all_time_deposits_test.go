package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/internal/domain/model"
	"github.com/xabank/time-deposit/internal/domain/service"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func record(id int64, planType, balance string, days int) *model.TimeDepositRecord {
	return &model.TimeDepositRecord{ID: id, PlanType: strPtr(planType), Balance: decPtr(balance), Days: days}
}

func newTestCalculator(t *testing.T) *service.InterestCalculator {
	t.Helper()
	endsAfter := 365
	basic, err := model.NewPlan("BASIC", decimal.RequireFromString("0.01"), 30, false, nil)
	require.NoError(t, err)
	student, err := model.NewPlan("STUDENT", decimal.RequireFromString("0.03"), 30, true, &endsAfter)
	require.NoError(t, err)
	premium, err := model.NewPlan("PREMIUM", decimal.RequireFromString("0.05"), 45, false, nil)
	require.NoError(t, err)
	return service.NewInterestCalculator(service.NewPlanCatalog([]model.Plan{basic, student, premium}))
}

func TestUpdateAllTimeDeposits_Execute(t *testing.T) {
	t.Run("recalculates and persists every account", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{
					record(1, "basic", "1000.00", 60),
					record(2, "student", "2000.00", 100),
					record(3, "student", "2000.00", 400),
					record(4, "premium", "3000.00", 60),
					record(5, "xyz", "1000.00", 60),
				}, nil
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		resp, err := uc.Execute(context.Background(), usecase.NewTraceID())

		require.NoError(t, err)
		assert.Equal(t, 5, resp.AccountsProcessed)
		assert.Equal(t, 1, repo.batchUpdateCalls)
		require.Len(t, repo.updated, 5)

		want := []string{"1000.83", "2005.00", "2000.00", "3012.50", "1000.00"}
		for i, w := range want {
			assert.Equal(t, w, repo.updated[i].Balance().StringFixed(2), "account %d", repo.updated[i].ID())
		}
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{}, nil
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		resp, err := uc.Execute(context.Background(), "trace-1")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.AccountsProcessed)
		assert.Equal(t, 1, repo.findAllCalls)
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("empty trace id fails validation without I/O", func(t *testing.T) {
		repo := &mockTimeDepositRepository{}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		_, err := uc.Execute(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, usecase.KindValidation, usecase.KindOf(err))
		assert.Equal(t, usecase.MsgTraceIDNullOrEmpty, err.Error())
		assert.Equal(t, 0, repo.findAllCalls)
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("store read failure is a retrieval error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return nil, errors.New("database unavailable")
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		require.Error(t, err)
		assert.Equal(t, usecase.KindRetrieval, usecase.KindOf(err))
		assert.Equal(t, usecase.MsgRetrievalFailed, err.Error())
		assert.NotContains(t, err.Error(), "database unavailable")
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("invalid record is a retrieval error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{
					record(1, "basic", "1000.00", 60),
					{ID: 2, PlanType: strPtr("basic"), Days: 60},
				}, nil
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		require.Error(t, err)
		assert.Equal(t, usecase.KindRetrieval, usecase.KindOf(err))
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("nil record is a retrieval error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{nil}, nil
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		assert.ErrorIs(t, err, usecase.ErrRetrievalFailed)
	})

	t.Run("calculation failure is a computation error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{record(1, "basic", "1000.00", 60)}, nil
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, service.NewInterestCalculator(nil), discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		require.Error(t, err)
		assert.Equal(t, usecase.KindComputation, usecase.KindOf(err))
		assert.Equal(t, usecase.MsgComputationFailed, err.Error())
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("batch write failure is a persistence error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{record(1, "basic", "1000.00", 60)}, nil
			},
			batchUpdateFunc: func(_ context.Context, _ []model.TimeDeposit) error {
				return errors.New("deadlock detected")
			},
		}
		uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		require.Error(t, err)
		assert.Equal(t, usecase.KindPersistence, usecase.KindOf(err))
		assert.Equal(t, usecase.MsgPersistenceFailed, err.Error())
		assert.Equal(t, 1, repo.batchUpdateCalls)
	})
}

func TestUpdateAllTimeDeposits_LogsOriginalCause(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	repo := &mockTimeDepositRepository{
		findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
			return []*model.TimeDepositRecord{record(1, "basic", "1000.00", 60)}, nil
		},
		batchUpdateFunc: func(_ context.Context, _ []model.TimeDeposit) error {
			return errors.New("deadlock detected")
		},
	}
	uc := usecase.NewUpdateAllTimeDeposits(repo, newTestCalculator(t), logger)

	_, err := uc.Execute(context.Background(), "trace-42")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "trace_id=trace-42")
	assert.Contains(t, out, "source=service")
	assert.Contains(t, out, "deadlock detected")
	assert.Contains(t, out, "*errors.errorString")
}
