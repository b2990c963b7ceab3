package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xabank/time-deposit/internal/application/usecase"
	"github.com/xabank/time-deposit/internal/domain/model"
)

func TestGetAllTimeDeposits_Execute(t *testing.T) {
	t.Run("returns accounts and their count", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{
					record(1, "basic", "1000", 10),
					record(2, "student", "2000.005", 40),
				}, nil
			},
		}
		uc := usecase.NewGetAllTimeDeposits(repo, discardLogger())

		resp, err := uc.Execute(context.Background(), "trace-1")

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		require.Len(t, resp.Accounts, 2)
		assert.Equal(t, int64(1), resp.Accounts[0].ID)
		assert.Equal(t, "basic", resp.Accounts[0].PlanType)
		assert.Equal(t, "1000.00", resp.Accounts[0].Balance.StringFixed(2))
		assert.Equal(t, 10, resp.Accounts[0].Days)
		assert.Equal(t, "2000.01", resp.Accounts[1].Balance.StringFixed(2))
		assert.Equal(t, 0, repo.batchUpdateCalls)
	})

	t.Run("empty store yields count zero", func(t *testing.T) {
		uc := usecase.NewGetAllTimeDeposits(&mockTimeDepositRepository{}, discardLogger())

		resp, err := uc.Execute(context.Background(), "trace-1")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Accounts)
		assert.Empty(t, resp.Accounts)
	})

	t.Run("empty trace id fails validation without I/O", func(t *testing.T) {
		repo := &mockTimeDepositRepository{}
		uc := usecase.NewGetAllTimeDeposits(repo, discardLogger())

		_, err := uc.Execute(context.Background(), "")

		assert.ErrorIs(t, err, usecase.ErrInvalidTraceID)
		assert.Equal(t, 0, repo.findAllCalls)
	})

	t.Run("store failure is a retrieval error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return nil, errors.New("connection reset")
			},
		}
		uc := usecase.NewGetAllTimeDeposits(repo, discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		require.Error(t, err)
		assert.Equal(t, usecase.KindRetrieval, usecase.KindOf(err))
		assert.Equal(t, usecase.MsgRetrievalFailed, err.Error())
	})

	t.Run("record without plan type is a retrieval error", func(t *testing.T) {
		repo := &mockTimeDepositRepository{
			findAllFunc: func(_ context.Context) ([]*model.TimeDepositRecord, error) {
				return []*model.TimeDepositRecord{{ID: 1, Balance: decPtr("1")}}, nil
			},
		}
		uc := usecase.NewGetAllTimeDeposits(repo, discardLogger())

		_, err := uc.Execute(context.Background(), "trace-1")

		assert.ErrorIs(t, err, usecase.ErrRetrievalFailed)
	})
}
