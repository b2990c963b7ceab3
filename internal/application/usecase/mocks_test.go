package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/xabank/time-deposit/internal/domain/model"
)

type mockTimeDepositRepository struct {
	findAllFunc     func(ctx context.Context) ([]*model.TimeDepositRecord, error)
	batchUpdateFunc func(ctx context.Context, deposits []model.TimeDeposit) error

	findAllCalls     int
	batchUpdateCalls int
	updated          []model.TimeDeposit
}

func (m *mockTimeDepositRepository) FindAll(ctx context.Context) ([]*model.TimeDepositRecord, error) {
	m.findAllCalls++
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTimeDepositRepository) BatchUpdate(ctx context.Context, deposits []model.TimeDeposit) error {
	m.batchUpdateCalls++
	m.updated = append([]model.TimeDeposit(nil), deposits...)
	if m.batchUpdateFunc != nil {
		return m.batchUpdateFunc(ctx, deposits)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
