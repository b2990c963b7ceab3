package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xabank/time-deposit/internal/domain/model"
	"github.com/xabank/time-deposit/internal/domain/port"
	"github.com/xabank/time-deposit/pkg/money"
	pgpkg "github.com/xabank/time-deposit/pkg/postgres"
)

// Compile-time interface check.
var _ port.TimeDepositRepository = (*TimeDepositRepo)(nil)

// TimeDepositRepo implements TimeDepositRepository using PostgreSQL.
type TimeDepositRepo struct {
	pool *pgxpool.Pool
}

func NewTimeDepositRepo(pool *pgxpool.Pool) *TimeDepositRepo {
	return &TimeDepositRepo{pool: pool}
}

// FindAll returns every stored account ordered by id. Nullable columns are kept
// as nil so conversion can reject them.
func (r *TimeDepositRepo) FindAll(ctx context.Context) ([]*model.TimeDepositRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, plan_type, days, balance
		FROM time_deposits
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query time deposits: %w", err)
	}
	defer rows.Close()

	records := make([]*model.TimeDepositRecord, 0)
	for rows.Next() {
		var (
			id       int64
			planType *string
			days     *int32
			balance  decimal.NullDecimal
		)

		if err := rows.Scan(&id, &planType, &days, &balance); err != nil {
			return nil, fmt.Errorf("scan time deposit: %w", err)
		}

		record := &model.TimeDepositRecord{ID: id, PlanType: planType}
		if days != nil {
			record.Days = int(*days)
		}
		if balance.Valid {
			b := balance.Decimal
			record.Balance = &b
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time deposits: %w", err)
	}

	return records, nil
}

// BatchUpdate writes every deposit in one transaction. Either all rows are updated or none.
func (r *TimeDepositRepo) BatchUpdate(ctx context.Context, deposits []model.TimeDeposit) error {
	if len(deposits) == 0 {
		return nil
	}

	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, d := range deposits {
			batch.Queue(`
				UPDATE time_deposits
				SET plan_type = $1, balance = $2, days = $3
				WHERE id = $4
			`, d.PlanType(), money.Normalize(d.Balance()), d.Days(), d.ID())
		}

		results := tx.SendBatch(ctx, batch)
		for _, d := range deposits {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("update time deposit %d: %w", d.ID(), err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close update batch: %w", err)
		}
		return nil
	})
}
