package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// TimeDepositRow is a raw time_deposits row used to seed integration tests.
type TimeDepositRow struct {
	ID       int64
	PlanType string
	Days     int
	Balance  decimal.Decimal
}

// DefaultTimeDeposits mirrors the accounts a freshly provisioned environment is seeded with.
var DefaultTimeDeposits = []TimeDepositRow{
	{ID: 1, PlanType: "basic", Days: 60, Balance: decimal.RequireFromString("1000.00")},
	{ID: 2, PlanType: "student", Days: 100, Balance: decimal.RequireFromString("2000.00")},
	{ID: 3, PlanType: "student", Days: 400, Balance: decimal.RequireFromString("2000.00")},
	{ID: 4, PlanType: "premium", Days: 60, Balance: decimal.RequireFromString("3000.00")},
	{ID: 5, PlanType: "xyz", Days: 60, Balance: decimal.RequireFromString("1000.00")},
}

// SeedTimeDeposits inserts the given rows into time_deposits.
func (pc *PostgresContainer) SeedTimeDeposits(t *testing.T, rows ...TimeDepositRow) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, row := range rows {
		_, err := pc.Pool.Exec(ctx,
			`INSERT INTO time_deposits (id, plan_type, days, balance) VALUES ($1, $2, $3, $4)`,
			row.ID, row.PlanType, row.Days, row.Balance,
		)
		if err != nil {
			t.Fatalf("failed to seed time deposit %d: %v", row.ID, err)
		}
	}
}
