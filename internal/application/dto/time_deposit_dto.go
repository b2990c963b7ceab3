package dto

import (
	"github.com/shopspring/decimal"
)

// TimeDepositDTO transfers a time deposit account between layers.
type TimeDepositDTO struct {
	PlanType string
	Balance  decimal.Decimal
	ID       int64
	Days     int
}

// TimeDepositAccountsResponse is the output DTO for listing all time deposit accounts.
// Count always equals len(Accounts).
type TimeDepositAccountsResponse struct {
	Accounts []TimeDepositDTO
	Count    int
}

// UpdateAllResponse is the output DTO for a balance recalculation run.
type UpdateAllResponse struct {
	AccountsProcessed int
}
