package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xabank/time-deposit/pkg/money"
)

// TimeDepositRecord is a time deposit row exactly as the store returned it.
// Nullable columns are pointers so that missing values can be detected before computation.
type TimeDepositRecord struct {
	PlanType *string
	Balance  *decimal.Decimal
	ID       int64
	Days     int
}

// TimeDeposit is the computation-ready view of an account. Its balance is always held
// at money.Scale fractional digits.
type TimeDeposit struct {
	balance  decimal.Decimal
	planType string
	id       int64
	days     int
}

// NewTimeDeposit creates a TimeDeposit, normalizing the balance to two fractional digits.
func NewTimeDeposit(id int64, planType string, balance decimal.Decimal, days int) TimeDeposit {
	return TimeDeposit{
		id:       id,
		planType: planType,
		balance:  money.Normalize(balance),
		days:     days,
	}
}

// WithBalance returns a copy carrying the given balance, normalized to two fractional digits.
func (d TimeDeposit) WithBalance(balance decimal.Decimal) TimeDeposit {
	updated := d
	updated.balance = money.Normalize(balance)
	return updated
}

func (d TimeDeposit) String() string {
	return fmt.Sprintf("TimeDeposit{id=%d, planType=%s, balance=%s, days=%d}",
		d.id, d.planType, d.balance.StringFixed(money.Scale), d.days)
}

// Accessors
func (d TimeDeposit) ID() int64                { return d.id }
func (d TimeDeposit) PlanType() string         { return d.planType }
func (d TimeDeposit) Balance() decimal.Decimal { return d.balance }
func (d TimeDeposit) Days() int                { return d.days }
