package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xabank/time-deposit/internal/domain/model"
	"github.com/xabank/time-deposit/pkg/money"
)

// interestScale is the precision of the intermediate monthly interest figure.
const interestScale int32 = 8

var monthsPerYear = decimal.NewFromInt(12)

// InterestCalculator is a domain service that recomputes time deposit balances
// from the plan each deposit is subscribed to.
type InterestCalculator struct {
	catalog *PlanCatalog
}

// NewInterestCalculator creates a new InterestCalculator backed by the given catalog.
func NewInterestCalculator(catalog *PlanCatalog) *InterestCalculator {
	return &InterestCalculator{catalog: catalog}
}

// ComputeNewBalance returns the balance after one month of interest under plan.
//
// The monthly interest is balance * rate / 12 rounded half-up to 8 digits and then,
// as a separate step, to 2 digits. The sum with the balance is rounded to 2 digits.
// The two interest roundings must stay separate steps; fusing them changes
// results at halfway ties.
func ComputeNewBalance(balance decimal.Decimal, daysHeld int, plan model.Plan) decimal.Decimal {
	interest := decimal.Zero

	if plan.AccruesInterest(daysHeld) {
		raw := balance.Mul(plan.AnnualInterestRate()).DivRound(monthsPerYear, interestScale)
		interest = raw.Round(money.Scale)
	}

	return money.Normalize(balance.Add(interest))
}

// UpdateBalances recomputes the balance of every deposit in place. Deposits whose plan
// type matches no configured plan keep their balance. Any failure fails the whole batch.
func (c *InterestCalculator) UpdateBalances(deposits []model.TimeDeposit) (err error) {
	if c == nil || c.catalog == nil {
		return fmt.Errorf("interest calculator has no plan catalog")
	}

	var current model.TimeDeposit
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compute balance for time deposit %d: %v", current.ID(), r)
		}
	}()

	for i := range deposits {
		current = deposits[i]

		plan, ok := c.catalog.Lookup(current.PlanType())
		if !ok {
			continue
		}

		deposits[i] = current.WithBalance(ComputeNewBalance(current.Balance(), current.Days(), plan))
	}

	return nil
}
