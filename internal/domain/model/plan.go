package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Plan describes how interest accrues for every time deposit subscribed to it.
// Plans are loaded once at startup and never change afterwards.
type Plan struct {
	annualInterestRate    decimal.Decimal
	interestEndsAfterDays *int
	planType              string
	interestFreeDays      int
	interestEnds          bool
}

// NewPlan creates a validated Plan. endsAfterDays is only consulted when interestEnds is true
// and may be nil.
func NewPlan(
	planType string,
	annualInterestRate decimal.Decimal,
	interestFreeDays int,
	interestEnds bool,
	endsAfterDays *int,
) (Plan, error) {
	if strings.TrimSpace(planType) == "" {
		return Plan{}, fmt.Errorf("plan type is required")
	}

	var endsAfter *int
	if endsAfterDays != nil {
		v := *endsAfterDays
		endsAfter = &v
	}

	return Plan{
		planType:              planType,
		annualInterestRate:    annualInterestRate,
		interestFreeDays:      interestFreeDays,
		interestEnds:          interestEnds,
		interestEndsAfterDays: endsAfter,
	}, nil
}

// Matches reports whether planType names this plan, ignoring case.
func (p Plan) Matches(planType string) bool {
	return strings.EqualFold(p.planType, planType)
}

// AccruesInterest reports whether a deposit held for daysHeld days earns interest this cycle.
// Nothing accrues inside the interest-free period, nor once an enabled end-of-interest
// cutoff has been passed.
func (p Plan) AccruesInterest(daysHeld int) bool {
	if daysHeld <= p.interestFreeDays {
		return false
	}
	if !p.interestEnds || p.interestEndsAfterDays == nil {
		return true
	}
	return daysHeld <= *p.interestEndsAfterDays
}

// InterestEndsAfterDays returns the cutoff and whether one is configured.
func (p Plan) InterestEndsAfterDays() (int, bool) {
	if p.interestEndsAfterDays == nil {
		return 0, false
	}
	return *p.interestEndsAfterDays, true
}

// Accessors
func (p Plan) PlanType() string                    { return p.planType }
func (p Plan) AnnualInterestRate() decimal.Decimal { return p.annualInterestRate }
func (p Plan) InterestFreeDays() int               { return p.interestFreeDays }
func (p Plan) InterestEnds() bool                  { return p.interestEnds }
