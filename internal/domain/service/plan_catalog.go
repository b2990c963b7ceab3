package service

import (
	"github.com/xabank/time-deposit/internal/domain/model"
)

// PlanCatalog holds the plans configured at startup, in declared order.
// It is read-only after construction and safe for concurrent use.
type PlanCatalog struct {
	plans []model.Plan
}

// NewPlanCatalog creates a catalog from the configured plans. A nil or empty slice
// yields a catalog in which every lookup misses.
func NewPlanCatalog(plans []model.Plan) *PlanCatalog {
	c := make([]model.Plan, len(plans))
	copy(c, plans)
	return &PlanCatalog{plans: c}
}

// Lookup returns the first plan, in declared order, whose type matches planType
// case-insensitively. Duplicate plan types therefore resolve to the earliest declaration.
func (c *PlanCatalog) Lookup(planType string) (model.Plan, bool) {
	for _, plan := range c.plans {
		if plan.Matches(planType) {
			return plan, true
		}
	}
	return model.Plan{}, false
}

// Plans returns a copy of the configured plans.
func (c *PlanCatalog) Plans() []model.Plan {
	out := make([]model.Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Len returns the number of configured plans.
func (c *PlanCatalog) Len() int {
	return len(c.plans)
}
