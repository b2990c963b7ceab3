package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xabank/time-deposit/internal/domain/model"
)

func intPtr(v int) *int { return &v }

func TestNewPlan(t *testing.T) {
	t.Run("creates plan with all fields", func(t *testing.T) {
		plan, err := model.NewPlan("STUDENT", decimal.RequireFromString("0.03"), 30, true, intPtr(365))
		require.NoError(t, err)

		assert.Equal(t, "STUDENT", plan.PlanType())
		assert.True(t, plan.AnnualInterestRate().Equal(decimal.RequireFromString("0.03")))
		assert.Equal(t, 30, plan.InterestFreeDays())
		assert.True(t, plan.InterestEnds())
		days, ok := plan.InterestEndsAfterDays()
		assert.True(t, ok)
		assert.Equal(t, 365, days)
	})

	t.Run("rejects blank plan type", func(t *testing.T) {
		_, err := model.NewPlan("  ", decimal.RequireFromString("0.01"), 30, false, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plan type is required")
	})

	t.Run("copies the cutoff", func(t *testing.T) {
		cutoff := 365
		plan, err := model.NewPlan("STUDENT", decimal.RequireFromString("0.03"), 30, true, &cutoff)
		require.NoError(t, err)

		cutoff = 10
		days, _ := plan.InterestEndsAfterDays()
		assert.Equal(t, 365, days)
	})
}

func TestPlan_Matches(t *testing.T) {
	plan, err := model.NewPlan("BASIC", decimal.RequireFromString("0.01"), 30, false, nil)
	require.NoError(t, err)

	assert.True(t, plan.Matches("BASIC"))
	assert.True(t, plan.Matches("basic"))
	assert.True(t, plan.Matches("Basic"))
	assert.False(t, plan.Matches("BASIC "))
	assert.False(t, plan.Matches("premium"))
	assert.False(t, plan.Matches(""))
}

func TestPlan_AccruesInterest(t *testing.T) {
	tests := []struct {
		name      string
		freeDays  int
		ends      bool
		endsAfter *int
		daysHeld  int
		want      bool
	}{
		{name: "inside free period", freeDays: 30, daysHeld: 10, want: false},
		{name: "exactly at free period", freeDays: 30, daysHeld: 30, want: false},
		{name: "past free period, no end", freeDays: 30, daysHeld: 31, want: true},
		{name: "ends disabled ignores cutoff", freeDays: 30, ends: false, endsAfter: intPtr(60), daysHeld: 400, want: true},
		{name: "ends enabled without cutoff", freeDays: 30, ends: true, daysHeld: 400, want: true},
		{name: "within cutoff", freeDays: 30, ends: true, endsAfter: intPtr(365), daysHeld: 100, want: true},
		{name: "exactly at cutoff", freeDays: 30, ends: true, endsAfter: intPtr(365), daysHeld: 365, want: true},
		{name: "past cutoff", freeDays: 30, ends: true, endsAfter: intPtr(365), daysHeld: 366, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := model.NewPlan("P", decimal.RequireFromString("0.01"), tt.freeDays, tt.ends, tt.endsAfter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.AccruesInterest(tt.daysHeld))
		})
	}
}
