package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), expected)
	}
}

// AssertDecimalEqual compares numerically, so "1000" and "1000.00" are equal.
func AssertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	want := decimal.RequireFromString(expected)
	if want.Equal(actual) {
		return true
	}
	return assert.Fail(t, "decimals differ: expected "+want.String()+", got "+actual.String(), msgAndArgs...)
}
