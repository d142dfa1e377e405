package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), expected)
	}
}

// AssertDecimalEqual compares money amounts by value, so "100" equals
// "100.00".
func AssertDecimalEqual(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	if want.Equal(got) {
		return true
	}
	return assert.Fail(t, "decimals differ: want "+want.String()+", got "+got.String(), msgAndArgs...)
}
