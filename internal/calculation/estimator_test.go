package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revsim/debt-projector/pkg/money"
)

func TestProjectedInterest_NonPositiveBalance(t *testing.T) {
	rate := decimal.NewFromFloat(18.0)
	assert.True(t, ProjectedInterest(money.Zero(), money.New(5000), rate).IsZero())
	assert.True(t, ProjectedInterest(money.New(-100), money.New(5000), rate).IsZero())
}

func TestProjectedInterest_ZeroRate(t *testing.T) {
	// No interest accrues, the projection just amortizes principal.
	got := ProjectedInterest(money.New(10000), money.New(1000), decimal.Zero)
	assert.True(t, got.IsZero(), "zero rate should project zero interest, got %s", got)
}

func TestProjectedInterest_KnownPayoff(t *testing.T) {
	// 1000 at 12% annual (1% per month), repaying 500:
	//   month 1: interest 10, principal 490, balance 510
	//   month 2: interest 5, principal 495, balance 15
	//   month 3: interest 0, final payment 15, balance 0
	got := ProjectedInterest(money.New(1000), money.New(500), decimal.NewFromInt(12))
	assert.True(t, got.Equal(money.New(15)), "expected 15 total interest, got %s", got)
}

func TestProjectedInterest_FinalPaymentCapped(t *testing.T) {
	// Repayment far above the balance: cleared in one month, one month's interest.
	got := ProjectedInterest(money.New(1000), money.New(100000), decimal.NewFromInt(12))
	assert.True(t, got.Equal(money.New(10)), "expected exactly one month of interest, got %s", got)
}

func TestProjectedInterest_CapReturnsPartialAccumulation(t *testing.T) {
	// Repayment below the monthly interest never clears the balance. The
	// projection gives up at its month cap and returns what accumulated, it does
	// not signal non-convergence.
	got := ProjectedInterest(money.New(1_000_000), money.New(1000), decimal.NewFromFloat(18.0))
	assert.True(t, got.IsPositive(), "capped projection should still return accumulated interest")
}

func TestProjectedInterest_ZeroRepayment(t *testing.T) {
	// Nothing is ever paid; interest accrues for the full horizon.
	got := ProjectedInterest(money.New(1000), money.Zero(), decimal.NewFromInt(12))
	assert.True(t, got.IsPositive())
}

func TestProjectedInterest_Deterministic(t *testing.T) {
	rate := decimal.NewFromFloat(18.0)
	a := ProjectedInterest(money.New(300000), money.New(5000), rate)
	b := ProjectedInterest(money.New(300000), money.New(5000), rate)
	assert.True(t, a.Equal(b))
}
