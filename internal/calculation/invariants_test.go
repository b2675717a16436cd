package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsim/debt-projector/internal/domain"
	"github.com/revsim/debt-projector/pkg/money"
)

// Property-style tests over whole trajectories. These pin down the structural
// guarantees of a simulation run rather than specific numbers.

var invariantCases = []domain.SimulationParams{
	params(300000, 0, 5000, "18.0"),
	params(300000, 20000, 30000, "18.0"),
	params(1_000_000, 0, 1000, "18.0"),
	params(100000, 1000, 2000, "12"),
	params(12000, 0, 4000, "0"),
	params(0, 0, 5000, "18.0"),
	params(500, 0, 10000, "36.5"),
	params(250000, 15000, 20000, "21.9"),
}

func TestInvariant_MonthIndexesAreSequential(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		for i, rec := range result.Trajectory {
			assert.Equal(t, i, rec.Month, "trajectory row %d has month %d", i, rec.Month)
		}
	}
}

func TestInvariant_MonthZeroIsInitialState(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		require.NotEmpty(t, result.Trajectory)
		first := result.Trajectory[0]
		assert.Equal(t, 0, first.Month)
		assert.True(t, first.Balance.Equal(p.InitialBalance),
			"month 0 balance %s != initial %s", first.Balance, p.InitialBalance)
		assert.True(t, first.CumulativeInterest.IsZero())
		assert.True(t, first.CumulativePrincipal.IsZero())
	}
}

func TestInvariant_BalanceNeverNegative(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		for _, rec := range result.Trajectory {
			assert.False(t, rec.Balance.IsNegative(),
				"month %d balance %s is negative", rec.Month, rec.Balance)
		}
	}
}

func TestInvariant_CumulativeTotalsNonDecreasing(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		for i := 1; i < len(result.Trajectory); i++ {
			prev, curr := result.Trajectory[i-1], result.Trajectory[i]
			assert.True(t, curr.CumulativeInterest.GreaterThanOrEqual(prev.CumulativeInterest),
				"cumulative interest decreased at month %d", curr.Month)
			assert.True(t, curr.CumulativePrincipal.GreaterThanOrEqual(prev.CumulativePrincipal),
				"cumulative principal decreased at month %d", curr.Month)
		}
	}
}

func TestInvariant_FiniteRunsEndCleared(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		if result.IsInfinite {
			continue
		}
		last := result.Trajectory[len(result.Trajectory)-1]
		cleared := last.Balance.IsZero() ||
			last.Balance.LessThanOrEqual(p.MonthlyRepayment) ||
			last.Balance.LessThanOrEqual(p.MonthlyNewCharge.Mul(StableBalanceChargeFactor))
		assert.True(t, cleared,
			"finite run ends with unexplained balance %s (repayment %s, charge %s)",
			last.Balance, p.MonthlyRepayment, p.MonthlyNewCharge)
	}
}

func TestInvariant_TotalsMatchTrajectory(t *testing.T) {
	for _, p := range invariantCases {
		result := Simulate(p)
		if len(result.Trajectory) == 0 {
			continue
		}
		last := result.Trajectory[len(result.Trajectory)-1]
		assert.True(t, result.TotalInterest.Equal(last.CumulativeInterest))
	}
}

// With no new charges, the standalone projection and the simulator follow the
// exact same path, so at every month: interest paid so far plus interest still
// projected equals the projection from the starting balance.
func TestInvariant_RemainingInterestConsistentWithoutCharges(t *testing.T) {
	p := params(300000, 0, 5000, "18.0")
	result := Simulate(p)
	require.False(t, result.IsInfinite)

	expected := result.Trajectory[0].RemainingInterest
	for _, rec := range result.Trajectory {
		total := rec.CumulativeInterest.Add(rec.RemainingInterest)
		assert.True(t, total.Equal(expected),
			"month %d: paid %s + remaining %s != projected %s",
			rec.Month, rec.CumulativeInterest, rec.RemainingInterest, expected)
	}
}

func TestInvariant_RemainingInterestZeroAtPayoff(t *testing.T) {
	result := Simulate(params(1000, 0, 100000, "12"))
	require.False(t, result.IsInfinite)
	last := result.Trajectory[len(result.Trajectory)-1]
	require.True(t, last.Balance.IsZero())
	assert.True(t, last.RemainingInterest.IsZero())
}

func TestInvariant_ZeroRateMeansZeroInterest(t *testing.T) {
	result := Simulate(params(50000, 1000, 5000, "0"))
	assert.True(t, result.TotalInterest.IsZero())
	for _, rec := range result.Trajectory {
		assert.True(t, rec.InterestPaid.IsZero())
		assert.True(t, rec.RemainingInterest.IsZero())
	}
}

func TestInvariant_EstimatorMatchesFloorRule(t *testing.T) {
	// The estimator must use the identical truncation as the simulator:
	// one month on 100001 at 11.99% is floor(100001*11.99/1200) = 999.
	rate := decimal.RequireFromString("11.99")
	interest := money.New(100001).MonthlyInterest(rate)
	assert.True(t, interest.Equal(money.New(999)), "interest = %s", interest)
}
