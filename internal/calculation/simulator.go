package calculation

import (
	"github.com/revsim/debt-projector/internal/domain"
	"github.com/revsim/debt-projector/pkg/money"
)

// Simulate runs the month-by-month amortization of a revolving balance under
// fixed repayment. Each month accrues truncated interest, applies the
// repayment (interest first, remainder to principal), then adds the recurring
// new charge. The run stops on payoff, on a residual balance too small to
// warrant another month, on a stabilized steady state, or at the 50-year cap.
//
// Simulate is a pure function: identical params always yield an identical
// result, and no error conditions exist. IsInfinite is the one failure-like
// outcome; when set, Months and the totals describe the truncated state at
// which the debt was classified as unrecoverable, not a final payoff.
func Simulate(params domain.SimulationParams) domain.SimulationResult {
	balance := params.InitialBalance.FloorAtZero()

	totalInterest := money.Zero()
	totalPaid := money.Zero()
	cumulativePrincipal := money.Zero()

	trajectory := []domain.MonthRecord{{
		Month:             0,
		Balance:           balance,
		RemainingInterest: ProjectedInterest(balance, params.MonthlyRepayment, params.AnnualInterestRate),
	}}

	runawayThreshold := money.Max(
		params.InitialBalance.MulInt(RunawayBalanceFactor),
		money.New(RunawayBalanceFloor),
	)
	stabilizationTolerance := money.New(StabilizationTolerance)
	stableBalanceCeiling := params.MonthlyNewCharge.Mul(StableBalanceChargeFactor)

	m := 0
	isInfinite := false
	settled := !balance.IsPositive()

	for balance.IsPositive() && m < MaxSimulationMonths {
		m++

		interest := balance.MonthlyInterest(params.AnnualInterestRate)
		payment := money.Min(params.MonthlyRepayment, balance.Add(interest))
		principal := payment.Sub(interest)

		// Runaway guard: once the balance has blown far past its starting
		// point there is no path back, stop before growing the numbers
		// further.
		if balance.GreaterThan(runawayThreshold) {
			isInfinite = true
			break
		}

		previousBalance := balance
		balance = balance.Sub(principal).Add(params.MonthlyNewCharge).FloorAtZero()

		totalInterest = totalInterest.Add(interest)
		totalPaid = totalPaid.Add(payment)
		cumulativePrincipal = cumulativePrincipal.Add(principal)

		trajectory = append(trajectory, domain.MonthRecord{
			Month:               m,
			Balance:             balance,
			PrincipalPaid:       principal,
			InterestPaid:        interest,
			TotalPaid:           payment,
			CumulativeInterest:  totalInterest,
			CumulativePrincipal: cumulativePrincipal,
			RemainingInterest:   ProjectedInterest(balance, params.MonthlyRepayment, params.AnnualInterestRate),
		})

		// Termination checks, strictly ordered: a true payoff wins over the
		// residual heuristic, which wins over the stabilization heuristic.
		if !balance.IsPositive() {
			settled = true
			break
		}
		if balance.LessThanOrEqual(params.MonthlyRepayment) {
			// One more payment would clear it; not worth chasing the
			// sub-payment residual.
			settled = true
			break
		}
		if params.MonthlyNewCharge.IsPositive() &&
			balance.Sub(previousBalance).Abs().LessThanOrEqual(stabilizationTolerance.Decimal) {
			if balance.LessThanOrEqual(stableBalanceCeiling) {
				// Steady revolving float at roughly the monthly spend.
				settled = true
				break
			}
			if balance.GreaterThan(params.MonthlyRepayment) {
				// Interest plus new charges absorb the whole repayment; the
				// balance will never meaningfully decline.
				isInfinite = true
				break
			}
		}
	}

	if !settled && !isInfinite {
		// Ran out the 50-year horizon without any termination firing.
		isInfinite = true
	}

	return domain.SimulationResult{
		Trajectory:    trajectory,
		TotalInterest: totalInterest,
		TotalPaid:     totalPaid,
		Months:        m,
		IsInfinite:    isInfinite,
	}
}
