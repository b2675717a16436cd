package domain

import (
	"github.com/shopspring/decimal"

	"github.com/revsim/debt-projector/pkg/money"
)

// SimulationParams describes one revolving-credit projection: the balance
// carried today, the recurring monthly spend that lands on the card, the
// fixed amount repaid each month, and the annual interest rate in percent.
// Params are treated as immutable once a run starts.
type SimulationParams struct {
	InitialBalance     money.Money     `json:"initial_balance" yaml:"initial_balance"`
	MonthlyNewCharge   money.Money     `json:"monthly_new_charge" yaml:"monthly_new_charge"`
	MonthlyRepayment   money.Money     `json:"monthly_repayment" yaml:"monthly_repayment"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate" yaml:"annual_interest_rate"`
}

// MonthRecord is one row of a simulated trajectory. Month 0 is the initial
// state before any payment; every later row reflects that month's payment
// split and the running totals through it. RemainingInterest is the interest
// still to be paid from this balance if new charges stopped now.
type MonthRecord struct {
	Month               int         `json:"month"`
	Balance             money.Money `json:"balance"`
	PrincipalPaid       money.Money `json:"principal_paid"`
	InterestPaid        money.Money `json:"interest_paid"`
	TotalPaid           money.Money `json:"total_paid"`
	CumulativeInterest  money.Money `json:"cumulative_interest"`
	CumulativePrincipal money.Money `json:"cumulative_principal"`
	RemainingInterest   money.Money `json:"remaining_interest"`
}

// SimulationResult is the complete outcome of one run. When IsInfinite is
// true the balance never declined to a manageable level within the horizon,
// and the totals reflect the truncated state rather than a final payoff.
type SimulationResult struct {
	Trajectory    []MonthRecord `json:"trajectory"`
	TotalInterest money.Money   `json:"total_interest"`
	TotalPaid     money.Money   `json:"total_paid"`
	Months        int           `json:"months"`
	IsInfinite    bool          `json:"is_infinite"`
}

// FinalBalance returns the balance of the last trajectory row.
func (r *SimulationResult) FinalBalance() money.Money {
	if len(r.Trajectory) == 0 {
		return money.Zero()
	}
	return r.Trajectory[len(r.Trajectory)-1].Balance
}
