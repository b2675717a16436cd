package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/revsim/debt-projector/pkg/money"
)

// ProjectedInterest estimates the total interest still to be paid to retire
// balance at the fixed monthly repayment, assuming no further new charges.
// It replays the same interest-then-principal split the simulator uses,
// month by month, until the balance reaches zero.
//
// The projection is capped at MaxProjectionMonths. If the balance has not
// cleared by then (repayment at or below the monthly interest), the interest
// accumulated so far is returned as-is; the outer simulation's own heuristics
// are responsible for flagging such parameter combinations.
func ProjectedInterest(balance, monthlyRepayment money.Money, annualRate decimal.Decimal) money.Money {
	if !balance.IsPositive() {
		return money.Zero()
	}

	total := money.Zero()
	for m := 0; m < MaxProjectionMonths && balance.IsPositive(); m++ {
		interest := balance.MonthlyInterest(annualRate)
		// Final payment never exceeds what is owed this month.
		payment := money.Min(monthlyRepayment, balance.Add(interest))
		principal := payment.Sub(interest)

		total = total.Add(interest)
		balance = balance.Sub(principal).FloorAtZero()
	}
	return total
}
