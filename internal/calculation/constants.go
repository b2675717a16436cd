package calculation

import "github.com/shopspring/decimal"

// Safety bounds and heuristics for the simulation loops. These are fixed
// policy values, not derived from the interest or payment parameters.
const (
	// MaxSimulationMonths caps the outer month loop at 50 years.
	MaxSimulationMonths = 600

	// MaxProjectionMonths caps the standalone payoff projection at 50 years.
	MaxProjectionMonths = 600

	// StabilizationTolerance is the largest month-over-month balance change
	// still treated as "the balance has stopped moving".
	StabilizationTolerance = 10

	// RunawayBalanceFactor and RunawayBalanceFloor gate the runaway guard:
	// a balance past both bounds is classified as unrecoverable immediately.
	RunawayBalanceFactor = 5
	RunawayBalanceFloor  = 1_000_000
)

// StableBalanceChargeFactor scales the monthly new charge to decide whether a
// stabilized balance is a harmless revolving float rather than a debt trap.
var StableBalanceChargeFactor = decimal.NewFromFloat(1.5)
