package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/revsim/debt-projector/pkg/money"
)

// FormatAmount formats a whole-unit amount with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount money.Money) string { return amount.Format() }

// FormatRate formats an annual percentage rate with 2 decimals.
func FormatRate(rate decimal.Decimal) string { return rate.StringFixed(2) + "%" }

// FormatMonths renders a month count as "Ny Nm" for readability.
func FormatMonths(months int) string {
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return strconv.Itoa(rem) + "m"
	case rem == 0:
		return strconv.Itoa(years) + "y"
	default:
		return strconv.Itoa(years) + "y " + strconv.Itoa(rem) + "m"
	}
}
