package output

import (
	"bytes"
	"fmt"

	"github.com/revsim/debt-projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT REPAYMENT PROJECTION")
	fmt.Fprintln(&buf, "=========================")
	fmt.Fprintln(&buf)
	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s: balance=%s charge=%s/mo repayment=%s/mo rate=%s\n",
			sc.Name,
			FormatAmount(sc.Params.InitialBalance),
			FormatAmount(sc.Params.MonthlyNewCharge),
			FormatAmount(sc.Params.MonthlyRepayment),
			FormatRate(sc.Params.AnnualInterestRate),
		)
		if sc.IsInfinite {
			fmt.Fprintf(&buf, "  DEBT TRAP: balance not cleared within %s (paid %s, %s of it interest)\n",
				FormatMonths(sc.Months), FormatAmount(sc.TotalPaid), FormatAmount(sc.TotalInterest))
			continue
		}
		fmt.Fprintf(&buf, "  cleared in %s: paid %s total, %s interest, final balance %s\n",
			FormatMonths(sc.Months), FormatAmount(sc.TotalPaid), FormatAmount(sc.TotalInterest), FormatAmount(sc.FinalBalance))
	}
	if results.Recommended != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (lowest total paid among clearing scenarios)\n", results.Recommended)
	}
	return buf.Bytes(), nil
}
