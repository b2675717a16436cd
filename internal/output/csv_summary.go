package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/revsim/debt-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "InitialBalance", "MonthlyNewCharge", "MonthlyRepayment", "AnnualInterestRate", "Months", "TotalInterest", "TotalPaid", "FinalBalance", "IsInfinite"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			sc.Params.InitialBalance.String(),
			sc.Params.MonthlyNewCharge.String(),
			sc.Params.MonthlyRepayment.String(),
			sc.Params.AnnualInterestRate.String(),
			strconv.Itoa(sc.Months),
			sc.TotalInterest.String(),
			sc.TotalPaid.String(),
			sc.FinalBalance.String(),
			strconv.FormatBool(sc.IsInfinite),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
