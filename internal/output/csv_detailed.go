package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/revsim/debt-projector/internal/domain"
)

// CSVDetailedExporter writes every trajectory row of every scenario, one line
// per simulated month. This is the feed for spreadsheet charting.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Balance", "PrincipalPaid", "InterestPaid", "TotalPaid", "CumulativeInterest", "CumulativePrincipal", "RemainingInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, rec := range sc.Result.Trajectory {
			row := []string{
				sc.Name,
				strconv.Itoa(rec.Month),
				rec.Balance.String(),
				rec.PrincipalPaid.String(),
				rec.InterestPaid.String(),
				rec.TotalPaid.String(),
				rec.CumulativeInterest.String(),
				rec.CumulativePrincipal.String(),
				rec.RemainingInterest.String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
