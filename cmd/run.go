package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/revsim/debt-projector/internal/config"
	"github.com/revsim/debt-projector/internal/domain"
	"github.com/revsim/debt-projector/internal/output"
	"github.com/revsim/debt-projector/pkg/money"
)

var (
	flagBalance   int64
	flagCharge    int64
	flagRepayment int64
	flagRate      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Project a single repayment plan from flags",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Int64VarP(&flagBalance, "balance", "b", 0, "Initial balance (whole currency units)")
	runCmd.Flags().Int64VarP(&flagCharge, "charge", "c", 0, "Recurring monthly new charge")
	runCmd.Flags().Int64VarP(&flagRepayment, "repayment", "r", 0, "Fixed monthly repayment")
	runCmd.Flags().StringVarP(&flagRate, "rate", "i", "0", "Annual interest rate in percent, e.g. 18.0")
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	rate, err := decimal.NewFromString(flagRate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", flagRate, err)
	}

	params := domain.SimulationParams{
		InitialBalance:     money.New(flagBalance),
		MonthlyNewCharge:   money.New(flagCharge),
		MonthlyRepayment:   money.New(flagRepayment),
		AnnualInterestRate: rate,
	}
	if err := config.ValidateParams(params); err != nil {
		return err
	}

	engine := newEngine()
	summary := engine.RunScenario(domain.Scenario{Name: "run", Params: params})
	comparison := &domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{summary}}

	return printFormatted(comparison)
}

// fileExtensions maps formatter names to the extension used with --write.
var fileExtensions = map[string]string{
	"console":      "txt",
	"json":         "json",
	"csv":          "csv",
	"detailed-csv": "csv",
}

// printFormatted renders a comparison with the formatter selected by --format,
// to stdout or to a timestamped file when --write is set.
func printFormatted(comparison *domain.ScenarioComparison) error {
	f := output.GetFormatterByName(flagFormat)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %v)", flagFormat, output.AvailableFormats())
	}

	if flagWrite {
		ext := fileExtensions[f.Name()]
		filename, err := output.WriteFormatted(f, comparison, ext)
		if err != nil {
			return fmt.Errorf("writing output failed: %w", err)
		}
		fmt.Printf("Wrote %s\n", filename)
		return nil
	}

	data, err := f.Format(comparison)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
