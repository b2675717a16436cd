package cmd

import (
	"github.com/spf13/cobra"

	"github.com/revsim/debt-projector/internal/config"
)

var flagConfigFile string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the repayment scenarios in a configuration file",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&flagConfigFile, "config", "C", "scenarios.yaml", "Scenario configuration file")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(flagConfigFile)
	if err != nil {
		return err
	}

	engine := newEngine()
	comparison, err := engine.CompareScenarios(cfg)
	if err != nil {
		return err
	}

	return printFormatted(comparison)
}
