package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revsim/debt-projector/internal/calculation"
)

var (
	flagDebug  bool
	flagFormat string
	flagWrite  bool
)

var rootCmd = &cobra.Command{
	Use:   "debtproj",
	Short: "Revolving-credit repayment projector",
	Long: "Project how a revolving-credit balance evolves under fixed monthly repayment:\n" +
		"month-by-month trajectory, payoff horizon, total interest, and debt-trap detection.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, json, csv, detailed-csv")
	rootCmd.PersistentFlags().BoolVarP(&flagWrite, "write", "w", false, "Write output to a timestamped file instead of stdout")
}

// newEngine builds the simulation engine shared by all commands.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if flagDebug {
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

// stderrLogger implements calculation.Logger on standard error.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
}

func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}

func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
