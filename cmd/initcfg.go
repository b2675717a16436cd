package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revsim/debt-projector/internal/config"
)

var flagInitOut string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example scenario configuration file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&flagInitOut, "out", "o", "scenarios.yaml", "Destination file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	if err := parser.WriteExampleConfiguration(flagInitOut); err != nil {
		return err
	}
	fmt.Printf("Wrote example configuration to %s\n", flagInitOut)
	return nil
}
