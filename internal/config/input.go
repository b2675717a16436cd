package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/revsim/debt-projector/internal/domain"
	"github.com/revsim/debt-projector/pkg/money"
)

// MaxAnnualRatePercent bounds the accepted annual interest rate. Rates past
// this are almost certainly a unit mistake (e.g. 0.18 entered as 1800).
var MaxAnnualRatePercent = decimal.NewFromInt(1000)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if err := ValidateParams(scenario.Params); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	return nil
}

// ValidateParams checks the four numeric fields of a parameter set. The
// simulator itself accepts anything, validation exists only at this boundary
// so configuration mistakes surface as errors instead of odd trajectories.
func ValidateParams(params domain.SimulationParams) error {
	if params.InitialBalance.IsNegative() {
		return fmt.Errorf("initial balance cannot be negative")
	}
	if params.MonthlyNewCharge.IsNegative() {
		return fmt.Errorf("monthly new charge cannot be negative")
	}
	if params.MonthlyRepayment.IsNegative() {
		return fmt.Errorf("monthly repayment cannot be negative")
	}
	if params.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("annual interest rate cannot be negative")
	}
	if params.AnnualInterestRate.GreaterThan(MaxAnnualRatePercent) {
		return fmt.Errorf("annual interest rate exceeds %s%%", MaxAnnualRatePercent)
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario configuration.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	rate := decimal.NewFromFloat(18.0)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "Current repayment",
				Params: domain.SimulationParams{
					InitialBalance:     money.New(300000),
					MonthlyNewCharge:   money.New(20000),
					MonthlyRepayment:   money.New(30000),
					AnnualInterestRate: rate,
				},
			},
			{
				Name: "Aggressive repayment",
				Params: domain.SimulationParams{
					InitialBalance:     money.New(300000),
					MonthlyNewCharge:   money.New(20000),
					MonthlyRepayment:   money.New(50000),
					AnnualInterestRate: rate,
				},
			},
			{
				Name: "Minimum repayment",
				Params: domain.SimulationParams{
					InitialBalance:     money.New(300000),
					MonthlyNewCharge:   money.New(20000),
					MonthlyRepayment:   money.New(21000),
					AnnualInterestRate: rate,
				},
			},
		},
	}
}

// WriteExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
