package domain

import "github.com/revsim/debt-projector/pkg/money"

// Scenario is a named set of simulation parameters, typically loaded from a
// configuration file so several repayment plans can be projected side by side.
type Scenario struct {
	Name   string           `json:"name" yaml:"name"`
	Params SimulationParams `json:"params" yaml:"params"`
}

// ScenarioSummary pairs a scenario with its simulation outcome and the
// headline numbers the formatters report.
type ScenarioSummary struct {
	Name          string           `json:"name"`
	Params        SimulationParams `json:"params"`
	Months        int              `json:"months"`
	TotalInterest money.Money      `json:"total_interest"`
	TotalPaid     money.Money      `json:"total_paid"`
	FinalBalance  money.Money      `json:"final_balance"`
	IsInfinite    bool             `json:"is_infinite"`
	Result        SimulationResult `json:"result"`
}

// ScenarioComparison holds the summaries for every scenario in a run plus the
// recommendation derived from them.
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Recommended string            `json:"recommended,omitempty"`
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}
