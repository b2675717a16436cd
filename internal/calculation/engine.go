package calculation

import (
	"fmt"

	"github.com/revsim/debt-projector/internal/domain"
)

// Engine orchestrates simulation runs over named scenarios.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new simulation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario simulates a single named parameter set and summarizes it.
func (e *Engine) RunScenario(scenario domain.Scenario) domain.ScenarioSummary {
	e.Logger.Debugf("running scenario %q: balance=%s charge=%s repayment=%s rate=%s%%",
		scenario.Name,
		scenario.Params.InitialBalance,
		scenario.Params.MonthlyNewCharge,
		scenario.Params.MonthlyRepayment,
		scenario.Params.AnnualInterestRate)

	result := Simulate(scenario.Params)
	if result.IsInfinite {
		e.Logger.Warnf("scenario %q classified as a debt trap after %d months", scenario.Name, result.Months)
	} else {
		e.Logger.Infof("scenario %q clears in %d months, %s interest", scenario.Name, result.Months, result.TotalInterest)
	}

	return domain.ScenarioSummary{
		Name:          scenario.Name,
		Params:        scenario.Params,
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		TotalPaid:     result.TotalPaid,
		FinalBalance:  result.FinalBalance(),
		IsInfinite:    result.IsInfinite,
		Result:        result,
	}
}

// CompareScenarios simulates every scenario in the configuration and picks
// the cheapest one that actually clears the debt. Scenario names must be
// unique so the recommendation can be referenced unambiguously.
func (e *Engine) CompareScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	summaries := make([]domain.ScenarioSummary, 0, len(config.Scenarios))
	for _, sc := range config.Scenarios {
		if seen[sc.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
		summaries = append(summaries, e.RunScenario(sc))
	}

	comparison := &domain.ScenarioComparison{Scenarios: summaries}
	comparison.Recommended = recommendScenario(summaries)
	return comparison, nil
}

// recommendScenario returns the name of the clearing scenario with the lowest
// total paid, or "" when every scenario is a debt trap.
func recommendScenario(summaries []domain.ScenarioSummary) string {
	best := -1
	for i, s := range summaries {
		if s.IsInfinite {
			continue
		}
		if best < 0 || s.TotalPaid.LessThan(summaries[best].TotalPaid) {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return summaries[best].Name
}
