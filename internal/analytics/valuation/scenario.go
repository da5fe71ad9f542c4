package valuation

import (
	"fmt"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/internal/analytics/discount"
	"github.com/brickfolio/brickval/pkg/models"
)

// Scenario names a flat growth trajectory layered onto a base forecast.
type Scenario struct {
	Name   string  `json:"name"`   // e.g., "pessimistic"
	Growth float64 `json:"growth"` // compounding rate, e.g., -0.02
}

// DefaultScenarios returns the conventional three-way spread around an
// unchanged base case.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "pessimistic", Growth: -0.02},
		{Name: "base", Growth: 0},
		{Name: "optimistic", Growth: 0.02},
	}
}

// ScenarioAnalysis values the base forecast once per named trajectory: each
// scenario compounds every base flow by (1+growth)^period, with growth
// applying from the first forecast period, and runs the standard DCF on the
// result. The discount rate and terminal growth are shared across scenarios,
// so the spread isolates the effect of the near-term growth assumption.
func ScenarioAnalysis(base cashflow.Series, discountRate, terminalGrowth float64, scenarios []Scenario) ([]models.ScenarioResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("valuation: at least one scenario required")
	}

	out := make([]models.ScenarioResult, len(scenarios))
	for i, sc := range scenarios {
		if 1+sc.Growth <= 0 {
			return nil, fmt.Errorf("scenario %q: %w: growth %v", sc.Name, discount.ErrRateDomain, sc.Growth)
		}
		res, err := DCF(DCFInput{
			Forecast:       base.Compound(sc.Growth),
			DiscountRate:   discountRate,
			TerminalGrowth: terminalGrowth,
		})
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		out[i] = models.ScenarioResult{Name: sc.Name, Growth: sc.Growth, Valuation: res}
	}
	return out, nil
}
