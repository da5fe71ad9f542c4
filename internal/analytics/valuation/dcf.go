// Package valuation implements the BrickVal valuation calculators:
// discounted cash flow with a Gordon Growth terminal value, weighted average
// cost of capital, scenario and sensitivity analysis, and the Monte Carlo
// simulator that layers a growth distribution over the DCF.
package valuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/internal/analytics/discount"
	"github.com/brickfolio/brickval/pkg/models"
)

// DefaultTerminalGrowth is the perpetual growth assumption offered to
// callers with no view of their own. The engine never substitutes it;
// whoever builds the input decides.
const DefaultTerminalGrowth = 0.02

var (
	// ErrRateBelowGrowth is returned when the discount rate does not exceed
	// terminal growth; the Gordon Growth denominator (r − g) must be positive.
	ErrRateBelowGrowth = errors.New("valuation: discount rate must exceed terminal growth")

	// ErrNotFinite is returned when a valuation overflows float64, which
	// only happens with inputs far outside any plausible deal.
	ErrNotFinite = errors.New("valuation: result is not finite")
)

// DCFInput holds the assumptions for one discounted-cash-flow valuation.
// Forecast covers periods 1..n; there is no period-0 element.
type DCFInput struct {
	Forecast       cashflow.Series // explicit forecast flows, periods 1..n
	DiscountRate   float64         // per-period rate, e.g., 0.09
	TerminalGrowth float64         // perpetual growth beyond period n, e.g., 0.02
}

// DCF values an explicit forecast plus a Gordon Growth terminal value.
//
// Each forecast flow is discounted by its own period count (element i sits
// at period i+1). The terminal value grows the final flow one more period,
// capitalizes it at (r − g), and is discounted over the full forecast
// horizon. Per-period present values are kept in the result so the caller
// can show exactly where the enterprise value comes from.
func DCF(in DCFInput) (models.ValuationResult, error) {
	if err := in.Forecast.Validate(); err != nil {
		return models.ValuationResult{}, err
	}
	if 1+in.DiscountRate <= 0 {
		return models.ValuationResult{}, fmt.Errorf("%w: discount rate %v", discount.ErrRateDomain, in.DiscountRate)
	}
	if 1+in.TerminalGrowth <= 0 {
		return models.ValuationResult{}, fmt.Errorf("%w: terminal growth %v", discount.ErrRateDomain, in.TerminalGrowth)
	}
	if in.DiscountRate <= in.TerminalGrowth {
		return models.ValuationResult{}, fmt.Errorf("%w: rate %v, growth %v", ErrRateBelowGrowth, in.DiscountRate, in.TerminalGrowth)
	}

	res := models.ValuationResult{
		PresentValues:  make([]float64, len(in.Forecast)),
		DiscountRate:   in.DiscountRate,
		TerminalGrowth: in.TerminalGrowth,
	}
	for i, cf := range in.Forecast {
		pv, err := discount.PresentValue(cf, in.DiscountRate, i+1)
		if err != nil {
			return models.ValuationResult{}, err
		}
		res.PresentValues[i] = pv
		res.ExplicitValue += pv
	}

	terminalCF := in.Forecast[len(in.Forecast)-1] * (1 + in.TerminalGrowth)
	res.TerminalValue = terminalCF / (in.DiscountRate - in.TerminalGrowth)
	pvTerminal, err := discount.PresentValue(res.TerminalValue, in.DiscountRate, len(in.Forecast))
	if err != nil {
		return models.ValuationResult{}, err
	}
	res.TerminalValuePV = pvTerminal
	res.EnterpriseValue = res.ExplicitValue + res.TerminalValuePV

	if math.IsNaN(res.EnterpriseValue) || math.IsInf(res.EnterpriseValue, 0) {
		return models.ValuationResult{}, fmt.Errorf("%w: enterprise value", ErrNotFinite)
	}
	return res, nil
}
