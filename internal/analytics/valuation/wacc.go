package valuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/brickfolio/brickval/pkg/models"
)

// ErrZeroCapitalBase is returned when equity and debt sum to zero, leaving
// nothing to weight the capital costs by.
var ErrZeroCapitalBase = errors.New("valuation: equity and debt must sum to a positive amount")

// WACCInput holds the capital-structure assumptions for a cost-of-capital
// computation. Equity and Debt are market values in the same currency.
type WACCInput struct {
	Equity     float64 // e.g., 600000
	Debt       float64 // e.g., 400000
	CostEquity float64 // kE, e.g., 0.12
	CostDebt   float64 // pre-tax kD, e.g., 0.06
	TaxRate    float64 // marginal rate in [0, 1), e.g., 0.25
}

// WACC blends the cost of equity with the after-tax cost of debt by market
// value weights: wE·kE + wD·kD·(1−tax). The weights and the after-tax debt
// cost are reported alongside the blended rate so a caller can show the
// decomposition.
func WACC(in WACCInput) (models.WACCResult, error) {
	for _, v := range []float64{in.Equity, in.Debt, in.CostEquity, in.CostDebt, in.TaxRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.WACCResult{}, fmt.Errorf("valuation: WACC inputs must be finite, got %+v", in)
		}
	}
	if in.Equity < 0 || in.Debt < 0 {
		return models.WACCResult{}, fmt.Errorf("valuation: equity and debt must be non-negative, got E=%v D=%v", in.Equity, in.Debt)
	}
	total := in.Equity + in.Debt
	if total == 0 {
		return models.WACCResult{}, ErrZeroCapitalBase
	}
	if in.TaxRate < 0 || in.TaxRate >= 1 {
		return models.WACCResult{}, fmt.Errorf("valuation: tax rate must be in [0, 1), got %v", in.TaxRate)
	}

	res := models.WACCResult{
		EquityWeight:     in.Equity / total,
		DebtWeight:       in.Debt / total,
		AfterTaxDebtCost: in.CostDebt * (1 - in.TaxRate),
	}
	res.WACC = res.EquityWeight*in.CostEquity + res.DebtWeight*res.AfterTaxDebtCost
	return res, nil
}
