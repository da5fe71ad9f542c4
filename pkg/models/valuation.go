// Package models defines the value objects produced by the BrickVal engine.
// Results are created once by a calculator and never mutated afterwards.
package models

// ValuationResult represents the outcome of a discounted-cash-flow valuation.
// PresentValues is kept alongside the totals so a caller can show exactly how
// each forecast period contributes to the enterprise value.
type ValuationResult struct {
	PresentValues   []float64 `json:"present_values"`    // discounted forecast flows, one per period
	ExplicitValue   float64   `json:"explicit_value"`    // sum of PresentValues
	TerminalValue   float64   `json:"terminal_value"`    // Gordon Growth value at the forecast horizon
	TerminalValuePV float64   `json:"terminal_value_pv"` // TerminalValue discounted back to period 0
	EnterpriseValue float64   `json:"enterprise_value"`  // ExplicitValue + TerminalValuePV
	DiscountRate    float64   `json:"discount_rate"`     // e.g., 0.09
	TerminalGrowth  float64   `json:"terminal_growth"`   // e.g., 0.02
}

// WACCResult represents a weighted-average-cost-of-capital computation.
type WACCResult struct {
	WACC             float64 `json:"wacc"`                // blended rate, e.g., 0.09
	EquityWeight     float64 `json:"equity_weight"`       // E / (E + D)
	DebtWeight       float64 `json:"debt_weight"`         // D / (E + D)
	AfterTaxDebtCost float64 `json:"after_tax_debt_cost"` // kD × (1 − tax)
}

// ScenarioResult pairs a named growth trajectory with its valuation.
type ScenarioResult struct {
	Name      string          `json:"name"`   // e.g., "pessimistic"
	Growth    float64         `json:"growth"` // compounding rate applied to the base series
	Valuation ValuationResult `json:"valuation"`
}

// SensitivityCell is one (discount rate, terminal growth) combination of a
// two-dimensional sweep.
type SensitivityCell struct {
	DiscountRate    float64 `json:"discount_rate"`
	TerminalGrowth  float64 `json:"terminal_growth"`
	EnterpriseValue float64 `json:"enterprise_value"`
}

// SensitivityGrid holds the full cross product of a sensitivity sweep,
// row-major: every growth value for the first rate, then the second rate,
// and so on. len(Cells) == len(Rates) × len(Growths) always.
type SensitivityGrid struct {
	Rates   []float64         `json:"rates"`
	Growths []float64         `json:"growths"`
	Cells   []SensitivityCell `json:"cells"`
}
