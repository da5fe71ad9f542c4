package models

// PropertyInput carries the operating assumptions for a single property.
// Monetary fields are annual amounts in the caller's currency.
type PropertyInput struct {
	PurchasePrice     float64 `json:"purchase_price"`
	GrossIncome       float64 `json:"gross_income"`       // scheduled rent before vacancy loss
	VacancyRate       float64 `json:"vacancy_rate"`       // 0.05 = 5% of gross income lost
	OperatingExpenses float64 `json:"operating_expenses"` // excludes debt service
	CashInvested      float64 `json:"cash_invested"`      // down payment + closing costs
	AnnualCashFlow    float64 `json:"annual_cash_flow"`   // pre-tax cash flow to equity
	AnnualDebtService float64 `json:"annual_debt_service"`
	LoanAmount        float64 `json:"loan_amount"`
}

// PropertyMetrics represents the operating-metric panel for one property.
// DSCR and LTV are nil for an all-cash purchase (no loan, no debt service).
type PropertyMetrics struct {
	EffectiveGrossIncome  float64  `json:"effective_gross_income"`  // gross × (1 − vacancy)
	NOI                   float64  `json:"noi"`                     // net operating income
	CapRate               float64  `json:"cap_rate"`                // NOI / purchase price
	CashOnCash            float64  `json:"cash_on_cash"`            // annual cash flow / cash invested
	DSCR                  *float64 `json:"dscr,omitempty"`          // NOI / annual debt service
	LTV                   *float64 `json:"ltv,omitempty"`           // loan / purchase price
	GrossRentMultiplier   float64  `json:"gross_rent_multiplier"`   // price / gross income
	OperatingExpenseRatio float64  `json:"operating_expense_ratio"` // opex / effective gross income
	BreakEvenOccupancy    float64  `json:"break_even_occupancy"`    // (opex + debt service) / gross income
}
