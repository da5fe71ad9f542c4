package models

// MortgageResult represents the fixed monthly payment for a fully amortizing
// loan, plus the lifetime totals the payment implies.
type MortgageResult struct {
	Payment       float64 `json:"payment"`        // per month
	Months        int     `json:"months"`         // years × 12
	TotalPaid     float64 `json:"total_paid"`     // Payment × Months
	TotalInterest float64 `json:"total_interest"` // TotalPaid − principal
}

// AmortizationEntry is one month of an amortization schedule.
type AmortizationEntry struct {
	Period    int     `json:"period"`    // 1-based month number
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`  // balance × monthly rate
	Principal float64 `json:"principal"` // Payment − Interest
	Balance   float64 `json:"balance"`   // remaining after this payment, 0 on the final row
}
