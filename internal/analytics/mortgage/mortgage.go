// Package mortgage generates fixed-rate loan schedules: the level monthly
// payment and the full amortization table with its interest/principal split.
package mortgage

import (
	"errors"
	"fmt"

	"github.com/brickfolio/brickval/internal/analytics/discount"
	"github.com/brickfolio/brickval/pkg/models"
)

// BalanceTolerance is the residual allowed on the final balance after
// rounding: one cent.
const BalanceTolerance = 0.01

var (
	// ErrInvalidPrincipal is returned for a non-positive loan amount.
	ErrInvalidPrincipal = errors.New("mortgage: principal must be positive")

	// ErrInvalidTerm is returned for a non-positive term.
	ErrInvalidTerm = errors.New("mortgage: term must be a positive number of years")
)

// Payment returns the fixed monthly payment for a fully amortizing loan
// at annualRate/12 per month over years×12 payments, plus the lifetime
// totals the payment implies. A zero rate splits the principal evenly.
func Payment(principal, annualRate float64, years int) (models.MortgageResult, error) {
	if principal <= 0 {
		return models.MortgageResult{}, fmt.Errorf("%w: got %v", ErrInvalidPrincipal, principal)
	}
	if years <= 0 {
		return models.MortgageResult{}, fmt.Errorf("%w: got %d", ErrInvalidTerm, years)
	}
	if annualRate < 0 {
		return models.MortgageResult{}, fmt.Errorf("mortgage: annual rate must be non-negative, got %v", annualRate)
	}

	months := years * 12
	pay, err := discount.Payment(principal, annualRate/12, months)
	if err != nil {
		return models.MortgageResult{}, err
	}
	res := models.MortgageResult{
		Payment:   pay,
		Months:    months,
		TotalPaid: pay * float64(months),
	}
	res.TotalInterest = res.TotalPaid - principal
	return res, nil
}

// Schedule returns the month-by-month amortization table. Interest accrues
// on the running balance at the monthly rate, the remainder of the level
// payment retires principal, and the final balance is clamped at zero to
// absorb sub-cent rounding.
func Schedule(principal, annualRate float64, years int) ([]models.AmortizationEntry, error) {
	pay, err := Payment(principal, annualRate, years)
	if err != nil {
		return nil, err
	}

	monthlyRate := annualRate / 12
	entries := make([]models.AmortizationEntry, 0, pay.Months)
	balance := principal
	for period := 1; period <= pay.Months; period++ {
		interest := balance * monthlyRate
		principalPortion := pay.Payment - interest
		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}
		entries = append(entries, models.AmortizationEntry{
			Period:    period,
			Payment:   pay.Payment,
			Interest:  interest,
			Principal: principalPortion,
			Balance:   balance,
		})
	}
	return entries, nil
}
