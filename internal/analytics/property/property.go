// Package property computes the operating metrics a real-estate dashboard
// shows for a single deal: income measures, yield ratios and debt coverage.
// Every ratio guards its denominator. A zero never coerces into NaN or
// infinity, it comes back as an error naming the field. Non-finite inputs
// are rejected the same way.
package property

import (
	"errors"
	"fmt"
	"math"

	"github.com/brickfolio/brickval/pkg/models"
)

// ErrZeroDenominator is returned when a ratio's denominator is zero.
var ErrZeroDenominator = errors.New("property: denominator is zero")

// EffectiveGrossIncome returns gross income less the vacancy allowance:
// gross × (1 − vacancy).
func EffectiveGrossIncome(grossIncome, vacancyRate float64) (float64, error) {
	if err := checkFinite(grossIncome, vacancyRate); err != nil {
		return 0, err
	}
	if vacancyRate < 0 || vacancyRate > 1 {
		return 0, fmt.Errorf("property: vacancy rate must be in [0, 1], got %v", vacancyRate)
	}
	if grossIncome < 0 {
		return 0, fmt.Errorf("property: gross income must be non-negative, got %v", grossIncome)
	}
	return grossIncome * (1 - vacancyRate), nil
}

// NOI returns annual net operating income: effective gross income less
// operating expenses. Debt service is not an operating expense.
func NOI(grossIncome, operatingExpenses, vacancyRate float64) (float64, error) {
	egi, err := EffectiveGrossIncome(grossIncome, vacancyRate)
	if err != nil {
		return 0, err
	}
	if err := checkFinite(operatingExpenses); err != nil {
		return 0, err
	}
	if operatingExpenses < 0 {
		return 0, fmt.Errorf("property: operating expenses must be non-negative, got %v", operatingExpenses)
	}
	return egi - operatingExpenses, nil
}

// CapRate returns NOI / value, the unlevered yield on the purchase price.
func CapRate(noi, propertyValue float64) (float64, error) {
	if err := checkFinite(noi, propertyValue); err != nil {
		return 0, err
	}
	if propertyValue == 0 {
		return 0, fmt.Errorf("%w: property value", ErrZeroDenominator)
	}
	if propertyValue < 0 {
		return 0, fmt.Errorf("property: property value must be positive, got %v", propertyValue)
	}
	return noi / propertyValue, nil
}

// CashOnCash returns annual pre-tax cash flow over the cash actually
// invested in the deal.
func CashOnCash(annualCashFlow, cashInvested float64) (float64, error) {
	if err := checkFinite(annualCashFlow, cashInvested); err != nil {
		return 0, err
	}
	if cashInvested == 0 {
		return 0, fmt.Errorf("%w: cash invested", ErrZeroDenominator)
	}
	if cashInvested < 0 {
		return 0, fmt.Errorf("property: cash invested must be positive, got %v", cashInvested)
	}
	return annualCashFlow / cashInvested, nil
}

// DSCR returns NOI over annual debt service; lenders typically want > 1.2.
func DSCR(noi, annualDebtService float64) (float64, error) {
	if err := checkFinite(noi, annualDebtService); err != nil {
		return 0, err
	}
	if annualDebtService == 0 {
		return 0, fmt.Errorf("%w: annual debt service", ErrZeroDenominator)
	}
	if annualDebtService < 0 {
		return 0, fmt.Errorf("property: debt service must be positive, got %v", annualDebtService)
	}
	return noi / annualDebtService, nil
}

// LTV returns the loan amount as a fraction of property value.
func LTV(loanAmount, propertyValue float64) (float64, error) {
	if err := checkFinite(loanAmount, propertyValue); err != nil {
		return 0, err
	}
	if propertyValue == 0 {
		return 0, fmt.Errorf("%w: property value", ErrZeroDenominator)
	}
	if propertyValue < 0 {
		return 0, fmt.Errorf("property: property value must be positive, got %v", propertyValue)
	}
	if loanAmount < 0 {
		return 0, fmt.Errorf("property: loan amount must be non-negative, got %v", loanAmount)
	}
	return loanAmount / propertyValue, nil
}

// GrossRentMultiplier returns price over annual gross income, a quick
// relative-value screen across comparable properties.
func GrossRentMultiplier(price, grossIncome float64) (float64, error) {
	if err := checkFinite(price, grossIncome); err != nil {
		return 0, err
	}
	if grossIncome == 0 {
		return 0, fmt.Errorf("%w: gross income", ErrZeroDenominator)
	}
	if grossIncome < 0 {
		return 0, fmt.Errorf("property: gross income must be positive, got %v", grossIncome)
	}
	return price / grossIncome, nil
}

// OperatingExpenseRatio returns operating expenses as a fraction of
// effective gross income.
func OperatingExpenseRatio(operatingExpenses, effectiveGrossIncome float64) (float64, error) {
	if err := checkFinite(operatingExpenses, effectiveGrossIncome); err != nil {
		return 0, err
	}
	if effectiveGrossIncome == 0 {
		return 0, fmt.Errorf("%w: effective gross income", ErrZeroDenominator)
	}
	return operatingExpenses / effectiveGrossIncome, nil
}

// BreakEvenOccupancy returns the occupancy level at which income just
// covers operating expenses plus debt service.
func BreakEvenOccupancy(operatingExpenses, annualDebtService, grossIncome float64) (float64, error) {
	if err := checkFinite(operatingExpenses, annualDebtService, grossIncome); err != nil {
		return 0, err
	}
	if grossIncome == 0 {
		return 0, fmt.Errorf("%w: gross income", ErrZeroDenominator)
	}
	if grossIncome < 0 {
		return 0, fmt.Errorf("property: gross income must be positive, got %v", grossIncome)
	}
	return (operatingExpenses + annualDebtService) / grossIncome, nil
}

// Compute fills the full metrics panel for one property. Debt metrics stay
// nil for an all-cash purchase; a loan without debt service, or the
// reverse, is rejected as inconsistent input.
func Compute(in models.PropertyInput) (models.PropertyMetrics, error) {
	egi, err := EffectiveGrossIncome(in.GrossIncome, in.VacancyRate)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	noi, err := NOI(in.GrossIncome, in.OperatingExpenses, in.VacancyRate)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	capRate, err := CapRate(noi, in.PurchasePrice)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	coc, err := CashOnCash(in.AnnualCashFlow, in.CashInvested)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	grm, err := GrossRentMultiplier(in.PurchasePrice, in.GrossIncome)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	oer, err := OperatingExpenseRatio(in.OperatingExpenses, egi)
	if err != nil {
		return models.PropertyMetrics{}, err
	}
	beo, err := BreakEvenOccupancy(in.OperatingExpenses, in.AnnualDebtService, in.GrossIncome)
	if err != nil {
		return models.PropertyMetrics{}, err
	}

	m := models.PropertyMetrics{
		EffectiveGrossIncome:  egi,
		NOI:                   noi,
		CapRate:               capRate,
		CashOnCash:            coc,
		GrossRentMultiplier:   grm,
		OperatingExpenseRatio: oer,
		BreakEvenOccupancy:    beo,
	}

	hasLoan := in.LoanAmount != 0
	hasService := in.AnnualDebtService != 0
	switch {
	case hasLoan && hasService:
		dscr, err := DSCR(noi, in.AnnualDebtService)
		if err != nil {
			return models.PropertyMetrics{}, err
		}
		ltv, err := LTV(in.LoanAmount, in.PurchasePrice)
		if err != nil {
			return models.PropertyMetrics{}, err
		}
		m.DSCR = &dscr
		m.LTV = &ltv
	case hasLoan != hasService:
		return models.PropertyMetrics{}, fmt.Errorf("property: loan amount and debt service must both be set or both be zero")
	}
	return m, nil
}

// checkFinite rejects NaN and infinite inputs before any ratio math runs.
func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("property: input is not finite, got %v", v)
		}
	}
	return nil
}
