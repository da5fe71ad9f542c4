// Package discount implements the time-value-of-money core shared by the
// valuation, returns and mortgage calculators.
package discount

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrRateDomain is returned when a rate is NaN, infinite, or makes
	// (1+rate) non-positive, leaving no usable compounding factor.
	ErrRateDomain = errors.New("discount: rate must be a finite value greater than -1")

	// ErrInvalidPeriods is returned for a non-positive period count.
	ErrInvalidPeriods = errors.New("discount: periods must be positive")

	// ErrNotFinite is returned when an amount or principal is NaN or
	// infinite.
	ErrNotFinite = errors.New("discount: amount must be finite")
)

// PresentValue discounts a single future amount back by periods compounding
// steps: amount / (1+rate)^periods.
func PresentValue(amount, rate float64, periods int) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	if err := checkRate(rate); err != nil {
		return 0, err
	}
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	return amount / math.Pow(1+rate, float64(periods)), nil
}

// FutureValue compounds a present amount forward by periods steps:
// amount × (1+rate)^periods.
func FutureValue(amount, rate float64, periods int) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	if err := checkRate(rate); err != nil {
		return 0, err
	}
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	return amount * math.Pow(1+rate, float64(periods)), nil
}

// Payment returns the level per-period payment that fully amortizes
// principal over periods at the given per-period rate:
//
//	P × r × (1+r)^n / ((1+r)^n − 1)
//
// A zero rate is the interest-free limit, principal/periods, so the closed
// form is never evaluated with a zero denominator.
func Payment(principal, rate float64, periods int) (float64, error) {
	if err := checkAmount(principal); err != nil {
		return 0, err
	}
	if err := checkRate(rate); err != nil {
		return 0, err
	}
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	if rate == 0 {
		return principal / float64(periods), nil
	}
	factor := math.Pow(1+rate, float64(periods))
	return principal * rate * factor / (factor - 1), nil
}

func checkRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || 1+rate <= 0 {
		return fmt.Errorf("%w: got %v", ErrRateDomain, rate)
	}
	return nil
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: got %v", ErrNotFinite, amount)
	}
	return nil
}
