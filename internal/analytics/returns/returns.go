// Package returns implements the investment return metrics: net present
// value, internal rate of return and modified internal rate of return.
//
// The IRR family takes the period-0 outlay as the first series element,
// matching how deal cash flows are exported. NPV keeps the outlay as a
// separate argument instead, so callers can price a forecast against a
// quoted entry cost without re-indexing the series.
package returns

import (
	"errors"
	"fmt"
	"math"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/internal/analytics/discount"
	"github.com/brickfolio/brickval/pkg/models"
)

// Solver caps applied when IRROptions leaves them zero.
const (
	DefaultGuess         = 0.10
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-7
)

// ErrDegenerateCashFlow is returned when a series cannot host the requested
// metric: the IRR and MIRR need at least one inflow and one outflow.
var ErrDegenerateCashFlow = errors.New("returns: cash flows must include at least one inflow and one outflow")

// NPV discounts flows (periods 1..n) at rate and subtracts the period-0
// outlay un-discounted: Σ CF_t/(1+rate)^t − outlay.
func NPV(flows cashflow.Series, rate, outlay float64) (float64, error) {
	if err := flows.Validate(); err != nil {
		return 0, err
	}
	if 1+rate <= 0 {
		return 0, fmt.Errorf("%w: got %v", discount.ErrRateDomain, rate)
	}
	if math.IsNaN(outlay) || math.IsInf(outlay, 0) {
		return 0, fmt.Errorf("returns: outlay is not finite, got %v", outlay)
	}
	total := -outlay
	for i, cf := range flows {
		pv, err := discount.PresentValue(cf, rate, i+1)
		if err != nil {
			return 0, err
		}
		total += pv
	}
	return total, nil
}

// IRROptions bounds the IRR solver. Zero fields fall back to the package
// defaults.
type IRROptions struct {
	Guess         float64 // starting rate; 0 means DefaultGuess
	MaxIterations int     // 0 means DefaultMaxIterations
	Tolerance     float64 // 0 means DefaultTolerance
}

// IRR finds the rate at which the series (period 0 included as the first
// element) discounts to zero, by Newton–Raphson with the analytic
// derivative. When Newton stalls or leaves the (1+r) > 0 domain, a bisection
// pass over a fixed rate ladder rescues the patterns that still bracket a
// sign change.
//
// Failing to converge is not an error: the result carries the best rate
// found with Converged false, and Iterations counts every step taken in
// both phases. Errors are reserved for inputs no solver could price.
func IRR(flows cashflow.Series, opts IRROptions) (models.ReturnResult, error) {
	if err := flows.Validate(); err != nil {
		return models.ReturnResult{}, err
	}
	if !hasBothSigns(flows) {
		return models.ReturnResult{}, ErrDegenerateCashFlow
	}

	guess := opts.Guess
	if guess == 0 {
		guess = DefaultGuess
	}
	if math.IsNaN(guess) || math.IsInf(guess, 0) || 1+guess <= 0 {
		return models.ReturnResult{}, fmt.Errorf("%w: guess %v", discount.ErrRateDomain, guess)
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	rate := guess
	converged := false
	steps := 0
	for steps < maxIter {
		steps++
		value := npvAt(flows, rate)
		deriv := npvDerivative(flows, rate)
		if deriv == 0 || math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			break // flat spot, Newton has no direction
		}
		next := rate - value/deriv
		if 1+next <= 0 || math.IsNaN(next) || math.IsInf(next, 0) {
			break // stepped outside the rate domain
		}
		delta := math.Abs(next - rate)
		rate = next
		if delta < tol {
			converged = true
			break
		}
	}

	if !converged {
		if r, extra, ok := bisect(flows, tol, maxIter); ok {
			return models.ReturnResult{
				Rate:       r,
				NPV:        npvAt(flows, r),
				Converged:  true,
				Iterations: steps + extra,
			}, nil
		}
	}
	return models.ReturnResult{
		Rate:       rate,
		NPV:        npvAt(flows, rate),
		Converged:  converged,
		Iterations: steps,
	}, nil
}

// MIRR compounds inflows forward to the horizon at reinvestRate, discounts
// outflows back to period 0 at financeRate, and reads the single blended
// rate off the ratio: (FV⁺ / −PV⁻)^(1/n) − 1, with n periods after period 0.
func MIRR(flows cashflow.Series, financeRate, reinvestRate float64) (float64, error) {
	if err := flows.Validate(); err != nil {
		return 0, err
	}
	if len(flows) < 2 {
		return 0, fmt.Errorf("%w: need at least two periods", ErrDegenerateCashFlow)
	}
	if !hasBothSigns(flows) {
		return 0, ErrDegenerateCashFlow
	}
	if math.IsNaN(financeRate) || math.IsInf(financeRate, 0) || 1+financeRate <= 0 {
		return 0, fmt.Errorf("%w: finance rate %v", discount.ErrRateDomain, financeRate)
	}
	if math.IsNaN(reinvestRate) || math.IsInf(reinvestRate, 0) || 1+reinvestRate <= 0 {
		return 0, fmt.Errorf("%w: reinvest rate %v", discount.ErrRateDomain, reinvestRate)
	}

	n := len(flows) - 1
	var fvPos, pvNeg float64
	for t, cf := range flows {
		switch {
		case cf > 0:
			fvPos += cf * math.Pow(1+reinvestRate, float64(n-t))
		case cf < 0:
			pvNeg += cf / math.Pow(1+financeRate, float64(t))
		}
	}
	if pvNeg == 0 {
		return 0, fmt.Errorf("%w: outflows discount to zero", ErrDegenerateCashFlow)
	}
	return math.Pow(fvPos/-pvNeg, 1/float64(n)) - 1, nil
}

// ────────────────────────────────────────────────────────────────────
// Solver internals
// ────────────────────────────────────────────────────────────────────

// npvAt evaluates Σ CF_t/(1+rate)^t across the whole series, period 0
// included.
func npvAt(flows cashflow.Series, rate float64) float64 {
	var total float64
	for t, cf := range flows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

// npvDerivative is d(npvAt)/d(rate): Σ −t·CF_t/(1+rate)^(t+1).
func npvDerivative(flows cashflow.Series, rate float64) float64 {
	var total float64
	for t, cf := range flows {
		if t == 0 {
			continue
		}
		total -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return total
}

// bisect scans a fixed ladder of rates for a sign change and halves the
// bracket down to tol. Returns false when no ladder interval brackets a
// root or the budget runs out first.
func bisect(flows cashflow.Series, tol float64, maxIter int) (float64, int, bool) {
	ladder := []float64{-0.999, -0.9, -0.75, -0.5, -0.25, -0.1, 0, 0.1, 0.25, 0.5, 1, 2, 5, 10, 100}

	var lo, hi, loVal float64
	found := false
	prev, prevVal := ladder[0], npvAt(flows, ladder[0])
	for _, r := range ladder[1:] {
		val := npvAt(flows, r)
		if prevVal*val <= 0 && !math.IsNaN(prevVal) && !math.IsNaN(val) {
			lo, hi, loVal = prev, r, prevVal
			found = true
			break
		}
		prev, prevVal = r, val
	}
	if !found {
		return 0, 0, false
	}

	steps := 0
	for steps < maxIter && hi-lo > tol {
		steps++
		mid := (lo + hi) / 2
		v := npvAt(flows, mid)
		if loVal*v <= 0 {
			hi = mid
		} else {
			lo, loVal = mid, v
		}
	}
	if hi-lo <= tol {
		return (lo + hi) / 2, steps, true
	}
	return 0, steps, false
}

func hasBothSigns(flows cashflow.Series) bool {
	var pos, neg bool
	for _, cf := range flows {
		if cf > 0 {
			pos = true
		}
		if cf < 0 {
			neg = true
		}
	}
	return pos && neg
}
