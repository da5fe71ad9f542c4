// Package cashflow provides the ordered cash-flow series the BrickVal
// calculators consume, plus the break-even analyzer built on top of it.
//
// A Series is period-indexed: element i holds the flow for period i+1.
// Operations that involve a period-0 outlay document where it goes. The
// break-even analyzer and the IRR family take it as element 0, while NPV
// and the DCF calculator keep the forecast strictly at periods 1..n.
package cashflow

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySeries is returned when an operation needs at least one flow.
var ErrEmptySeries = errors.New("cashflow: series is empty")

// Series is an ordered sequence of signed cash amounts. The sign convention
// (inflows positive, outflows negative) is the caller's, applied
// consistently within one series.
type Series []float64

// Validate reports whether the series is usable: non-empty, all finite.
func (s Series) Validate() error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("cashflow: element %d is not finite", i)
		}
	}
	return nil
}

// Sum returns the un-discounted total of the series.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Cumulative returns the running totals of the series, aligned with it.
func (s Series) Cumulative() []float64 {
	out := make([]float64, len(s))
	var total float64
	for i, v := range s {
		total += v
		out[i] = total
	}
	return out
}

// Compound returns a copy of the series with a flat growth rate applied from
// the first forecast period onward: element i is scaled by (1+growth)^(i+1),
// so period 1 already grows once. Zero growth returns the series unchanged.
func (s Series) Compound(growth float64) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v * math.Pow(1+growth, float64(i+1))
	}
	return out
}

// GrowthPath builds a forecast by compounding base through successive
// per-period growth rates: element 0 is base×(1+growth[0]), element i is
// element i−1 × (1+growth[i]). Used by the Monte Carlo simulator, where each
// trial draws its own growth slice.
func GrowthPath(base float64, growth []float64) Series {
	out := make(Series, len(growth))
	cf := base
	for i, g := range growth {
		cf *= 1 + g
		out[i] = cf
	}
	return out
}
