package cashflow

import (
	"github.com/brickfolio/brickval/pkg/models"
)

// BreakEven walks the running total of series and reports the first index at
// which it is no longer negative. The caller puts the initial outlay at
// element 0 as a negative flow, which makes the returned index the period
// number directly. A series that never recovers yields a nil Period together
// with the full cumulative sequence, so the caller can still chart how close
// the investment came.
func BreakEven(series Series) (models.BreakEvenResult, error) {
	if err := series.Validate(); err != nil {
		return models.BreakEvenResult{}, err
	}

	res := models.BreakEvenResult{Cumulative: series.Cumulative()}
	for i, total := range res.Cumulative {
		if total >= 0 {
			period := i
			res.Period = &period
			break
		}
	}
	return res, nil
}
