package valuation

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/internal/analytics/discount"
	"github.com/brickfolio/brickval/pkg/models"
)

// SensitivityAnalysis values the forecast under every (discount rate,
// terminal growth) combination, fanning the grid out across workers
// goroutines (0 means one per CPU). Cells are independent, so the sweep is
// a straight fan-out with each goroutine writing its own index.
//
// The ranges are validated up front (every rate must exceed every growth,
// every growth must stay above −1), so the returned grid is always
// complete: cell i×len(growths)+j of the row-major Cells slice holds
// rates[i] crossed with growths[j].
func SensitivityAnalysis(forecast cashflow.Series, rates, growths []float64, workers int) (models.SensitivityGrid, error) {
	if err := forecast.Validate(); err != nil {
		return models.SensitivityGrid{}, err
	}
	if len(rates) == 0 || len(growths) == 0 {
		return models.SensitivityGrid{}, fmt.Errorf("valuation: sensitivity ranges must be non-empty")
	}
	for _, gr := range growths {
		if 1+gr <= 0 {
			return models.SensitivityGrid{}, fmt.Errorf("%w: growth %v", discount.ErrRateDomain, gr)
		}
	}
	for _, r := range rates {
		for _, gr := range growths {
			if r <= gr {
				return models.SensitivityGrid{}, fmt.Errorf("%w: rate %v, growth %v", ErrRateBelowGrowth, r, gr)
			}
		}
	}

	grid := models.SensitivityGrid{
		Rates:   append([]float64(nil), rates...),
		Growths: append([]float64(nil), growths...),
		Cells:   make([]models.SensitivityCell, len(rates)*len(growths)),
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i, rate := range rates {
		for j, growth := range growths {
			rate, growth := rate, growth // per-iteration copies; required for correctness before Go 1.22 loop semantics
			idx := i*len(growths) + j
			g.Go(func() error {
				res, err := DCF(DCFInput{
					Forecast:       forecast,
					DiscountRate:   rate,
					TerminalGrowth: growth,
				})
				if err != nil {
					return fmt.Errorf("cell (%v, %v): %w", rate, growth, err)
				}
				// each goroutine owns exactly one cell index
				grid.Cells[idx] = models.SensitivityCell{
					DiscountRate:    rate,
					TerminalGrowth:  growth,
					EnterpriseValue: res.EnterpriseValue,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return models.SensitivityGrid{}, err
	}
	return grid, nil
}
