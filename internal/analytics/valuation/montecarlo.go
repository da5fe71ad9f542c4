package valuation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/brickfolio/brickval/internal/analytics/cashflow"
	"github.com/brickfolio/brickval/pkg/models"
)

// DefaultTrials is the simulation size offered to callers with no view of
// their own; the engine never substitutes it.
const DefaultTrials = 10000

// DefaultPercentiles returns the distribution points reported when the
// caller requests none.
func DefaultPercentiles() []float64 {
	return []float64{5, 25, 50, 75, 95}
}

// ErrInvalidTrials is returned for a non-positive trial count.
var ErrInvalidTrials = errors.New("valuation: trials must be positive")

// NormalSource yields standard-normal draws for the simulator. BoxMuller is
// the production implementation; tests substitute fixed sequences.
type NormalSource interface {
	Norm() float64
}

// Uniform yields draws on [0,1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// BoxMuller maps pairs of uniform draws onto standard-normal samples:
// z = sqrt(−2·ln u1) · cos(2π·u2).
type BoxMuller struct {
	src Uniform
}

// NewBoxMuller wraps a uniform source, typically
// rand.New(rand.NewSource(seed)) for a reproducible run.
func NewBoxMuller(src Uniform) *BoxMuller {
	return &BoxMuller{src: src}
}

// Norm returns one standard-normal draw. u1 is redrawn while zero to keep
// the logarithm in domain.
func (b *BoxMuller) Norm() float64 {
	u1 := b.src.Float64()
	for u1 == 0 {
		u1 = b.src.Float64()
	}
	u2 := b.src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// SimulationInput holds the assumptions for one Monte Carlo valuation run.
type SimulationInput struct {
	BaseCashFlow float64 // most recent operating cash flow, compounded forward per trial
	Years        int     // forecast horizon in periods
	Trials       int     // simulated paths, e.g., DefaultTrials
	GrowthMean   float64 // mean of the annual growth distribution
	GrowthStdDev float64 // standard deviation of annual growth, ≥ 0
	DiscountRate float64 // fixed across trials; must exceed GrowthMean

	Percentiles []float64    // distribution points to report; nil means DefaultPercentiles()
	Workers     int          // parallel valuations; 0 means one per CPU
	Seed        int64        // seeds the default Box–Muller source
	Normals     NormalSource // optional source override; wins over Seed
}

// Simulate runs Trials independent DCF valuations, each driven by a growth
// path drawn year-by-year from Normal(GrowthMean, GrowthStdDev), at a fixed
// discount rate and a terminal growth equal to the distribution mean.
//
// All growth paths are drawn sequentially from one source before the
// valuations fan out, so a fixed Seed produces identical output at any
// worker count. The full sorted sample is retained in the result.
func Simulate(in SimulationInput) (models.SimulationResult, error) {
	if in.Trials <= 0 {
		return models.SimulationResult{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, in.Trials)
	}
	if in.Years <= 0 {
		return models.SimulationResult{}, fmt.Errorf("valuation: years must be positive, got %d", in.Years)
	}
	if in.GrowthStdDev < 0 {
		return models.SimulationResult{}, fmt.Errorf("valuation: growth stddev must be non-negative, got %v", in.GrowthStdDev)
	}
	if math.IsNaN(in.BaseCashFlow) || math.IsInf(in.BaseCashFlow, 0) {
		return models.SimulationResult{}, fmt.Errorf("valuation: base cash flow is not finite")
	}
	if in.DiscountRate <= in.GrowthMean {
		return models.SimulationResult{}, fmt.Errorf("%w: rate %v, mean growth %v", ErrRateBelowGrowth, in.DiscountRate, in.GrowthMean)
	}
	pcts := in.Percentiles
	if len(pcts) == 0 {
		pcts = DefaultPercentiles()
	}
	for _, p := range pcts {
		if p < 0 || p > 100 {
			return models.SimulationResult{}, fmt.Errorf("valuation: percentile %v out of range [0, 100]", p)
		}
	}

	normals := in.Normals
	if normals == nil {
		normals = NewBoxMuller(rand.New(rand.NewSource(in.Seed)))
	}

	// Draw every path up front from the single source; only the valuations
	// run concurrently.
	paths := make([][]float64, in.Trials)
	for t := range paths {
		growth := make([]float64, in.Years)
		for y := range growth {
			growth[y] = in.GrowthMean + in.GrowthStdDev*normals.Norm()
		}
		paths[t] = growth
	}

	samples := make([]float64, in.Trials)
	workers := in.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for t := range paths {
		t := t // per-iteration copy; required for correctness before Go 1.22 loop semantics
		g.Go(func() error {
			res, err := DCF(DCFInput{
				Forecast:       cashflow.GrowthPath(in.BaseCashFlow, paths[t]),
				DiscountRate:   in.DiscountRate,
				TerminalGrowth: in.GrowthMean,
			})
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			samples[t] = res.EnterpriseValue // distinct index per goroutine
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SimulationResult{}, err
	}

	sort.Float64s(samples)

	res := models.SimulationResult{
		Trials:      in.Trials,
		Samples:     samples,
		Mean:        mean(samples),
		StdDev:      stddev(samples),
		Min:         samples[0],
		Max:         samples[len(samples)-1],
		Percentiles: make([]models.Percentile, len(pcts)),
	}
	for i, p := range pcts {
		res.Percentiles[i] = models.Percentile{Pct: p, Value: percentile(samples, p)}
	}
	return res, nil
}
