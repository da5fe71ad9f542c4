package models

// Percentile is a single point of a simulated outcome distribution.
type Percentile struct {
	Pct   float64 `json:"pct"`   // e.g., 95 for the 95th percentile
	Value float64 `json:"value"` // enterprise value at that percentile
}

// SimulationResult summarizes a Monte Carlo valuation run. Samples holds the
// full outcome distribution in ascending order so callers can chart it or
// derive further percentiles without re-running the simulation.
type SimulationResult struct {
	Trials      int          `json:"trials"`
	Samples     []float64    `json:"samples"`     // enterprise values, ascending
	Mean        float64      `json:"mean"`
	StdDev      float64      `json:"std_dev"`     // sample standard deviation
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Percentiles []Percentile `json:"percentiles"` // ascending by Pct
}
