package models

// BreakEvenResult reports when a cumulative cash-flow series first recovers
// its outlay. Period is nil when the running total never reaches zero within
// the series. Cumulative is aligned 1:1 with the input series so callers can
// chart the recovery path directly.
type BreakEvenResult struct {
	Period     *int      `json:"period"`     // index into the input series, nil if never
	Cumulative []float64 `json:"cumulative"` // running totals, len == len(input)
}
