package models

// ReturnResult represents an internal-rate-of-return estimate. A solver that
// fails to converge still returns the best rate it found; callers check
// Converged instead of catching an error, so a stubborn cash-flow pattern
// degrades into data, not a failure.
type ReturnResult struct {
	Rate       float64 `json:"rate"`       // best per-period IRR estimate, e.g., 0.10
	NPV        float64 `json:"npv"`        // net present value at Rate (≈0 when converged)
	Converged  bool    `json:"converged"`  // |Δrate| dropped below tolerance
	Iterations int     `json:"iterations"` // solver steps used, Newton and bisection combined
}
