package mortgage

import (
	"errors"
	"math"
	"testing"

	"github.com/brickfolio/brickval/internal/analytics/discount"
)

// ════════════════════════════════════════════════════════════════════════
// Monthly payment
// ════════════════════════════════════════════════════════════════════════

func TestPaymentKnownLoans(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		years      int
		payment    float64
	}{
		{"200k at 4% over 25y", 200000, 0.04, 25, 1055.67},
		{"300k at 5% over 30y", 300000, 0.05, 30, 1610.46},
		{"150k at 3.5% over 20y", 150000, 0.035, 20, 869.94},
		{"500k at 6% over 25y", 500000, 0.06, 25, 3221.51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Payment(tt.principal, tt.annualRate, tt.years)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(res.Payment-tt.payment) > 0.50 {
				t.Errorf("expected payment %.2f, got %.2f", tt.payment, res.Payment)
			}
			if res.Months != tt.years*12 {
				t.Errorf("expected %d months, got %d", tt.years*12, res.Months)
			}
		})
	}
}

func TestPaymentZeroRate(t *testing.T) {
	res, err := Payment(100000, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Payment-833.33) > 0.01 {
		t.Errorf("expected payment 833.33, got %.2f", res.Payment)
	}
	if math.Abs(res.TotalInterest) > 1e-6 {
		t.Errorf("expected zero interest on a free loan, got %v", res.TotalInterest)
	}
}

func TestPaymentTotalsConsistent(t *testing.T) {
	res, err := Payment(200000, 0.04, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.TotalPaid-res.Payment*float64(res.Months)) > 1e-6 {
		t.Errorf("total paid %v does not match payment %v times %d months", res.TotalPaid, res.Payment, res.Months)
	}
	if math.Abs(res.TotalInterest-(res.TotalPaid-200000)) > 1e-6 {
		t.Errorf("total interest %v does not match total paid minus principal", res.TotalInterest)
	}
	if res.TotalInterest <= 0 {
		t.Errorf("expected positive lifetime interest, got %v", res.TotalInterest)
	}
}

func TestPaymentRejectsBadInputs(t *testing.T) {
	if _, err := Payment(0, 0.04, 25); !errors.Is(err, ErrInvalidPrincipal) {
		t.Errorf("expected ErrInvalidPrincipal for zero principal, got %v", err)
	}
	if _, err := Payment(-5000, 0.04, 25); !errors.Is(err, ErrInvalidPrincipal) {
		t.Errorf("expected ErrInvalidPrincipal for negative principal, got %v", err)
	}
	if _, err := Payment(200000, 0.04, 0); !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("expected ErrInvalidTerm for zero years, got %v", err)
	}
	if _, err := Payment(200000, -0.01, 25); err == nil {
		t.Error("expected error for negative rate, got nil")
	}
	if _, err := Payment(math.NaN(), 0.04, 25); err == nil {
		t.Error("expected error for NaN principal, got nil")
	}
	if _, err := Payment(200000, math.NaN(), 25); !errors.Is(err, discount.ErrRateDomain) {
		t.Errorf("expected ErrRateDomain for NaN rate, got %v", err)
	}
}

// ════════════════════════════════════════════════════════════════════════
// Amortization schedule
// ════════════════════════════════════════════════════════════════════════

func TestScheduleRetiresTheLoan(t *testing.T) {
	const principal = 200000.0
	entries, err := Schedule(principal, 0.04, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 300 {
		t.Fatalf("expected 300 entries, got %d", len(entries))
	}

	final := entries[len(entries)-1].Balance
	if final < 0 || final > BalanceTolerance {
		t.Errorf("expected final balance within a cent of zero, got %v", final)
	}

	var totalPrincipal float64
	for _, e := range entries {
		totalPrincipal += e.Principal
	}
	if math.Abs(totalPrincipal-principal) > BalanceTolerance {
		t.Errorf("expected principal portions to sum to %v, got %v", principal, totalPrincipal)
	}
}

func TestScheduleFirstPeriodSplit(t *testing.T) {
	entries, err := Schedule(200000, 0.04, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Month one accrues interest on the full principal: 200000 × 0.04/12.
	first := entries[0]
	if first.Period != 1 {
		t.Errorf("expected periods to start at 1, got %d", first.Period)
	}
	wantInterest := 200000 * 0.04 / 12
	if math.Abs(first.Interest-wantInterest) > 1e-6 {
		t.Errorf("expected first interest %.4f, got %.4f", wantInterest, first.Interest)
	}
	if math.Abs(first.Payment-(first.Interest+first.Principal)) > 1e-6 {
		t.Errorf("payment %v does not split into interest %v plus principal %v", first.Payment, first.Interest, first.Principal)
	}
	if math.Abs(first.Balance-(200000-first.Principal)) > 1e-6 {
		t.Errorf("expected balance %v after first payment, got %v", 200000-first.Principal, first.Balance)
	}
}

func TestScheduleBalanceDeclines(t *testing.T) {
	entries, err := Schedule(300000, 0.05, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := 300000.0
	for _, e := range entries {
		if e.Balance >= prev {
			t.Fatalf("balance did not decline at period %d: %v -> %v", e.Period, prev, e.Balance)
		}
		prev = e.Balance
	}
}

func TestSchedulePrincipalPortionGrows(t *testing.T) {
	entries, err := Schedule(300000, 0.05, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With a level payment each month owes less interest than the last, so
	// the principal portion must rise monotonically.
	for i := 1; i < len(entries); i++ {
		if entries[i].Principal <= entries[i-1].Principal {
			t.Fatalf("principal portion did not grow at period %d", entries[i].Period)
		}
	}
}

func TestScheduleInterestMatchesPaymentTotals(t *testing.T) {
	res, err := Payment(150000, 0.035, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := Schedule(150000, 0.035, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var totalInterest float64
	for _, e := range entries {
		totalInterest += e.Interest
	}
	if math.Abs(totalInterest-res.TotalInterest) > BalanceTolerance {
		t.Errorf("expected schedule interest %v to match payment totals %v", totalInterest, res.TotalInterest)
	}
}

func TestScheduleZeroRate(t *testing.T) {
	entries, err := Schedule(120000, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 120 {
		t.Fatalf("expected 120 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Interest != 0 {
			t.Fatalf("expected zero interest at period %d, got %v", e.Period, e.Interest)
		}
		if math.Abs(e.Principal-1000) > 1e-6 {
			t.Fatalf("expected 1000 of principal at period %d, got %v", e.Period, e.Principal)
		}
	}
	if final := entries[len(entries)-1].Balance; math.Abs(final) > 1e-6 {
		t.Errorf("expected zero final balance, got %v", final)
	}
}

func TestScheduleRejectsBadInputs(t *testing.T) {
	if _, err := Schedule(0, 0.04, 25); !errors.Is(err, ErrInvalidPrincipal) {
		t.Errorf("expected ErrInvalidPrincipal, got %v", err)
	}
	if _, err := Schedule(200000, 0.04, -1); !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("expected ErrInvalidTerm, got %v", err)
	}
}

func TestPaymentMatchesDiscountClosedForm(t *testing.T) {
	res, err := Payment(250000, 0.045, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := discount.Payment(250000, 0.045/12, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Payment != want {
		t.Errorf("expected payment %v from the closed form, got %v", want, res.Payment)
	}
}
