package discount

import (
	"errors"
	"math"
	"testing"
)

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    float64
		periods int
		want    float64
	}{
		{"one period at 10%", 110, 0.10, 1, 100},
		{"two periods at 10%", 121, 0.10, 2, 100},
		{"zero rate", 500, 0, 3, 500},
		{"negative rate", 90, -0.10, 1, 100},
	}
	for _, tt := range tests {
		got, err := PresentValue(tt.amount, tt.rate, tt.periods)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %.4f, got %.4f", tt.name, tt.want, got)
		}
	}
}

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    float64
		periods int
		want    float64
		tol     float64
	}{
		{"10k at 5% annual for 10y", 10000, 0.05, 10, 16288.95, 0.01},
		{"10k at 5%/12 monthly for 120m", 10000, 0.05 / 12, 120, 16470.09, 0.01},
		{"round trip with PV", 100, 0.10, 1, 110, 1e-9},
	}
	for _, tt := range tests {
		got, err := FutureValue(tt.amount, tt.rate, tt.periods)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: expected %.2f, got %.2f", tt.name, tt.want, got)
		}
	}
}

func TestPresentFutureValueInverse(t *testing.T) {
	fv, err := FutureValue(12345.67, 0.07, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pv, err := PresentValue(fv, 0.07, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pv-12345.67) > 1e-6 {
		t.Errorf("expected round trip to 12345.67, got %.6f", pv)
	}
}

func TestPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
		want      float64
		tol       float64
	}{
		{"200k at 4%/12 over 300m", 200000, 0.04 / 12, 300, 1055.67, 0.50},
		{"300k at 5%/12 over 360m", 300000, 0.05 / 12, 360, 1610.46, 0.50},
		{"zero rate splits evenly", 100000, 0, 120, 833.33, 0.01},
	}
	for _, tt := range tests {
		got, err := Payment(tt.principal, tt.rate, tt.periods)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: expected %.2f, got %.2f", tt.name, tt.want, got)
		}
	}
}

func TestRateDomainGuards(t *testing.T) {
	if _, err := PresentValue(100, -1, 1); !errors.Is(err, ErrRateDomain) {
		t.Errorf("PresentValue at rate -1: expected ErrRateDomain, got %v", err)
	}
	if _, err := FutureValue(100, -1.5, 1); !errors.Is(err, ErrRateDomain) {
		t.Errorf("FutureValue below -1: expected ErrRateDomain, got %v", err)
	}
	if _, err := Payment(100, math.NaN(), 12); !errors.Is(err, ErrRateDomain) {
		t.Errorf("Payment with NaN rate: expected ErrRateDomain, got %v", err)
	}
	if _, err := FutureValue(100, math.Inf(1), 1); !errors.Is(err, ErrRateDomain) {
		t.Errorf("FutureValue with infinite rate: expected ErrRateDomain, got %v", err)
	}
}

func TestNotFiniteAmountGuards(t *testing.T) {
	if _, err := PresentValue(math.NaN(), 0.05, 1); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN amount: expected ErrNotFinite, got %v", err)
	}
	if _, err := FutureValue(math.Inf(-1), 0.05, 1); !errors.Is(err, ErrNotFinite) {
		t.Errorf("infinite amount: expected ErrNotFinite, got %v", err)
	}
	if _, err := Payment(math.NaN(), 0.004, 360); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN principal: expected ErrNotFinite, got %v", err)
	}
}

func TestPeriodGuards(t *testing.T) {
	if _, err := PresentValue(100, 0.05, 0); !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("zero periods: expected ErrInvalidPeriods, got %v", err)
	}
	if _, err := FutureValue(100, 0.05, -3); !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("negative periods: expected ErrInvalidPeriods, got %v", err)
	}
	if _, err := Payment(100, 0, 0); !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("zero-rate zero-period payment: expected ErrInvalidPeriods, got %v", err)
	}
}
