package cashflow

import (
	"errors"
	"math"
	"testing"
)

func TestValidateEmpty(t *testing.T) {
	var s Series
	if err := s.Validate(); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}

func TestValidateNonFinite(t *testing.T) {
	cases := []Series{
		{100, math.NaN(), 200},
		{math.Inf(1)},
		{0, math.Inf(-1)},
	}
	for i, s := range cases {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected error for non-finite element", i)
		}
	}
}

func TestSumAndCumulative(t *testing.T) {
	s := Series{-100000, 20000, 20000, 20000, 20000, 20000}

	if got := s.Sum(); got != 0 {
		t.Errorf("expected sum 0, got %.2f", got)
	}

	cum := s.Cumulative()
	want := []float64{-100000, -80000, -60000, -40000, -20000, 0}
	if len(cum) != len(want) {
		t.Fatalf("expected %d cumulative entries, got %d", len(want), len(cum))
	}
	for i := range want {
		if cum[i] != want[i] {
			t.Errorf("cumulative[%d]: expected %.0f, got %.0f", i, want[i], cum[i])
		}
	}
}

func TestCompound(t *testing.T) {
	base := Series{100, 100, 100}

	flat := base.Compound(0)
	for i := range base {
		if flat[i] != base[i] {
			t.Errorf("zero growth changed element %d: %.4f", i, flat[i])
		}
	}

	grown := base.Compound(0.10)
	want := []float64{110, 121, 133.1}
	for i := range want {
		if math.Abs(grown[i]-want[i]) > 1e-9 {
			t.Errorf("element %d: expected %.4f, got %.4f", i, want[i], grown[i])
		}
	}

	// the receiver must stay untouched
	if base[0] != 100 {
		t.Errorf("Compound mutated its receiver: %.2f", base[0])
	}
}

func TestGrowthPath(t *testing.T) {
	path := GrowthPath(100, []float64{0.10, 0.10, -0.50})
	want := []float64{110, 121, 60.5}
	for i := range want {
		if math.Abs(path[i]-want[i]) > 1e-9 {
			t.Errorf("element %d: expected %.4f, got %.4f", i, want[i], path[i])
		}
	}

	if len(GrowthPath(100, nil)) != 0 {
		t.Error("expected empty path for no growth rates")
	}
}

func TestBreakEvenRecovers(t *testing.T) {
	res, err := BreakEven(Series{-100000, 20000, 20000, 20000, 20000, 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Period == nil {
		t.Fatal("expected a break-even period, got nil")
	}
	if *res.Period != 5 {
		t.Errorf("expected break-even at period 5, got %d", *res.Period)
	}
	if len(res.Cumulative) != 6 {
		t.Errorf("expected 6 cumulative entries, got %d", len(res.Cumulative))
	}
	if res.Cumulative[5] != 0 {
		t.Errorf("expected cumulative 0 at period 5, got %.2f", res.Cumulative[5])
	}
}

func TestBreakEvenNever(t *testing.T) {
	res, err := BreakEven(Series{-100000, 10000, 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Period != nil {
		t.Errorf("expected nil period, got %d", *res.Period)
	}
	if len(res.Cumulative) != 3 {
		t.Errorf("expected full cumulative sequence, got %d entries", len(res.Cumulative))
	}
}

func TestBreakEvenImmediate(t *testing.T) {
	res, err := BreakEven(Series{5000, -2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Period == nil || *res.Period != 0 {
		t.Errorf("expected break-even at period 0, got %v", res.Period)
	}
}

func TestBreakEvenEmpty(t *testing.T) {
	if _, err := BreakEven(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}
