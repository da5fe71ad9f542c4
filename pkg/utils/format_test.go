package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{100, "$100.00"},
		{1000, "$1,000.00"},
		{12345, "$12,345.00"},
		{123456, "$123,456.00"},
		{1234567, "$1,234,567.00"},
		{123456789, "$123,456,789.00"},
		{2847.50, "$2,847.50"},
		{1234567.891, "$1,234,567.89"},
		{999.999, "$1,000.00"},
		{-1234.56, "($1,234.56)"},
		{-1000000, "($1,000,000.00)"},
		{-0.004, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatMoney(tt.input, "$")
			if result != tt.expected {
				t.Errorf("FormatMoney(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatMoneySymbol(t *testing.T) {
	if got := FormatMoney(2500, "£"); got != "£2,500.00" {
		t.Errorf("FormatMoney(2500, £) = %s, want £2,500.00", got)
	}
	if got := FormatMoney(-42.5, "€"); got != "(€42.50)" {
		t.Errorf("FormatMoney(-42.5, €) = %s, want (€42.50)", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{500, "$500.00"},
		{1500, "$1.5K"},
		{1250000, "$1.25M"},
		{780000000, "$780M"},
		{1500000000, "$1.5B"},
		{-2500000, "-$2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatCompact(tt.input, "$")
			if result != tt.expected {
				t.Errorf("FormatCompact(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0.069, "6.90%"},
		{0.0925, "9.25%"},
		{0, "0.00%"},
		{-0.015, "-1.50%"},
		{1.25, "125.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatPercent(tt.input)
			if result != tt.expected {
				t.Errorf("FormatPercent(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatMultiple(t *testing.T) {
	if got := FormatMultiple(1.4375); got != "1.44x" {
		t.Errorf("FormatMultiple(1.4375) = %s, want 1.44x", got)
	}
	if got := FormatMultiple(8.333333); got != "8.33x" {
		t.Errorf("FormatMultiple(8.333333) = %s, want 8.33x", got)
	}
}
