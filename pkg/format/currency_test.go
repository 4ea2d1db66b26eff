package format

import "testing"

func TestRupee(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "₹0"},
		{"Under a thousand", 999, "₹999"},
		{"Thousands", 42000, "₹42,000"},
		{"Lakh", 100000, "₹1,00,000"},
		{"Lakhs", 1234567, "₹12,34,567"},
		{"Crore", 10000000, "₹1,00,00,000"},
		{"Rounded", 999.6, "₹1,000"},
		{"Negative", -42000, "-₹42,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rupee(tt.amount); got != tt.expected {
				t.Errorf("Rupee(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumeric(t *testing.T) {
	if got := Numeric(1234567); got != "12,34,567" {
		t.Errorf("Numeric(1234567) = %q, expected 12,34,567", got)
	}
	if got := Numeric(-500); got != "-500" {
		t.Errorf("Numeric(-500) = %q, expected -500", got)
	}
}

func TestIndianLocaleTag(t *testing.T) {
	if got := Indian.String(); got != "en-IN" {
		t.Errorf("Indian locale tag = %q, expected en-IN", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.58); got != "58.0%" {
		t.Errorf("Percent(0.58) = %q, expected 58.0%%", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Errorf("Percent(0) = %q, expected 0.0%%", got)
	}
}
