package profile

import (
	"math"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	h := Household{}.Normalize()

	if h.Age != 30 {
		t.Errorf("Normalize() age = %d, expected default 30", h.Age)
	}
	if h.CityTier != CityMetro {
		t.Errorf("Normalize() cityTier = %q, expected metro", h.CityTier)
	}
	if h.EmploymentType != EmploymentUnset {
		t.Errorf("Normalize() employmentType = %q, expected unset", h.EmploymentType)
	}
}

func TestNormalizeCoercion(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Negative amount", input: -500, expected: 0},
		{name: "NaN", input: math.NaN(), expected: 0},
		{name: "Positive infinity", input: math.Inf(1), expected: 0},
		{name: "Negative infinity", input: math.Inf(-1), expected: 0},
		{name: "Valid amount", input: 42000, expected: 42000},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Household{IncomeSelf: tt.input}.Normalize()
			if h.IncomeSelf != tt.expected {
				t.Errorf("Normalize() incomeSelf = %v, expected %v", h.IncomeSelf, tt.expected)
			}
		})
	}
}

func TestNormalizeInvalidEnums(t *testing.T) {
	h := Household{
		EmploymentType: "astronaut",
		CityTier:       "tier9",
		Dependents:     -3,
	}.Normalize()

	if h.EmploymentType != EmploymentUnset {
		t.Errorf("Normalize() employmentType = %q, expected unset", h.EmploymentType)
	}
	if h.CityTier != CityMetro {
		t.Errorf("Normalize() cityTier = %q, expected metro fallback", h.CityTier)
	}
	if h.Dependents != 0 {
		t.Errorf("Normalize() dependents = %d, expected 0", h.Dependents)
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	h := Household{IncomeSelf: -100}
	_ = h.Normalize()
	if h.IncomeSelf != -100 {
		t.Errorf("Normalize() mutated the receiver: incomeSelf = %v", h.IncomeSelf)
	}
}

func TestFromMap(t *testing.T) {
	fields := map[string]interface{}{
		"age":          float64(40),
		"cityTier":     "tier2",
		"incomeSelf":   float64(80000),
		"fixedRent":    20000, // int, as a YAML decoder would produce
		"totalEmi":     float64(-500),
		"unknownField": "ignored",
		"healthCover":  "not-a-number",
	}

	h := FromMap(fields)

	if h.Age != 40 {
		t.Errorf("FromMap() age = %d, expected 40", h.Age)
	}
	if h.CityTier != CityTier2 {
		t.Errorf("FromMap() cityTier = %q, expected tier2", h.CityTier)
	}
	if h.IncomeSelf != 80000 {
		t.Errorf("FromMap() incomeSelf = %v, expected 80000", h.IncomeSelf)
	}
	if h.FixedRent != 20000 {
		t.Errorf("FromMap() fixedRent = %v, expected 20000", h.FixedRent)
	}
	if h.TotalEMI != 0 {
		t.Errorf("FromMap() totalEmi = %v, expected coercion to 0", h.TotalEMI)
	}
	if h.HealthCover != 0 {
		t.Errorf("FromMap() healthCover = %v, expected 0 for non-numeric input", h.HealthCover)
	}
}

func TestFromMapEmpty(t *testing.T) {
	h := FromMap(nil)
	if h.Age != 30 || h.CityTier != CityMetro {
		t.Errorf("FromMap(nil) did not apply defaults: age=%d cityTier=%q", h.Age, h.CityTier)
	}
}
