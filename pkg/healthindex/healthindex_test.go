package healthindex

import (
	"math"
	"testing"

	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

func compute(h profile.Household) Result {
	return Compute(h, h.Derive())
}

// referenceHousehold is the fully-specified scenario used across tests:
// income 100000, expenses 42000, no EMI, 7.14 months of emergency fund,
// both covers at or above benchmark, no investments.
func referenceHousehold() profile.Household {
	return profile.Household{
		IncomeSelf:     100000,
		FixedRent:      20000,
		FixedFood:      15000,
		FixedUtilities: 5000,
		FixedMedical:   2000,
		EmergencyFund:  300000,
		HealthCover:    1000000,
		LifeCover:      12000000,
	}
}

func TestComputeReferenceScenario(t *testing.T) {
	res := compute(referenceHousehold())

	if math.Abs(res.Metrics.SavingsRate-0.58) > 1e-9 {
		t.Errorf("savingsRate = %v, expected 0.58", res.Metrics.SavingsRate)
	}
	if efMonths := res.Metrics.EmergencyFundMonths; math.Abs(efMonths-300000.0/42000.0) > 1e-9 {
		t.Errorf("efMonths = %v, expected %.4f", efMonths, 300000.0/42000.0)
	}
	if res.Pillars.Savings != 30 {
		t.Errorf("savings pillar = %v, expected max 30 at 58%% rate", res.Pillars.Savings)
	}
	if res.Pillars.EMI != 20 {
		t.Errorf("EMI pillar = %v, expected max 20 with no EMI", res.Pillars.EMI)
	}
	if res.Pillars.EmergencyFund != 20 {
		t.Errorf("emergency fund pillar = %v, expected max 20 at 7.1 months", res.Pillars.EmergencyFund)
	}
	if res.Metrics.HealthCoverAdequacy < 1 {
		t.Errorf("health adequacy = %v, expected >= 100%%", res.Metrics.HealthCoverAdequacy)
	}
	if res.Metrics.LifeCoverAdequacy < 1 {
		t.Errorf("life adequacy = %v, expected >= 100%%", res.Metrics.LifeCoverAdequacy)
	}
	if res.Pillars.Protection != 20 {
		t.Errorf("protection pillar = %v, expected max 20", res.Pillars.Protection)
	}
	if res.Metrics.InvestmentCoverage != 0 {
		t.Errorf("investment coverage = %v, expected 0 with no investments", res.Metrics.InvestmentCoverage)
	}
	if res.Pillars.Investments != 0 {
		t.Errorf("investment pillar = %v, expected 0", res.Pillars.Investments)
	}
	if res.Score != 90 {
		t.Errorf("score = %d, expected 90", res.Score)
	}
	if res.Band != BandStrong {
		t.Errorf("band = %q, expected Strong", res.Band)
	}
}

func TestComputeAllZeroProfile(t *testing.T) {
	res := compute(profile.Household{})

	if res.Score != 0 {
		t.Errorf("score = %d, expected 0 for all-zero profile", res.Score)
	}
	if res.Band != BandCritical {
		t.Errorf("band = %q, expected Critical", res.Band)
	}
	pillars := []struct {
		name  string
		value float64
	}{
		{"savings", res.Pillars.Savings},
		{"emi", res.Pillars.EMI},
		{"emergencyFund", res.Pillars.EmergencyFund},
		{"protection", res.Pillars.Protection},
		{"investments", res.Pillars.Investments},
	}
	for _, p := range pillars {
		if p.value != 0 {
			t.Errorf("pillar %s = %v, expected 0", p.name, p.value)
		}
	}
	if math.IsNaN(res.Metrics.SavingsRate) || math.IsNaN(res.Metrics.EMIRatio) || math.IsNaN(res.Metrics.EmergencyFundMonths) {
		t.Error("a metric is NaN for the all-zero profile")
	}
}

func TestComputeZeroIncomeMetrics(t *testing.T) {
	h := profile.Household{FixedRent: 10000, TotalEMI: 5000}
	res := compute(h)

	if res.Metrics.SavingsRate != 0 {
		t.Errorf("savingsRate = %v, expected 0 with zero income", res.Metrics.SavingsRate)
	}
	if res.Metrics.EMIRatio != 0 {
		t.Errorf("emiRatio = %v, expected 0 with zero income", res.Metrics.EMIRatio)
	}
	if res.Pillars.Savings != 0 {
		t.Errorf("savings pillar = %v, expected 0", res.Pillars.Savings)
	}
	if res.Pillars.EMI != 0 {
		t.Errorf("EMI pillar = %v, expected 0 when income is zero", res.Pillars.EMI)
	}
}

func TestComputeZeroExpensesMetrics(t *testing.T) {
	h := profile.Household{
		IncomeSelf:    50000,
		EmergencyFund: 500000,
		InvMF:         1000000,
	}
	res := compute(h)

	if res.Metrics.EmergencyFundMonths != 0 {
		t.Errorf("efMonths = %v, expected 0 with zero expenses", res.Metrics.EmergencyFundMonths)
	}
	if res.Metrics.InvestmentCoverage != 0 {
		t.Errorf("investment coverage = %v, expected 0 (not infinite) with zero expenses", res.Metrics.InvestmentCoverage)
	}
	if math.IsInf(res.Metrics.InvestmentCoverage, 0) {
		t.Error("investment coverage is infinite")
	}
}

func TestComputeScoreBounds(t *testing.T) {
	huge := 1e15
	profiles := []profile.Household{
		{},
		{IncomeSelf: huge, EmergencyFund: huge, HealthCover: huge, LifeCover: huge, InvMF: huge, FixedRent: huge},
		{IncomeSelf: 1},
		{TotalEMI: huge},
		referenceHousehold(),
	}

	for i, h := range profiles {
		res := compute(h)
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("profile %d: score = %d, expected within [0, 100]", i, res.Score)
		}
	}
}

func TestEmergencyFundMonotonicity(t *testing.T) {
	h := referenceHousehold()
	h.EmergencyFund = 0

	prevPillar := -1.0
	prevScore := -1
	for _, fund := range []float64{0, 20000, 42000, 126000, 252000, 500000, 1e9} {
		h.EmergencyFund = fund
		res := compute(h)
		if res.Pillars.EmergencyFund < prevPillar {
			t.Errorf("emergency fund pillar decreased from %v to %v at fund %v", prevPillar, res.Pillars.EmergencyFund, fund)
		}
		if res.Score < prevScore {
			t.Errorf("total score decreased from %d to %d at fund %v", prevScore, res.Score, fund)
		}
		prevPillar = res.Pillars.EmergencyFund
		prevScore = res.Score
	}
}

func TestEMIMonotonicity(t *testing.T) {
	h := referenceHousehold()

	prevPillar := math.MaxFloat64
	for _, emi := range []float64{0, 5000, 15000, 30000, 45000, 60000, 200000} {
		h.TotalEMI = emi
		res := compute(h)
		if res.Pillars.EMI > prevPillar {
			t.Errorf("EMI pillar increased from %v to %v at EMI %v", prevPillar, res.Pillars.EMI, emi)
		}
		prevPillar = res.Pillars.EMI
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score    int
		expected Band
	}{
		{0, BandCritical},
		{29, BandCritical},
		{30, BandVulnerable},
		{54, BandVulnerable},
		{55, BandStable},
		{69, BandStable},
		{70, BandSecure},
		{84, BandSecure},
		{85, BandStrong},
		{100, BandStrong},
	}

	for _, tt := range tests {
		if band := BandFor(tt.score); band != tt.expected {
			t.Errorf("BandFor(%d) = %q, expected %q", tt.score, band, tt.expected)
		}
	}
}

func TestHealthCoverBenchmark(t *testing.T) {
	tests := []struct {
		name       string
		city       profile.CityTier
		dependents int
		expected   float64
	}{
		{"Metro no dependents", profile.CityMetro, 0, 500000},
		{"Metro two dependents", profile.CityMetro, 2, 900000},
		{"Tier2 one dependent", profile.CityTier2, 1, 600000},
		{"Tier3 no dependents", profile.CityTier3, 0, 300000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HealthCoverBenchmark(tt.city, tt.dependents); got != tt.expected {
				t.Errorf("HealthCoverBenchmark() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAdequacyCappedAtTwoHundredPercent(t *testing.T) {
	h := referenceHousehold()
	h.HealthCover = 1e12
	h.LifeCover = 1e12

	res := compute(h)
	if res.Metrics.HealthCoverAdequacy != 2.0 {
		t.Errorf("health adequacy = %v, expected cap at 2.0", res.Metrics.HealthCoverAdequacy)
	}
	if res.Metrics.LifeCoverAdequacy != 2.0 {
		t.Errorf("life adequacy = %v, expected cap at 2.0", res.Metrics.LifeCoverAdequacy)
	}
	if res.Pillars.Protection != 20 {
		t.Errorf("protection pillar = %v, expected 20", res.Pillars.Protection)
	}
}

func TestActionsNeverEmpty(t *testing.T) {
	h := referenceHousehold()
	h.InvMF = 1e9 // everything healthy now

	res := compute(h)
	if len(res.Actions) == 0 {
		t.Error("actions list is empty; expected the fallback message")
	}

	res = compute(profile.Household{})
	if len(res.Actions) == 0 {
		t.Error("actions list is empty for all-zero profile")
	}
}

func TestComputeDeterministic(t *testing.T) {
	h := referenceHousehold()
	a := compute(h)
	b := compute(h)

	if a.Score != b.Score || a.Band != b.Band || a.Pillars != b.Pillars || a.Metrics != b.Metrics {
		t.Error("Compute() is not deterministic for identical inputs")
	}
}
