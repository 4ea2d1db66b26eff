package fire

import (
	"math"
	"testing"

	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

func referenceTotals() profile.Totals {
	h := profile.Household{
		IncomeSelf:     100000,
		FixedRent:      20000,
		FixedFood:      15000,
		FixedUtilities: 5000,
		FixedMedical:   2000,
	}
	return h.Derive()
}

func TestProjectBasics(t *testing.T) {
	totals := referenceTotals() // expenses 42000/month
	a := Assumptions{
		FireMultiple:       25,
		CurrentAge:         30,
		TargetAge:          40,
		AnnualReturnPct:    12,
		AnnualInflationPct: 6,
	}

	plan := Project(totals, a)

	if plan.YearsToTarget != 10 {
		t.Errorf("yearsToTarget = %d, expected 10", plan.YearsToTarget)
	}

	annualExpensesToday := 42000.0 * 12
	wantHorizonExpenses := annualExpensesToday * math.Pow(1.06, 10)
	if math.Abs(plan.AnnualExpensesAtHorizon-wantHorizonExpenses) > 1 {
		t.Errorf("annualExpensesAtHorizon = %v, expected %v", plan.AnnualExpensesAtHorizon, wantHorizonExpenses)
	}
	wantTarget := wantHorizonExpenses * 25
	if math.Abs(plan.TargetCorpus-wantTarget) > 1 {
		t.Errorf("targetCorpus = %v, expected %v", plan.TargetCorpus, wantTarget)
	}
	if plan.AlreadyFunded {
		t.Error("alreadyFunded = true with no investments")
	}
	if plan.RequiredMonthlySIP <= 0 {
		t.Errorf("requiredMonthlySIP = %v, expected positive", plan.RequiredMonthlySIP)
	}
	if plan.RequiredLumpSumToday <= 0 {
		t.Errorf("requiredLumpSumToday = %v, expected positive", plan.RequiredLumpSumToday)
	}

	// The SIP must actually close the gap: contributing it for the horizon
	// should land on the target within rounding.
	corpus := ProjectedCorpus(totals, a, plan.RequiredMonthlySIP)
	if math.Abs(corpus-plan.TargetCorpus) > 1 {
		t.Errorf("contributing the required SIP yields %v, expected target %v", corpus, plan.TargetCorpus)
	}
}

func TestProjectIdempotent(t *testing.T) {
	totals := referenceTotals()
	a := DefaultAssumptions(35)

	first := Project(totals, a)
	second := Project(totals, a)

	if first != second {
		t.Errorf("Project() not idempotent: %+v vs %+v", first, second)
	}
}

func TestProjectAlreadyFunded(t *testing.T) {
	totals := referenceTotals()
	totals.TotalInvestments = 1e9
	a := Assumptions{
		FireMultiple:       25,
		CurrentAge:         30,
		TargetAge:          40,
		AnnualReturnPct:    12,
		AnnualInflationPct: 6,
	}

	plan := Project(totals, a)

	if !plan.AlreadyFunded {
		t.Error("alreadyFunded = false, expected true")
	}
	if plan.RequiredMonthlySIP != 0 {
		t.Errorf("requiredMonthlySIP = %v, expected 0 when already funded", plan.RequiredMonthlySIP)
	}
	if plan.RequiredLumpSumToday != 0 {
		t.Errorf("requiredLumpSumToday = %v, expected 0 when already funded", plan.RequiredLumpSumToday)
	}
}

func TestProjectZeroHorizon(t *testing.T) {
	totals := referenceTotals()
	totals.TotalInvestments = 100000
	a := Assumptions{
		FireMultiple:       25,
		CurrentAge:         60,
		TargetAge:          60,
		AnnualReturnPct:    12,
		AnnualInflationPct: 6,
	}

	plan := Project(totals, a)

	annualExpensesToday := 42000.0 * 12
	wantTarget := annualExpensesToday * 25
	if math.Abs(plan.TargetCorpus-wantTarget) > 1e-6 {
		t.Errorf("targetCorpus = %v, expected %v with no inflation adjustment at zero horizon", plan.TargetCorpus, wantTarget)
	}
	wantLump := wantTarget - 100000
	if math.Abs(plan.RequiredLumpSumToday-wantLump) > 1e-6 {
		t.Errorf("requiredLumpSumToday = %v, expected %v", plan.RequiredLumpSumToday, wantLump)
	}
	if plan.RequiredMonthlySIP != 0 {
		t.Errorf("requiredMonthlySIP = %v, expected 0 at zero horizon", plan.RequiredMonthlySIP)
	}
}

func TestProjectTargetAgeBelowCurrentAge(t *testing.T) {
	totals := referenceTotals()
	a := Assumptions{FireMultiple: 25, CurrentAge: 65, TargetAge: 60, AnnualReturnPct: 12, AnnualInflationPct: 6}

	plan := Project(totals, a)
	if plan.YearsToTarget != 0 {
		t.Errorf("yearsToTarget = %d, expected floor at 0", plan.YearsToTarget)
	}
}

func TestProjectZeroReturnStraightLine(t *testing.T) {
	totals := referenceTotals()
	a := Assumptions{
		FireMultiple:       20,
		CurrentAge:         30,
		TargetAge:          40,
		AnnualReturnPct:    0,
		AnnualInflationPct: 0,
	}

	plan := Project(totals, a)

	// With zero return and zero inflation the SIP is the straight-line gap.
	wantTarget := 42000.0 * 12 * 20
	wantSIP := wantTarget / (10 * 12)
	if math.Abs(plan.TargetCorpus-wantTarget) > 1e-6 {
		t.Errorf("targetCorpus = %v, expected %v", plan.TargetCorpus, wantTarget)
	}
	if math.Abs(plan.RequiredMonthlySIP-wantSIP) > 1e-6 {
		t.Errorf("requiredMonthlySIP = %v, expected straight-line %v", plan.RequiredMonthlySIP, wantSIP)
	}
	if math.IsNaN(plan.RequiredMonthlySIP) || math.IsInf(plan.RequiredMonthlySIP, 0) {
		t.Error("requiredMonthlySIP is NaN or Inf")
	}
}

func TestProjectZeroExpenses(t *testing.T) {
	totals := profile.Household{IncomeSelf: 50000}.Derive()
	plan := Project(totals, DefaultAssumptions(30))

	if plan.TargetCorpus != 0 {
		t.Errorf("targetCorpus = %v, expected 0 with zero expenses", plan.TargetCorpus)
	}
	if !plan.AlreadyFunded {
		t.Error("alreadyFunded = false, expected true for a zero target")
	}
	if plan.RequiredMonthlySIP != 0 || plan.RequiredLumpSumToday != 0 {
		t.Errorf("required contributions = (%v, %v), expected 0", plan.RequiredMonthlySIP, plan.RequiredLumpSumToday)
	}
}

func TestAnnuityFactor(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		months   int
		expected float64
	}{
		{"Zero rate falls back to month count", 0, 120, 120},
		{"Zero months", 0.01, 0, 1},
		{"One month", 0.01, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := annuityFactor(tt.rate, tt.months); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("annuityFactor(%v, %d) = %v, expected %v", tt.rate, tt.months, got, tt.expected)
			}
		})
	}

	// 1% monthly over 12 months: ((1.01)^12 - 1) / 0.01
	want := (math.Pow(1.01, 12) - 1) / 0.01
	if got := annuityFactor(0.01, 12); math.Abs(got-want) > 1e-9 {
		t.Errorf("annuityFactor(0.01, 12) = %v, expected %v", got, want)
	}
}

func TestWithReturn(t *testing.T) {
	totals := referenceTotals()
	a := DefaultAssumptions(30)
	base := Project(totals, a)

	conservative := WithReturn(totals, a, 8, "conservative returns")
	if conservative.Label != "conservative returns" {
		t.Errorf("label = %q, expected the caller's label", conservative.Label)
	}
	if conservative.ProjectedCorpus >= base.TargetCorpus {
		t.Errorf("baseline SIP at a lower return reached %v, expected below target %v", conservative.ProjectedCorpus, base.TargetCorpus)
	}
	if conservative.Funded {
		t.Error("funded = true under a lower return with the baseline SIP")
	}
	if conservative.Shortfall <= 0 {
		t.Errorf("shortfall = %v, expected positive", conservative.Shortfall)
	}

	aggressive := WithReturn(totals, a, 15, "aggressive returns")
	if !aggressive.Funded {
		t.Error("funded = false under a higher return with the baseline SIP")
	}
	if aggressive.Shortfall != 0 {
		t.Errorf("shortfall = %v, expected 0 when funded", aggressive.Shortfall)
	}
	if aggressive.ProjectedCorpus <= conservative.ProjectedCorpus {
		t.Errorf("corpus should grow with the return rate: %v <= %v", aggressive.ProjectedCorpus, conservative.ProjectedCorpus)
	}
}

func TestWithContribution(t *testing.T) {
	totals := referenceTotals()
	a := DefaultAssumptions(30)
	base := Project(totals, a)

	nothing := WithContribution(totals, a, 0, "no contribution")
	if nothing.Funded {
		t.Error("zero contribution reported as funded")
	}
	if math.Abs(nothing.Shortfall-base.TargetCorpus) > 1e-6 {
		t.Errorf("shortfall = %v, expected full target %v", nothing.Shortfall, base.TargetCorpus)
	}

	generous := WithContribution(totals, a, base.RequiredMonthlySIP*2, "double SIP")
	if !generous.Funded {
		t.Error("double the required SIP reported as unfunded")
	}
	if generous.Shortfall != 0 {
		t.Errorf("shortfall = %v, expected 0", generous.Shortfall)
	}
}

func TestDefaultAssumptions(t *testing.T) {
	a := DefaultAssumptions(0)
	if a.CurrentAge != 30 {
		t.Errorf("currentAge = %d, expected default 30", a.CurrentAge)
	}
	if a.FireMultiple != 25 || a.TargetAge != 60 || a.AnnualReturnPct != 12 || a.AnnualInflationPct != 6 {
		t.Errorf("unexpected defaults: %+v", a)
	}
}
