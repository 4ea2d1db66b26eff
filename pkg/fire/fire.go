// Package fire computes FIRE (financial independence) corpus targets and the
// SIP contributions required to reach them. The engine is pure arithmetic over
// derived totals and a set of assumptions; every division by a possibly-zero
// denominator falls back to a defined value instead of propagating NaN.
package fire

import (
	"math"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

// Assumptions parameterizes a projection. Callers that want the documented
// defaults should start from DefaultAssumptions; an explicit zero return or
// zero inflation is honored as-is.
type Assumptions struct {
	// FireMultiple is the corpus size as a multiple of annual expenses at the
	// horizon (20 lean, 25 normal, 30 fat).
	FireMultiple float64 `json:"fireMultiple" yaml:"fireMultiple"`

	// TargetAge is the age at which the corpus should be fully funded.
	TargetAge int `json:"targetAge" yaml:"targetAge"`

	// CurrentAge is the household's present age.
	CurrentAge int `json:"currentAge" yaml:"currentAge"`

	// AnnualReturnPct is the expected nominal annual return in percent.
	AnnualReturnPct float64 `json:"annualReturnPct" yaml:"annualReturnPct"`

	// AnnualInflationPct is the assumed annual inflation in percent.
	AnnualInflationPct float64 `json:"annualInflationPct" yaml:"annualInflationPct"`
}

// DefaultAssumptions returns the stock assumption set: a normal (25x) corpus,
// retirement at 60, 12% nominal return, and 6% inflation.
func DefaultAssumptions(currentAge int) Assumptions {
	if currentAge <= 0 {
		currentAge = constants.DefaultAge
	}
	return Assumptions{
		FireMultiple:       constants.FireMultipleNormal,
		TargetAge:          constants.DefaultTargetAge,
		CurrentAge:         currentAge,
		AnnualReturnPct:    constants.DefaultAnnualReturnPct,
		AnnualInflationPct: constants.DefaultAnnualInflationPct,
	}
}

// Normalize coerces assumptions into their valid domains: a usable corpus
// multiple, positive ages, and non-negative rates. Zero rates stay zero.
func (a Assumptions) Normalize() Assumptions {
	out := a
	if out.FireMultiple <= 0 {
		out.FireMultiple = constants.FireMultipleNormal
	}
	if out.CurrentAge <= 0 {
		out.CurrentAge = constants.DefaultAge
	}
	if out.TargetAge <= 0 {
		out.TargetAge = constants.DefaultTargetAge
	}
	if out.AnnualReturnPct < 0 || math.IsNaN(out.AnnualReturnPct) {
		out.AnnualReturnPct = 0
	}
	if out.AnnualInflationPct < 0 || math.IsNaN(out.AnnualInflationPct) {
		out.AnnualInflationPct = 0
	}
	return out
}

// Years returns the projection horizon, floored at zero.
func (a Assumptions) Years() int {
	years := a.TargetAge - a.CurrentAge
	if years < 0 {
		years = 0
	}
	return years
}

// Plan is the output of a projection. All monetary values are non-negative.
type Plan struct {
	TargetCorpus             float64 `json:"targetCorpus"`
	RequiredMonthlySIP       float64 `json:"requiredMonthlyContribution"`
	RequiredLumpSumToday     float64 `json:"requiredLumpSumToday"`
	YearsToTarget            int     `json:"yearsToTarget"`
	AlreadyFunded            bool    `json:"alreadyFunded"`
	FutureValueOfInvestments float64 `json:"futureValueOfInvestments"`
	AnnualExpensesAtHorizon  float64 `json:"annualExpensesAtHorizon"`
}

// WhatIf is a comparative projection with one assumption substituted.
type WhatIf struct {
	Label           string  `json:"label"`
	ProjectedCorpus float64 `json:"projectedCorpus"`
	Shortfall       float64 `json:"shortfall"`
	Funded          bool    `json:"funded"`
}

// Project computes the corpus target and required contributions for the
// household. The algorithm inflates today's annual expenses to the horizon,
// sizes the corpus as FireMultiple times that figure, nets out the future
// value of existing investments, and solves an ordinary future-value-of-annuity
// for the monthly SIP.
func Project(t profile.Totals, a Assumptions) Plan {
	a = a.Normalize()
	years := a.Years()

	annualExpensesToday := t.TotalExpenses * constants.MonthsPerYear
	inflation := a.AnnualInflationPct / constants.PercentageMultiplier
	annualReturn := a.AnnualReturnPct / constants.PercentageMultiplier

	plan := Plan{YearsToTarget: years}
	plan.AnnualExpensesAtHorizon = annualExpensesToday * math.Pow(1+inflation, float64(years))
	plan.TargetCorpus = plan.AnnualExpensesAtHorizon * a.FireMultiple

	growth := math.Pow(1+annualReturn, float64(years))
	plan.FutureValueOfInvestments = t.TotalInvestments * growth

	gap := plan.TargetCorpus - plan.FutureValueOfInvestments
	if gap <= 0 {
		plan.AlreadyFunded = true
		gap = 0
	}

	months := years * constants.MonthsPerYear
	if months > 0 && gap > 0 {
		plan.RequiredMonthlySIP = gap / annuityFactor(annualReturn/constants.MonthsPerYear, months)
	}

	// Present value needed today, net of what is already invested.
	pvTarget := plan.TargetCorpus
	if growth > 0 {
		pvTarget = plan.TargetCorpus / growth
	}
	if lump := pvTarget - t.TotalInvestments; lump > 0 {
		plan.RequiredLumpSumToday = lump
	}

	return plan
}

// annuityFactor is the ordinary future-value-of-annuity factor for n monthly
// contributions at monthly rate i, falling back to straight-line (factor n)
// when the rate is zero.
func annuityFactor(monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 1
	}
	if monthlyRate <= 0 {
		return float64(months)
	}
	return (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
}

// ProjectedCorpus returns the corpus accumulated by holding the plan's
// horizon and return fixed while contributing monthly on top of the existing
// investments. This is the building block for what-if variants.
func ProjectedCorpus(t profile.Totals, a Assumptions, monthlySIP float64) float64 {
	a = a.Normalize()
	years := a.Years()
	annualReturn := a.AnnualReturnPct / constants.PercentageMultiplier

	fvExisting := t.TotalInvestments * math.Pow(1+annualReturn, float64(years))
	months := years * constants.MonthsPerYear
	if monthlySIP <= 0 || months <= 0 {
		return fvExisting
	}
	return fvExisting + monthlySIP*annuityFactor(annualReturn/constants.MonthsPerYear, months)
}

// WithReturn evaluates what the plan's required monthly contribution achieves
// if the market delivers an alternate annual return, holding all other
// assumptions fixed. The corpus target depends only on inflation, so the
// shortfall compares against the baseline target.
func WithReturn(t profile.Totals, a Assumptions, annualReturnPct float64, label string) WhatIf {
	base := Project(t, a)
	alt := a.Normalize()
	alt.AnnualReturnPct = annualReturnPct
	corpus := ProjectedCorpus(t, alt, base.RequiredMonthlySIP)

	shortfall := base.TargetCorpus - corpus
	if shortfall < 0 {
		shortfall = 0
	}
	return WhatIf{
		Label:           label,
		ProjectedCorpus: corpus,
		Shortfall:       shortfall,
		Funded:          corpus >= base.TargetCorpus,
	}
}

// WithContribution evaluates what a fixed monthly contribution achieves
// against the baseline target, holding all assumptions fixed.
func WithContribution(t profile.Totals, a Assumptions, monthlySIP float64, label string) WhatIf {
	base := Project(t, a)
	corpus := ProjectedCorpus(t, a, monthlySIP)

	shortfall := base.TargetCorpus - corpus
	if shortfall < 0 {
		shortfall = 0
	}
	return WhatIf{
		Label:           label,
		ProjectedCorpus: corpus,
		Shortfall:       shortfall,
		Funded:          corpus >= base.TargetCorpus,
	}
}
