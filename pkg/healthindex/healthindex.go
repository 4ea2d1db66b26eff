// Package healthindex computes the composite financial health score for a
// household. The engine is a pure function over a profile snapshot and its
// derived totals: five weighted pillars (savings, EMI burden, emergency fund,
// protection, investments) sum to a 0-100 score with a qualitative band,
// per-metric narrative comments, and prioritized actions.
package healthindex

import (
	"fmt"
	"math"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/mathutil"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

// Band labels a score range qualitatively.
type Band string

// Score bands, weakest to strongest.
const (
	BandCritical   Band = "Critical"
	BandVulnerable Band = "Vulnerable"
	BandStable     Band = "Stable"
	BandSecure     Band = "Secure"
	BandStrong     Band = "Strong"
)

// Pillars holds the points earned per pillar. Ceilings are the
// constants.*PillarMax values (30/20/20/20/10).
type Pillars struct {
	Savings       float64 `json:"savings"`
	EMI           float64 `json:"emi"`
	EmergencyFund float64 `json:"emergencyFund"`
	Protection    float64 `json:"protection"`
	Investments   float64 `json:"investments"`
}

// Metrics holds the intermediate ratios the pillars are scored on. All ratios
// are defined (zero) in the degenerate zero-income and zero-expense cases.
type Metrics struct {
	SavingsRate         float64 `json:"savingsRate"`
	EMIRatio            float64 `json:"emiRatio"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
	HealthCoverAdequacy float64 `json:"healthCoverAdequacy"`
	LifeCoverAdequacy   float64 `json:"lifeCoverAdequacy"`
	InvestmentCoverage  float64 `json:"investmentCoverage"`
}

// Result is the full output of the health index engine. It is
// JSON-serializable and suitable for rendering or checkpointing as-is.
type Result struct {
	Score    int               `json:"score"`
	Band     Band              `json:"band"`
	Pillars  Pillars           `json:"pillars"`
	Metrics  Metrics           `json:"metrics"`
	Comments map[string]string `json:"comments"`
	Actions  []string          `json:"actions"`
}

// Compute scores the household. The function is deterministic and has no side
// effects; callers may invoke it on every profile edit.
func Compute(h profile.Household, t profile.Totals) Result {
	n := h.Normalize()

	var r Result
	r.Metrics = deriveMetrics(n, t)
	r.Pillars = scorePillars(r.Metrics, t.TotalIncome > 0)

	total := r.Pillars.Savings + r.Pillars.EMI + r.Pillars.EmergencyFund +
		r.Pillars.Protection + r.Pillars.Investments
	r.Score = int(mathutil.Clamp(math.Round(total), 0, 100))
	r.Band = BandFor(r.Score)
	r.Comments = buildComments(r.Metrics)
	r.Actions = buildActions(r.Metrics)

	return r
}

// BandFor maps a composite score to its band.
func BandFor(score int) Band {
	switch {
	case score < constants.BandVulnerableFloor:
		return BandCritical
	case score < constants.BandStableFloor:
		return BandVulnerable
	case score < constants.BandSecureFloor:
		return BandStable
	case score < constants.BandStrongFloor:
		return BandSecure
	default:
		return BandStrong
	}
}

// HealthCoverBenchmark returns the health cover sum insured considered
// adequate for the household's city tier and dependent count.
func HealthCoverBenchmark(city profile.CityTier, dependents int) float64 {
	base := constants.HealthCoverBaseMetro
	switch city {
	case profile.CityTier2:
		base = constants.HealthCoverBaseTier2
	case profile.CityTier3:
		base = constants.HealthCoverBaseTier3
	}
	if dependents < 0 {
		dependents = 0
	}
	return base + float64(dependents)*constants.HealthCoverPerDependent
}

// LifeCoverBenchmark returns the life cover sum assured considered adequate
// for the household's annual income.
func LifeCoverBenchmark(totalMonthlyIncome float64) float64 {
	if totalMonthlyIncome <= 0 {
		return 0
	}
	return totalMonthlyIncome * constants.MonthsPerYear * constants.LifeCoverIncomeMultiple
}

func deriveMetrics(n profile.Household, t profile.Totals) Metrics {
	m := Metrics{SavingsRate: t.SavingsRate}

	if t.TotalIncome > 0 {
		m.EMIRatio = n.TotalEMI / t.TotalIncome
	}
	if t.TotalExpenses > 0 {
		m.EmergencyFundMonths = n.EmergencyFund / t.TotalExpenses
	}

	m.HealthCoverAdequacy = cappedAdequacy(n.HealthCover, HealthCoverBenchmark(n.CityTier, n.Dependents))
	m.LifeCoverAdequacy = cappedAdequacy(n.LifeCover, LifeCoverBenchmark(t.TotalIncome))

	investmentTarget := t.TotalExpenses * constants.MonthsPerYear * constants.InvestmentTargetExpenseMultiple
	m.InvestmentCoverage = cappedAdequacy(t.TotalInvestments, investmentTarget)

	return m
}

// cappedAdequacy is cover/benchmark capped at constants.AdequacyCap, with a
// zero benchmark treated as 0% adequacy rather than infinite.
func cappedAdequacy(cover, benchmark float64) float64 {
	if benchmark <= 0 {
		return 0
	}
	return math.Min(cover/benchmark, constants.AdequacyCap)
}

func scorePillars(m Metrics, hasIncome bool) Pillars {
	return Pillars{
		Savings:       scoreSavings(m.SavingsRate),
		EMI:           scoreEMI(m.EMIRatio, hasIncome),
		EmergencyFund: scoreEmergencyFund(m.EmergencyFundMonths),
		Protection:    scoreProtection(m),
		Investments:   constants.InvestmentPillarMax * math.Min(m.InvestmentCoverage, 1.0),
	}
}

// scoreSavings applies the stepped savings-rate table (max 30).
func scoreSavings(rate float64) float64 {
	switch {
	case rate >= 0.30:
		return constants.SavingsPillarMax
	case rate >= 0.20:
		return 24
	case rate >= 0.15:
		return 18
	case rate >= 0.10:
		return 12
	case rate > 0:
		return 6
	default:
		return 0
	}
}

// scoreEMI applies the inverse EMI-burden table (max 20). A household with no
// income earns nothing here: a zero ratio from zero income is a degenerate
// case, not debt freedom.
func scoreEMI(ratio float64, hasIncome bool) float64 {
	if !hasIncome {
		return 0
	}
	switch {
	case ratio <= 0:
		return constants.EMIPillarMax
	case ratio < 0.10:
		return 16
	case ratio < 0.20:
		return 12
	case ratio < 0.35:
		return 8
	case ratio < 0.50:
		return 4
	default:
		return 0
	}
}

// scoreEmergencyFund applies the months-of-expenses table (max 20).
func scoreEmergencyFund(months float64) float64 {
	switch {
	case months >= 6:
		return constants.EmergencyFundPillarMax
	case months >= 3:
		return 14
	case months >= 1:
		return 8
	default:
		return 0
	}
}

// scoreProtection splits the pillar evenly between health and life cover
// adequacy, each earning full half-pillar points at 100% adequacy.
func scoreProtection(m Metrics) float64 {
	half := constants.ProtectionPillarMax / 2
	return half*math.Min(m.HealthCoverAdequacy, 1.0) + half*math.Min(m.LifeCoverAdequacy, 1.0)
}

func buildComments(m Metrics) map[string]string {
	comments := make(map[string]string)

	switch {
	case m.SavingsRate >= 0.30:
		comments["savings"] = fmt.Sprintf("Excellent: you save %.0f%% of your income.", m.SavingsRate*constants.PercentageMultiplier)
	case m.SavingsRate >= 0.15:
		comments["savings"] = fmt.Sprintf("Healthy savings rate of %.0f%%; pushing past 30%% would accelerate your goals.", m.SavingsRate*constants.PercentageMultiplier)
	case m.SavingsRate > 0:
		comments["savings"] = fmt.Sprintf("You save only %.0f%% of your income; aim for at least 20%%.", m.SavingsRate*constants.PercentageMultiplier)
	default:
		comments["savings"] = "You are not saving anything right now; expenses consume your full income."
	}

	switch {
	case m.EMIRatio <= 0:
		comments["debt"] = "No EMI burden on your income."
	case m.EMIRatio < 0.20:
		comments["debt"] = fmt.Sprintf("EMIs take a manageable %.0f%% of income.", m.EMIRatio*constants.PercentageMultiplier)
	case m.EMIRatio < 0.50:
		comments["debt"] = fmt.Sprintf("EMIs consume %.0f%% of income; keep them under 20%%.", m.EMIRatio*constants.PercentageMultiplier)
	default:
		comments["debt"] = fmt.Sprintf("EMIs consume %.0f%% of income; this level of leverage is dangerous.", m.EMIRatio*constants.PercentageMultiplier)
	}

	switch {
	case m.EmergencyFundMonths >= 6:
		comments["emergencyFund"] = fmt.Sprintf("Emergency fund covers %.1f months of expenses.", m.EmergencyFundMonths)
	case m.EmergencyFundMonths >= 1:
		comments["emergencyFund"] = fmt.Sprintf("Emergency fund covers only %.1f months; build it up to 6.", m.EmergencyFundMonths)
	default:
		comments["emergencyFund"] = "You have no meaningful emergency fund; target 6 months of expenses."
	}

	switch {
	case m.HealthCoverAdequacy >= 1 && m.LifeCoverAdequacy >= 1:
		comments["protection"] = "Health and life cover both meet their benchmarks."
	case m.HealthCoverAdequacy < 1 && m.LifeCoverAdequacy < 1:
		comments["protection"] = "Both health and life cover fall short of their benchmarks."
	case m.HealthCoverAdequacy < 1:
		comments["protection"] = fmt.Sprintf("Health cover is at %.0f%% of the recommended sum insured.", m.HealthCoverAdequacy*constants.PercentageMultiplier)
	default:
		comments["protection"] = fmt.Sprintf("Life cover is at %.0f%% of the recommended sum assured.", m.LifeCoverAdequacy*constants.PercentageMultiplier)
	}

	switch {
	case m.InvestmentCoverage >= 1:
		comments["investments"] = "Invested corpus meets the long-term target."
	case m.InvestmentCoverage > 0:
		comments["investments"] = fmt.Sprintf("Invested corpus is at %.0f%% of the long-term target.", m.InvestmentCoverage*constants.PercentageMultiplier)
	default:
		comments["investments"] = "No invested corpus yet; start a systematic investment plan."
	}

	return comments
}

func buildActions(m Metrics) []string {
	var actions []string

	if m.SavingsRate < 0.20 {
		actions = append(actions, "Increase your savings rate to at least 20% of income.")
	}
	if m.EMIRatio >= 0.35 {
		actions = append(actions, "Reduce EMI burden below 35% of income by prepaying or refinancing loans.")
	}
	if m.EmergencyFundMonths < 3 {
		actions = append(actions, "Build an emergency fund covering at least 3 months of expenses.")
	} else if m.EmergencyFundMonths < 6 {
		actions = append(actions, "Extend your emergency fund from 3 to 6 months of expenses.")
	}
	if m.HealthCoverAdequacy < 1 {
		actions = append(actions, "Increase health insurance to the recommended sum insured for your city and dependents.")
	}
	if m.LifeCoverAdequacy < 1 {
		actions = append(actions, "Increase term life cover toward 10x your annual income.")
	}
	if m.InvestmentCoverage < 0.5 {
		actions = append(actions, "Grow long-term investments with a recurring SIP.")
	}

	if len(actions) == 0 {
		actions = append(actions, "Maintain your current financial discipline; all pillars look healthy.")
	}
	return actions
}
