// Package swot derives a strengths/weaknesses/opportunities/threats analysis
// from a household's health index. The derivation is a fixed ordered rule
// table: each rule inspects the scored metrics, fires independently of the
// others, and contributes one finding with a label templated on live values.
// Every category carries a generic fallback so no list is ever empty.
package swot

import (
	"fmt"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/healthindex"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

// Category is one of the four SWOT quadrants.
type Category string

// SWOT categories.
const (
	Strength    Category = "strength"
	Weakness    Category = "weakness"
	Opportunity Category = "opportunity"
	Threat      Category = "threat"
)

// Finding is a single SWOT entry. The ID is stable across invocations and is
// the key for looking up suggested actions.
type Finding struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Analysis groups findings by quadrant. Rules may fire simultaneously; a
// profile can hold several strengths and several weaknesses at once.
type Analysis struct {
	Strengths     []Finding `json:"strengths"`
	Weaknesses    []Finding `json:"weaknesses"`
	Opportunities []Finding `json:"opportunities"`
	Threats       []Finding `json:"threats"`
}

// ActionBlueprint describes a concrete action a user can accept from a
// finding into their persistent action list.
type ActionBlueprint struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Tag    string `json:"tag"`
}

// ruleInput is the evaluation context shared by all rules.
type ruleInput struct {
	household profile.Household
	totals    profile.Totals
	metrics   healthindex.Metrics
	pillars   healthindex.Pillars
}

// rule maps a metric condition to one finding in one category.
type rule struct {
	id       string
	category Category
	when     func(in ruleInput) bool
	label    func(in ruleInput) string
	actions  []ActionBlueprint
}

// Derive evaluates the rule table against the health index output and the
// profile it was computed from. Evaluation order follows the fixed rule list,
// so identical inputs always produce identical output.
func Derive(res healthindex.Result, h profile.Household) Analysis {
	n := h.Normalize()
	in := ruleInput{
		household: n,
		totals:    n.Derive(),
		metrics:   res.Metrics,
		pillars:   res.Pillars,
	}

	var a Analysis
	for _, r := range rules {
		if !r.when(in) {
			continue
		}
		f := Finding{ID: r.id, Label: r.label(in)}
		switch r.category {
		case Strength:
			a.Strengths = append(a.Strengths, f)
		case Weakness:
			a.Weaknesses = append(a.Weaknesses, f)
		case Opportunity:
			a.Opportunities = append(a.Opportunities, f)
		case Threat:
			a.Threats = append(a.Threats, f)
		}
	}

	if len(a.Strengths) == 0 {
		a.Strengths = append(a.Strengths, fallbackStrength)
	}
	if len(a.Weaknesses) == 0 {
		a.Weaknesses = append(a.Weaknesses, fallbackWeakness)
	}
	if len(a.Opportunities) == 0 {
		a.Opportunities = append(a.Opportunities, fallbackOpportunity)
	}
	if len(a.Threats) == 0 {
		a.Threats = append(a.Threats, fallbackThreat)
	}
	return a
}

// SuggestionsFor returns the action blueprints attached to a finding, or nil
// when the finding has none (fallback findings carry no actions).
func SuggestionsFor(findingID string) []ActionBlueprint {
	for _, r := range rules {
		if r.id == findingID {
			return r.actions
		}
	}
	return nil
}

func pct(ratio float64) float64 {
	return ratio * constants.PercentageMultiplier
}

var fallbackStrength = Finding{ID: "generic-strength", Label: "You are tracking your finances, which is the first step toward improving them."}
var fallbackWeakness = Finding{ID: "generic-weakness", Label: "No single glaring weakness, but several pillars have room to improve."}
var fallbackOpportunity = Finding{ID: "generic-opportunity", Label: "Review your plan each quarter to catch new opportunities early."}
var fallbackThreat = Finding{ID: "generic-threat", Label: "Inflation quietly erodes idle money; keep long-term funds invested."}

// Reusable action blueprints.
var (
	actionStartSIP = ActionBlueprint{
		Key:    "start-sip",
		Title:  "Start a monthly SIP",
		Detail: "Set up an automatic monthly investment into a diversified index or mutual fund.",
		Tag:    "invest",
	}
	actionBuildEF = ActionBlueprint{
		Key:    "build-emergency-fund",
		Title:  "Build the emergency fund",
		Detail: "Move a fixed amount each month into a liquid fund until it covers 6 months of expenses.",
		Tag:    "safety",
	}
	actionTrimWants = ActionBlueprint{
		Key:    "trim-discretionary",
		Title:  "Trim discretionary spending",
		Detail: "Cap entertainment and shopping for three months and divert the difference to savings.",
		Tag:    "budget",
	}
	actionPrepayDebt = ActionBlueprint{
		Key:    "prepay-debt",
		Title:  "Prepay the costliest loan",
		Detail: "Direct surplus cash at the highest-interest EMI to cut the overall burden.",
		Tag:    "debt",
	}
	actionBuyHealthCover = ActionBlueprint{
		Key:    "increase-health-cover",
		Title:  "Increase health insurance",
		Detail: "Top up the family floater to the recommended sum insured for your city and dependents.",
		Tag:    "protect",
	}
	actionBuyTermCover = ActionBlueprint{
		Key:    "increase-term-cover",
		Title:  "Increase term life cover",
		Detail: "Buy or top up a pure term plan toward 10x your annual income.",
		Tag:    "protect",
	}
)

// rules is the canonical ordered rule table. Order matters only for display;
// each rule fires independently.
var rules = []rule{
	// Strengths
	{
		id:       "savings-strong",
		category: Strength,
		when:     func(in ruleInput) bool { return in.metrics.SavingsRate >= 0.25 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("You are saving about %.0f%% of your income.", pct(in.metrics.SavingsRate))
		},
	},
	{
		id:       "debt-free",
		category: Strength,
		when:     func(in ruleInput) bool { return in.totals.TotalIncome > 0 && in.household.TotalEMI == 0 },
		label:    func(in ruleInput) string { return "No EMI obligations against your income." },
	},
	{
		id:       "emergency-fund-solid",
		category: Strength,
		when:     func(in ruleInput) bool { return in.metrics.EmergencyFundMonths >= 6 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("Emergency fund covers about %.1f months of expenses.", in.metrics.EmergencyFundMonths)
		},
	},
	{
		id:       "well-protected",
		category: Strength,
		when: func(in ruleInput) bool {
			return in.metrics.HealthCoverAdequacy >= 1 && in.metrics.LifeCoverAdequacy >= 1
		},
		label: func(in ruleInput) string { return "Health and life cover both meet their benchmarks." },
	},

	// Weaknesses
	{
		id:       "savings-low",
		category: Weakness,
		when: func(in ruleInput) bool {
			return in.totals.TotalIncome > 0 && in.metrics.SavingsRate < 0.10
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("Only %.0f%% of income is being saved.", pct(in.metrics.SavingsRate))
		},
		actions: []ActionBlueprint{actionTrimWants, actionStartSIP},
	},
	{
		id:       "emergency-fund-thin",
		category: Weakness,
		when:     func(in ruleInput) bool { return in.metrics.EmergencyFundMonths < 3 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("Emergency fund covers only %.1f months of expenses.", in.metrics.EmergencyFundMonths)
		},
		actions: []ActionBlueprint{actionBuildEF},
	},
	{
		id:       "health-cover-short",
		category: Weakness,
		when:     func(in ruleInput) bool { return in.metrics.HealthCoverAdequacy < 1 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("Health cover is at %.0f%% of the recommended sum insured.", pct(in.metrics.HealthCoverAdequacy))
		},
		actions: []ActionBlueprint{actionBuyHealthCover},
	},
	{
		id:       "life-cover-short",
		category: Weakness,
		when: func(in ruleInput) bool {
			return in.totals.TotalIncome > 0 && in.metrics.LifeCoverAdequacy < 1
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("Life cover is at %.0f%% of the recommended sum assured.", pct(in.metrics.LifeCoverAdequacy))
		},
		actions: []ActionBlueprint{actionBuyTermCover},
	},
	{
		id:       "emi-heavy",
		category: Weakness,
		when:     func(in ruleInput) bool { return in.metrics.EMIRatio >= 0.35 && in.metrics.EMIRatio < 0.50 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("EMIs take %.0f%% of income, leaving little room to save.", pct(in.metrics.EMIRatio))
		},
		actions: []ActionBlueprint{actionPrepayDebt},
	},

	// Opportunities
	{
		id:       "investment-runway",
		category: Opportunity,
		when: func(in ruleInput) bool {
			return in.metrics.SavingsRate >= 0.10 && in.metrics.InvestmentCoverage < 1
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("A surplus of %.0f%% of income can be channelled into systematic investing.", pct(in.metrics.SavingsRate))
		},
		actions: []ActionBlueprint{actionStartSIP},
	},
	{
		id:       "emergency-fund-top-up",
		category: Opportunity,
		when: func(in ruleInput) bool {
			return in.metrics.EmergencyFundMonths >= 3 && in.metrics.EmergencyFundMonths < 6
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("Extending the emergency fund from %.1f to 6 months would secure the safety pillar.", in.metrics.EmergencyFundMonths)
		},
		actions: []ActionBlueprint{actionBuildEF},
	},
	{
		id:       "long-horizon",
		category: Opportunity,
		when:     func(in ruleInput) bool { return in.household.Age < 35 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("At %d you have decades of compounding ahead; early investing multiplies outcomes.", in.household.Age)
		},
		actions: []ActionBlueprint{actionStartSIP},
	},
	{
		id:       "discretionary-heavy",
		category: Opportunity,
		when: func(in ruleInput) bool {
			return in.totals.TotalIncome > 0 && in.totals.VariableTotal > 0.20*in.totals.TotalIncome
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("Discretionary spending is %.0f%% of income; trimming it frees cash quickly.", pct(in.totals.VariableTotal/in.totals.TotalIncome))
		},
		actions: []ActionBlueprint{actionTrimWants},
	},

	// Threats
	{
		id:       "no-savings",
		category: Threat,
		when:     func(in ruleInput) bool { return in.metrics.SavingsRate == 0 },
		label:    func(in ruleInput) string { return "Expenses consume your entire income; one shock creates debt." },
		actions:  []ActionBlueprint{actionTrimWants},
	},
	{
		id:       "emi-danger",
		category: Threat,
		when:     func(in ruleInput) bool { return in.metrics.EMIRatio >= 0.50 },
		label: func(in ruleInput) string {
			return fmt.Sprintf("EMIs consume %.0f%% of income; a single missed month cascades.", pct(in.metrics.EMIRatio))
		},
		actions: []ActionBlueprint{actionPrepayDebt},
	},
	{
		id:       "uninsured-dependents",
		category: Threat,
		when: func(in ruleInput) bool {
			return in.household.Dependents > 0 && (in.household.HealthCover == 0 || in.household.LifeCover == 0)
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("%d dependent(s) are exposed: a medical or life event would hit savings directly.", in.household.Dependents)
		},
		actions: []ActionBlueprint{actionBuyHealthCover, actionBuyTermCover},
	},
	{
		id:       "debt-overhang",
		category: Threat,
		when: func(in ruleInput) bool {
			return in.totals.TotalIncome > 0 && in.household.LoanOutstanding > 36*in.totals.TotalIncome
		},
		label: func(in ruleInput) string {
			return fmt.Sprintf("Outstanding loans equal %.0f months of income.", in.household.LoanOutstanding/in.totals.TotalIncome)
		},
		actions: []ActionBlueprint{actionPrepayDebt},
	},
}
