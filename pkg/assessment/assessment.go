// Package assessment composes the scoring, projection, and SWOT engines into
// one assessment of a household. It is the single entry point the CLI, the
// HTTP API, and the report renderers consume.
package assessment

import (
	"github.com/KatyGHub/finhealth-app/pkg/fire"
	"github.com/KatyGHub/finhealth-app/pkg/healthindex"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
	"github.com/KatyGHub/finhealth-app/pkg/swot"
)

// Assessment bundles every engine output for one profile snapshot. The whole
// structure is JSON-serializable.
type Assessment struct {
	Profile profile.Household  `json:"profile"`
	Totals  profile.Totals     `json:"totals"`
	Health  healthindex.Result `json:"health"`
	Fire    fire.Plan          `json:"fire"`
	WhatIfs []fire.WhatIf      `json:"whatIfs"`
	Swot    swot.Analysis      `json:"swot"`
}

// Alternate return rates evaluated for the sensitivity what-ifs, in percent.
var whatIfReturns = []float64{8, 10, 15}

// New runs all engines against the household under the given assumptions.
// Pure and deterministic: identical inputs always produce identical output.
func New(h profile.Household, a fire.Assumptions) Assessment {
	n := h.Normalize()
	t := n.Derive()

	health := healthindex.Compute(n, t)
	plan := fire.Project(t, a)

	out := Assessment{
		Profile: n,
		Totals:  t,
		Health:  health,
		Fire:    plan,
		Swot:    swot.Derive(health, n),
	}

	// Sensitivity: what the currently required SIP achieves under alternate
	// return assumptions, and what contributing the current monthly savings
	// would achieve under the baseline. The corpus target depends only on
	// inflation, so shortfalls compare against the baseline target.
	for _, pct := range whatIfReturns {
		out.WhatIfs = append(out.WhatIfs, fire.WithReturn(t, a, pct, whatIfLabel(pct)))
	}
	if t.MonthlySavings > 0 {
		out.WhatIfs = append(out.WhatIfs, fire.WithContribution(t, a, t.MonthlySavings, "investing current monthly savings"))
	}

	return out
}

func whatIfLabel(returnPct float64) string {
	switch {
	case returnPct < 10:
		return "conservative returns"
	case returnPct < 12:
		return "moderate returns"
	default:
		return "aggressive returns"
	}
}
