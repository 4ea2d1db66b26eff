// Package output provides utilities for formatting and displaying assessment
// results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KatyGHub/finhealth-app/pkg/assessment"
	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/format"
	"github.com/KatyGHub/finhealth-app/pkg/mathutil"
	"github.com/KatyGHub/finhealth-app/pkg/swot"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable summary of an assessment.
func PrettyFormat(a assessment.Assessment) {
	p := message.NewPrinter(format.Indian)

	fmt.Printf("--- FinHealth score ---\n")
	_, _ = p.Printf("Score: %d/100 (%s)\n", a.Health.Score, a.Health.Band)
	fmt.Printf("Pillar                | Points\n")
	fmt.Printf("____________________  | ______\n")
	fmt.Printf("Savings               | %5.1f / %.0f\n", a.Health.Pillars.Savings, constants.SavingsPillarMax)
	fmt.Printf("EMI burden            | %5.1f / %.0f\n", a.Health.Pillars.EMI, constants.EMIPillarMax)
	fmt.Printf("Emergency fund        | %5.1f / %.0f\n", a.Health.Pillars.EmergencyFund, constants.EmergencyFundPillarMax)
	fmt.Printf("Protection            | %5.1f / %.0f\n", a.Health.Pillars.Protection, constants.ProtectionPillarMax)
	fmt.Printf("Investments           | %5.1f / %.0f\n", a.Health.Pillars.Investments, constants.InvestmentPillarMax)

	fmt.Printf("\n--- Monthly cash flow ---\n")
	fmt.Printf("Income        | %s\n", format.Rupee(a.Totals.TotalIncome))
	fmt.Printf("Expenses      | %s\n", format.Rupee(a.Totals.TotalExpenses))
	fmt.Printf("Savings       | %s (%s)\n", format.Rupee(a.Totals.MonthlySavings), format.Percent(a.Totals.SavingsRate))

	fmt.Printf("\n--- FIRE plan ---\n")
	fmt.Printf("Target corpus       | %s\n", format.Rupee(a.Fire.TargetCorpus))
	fmt.Printf("Years to target     | %d\n", a.Fire.YearsToTarget)
	if a.Fire.AlreadyFunded {
		fmt.Printf("Status              | already funded\n")
	} else {
		fmt.Printf("Required SIP        | %s / month\n", format.Rupee(a.Fire.RequiredMonthlySIP))
		fmt.Printf("Lump sum today      | %s\n", format.Rupee(a.Fire.RequiredLumpSumToday))
	}
	for _, w := range a.WhatIfs {
		fmt.Printf("What-if (%s): corpus %s, shortfall %s\n",
			w.Label, format.Rupee(w.ProjectedCorpus), format.Rupee(w.Shortfall))
	}

	fmt.Printf("\n--- SWOT ---\n")
	printFindings("Strengths", a.Swot.Strengths)
	printFindings("Weaknesses", a.Swot.Weaknesses)
	printFindings("Opportunities", a.Swot.Opportunities)
	printFindings("Threats", a.Swot.Threats)

	fmt.Printf("\n--- Suggested actions ---\n")
	for _, action := range a.Health.Actions {
		fmt.Printf("* %s\n", action)
	}
}

func printFindings(heading string, findings []swot.Finding) {
	fmt.Printf("%s:\n", heading)
	for _, f := range findings {
		fmt.Printf("  - %s\n", f.Label)
	}
}

// CsvFormat outputs the pillar and metric values in comma-separated format.
func CsvFormat(a assessment.Assessment) {
	fmt.Printf(`"metric","value"` + "\n")
	rows := []struct {
		name  string
		value float64
	}{
		{"score", float64(a.Health.Score)},
		{"pillar_savings", a.Health.Pillars.Savings},
		{"pillar_emi", a.Health.Pillars.EMI},
		{"pillar_emergency_fund", a.Health.Pillars.EmergencyFund},
		{"pillar_protection", a.Health.Pillars.Protection},
		{"pillar_investments", a.Health.Pillars.Investments},
		{"total_income", a.Totals.TotalIncome},
		{"total_expenses", a.Totals.TotalExpenses},
		{"monthly_savings", a.Totals.MonthlySavings},
		{"savings_rate", a.Totals.SavingsRate},
		{"total_investments", a.Totals.TotalInvestments},
		{"fire_target_corpus", a.Fire.TargetCorpus},
		{"fire_required_sip", a.Fire.RequiredMonthlySIP},
		{"fire_lump_sum_today", a.Fire.RequiredLumpSumToday},
		{"fire_years_to_target", float64(a.Fire.YearsToTarget)},
	}
	for _, row := range rows {
		fmt.Printf("\"%s\",\"%.2f\"\n", row.name, mathutil.Round(row.value))
	}
}

// JSONFormat outputs the full assessment as indented JSON.
func JSONFormat(a assessment.Assessment) error {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}
	fmt.Print(sb.String())
	return nil
}
