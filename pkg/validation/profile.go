package validation

import (
	"fmt"

	"github.com/KatyGHub/finhealth-app/pkg/profile"
)

// WarnProfile inspects a household profile for values that are legal but
// suspicious and returns human-readable warnings. Warnings never block a
// computation; coercion already guarantees well-defined arithmetic.
func WarnProfile(h profile.Household) []string {
	var warnings []string
	n := h.Normalize()
	t := n.Derive()

	if t.TotalIncome == 0 {
		warnings = append(warnings, "Profile has no income; savings and EMI metrics will score zero")
	}
	if t.TotalExpenses == 0 {
		warnings = append(warnings, "Profile has no expenses; emergency fund and investment coverage will score zero")
	}
	if t.TotalIncome > 0 && t.TotalExpenses > t.TotalIncome {
		warnings = append(warnings, fmt.Sprintf("Expenses (%.0f) exceed income (%.0f); monthly savings floored at zero", t.TotalExpenses, t.TotalIncome))
	}
	if t.TotalIncome > 0 && n.TotalEMI > t.TotalIncome {
		warnings = append(warnings, fmt.Sprintf("EMI (%.0f) exceeds total income (%.0f)", n.TotalEMI, t.TotalIncome))
	}
	if n.Age >= 100 {
		warnings = append(warnings, fmt.Sprintf("Age %d looks implausible", n.Age))
	}
	if n.LoanOutstanding > 0 && n.TotalEMI == 0 {
		warnings = append(warnings, "Outstanding loan balance with no EMI; check the debt fields")
	}

	return warnings
}
